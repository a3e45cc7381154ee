package services

import (
	"context"
	"log"

	"vetapp-api/internal/models"
	"vetapp-api/internal/notification"
	"vetapp-api/internal/storage"
	"vetapp-api/internal/transport/dto"
)

type appointmentService struct {
	apptRepo storage.AppointmentRepository
	sender   notification.Sender
}

// NewAppointmentService creates the appointment business logic service.
func NewAppointmentService(apptRepo storage.AppointmentRepository, sender notification.Sender) AppointmentService {
	return &appointmentService{
		apptRepo: apptRepo,
		sender:   sender,
	}
}

// notify delivers a message in the background. Send failures are logged and
// never surface to the caller.
func (s *appointmentService) notify(msg notification.Message) {
	go func() {
		if err := s.sender.Send(msg); err != nil {
			log.Printf("Appointment notification failed for %s: %v", msg.To, err)
		}
	}()
}

func (s *appointmentService) GetAll(ctx context.Context, petID *int64) ([]models.Appointment, error) {
	appts, err := s.apptRepo.GetAll(ctx, petID)
	if err != nil {
		return nil, MapRepoError(err, "listing appointments")
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "fetching appointment")
	}
	return appt, nil
}

func (s *appointmentService) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	appt := &models.Appointment{
		DateTime: req.DateTime,
		Reason:   req.Reason,
		Notes:    req.Notes,
		Status:   models.AppointmentScheduled,
		PetID:    req.PetID,
	}

	created, err := s.apptRepo.Create(ctx, appt)
	if err != nil {
		return nil, MapRepoError(err, "creating appointment")
	}

	log.Printf("Appointment created: ID %d for pet %d", created.ID, created.PetID)
	if created.OwnerEmail != "" {
		s.notify(notification.AppointmentConfirmation(
			created.OwnerEmail, created.PetName, created.DateTime, created.Reason))
	}
	return created, nil
}

func (s *appointmentService) Update(ctx context.Context, req *dto.UpdateAppointmentRequest) (*models.Appointment, error) {
	existing, err := s.apptRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching appointment for update")
	}

	dateChanged := !existing.DateTime.Equal(req.DateTime)

	existing.DateTime = req.DateTime
	existing.Reason = req.Reason
	existing.Notes = req.Notes
	if req.Status != "" {
		existing.Status = models.AppointmentStatus(req.Status)
	}

	updated, err := s.apptRepo.Update(ctx, existing)
	if err != nil {
		return nil, MapRepoError(err, "updating appointment")
	}

	// The owner only hears about reschedules, not note or status edits.
	if dateChanged && updated.OwnerEmail != "" {
		s.notify(notification.AppointmentRescheduled(
			updated.OwnerEmail, updated.PetName, updated.DateTime, updated.Reason))
	}
	return updated, nil
}

func (s *appointmentService) Delete(ctx context.Context, id int64) error {
	if err := s.apptRepo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting appointment")
	}
	return nil
}
