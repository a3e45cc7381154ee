package services

import (
	"context"

	"vetapp-api/internal/models"
	"vetapp-api/internal/storage"
	"vetapp-api/internal/transport/dto"
)

type prescriptionService struct {
	prescriptionRepo storage.PrescriptionRepository
}

// NewPrescriptionService creates the prescription service.
func NewPrescriptionService(prescriptionRepo storage.PrescriptionRepository) PrescriptionService {
	return &prescriptionService{prescriptionRepo: prescriptionRepo}
}

func (s *prescriptionService) GetAll(ctx context.Context, req *dto.ListPrescriptionsRequest) ([]models.Prescription, error) {
	prescriptions, err := s.prescriptionRepo.GetAll(ctx, req.PetID)
	if err != nil {
		return nil, MapRepoError(err, "listing prescriptions")
	}
	return prescriptions, nil
}

func (s *prescriptionService) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*models.Prescription, error) {
	p := &models.Prescription{
		Medication:       req.Medication,
		Dosage:           req.Dosage,
		Frequency:        req.Frequency,
		DurationDays:     req.DurationDays,
		Instructions:     req.Instructions,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		PetID:            req.PetID,
		ClinicalRecordID: req.ClinicalRecordID,
	}

	created, err := s.prescriptionRepo.Create(ctx, p)
	if err != nil {
		return nil, MapRepoError(err, "creating prescription")
	}
	return created, nil
}

func (s *prescriptionService) Delete(ctx context.Context, id int64) error {
	if err := s.prescriptionRepo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting prescription")
	}
	return nil
}
