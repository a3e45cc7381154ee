package storage

import (
	"context"

	"vetapp-api/internal/models"
	"vetapp-api/internal/transport/dto"
)

// OwnerRepository defines the interface for owner data operations.
type OwnerRepository interface {
	GetAll(ctx context.Context) ([]models.Owner, error)
	GetByID(ctx context.Context, id int64) (*models.Owner, error)
	Create(ctx context.Context, owner *models.Owner) (*models.Owner, error)
	Update(ctx context.Context, owner *models.Owner) (*models.Owner, error)
	Delete(ctx context.Context, id int64) error
}

// PetRepository defines the interface for pet data operations.
type PetRepository interface {
	GetAll(ctx context.Context, ownerID *int64) ([]models.Pet, error)
	GetByID(ctx context.Context, id int64) (*models.Pet, error)
	Create(ctx context.Context, pet *models.Pet) (*models.Pet, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository defines the interface for appointment data operations.
type AppointmentRepository interface {
	GetAll(ctx context.Context, petID *int64) ([]models.Appointment, error)
	GetByID(ctx context.Context, id int64) (*models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// ClinicalRecordRepository defines the interface for clinical history operations.
type ClinicalRecordRepository interface {
	GetAll(ctx context.Context, petID *int64) ([]models.ClinicalRecord, error)
	GetByID(ctx context.Context, id int64) (*models.ClinicalRecord, error)
	Create(ctx context.Context, rec *models.ClinicalRecord) (*models.ClinicalRecord, error)
	Update(ctx context.Context, rec *models.ClinicalRecord) (*models.ClinicalRecord, error)
	Delete(ctx context.Context, id int64) error
}

// PrescriptionRepository defines the interface for prescription data operations.
type PrescriptionRepository interface {
	GetAll(ctx context.Context, petID *int64) ([]models.Prescription, error)
	Create(ctx context.Context, p *models.Prescription) (*models.Prescription, error)
	Delete(ctx context.Context, id int64) error
}

// InvoiceRepository defines the interface for invoice data operations.
// Create persists the invoice and its items in one transaction; items keep
// their submission order.
type InvoiceRepository interface {
	GetAll(ctx context.Context) ([]models.Invoice, error)
	GetByID(ctx context.Context, id int64) (*models.Invoice, error)
	Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*models.Invoice, error)
	Delete(ctx context.Context, id int64) error
}
