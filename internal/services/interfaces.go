package services

import (
	"context"

	"vetapp-api/internal/models"
	"vetapp-api/internal/transport/dto"
)

// OwnerService defines the interface for owner-related business logic.
type OwnerService interface {
	GetAll(ctx context.Context) ([]models.Owner, error)
	GetByID(ctx context.Context, id int64) (*models.Owner, error)
	Create(ctx context.Context, req *dto.CreateOwnerRequest) (*models.Owner, error)
	Update(ctx context.Context, req *dto.UpdateOwnerRequest) (*models.Owner, error)
	Delete(ctx context.Context, id int64) error
}

// PetService defines the interface for pet-related business logic.
type PetService interface {
	GetAll(ctx context.Context, req *dto.ListPetsRequest) ([]models.Pet, error)
	GetByID(ctx context.Context, id int64) (*models.Pet, error)
	Create(ctx context.Context, req *dto.CreatePetRequest) (*models.Pet, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentService defines the interface for appointment business logic.
// Create and Update notify the owner by email; delivery failures never fail
// the operation.
type AppointmentService interface {
	GetAll(ctx context.Context, petID *int64) ([]models.Appointment, error)
	GetByID(ctx context.Context, id int64) (*models.Appointment, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*models.Appointment, error)
	Update(ctx context.Context, req *dto.UpdateAppointmentRequest) (*models.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// ClinicalRecordService defines the interface for clinical history logic.
type ClinicalRecordService interface {
	GetAll(ctx context.Context, req *dto.ListClinicalRecordsRequest) ([]models.ClinicalRecord, error)
	GetByID(ctx context.Context, id int64) (*models.ClinicalRecord, error)
	Create(ctx context.Context, req *dto.CreateClinicalRecordRequest) (*models.ClinicalRecord, error)
	Update(ctx context.Context, req *dto.UpdateClinicalRecordRequest) (*models.ClinicalRecord, error)
	Delete(ctx context.Context, id int64) error
}

// PrescriptionService defines the interface for prescription logic.
type PrescriptionService interface {
	GetAll(ctx context.Context, req *dto.ListPrescriptionsRequest) ([]models.Prescription, error)
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*models.Prescription, error)
	Delete(ctx context.Context, id int64) error
}

// InvoiceService defines the interface for invoice business logic. Every
// money value is computed server-side from the submitted line items.
type InvoiceService interface {
	GetAll(ctx context.Context) ([]models.Invoice, error)
	GetByID(ctx context.Context, id int64) (*models.Invoice, error)
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*models.Invoice, error)
	Delete(ctx context.Context, id int64) error
}
