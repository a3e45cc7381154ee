package dto

import "time"

// CreateClinicalRecordRequest defines the structure for a new consultation entry.
type CreateClinicalRecordRequest struct {
	ConsultationDate time.Time `json:"consultationDate" validate:"required"`
	Diagnosis        string    `json:"diagnosis" validate:"required,max=1000"`
	Symptoms         string    `json:"symptoms" validate:"omitempty,max=1000"`
	Treatment        string    `json:"treatment" validate:"omitempty,max=1000"`
	Notes            string    `json:"notes" validate:"omitempty,max=500"`
	Weight           *float64  `json:"weight" validate:"omitempty,gt=0"`
	Temperature      *float64  `json:"temperature" validate:"omitempty,gt=0"`
	PetID            int64     `json:"petId" validate:"required,gt=0"`
}

// UpdateClinicalRecordRequest defines the structure for amending a consultation entry.
type UpdateClinicalRecordRequest struct {
	ID               int64     `json:"-" validate:"required"`
	ConsultationDate time.Time `json:"consultationDate" validate:"required"`
	Diagnosis        string    `json:"diagnosis" validate:"required,max=1000"`
	Symptoms         string    `json:"symptoms" validate:"omitempty,max=1000"`
	Treatment        string    `json:"treatment" validate:"omitempty,max=1000"`
	Notes            string    `json:"notes" validate:"omitempty,max=500"`
	Weight           *float64  `json:"weight" validate:"omitempty,gt=0"`
	Temperature      *float64  `json:"temperature" validate:"omitempty,gt=0"`
}

// ListClinicalRecordsRequest defines the optional query filters.
type ListClinicalRecordsRequest struct {
	PetID *int64 `form:"petId" validate:"omitempty,gt=0"`
}
