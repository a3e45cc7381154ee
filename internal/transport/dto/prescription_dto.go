package dto

import "time"

// CreatePrescriptionRequest defines the structure for prescribing medication.
type CreatePrescriptionRequest struct {
	Medication       string     `json:"medication" validate:"required,max=200"`
	Dosage           string     `json:"dosage" validate:"required,max=500"`
	Frequency        string     `json:"frequency" validate:"required,max=500"`
	DurationDays     int        `json:"durationDays" validate:"omitempty,gt=0"`
	Instructions     string     `json:"instructions" validate:"omitempty,max=1000"`
	StartDate        *time.Time `json:"startDate" validate:"omitempty"`
	EndDate          *time.Time `json:"endDate" validate:"omitempty"`
	PetID            int64      `json:"petId" validate:"required,gt=0"`
	ClinicalRecordID *int64     `json:"clinicalRecordId" validate:"omitempty,gt=0"`
}

// ListPrescriptionsRequest defines the optional query filters.
type ListPrescriptionsRequest struct {
	PetID *int64 `form:"petId" validate:"omitempty,gt=0"`
}
