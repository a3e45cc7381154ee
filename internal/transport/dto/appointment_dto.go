package dto

import "time"

// CreateAppointmentRequest defines the structure for scheduling a visit.
type CreateAppointmentRequest struct {
	DateTime time.Time `json:"dateTime" validate:"required"`
	Reason   string    `json:"reason" validate:"required,max=200"`
	Notes    string    `json:"notes" validate:"omitempty,max=500"`
	PetID    int64     `json:"petId" validate:"required,gt=0"`
}

// UpdateAppointmentRequest defines the structure for rescheduling or
// amending a visit. A status outside the known set is rejected.
type UpdateAppointmentRequest struct {
	ID       int64     `json:"-" validate:"required"`
	DateTime time.Time `json:"dateTime" validate:"required"`
	Reason   string    `json:"reason" validate:"required,max=200"`
	Notes    string    `json:"notes" validate:"omitempty,max=500"`
	Status   string    `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
}
