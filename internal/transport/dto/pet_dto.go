package dto

import "time"

// CreatePetRequest defines the structure for registering a new pet.
type CreatePetRequest struct {
	Name      string     `json:"name" validate:"required,min=2,max=100"`
	Species   string     `json:"species" validate:"required,max=50"`
	Breed     string     `json:"breed" validate:"omitempty,max=100"`
	BirthDate *time.Time `json:"birthDate" validate:"omitempty"`
	Sex       string     `json:"sex" validate:"omitempty,oneof=male female unknown"`
	Color     string     `json:"color" validate:"omitempty,max=50"`
	Weight    *float64   `json:"weight" validate:"omitempty,gt=0"`
	OwnerID   int64      `json:"ownerId" validate:"required,gt=0"`
}

// ListPetsRequest defines the optional query filters for listing pets.
type ListPetsRequest struct {
	OwnerID *int64 `form:"ownerId" validate:"omitempty,gt=0"`
}
