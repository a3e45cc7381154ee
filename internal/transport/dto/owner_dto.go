package dto

// CreateOwnerRequest defines the structure for registering a new owner.
type CreateOwnerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Document  string `json:"document" validate:"required,max=20"`
	Phone     string `json:"phone" validate:"required,max=15"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Address   string `json:"address" validate:"omitempty,max=200"`
}

// UpdateOwnerRequest defines the structure for updating an existing owner.
// Document and email are immutable after registration.
type UpdateOwnerRequest struct {
	ID        int64  `json:"-" validate:"required"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=15"`
	Address   string `json:"address" validate:"omitempty,max=200"`
}
