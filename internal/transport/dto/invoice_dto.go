package dto

import (
	"github.com/shopspring/decimal"
)

// LineItemRequest is one billable entry as submitted by the composer.
// The Spanish field names are the established wire contract. The unit price
// may be zero, so non-negativity is checked in the service rather than with
// a required tag.
type LineItemRequest struct {
	Descripcion    string          `json:"descripcion" validate:"required,max=200"`
	Cantidad       int             `json:"cantidad" validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// CreateInvoiceRequest defines the invoice creation payload. The server
// recomputes every money value; nothing derived is accepted from the client.
type CreateInvoiceRequest struct {
	OwnerID       int64             `json:"ownerId" validate:"required,gt=0"`
	PetID         int64             `json:"petId" validate:"required,gt=0"`
	AppointmentID *int64            `json:"appointmentId" validate:"omitempty,gt=0"`
	Notes         string            `json:"notes" validate:"omitempty,max=500"`
	Detalles      []LineItemRequest `json:"detalles" validate:"required,min=1,dive"`
}

// UpdateInvoiceStatusRequest defines a status transition. PENDING is the
// only state with outgoing transitions; PAID and CANCELLED are terminal.
type UpdateInvoiceStatusRequest struct {
	ID     int64  `json:"-" validate:"required"`
	Status string `json:"status" validate:"required,oneof=PAID CANCELLED"`
}
