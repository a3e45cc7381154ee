package services

import "errors"

// Define common service errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("conflict") // e.g., duplicate document, duplicate email
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidLineItem   = errors.New("invalid invoice line item")
	ErrOwnerMismatch     = errors.New("pet does not belong to owner")
)
