package handlers

import "github.com/gin-gonic/gin"

// OwnerHandlerInterface defines the methods needed by the owner routes.
type OwnerHandlerInterface interface {
	GetOwners(c *gin.Context)
	GetOwnerByID(c *gin.Context)
	CreateOwner(c *gin.Context)
	UpdateOwner(c *gin.Context)
	DeleteOwner(c *gin.Context)
}

// PetHandlerInterface defines the methods needed by the pet routes.
type PetHandlerInterface interface {
	GetPets(c *gin.Context)
	GetPetByID(c *gin.Context)
	CreatePet(c *gin.Context)
	DeletePet(c *gin.Context)
}

// AppointmentHandlerInterface defines the methods needed by the appointment routes.
type AppointmentHandlerInterface interface {
	GetAppointments(c *gin.Context)
	GetAppointmentByID(c *gin.Context)
	CreateAppointment(c *gin.Context)
	UpdateAppointment(c *gin.Context)
	DeleteAppointment(c *gin.Context)
}

// ClinicalRecordHandlerInterface defines the methods needed by the record routes.
type ClinicalRecordHandlerInterface interface {
	GetClinicalRecords(c *gin.Context)
	GetClinicalRecordByID(c *gin.Context)
	CreateClinicalRecord(c *gin.Context)
	UpdateClinicalRecord(c *gin.Context)
	DeleteClinicalRecord(c *gin.Context)
}

// PrescriptionHandlerInterface defines the methods needed by the prescription routes.
type PrescriptionHandlerInterface interface {
	GetPrescriptions(c *gin.Context)
	CreatePrescription(c *gin.Context)
	DeletePrescription(c *gin.Context)
}

// InvoiceHandlerInterface defines the methods needed by the invoice routes.
type InvoiceHandlerInterface interface {
	GetInvoices(c *gin.Context)
	GetInvoiceByID(c *gin.Context)
	CreateInvoice(c *gin.Context)
	UpdateInvoiceStatus(c *gin.Context)
	DeleteInvoice(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ OwnerHandlerInterface = (*OwnerHandler)(nil)
var _ PetHandlerInterface = (*PetHandler)(nil)
var _ AppointmentHandlerInterface = (*AppointmentHandler)(nil)
var _ ClinicalRecordHandlerInterface = (*ClinicalRecordHandler)(nil)
var _ PrescriptionHandlerInterface = (*PrescriptionHandler)(nil)
var _ InvoiceHandlerInterface = (*InvoiceHandler)(nil)
