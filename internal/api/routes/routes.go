package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vetapp-api/internal/api/handlers"
	"vetapp-api/internal/app"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	// Create handlers
	ownerHandler := handlers.NewOwnerHandler(app.OwnerService, app.Validator)
	petHandler := handlers.NewPetHandler(app.PetService, app.Validator)
	apptHandler := handlers.NewAppointmentHandler(app.AppointmentService, app.Validator)
	recordHandler := handlers.NewClinicalRecordHandler(app.ClinicalRecordService, app.Validator)
	prescriptionHandler := handlers.NewPrescriptionHandler(app.PrescriptionService, app.Validator)
	invoiceHandler := handlers.NewInvoiceHandler(app.InvoiceService, app.Validator)

	// --- Register Resource Routes ---
	RegisterOwnerRoutes(api, ownerHandler)
	RegisterPetRoutes(api, petHandler)
	RegisterAppointmentRoutes(api, apptHandler)
	RegisterClinicalRecordRoutes(api, recordHandler)
	RegisterPrescriptionRoutes(api, prescriptionHandler)
	RegisterInvoiceRoutes(api, invoiceHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
