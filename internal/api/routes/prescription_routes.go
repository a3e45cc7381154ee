package routes

import (
	"github.com/gin-gonic/gin"

	"vetapp-api/internal/api/handlers"
)

// RegisterPrescriptionRoutes registers all routes related to prescriptions.
func RegisterPrescriptionRoutes(rg *gin.RouterGroup, prescriptionHandler handlers.PrescriptionHandlerInterface) {
	prescriptions := rg.Group("/prescriptions")
	{
		prescriptions.GET("", prescriptionHandler.GetPrescriptions)
		prescriptions.POST("", prescriptionHandler.CreatePrescription)
		prescriptions.DELETE("/:id", prescriptionHandler.DeletePrescription)
	}
}
