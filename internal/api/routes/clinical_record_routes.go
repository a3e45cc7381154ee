package routes

import (
	"github.com/gin-gonic/gin"

	"vetapp-api/internal/api/handlers"
)

// RegisterClinicalRecordRoutes registers all routes related to clinical history.
func RegisterClinicalRecordRoutes(rg *gin.RouterGroup, recordHandler handlers.ClinicalRecordHandlerInterface) {
	records := rg.Group("/clinical-records")
	{
		records.GET("", recordHandler.GetClinicalRecords)
		records.GET("/:id", recordHandler.GetClinicalRecordByID)
		records.POST("", recordHandler.CreateClinicalRecord)
		records.PUT("/:id", recordHandler.UpdateClinicalRecord)
		records.DELETE("/:id", recordHandler.DeleteClinicalRecord)
	}
}
