package routes

import (
	"github.com/gin-gonic/gin"

	"vetapp-api/internal/api/handlers"
)

// RegisterAppointmentRoutes registers all routes related to appointments.
func RegisterAppointmentRoutes(rg *gin.RouterGroup, apptHandler handlers.AppointmentHandlerInterface) {
	appointments := rg.Group("/appointments")
	{
		appointments.GET("", apptHandler.GetAppointments)
		appointments.GET("/:id", apptHandler.GetAppointmentByID)
		appointments.POST("", apptHandler.CreateAppointment)
		appointments.PUT("/:id", apptHandler.UpdateAppointment)
		appointments.DELETE("/:id", apptHandler.DeleteAppointment)
	}
}
