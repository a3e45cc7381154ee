package routes

import (
	"github.com/gin-gonic/gin"

	"vetapp-api/internal/api/handlers"
)

// RegisterPetRoutes registers all routes related to pets.
func RegisterPetRoutes(rg *gin.RouterGroup, petHandler handlers.PetHandlerInterface) {
	pets := rg.Group("/pets")
	{
		pets.GET("", petHandler.GetPets)
		pets.GET("/:id", petHandler.GetPetByID)
		pets.POST("", petHandler.CreatePet)
		pets.DELETE("/:id", petHandler.DeletePet)
	}
}
