package routes

import (
	"github.com/gin-gonic/gin"

	"vetapp-api/internal/api/handlers"
)

// RegisterOwnerRoutes registers all routes related to owners.
func RegisterOwnerRoutes(rg *gin.RouterGroup, ownerHandler handlers.OwnerHandlerInterface) {
	owners := rg.Group("/owners")
	{
		owners.GET("", ownerHandler.GetOwners)
		owners.GET("/:id", ownerHandler.GetOwnerByID)
		owners.POST("", ownerHandler.CreateOwner)
		owners.PUT("/:id", ownerHandler.UpdateOwner)
		owners.DELETE("/:id", ownerHandler.DeleteOwner)
	}
}
