package routes

import (
	"github.com/gin-gonic/gin"

	"vetapp-api/internal/api/handlers"
)

// RegisterInvoiceRoutes registers all routes related to invoices.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler handlers.InvoiceHandlerInterface) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.GetInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoiceByID)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
	}
}
