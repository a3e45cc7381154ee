package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"vetapp-api/internal/services"
	"vetapp-api/internal/transport/dto"
)

// InvoiceHandler holds dependencies for invoice operations.
type InvoiceHandler struct {
	invoiceService services.InvoiceService
	validator      *validator.Validate
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService services.InvoiceService, validate *validator.Validate) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		validator:      validate,
	}
}

// GetInvoices godoc
// @Summary      List invoices
// @Description  Retrieves all invoices with line items, newest first
// @Tags         invoices
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} map[string]string "Internal Server Error"
// @Router       /invoices [get]
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "GetInvoices")
		return
	}
	respondData(c, http.StatusOK, invoices)
}

// GetInvoiceByID godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Invoice not found"
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "GetInvoiceByID")
		return
	}
	respondData(c, http.StatusOK, inv)
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Creates an invoice from submitted line items. Every money
// @Description  value (line subtotals, subtotal, tax, total) is computed on
// @Description  the server; nothing derived is accepted from the client. The
// @Description  owner is emailed after the invoice is committed.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice body dto.CreateInvoiceRequest true "Invoice creation details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string "Validation failed or pet/owner mismatch"
// @Failure      404 {object} map[string]string "Owner or pet not found"
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CreateInvoice")
		return
	}
	respondData(c, http.StatusCreated, inv)
}

// UpdateInvoiceStatus godoc
// @Summary      Update invoice status
// @Description  Transitions an invoice out of PENDING. PAID and CANCELLED
// @Description  are terminal.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Param        status body dto.UpdateInvoiceStatusRequest true "Target status"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string "Invalid transition"
// @Failure      404 {object} map[string]string "Invoice not found"
// @Router       /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	inv, err := h.invoiceService.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "UpdateInvoiceStatus")
		return
	}
	respondData(c, http.StatusOK, inv)
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Description  Removes an invoice and its items. Deleting an unknown ID is
// @Description  an error, not a no-op.
// @Tags         invoices
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Invoice not found"
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DeleteInvoice")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
