package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"vetapp-api/internal/services"
	"vetapp-api/internal/transport/dto"
)

// PrescriptionHandler holds dependencies for prescription operations.
type PrescriptionHandler struct {
	prescriptionService services.PrescriptionService
	validator           *validator.Validate
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(prescriptionService services.PrescriptionService, validate *validator.Validate) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionService: prescriptionService,
		validator:           validate,
	}
}

// GetPrescriptions godoc
// @Summary      List prescriptions
// @Description  Retrieves prescriptions, optionally filtered by pet
// @Tags         prescriptions
// @Produce      json
// @Param        petId query int false "Filter by pet ID"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} map[string]string "Internal Server Error"
// @Router       /prescriptions [get]
func (h *PrescriptionHandler) GetPrescriptions(c *gin.Context) {
	var req dto.ListPrescriptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	prescriptions, err := h.prescriptionService.GetAll(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "GetPrescriptions")
		return
	}
	respondData(c, http.StatusOK, prescriptions)
}

// CreatePrescription godoc
// @Summary      Prescribe medication
// @Tags         prescriptions
// @Accept       json
// @Produce      json
// @Param        prescription body dto.CreatePrescriptionRequest true "Prescription details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string "Validation failed"
// @Failure      409 {object} map[string]string "Unknown pet or clinical record"
// @Router       /prescriptions [post]
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var req dto.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	p, err := h.prescriptionService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CreatePrescription")
		return
	}
	respondData(c, http.StatusCreated, p)
}

// DeletePrescription godoc
// @Summary      Delete a prescription
// @Tags         prescriptions
// @Produce      json
// @Param        id path int true "Prescription ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Prescription not found"
// @Router       /prescriptions/{id} [delete]
func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.prescriptionService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DeletePrescription")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
