package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"vetapp-api/internal/services"
	"vetapp-api/internal/transport/dto"
)

// ClinicalRecordHandler holds dependencies for clinical history operations.
type ClinicalRecordHandler struct {
	recordService services.ClinicalRecordService
	validator     *validator.Validate
}

// NewClinicalRecordHandler creates a new ClinicalRecordHandler.
func NewClinicalRecordHandler(recordService services.ClinicalRecordService, validate *validator.Validate) *ClinicalRecordHandler {
	return &ClinicalRecordHandler{
		recordService: recordService,
		validator:     validate,
	}
}

// GetClinicalRecords godoc
// @Summary      List clinical records
// @Description  Retrieves consultation history, optionally filtered by pet,
// @Description  newest first
// @Tags         clinical-records
// @Produce      json
// @Param        petId query int false "Filter by pet ID"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} map[string]string "Internal Server Error"
// @Router       /clinical-records [get]
func (h *ClinicalRecordHandler) GetClinicalRecords(c *gin.Context) {
	var req dto.ListClinicalRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	records, err := h.recordService.GetAll(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "GetClinicalRecords")
		return
	}
	respondData(c, http.StatusOK, records)
}

// GetClinicalRecordByID godoc
// @Summary      Get a clinical record
// @Tags         clinical-records
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Record not found"
// @Router       /clinical-records/{id} [get]
func (h *ClinicalRecordHandler) GetClinicalRecordByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rec, err := h.recordService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "GetClinicalRecordByID")
		return
	}
	respondData(c, http.StatusOK, rec)
}

// CreateClinicalRecord godoc
// @Summary      Create a clinical record
// @Tags         clinical-records
// @Accept       json
// @Produce      json
// @Param        record body dto.CreateClinicalRecordRequest true "Consultation details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string "Validation failed"
// @Failure      409 {object} map[string]string "Unknown pet"
// @Router       /clinical-records [post]
func (h *ClinicalRecordHandler) CreateClinicalRecord(c *gin.Context) {
	var req dto.CreateClinicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	rec, err := h.recordService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CreateClinicalRecord")
		return
	}
	respondData(c, http.StatusCreated, rec)
}

// UpdateClinicalRecord godoc
// @Summary      Update a clinical record
// @Tags         clinical-records
// @Accept       json
// @Produce      json
// @Param        id path int true "Record ID"
// @Param        record body dto.UpdateClinicalRecordRequest true "Consultation details"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Record not found"
// @Router       /clinical-records/{id} [put]
func (h *ClinicalRecordHandler) UpdateClinicalRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateClinicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	rec, err := h.recordService.Update(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "UpdateClinicalRecord")
		return
	}
	respondData(c, http.StatusOK, rec)
}

// DeleteClinicalRecord godoc
// @Summary      Delete a clinical record
// @Tags         clinical-records
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Record not found"
// @Router       /clinical-records/{id} [delete]
func (h *ClinicalRecordHandler) DeleteClinicalRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.recordService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DeleteClinicalRecord")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
