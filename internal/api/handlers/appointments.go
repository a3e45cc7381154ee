package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"vetapp-api/internal/services"
	"vetapp-api/internal/transport/dto"
)

// AppointmentHandler holds dependencies for appointment operations.
type AppointmentHandler struct {
	apptService services.AppointmentService
	validator   *validator.Validate
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(apptService services.AppointmentService, validate *validator.Validate) *AppointmentHandler {
	return &AppointmentHandler{
		apptService: apptService,
		validator:   validate,
	}
}

// GetAppointments godoc
// @Summary      List appointments
// @Description  Retrieves all appointments, optionally filtered by pet
// @Tags         appointments
// @Produce      json
// @Param        petId query int false "Filter by pet ID"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} map[string]string "Internal Server Error"
// @Router       /appointments [get]
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	var petID *int64
	if raw := c.Query("petId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondError(c, http.StatusBadRequest, "Invalid petId parameter")
			return
		}
		petID = &id
	}

	appts, err := h.apptService.GetAll(c.Request.Context(), petID)
	if err != nil {
		handleServiceError(c, err, "GetAppointments")
		return
	}
	respondData(c, http.StatusOK, appts)
}

// GetAppointmentByID godoc
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Appointment not found"
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	appt, err := h.apptService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "GetAppointmentByID")
		return
	}
	respondData(c, http.StatusOK, appt)
}

// CreateAppointment godoc
// @Summary      Schedule an appointment
// @Description  Schedules a visit and emails a confirmation to the owner
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        appointment body dto.CreateAppointmentRequest true "Appointment details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string "Validation failed"
// @Failure      409 {object} map[string]string "Unknown pet"
// @Router       /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	appt, err := h.apptService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CreateAppointment")
		return
	}
	respondData(c, http.StatusCreated, appt)
}

// UpdateAppointment godoc
// @Summary      Update an appointment
// @Description  Reschedules or amends a visit. A date change triggers a
// @Description  notification email to the owner.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Param        appointment body dto.UpdateAppointmentRequest true "Appointment details"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Appointment not found"
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	appt, err := h.apptService.Update(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "UpdateAppointment")
		return
	}
	respondData(c, http.StatusOK, appt)
}

// DeleteAppointment godoc
// @Summary      Delete an appointment
// @Tags         appointments
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Appointment not found"
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.apptService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DeleteAppointment")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
