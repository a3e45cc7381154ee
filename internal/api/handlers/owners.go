package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"vetapp-api/internal/services"
	"vetapp-api/internal/transport/dto"
)

// OwnerHandler holds dependencies for owner operations.
type OwnerHandler struct {
	ownerService services.OwnerService
	validator    *validator.Validate
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(ownerService services.OwnerService, validate *validator.Validate) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
		validator:    validate,
	}
}

// GetOwners godoc
// @Summary      List owners
// @Description  Retrieves all registered owners ordered by name
// @Tags         owners
// @Produce      json
// @Success      200 {object} map[string]interface{} "Owners wrapped in data envelope"
// @Failure      500 {object} map[string]string "Internal Server Error"
// @Router       /owners [get]
func (h *OwnerHandler) GetOwners(c *gin.Context) {
	owners, err := h.ownerService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "GetOwners")
		return
	}
	respondData(c, http.StatusOK, owners)
}

// GetOwnerByID godoc
// @Summary      Get an owner
// @Tags         owners
// @Produce      json
// @Param        id path int true "Owner ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Owner not found"
// @Router       /owners/{id} [get]
func (h *OwnerHandler) GetOwnerByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	owner, err := h.ownerService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "GetOwnerByID")
		return
	}
	respondData(c, http.StatusOK, owner)
}

// CreateOwner godoc
// @Summary      Register an owner
// @Description  Registers a new owner. Document and email must be unique.
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        owner body dto.CreateOwnerRequest true "Owner details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string "Validation failed"
// @Failure      409 {object} map[string]string "Duplicate document or email"
// @Router       /owners [post]
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	owner, err := h.ownerService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CreateOwner")
		return
	}
	respondData(c, http.StatusCreated, owner)
}

// UpdateOwner godoc
// @Summary      Update an owner
// @Description  Updates contact details. Document and email are immutable.
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        id path int true "Owner ID"
// @Param        owner body dto.UpdateOwnerRequest true "Owner details"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Owner not found"
// @Router       /owners/{id} [put]
func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	owner, err := h.ownerService.Update(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "UpdateOwner")
		return
	}
	respondData(c, http.StatusOK, owner)
}

// DeleteOwner godoc
// @Summary      Delete an owner
// @Description  Removes an owner and, via cascade, their pets.
// @Tags         owners
// @Produce      json
// @Param        id path int true "Owner ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Owner not found"
// @Router       /owners/{id} [delete]
func (h *OwnerHandler) DeleteOwner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.ownerService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DeleteOwner")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
