package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"vetapp-api/internal/services"
	"vetapp-api/internal/transport/dto"
)

// PetHandler holds dependencies for pet operations.
type PetHandler struct {
	petService services.PetService
	validator  *validator.Validate
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(petService services.PetService, validate *validator.Validate) *PetHandler {
	return &PetHandler{
		petService: petService,
		validator:  validate,
	}
}

// GetPets godoc
// @Summary      List pets
// @Description  Retrieves all pets, optionally filtered by owner
// @Tags         pets
// @Produce      json
// @Param        ownerId query int false "Filter by owner ID"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} map[string]string "Internal Server Error"
// @Router       /pets [get]
func (h *PetHandler) GetPets(c *gin.Context) {
	var req dto.ListPetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	pets, err := h.petService.GetAll(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "GetPets")
		return
	}
	respondData(c, http.StatusOK, pets)
}

// GetPetByID godoc
// @Summary      Get a pet
// @Tags         pets
// @Produce      json
// @Param        id path int true "Pet ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Pet not found"
// @Router       /pets/{id} [get]
func (h *PetHandler) GetPetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	pet, err := h.petService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "GetPetByID")
		return
	}
	respondData(c, http.StatusOK, pet)
}

// CreatePet godoc
// @Summary      Register a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        pet body dto.CreatePetRequest true "Pet details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string "Validation failed"
// @Failure      409 {object} map[string]string "Unknown owner"
// @Router       /pets [post]
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req dto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	pet, err := h.petService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CreatePet")
		return
	}
	respondData(c, http.StatusCreated, pet)
}

// DeletePet godoc
// @Summary      Delete a pet
// @Tags         pets
// @Produce      json
// @Param        id path int true "Pet ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string "Pet not found"
// @Router       /pets/{id} [delete]
func (h *PetHandler) DeletePet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.petService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DeletePet")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
