package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"vetapp-api/internal/services"
)

// respondData writes the success envelope the browser client consumes:
// every payload travels under a top-level "data" key.
func respondData(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"data": payload})
}

// respondError writes the error envelope: a top-level "message" key.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// parseIDParam reads the :id path parameter as an int64.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid ID parameter")
		return 0, false
	}
	return id, true
}

// FormatValidationErrors turns validator errors into a field -> message map.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "gt":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be greater than %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// respondValidationErrors flattens the field map into the single message
// envelope the client expects.
func respondValidationErrors(c *gin.Context, err error) {
	fields := FormatValidationErrors(err)
	msg := "Validation failed"
	for _, v := range fields {
		msg = msg + ": " + v
		break
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": msg, "details": fields})
}

// handleServiceError maps service errors to HTTP status codes.
func handleServiceError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrConflict):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidLineItem),
		errors.Is(err, services.ErrOwnerMismatch),
		errors.Is(err, services.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("%s: unexpected error: %v", operation, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
