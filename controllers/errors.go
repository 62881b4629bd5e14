package controllers

import (
	"errors"
	"log"
	"net/http"

	"recruiting-api/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer errors to HTTP responses.
// Unknown errors are logged with full detail and surface only as a
// generic message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	if ve, ok := services.AsValidationError(err); ok {
		body := gin.H{"error": ve.Message}
		if len(ve.Fields) > 0 {
			body["errors"] = ve.Fields
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict with existing records"})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
