package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"recruiting-api/config"
	"recruiting-api/middleware"
	"recruiting-api/models"

	"github.com/gin-gonic/gin"
)

// DownloadCV streams the résumé of an application. Applicants may only
// fetch their own; reviewers and admins may fetch any.
func DownloadCV(c *gin.Context) {
	id, ok := parseApplicationID(c)
	if !ok {
		return
	}

	var application models.Application
	if err := config.DB.First(&application, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	role := middleware.ActorRole(c)
	if !role.CanReview() && application.UserID != middleware.ActorID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	absolutePath, err := filepath.Abs(application.CVPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "CV file not found"})
		return
	}
	if _, err := os.Stat(absolutePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "CV file not found"})
		return
	}

	c.File(absolutePath)
}
