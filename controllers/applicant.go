package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"recruiting-api/config"
	"recruiting-api/middleware"
	"recruiting-api/models"
	"recruiting-api/services"
	"recruiting-api/utils"

	"github.com/gin-gonic/gin"
)

// applicationResponse serializes a fully loaded application with derived
// display fields.
func applicationResponse(application *models.Application) gin.H {
	return gin.H{
		"application":      application,
		"status_label":     application.Status.Label(),
		"reviewer_average": services.AverageScore(application.Scores),
	}
}

// SubmitApplication handles first submission and resubmission of the
// applicant's own application. Multipart form: contact fields, JSON-encoded
// selection fields and an optional "cv" file (required on first submission).
func SubmitApplication(c *gin.Context) {
	userID := middleware.ActorID(c)

	fields := []struct {
		name     string
		min, max int
	}{
		{"full_name", 2, 100},
		{"email", 3, 255},
		{"phone", 7, 30},
		{"location", 2, 120},
		{"experience_text", 10, 5000},
	}

	values := make(map[string]string, len(fields))
	var fieldErrors []services.FieldError
	for _, field := range fields {
		value := utils.SanitizeInput(c.PostForm(field.name))
		if len(value) < field.min || len(value) > field.max {
			fieldErrors = append(fieldErrors, services.FieldError{
				Path:    field.name,
				Message: "invalid length",
			})
		}
		values[field.name] = value
	}
	if !utils.ValidateEmail(values["email"]) {
		fieldErrors = append(fieldErrors, services.FieldError{Path: "email", Message: "invalid email"})
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid application payload",
			"errors": fieldErrors,
		})
		return
	}

	var mandatoryIDs []int
	if raw := c.PostForm("mandatory_criteria"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mandatoryIDs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mandatory_criteria must be a JSON array of ids"})
			return
		}
	}

	var preferred []services.PreferredSelectionInput
	if raw := c.PostForm("preferred_criteria"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &preferred); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "preferred_criteria must be a JSON array of selections"})
			return
		}
	}

	// Optional CV upload; the service rejects a first submission without one.
	var cvPath string
	file, err := c.FormFile("cv")
	if err == nil && file != nil {
		if !utils.IsAllowedCVFile(file.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF/DOC/DOCX files are allowed"})
			return
		}
		if file.Size > utils.MaxCVSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large (max 5MB)"})
			return
		}

		uploadDir := utils.UploadDir()
		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store CV file"})
			return
		}

		cvPath = filepath.Join(uploadDir, utils.StoredCVFilename(file.Filename))
		if err := c.SaveUploadedFile(file, cvPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store CV file"})
			return
		}
	}

	svc := services.NewApplicationService(config.DB)
	application, created, err := svc.Submit(userID, services.SubmissionInput{
		FullName:       values["full_name"],
		Email:          values["email"],
		Phone:          values["phone"],
		Location:       values["location"],
		ExperienceText: values["experience_text"],
		MandatoryIDs:   mandatoryIDs,
		Preferred:      preferred,
		CVPath:         cvPath,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to submit application")
		return
	}

	status := http.StatusOK
	message := "Application updated"
	if created {
		status = http.StatusCreated
		message = "Application submitted"
	}

	c.JSON(status, gin.H{
		"message":      message,
		"application":  application,
		"status_label": application.Status.Label(),
	})
}

// GetOwnApplication returns the caller's application with scores, notes
// and audit trail.
func GetOwnApplication(c *gin.Context) {
	userID := middleware.ActorID(c)

	svc := services.NewApplicationService(config.DB)
	application, err := svc.GetByUser(userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch application")
		return
	}

	c.JSON(http.StatusOK, applicationResponse(application))
}
