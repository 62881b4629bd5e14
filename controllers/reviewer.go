package controllers

import (
	"net/http"
	"strconv"

	"recruiting-api/config"
	"recruiting-api/middleware"
	"recruiting-api/models"
	"recruiting-api/services"

	"github.com/gin-gonic/gin"
)

func parseApplicationID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return 0, false
	}
	return id, true
}

// ListApplications returns application summaries for the review queue,
// filtered and sorted by query parameters.
func ListApplications(c *gin.Context) {
	var filters services.ListFilters

	if status := c.Query("status"); status != "" {
		value := models.ApplicationStatus(status)
		filters.Status = &value
	}
	if raw := c.Query("minScore"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minScore must be a number >= 0"})
			return
		}
		filters.MinScore = &value
	}
	if raw := c.Query("maxScore"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxScore must be a number >= 0"})
			return
		}
		filters.MaxScore = &value
	}
	if raw := c.Query("mustHaveMatch"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mustHaveMatch must be true or false"})
			return
		}
		filters.MandatoryMet = &value
	}
	filters.Sort = c.Query("sort")

	svc := services.NewApplicationService(config.DB)
	summaries, err := svc.List(filters)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch applications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": summaries,
		"total":        len(summaries),
	})
}

// GetApplicationDetail returns one application with scores, notes and
// audit trail.
func GetApplicationDetail(c *gin.Context) {
	id, ok := parseApplicationID(c)
	if !ok {
		return
	}

	svc := services.NewApplicationService(config.DB)
	application, err := svc.GetDetail(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch application")
		return
	}

	c.JSON(http.StatusOK, applicationResponse(application))
}

// UpsertScores saves a batch of category scores for the acting reviewer.
func UpsertScores(c *gin.Context) {
	id, ok := parseApplicationID(c)
	if !ok {
		return
	}

	type ScoresRequest struct {
		Scores []services.ScoreInput `json:"scores" binding:"required,min=1,dive"`
	}

	var req ScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewApplicationService(config.DB)
	if err := svc.UpsertScores(id, middleware.ActorID(c), req.Scores); err != nil {
		respondServiceError(c, err, "Failed to save scores")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Scores saved"})
}

// AddNote attaches a reviewer note to an application.
func AddNote(c *gin.Context) {
	id, ok := parseApplicationID(c)
	if !ok {
		return
	}

	type NoteRequest struct {
		Content string `json:"content" binding:"required"`
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewApplicationService(config.DB)
	note, err := svc.AddNote(id, middleware.ActorID(c), req.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to add note")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// UpdateApplicationStatus moves an application to a new status and
// notifies the applicant.
func UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseApplicationID(c)
	if !ok {
		return
	}

	type StatusRequest struct {
		Status models.ApplicationStatus `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewApplicationService(config.DB)
	application, previousStatus, err := svc.UpdateStatus(id, middleware.ActorID(c), req.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update status")
		return
	}

	go services.NotifyStatusChange(application, previousStatus)

	c.JSON(http.StatusOK, gin.H{
		"application": gin.H{
			"application_id": application.ApplicationID,
			"status":         application.Status,
			"status_label":   application.Status.Label(),
		},
	})
}
