package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"recruiting-api/config"
	"recruiting-api/models"
	"recruiting-api/services"
	"recruiting-api/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns application counts per status plus the
// reviewer headcount.
func GetDashboardStats(c *gin.Context) {
	type statusCount struct {
		status models.ApplicationStatus
		target *int64
	}

	var total, shortlisted, rejected, interviews, hired, reviewers int64

	if err := config.DB.Model(&models.Application{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	counts := []statusCount{
		{models.StatusShortlisted, &shortlisted},
		{models.StatusRejected, &rejected},
		{models.StatusInterviewScheduled, &interviews},
		{models.StatusHired, &hired},
	}
	for _, count := range counts {
		if err := config.DB.Model(&models.Application{}).
			Where("status = ?", count.status).Count(count.target).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
	}

	if err := config.DB.Model(&models.User{}).
		Where("role = ?", models.RoleReviewer).Count(&reviewers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_applicants":     total,
			"shortlisted":          shortlisted,
			"rejected":             rejected,
			"interviews_scheduled": interviews,
			"hired":                hired,
			"reviewers":            reviewers,
		},
	})
}

// GetUsers lists all accounts, newest first.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// CreateReviewer provisions a reviewer account (admin only).
func CreateReviewer(c *gin.Context) {
	type CreateReviewerRequest struct {
		Name     string `json:"name" binding:"required,min=2,max=100"`
		Email    string `json:"email" binding:"required,email,max=255"`
		Password string `json:"password" binding:"required"`
	}

	var req CreateReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok, message := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	email := strings.ToLower(req.Email)

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reviewer"})
		return
	}

	reviewer := models.User{
		Name:     utils.SanitizeInput(req.Name),
		Email:    email,
		Password: hashed,
		Role:     models.RoleReviewer,
	}
	if err := config.DB.Create(&reviewer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reviewer"})
		return
	}

	go services.SendReviewerWelcome(reviewer.Name, reviewer.Email)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Reviewer created successfully",
		"reviewer": reviewer,
	})
}

// GetAuditLogs lists recent audit events, newest first. The limit query
// parameter defaults to 200 and is capped at 500.
func GetAuditLogs(c *gin.Context) {
	limit := 200
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	var logs []models.EventLog
	if err := config.DB.Preload("Actor").Preload("Application").
		Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs": logs,
	})
}
