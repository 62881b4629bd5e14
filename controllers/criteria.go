package controllers

import (
	"net/http"
	"strconv"

	"recruiting-api/config"
	"recruiting-api/services"

	"github.com/gin-gonic/gin"
)

// GetCriteria returns all criteria partitioned by kind, sorted by label.
func GetCriteria(c *gin.Context) {
	svc := services.NewCriteriaService(config.DB)

	set, err := svc.List()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch criteria")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"criteria": set,
	})
}

// CreateCriterion creates a new evaluation criterion (admin only).
func CreateCriterion(c *gin.Context) {
	var req services.CriterionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewCriteriaService(config.DB)
	criterion, err := svc.Create(req)
	if err != nil {
		respondServiceError(c, err, "Failed to create criterion")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Criterion created successfully",
		"criterion": criterion,
	})
}

// UpdateCriterion updates an existing criterion (admin only).
func UpdateCriterion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid criterion id"})
		return
	}

	var req services.CriterionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewCriteriaService(config.DB)
	criterion, err := svc.Update(id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update criterion")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Criterion updated successfully",
		"criterion": criterion,
	})
}

// DeleteCriterion removes a criterion unless applications still reference it.
func DeleteCriterion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid criterion id"})
		return
	}

	svc := services.NewCriteriaService(config.DB)
	if err := svc.Delete(id); err != nil {
		respondServiceError(c, err, "Failed to delete criterion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Criterion deleted successfully"})
}
