package routes

import (
	"recruiting-api/controllers"
	"recruiting-api/middleware"
	"recruiting-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Recruiting API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/me", controllers.GetProfile)

			// Criteria listing (all authenticated users)
			protected.GET("/criteria", controllers.GetCriteria)

			// Applicant's own application
			protected.POST("/application", middleware.RequireRole(models.RoleApplicant), controllers.SubmitApplication)
			protected.GET("/application", middleware.RequireRole(models.RoleApplicant), controllers.GetOwnApplication)

			// Review queue (reviewers and admins)
			review := protected.Group("/review")
			review.Use(middleware.RequireRole(models.RoleReviewer, models.RoleAdmin))
			{
				review.GET("/applications", controllers.ListApplications)
				review.GET("/applications/:id", controllers.GetApplicationDetail)
				review.POST("/applications/:id/scores", controllers.UpsertScores)
				review.POST("/applications/:id/notes", controllers.AddNote)
				review.PATCH("/applications/:id/status", controllers.UpdateApplicationStatus)
			}

			// Administration
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/criteria", controllers.CreateCriterion)
				admin.PUT("/criteria/:id", controllers.UpdateCriterion)
				admin.DELETE("/criteria/:id", controllers.DeleteCriterion)

				admin.GET("/users", controllers.GetUsers)
				admin.POST("/users/reviewer", controllers.CreateReviewer)

				admin.GET("/dashboard/stats", controllers.GetDashboardStats)
				admin.GET("/audit-logs", controllers.GetAuditLogs)
			}

			// Files (ownership enforced in the handler)
			protected.GET("/files/applications/:id/cv", controllers.DownloadCV)
		}
	}
}
