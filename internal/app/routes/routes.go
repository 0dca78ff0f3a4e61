package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusrate/campusrate/internal/app/controllers"
	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	facultyController *controllers.FacultyController,
	feedbackController *controllers.FeedbackController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.Profile)

		// Faculty routes readable by every authenticated user
		faculty := authenticated.Group("/faculty")
		{
			faculty.GET("", facultyController.GetAll)
			faculty.GET("/:id", facultyController.GetByID)
			faculty.GET("/:id/ratings", facultyController.GetRatings)

			// Registry mutations and feedback reports are admin-only
			facultyAdmin := faculty.Group("")
			facultyAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				facultyAdmin.POST("", facultyController.Create)
				facultyAdmin.PUT("/:id", facultyController.Update)
				facultyAdmin.DELETE("/:id", facultyController.Delete)
				facultyAdmin.GET("/:id/feedback", facultyController.GetFeedback)
			}
		}

		feedback := authenticated.Group("/feedback")
		{
			// Submission is restricted to students; the admin account
			// manages the registry but never rates
			feedbackStudent := feedback.Group("")
			feedbackStudent.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				feedbackStudent.POST("",
				middleware.ValidateRequest(func() interface{} { return &dto.SubmitFeedbackRequest{} }),
				feedbackController.Submit)
				feedbackStudent.GET("/eligibility/:facultyId", feedbackController.Eligibility)
			}

			feedbackAdmin := feedback.Group("")
			feedbackAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				feedbackAdmin.GET("", feedbackController.GetAll)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
