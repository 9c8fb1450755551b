package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasnim/scholarhub/internal/app/controllers"
	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	scholarshipController *controllers.ScholarshipController,
	applicationController *controllers.ApplicationController,
	reviewController *controllers.ReviewController,
	paymentController *controllers.PaymentController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Service banner and health probe
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Dream Scholar Hub")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes ---
	router.POST("/jwt", authController.CreateToken)
	router.POST("/users", userController.CreateUser)

	router.GET("/scholar", scholarshipController.GetAllScholarships)
	router.GET("/scholar/top", scholarshipController.GetTopScholarships)
	router.GET("/scholar/:id", scholarshipController.GetScholarshipByID)

	router.GET("/reviews", reviewController.GetReviews)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/users/role/:email", userController.GetUserRole)

		applied := authenticated.Group("/scholarApplied")
		{
			applied.GET("", applicationController.GetApplications)
			applied.GET("/:id", applicationController.GetApplicationByID)
			applied.POST("", applicationController.CreateApplication)
			applied.PUT("/:id", applicationController.UpdateApplication)
			applied.DELETE("/:id", applicationController.DeleteApplication)
		}

		authenticated.POST("/reviews", reviewController.CreateReview)
		authenticated.PATCH("/reviews/:id", reviewController.UpdateReview)
		authenticated.DELETE("/reviews/:id", reviewController.DeleteReview)

		authenticated.POST("/create-payment-intent", paymentController.CreatePaymentIntent)
		authenticated.GET("/payments/:email", paymentController.GetPaymentsByEmail)
		authenticated.POST("/payments", paymentController.CreatePayment)

		authenticated.GET("/userDashboard/stats/:email", statsController.GetUserStats)

		// Listing management requires a privileged stored role
		scholarManage := authenticated.Group("/scholar")
		scholarManage.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleModerator))
		{
			scholarManage.POST("", scholarshipController.CreateScholarship)
			scholarManage.PATCH("/:id", scholarshipController.UpdateScholarship)
			scholarManage.DELETE("/:id", scholarshipController.DeleteScholarship)
		}

		// User management and platform stats are admin-only
		adminOnly := authenticated.Group("")
		adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminOnly.GET("/users", userController.GetAllUsers)
			adminOnly.PATCH("/users/role/:id", userController.UpdateUserRole)
			adminOnly.DELETE("/users/:id", userController.DeleteUser)
			adminOnly.GET("/admin-stats", statsController.GetAdminStats)
		}
	}
}
