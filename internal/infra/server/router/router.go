// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fleetbook/backend/internal/integration/entrypoint/controller"
	"github.com/fleetbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	userController      *controller.UserController
	vehicleController   *controller.VehicleController
	costController      *controller.CostController
	photoController     *controller.PhotoController
	dashboardController *controller.DashboardController
	exportController    *controller.ExportController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	vehicleController *controller.VehicleController,
	costController *controller.CostController,
	photoController *controller.PhotoController,
	dashboardController *controller.DashboardController,
	exportController *controller.ExportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		userController:      userController,
		vehicleController:   vehicleController,
		costController:      costController,
		photoController:     photoController,
		dashboardController: dashboardController,
		exportController:    exportController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Protected routes require a valid access token
		if r.authMiddleware == nil {
			return
		}
		protected := v1.Group("")
		protected.Use(r.authMiddleware.Authenticate())
		{
			if r.userController != nil {
				protected.GET("/me", r.userController.Me)
			}

			if r.vehicleController != nil {
				vehicles := protected.Group("/vehicles")
				{
					vehicles.GET("", r.vehicleController.List)
					vehicles.POST("", r.vehicleController.Create)
					vehicles.GET("/:id", r.vehicleController.Get)
					vehicles.PATCH("/:id", r.vehicleController.Update)
					vehicles.DELETE("/:id", r.vehicleController.Delete)

					if r.costController != nil {
						vehicles.GET("/:id/costs", r.costController.List)
						vehicles.POST("/:id/costs", r.costController.Create)
						vehicles.PATCH("/:id/costs/:costId", r.costController.Update)
						vehicles.DELETE("/:id/costs/:costId", r.costController.Delete)
					}

					if r.photoController != nil {
						vehicles.GET("/:id/photos", r.photoController.List)
						vehicles.POST("/:id/photos", r.photoController.Add)
						vehicles.DELETE("/:id/photos/:photoId", r.photoController.Delete)
					}
				}
			}

			if r.dashboardController != nil {
				protected.GET("/dashboard", r.dashboardController.Get)
			}

			if r.exportController != nil {
				protected.GET("/export/vehicles/:id/pdf", r.exportController.VehiclePDF)
			}
		}
	}
}
