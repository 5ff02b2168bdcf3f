// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/controller"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	metricsController *controller.MetricsController
	balanceController *controller.BalanceController
	targetController  *controller.TargetController
	insightController *controller.InsightController
	writeRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	metricsController *controller.MetricsController,
	balanceController *controller.BalanceController,
	targetController *controller.TargetController,
	insightController *controller.InsightController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		metricsController: metricsController,
		balanceController: balanceController,
		targetController:  targetController,
		insightController: insightController,
		writeRateLimiter:  writeRateLimiter,
		authMiddleware:    authMiddleware,
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
	// API v1 group; every route is workspace-scoped and requires authentication.
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		// Composite period metrics
		v1.GET("/metrics", r.metricsController.Get)

		// Balance snapshots
		balances := v1.Group("/balances")
		{
			balances.GET("", r.balanceController.List)
			balances.POST("", r.writeRateLimiter.Middleware(), r.balanceController.Record)
		}

		// Monthly targets
		targets := v1.Group("/targets")
		{
			targets.POST("/bulk", r.writeRateLimiter.Middleware(), r.targetController.BulkSave)
			targets.GET("/:period", r.targetController.Get)
			targets.PUT("/:period", r.writeRateLimiter.Middleware(), r.targetController.Save)
		}

		// AI insights
		v1.GET("/insights", r.insightController.Get)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
