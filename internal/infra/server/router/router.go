// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/household-budget/backend/internal/integration/entrypoint/controller"
	"github.com/household-budget/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	authController          *controller.AuthController
	expenseController       *controller.ExpenseController
	incomeController        *controller.IncomeController
	fixedExpenseController  *controller.FixedExpenseController
	requestController       *controller.RequestController
	dashboardController     *controller.DashboardController
	notificationController  *controller.NotificationController
	loginRateLimiter        *middleware.RateLimiter
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	fixedExpenseController *controller.FixedExpenseController,
	requestController *controller.RequestController,
	dashboardController *controller.DashboardController,
	notificationController *controller.NotificationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		expenseController:      expenseController,
		incomeController:       incomeController,
		fixedExpenseController: fixedExpenseController,
		requestController:      requestController,
		dashboardController:    dashboardController,
		notificationController: notificationController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
				expenses.GET("/plans/:id", r.expenseController.GetPlan)
			}
		}

		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.PATCH("/:id", r.incomeController.Update)
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		if r.fixedExpenseController != nil && r.authMiddleware != nil {
			fixed := v1.Group("/fixed-expenses")
			fixed.Use(r.authMiddleware.Authenticate())
			{
				fixed.GET("", r.fixedExpenseController.List)
				fixed.POST("", r.fixedExpenseController.Create)
				fixed.PATCH("/:id", r.fixedExpenseController.Update)
				fixed.DELETE("/:id", r.fixedExpenseController.Delete)
				fixed.POST("/:id/pay", r.fixedExpenseController.Pay)
				fixed.POST("/:id/unpay", r.fixedExpenseController.Unpay)
			}
		}

		if r.requestController != nil && r.authMiddleware != nil {
			requests := v1.Group("/requests")
			requests.Use(r.authMiddleware.Authenticate())
			{
				requests.GET("", r.requestController.List)
				requests.POST("", r.requestController.Create)
				requests.POST("/:id/respond", r.requestController.Respond)
				requests.DELETE("/:id", r.requestController.Delete)
			}
		}

		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/breakdowns", r.dashboardController.GetBreakdowns)
				dashboard.GET("/cards/forecast", r.dashboardController.GetCardForecast)
			}
		}

		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.List)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
