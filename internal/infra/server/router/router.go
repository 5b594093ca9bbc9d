// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/integration/entrypoint/controller"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	expenseController      *controller.ExpenseController
	loanController         *controller.LoanController
	fixedExpenseController *controller.FixedExpenseController
	savingsGoalController  *controller.SavingsGoalController
	cardController         *controller.CardController
	profileController      *controller.ProfileController
	activityController     *controller.ActivityController
	shoppingListController *controller.ShoppingListController
	dashboardController    *controller.DashboardController
	backupController       *controller.BackupController
	importRateLimiter      *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies. A nil authMiddleware
// leaves the API open.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	loanController *controller.LoanController,
	fixedExpenseController *controller.FixedExpenseController,
	savingsGoalController *controller.SavingsGoalController,
	cardController *controller.CardController,
	profileController *controller.ProfileController,
	activityController *controller.ActivityController,
	shoppingListController *controller.ShoppingListController,
	dashboardController *controller.DashboardController,
	backupController *controller.BackupController,
	importRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		expenseController:      expenseController,
		loanController:         loanController,
		fixedExpenseController: fixedExpenseController,
		savingsGoalController:  savingsGoalController,
		cardController:         cardController,
		profileController:      profileController,
		activityController:     activityController,
		shoppingListController: shoppingListController,
		dashboardController:    dashboardController,
		backupController:       backupController,
		importRateLimiter:      importRateLimiter,
		authMiddleware:         authMiddleware,
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
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	// Expense routes
	if r.expenseController != nil {
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.PATCH("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}
	}

	// Loan routes
	if r.loanController != nil {
		loans := v1.Group("/loans")
		{
			loans.GET("", r.loanController.List)
			loans.POST("", r.loanController.Create)
			loans.PATCH("/:id", r.loanController.Update)
			loans.PUT("/:id/paid", r.loanController.MarkPaid)
			loans.DELETE("/:id", r.loanController.Delete)
		}
	}

	// Fixed expense routes
	if r.fixedExpenseController != nil {
		fixed := v1.Group("/fixed-expenses")
		{
			fixed.GET("", r.fixedExpenseController.List)
			fixed.POST("", r.fixedExpenseController.Create)
			fixed.PATCH("/:id", r.fixedExpenseController.Update)
			fixed.DELETE("/:id", r.fixedExpenseController.Delete)
		}
	}

	// Savings goal routes
	if r.savingsGoalController != nil {
		goals := v1.Group("/savings-goals")
		{
			goals.GET("", r.savingsGoalController.List)
			goals.POST("", r.savingsGoalController.Create)
			goals.PATCH("/:id", r.savingsGoalController.Update)
			goals.DELETE("/:id", r.savingsGoalController.Delete)
		}
	}

	// Saved card routes
	if r.cardController != nil {
		cards := v1.Group("/cards")
		{
			cards.GET("", r.cardController.List)
			cards.POST("", r.cardController.Create)
			cards.PATCH("/:id", r.cardController.Update)
			cards.DELETE("/:id", r.cardController.Delete)
		}
	}

	// Profile routes
	if r.profileController != nil {
		profile := v1.Group("/profile")
		{
			profile.GET("", r.profileController.Get)
			profile.PATCH("", r.profileController.Update)
			profile.GET("/budget-history", r.profileController.BudgetHistory)
		}
	}

	if r.activityController != nil {
		v1.GET("/activity", r.activityController.List)
	}

	if r.shoppingListController != nil {
		v1.GET("/shopping-list", r.shoppingListController.Get)
		v1.PUT("/shopping-list", r.shoppingListController.Replace)
	}

	// Dashboard routes
	if r.dashboardController != nil {
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
			dashboard.GET("/calendar", r.dashboardController.Calendar)
		}
	}

	// Backup routes
	if r.backupController != nil {
		backup := v1.Group("/backup")
		{
			backup.GET("/export", r.backupController.Export)
			if r.importRateLimiter != nil {
				backup.POST("/import", r.importRateLimiter.Middleware(), r.backupController.Import)
			} else {
				backup.POST("/import", r.backupController.Import)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
