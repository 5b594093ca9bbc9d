// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/expense-daddy/backend/config"
	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/application/usecase/activity"
	"github.com/expense-daddy/backend/internal/application/usecase/backup"
	"github.com/expense-daddy/backend/internal/application/usecase/card"
	"github.com/expense-daddy/backend/internal/application/usecase/dashboard"
	"github.com/expense-daddy/backend/internal/application/usecase/expense"
	"github.com/expense-daddy/backend/internal/application/usecase/fixedexpense"
	"github.com/expense-daddy/backend/internal/application/usecase/ledger"
	"github.com/expense-daddy/backend/internal/application/usecase/loan"
	"github.com/expense-daddy/backend/internal/application/usecase/profile"
	"github.com/expense-daddy/backend/internal/application/usecase/savings"
	"github.com/expense-daddy/backend/internal/application/usecase/shopping"
	"github.com/expense-daddy/backend/internal/infra/server/router"
	"github.com/expense-daddy/backend/internal/integration/adapters"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/controller"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-daddy/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	Router  *router.Router
	Refresh *ledger.RefreshUseCase
	Export  *backup.ExportBackupUseCase
	Import  *backup.ImportBackupUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired over kv.
// backend names kv in health reports.
func NewInjector(cfg *config.Config, kv adapter.KeyValueStore, backend string, clock adapter.Clock) *Injector {
	store := persistence.NewCollectionStore(kv)

	// Create repositories
	activityRepo := persistence.NewActivityRepository(store, clock)
	historyRepo := persistence.NewBudgetHistoryRepository(store, clock)
	profileRepo := persistence.NewProfileRepository(store, historyRepo, activityRepo)
	expenseRepo := persistence.NewExpenseRepository(store, activityRepo, clock)
	loanRepo := persistence.NewLoanRepository(store, activityRepo, clock)
	fixedRepo := persistence.NewFixedExpenseRepository(store, activityRepo, clock)
	goalRepo := persistence.NewSavingsGoalRepository(store, activityRepo, clock)
	cardRepo := persistence.NewSavedCardRepository(store, activityRepo, clock)
	shoppingRepo := persistence.NewShoppingListRepository(store)

	// Create ledger and backup use cases
	refreshUseCase := ledger.NewRefreshUseCase(ledger.Repositories{
		Expenses:      expenseRepo,
		Loans:         loanRepo,
		FixedExpenses: fixedRepo,
		SavingsGoals:  goalRepo,
		SavedCards:    cardRepo,
		Activity:      activityRepo,
		BudgetHistory: historyRepo,
		ShoppingList:  shoppingRepo,
		Profile:       profileRepo,
	})
	exportUseCase := backup.NewExportBackupUseCase(store, profileRepo, clock)
	importUseCase := backup.NewImportBackupUseCase(store)

	// Create controllers
	healthController := controller.NewHealthController(store, backend)

	expenseController := controller.NewExpenseController(
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewCreateExpenseUseCase(expenseRepo),
		expense.NewUpdateExpenseUseCase(expenseRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
	)

	loanController := controller.NewLoanController(
		loan.NewListLoansUseCase(loanRepo),
		loan.NewCreateLoanUseCase(loanRepo),
		loan.NewUpdateLoanUseCase(loanRepo),
		loan.NewMarkLoanPaidUseCase(loanRepo, clock),
		loan.NewDeleteLoanUseCase(loanRepo),
	)

	fixedExpenseController := controller.NewFixedExpenseController(
		fixedexpense.NewListFixedExpensesUseCase(fixedRepo),
		fixedexpense.NewCreateFixedExpenseUseCase(fixedRepo),
		fixedexpense.NewUpdateFixedExpenseUseCase(fixedRepo),
		fixedexpense.NewDeleteFixedExpenseUseCase(fixedRepo),
	)

	savingsGoalController := controller.NewSavingsGoalController(
		savings.NewListSavingsGoalsUseCase(goalRepo),
		savings.NewCreateSavingsGoalUseCase(goalRepo),
		savings.NewUpdateSavingsGoalUseCase(goalRepo),
		savings.NewDeleteSavingsGoalUseCase(goalRepo),
	)

	cardController := controller.NewCardController(
		card.NewListCardsUseCase(cardRepo),
		card.NewCreateCardUseCase(cardRepo),
		card.NewUpdateCardUseCase(cardRepo),
		card.NewDeleteCardUseCase(cardRepo),
	)

	profileController := controller.NewProfileController(
		profile.NewGetProfileUseCase(profileRepo),
		profile.NewUpdateProfileUseCase(profileRepo),
		profile.NewListBudgetHistoryUseCase(historyRepo),
	)

	activityController := controller.NewActivityController(
		activity.NewListActivityUseCase(activityRepo),
	)

	shoppingListController := controller.NewShoppingListController(
		shopping.NewGetShoppingListUseCase(shoppingRepo),
		shopping.NewReplaceShoppingListUseCase(shoppingRepo),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetSummaryUseCase(refreshUseCase, clock),
		dashboard.NewGetCalendarUseCase(refreshUseCase, clock),
	)

	backupController := controller.NewBackupController(exportUseCase, importUseCase, cfg.Backup.MaxImportBytes)

	// Create middleware
	importRateLimiter := middleware.NewRateLimiter(cfg.Backup.ImportMaxAttempts, cfg.Backup.ImportWindow)

	var authMiddleware *middleware.AuthMiddleware
	if cfg.Auth.Enabled() {
		authMiddleware = middleware.NewAuthMiddleware(adapters.NewTokenVerifier(cfg.Auth.JWTSecret))
	} else {
		slog.Warn("AUTH_JWT_SECRET is empty, API is served without authentication")
	}

	// Create router
	r := router.NewRouter(
		healthController,
		expenseController,
		loanController,
		fixedExpenseController,
		savingsGoalController,
		cardController,
		profileController,
		activityController,
		shoppingListController,
		dashboardController,
		backupController,
		importRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:  cfg,
		Router:  r,
		Refresh: refreshUseCase,
		Export:  exportUseCase,
		Import:  importUseCase,
	}
}
