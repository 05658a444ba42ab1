// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/household-budget/backend/config"
	"github.com/household-budget/backend/internal/application/usecase/auth"
	"github.com/household-budget/backend/internal/application/usecase/dashboard"
	"github.com/household-budget/backend/internal/application/usecase/expense"
	"github.com/household-budget/backend/internal/application/usecase/fixedexpense"
	"github.com/household-budget/backend/internal/application/usecase/income"
	"github.com/household-budget/backend/internal/application/usecase/notification"
	"github.com/household-budget/backend/internal/application/usecase/request"
	"github.com/household-budget/backend/internal/infra/server/router"
	"github.com/household-budget/backend/internal/integration/adapters"
	"github.com/household-budget/backend/internal/integration/email"
	"github.com/household-budget/backend/internal/integration/email/templates"
	"github.com/household-budget/backend/internal/integration/entrypoint/controller"
	"github.com/household-budget/backend/internal/integration/entrypoint/middleware"
	"github.com/household-budget/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	SeedUseCase     *auth.SeedHouseholdUseCase
	ReminderUseCase *fixedexpense.QueueDueRemindersUseCase
	EmailWorker     *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	fixedRepo := persistence.NewFixedExpenseRepository(db)
	requestRepo := persistence.NewRequestRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, redisClient)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	seedUseCase := auth.NewSeedHouseholdUseCase(userRepo, passwordService)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	getExpensePlanUseCase := expense.NewGetExpensePlanUseCase(expenseRepo)

	// Create income use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Create fixed expense use cases
	createFixedUseCase := fixedexpense.NewCreateFixedExpenseUseCase(fixedRepo)
	listFixedUseCase := fixedexpense.NewListFixedExpensesUseCase(fixedRepo)
	updateFixedUseCase := fixedexpense.NewUpdateFixedExpenseUseCase(fixedRepo)
	deleteFixedUseCase := fixedexpense.NewDeleteFixedExpenseUseCase(fixedRepo)
	markPaymentUseCase := fixedexpense.NewMarkPaymentUseCase(fixedRepo)
	reminderUseCase := fixedexpense.NewQueueDueRemindersUseCase(fixedRepo, emailQueueRepo)

	// Create purchase request use cases
	createRequestUseCase := request.NewCreateRequestUseCase(requestRepo)
	listRequestsUseCase := request.NewListRequestsUseCase(requestRepo)
	respondRequestUseCase := request.NewRespondRequestUseCase(requestRepo)
	deleteRequestUseCase := request.NewDeleteRequestUseCase(requestRepo)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(expenseRepo, fixedRepo, incomeRepo)
	breakdownsUseCase := dashboard.NewGetBreakdownsUseCase(expenseRepo)
	forecastUseCase := dashboard.NewGetCardForecastUseCase(expenseRepo)

	// Create notification use case
	listNotificationsUseCase := notification.NewListNotificationsUseCase(requestRepo, fixedRepo, summaryUseCase)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval:  cfg.Email.PollInterval,
		BatchSize:     cfg.Email.BatchSize,
		RetentionDays: cfg.Email.RetentionDays,
	})

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		getExpensePlanUseCase,
	)

	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		listIncomesUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	fixedExpenseController := controller.NewFixedExpenseController(
		createFixedUseCase,
		listFixedUseCase,
		updateFixedUseCase,
		deleteFixedUseCase,
		markPaymentUseCase,
	)

	requestController := controller.NewRequestController(
		createRequestUseCase,
		listRequestsUseCase,
		respondRequestUseCase,
		deleteRequestUseCase,
	)

	dashboardController := controller.NewDashboardController(
		summaryUseCase,
		breakdownsUseCase,
		forecastUseCase,
	)

	notificationController := controller.NewNotificationController(listNotificationsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		incomeController,
		fixedExpenseController,
		requestController,
		dashboardController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Router:          r,
		SeedUseCase:     seedUseCase,
		ReminderUseCase: reminderUseCase,
		EmailWorker:     emailWorker,
	}, nil
}
