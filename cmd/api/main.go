// Package main is the entry point for the household budget API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/household-budget/backend/config"
	"github.com/household-budget/backend/internal/application/usecase/auth"
	"github.com/household-budget/backend/internal/application/usecase/fixedexpense"
	"github.com/household-budget/backend/internal/infra/db"
	"github.com/household-budget/backend/internal/infra/dependency"
	"github.com/household-budget/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting household budget API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.FixedExpenseModel{},
		&model.PurchaseRequestModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize redis for the refresh token denylist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	cancelPing()

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Seed the two household members
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := injector.SeedUseCase.Execute(seedCtx, seedInput(cfg)); err != nil {
		cancelSeed()
		slog.Error("Failed to seed household members", "error", err)
		os.Exit(1)
	}
	cancelSeed()

	// Start background workers
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(workerCtx)
		go runReminderSweep(workerCtx, injector.ReminderUseCase, cfg)
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// seedInput builds the member seed list from configuration. A member without
// a configured email gets none.
func seedInput(cfg *config.Config) auth.SeedHouseholdInput {
	input := auth.SeedHouseholdInput{}
	for i, name := range cfg.Household.MemberNames {
		member := auth.HouseholdMember{
			Name:     name,
			Password: cfg.Household.DefaultPassword,
		}
		if i < len(cfg.Household.MemberEmails) {
			member.Email = cfg.Household.MemberEmails[i]
		}
		input.Members = append(input.Members, member)
	}
	return input
}

// runReminderSweep periodically queues due reminder emails for pending fixed
// expenses. The sweep is idempotent, repeated runs skip already queued
// reminders.
func runReminderSweep(ctx context.Context, uc *fixedexpense.QueueDueRemindersUseCase, cfg *config.Config) {
	ticker := time.NewTicker(cfg.Email.SweepInterval)
	defer ticker.Stop()

	sweep := func() {
		sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if _, err := uc.Execute(sweepCtx, fixedexpense.QueueDueRemindersInput{
			Recipients: cfg.Household.MemberEmails,
		}); err != nil {
			slog.Error("Due reminder sweep failed", "error", err)
		}
	}

	sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
