// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pulso-finanzas/backend/config"
	"github.com/pulso-finanzas/backend/internal/application/usecase/balance"
	"github.com/pulso-finanzas/backend/internal/application/usecase/insight"
	"github.com/pulso-finanzas/backend/internal/application/usecase/metrics"
	"github.com/pulso-finanzas/backend/internal/application/usecase/target"
	"github.com/pulso-finanzas/backend/internal/domain/valueobject"
	"github.com/pulso-finanzas/backend/internal/infra/server/router"
	"github.com/pulso-finanzas/backend/internal/integration/adapters"
	"github.com/pulso-finanzas/backend/internal/integration/email"
	"github.com/pulso-finanzas/backend/internal/integration/email/templates"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/controller"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/middleware"
	"github.com/pulso-finanzas/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	workspaceRepo := persistence.NewWorkspaceRepository(db)
	factRepo := persistence.NewFactRepository(db)
	snapshotRepo := persistence.NewBalanceSnapshotRepository(db)
	streakRepo := persistence.NewStreakRepository(db)
	targetRepo := persistence.NewTargetRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	insightService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	notificationService := email.NewService(emailQueueRepo)

	tolerance := valueobject.ToleranceConfig{
		AbsoluteThreshold: decimal.NewFromInt(cfg.Engine.ToleranceAbsolute),
		BalancePercent:    decimal.NewFromFloat(0.02),
	}

	// Create use cases
	resolver := target.NewResolver(targetRepo)
	loader := metrics.NewFactLoader(factRepo, snapshotRepo, resolver)
	getMetricsUseCase := metrics.NewGetMetricsUseCase(loader, workspaceRepo, streakRepo, tolerance)

	recordBalanceUseCase := balance.NewRecordBalanceUseCase(
		snapshotRepo,
		streakRepo,
		workspaceRepo,
		factRepo,
		notificationService,
		tolerance,
	)
	listBalancesUseCase := balance.NewListBalancesUseCase(snapshotRepo)

	saveTargetUseCase := target.NewSaveTargetUseCase(targetRepo)
	bulkSaveTargetsUseCase := target.NewBulkSaveTargetsUseCase(targetRepo)
	getTargetUseCase := target.NewGetTargetUseCase(resolver)

	generateInsightUseCase := insight.NewGenerateInsightUseCase(getMetricsUseCase, workspaceRepo, insightService)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create template renderer: %w", err)
	}
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})
	metricsController := controller.NewMetricsController(getMetricsUseCase)
	balanceController := controller.NewBalanceController(recordBalanceUseCase, listBalancesUseCase)
	targetController := controller.NewTargetController(saveTargetUseCase, bulkSaveTargetsUseCase, getTargetUseCase)
	insightController := controller.NewInsightController(generateInsightUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var writeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(30, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		metricsController,
		balanceController,
		targetController,
		insightController,
		writeRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: worker,
	}, nil
}
