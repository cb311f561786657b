// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/yard-service/config"
	"github.com/guttosm/yard-service/internal/circuitbreaker"
	"github.com/guttosm/yard-service/internal/middleware"
	"github.com/guttosm/yard-service/internal/repository"
	"github.com/guttosm/yard-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	LayoutsRepo           repository.StackLayoutsRepositoryInterface
	LoggingService        service.LoggingService
	LayoutsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, defaultYardID string) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	layoutsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-stack-layouts",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	// Request/audit log writes go through a bounded worker pool
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	layoutsRepo := repository.NewStackLayoutsRepository(db)
	layoutsRepoWithCB := repository.NewStackLayoutsRepositoryWithCircuitBreaker(layoutsRepo, layoutsCB)

	// Surface missing layout configuration at startup instead of on the first request
	if err := checkActiveLayout(layoutsRepoWithCB, defaultYardID); err != nil {
		log.Warn().Err(err).Msg("Failed to check active stack layout")
	}

	return &DatabaseComponents{
		DB:                    db,
		LayoutsRepo:           layoutsRepoWithCB,
		LoggingService:        loggingService,
		LayoutsCircuitBreaker: layoutsCB,
		LogsCircuitBreaker:    logsCB,
	}
}

// checkActiveLayout probes the stored layout for the default yard. A missing
// layout is not an error: resolve requests can still carry inline snapshots,
// so it only logs what callers should expect.
func checkActiveLayout(repo repository.StackLayoutsRepositoryInterface, yardID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx, yardID)
	if err != nil {
		return err
	}

	if active == nil {
		log.Warn().Str("yard_id", yardID).Msg("No active stack layout stored; resolve requests must carry inline snapshots until one is stored")
		return nil
	}

	log.Info().
		Str("yard_id", yardID).
		Int("version", active.Version).
		Int("stacks", len(active.Stacks)).
		Msg("Active stack layout loaded")
	return nil
}
