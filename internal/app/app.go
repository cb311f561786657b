// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/config"
	"github.com/guttosm/yard-service/internal/http"
	"github.com/guttosm/yard-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
// The returned cleanup drains the async log writer and closes the MongoDB
// client; call it after the HTTP server has stopped.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize business services
	serviceComponents := InitializeServices(cfg.Resolver)

	// Initialize database components (MongoDB repositories and services)
	defaultYardID := cfg.Resolver.DefaultYardID
	if defaultYardID == "" {
		defaultYardID = http.DefaultYardID
	}
	dbComponents := InitializeDatabase(cfg.Database, defaultYardID)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents.Resolver, dbComponents, cfg)

	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		middleware.StopAsyncLogger()
		if dbComponents != nil && dbComponents.DB != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := dbComponents.DB.Close(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to close MongoDB client")
			}
		}
	}

	return router, cleanup
}
