// Package app provides router configuration.
package app

import (
	"github.com/guttosm/yard-service/config"
	"github.com/guttosm/yard-service/internal/http"
	"github.com/guttosm/yard-service/internal/repository"
	"github.com/guttosm/yard-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	resolver service.YardResolver,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var layoutsRepo repository.StackLayoutsRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		layoutsRepo = dbComponents.LayoutsRepo
		loggingService = dbComponents.LoggingService
	}

	// Initialize stack layout service
	var layoutService service.StackLayoutService
	if layoutsRepo != nil {
		layoutService = service.NewStackLayoutService(layoutsRepo)
	}

	handler := http.NewHandler(resolver, layoutService,
		http.WithDefaultYardID(cfg.Resolver.DefaultYardID),
	)
	healthHandler := http.NewHealthHandler()

	// Expose database health and breaker states on the readiness probe
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.CheckerFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.LayoutsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_stack_layouts", dbComponents.LayoutsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		LayoutService:     layoutService,
		Resolver:          resolver,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
