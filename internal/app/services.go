// Package app provides service initialization.
package app

import (
	"github.com/guttosm/yard-service/config"
	"github.com/guttosm/yard-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Resolver service.YardResolver
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.ResolverConfig) *ServiceComponents {
	var opts []service.Option

	if topology := buildTopology(cfg); topology != nil {
		opts = append(opts, service.WithTopology(topology))
	}

	if cfg.CacheSize > 0 {
		opts = append(opts, service.WithCache(cfg.CacheSize, cfg.CacheTTL))
	}

	resolver := service.NewYardResolverService(opts...)

	return &ServiceComponents{
		Resolver: resolver,
	}
}

// buildTopology assembles a topology from configured bands and special stacks.
// Returns nil when nothing is overridden, leaving the resolver on its defaults.
func buildTopology(cfg config.ResolverConfig) service.TopologyResolver {
	if len(cfg.StackBands) == 0 && len(cfg.SpecialStacks) == 0 {
		return nil
	}

	var topoOpts []service.TopologyOption
	if len(cfg.StackBands) > 0 {
		bands := make([]service.Band, 0, len(cfg.StackBands))
		for _, b := range cfg.StackBands {
			bands = append(bands, service.Band{Lo: b[0], Hi: b[1]})
		}
		topoOpts = append(topoOpts, service.WithBands(bands))
	}
	if len(cfg.SpecialStacks) > 0 {
		topoOpts = append(topoOpts, service.WithSpecialStacks(cfg.SpecialStacks))
	}

	return service.NewStackTopology(topoOpts...)
}
