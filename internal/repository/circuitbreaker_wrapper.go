// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/yard-service/internal/circuitbreaker"
	"github.com/guttosm/yard-service/internal/domain/model"
)

// StackLayoutsRepositoryWithCircuitBreaker wraps StackLayoutsRepository with circuit breaker protection.
type StackLayoutsRepositoryWithCircuitBreaker struct {
	repo           *StackLayoutsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewStackLayoutsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewStackLayoutsRepositoryWithCircuitBreaker(repo *StackLayoutsRepository, cb *circuitbreaker.CircuitBreaker) *StackLayoutsRepositoryWithCircuitBreaker {
	return &StackLayoutsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active stack layout with circuit breaker protection.
// There is no default layout to fall back on, so an open circuit surfaces as
// an error and the caller decides how to degrade.
func (r *StackLayoutsRepositoryWithCircuitBreaker) GetActive(ctx context.Context, yardID string) (*StackLayoutConfig, error) {
	var result *StackLayoutConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx, yardID)
		return cbErr
	})
	return result, err
}

// Replace installs a new active layout with circuit breaker protection.
func (r *StackLayoutsRepositoryWithCircuitBreaker) Replace(ctx context.Context, yardID string, stacks []model.Stack, updatedBy string) (*StackLayoutConfig, error) {
	var result *StackLayoutConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Replace(ctx, yardID, stacks, updatedBy)
		return cbErr
	})
	return result, err
}

// History returns the layout versions of a yard with circuit breaker protection.
func (r *StackLayoutsRepositoryWithCircuitBreaker) History(ctx context.Context, yardID string, limit int) ([]StackLayoutConfig, error) {
	var result []StackLayoutConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.History(ctx, yardID, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *StackLayoutsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
