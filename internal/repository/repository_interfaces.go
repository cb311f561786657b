// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/yard-service/internal/domain/model"
)

// StackLayoutsRepositoryInterface defines the interface for stack layout repository operations.
type StackLayoutsRepositoryInterface interface {
	GetActive(ctx context.Context, yardID string) (*StackLayoutConfig, error)
	Replace(ctx context.Context, yardID string, stacks []model.Stack, updatedBy string) (*StackLayoutConfig, error)
	History(ctx context.Context, yardID string, limit int) ([]StackLayoutConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
