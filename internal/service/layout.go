package service

import (
	"context"
	"errors"

	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// StackLayoutService provides stack layout-related operations.
type StackLayoutService interface {
	GetActive(ctx context.Context, yardID string) (*repository.StackLayoutConfig, error)
	Replace(ctx context.Context, yardID string, stacks []model.Stack, updatedBy string) (*repository.StackLayoutConfig, error)
	History(ctx context.Context, yardID string, limit int) ([]repository.StackLayoutConfig, error)
}

// StackLayoutServiceImpl implements StackLayoutService.
type StackLayoutServiceImpl struct {
	layoutRepo repository.StackLayoutsRepositoryInterface
}

// NewStackLayoutService creates a new stack layout service.
func NewStackLayoutService(layoutRepo repository.StackLayoutsRepositoryInterface) StackLayoutService {
	if layoutRepo == nil {
		return &StackLayoutServiceImpl{}
	}
	return &StackLayoutServiceImpl{
		layoutRepo: layoutRepo,
	}
}

func (s *StackLayoutServiceImpl) GetActive(ctx context.Context, yardID string) (*repository.StackLayoutConfig, error) {
	if s.layoutRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.layoutRepo.GetActive(ctx, yardID)
}

func (s *StackLayoutServiceImpl) Replace(ctx context.Context, yardID string, stacks []model.Stack, updatedBy string) (*repository.StackLayoutConfig, error) {
	if s.layoutRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.layoutRepo.Replace(ctx, yardID, stacks, updatedBy)
}

func (s *StackLayoutServiceImpl) History(ctx context.Context, yardID string, limit int) ([]repository.StackLayoutConfig, error) {
	if s.layoutRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.layoutRepo.History(ctx, yardID, limit)
}
