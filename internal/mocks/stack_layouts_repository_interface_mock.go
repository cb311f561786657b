// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/repository"
)

type MockStackLayoutsRepositoryInterface struct {
	mock.Mock
}

func (m *MockStackLayoutsRepositoryInterface) GetActive(ctx context.Context, yardID string) (*repository.StackLayoutConfig, error) {
	args := m.Called(ctx, yardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StackLayoutConfig), args.Error(1)
}

func (m *MockStackLayoutsRepositoryInterface) Replace(ctx context.Context, yardID string, stacks []model.Stack, updatedBy string) (*repository.StackLayoutConfig, error) {
	args := m.Called(ctx, yardID, stacks, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StackLayoutConfig), args.Error(1)
}

func (m *MockStackLayoutsRepositoryInterface) History(ctx context.Context, yardID string, limit int) ([]repository.StackLayoutConfig, error) {
	args := m.Called(ctx, yardID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StackLayoutConfig), args.Error(1)
}
