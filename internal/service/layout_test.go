package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/mocks"
	"github.com/guttosm/yard-service/internal/repository"
	"github.com/guttosm/yard-service/internal/service"
)

func testStacks() []model.Stack {
	return []model.Stack{
		{Number: 3, SectionID: "A", Rows: 6, MaxTiers: 4, SizeClass: model.Size40ft, IsActive: true},
		{Number: 5, SectionID: "A", Rows: 6, MaxTiers: 4, SizeClass: model.Size40ft, IsActive: true},
		{Number: 7, SectionID: "B", Rows: 4, MaxTiers: 3, SizeClass: model.Size20ft, IsActive: true},
	}
}

func TestStackLayoutService_GetActive(t *testing.T) {
	tests := []struct {
		name          string
		yardID        string
		setupMock     func(*mocks.MockStackLayoutsRepositoryInterface)
		expectedError error
		expectStacks  bool
	}{
		{
			name:   "successful get active",
			yardID: "main",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				config := &repository.StackLayoutConfig{
					ID:        primitive.NewObjectID(),
					YardID:    "main",
					Stacks:    testStacks(),
					Active:    true,
					Version:   1,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}
				m.On("GetActive", mock.Anything, "main").Return(config, nil)
			},
			expectedError: nil,
			expectStacks:  true,
		},
		{
			name:   "no active layout",
			yardID: "main",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				m.On("GetActive", mock.Anything, "main").Return(nil, nil)
			},
			expectedError: nil,
			expectStacks:  false,
		},
		{
			name:   "repository error",
			yardID: "main",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				m.On("GetActive", mock.Anything, "main").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
			expectStacks:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockStackLayoutsRepositoryInterface)
			tt.setupMock(mockRepo)

			svc := service.NewStackLayoutService(mockRepo)
			config, err := svc.GetActive(context.Background(), tt.yardID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}

			if tt.expectStacks {
				assert.NotNil(t, config)
				assert.Len(t, config.Stacks, 3)
				assert.Equal(t, "main", config.YardID)
			} else if tt.expectedError == nil {
				assert.Nil(t, config)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStackLayoutService_GetActive_NilRepository(t *testing.T) {
	svc := service.NewStackLayoutService(nil)
	config, err := svc.GetActive(context.Background(), "main")

	assert.Error(t, err)
	assert.Equal(t, service.ErrRepositoryNotConfigured, err)
	assert.Nil(t, config)
}

func TestStackLayoutService_Replace(t *testing.T) {
	tests := []struct {
		name          string
		yardID        string
		updatedBy     string
		setupMock     func(*mocks.MockStackLayoutsRepositoryInterface)
		expectedError error
	}{
		{
			name:      "successful replace",
			yardID:    "main",
			updatedBy: "ops@example.com",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				config := &repository.StackLayoutConfig{
					ID:        primitive.NewObjectID(),
					YardID:    "main",
					Stacks:    testStacks(),
					Active:    true,
					Version:   2,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
					UpdatedBy: "ops@example.com",
				}
				m.On("Replace", mock.Anything, "main", testStacks(), "ops@example.com").Return(config, nil)
			},
			expectedError: nil,
		},
		{
			name:      "repository error",
			yardID:    "main",
			updatedBy: "ops@example.com",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				m.On("Replace", mock.Anything, "main", testStacks(), "ops@example.com").Return(nil, errors.New("write conflict"))
			},
			expectedError: errors.New("write conflict"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockStackLayoutsRepositoryInterface)
			tt.setupMock(mockRepo)

			svc := service.NewStackLayoutService(mockRepo)
			config, err := svc.Replace(context.Background(), tt.yardID, testStacks(), tt.updatedBy)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, config)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, config)
				assert.Equal(t, testStacks(), config.Stacks)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStackLayoutService_Replace_NilRepository(t *testing.T) {
	svc := service.NewStackLayoutService(nil)
	config, err := svc.Replace(context.Background(), "main", testStacks(), "ops")

	assert.Error(t, err)
	assert.Equal(t, service.ErrRepositoryNotConfigured, err)
	assert.Nil(t, config)
}

func TestStackLayoutService_History(t *testing.T) {
	tests := []struct {
		name          string
		yardID        string
		limit         int
		setupMock     func(*mocks.MockStackLayoutsRepositoryInterface)
		expectedError error
		expectedCount int
	}{
		{
			name:   "successful history",
			yardID: "main",
			limit:  10,
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				configs := []repository.StackLayoutConfig{
					{ID: primitive.NewObjectID(), YardID: "main", Version: 2, Active: true},
					{ID: primitive.NewObjectID(), YardID: "main", Version: 1, Active: false},
				}
				m.On("History", mock.Anything, "main", 10).Return(configs, nil)
			},
			expectedError: nil,
			expectedCount: 2,
		},
		{
			name:   "empty history",
			yardID: "empty-yard",
			limit:  5,
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				m.On("History", mock.Anything, "empty-yard", 5).Return([]repository.StackLayoutConfig{}, nil)
			},
			expectedError: nil,
			expectedCount: 0,
		},
		{
			name:   "repository error",
			yardID: "main",
			limit:  10,
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				m.On("History", mock.Anything, "main", 10).Return(nil, errors.New("connection error"))
			},
			expectedError: errors.New("connection error"),
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockStackLayoutsRepositoryInterface)
			tt.setupMock(mockRepo)

			svc := service.NewStackLayoutService(mockRepo)
			configs, err := svc.History(context.Background(), tt.yardID, tt.limit)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, configs)
			} else {
				assert.NoError(t, err)
				assert.Len(t, configs, tt.expectedCount)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStackLayoutService_History_NilRepository(t *testing.T) {
	svc := service.NewStackLayoutService(nil)
	configs, err := svc.History(context.Background(), "main", 10)

	assert.Error(t, err)
	assert.Equal(t, service.ErrRepositoryNotConfigured, err)
	assert.Nil(t, configs)
}
