//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/mocks"
	"github.com/guttosm/yard-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCheckActiveLayout(t *testing.T) {
	tests := []struct {
		name      string
		yardID    string
		setupMock func(*mocks.MockStackLayoutsRepositoryInterface)
		wantError bool
	}{
		{
			name:   "no active layout is not an error",
			yardID: "main",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				m.On("GetActive", mock.Anything, "main").Return(nil, nil).Once()
			},
			wantError: false,
		},
		{
			name:   "active layout found",
			yardID: "main",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				layout := &repository.StackLayoutConfig{
					ID:     primitive.NewObjectID(),
					YardID: "main",
					Stacks: []model.Stack{
						{Number: 3, Rows: 6, MaxTiers: 4, SizeClass: model.Size40ft, IsActive: true},
						{Number: 5, Rows: 6, MaxTiers: 4, SizeClass: model.Size40ft, IsActive: true},
					},
					Active:  true,
					Version: 3,
				}
				m.On("GetActive", mock.Anything, "main").Return(layout, nil).Once()
			},
			wantError: false,
		},
		{
			name:   "probes the configured yard",
			yardID: "north",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				m.On("GetActive", mock.Anything, "north").Return(nil, nil).Once()
			},
			wantError: false,
		},
		{
			name:   "get active error",
			yardID: "main",
			setupMock: func(m *mocks.MockStackLayoutsRepositoryInterface) {
				m.On("GetActive", mock.Anything, "main").Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockStackLayoutsRepositoryInterface)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := checkActiveLayout(mockRepo, tt.yardID)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
