// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/yard-service/internal/domain/model"
)

// MockYardResolver is a mock implementation of service.YardResolver.
type MockYardResolver struct {
	mock.Mock
}

// Resolve mocks the Resolve method.
func (m *MockYardResolver) Resolve(stacks []model.Stack, containers []model.Container) model.Resolution {
	args := m.Called(stacks, containers)
	return args.Get(0).(model.Resolution)
}

// PartnerOf mocks the PartnerOf method.
func (m *MockYardResolver) PartnerOf(stackNumber int) model.PartnerInfo {
	args := m.Called(stackNumber)
	return args.Get(0).(model.PartnerInfo)
}

// InvalidateCache mocks the InvalidateCache method.
func (m *MockYardResolver) InvalidateCache() {
	m.Called()
}
