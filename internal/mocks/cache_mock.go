// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/yard-service/internal/domain/model"
)

// MockCache is a mock implementation of cache.Cache.
type MockCache struct {
	mock.Mock
}

// Get mocks the Get method.
func (m *MockCache) Get(key int) (model.PartnerInfo, bool) {
	args := m.Called(key)
	return args.Get(0).(model.PartnerInfo), args.Bool(1)
}

// Set mocks the Set method.
func (m *MockCache) Set(key int, value model.PartnerInfo) {
	m.Called(key, value)
}

// Invalidate mocks the Invalidate method.
func (m *MockCache) Invalidate(key int) {
	m.Called(key)
}

// Clear mocks the Clear method.
func (m *MockCache) Clear() {
	m.Called()
}

// Stop mocks the Stop method.
func (m *MockCache) Stop() {
	m.Called()
}
