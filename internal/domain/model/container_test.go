package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainer_DisplayStatus(t *testing.T) {
	tests := []struct {
		name      string
		container Container
		expected  ContainerStatus
	}{
		{
			name:      "damaged",
			container: Container{ID: "MSKU0000001", Status: StatusDamaged},
			expected:  StatusDamaged,
		},
		{
			name:      "maintenance",
			container: Container{ID: "MSKU0000002", Status: StatusMaintenance},
			expected:  StatusMaintenance,
		},
		{
			name:      "occupied",
			container: Container{ID: "MSKU0000003", Status: StatusOccupied},
			expected:  StatusOccupied,
		},
		{
			name:      "unknown status degrades to occupied",
			container: Container{ID: "MSKU0000004", Status: ContainerStatus("frozen")},
			expected:  StatusOccupied,
		},
		{
			name:      "empty status degrades to occupied",
			container: Container{ID: "MSKU0000005"},
			expected:  StatusOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.container.DisplayStatus())
		})
	}
}

func TestLocation_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		expected bool
	}{
		{
			name:     "all positive",
			location: Location{StackNumber: 7, Row: 2, Tier: 3},
			expected: true,
		},
		{
			name:     "zero stack",
			location: Location{StackNumber: 0, Row: 2, Tier: 3},
			expected: false,
		},
		{
			name:     "zero row",
			location: Location{StackNumber: 7, Row: 0, Tier: 3},
			expected: false,
		},
		{
			name:     "zero tier",
			location: Location{StackNumber: 7, Row: 2, Tier: 0},
			expected: false,
		},
		{
			name:     "negative values",
			location: Location{StackNumber: -7, Row: -2, Tier: -3},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.location.IsValid())
		})
	}
}
