package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeClass_Valid(t *testing.T) {
	tests := []struct {
		name     string
		class    SizeClass
		expected bool
	}{
		{
			name:     "20ft",
			class:    Size20ft,
			expected: true,
		},
		{
			name:     "40ft",
			class:    Size40ft,
			expected: true,
		},
		{
			name:     "empty",
			class:    SizeClass(""),
			expected: false,
		},
		{
			name:     "unknown value",
			class:    SizeClass("45ft"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.Valid())
		})
	}
}

func TestStack_PairingEligible(t *testing.T) {
	tests := []struct {
		name     string
		stack    Stack
		expected bool
	}{
		{
			name:     "active 40ft non-special",
			stack:    Stack{Number: 3, SizeClass: Size40ft, IsActive: true},
			expected: true,
		},
		{
			name:     "20ft never pairs",
			stack:    Stack{Number: 3, SizeClass: Size20ft, IsActive: true},
			expected: false,
		},
		{
			name:     "special stack never pairs",
			stack:    Stack{Number: 1, SizeClass: Size40ft, IsSpecial: true, IsActive: true},
			expected: false,
		},
		{
			name:     "inactive stack never pairs",
			stack:    Stack{Number: 3, SizeClass: Size40ft, IsActive: false},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stack.PairingEligible())
		})
	}
}
