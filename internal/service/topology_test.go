package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewStackTopology tests the constructor and options.
func TestNewStackTopology(t *testing.T) {
	tests := []struct {
		name     string
		options  []TopologyOption
		validate func(*testing.T, *StackTopology)
	}{
		{
			name:    "uses default bands and special stacks when no options",
			options: nil,
			validate: func(t *testing.T, topo *StackTopology) {
				assert.Equal(t, DefaultBands, topo.bands)
				for _, n := range DefaultSpecialStacks {
					assert.True(t, topo.IsSpecial(n))
				}
			},
		},
		{
			name:    "uses custom bands with option",
			options: []TopologyOption{WithBands([]Band{{Lo: 11, Hi: 21}})},
			validate: func(t *testing.T, topo *StackTopology) {
				assert.Equal(t, []Band{{Lo: 11, Hi: 21}}, topo.bands)
			},
		},
		{
			name:    "uses custom special stacks with option",
			options: []TopologyOption{WithSpecialStacks([]int{7})},
			validate: func(t *testing.T, topo *StackTopology) {
				assert.True(t, topo.IsSpecial(7))
				assert.False(t, topo.IsSpecial(1))
			},
		},
		{
			name:    "empty bands option keeps defaults",
			options: []TopologyOption{WithBands(nil)},
			validate: func(t *testing.T, topo *StackTopology) {
				assert.Equal(t, DefaultBands, topo.bands)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topo := NewStackTopology(tt.options...)
			if tt.validate != nil {
				tt.validate(t, topo)
			}
		})
	}
}

// TestStackTopology_AdjacentOf tests partner resolution across all three bands.
func TestStackTopology_AdjacentOf(t *testing.T) {
	topo := NewStackTopology()

	tests := []struct {
		name            string
		stack           int
		expectedPartner int
		expectedOK      bool
	}{
		{name: "first band low edge pairs up", stack: 3, expectedPartner: 5, expectedOK: true},
		{name: "first band second of pair pairs down", stack: 5, expectedPartner: 3, expectedOK: true},
		{name: "first band mid pairs up", stack: 11, expectedPartner: 13, expectedOK: true},
		{name: "first band high edge pairs down", stack: 29, expectedPartner: 27, expectedOK: true},
		{name: "first band last first-of-pair", stack: 27, expectedPartner: 29, expectedOK: true},
		{name: "second band low edge", stack: 33, expectedPartner: 35, expectedOK: true},
		{name: "second band mid", stack: 39, expectedPartner: 37, expectedOK: true},
		{name: "second band high edge", stack: 55, expectedPartner: 53, expectedOK: true},
		{name: "third band low edge", stack: 61, expectedPartner: 63, expectedOK: true},
		{name: "third band mid", stack: 85, expectedPartner: 87, expectedOK: true},
		{name: "third band high edge", stack: 99, expectedPartner: 97, expectedOK: true},
		{name: "special stack 1 has no partner", stack: 1, expectedOK: false},
		{name: "special stack 31 has no partner", stack: 31, expectedOK: false},
		{name: "special stack 101 has no partner", stack: 101, expectedOK: false},
		{name: "special stack 103 has no partner", stack: 103, expectedOK: false},
		{name: "skipped in-between number never pairs", stack: 4, expectedOK: false},
		{name: "skipped number inside band never pairs", stack: 9, expectedOK: false},
		{name: "below all bands", stack: 2, expectedOK: false},
		{name: "between first and second band", stack: 30, expectedOK: false},
		{name: "between second and third band", stack: 57, expectedOK: false},
		{name: "above all bands", stack: 105, expectedOK: false},
		{name: "zero is not a stack number", stack: 0, expectedOK: false},
		{name: "negative is not a stack number", stack: -3, expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partner, ok := topo.AdjacentOf(tt.stack)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedPartner, partner)
			}
		})
	}
}

// TestStackTopology_Involution verifies AdjacentOf is its own inverse over
// every number that has a partner.
func TestStackTopology_Involution(t *testing.T) {
	topo := NewStackTopology()

	defined := 0
	for n := 1; n <= 120; n++ {
		partner, ok := topo.AdjacentOf(n)
		if !ok {
			continue
		}
		defined++

		back, ok := topo.AdjacentOf(partner)
		assert.True(t, ok, "partner %d of %d must itself have a partner", partner, n)
		assert.Equal(t, n, back, "adjacentOf(adjacentOf(%d)) must return %d", n, n)
		assert.NotEqual(t, n, partner, "a stack never pairs with itself")
	}

	// 7 pairs in [3,29], 6 in [33,55], 10 in [61,99]: 46 participating numbers.
	assert.Equal(t, 46, defined)
}

// TestStackTopology_AdjacentOf_PartnerOutsideBand verifies truncated custom
// bands never pair across their high edge.
func TestStackTopology_AdjacentOf_PartnerOutsideBand(t *testing.T) {
	topo := NewStackTopology(WithBands([]Band{{Lo: 3, Hi: 4}}))

	// 3 is first-of-pair but its partner 5 falls outside the band.
	partner, ok := topo.AdjacentOf(3)

	assert.False(t, ok)
	assert.Zero(t, partner)
}

// TestStackTopology_AdjacentOf_SpecialPartner verifies a computed partner
// that is itself special yields no pairing.
func TestStackTopology_AdjacentOf_SpecialPartner(t *testing.T) {
	topo := NewStackTopology(WithSpecialStacks([]int{5}))

	partner, ok := topo.AdjacentOf(3)

	assert.False(t, ok)
	assert.Zero(t, partner)

	// The special stack itself has no partner either.
	_, ok = topo.AdjacentOf(5)
	assert.False(t, ok)
}

// TestStackTopology_VirtualNumberFor tests the skipped-number identity.
func TestStackTopology_VirtualNumberFor(t *testing.T) {
	topo := NewStackTopology()

	tests := []struct {
		name     string
		a        int
		b        int
		expected int
	}{
		{name: "ascending pair", a: 3, b: 5, expected: 4},
		{name: "descending pair", a: 5, b: 3, expected: 4},
		{name: "second band pair", a: 33, b: 35, expected: 34},
		{name: "third band pair", a: 97, b: 99, expected: 98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, topo.VirtualNumberFor(tt.a, tt.b))
		})
	}
}

func BenchmarkAdjacentOf(b *testing.B) {
	topo := NewStackTopology()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		topo.AdjacentOf(i%110 + 1)
	}
}
