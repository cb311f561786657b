package service

var (
	// DefaultBands defines the standard pairing bands of the yard layout.
	// Only odd stack numbers exist physically; within each band the
	// first-of-pair numbers start at the band's low bound and repeat every 4.
	DefaultBands = []Band{
		{Lo: 3, Hi: 29},
		{Lo: 33, Hi: 55},
		{Lo: 61, Hi: 99},
	}

	// DefaultSpecialStacks defines the stacks excluded from 40ft pairing
	// regardless of their declared size class.
	DefaultSpecialStacks = []int{1, 31, 101, 103}
)

// Band is one contiguous range of stack numbers sharing a pairing pattern.
// Within [Lo, Hi] the numbers Lo, Lo+4, Lo+8, ... are first-of-pair; each
// pairs with its first number + 2, skipping the number in between.
type Band struct {
	Lo int
	Hi int
}

// Contains reports whether n falls inside the band.
func (b Band) Contains(n int) bool {
	return n >= b.Lo && n <= b.Hi
}

// TopologyResolver is the single authority on stack adjacency. Every
// component that needs pairing decisions consults it instead of carrying
// its own band tables.
type TopologyResolver interface {
	// AdjacentOf returns the partner stack number for n, or false when n has
	// no partner (special stack, outside all bands, or not a pair participant).
	AdjacentOf(n int) (int, bool)
	// IsSpecial reports whether n is one of the never-paired special stacks.
	IsSpecial(n int) bool
	// VirtualNumberFor returns the synthesized unit number for a pair: the
	// skipped number between the two members.
	VirtualNumberFor(a, b int) int
}

// TopologyOption configures a StackTopology.
type TopologyOption func(*StackTopology)

// StackTopology implements TopologyResolver over a configured set of bands
// and special stacks.
type StackTopology struct {
	bands   []Band
	special map[int]struct{}
}

// NewStackTopology creates a StackTopology with the given options. Without
// options it uses DefaultBands and DefaultSpecialStacks.
func NewStackTopology(opts ...TopologyOption) *StackTopology {
	t := &StackTopology{
		bands:   make([]Band, len(DefaultBands)),
		special: make(map[int]struct{}, len(DefaultSpecialStacks)),
	}
	copy(t.bands, DefaultBands)
	for _, n := range DefaultSpecialStacks {
		t.special[n] = struct{}{}
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithBands replaces the pairing bands.
func WithBands(bands []Band) TopologyOption {
	return func(t *StackTopology) {
		if len(bands) > 0 {
			t.bands = make([]Band, len(bands))
			copy(t.bands, bands)
		}
	}
}

// WithSpecialStacks replaces the special stack set.
func WithSpecialStacks(numbers []int) TopologyOption {
	return func(t *StackTopology) {
		t.special = make(map[int]struct{}, len(numbers))
		for _, n := range numbers {
			t.special[n] = struct{}{}
		}
	}
}

// AdjacentOf returns the partner stack number for n. The pairing pattern is
// positional within the band: offsets divisible by 4 are first-of-pair and
// partner upward (n+2), offsets of 2 partner downward (n-2), anything else
// is the skipped in-between number and never pairs. Special stacks have no
// partner, and a computed partner that is itself special or falls outside
// the band yields none.
func (t *StackTopology) AdjacentOf(n int) (int, bool) {
	if n <= 0 || t.IsSpecial(n) {
		return 0, false
	}

	for _, band := range t.bands {
		if !band.Contains(n) {
			continue
		}

		var partner int
		switch (n - band.Lo) % 4 {
		case 0:
			partner = n + 2
		case 2:
			partner = n - 2
		default:
			return 0, false
		}

		if !band.Contains(partner) || t.IsSpecial(partner) {
			return 0, false
		}
		return partner, true
	}

	return 0, false
}

// IsSpecial reports whether n is a special stack.
func (t *StackTopology) IsSpecial(n int) bool {
	_, ok := t.special[n]
	return ok
}

// VirtualNumberFor returns min(a, b) + 1, the stack number skipped between
// the two members of a pair. That number never exists physically, which
// makes it a collision-free identity for the virtual unit.
func (t *StackTopology) VirtualNumberFor(a, b int) int {
	if a < b {
		return a + 1
	}
	return b + 1
}
