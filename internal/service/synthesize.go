package service

import (
	"fmt"
	"sort"

	"github.com/guttosm/yard-service/internal/domain/model"
)

// unitBuilder accumulates one logical storage unit during a resolution.
type unitBuilder struct {
	number   int
	virtual  bool
	members  []int
	capacity int
	origin   model.PairingOrigin
	slots    []model.ContainerSlot
}

// yardIndex is the per-resolution working state: deduplicated stacks, the
// pairing plan derived from topology and persisted records, and the
// diagnostics accumulated along the way. It is built once per Resolve call
// and never shared.
type yardIndex struct {
	topology TopologyResolver

	stacks map[int]model.Stack
	order  []int // unique stack numbers, ascending

	units          []*unitBuilder
	virtualByStack map[int]*unitBuilder // member stack -> covering virtual unit
	physical       map[int]*unitBuilder // stack -> its own physical unit
	usedNumbers    map[int]bool         // unit numbers already assigned

	diags []model.Diagnostic
}

// newYardIndex deduplicates the stack list and synthesizes the pairing plan.
func newYardIndex(topology TopologyResolver, stacks []model.Stack) *yardIndex {
	idx := &yardIndex{
		topology:       topology,
		stacks:         make(map[int]model.Stack, len(stacks)),
		order:          make([]int, 0, len(stacks)),
		units:          make([]*unitBuilder, 0, len(stacks)),
		virtualByStack: make(map[int]*unitBuilder),
		physical:       make(map[int]*unitBuilder, len(stacks)),
		usedNumbers:    make(map[int]bool, len(stacks)),
	}

	for _, s := range stacks {
		if existing, ok := idx.stacks[s.Number]; ok {
			idx.warnf(model.DiagTopologyInconsistency, model.Diagnostic{StackNumber: s.Number},
				"stack %d appears more than once in the snapshot; keeping the first occurrence", existing.Number)
			continue
		}
		idx.stacks[s.Number] = s
		idx.order = append(idx.order, s.Number)
	}
	sort.Ints(idx.order)

	idx.buildPairs()
	return idx
}

// buildPairs walks the stacks in ascending number order and forms virtual
// units for every topology-valid 40ft pair, exposing everything else as a
// physical unit. Ascending order makes every tie-break deterministic.
func (idx *yardIndex) buildPairs() {
	processed := make(map[int]bool, len(idx.order))

	for _, n := range idx.order {
		if processed[n] {
			continue
		}
		s := idx.stacks[n]
		if !s.PairingEligible() {
			processed[n] = true
			idx.addPhysical(s)
			continue
		}

		partnerNumber, ok := idx.topology.AdjacentOf(n)
		if !ok {
			processed[n] = true
			idx.warnf(model.DiagConfigurationGap, model.Diagnostic{StackNumber: n},
				"40ft stack %d has no topology partner", n)
			idx.addPhysical(s)
			continue
		}

		partner, exists := idx.stacks[partnerNumber]
		if !exists {
			processed[n] = true
			idx.warnf(model.DiagConfigurationGap, model.Diagnostic{StackNumber: n},
				"40ft stack %d: partner stack %d does not exist", n, partnerNumber)
			idx.addPhysical(s)
			continue
		}
		if !partner.PairingEligible() {
			processed[n] = true
			idx.warnf(model.DiagConfigurationGap, model.Diagnostic{StackNumber: n},
				"40ft stack %d: partner stack %d is not pairable", n, partnerNumber)
			idx.addPhysical(s)
			continue
		}

		processed[n] = true
		processed[partnerNumber] = true
		idx.addVirtual(s, partner)
	}
}

// addVirtual emits the virtual unit for a topology-valid pair, reconciling
// any persisted pairing records carried by the members.
func (idx *yardIndex) addVirtual(a, b model.Stack) {
	number, origin := idx.virtualNumber(a, b)
	if idx.usedNumbers[number] {
		idx.warnf(model.DiagTopologyInconsistency, model.Diagnostic{UnitNumber: number},
			"unit number %d is assigned to more than one unit", number)
	}

	capacity := StackCapacity(a)
	if other := StackCapacity(b); other != capacity {
		idx.warnf(model.DiagTopologyInconsistency, model.Diagnostic{StackNumber: b.Number, UnitNumber: number},
			"paired stacks %d and %d disagree on geometry (%d vs %d slots); using stack %d", a.Number, b.Number, capacity, other, a.Number)
	}

	u := &unitBuilder{
		number:   number,
		virtual:  true,
		members:  []int{a.Number, b.Number},
		capacity: capacity,
		origin:   origin,
	}
	sort.Ints(u.members)

	idx.units = append(idx.units, u)
	idx.virtualByStack[a.Number] = u
	idx.virtualByStack[b.Number] = u
	idx.usedNumbers[number] = true
}

// virtualNumber picks the unit number for the pair {a, b}: a persisted number
// when the members carry a usable pairing record, the synthesized in-between
// number otherwise. Persisted records override only the number; membership
// always comes from topology.
func (idx *yardIndex) virtualNumber(a, b model.Stack) (int, model.PairingOrigin) {
	synthesized := idx.topology.VirtualNumberFor(a.Number, b.Number)

	persisted := 0
	for _, s := range []model.Stack{a, b} {
		claim := s.PersistedPairing
		if claim == nil {
			continue
		}
		other := b.Number
		if s.Number == b.Number {
			other = a.Number
		}
		if claim.PartnerNumber != other {
			idx.warnf(model.DiagTopologyInconsistency, model.Diagnostic{StackNumber: s.Number},
				"stack %d persists a pairing with stack %d, but its topology partner is stack %d; record ignored", s.Number, claim.PartnerNumber, other)
			continue
		}
		if claim.VirtualNumber <= 0 {
			continue
		}
		if persisted == 0 {
			persisted = claim.VirtualNumber
			continue
		}
		if claim.VirtualNumber != persisted {
			lowest := persisted
			if claim.VirtualNumber < lowest {
				lowest = claim.VirtualNumber
			}
			idx.warnf(model.DiagTopologyInconsistency, model.Diagnostic{StackNumber: s.Number},
				"stacks %d and %d persist different virtual numbers (%d vs %d); keeping %d", a.Number, b.Number, persisted, claim.VirtualNumber, lowest)
			persisted = lowest
		}
	}

	if persisted == 0 {
		return synthesized, model.PairingSynthesized
	}
	if idx.usedNumbers[persisted] {
		idx.warnf(model.DiagTopologyInconsistency, model.Diagnostic{StackNumber: a.Number},
			"persisted virtual number %d for pair {%d, %d} is already assigned; falling back to %d", persisted, a.Number, b.Number, synthesized)
		return synthesized, model.PairingSynthesized
	}
	if _, taken := idx.stacks[persisted]; taken {
		idx.warnf(model.DiagTopologyInconsistency, model.Diagnostic{StackNumber: a.Number},
			"persisted virtual number %d for pair {%d, %d} collides with a physical stack; falling back to %d", persisted, a.Number, b.Number, synthesized)
		return synthesized, model.PairingSynthesized
	}
	return persisted, model.PairingPersisted
}

// addPhysical emits the always-present physical unit for an unpaired stack.
func (idx *yardIndex) addPhysical(s model.Stack) {
	u := &unitBuilder{
		number:   s.Number,
		members:  []int{s.Number},
		capacity: StackCapacity(s),
	}
	idx.units = append(idx.units, u)
	idx.physical[s.Number] = u
	idx.usedNumbers[s.Number] = true
}

// unitFor returns the unit that owns a container of the given size class
// sitting on the given stack: the covering virtual unit for 40ft containers
// on paired stacks, the stack's own physical unit otherwise. Physical units
// for paired members materialize lazily so a mis-stowed 20ft container keeps
// its slot without double counting against the virtual unit.
func (idx *yardIndex) unitFor(stackNumber int, sizeClass model.SizeClass) *unitBuilder {
	if sizeClass == model.Size40ft {
		if u, ok := idx.virtualByStack[stackNumber]; ok {
			return u
		}
	}
	if u, ok := idx.physical[stackNumber]; ok {
		return u
	}

	u := &unitBuilder{
		number:   stackNumber,
		members:  []int{stackNumber},
		capacity: StackCapacity(idx.stacks[stackNumber]),
	}
	idx.units = append(idx.units, u)
	idx.physical[stackNumber] = u
	return u
}

// warnf appends a warning diagnostic; the template diagnostic carries the
// reference fields (stack, container, unit).
func (idx *yardIndex) warnf(code model.DiagnosticCode, ref model.Diagnostic, format string, args ...interface{}) {
	ref.Code = code
	ref.Severity = model.SeverityWarning
	ref.Message = fmt.Sprintf(format, args...)
	idx.diags = append(idx.diags, ref)
}

// errorf appends an error diagnostic.
func (idx *yardIndex) errorf(code model.DiagnosticCode, ref model.Diagnostic, format string, args ...interface{}) {
	ref.Code = code
	ref.Severity = model.SeverityError
	ref.Message = fmt.Sprintf(format, args...)
	idx.diags = append(idx.diags, ref)
}
