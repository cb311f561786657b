package service

import (
	"sort"
	"time"

	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/service/cache"
)

// YardResolver defines the resolver over one yard snapshot: it combines
// physical stacks into logical storage units, aggregates capacity and
// occupancy, and attributes every container to exactly one unit.
type YardResolver interface {
	Resolve(stacks []model.Stack, containers []model.Container) model.Resolution
	PartnerOf(stackNumber int) model.PartnerInfo
	// InvalidateCache clears the partner lookup cache (useful when the topology changes)
	InvalidateCache()
}

// Option configures a YardResolverService.
type Option func(*YardResolverService)

// YardResolverService implements YardResolver. The resolution itself is pure
// and synchronous: a single pass over an immutable snapshot with no I/O and
// no retained state, so one service instance is safe for concurrent callers.
type YardResolverService struct {
	topology TopologyResolver
	cache    cache.Cache
}

// NewYardResolverService creates a new YardResolverService with the given
// options. Without options it resolves against the default yard topology.
func NewYardResolverService(opts ...Option) *YardResolverService {
	s := &YardResolverService{}

	for _, opt := range opts {
		opt(s)
	}

	if s.topology == nil {
		s.topology = NewStackTopology()
	}
	return s
}

// WithTopology injects a configured topology resolver.
func WithTopology(t TopologyResolver) Option {
	return func(s *YardResolverService) {
		if t != nil {
			s.topology = t
		}
	}
}

// shardedCacheMin is the capacity at which WithCache switches to the sharded
// implementation. Smaller caches stay on a single LRU where one lock is cheap.
const shardedCacheMin = 1024

// WithCache enables partner lookup caching with the specified capacity and TTL.
// Large caches are sharded to keep lock contention down.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *YardResolverService) {
		if capacity <= 0 {
			return
		}
		if capacity >= shardedCacheMin {
			s.cache = NewShardedCache(capacity, ttl, defaultShardCount)
		} else {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *YardResolverService) {
		s.cache = c
	}
}

// Topology exposes the resolver's topology, shared with callers that answer
// partner lookups directly.
func (s *YardResolverService) Topology() TopologyResolver {
	return s.topology
}

// PartnerOf answers a topology probe for a single stack number.
func (s *YardResolverService) PartnerOf(stackNumber int) model.PartnerInfo {
	if s.cache != nil {
		if info, ok := s.cache.Get(stackNumber); ok {
			return info
		}
	}

	info := model.PartnerInfo{
		StackNumber: stackNumber,
		Special:     s.topology.IsSpecial(stackNumber),
	}
	if partner, ok := s.topology.AdjacentOf(stackNumber); ok {
		info.Paired = true
		info.PartnerNumber = partner
		info.VirtualNumber = s.topology.VirtualNumberFor(stackNumber, partner)
	}

	if s.cache != nil {
		s.cache.Set(stackNumber, info)
	}
	return info
}

// InvalidateCache clears the partner lookup cache.
func (s *YardResolverService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Resolve computes the logical storage units for a snapshot. Problems never
// abort the run: malformed locations, topology contradictions, and
// configuration gaps surface as diagnostics next to the units.
func (s *YardResolverService) Resolve(stacks []model.Stack, containers []model.Container) model.Resolution {
	idx := newYardIndex(s.topology, stacks)

	unlocated := s.classify(idx, containers)

	return s.finalize(idx, len(containers), unlocated)
}

// classify attributes every container to its owning unit and returns the
// number of containers left unlocated. A container is unlocated when its
// location code does not parse or references a stack the snapshot does not
// contain; both cases surface as diagnostics and the container joins no
// unit's slots.
func (s *YardResolverService) classify(idx *yardIndex, containers []model.Container) int {
	unlocated := 0

	for _, c := range containers {
		loc, err := ParseLocationCode(c.LocationCode)
		if err != nil {
			unlocated++
			idx.errorf(model.DiagParseError, model.Diagnostic{ContainerID: c.ID},
				"container %s is unlocated: %v", c.ID, err)
			continue
		}

		if _, ok := idx.stacks[loc.StackNumber]; !ok {
			unlocated++
			idx.errorf(model.DiagConfigurationGap, model.Diagnostic{ContainerID: c.ID, StackNumber: loc.StackNumber},
				"container %s references stack %d, which is not configured", c.ID, loc.StackNumber)
			continue
		}

		unit := idx.unitFor(loc.StackNumber, c.SizeClass)
		unit.slots = append(unit.slots, model.ContainerSlot{
			ContainerID:   c.ID,
			Row:           loc.Row,
			Tier:          loc.Tier,
			DisplayStatus: c.DisplayStatus(),
		})
	}

	return unlocated
}

// finalize orders the accumulated units and slots deterministically, applies
// the over-capacity check, and assembles the resolution output.
func (s *YardResolverService) finalize(idx *yardIndex, containerCount, unlocated int) model.Resolution {
	units := make([]model.StorageUnit, 0, len(idx.units))
	virtualCount := 0

	sort.SliceStable(idx.units, func(i, j int) bool {
		return idx.units[i].number < idx.units[j].number
	})

	for _, b := range idx.units {
		sort.Slice(b.slots, func(i, j int) bool {
			if b.slots[i].Row != b.slots[j].Row {
				return b.slots[i].Row < b.slots[j].Row
			}
			if b.slots[i].Tier != b.slots[j].Tier {
				return b.slots[i].Tier < b.slots[j].Tier
			}
			return b.slots[i].ContainerID < b.slots[j].ContainerID
		})

		occupancy := len(b.slots)
		overCapacity := occupancy > b.capacity
		if overCapacity {
			idx.warnf(model.DiagOverCapacity, model.Diagnostic{UnitNumber: b.number},
				"unit %d holds %d containers but has capacity %d", b.number, occupancy, b.capacity)
		}

		if b.virtual {
			virtualCount++
		}
		if b.slots == nil {
			b.slots = []model.ContainerSlot{}
		}

		units = append(units, model.StorageUnit{
			UnitNumber:         b.number,
			IsVirtual:          b.virtual,
			MemberStackNumbers: b.members,
			Capacity:           b.capacity,
			Occupancy:          occupancy,
			OverCapacity:       overCapacity,
			PairingOrigin:      b.origin,
			Slots:              b.slots,
		})
	}

	diags := idx.diags
	if diags == nil {
		diags = []model.Diagnostic{}
	}

	return model.Resolution{
		Units:       units,
		Diagnostics: diags,
		Summary: model.ResolutionSummary{
			StackCount:        len(idx.order),
			ContainerCount:    containerCount,
			LocatedCount:      containerCount - unlocated,
			UnlocatedCount:    unlocated,
			VirtualUnitCount:  virtualCount,
			PhysicalUnitCount: len(units) - virtualCount,
		},
	}
}
