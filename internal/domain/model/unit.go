package model

// PairingOrigin tags how a virtual unit got its number.
type PairingOrigin string

// Pairing origins. Empty on physical units.
const (
	PairingPersisted   PairingOrigin = "persisted"
	PairingSynthesized PairingOrigin = "synthesized"
)

// ContainerSlot is one container attributed to a storage unit.
//
// @Description Container slot within a logical storage unit
// @Example {"containerId": "MSKU1234567", "row": 2, "tier": 1, "displayStatus": "occupied"}
type ContainerSlot struct {
	// ContainerID is the attributed container's identity
	ContainerID string `json:"containerId" example:"MSKU1234567"`
	// Row is the slot's row coordinate
	Row int `json:"row" example:"2"`
	// Tier is the slot's tier coordinate
	Tier int `json:"tier" example:"1"`
	// DisplayStatus is the derived status (damaged > maintenance > occupied)
	DisplayStatus ContainerStatus `json:"displayStatus" example:"occupied"`
}

// StorageUnit is the resolver's output record: either a physical stack or a
// virtual 40ft unit merging two adjacent stacks. Every resolvable container
// appears in exactly one unit's slot list.
//
// @Description Logical storage unit (physical stack or virtual 40ft pair)
// @Example {"unitNumber": 4, "isVirtual": true, "memberStackNumbers": [3, 5], "capacity": 24, "occupancy": 2}
type StorageUnit struct {
	// UnitNumber identifies the unit: the stack number for physical units,
	// the synthesized or persisted number for virtual units
	UnitNumber int `json:"unitNumber" example:"4"`
	// IsVirtual is true when the unit merges a 40ft stack pair
	IsVirtual bool `json:"isVirtual" example:"true"`
	// MemberStackNumbers lists the physical stacks backing the unit
	MemberStackNumbers []int `json:"memberStackNumbers"`
	// Capacity is the derived or declared slot capacity
	Capacity int `json:"capacity" example:"24"`
	// Occupancy is the number of containers attributed to the unit
	Occupancy int `json:"occupancy" example:"2"`
	// OverCapacity flags occupancy above capacity; the value is never clamped
	OverCapacity bool `json:"overCapacity,omitempty" example:"false"`
	// PairingOrigin records whether a virtual number was persisted or synthesized
	PairingOrigin PairingOrigin `json:"pairingOrigin,omitempty" example:"synthesized"`
	// Slots lists the containers attributed to this unit
	Slots []ContainerSlot `json:"slots"`
}

// ResolutionSummary gives the aggregate counts of one resolver run.
//
// @Description Aggregate counts for a resolution
type ResolutionSummary struct {
	// StackCount is the number of distinct stacks in the snapshot
	StackCount int `json:"stackCount" example:"12"`
	// ContainerCount is the number of input containers
	ContainerCount int `json:"containerCount" example:"48"`
	// LocatedCount is the number of containers attributed to a unit
	LocatedCount int `json:"locatedCount" example:"47"`
	// UnlocatedCount is the number of containers with unresolvable locations
	UnlocatedCount int `json:"unlocatedCount" example:"1"`
	// VirtualUnitCount is the number of virtual 40ft units emitted
	VirtualUnitCount int `json:"virtualUnitCount" example:"4"`
	// PhysicalUnitCount is the number of physical units emitted
	PhysicalUnitCount int `json:"physicalUnitCount" example:"5"`
}

// Resolution is the complete resolver output: the logical storage units plus
// every diagnostic accumulated along the way. Diagnostics never abort a run.
//
// @Description Complete resolver output
type Resolution struct {
	// Units is the ordered list of logical storage units
	Units []StorageUnit `json:"units"`
	// Diagnostics lists the non-fatal problems found during resolution
	Diagnostics []Diagnostic `json:"diagnostics"`
	// Summary carries the aggregate counts
	Summary ResolutionSummary `json:"summary"`
}
