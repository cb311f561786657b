package model

// SizeClass is the declared container size a stack (or container) is built for.
type SizeClass string

// Size classes used across the yard. The pairing rules only ever apply to
// 40ft stacks; 20ft stacks always stand alone.
const (
	Size20ft SizeClass = "20ft"
	Size40ft SizeClass = "40ft"
)

// Valid reports whether the size class is one of the known values.
func (s SizeClass) Valid() bool {
	return s == Size20ft || s == Size40ft
}

// PersistedPairing is an explicit pairing record carried by a stack: the
// partner it was paired with and the virtual unit number assigned at the time.
// Topology rules remain authoritative for membership; a persisted pairing only
// overrides the virtual unit number.
//
// @Description Persisted 40ft pairing for a stack
// @Example {"partnerNumber": 5, "virtualNumber": 4}
type PersistedPairing struct {
	// PartnerNumber is the stack number this stack was paired with
	PartnerNumber int `json:"partnerNumber" bson:"partner_number" example:"5"`
	// VirtualNumber is the unit number assigned to the pair
	VirtualNumber int `json:"virtualNumber" bson:"virtual_number" example:"4"`
}

// Stack is one physical storage column in the yard, addressed by a unique
// number and holding containers in a row x tier grid.
//
// @Description Physical stack configuration record
// @Example {"number": 3, "sectionId": "A", "rows": 6, "maxTiers": 4, "sizeClass": "40ft", "isSpecial": false, "isActive": true}
type Stack struct {
	// Number is the stack's unique identity within the yard
	Number int `json:"number" bson:"number" example:"3"`
	// SectionID references the yard section the stack belongs to
	SectionID string `json:"sectionId,omitempty" bson:"section_id,omitempty" example:"A"`
	// Rows is the number of horizontal slots
	Rows int `json:"rows" bson:"rows" example:"6"`
	// MaxTiers is the maximum stacking height across all rows
	MaxTiers int `json:"maxTiers" bson:"max_tiers" example:"4"`
	// RowTierOverrides optionally gives a per-row max tier, overriding MaxTiers
	RowTierOverrides []int `json:"rowTierOverrides,omitempty" bson:"row_tier_overrides,omitempty"`
	// DeclaredCapacity is an explicit capacity; zero means "derive from geometry"
	DeclaredCapacity int `json:"declaredCapacity,omitempty" bson:"declared_capacity,omitempty" example:"0"`
	// SizeClass is the container size the stack is configured for
	SizeClass SizeClass `json:"sizeClass" bson:"size_class" example:"40ft"`
	// IsSpecial excludes the stack from 40ft pairing regardless of size class
	IsSpecial bool `json:"isSpecial" bson:"is_special" example:"false"`
	// IsActive marks the stack as usable; inactive stacks never pair
	IsActive bool `json:"isActive" bson:"is_active" example:"true"`
	// PersistedPairing is the stored pairing record, if any
	PersistedPairing *PersistedPairing `json:"persistedPairing,omitempty" bson:"persisted_pairing,omitempty"`
}

// PairingEligible reports whether the stack can participate in 40ft pairing:
// active, not special, and declared 40ft.
func (s Stack) PairingEligible() bool {
	return s.IsActive && !s.IsSpecial && s.SizeClass == Size40ft
}

// PartnerInfo is the answer to a topology probe for a single stack number:
// whether the number has an adjacency partner, and if so which stack and
// which virtual unit number the pair would synthesize.
//
// @Description Topology partner lookup result
// @Example {"stackNumber": 3, "paired": true, "partnerNumber": 5, "virtualNumber": 4}
type PartnerInfo struct {
	// StackNumber is the probed stack number
	StackNumber int `json:"stackNumber" example:"3"`
	// Special marks numbers that never participate in pairing
	Special bool `json:"special" example:"false"`
	// Paired reports whether the number participates in pairing
	Paired bool `json:"paired" example:"true"`
	// PartnerNumber is the adjacency partner, when paired
	PartnerNumber int `json:"partnerNumber,omitempty" example:"5"`
	// VirtualNumber is the unit number a pair at this position synthesizes
	VirtualNumber int `json:"virtualNumber,omitempty" example:"4"`
}
