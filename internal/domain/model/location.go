// Package model defines the core domain entities for the yard service.
package model

// Location is the decoded form of a container location code: the physical
// coordinates of one slot in the yard.
//
// @Description Decoded container position (stack, row, tier)
// @Example {"stackNumber": 7, "row": 2, "tier": 3}
type Location struct {
	// StackNumber is the physical stack the container sits on
	StackNumber int `json:"stackNumber" example:"7"`
	// Row is the horizontal slot index within the stack
	Row int `json:"row" example:"2"`
	// Tier is the vertical stacking level within the row
	Tier int `json:"tier" example:"3"`
}

// IsValid reports whether all three coordinates are positive.
func (l Location) IsValid() bool {
	return l.StackNumber > 0 && l.Row > 0 && l.Tier > 0
}
