package service

import "github.com/guttosm/yard-service/internal/domain/model"

// StackCapacity derives the slot capacity of one physical stack. Derivation
// order: the declared capacity when positive, else the sum of the per-row
// tier overrides when present, else rows * maxTiers. Negative or missing
// geometry derives to zero rather than a guessed value.
func StackCapacity(s model.Stack) int {
	if s.DeclaredCapacity > 0 {
		return s.DeclaredCapacity
	}

	if len(s.RowTierOverrides) > 0 {
		total := 0
		for _, tiers := range s.RowTierOverrides {
			if tiers > 0 {
				total += tiers
			}
		}
		return total
	}

	if s.Rows > 0 && s.MaxTiers > 0 {
		return s.Rows * s.MaxTiers
	}
	return 0
}
