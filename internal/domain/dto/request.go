// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strconv"

	"github.com/guttosm/yard-service/internal/domain/model"
)

// ResolveRequest represents the JSON request body for the resolution endpoint.
//
// Containers are the placement records to resolve. Stacks is optional - when
// omitted, the active stored layout for YardID (or the default yard) is used.
// Validation is performed using gin's binding tags plus Validate.
//
// @Description Request to resolve the yard into storage units
// @Example {"containers": [{"id": "MSKU1234567", "sizeClass": "40ft", "status": "occupied", "locationCode": "S3-R2-H1"}]}
type ResolveRequest struct {
	// YardID selects the stored layout when Stacks is omitted.
	// Empty means the server's default yard.
	YardID string `json:"yardId,omitempty" example:"main"`
	// Stacks is an optional inline topology snapshot.
	// If not provided, the active stored layout is loaded.
	Stacks []model.Stack `json:"stacks,omitempty"`
	// Containers is the list of placement records to resolve.
	// May be empty; an empty yard still resolves to its units.
	Containers []model.Container `json:"containers"`
} // @name ResolveRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingContainerID is returned when a container entry has no id.
	ErrMissingContainerID = &ValidationError{
		Field:   "containers",
		Message: "every container must have an id",
	}
	// ErrMissingStacks is returned when a layout update carries no stacks.
	ErrMissingStacks = &ValidationError{
		Field:   "stacks",
		Message: "at least one stack is required",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
//
// Inline stacks are deliberately NOT validated here: the resolver reports
// malformed snapshots (duplicate numbers, bad locations, unknown stacks)
// as diagnostics instead of rejecting the request. Only structurally
// unusable input is a request error.
func (r *ResolveRequest) Validate() error {
	for _, c := range r.Containers {
		if c.ID == "" {
			return ErrMissingContainerID
		}
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// LayoutUpdateRequest represents the JSON request body for replacing the
// stored stack layout of a yard.
//
// @Description Request to store a new stack layout version
type LayoutUpdateRequest struct {
	// YardID is the yard the layout belongs to. Empty means the default yard.
	YardID string `json:"yardId,omitempty" example:"main"`
	// Stacks is the full stack list for the yard.
	Stacks []model.Stack `json:"stacks" binding:"required,min=1"`
	// UpdatedBy is the identifier of who submitted this layout.
	UpdatedBy string `json:"updatedBy,omitempty" example:"ops@example.com"`
} // @name LayoutUpdateRequest

// Validate performs custom validation on the request.
func (r *LayoutUpdateRequest) Validate() error {
	if len(r.Stacks) == 0 {
		return ErrMissingStacks
	}
	return validateStacks(r.Stacks)
}

// validateStacks rejects stack lists the resolver could never report
// sensibly on: non-positive numbers, duplicate numbers, unknown size
// classes, negative geometry.
func validateStacks(stacks []model.Stack) error {
	seen := make(map[int]bool, len(stacks))
	for _, s := range stacks {
		if s.Number <= 0 {
			return &ValidationError{
				Field:   "stacks",
				Message: "stack numbers must be positive, got " + strconv.Itoa(s.Number),
			}
		}
		if seen[s.Number] {
			return &ValidationError{
				Field:   "stacks",
				Message: "duplicate stack number " + strconv.Itoa(s.Number),
			}
		}
		seen[s.Number] = true
		if !s.SizeClass.Valid() {
			return &ValidationError{
				Field:   "stacks",
				Message: "stack " + strconv.Itoa(s.Number) + ": unknown size class " + string(s.SizeClass),
			}
		}
		if s.Rows < 0 || s.MaxTiers < 0 || s.DeclaredCapacity < 0 {
			return &ValidationError{
				Field:   "stacks",
				Message: "stack " + strconv.Itoa(s.Number) + ": geometry must not be negative",
			}
		}
		for _, tiers := range s.RowTierOverrides {
			if tiers < 0 {
				return &ValidationError{
					Field:   "stacks",
					Message: "stack " + strconv.Itoa(s.Number) + ": row tier overrides must not be negative",
				}
			}
		}
	}
	return nil
}
