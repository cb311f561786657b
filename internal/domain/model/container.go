package model

// ContainerStatus is the operational state of a container, also used as the
// display status on resolved slots.
type ContainerStatus string

// Container states in display priority order: damaged wins over maintenance,
// maintenance wins over plain occupancy.
const (
	StatusDamaged     ContainerStatus = "damaged"
	StatusMaintenance ContainerStatus = "maintenance"
	StatusOccupied    ContainerStatus = "occupied"
)

// Container is an externally supplied placement record. The resolver only
// reads containers; it never mutates or stores them.
//
// @Description Container placement record
// @Example {"id": "MSKU1234567", "sizeClass": "40ft", "status": "occupied", "locationCode": "S3-R2-H1"}
type Container struct {
	// ID is the container identity (typically the ISO owner code + serial)
	ID string `json:"id" example:"MSKU1234567"`
	// SizeClass is the container's size
	SizeClass SizeClass `json:"sizeClass" example:"40ft"`
	// Status is the operational state (occupied, damaged, maintenance)
	Status ContainerStatus `json:"status" example:"occupied"`
	// LocationCode encodes the container's position (S<stack>R<row>H<tier>)
	LocationCode string `json:"locationCode" example:"S3-R2-H1"`
}

// DisplayStatus derives the slot status shown for this container. Unknown
// status strings degrade to occupied rather than failing the resolution.
func (c Container) DisplayStatus() ContainerStatus {
	switch c.Status {
	case StatusDamaged:
		return StatusDamaged
	case StatusMaintenance:
		return StatusMaintenance
	default:
		return StatusOccupied
	}
}
