package model

// DiagnosticCode classifies a resolution problem.
type DiagnosticCode string

// Diagnostic codes. None of these abort a resolution; they accumulate in the
// output so callers can surface data-quality issues.
const (
	// DiagParseError marks a container whose location code failed to parse.
	DiagParseError DiagnosticCode = "parse_error"
	// DiagTopologyInconsistency marks conflicting pairing or geometry data
	// resolved by a deterministic tie-break.
	DiagTopologyInconsistency DiagnosticCode = "topology_inconsistency"
	// DiagConfigurationGap marks an expected-but-missing configuration, such
	// as a 40ft stack whose computed partner does not exist.
	DiagConfigurationGap DiagnosticCode = "configuration_gap"
	// DiagOverCapacity marks a unit holding more containers than its capacity.
	DiagOverCapacity DiagnosticCode = "over_capacity"
)

// Severity grades a diagnostic.
type Severity string

// Diagnostic severities.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is one non-fatal problem found while resolving a yard snapshot.
//
// @Description Non-fatal data-quality record emitted during resolution
// @Example {"code": "parse_error", "severity": "error", "message": "location code \"S99-RX-H1\" is malformed", "containerId": "MSKU1234567"}
type Diagnostic struct {
	// Code classifies the problem
	Code DiagnosticCode `json:"code" example:"parse_error"`
	// Severity grades the problem
	Severity Severity `json:"severity" example:"error"`
	// Message is a human-readable description
	Message string `json:"message" example:"location code \"S99-RX-H1\" is malformed"`
	// StackNumber references the offending stack, when applicable
	StackNumber int `json:"stackNumber,omitempty" example:"0"`
	// ContainerID references the offending container, when applicable
	ContainerID string `json:"containerId,omitempty"`
	// UnitNumber references the affected unit, when applicable
	UnitNumber int `json:"unitNumber,omitempty" example:"0"`
}
