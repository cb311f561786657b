// Package i18n provides internationalization support for the yard service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationContainers indicates an invalid containers list.
	ErrKeyValidationContainers = "error.validation.containers"
	// ErrKeyValidationStacks indicates an invalid stack list.
	ErrKeyValidationStacks = "error.validation.stacks"
	// ErrKeyLayoutNotFound indicates no active stack layout for the yard.
	ErrKeyLayoutNotFound = "error.layout_not_found"
)

// Success message translation keys.
const (
	// SuccessKeyYardResolved indicates a successful yard resolution.
	SuccessKeyYardResolved = "success.yard_resolved"
)
