// Package middleware provides the gin middleware chain for the yard API:
// request IDs, recovery, rate limiting, idempotent replay, compression, and
// request/audit logging.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDHeader is the HTTP header carrying the request ID.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey ContextKey = "request_id"
)

// RequestID tags every request with an ID that flows through logs, the
// error envelope, and the response headers. A client-supplied X-Request-ID
// is kept, so EDI batch jobs can correlate their own identifiers; otherwise
// a UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID stored by the RequestID middleware,
// or empty when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	id, exists := c.Get(string(RequestIDKey))
	if !exists {
		return ""
	}
	requestID, _ := id.(string)
	return requestID
}
