package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/dto"
	"github.com/guttosm/yard-service/internal/logger"
)

// respondPanic logs a recovered panic with the request ID and replies with
// the generic 500 envelope when nothing has been written yet. Shared by
// Recovery and the timeout middleware, which runs handlers on a separate
// goroutine where this deferred recover cannot see them.
func respondPanic(c *gin.Context, panicValue interface{}) {
	log := logger.Logger()
	log.Error().
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Interface("panic", panicValue).
		Msg("Panic recovered")

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   dto.ErrCodeInternal,
			Message: "An unexpected error occurred",
		})
	}
}

// Recovery converts panics anywhere down the chain into 500 responses so a
// single bad request cannot take the process down.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				respondPanic(c, r)
			}
		}()
		c.Next()
	}
}
