package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/dto"
	"github.com/guttosm/yard-service/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is the fallback body when no translator is installed.
	ErrorMessage string
}

// DefaultTimeoutConfig returns the defaults used when nothing is configured.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout aborts requests that outrun the configured duration with a 504
// envelope. The handler chain runs on its own goroutine with a deadline on
// the request context; a handler that honors the context stops shortly after
// the deadline, and one that does not can no longer touch the response once
// the timeout reply has been written.
//
// Panics below this middleware surface on the handler goroutine, out of
// reach of Recovery's deferred recover, so they are caught and answered
// here.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		var (
			mu         sync.Mutex
			finished   bool
			panicValue interface{}
		)
		done := make(chan struct{})

		go func() {
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					panicValue = r
					mu.Unlock()
				}
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			mu.Lock()
			defer mu.Unlock()
			if panicValue != nil {
				respondPanic(c, panicValue)
			}

		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}

			message := cfg.ErrorMessage
			if translator := i18n.GetTranslator(); translator != nil {
				message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			}

			errorResp := dto.NewError(dto.ErrCodeTimeout, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
		}
	}
}

// TimeoutWithDuration builds the middleware with the default configuration
// and the given duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
