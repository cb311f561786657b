package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/logger"
	"github.com/guttosm/yard-service/internal/service"
)

// RequestLogger emits one console line per request and, when a logging
// service is wired, persists the same entry to the audit store. Persistence
// goes through the async worker pool when one is installed and falls back to
// a bounded one-off goroutine otherwise.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      levelFor(status).String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: status,
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		// Handlers that resolved a yard leave its ID on the context.
		if yardID, ok := c.Get("yard_id"); ok {
			entry.YardID, _ = yardID.(string)
		}

		logRequest(entry)

		if loggingService != nil {
			persistEntry(loggingService, entry)
		}
	}
}

// levelFor maps a response status to the level used for both the console
// line and the persisted entry.
func levelFor(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// logRequest writes the console line at the level matching the status.
func logRequest(entry *model.LogEntry) {
	log := logger.Logger()
	log.WithLevel(levelFor(entry.StatusCode)).
		Str("request_id", entry.RequestID).
		Str("method", entry.Method).
		Str("path", entry.Path).
		Int("status_code", entry.StatusCode).
		Int64("duration_ms", entry.Duration).
		Str("ip", entry.IP).
		Str("user_agent", entry.UserAgent).
		Msg("HTTP request")
}

// persistEntry hands the entry to the async pool, or spawns a bounded
// one-off write when no pool is running.
func persistEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
