package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/service"
)

// AuditLog records a completed yard operation, such as a resolution or a
// layout replacement, in the audit trail. Entries take the same persistence
// path as request logs and never block the handler.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	persistEntry(loggingService, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed yard operation together with its error.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	persistEntry(loggingService, entry)
}

// auditEntry builds a log entry from the request context. Audit entries
// carry an action type and free-form fields on top of the request data.
func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	if yardID, ok := c.Get("yard_id"); ok {
		entry.YardID, _ = yardID.(string)
	}
	return entry
}
