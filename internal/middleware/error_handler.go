package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/dto"
	"github.com/guttosm/yard-service/internal/i18n"
	"github.com/guttosm/yard-service/internal/logger"
)

// ErrorHandler logs errors that handlers record on the gin context and, when
// the handler produced no response of its own, replies with a localized 500
// envelope. Every recorded error is logged so one failing request keeps its
// whole error trail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := GetRequestID(c)
		log := logger.Logger()
		for _, ginErr := range c.Errors {
			log.Error().
				Str("request_id", requestID).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Err(ginErr.Err).
				Msg("Request error")
		}

		if c.Writer.Written() {
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
		errorResp := dto.NewError(dto.ErrCodeInternal, message).
			WithRequestID(requestID)
		c.JSON(http.StatusInternalServerError, errorResp)
	}
}
