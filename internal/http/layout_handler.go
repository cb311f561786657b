package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/dto"
	"github.com/guttosm/yard-service/internal/i18n"
	"github.com/guttosm/yard-service/internal/metrics"
	"github.com/guttosm/yard-service/internal/middleware"
	"github.com/guttosm/yard-service/internal/service"
)

// LayoutHandler provides HTTP handlers for stack layout routes.
type LayoutHandler struct {
	layoutService service.StackLayoutService
	handler       *Handler
}

// NewLayoutHandler creates a new LayoutHandler instance. The resolve handler
// is needed to drop its cached layout when a yard's layout is replaced.
func NewLayoutHandler(layoutService service.StackLayoutService, handler *Handler) *LayoutHandler {
	return &LayoutHandler{
		layoutService: layoutService,
		handler:       handler,
	}
}

// GetActiveLayout handles GET /api/v1/stack-layout requests.
//
// @Summary      Get active stack layout
// @Description  Returns the currently active stack layout for a yard
// @Tags         Stack Layout
// @Accept       json
// @Produce      json
// @Param        yardId query string false "Yard identifier (default yard when omitted)"
// @Success      200 {object} dto.SuccessResponse "Active stack layout"
// @Failure      404 {object} dto.ErrorResponse "No active layout for the yard"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/stack-layout [get]
func (h *LayoutHandler) GetActiveLayout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	yardID := h.handler.yardID(c.Query("yardId"))

	config, err := h.layoutService.GetActive(c.Request.Context(), yardID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyLayoutNotFound, nil)
		return
	}

	builder.SuccessOK(config)
}

// UpdateLayout handles PUT /api/v1/stack-layout requests.
//
// @Summary      Replace the stack layout
// @Description  Stores a new version of a yard's stack layout and makes it active. The previous version is kept for history. Supports idempotency via Idempotency-Key header.
// @Tags         Stack Layout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.LayoutUpdateRequest true "Stack layout"
// @Success      200 {object} dto.SuccessResponse "Stored stack layout"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid stack list"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/stack-layout [put]
func (h *LayoutHandler) UpdateLayout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LayoutUpdateRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationStacks, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	yardID := h.handler.yardID(req.YardID)
	c.Set("yard_id", yardID)

	config, err := h.layoutService.Replace(c.Request.Context(), yardID, req.Stacks, req.UpdatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordLayoutUpdate(yardID)
	h.handler.InvalidateLayoutCache(yardID)

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_layout", "Stack layout replaced", map[string]interface{}{
				"yard_id":     yardID,
				"stack_count": len(req.Stacks),
				"version":     config.Version,
			})
		}
	}

	builder.SuccessOK(config)
}

// LayoutHistory handles GET /api/v1/stack-layout/history requests.
//
// @Summary      List stack layout history
// @Description  Returns stored stack layout versions for a yard, newest first
// @Tags         Stack Layout
// @Accept       json
// @Produce      json
// @Param        yardId query string false "Yard identifier (default yard when omitted)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Stack layout history"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/stack-layout/history [get]
func (h *LayoutHandler) LayoutHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)
	yardID := h.handler.yardID(c.Query("yardId"))

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := parseInt(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.layoutService.History(c.Request.Context(), yardID, limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
