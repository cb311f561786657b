package http

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/dto"
	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/i18n"
	"github.com/guttosm/yard-service/internal/metrics"
	"github.com/guttosm/yard-service/internal/middleware"
	"github.com/guttosm/yard-service/internal/service"
)

// DefaultYardID is used when a request does not name a yard.
const DefaultYardID = "main"

// layoutCache provides thread-safe, per-yard caching of stored stack layouts.
type layoutCache struct {
	mu      sync.RWMutex
	entries map[string]layoutCacheEntry
	ttl     time.Duration
}

type layoutCacheEntry struct {
	stacks    []model.Stack
	expiresAt time.Time
}

// newLayoutCache creates a new layout cache with the given TTL.
func newLayoutCache(ttl time.Duration) *layoutCache {
	return &layoutCache{
		entries: make(map[string]layoutCacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached stacks for a yard, or nil if expired/absent.
func (c *layoutCache) get(yardID string) []model.Stack {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[yardID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	return entry.stacks
}

// set stores the stacks for a yard with TTL.
func (c *layoutCache) set(yardID string, stacks []model.Stack) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if entry, ok := c.entries[yardID]; ok && time.Now().Before(entry.expiresAt) {
		return // Already cached by another goroutine
	}

	c.entries[yardID] = layoutCacheEntry{
		stacks:    stacks,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// invalidate drops the cached layout for a yard.
func (c *layoutCache) invalidate(yardID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, yardID)
}

// Handler provides HTTP handlers for yard resolution routes.
type Handler struct {
	resolver      service.YardResolver
	layoutService service.StackLayoutService
	layoutCache   *layoutCache
	defaultYardID string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLayoutCacheTTL sets the TTL for stored layout caching.
func WithLayoutCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.layoutCache = newLayoutCache(ttl)
	}
}

// WithDefaultYardID sets the yard used when requests omit one.
func WithDefaultYardID(yardID string) HandlerOption {
	return func(h *Handler) {
		if yardID != "" {
			h.defaultYardID = yardID
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(resolver service.YardResolver, layoutService service.StackLayoutService, opts ...HandlerOption) *Handler {
	h := &Handler{
		resolver:      resolver,
		layoutService: layoutService,
		layoutCache:   newLayoutCache(30 * time.Second), // Default 30s cache
		defaultYardID: DefaultYardID,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// yardID resolves the effective yard for a request.
func (h *Handler) yardID(requested string) string {
	if requested == "" {
		return h.defaultYardID
	}
	return requested
}

// getLayout retrieves the active stack layout from cache or database.
func (h *Handler) getLayout(ctx context.Context, yardID string) []model.Stack {
	// Check cache first
	if stacks := h.layoutCache.get(yardID); stacks != nil {
		return stacks
	}

	// Cache miss - fetch from database
	if h.layoutService == nil {
		return nil
	}

	// Use a timeout for database fetch
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.layoutService.GetActive(ctx, yardID)
	if err != nil || config == nil || len(config.Stacks) == 0 {
		return nil
	}

	// Cache the result
	h.layoutCache.set(yardID, config.Stacks)
	return config.Stacks
}

// InvalidateLayoutCache drops the cached layout for a yard.
// Call this when the stored layout is replaced.
func (h *Handler) InvalidateLayoutCache(yardID string) {
	h.layoutCache.invalidate(yardID)
}

// ResolveYard handles POST /api/v1/resolve requests.
//
// @Summary      Resolve the yard into storage units
// @Description  Resolves a snapshot of stacks and containers into storage units: adjacent 40ft stacks are merged into virtual units, containers are attributed to units by their location codes, and every irregularity is reported as a diagnostic instead of failing the request. Stacks may be supplied inline; when omitted, the stored active layout for the yard is used. Supports idempotency via Idempotency-Key header.
// @Tags         Resolution
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ResolveRequest true "Containers and optional inline stacks"
// @Success      200 {object} dto.SuccessResponse "Successful resolution"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - no stored layout for the yard"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/v1/resolve [post]
func (h *Handler) ResolveYard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ResolveRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordResolution(0, "validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationContainers, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	yardID := h.yardID(req.YardID)
	c.Set("yard_id", yardID)

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "resolve", "Yard resolution requested", map[string]interface{}{
				"yard_id":           yardID,
				"container_count":   len(req.Containers),
				"has_inline_stacks": req.Stacks != nil,
			})
		}
	}

	// An inline snapshot wins over the stored layout; an explicitly empty
	// snapshot is still a snapshot.
	stacks := req.Stacks
	if stacks == nil {
		stacks = h.getLayout(c.Request.Context(), yardID)
		if stacks == nil {
			metrics.RecordResolution(0, "layout_missing")
			builder.Error(http.StatusNotFound, i18n.ErrKeyLayoutNotFound, nil)
			return
		}
	}

	start := time.Now()
	result := h.resolver.Resolve(stacks, req.Containers)
	duration := time.Since(start)

	metrics.RecordResolution(duration, "success")
	metrics.RecordResolutionVolume(result.Summary.ContainerCount, result.Summary.UnlocatedCount)
	builder.SuccessOK(result)
}

// PartnerLookup handles GET /api/v1/topology/partner requests.
//
// @Summary      Probe the pairing topology
// @Description  Answers whether a stack number participates in 40ft pairing, and if so which partner stack and virtual unit number the pair produces. The answer depends only on the adjacency bands, not on any stored layout.
// @Tags         Topology
// @Produce      json
// @Param        stack query int true "Stack number to probe"
// @Success      200 {object} dto.SuccessResponse "Partner information"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing or non-positive stack number"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/topology/partner [get]
func (h *Handler) PartnerLookup(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stackNumber, err := strconv.Atoi(c.Query("stack"))
	if err != nil || stackNumber <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	builder.SuccessOK(h.resolver.PartnerOf(stackNumber))
}
