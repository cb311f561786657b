package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/service"
)

// YardRoutes handles yard-related route registration.
type YardRoutes struct {
	handler       *Handler
	layoutHandler *LayoutHandler
}

// NewYardRoutes creates a new YardRoutes instance around an existing handler.
func NewYardRoutes(handler *Handler, layoutService service.StackLayoutService) *YardRoutes {
	var layoutHandler *LayoutHandler
	if layoutService != nil {
		layoutHandler = NewLayoutHandler(layoutService, handler)
	}

	return &YardRoutes{
		handler:       handler,
		layoutHandler: layoutHandler,
	}
}

// RegisterPublicRoutes registers the yard routes.
func (r *YardRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/resolve", r.handler.ResolveYard)
	rg.GET("/topology/partner", r.handler.PartnerLookup)

	if r.layoutHandler != nil {
		rg.GET("/stack-layout", r.layoutHandler.GetActiveLayout)
		rg.PUT("/stack-layout", r.layoutHandler.UpdateLayout)
		rg.GET("/stack-layout/history", r.layoutHandler.LayoutHistory)
	}
}

// GetHandler returns the underlying yard handler.
func (r *YardRoutes) GetHandler() *Handler {
	return r.handler
}
