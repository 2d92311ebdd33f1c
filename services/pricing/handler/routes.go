package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cupoapp/cupo/internal/pkg/middleware"
	"github.com/cupoapp/cupo/internal/pkg/models"
	httpHandler "github.com/cupoapp/cupo/services/pricing/handler/http"
	"github.com/cupoapp/cupo/services/pricing"
)

// Handler combines all handlers for the pricing service
type Handler struct {
	pricingHTTP *httpHandler.PricingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(pricingUC pricing.PricingUC, cfg *models.Config) *Handler {
	return &Handler{
		pricingHTTP: httpHandler.NewPricingHandler(pricingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMW *middleware.APIKeyMiddleware) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMW.APIKeyHandler("trips-service", "wallet-service"))

	internal.GET("/assumptions", h.pricingHTTP.GetAssumptions)
	internal.PUT("/assumptions", h.pricingHTTP.UpdateAssumptions)

	pricingGroup := internal.Group("/pricing")
	pricingGroup.POST("/calculate", h.pricingHTTP.CalculateFare)
	pricingGroup.POST("/guarantee", h.pricingHTTP.QuoteGuarantee)
	pricingGroup.POST("/commission", h.pricingHTTP.QuoteCommission)
}
