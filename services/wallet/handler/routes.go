package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cupoapp/cupo/internal/pkg/middleware"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/wallet"
	httpHandler "github.com/cupoapp/cupo/services/wallet/handler/http"
)

// Handler combines all handlers for the wallet service
type Handler struct {
	walletHTTP *httpHandler.WalletHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(walletUC wallet.WalletUC, cfg *models.Config) *Handler {
	return &Handler{
		walletHTTP: httpHandler.NewWalletHandler(walletUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMW *middleware.APIKeyMiddleware) {
	// User-facing routes (JWT required)
	walletGroup := e.Group("/wallet", middleware.JWTAuthMiddleware(h.cfg.JWT))
	walletGroup.GET("", h.walletHTTP.GetWallet)
	walletGroup.GET("/balance", h.walletHTTP.GetBalance)
	walletGroup.GET("/transactions", h.walletHTTP.GetTransactions)
	walletGroup.POST("/deposit", h.walletHTTP.Deposit)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal/wallet", apiKeyMW.APIKeyHandler("trips-service"))
	internal.POST("/:userID/freeze", h.walletHTTP.Freeze)
	internal.POST("/:userID/release", h.walletHTTP.Release)
	internal.POST("/:userID/charge", h.walletHTTP.Charge)
	internal.POST("/hold", h.walletHTTP.Hold)
	internal.POST("/hold/return", h.walletHTTP.HoldReturn)
}
