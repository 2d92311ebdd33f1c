package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the caller's service key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates service-to-service calls against configured keys
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates an API key middleware from configuration
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"pricing-service": cfg.PricingService,
			"wallet-service":  cfg.WalletService,
			"trips-service":   cfg.TripsService,
		},
	}
}

// APIKeyHandler returns middleware that accepts calls from the named services
func (m *APIKeyMiddleware) APIKeyHandler(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			valid := false
			for _, service := range allowedServices {
				if expected := m.keys[service]; expected != "" && strings.EqualFold(apiKey, expected) {
					valid = true
					c.Set("api_service", service)
					break
				}
			}

			if !valid {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
