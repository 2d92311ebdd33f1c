package http

import (
	"context"

	httppkg "github.com/cupoapp/cupo/internal/pkg/http"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/trips"
)

// PricingGW calls the pricing service over HTTP
type PricingGW struct {
	client *httppkg.APIKeyClient
}

// NewPricingGW creates a pricing gateway using the trips service credentials
func NewPricingGW(cfg *models.Config) trips.PricingGW {
	client := httppkg.NewAPIKeyClient(&cfg.APIKey, "trips-service", cfg.Services.PricingServiceURL)
	return &PricingGW{client: client}
}

// CalculateFare requests the suggested per seat price for a route
func (g *PricingGW) CalculateFare(ctx context.Context, distance string) (*models.FareQuote, error) {
	var resp struct {
		Data models.FareQuote `json:"data"`
	}
	req := models.FareRequest{Distance: distance}
	if err := g.client.PostJSON(ctx, "/internal/pricing/calculate", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// QuoteGuarantee requests the publish guarantee for a trip
func (g *PricingGW) QuoteGuarantee(ctx context.Context, req models.GuaranteeRequest) (*models.GuaranteeQuote, error) {
	var resp struct {
		Data models.GuaranteeQuote `json:"data"`
	}
	if err := g.client.PostJSON(ctx, "/internal/pricing/guarantee", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// QuoteCommission requests the validation commission for a booking
func (g *PricingGW) QuoteCommission(ctx context.Context, req models.CommissionRequest) (*models.CommissionQuote, error) {
	var resp struct {
		Data models.CommissionQuote `json:"data"`
	}
	if err := g.client.PostJSON(ctx, "/internal/pricing/commission", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
