package pricing

import (
	"context"

	"github.com/cupoapp/cupo/internal/pkg/models"
)

// PricingUC defines the interface for pricing business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cupoapp/cupo/services/pricing PricingUC
type PricingUC interface {
	GetAssumptions(ctx context.Context) (*models.Assumptions, error)
	UpdateAssumptions(ctx context.Context, assumptions *models.Assumptions) (*models.Assumptions, error)
	CalculateFare(ctx context.Context, req models.FareRequest) (*models.FareQuote, error)
	QuoteGuarantee(ctx context.Context, req models.GuaranteeRequest) (*models.GuaranteeQuote, error)
	QuoteCommission(ctx context.Context, req models.CommissionRequest) (*models.CommissionQuote, error)
}
