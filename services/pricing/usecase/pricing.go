package usecase

import (
	"context"
	"math"

	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/internal/utils"
	"github.com/cupoapp/cupo/services/pricing"
)

// pricingUC implements the pricing.PricingUC interface
type pricingUC struct {
	cfg             *models.Config
	assumptionsRepo pricing.AssumptionsRepo
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(cfg *models.Config, assumptionsRepo pricing.AssumptionsRepo) pricing.PricingUC {
	return &pricingUC{
		cfg:             cfg,
		assumptionsRepo: assumptionsRepo,
	}
}

// GetAssumptions returns the current pricing assumptions
func (uc *pricingUC) GetAssumptions(ctx context.Context) (*models.Assumptions, error) {
	return uc.assumptionsRepo.GetAssumptions(ctx)
}

// UpdateAssumptions validates and persists new pricing assumptions
func (uc *pricingUC) UpdateAssumptions(ctx context.Context, assumptions *models.Assumptions) (*models.Assumptions, error) {
	if err := assumptions.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.assumptionsRepo.UpdateAssumptions(ctx, assumptions)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Pricing assumptions updated",
		logger.Float64("urban_price_per_km", updated.UrbanPricePerKm),
		logger.Float64("interurban_price_per_km", updated.InterurbanPricePerKm),
		logger.Float64("fee_percentage", updated.FeePercentage),
		logger.Int64("fixed_rate", updated.FixedRate))

	return updated, nil
}

// CalculateFare computes the suggested per seat price for a route. Routes
// below the urban threshold use the urban rate, routes at or above it the
// interurban rate. The min and max bracket the suggested price by the
// configured limit percentage.
func (uc *pricingUC) CalculateFare(ctx context.Context, req models.FareRequest) (*models.FareQuote, error) {
	distanceKm := utils.ParseDistanceKm(req.Distance)
	if distanceKm <= 0 {
		return nil, pricing.ErrInvalidDistance
	}

	assumptions, err := uc.assumptionsRepo.GetAssumptions(ctx)
	if err != nil {
		return nil, err
	}

	isUrban := distanceKm < assumptions.UrbanThresholdKm
	pricePerKm := assumptions.InterurbanPricePerKm
	if isUrban {
		pricePerKm = assumptions.UrbanPricePerKm
	}

	suggested := int64(math.Round(distanceKm * pricePerKm))
	limit := assumptions.PriceLimitPercentage / 100

	return &models.FareQuote{
		DistanceKm:            distanceKm,
		IsUrban:               isUrban,
		PricePerKm:            pricePerKm,
		SuggestedPricePerSeat: suggested,
		MinPricePerSeat:       int64(math.Round(float64(suggested) * (1 - limit))),
		MaxPricePerSeat:       int64(math.Round(float64(suggested) * (1 + limit))),
		Currency:              uc.cfg.Pricing.Currency,
		SuggestedDisplay:      utils.FormatCOP(suggested),
	}, nil
}

// QuoteGuarantee computes the amount frozen from the publisher's wallet when
// a trip goes live. Percentage fees round up so the platform never
// undercollects by a fraction.
func (uc *pricingUC) QuoteGuarantee(ctx context.Context, req models.GuaranteeRequest) (*models.GuaranteeQuote, error) {
	if req.TripValue <= 0 || req.Seats <= 0 {
		return nil, pricing.ErrInvalidQuoteRequest
	}

	assumptions, err := uc.assumptionsRepo.GetAssumptions(ctx)
	if err != nil {
		return nil, err
	}

	percentageFee := ceilPercentage(req.TripValue, assumptions.FeePercentage)
	fixedFee := assumptions.FixedRate * int64(req.Seats)

	return &models.GuaranteeQuote{
		TripValue:      req.TripValue,
		Seats:          req.Seats,
		PercentageFee:  percentageFee,
		FixedFee:       fixedFee,
		TotalGuarantee: percentageFee + fixedFee,
	}, nil
}

// QuoteCommission computes the platform fee deducted from one validated
// booking, and the payout that remains for the driver.
func (uc *pricingUC) QuoteCommission(ctx context.Context, req models.CommissionRequest) (*models.CommissionQuote, error) {
	seats := req.Seats
	if seats == 0 {
		seats = 1
	}
	if req.BookingPrice <= 0 || seats < 0 {
		return nil, pricing.ErrInvalidQuoteRequest
	}

	assumptions, err := uc.assumptionsRepo.GetAssumptions(ctx)
	if err != nil {
		return nil, err
	}

	percentage := ceilPercentage(req.BookingPrice, assumptions.FeePercentage)
	fixed := assumptions.FixedRate * int64(seats)
	total := percentage + fixed

	return &models.CommissionQuote{
		BookingPrice:         req.BookingPrice,
		PercentageCommission: percentage,
		FixedCommission:      fixed,
		TotalCommission:      total,
		Payout:               req.BookingPrice - total,
	}, nil
}

func ceilPercentage(amount int64, percentage float64) int64 {
	return int64(math.Ceil(float64(amount) * percentage / 100))
}
