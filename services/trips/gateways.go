package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/cupoapp/cupo/internal/pkg/models"
)

// PricingGW defines the interface for calls to the pricing service
//
//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/cupoapp/cupo/services/trips PricingGW,WalletGW,TripEventsGW
type PricingGW interface {
	CalculateFare(ctx context.Context, distance string) (*models.FareQuote, error)
	QuoteGuarantee(ctx context.Context, req models.GuaranteeRequest) (*models.GuaranteeQuote, error)
	QuoteCommission(ctx context.Context, req models.CommissionRequest) (*models.CommissionQuote, error)
}

// WalletGW defines the interface for calls to the wallet service
type WalletGW interface {
	Freeze(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) error
	Release(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) error
	Charge(ctx context.Context, userID uuid.UUID, req models.WalletOpRequest) error
	Hold(ctx context.Context, req models.HoldRequest) error
	HoldReturn(ctx context.Context, req models.HoldRequest) error
}

// TripEventsGW defines the interface for trip event publishing
type TripEventsGW interface {
	PublishTripEvent(ctx context.Context, event *models.TripEvent) error
	PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error
}
