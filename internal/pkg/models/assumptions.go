package models

import (
	"fmt"
	"time"
)

// Assumptions is the shared pricing configuration record. A single row,
// admin-mutated, read by every fare and fee calculation.
type Assumptions struct {
	ID                   int64     `json:"id" db:"id"`
	UrbanPricePerKm      float64   `json:"urban_price_per_km" db:"urban_price_per_km"`
	InterurbanPricePerKm float64   `json:"interurban_price_per_km" db:"interurban_price_per_km"`
	UrbanThresholdKm     float64   `json:"urban_threshold_km" db:"urban_threshold_km"`
	PriceLimitPercentage float64   `json:"price_limit_percentage" db:"price_limit_percentage"`
	FeePercentage        float64   `json:"fee_percentage" db:"fee_percentage"`
	FixedRate            int64     `json:"fixed_rate" db:"fixed_rate"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// Validate checks the assumptions invariants before they are persisted.
func (a *Assumptions) Validate() error {
	if a.UrbanPricePerKm < 0 || a.InterurbanPricePerKm < 0 {
		return fmt.Errorf("price per km must be non-negative")
	}
	if a.UrbanThresholdKm < 0 {
		return fmt.Errorf("urban threshold must be non-negative")
	}
	if a.PriceLimitPercentage < 0 {
		return fmt.Errorf("price limit percentage must be non-negative")
	}
	if a.FeePercentage < 0 || a.FeePercentage > 100 {
		return fmt.Errorf("fee percentage must be between 0 and 100, got %.2f", a.FeePercentage)
	}
	if a.FixedRate < 0 {
		return fmt.Errorf("fixed rate must be non-negative")
	}
	return nil
}

// FareQuote is the result of a suggested price calculation for a route
type FareQuote struct {
	DistanceKm           float64 `json:"distance_km"`
	IsUrban              bool    `json:"is_urban"`
	PricePerKm           float64 `json:"price_per_km"`
	SuggestedPricePerSeat int64  `json:"suggested_price_per_seat"`
	MinPricePerSeat      int64   `json:"min_price_per_seat"`
	MaxPricePerSeat      int64   `json:"max_price_per_seat"`
	Currency             string  `json:"currency"`
	SuggestedDisplay     string  `json:"suggested_display"`
}

// FareRequest is the request body for a fare calculation
type FareRequest struct {
	Distance string `json:"distance"`
}

// GuaranteeQuote is the amount a publisher must have frozen before a trip
// can be published
type GuaranteeQuote struct {
	TripValue      int64 `json:"trip_value"`
	Seats          int   `json:"seats"`
	PercentageFee  int64 `json:"percentage_fee"`
	FixedFee       int64 `json:"fixed_fee"`
	TotalGuarantee int64 `json:"total_guarantee"`
}

// GuaranteeRequest is the request body for a publish guarantee quote
type GuaranteeRequest struct {
	TripValue int64 `json:"trip_value"`
	Seats     int   `json:"seats"`
}

// CommissionQuote is the platform fee deducted when a booking is validated
type CommissionQuote struct {
	BookingPrice         int64 `json:"booking_price"`
	PercentageCommission int64 `json:"percentage_commission"`
	FixedCommission      int64 `json:"fixed_commission"`
	TotalCommission      int64 `json:"total_commission"`
	Payout               int64 `json:"payout"`
}

// CommissionRequest is the request body for a validation commission quote
type CommissionRequest struct {
	BookingPrice int64 `json:"booking_price"`
	Seats        int   `json:"seats"`
}
