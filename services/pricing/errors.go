package pricing

import "errors"

var (
	// ErrAssumptionsNotConfigured indicates the assumptions row is missing.
	// Calculations must fail rather than run with invented defaults.
	ErrAssumptionsNotConfigured = errors.New("pricing assumptions are not configured")

	// ErrInvalidDistance indicates no usable distance could be parsed
	ErrInvalidDistance = errors.New("distance must be a positive number of kilometers")

	// ErrInvalidQuoteRequest indicates a quote request with non-positive amounts
	ErrInvalidQuoteRequest = errors.New("quote amounts and seats must be positive")
)
