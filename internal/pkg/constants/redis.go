package constants

// Redis key formats
const (
	// Pricing Service
	KeyAssumptions = "pricing:assumptions" // Cached assumptions snapshot

	// Wallet Service
	KeyWalletOpLock = "wallet:oplock:%s:%s" // Format: wallet:oplock:{wallet_id}:{reference}

	// Trips Service
	KeyTripSeats = "trip:seats:%s" // Format: trip:seats:{trip_id}
)
