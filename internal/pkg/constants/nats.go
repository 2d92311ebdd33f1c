package constants

// NATS Subjects
const (
	// Trip events
	SubjectTripPublished = "trip.published"
	SubjectTripStarted   = "trip.started"
	SubjectTripFinished  = "trip.finished"
	SubjectTripCanceled  = "trip.canceled"

	// Booking events
	SubjectBookingConfirmed = "booking.confirmed"
	SubjectBookingValidated = "booking.validated"
	SubjectBookingCanceled  = "booking.canceled"

	// Wallet events
	SubjectWalletFrozen   = "wallet.frozen"
	SubjectWalletReleased = "wallet.released"
	SubjectWalletCharged  = "wallet.charged"
)
