package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/cupoapp/cupo/internal/pkg/models"
)

// TripUC defines the interface for trip and booking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cupoapp/cupo/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, driverID uuid.UUID, req models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListPublishedTrips(ctx context.Context, limit, offset int) ([]models.Trip, error)
	ListDriverTrips(ctx context.Context, driverID uuid.UUID) ([]models.Trip, error)

	PublishTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)
	StartTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)
	FinishTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)
	CancelTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)

	CreateBooking(ctx context.Context, passengerID, tripID uuid.UUID, req models.CreateBookingRequest) (*models.Booking, error)
	ListTripBookings(ctx context.Context, driverID, tripID uuid.UUID) ([]models.Booking, error)
	ConfirmBooking(ctx context.Context, passengerID, bookingID uuid.UUID) (*models.Booking, error)
	ValidateBooking(ctx context.Context, driverID, bookingID uuid.UUID) (*models.ValidateBookingResult, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error)
}
