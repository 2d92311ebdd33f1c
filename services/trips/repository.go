package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/cupoapp/cupo/internal/pkg/models"
)

// TripRepo defines the interface for trip and booking data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cupoapp/cupo/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	ReserveSeats(ctx context.Context, tripID uuid.UUID, seats int) error
	ReleaseSeats(ctx context.Context, tripID uuid.UUID, seats int) error
	ListPublishedTrips(ctx context.Context, limit, offset int) ([]models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Trip, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	ListBookingsByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error)
}
