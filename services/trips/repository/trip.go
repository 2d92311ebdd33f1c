package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/trips"
)

// TripRepo persists trips and bookings
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

const tripColumns = `
	id, driver_id, origin, destination, distance_km, seats, seats_available,
	price_per_seat, guarantee_total, guarantee_held, status,
	created_at, updated_at, published_at, started_at, finished_at, canceled_at
`

// CreateTrip inserts a new trip draft
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, driver_id, origin, destination, distance_km, seats, seats_available,
			price_per_seat, guarantee_total, guarantee_held, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		trip.ID,
		trip.DriverID,
		trip.Origin,
		trip.Destination,
		trip.DistanceKm,
		trip.Seats,
		trip.SeatsAvailable,
		trip.PricePerSeat,
		trip.GuaranteeTotal,
		trip.GuaranteeHeld,
		trip.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetTrip returns a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, trips.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}
	return &trip, nil
}

// UpdateTrip writes the trip's mutable fields
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips SET
			seats_available = $1,
			price_per_seat = $2,
			guarantee_total = $3,
			guarantee_held = $4,
			status = $5,
			published_at = $6,
			started_at = $7,
			finished_at = $8,
			canceled_at = $9,
			updated_at = NOW()
		WHERE id = $10
	`
	result, err := r.db.ExecContext(ctx, query,
		trip.SeatsAvailable,
		trip.PricePerSeat,
		trip.GuaranteeTotal,
		trip.GuaranteeHeld,
		trip.Status,
		trip.PublishedAt,
		trip.StartedAt,
		trip.FinishedAt,
		trip.CanceledAt,
		trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return trips.ErrTripNotFound
	}
	return nil
}

// ReserveSeats decrements a published trip's available seats. The guard on
// seats_available makes concurrent reservations first-come-first-served.
func (r *TripRepo) ReserveSeats(ctx context.Context, tripID uuid.UUID, seats int) error {
	query := `
		UPDATE trips SET
			seats_available = seats_available - $1,
			updated_at = NOW()
		WHERE id = $2 AND status = $3 AND seats_available >= $1
	`
	result, err := r.db.ExecContext(ctx, query, seats, tripID, models.TripStatusPublished)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return trips.ErrNoSeatsAvailable
	}
	return nil
}

// ReleaseSeats returns seats to a trip, capped at its declared capacity
func (r *TripRepo) ReleaseSeats(ctx context.Context, tripID uuid.UUID, seats int) error {
	query := `
		UPDATE trips SET
			seats_available = LEAST(seats_available + $1, seats),
			updated_at = NOW()
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, seats, tripID)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return trips.ErrTripNotFound
	}
	return nil
}

// ListPublishedTrips returns trips open for booking, newest first
func (r *TripRepo) ListPublishedTrips(ctx context.Context, limit, offset int) ([]models.Trip, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE status = $1
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3
	`

	result := []models.Trip{}
	if err := r.db.SelectContext(ctx, &result, query, models.TripStatusPublished, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list published trips: %w", err)
	}
	return result, nil
}

// ListTripsByDriver returns all trips owned by a driver, newest first
func (r *TripRepo) ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`

	result := []models.Trip{}
	if err := r.db.SelectContext(ctx, &result, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver trips: %w", err)
	}
	return result, nil
}

const bookingColumns = `
	id, trip_id, passenger_id, seats_booked, total_price, status,
	created_at, updated_at, confirmed_at, validated_at, canceled_at
`

// CreateBooking inserts a new pending booking
func (r *TripRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, trip_id, passenger_id, seats_booked, total_price, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.TripID,
		booking.PassengerID,
		booking.SeatsBooked,
		booking.TotalPrice,
		booking.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBooking returns a booking by ID
func (r *TripRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, trips.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

// UpdateBooking writes the booking's mutable fields
func (r *TripRepo) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings SET
			status = $1,
			confirmed_at = $2,
			validated_at = $3,
			canceled_at = $4,
			updated_at = NOW()
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		booking.Status,
		booking.ConfirmedAt,
		booking.ValidatedAt,
		booking.CanceledAt,
		booking.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return trips.ErrBookingNotFound
	}
	return nil
}

// ListBookingsByTrip returns all bookings for a trip, oldest first
func (r *TripRepo) ListBookingsByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE trip_id = $1
		ORDER BY created_at
	`

	result := []models.Booking{}
	if err := r.db.SelectContext(ctx, &result, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list trip bookings: %w", err)
	}
	return result, nil
}
