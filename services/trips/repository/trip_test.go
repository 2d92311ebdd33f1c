package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/trips"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return sqlxDB, mock
}

func tripColumnNames() []string {
	return []string{
		"id", "driver_id", "origin", "destination", "distance_km", "seats", "seats_available",
		"price_per_seat", "guarantee_total", "guarantee_held", "status",
		"created_at", "updated_at", "published_at", "started_at", "finished_at", "canceled_at",
	}
}

func tripRow(tripID, driverID uuid.UUID, status models.TripStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(tripColumnNames()).
		AddRow(tripID, driverID, "Bogotá", "Chía", 20.0, 3, 3,
			int64(20000), int64(0), int64(0), status,
			now, now, nil, nil, nil, nil)
}

func bookingColumnNames() []string {
	return []string{
		"id", "trip_id", "passenger_id", "seats_booked", "total_price", "status",
		"created_at", "updated_at", "confirmed_at", "validated_at", "canceled_at",
	}
}

func TestCreateTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{
		ID:             uuid.New(),
		DriverID:       uuid.New(),
		Origin:         "Bogotá",
		Destination:    "Chía",
		DistanceKm:     20,
		Seats:          3,
		SeatsAvailable: 3,
		PricePerSeat:   20000,
		Status:         models.TripStatusCreated,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trips")).
		WithArgs(trip.ID, trip.DriverID, "Bogotá", "Chía", 20.0, 3, 3,
			int64(20000), int64(0), int64(0), models.TripStatusCreated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTrip(context.Background(), trip)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	driverID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1")).
		WithArgs(tripID).
		WillReturnRows(tripRow(tripID, driverID, models.TripStatusPublished))

	trip, err := repo.GetTrip(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, tripID, trip.ID)
	assert.Equal(t, driverID, trip.DriverID)
	assert.Equal(t, models.TripStatusPublished, trip.Status)
}

func TestGetTrip_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1")).
		WithArgs(tripID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTrip(context.Background(), tripID)

	assert.ErrorIs(t, err, trips.ErrTripNotFound)
}

func TestUpdateTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	now := time.Now()
	trip := &models.Trip{
		ID:             uuid.New(),
		SeatsAvailable: 2,
		PricePerSeat:   20000,
		GuaranteeTotal: 16000,
		GuaranteeHeld:  16000,
		Status:         models.TripStatusPublished,
		PublishedAt:    &now,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET")).
		WithArgs(2, int64(20000), int64(16000), int64(16000), models.TripStatusPublished,
			trip.PublishedAt, nil, nil, nil, trip.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTrip(context.Background(), trip)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTrip_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	trip := &models.Trip{ID: uuid.New(), Status: models.TripStatusStarted}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTrip(context.Background(), trip)

	assert.ErrorIs(t, err, trips.ErrTripNotFound)
}

func TestReserveSeats(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("seats_available = seats_available - $1")).
		WithArgs(2, tripID, models.TripStatusPublished).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReserveSeats(context.Background(), tripID, 2)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeats_Exhausted(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	// The guard rejects the decrement when fewer seats remain than asked for
	tripID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("seats_available = seats_available - $1")).
		WithArgs(2, tripID, models.TripStatusPublished).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReserveSeats(context.Background(), tripID, 2)

	assert.ErrorIs(t, err, trips.ErrNoSeatsAvailable)
}

func TestReleaseSeats(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("seats_available = LEAST(seats_available + $1, seats)")).
		WithArgs(1, tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReleaseSeats(context.Background(), tripID, 1)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseSeats_TripMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("seats_available = LEAST(seats_available + $1, seats)")).
		WithArgs(1, tripID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReleaseSeats(context.Background(), tripID, 1)

	assert.ErrorIs(t, err, trips.ErrTripNotFound)
}

func TestListPublishedTrips_ClampsLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
		WithArgs(models.TripStatusPublished, 20, 0).
		WillReturnRows(sqlmock.NewRows(tripColumnNames()))

	result, err := repo.ListPublishedTrips(context.Background(), 0, -3)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCreateBooking(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      uuid.New(),
		PassengerID: uuid.New(),
		SeatsBooked: 2,
		TotalPrice:  40000,
		Status:      models.BookingStatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(booking.ID, booking.TripID, booking.PassengerID, 2, int64(40000),
			models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateBooking(context.Background(), booking)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	bookingID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(bookingID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBooking(context.Background(), bookingID)

	assert.ErrorIs(t, err, trips.ErrBookingNotFound)
}

func TestUpdateBooking(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	now := time.Now()
	booking := &models.Booking{
		ID:          uuid.New(),
		Status:      models.BookingStatusConfirmed,
		ConfirmedAt: &now,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET")).
		WithArgs(models.BookingStatusConfirmed, booking.ConfirmedAt, nil, nil, booking.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateBooking(context.Background(), booking)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookingsByTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(bookingColumnNames()).
		AddRow(uuid.New(), tripID, uuid.New(), 1, int64(20000), models.BookingStatusPending,
			now, now, nil, nil, nil).
		AddRow(uuid.New(), tripID, uuid.New(), 2, int64(40000), models.BookingStatusConfirmed,
			now, now, &now, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
		WithArgs(tripID).
		WillReturnRows(rows)

	bookings, err := repo.ListBookingsByTrip(context.Background(), tripID)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, models.BookingStatusConfirmed, bookings[1].Status)
}
