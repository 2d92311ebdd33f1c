package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg       *models.Config
	tripRepo  trips.TripRepo
	pricingGW trips.PricingGW
	walletGW  trips.WalletGW
	eventsGW  trips.TripEventsGW
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	pricingGW trips.PricingGW,
	walletGW trips.WalletGW,
	eventsGW trips.TripEventsGW,
) trips.TripUC {
	return &tripUC{
		cfg:       cfg,
		tripRepo:  tripRepo,
		pricingGW: pricingGW,
		walletGW:  walletGW,
		eventsGW:  eventsGW,
	}
}

func tripReference(tripID uuid.UUID) string {
	return fmt.Sprintf("trip:%s", tripID)
}

// CreateTrip creates a trip draft. The price per seat must stay inside the
// band around the suggested price; a zero price adopts the suggestion.
func (uc *tripUC) CreateTrip(ctx context.Context, driverID uuid.UUID, req models.CreateTripRequest) (*models.Trip, error) {
	if req.Seats <= 0 {
		return nil, trips.ErrInvalidSeats
	}

	quote, err := uc.pricingGW.CalculateFare(ctx, req.Distance)
	if err != nil {
		return nil, fmt.Errorf("failed to get fare quote: %w", err)
	}

	pricePerSeat := req.PricePerSeat
	if pricePerSeat == 0 {
		pricePerSeat = quote.SuggestedPricePerSeat
	}
	if pricePerSeat < quote.MinPricePerSeat || pricePerSeat > quote.MaxPricePerSeat {
		return nil, trips.ErrPriceOutOfRange
	}

	trip := &models.Trip{
		ID:             uuid.New(),
		DriverID:       driverID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DistanceKm:     quote.DistanceKm,
		Seats:          req.Seats,
		SeatsAvailable: req.Seats,
		PricePerSeat:   pricePerSeat,
		Status:         models.TripStatusCreated,
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip draft created",
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Int64("price_per_seat", pricePerSeat),
		logger.Int("seats", req.Seats))

	return trip, nil
}

// GetTrip returns a trip by ID
func (uc *tripUC) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, tripID)
}

// ListPublishedTrips returns trips open for booking
func (uc *tripUC) ListPublishedTrips(ctx context.Context, limit, offset int) ([]models.Trip, error) {
	return uc.tripRepo.ListPublishedTrips(ctx, limit, offset)
}

// ListDriverTrips returns the driver's own trips
func (uc *tripUC) ListDriverTrips(ctx context.Context, driverID uuid.UUID) ([]models.Trip, error) {
	return uc.tripRepo.ListTripsByDriver(ctx, driverID)
}

// PublishTrip freezes the driver's guarantee and opens the trip for booking
func (uc *tripUC) PublishTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.ownedTrip(ctx, driverID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusCreated {
		return nil, trips.ErrInvalidTripState
	}

	quote, err := uc.pricingGW.QuoteGuarantee(ctx, models.GuaranteeRequest{
		TripValue: trip.TripValue(),
		Seats:     trip.Seats,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get guarantee quote: %w", err)
	}

	err = uc.walletGW.Freeze(ctx, driverID, models.WalletOpRequest{
		Amount:    quote.TotalGuarantee,
		Reference: tripReference(trip.ID),
		Detail:    "publish guarantee",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to freeze guarantee: %w", err)
	}

	now := time.Now()
	trip.Status = models.TripStatusPublished
	trip.GuaranteeTotal = quote.TotalGuarantee
	trip.GuaranteeHeld = quote.TotalGuarantee
	trip.PublishedAt = &now

	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		// Undo the freeze so funds are not stranded
		if releaseErr := uc.walletGW.Release(ctx, driverID, models.WalletOpRequest{
			Amount:    quote.TotalGuarantee,
			Reference: tripReference(trip.ID),
			Detail:    "publish rollback",
		}); releaseErr != nil {
			logger.ErrorCtx(ctx, "Failed to release guarantee after publish failure",
				logger.String("trip_id", trip.ID.String()),
				logger.Err(releaseErr))
		}
		return nil, err
	}

	uc.publishTripEvent(ctx, trip)

	logger.InfoCtx(ctx, "Trip published",
		logger.String("trip_id", trip.ID.String()),
		logger.Int64("guarantee", quote.TotalGuarantee))

	return trip, nil
}

// StartTrip marks a published trip as underway
func (uc *tripUC) StartTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.ownedTrip(ctx, driverID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusPublished {
		return nil, trips.ErrInvalidTripState
	}

	now := time.Now()
	trip.Status = models.TripStatusStarted
	trip.StartedAt = &now

	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}

	uc.publishTripEvent(ctx, trip)
	return trip, nil
}

// FinishTrip closes a started trip and releases whatever remains of the
// guarantee. Confirmed bookings must be validated or canceled first;
// bookings still pending are dropped.
func (uc *tripUC) FinishTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.ownedTrip(ctx, driverID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusStarted {
		return nil, trips.ErrInvalidTripState
	}

	bookings, err := uc.tripRepo.ListBookingsByTrip(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].Status == models.BookingStatusConfirmed {
			return nil, trips.ErrUnresolvedBookings
		}
	}
	if err := uc.cancelPendingBookings(ctx, bookings); err != nil {
		return nil, err
	}

	if trip.GuaranteeHeld > 0 {
		err = uc.walletGW.Release(ctx, driverID, models.WalletOpRequest{
			Amount:    trip.GuaranteeHeld,
			Reference: tripReference(trip.ID),
			Detail:    "guarantee release",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to release guarantee: %w", err)
		}
		trip.GuaranteeHeld = 0
	}

	now := time.Now()
	trip.Status = models.TripStatusFinished
	trip.FinishedAt = &now

	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}

	uc.publishTripEvent(ctx, trip)

	logger.InfoCtx(ctx, "Trip finished", logger.String("trip_id", trip.ID.String()))
	return trip, nil
}

// CancelTrip aborts a trip before it starts. Escrowed bookings are refunded
// to their passengers and the guarantee returns to the driver.
func (uc *tripUC) CancelTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.ownedTrip(ctx, driverID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusCreated && trip.Status != models.TripStatusPublished {
		return nil, trips.ErrInvalidTripState
	}

	bookings, err := uc.tripRepo.ListBookingsByTrip(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range bookings {
		booking := &bookings[i]
		switch booking.Status {
		case models.BookingStatusConfirmed:
			err := uc.walletGW.HoldReturn(ctx, models.HoldRequest{
				PayerUserID:  booking.PassengerID,
				HolderUserID: trip.DriverID,
				Amount:       booking.TotalPrice,
				Reference:    bookingReference(booking.ID),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to refund booking %s: %w", booking.ID, err)
			}
		case models.BookingStatusPending:
			// nothing escrowed yet
		default:
			continue
		}

		booking.Status = models.BookingStatusCanceled
		booking.CanceledAt = &now
		if err := uc.tripRepo.UpdateBooking(ctx, booking); err != nil {
			return nil, err
		}
		uc.publishBookingEvent(ctx, booking, 0, 0)
	}

	if trip.GuaranteeHeld > 0 {
		err = uc.walletGW.Release(ctx, driverID, models.WalletOpRequest{
			Amount:    trip.GuaranteeHeld,
			Reference: tripReference(trip.ID),
			Detail:    "guarantee release on cancel",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to release guarantee: %w", err)
		}
		trip.GuaranteeHeld = 0
	}

	trip.Status = models.TripStatusCanceled
	trip.CanceledAt = &now

	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}

	uc.publishTripEvent(ctx, trip)

	logger.InfoCtx(ctx, "Trip canceled", logger.String("trip_id", trip.ID.String()))
	return trip, nil
}

func (uc *tripUC) cancelPendingBookings(ctx context.Context, bookings []models.Booking) error {
	now := time.Now()
	for i := range bookings {
		booking := &bookings[i]
		if booking.Status != models.BookingStatusPending {
			continue
		}
		booking.Status = models.BookingStatusCanceled
		booking.CanceledAt = &now
		if err := uc.tripRepo.UpdateBooking(ctx, booking); err != nil {
			return err
		}
		uc.publishBookingEvent(ctx, booking, 0, 0)
	}
	return nil
}

func (uc *tripUC) ownedTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, trips.ErrNotTripOwner
	}
	return trip, nil
}

func (uc *tripUC) publishTripEvent(ctx context.Context, trip *models.Trip) {
	if uc.eventsGW == nil {
		return
	}
	event := &models.TripEvent{
		TripID:    trip.ID,
		DriverID:  trip.DriverID,
		Status:    trip.Status,
		Guarantee: trip.GuaranteeHeld,
		Timestamp: time.Now(),
	}
	if err := uc.eventsGW.PublishTripEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish trip event",
			logger.String("trip_id", trip.ID.String()),
			logger.String("status", string(trip.Status)),
			logger.Err(err))
	}
}

func (uc *tripUC) publishBookingEvent(ctx context.Context, booking *models.Booking, commission, payout int64) {
	if uc.eventsGW == nil {
		return
	}
	event := &models.BookingEvent{
		BookingID:   booking.ID,
		TripID:      booking.TripID,
		PassengerID: booking.PassengerID,
		Status:      booking.Status,
		TotalPrice:  booking.TotalPrice,
		Commission:  commission,
		Payout:      payout,
		Timestamp:   time.Now(),
	}
	if err := uc.eventsGW.PublishBookingEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking event",
			logger.String("booking_id", booking.ID.String()),
			logger.String("status", string(booking.Status)),
			logger.Err(err))
	}
}
