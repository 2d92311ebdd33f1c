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

func bookingReference(bookingID uuid.UUID) string {
	return fmt.Sprintf("booking:%s", bookingID)
}

// CreateBooking reserves seats on a published trip. The reservation holds
// the seats but no money moves until the booking is confirmed.
func (uc *tripUC) CreateBooking(ctx context.Context, passengerID, tripID uuid.UUID, req models.CreateBookingRequest) (*models.Booking, error) {
	if req.Seats <= 0 {
		return nil, trips.ErrInvalidSeats
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusPublished {
		return nil, trips.ErrInvalidTripState
	}
	if trip.DriverID == passengerID {
		return nil, trips.ErrOwnTripBooking
	}
	// The guarded decrement in the repository settles concurrent bookings;
	// a passenger racing for the last seat gets ErrNoSeatsAvailable here.
	if err := uc.tripRepo.ReserveSeats(ctx, trip.ID, req.Seats); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: passengerID,
		SeatsBooked: req.Seats,
		TotalPrice:  int64(req.Seats) * trip.PricePerSeat,
		Status:      models.BookingStatusPending,
	}

	if err := uc.tripRepo.CreateBooking(ctx, booking); err != nil {
		if releaseErr := uc.tripRepo.ReleaseSeats(ctx, trip.ID, req.Seats); releaseErr != nil {
			logger.ErrorCtx(ctx, "Failed to release seats after booking insert failure",
				logger.String("trip_id", trip.ID.String()),
				logger.Err(releaseErr))
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("trip_id", trip.ID.String()),
		logger.Int("seats", req.Seats),
		logger.Int64("total_price", booking.TotalPrice))

	return booking, nil
}

// ListTripBookings returns the bookings on the driver's trip
func (uc *tripUC) ListTripBookings(ctx context.Context, driverID, tripID uuid.UUID) ([]models.Booking, error) {
	if _, err := uc.ownedTrip(ctx, driverID, tripID); err != nil {
		return nil, err
	}
	return uc.tripRepo.ListBookingsByTrip(ctx, tripID)
}

// ConfirmBooking escrows the booking price from the passenger's wallet into
// the driver's frozen balance.
func (uc *tripUC) ConfirmBooking(ctx context.Context, passengerID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.tripRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID != passengerID {
		return nil, trips.ErrNotBookingOwner
	}
	if booking.Status != models.BookingStatusPending {
		return nil, trips.ErrInvalidBookingState
	}

	trip, err := uc.tripRepo.GetTrip(ctx, booking.TripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusPublished && trip.Status != models.TripStatusStarted {
		return nil, trips.ErrInvalidTripState
	}

	err = uc.walletGW.Hold(ctx, models.HoldRequest{
		PayerUserID:  passengerID,
		HolderUserID: trip.DriverID,
		Amount:       booking.TotalPrice,
		Reference:    bookingReference(booking.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to escrow booking payment: %w", err)
	}

	now := time.Now()
	booking.Status = models.BookingStatusConfirmed
	booking.ConfirmedAt = &now

	if err := uc.tripRepo.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	uc.publishBookingEvent(ctx, booking, 0, 0)

	logger.InfoCtx(ctx, "Booking confirmed",
		logger.String("booking_id", booking.ID.String()),
		logger.Int64("escrowed", booking.TotalPrice))

	return booking, nil
}

// ValidateBooking settles a confirmed booking: the commission is charged
// from the driver's frozen funds, the full booking price is released to the
// driver's balance and the held guarantee shrinks by the commission.
func (uc *tripUC) ValidateBooking(ctx context.Context, driverID, bookingID uuid.UUID) (*models.ValidateBookingResult, error) {
	booking, err := uc.tripRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, trips.ErrInvalidBookingState
	}

	trip, err := uc.ownedTrip(ctx, driverID, booking.TripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusStarted && trip.Status != models.TripStatusPublished {
		return nil, trips.ErrInvalidTripState
	}

	commission, err := uc.pricingGW.QuoteCommission(ctx, models.CommissionRequest{
		BookingPrice: booking.TotalPrice,
		Seats:        booking.SeatsBooked,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get commission quote: %w", err)
	}

	reference := bookingReference(booking.ID)

	err = uc.walletGW.Charge(ctx, driverID, models.WalletOpRequest{
		Amount:    commission.TotalCommission,
		Reference: reference,
		Detail:    "validation commission",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to charge commission: %w", err)
	}

	err = uc.walletGW.Release(ctx, driverID, models.WalletOpRequest{
		Amount:    booking.TotalPrice,
		Reference: reference,
		Detail:    "booking payout",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to release payout: %w", err)
	}

	now := time.Now()
	booking.Status = models.BookingStatusValidated
	booking.ValidatedAt = &now

	if err := uc.tripRepo.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	trip.GuaranteeHeld -= commission.TotalCommission
	if trip.GuaranteeHeld < 0 {
		trip.GuaranteeHeld = 0
	}
	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}

	uc.publishBookingEvent(ctx, booking, commission.TotalCommission, commission.Payout)

	logger.InfoCtx(ctx, "Booking validated",
		logger.String("booking_id", booking.ID.String()),
		logger.Int64("commission", commission.TotalCommission),
		logger.Int64("payout", commission.Payout))

	return &models.ValidateBookingResult{
		Booking:    booking,
		Commission: *commission,
	}, nil
}

// CancelBooking aborts a booking. Either side may cancel; escrowed funds
// return to the passenger and the seats go back on sale.
func (uc *tripUC) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.tripRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.tripRepo.GetTrip(ctx, booking.TripID)
	if err != nil {
		return nil, err
	}
	if userID != booking.PassengerID && userID != trip.DriverID {
		return nil, trips.ErrNotBookingOwner
	}

	switch booking.Status {
	case models.BookingStatusPending:
		// nothing escrowed yet
	case models.BookingStatusConfirmed:
		err := uc.walletGW.HoldReturn(ctx, models.HoldRequest{
			PayerUserID:  booking.PassengerID,
			HolderUserID: trip.DriverID,
			Amount:       booking.TotalPrice,
			Reference:    bookingReference(booking.ID),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to refund booking: %w", err)
		}
	default:
		return nil, trips.ErrInvalidBookingState
	}

	now := time.Now()
	booking.Status = models.BookingStatusCanceled
	booking.CanceledAt = &now

	if err := uc.tripRepo.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	if trip.Status == models.TripStatusPublished {
		if err := uc.tripRepo.ReleaseSeats(ctx, trip.ID, booking.SeatsBooked); err != nil {
			return nil, err
		}
	}

	uc.publishBookingEvent(ctx, booking, 0, 0)

	logger.InfoCtx(ctx, "Booking canceled",
		logger.String("booking_id", booking.ID.String()),
		logger.Int64("refunded", booking.TotalPrice))

	return booking, nil
}
