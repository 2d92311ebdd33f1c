package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/trips"
)

func publishedTrip(driverID uuid.UUID) *models.Trip {
	return &models.Trip{
		ID:             uuid.New(),
		DriverID:       driverID,
		Seats:          3,
		SeatsAvailable: 3,
		PricePerSeat:   20000,
		Status:         models.TripStatusPublished,
	}
}

func TestCreateBooking_ReservesSeats(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	passengerID := uuid.New()
	trip := publishedTrip(uuid.New())

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().ReserveSeats(gomock.Any(), trip.ID, 2).Return(nil)
	d.tripRepo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := d.uc.CreateBooking(context.Background(), passengerID, trip.ID, models.CreateBookingRequest{Seats: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(40000), booking.TotalPrice)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 2, booking.SeatsBooked)
}

func TestCreateBooking_NoSeatsAvailable(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	trip := publishedTrip(uuid.New())
	trip.SeatsAvailable = 1

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().ReserveSeats(gomock.Any(), trip.ID, 2).Return(trips.ErrNoSeatsAvailable)

	_, err := d.uc.CreateBooking(context.Background(), uuid.New(), trip.ID, models.CreateBookingRequest{Seats: 2})

	assert.ErrorIs(t, err, trips.ErrNoSeatsAvailable)
}

func TestCreateBooking_LosesSeatRace(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	// The trip read shows a free seat, but another booking takes it before
	// the reservation lands. No booking row may be written.
	trip := publishedTrip(uuid.New())

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().ReserveSeats(gomock.Any(), trip.ID, 1).Return(trips.ErrNoSeatsAvailable)

	_, err := d.uc.CreateBooking(context.Background(), uuid.New(), trip.ID, models.CreateBookingRequest{Seats: 1})

	assert.ErrorIs(t, err, trips.ErrNoSeatsAvailable)
}

func TestCreateBooking_InsertFailureReleasesSeats(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	trip := publishedTrip(uuid.New())

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().ReserveSeats(gomock.Any(), trip.ID, 2).Return(nil)
	d.tripRepo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(assert.AnError)
	d.tripRepo.EXPECT().ReleaseSeats(gomock.Any(), trip.ID, 2).Return(nil)

	_, err := d.uc.CreateBooking(context.Background(), uuid.New(), trip.ID, models.CreateBookingRequest{Seats: 2})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestCreateBooking_OwnTrip(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := publishedTrip(driverID)

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := d.uc.CreateBooking(context.Background(), driverID, trip.ID, models.CreateBookingRequest{Seats: 1})

	assert.ErrorIs(t, err, trips.ErrOwnTripBooking)
}

func TestCreateBooking_TripNotPublished(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	trip := publishedTrip(uuid.New())
	trip.Status = models.TripStatusCreated

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := d.uc.CreateBooking(context.Background(), uuid.New(), trip.ID, models.CreateBookingRequest{Seats: 1})

	assert.ErrorIs(t, err, trips.ErrInvalidTripState)
}

func TestConfirmBooking_EscrowsPayment(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	passengerID := uuid.New()
	trip := publishedTrip(uuid.New())
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: passengerID,
		SeatsBooked: 1,
		TotalPrice:  20000,
		Status:      models.BookingStatusPending,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.walletGW.EXPECT().
		Hold(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.HoldRequest) error {
			assert.Equal(t, passengerID, req.PayerUserID)
			assert.Equal(t, trip.DriverID, req.HolderUserID)
			assert.Equal(t, int64(20000), req.Amount)
			assert.Equal(t, "booking:"+booking.ID.String(), req.Reference)
			return nil
		})
	d.tripRepo.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	d.eventsGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	confirmed, err := d.uc.ConfirmBooking(context.Background(), passengerID, booking.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)
}

func TestConfirmBooking_NotOwner(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	booking := &models.Booking{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.BookingStatusPending,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := d.uc.ConfirmBooking(context.Background(), uuid.New(), booking.ID)

	assert.ErrorIs(t, err, trips.ErrNotBookingOwner)
}

func TestConfirmBooking_AlreadyConfirmed(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	passengerID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		PassengerID: passengerID,
		Status:      models.BookingStatusConfirmed,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := d.uc.ConfirmBooking(context.Background(), passengerID, booking.ID)

	assert.ErrorIs(t, err, trips.ErrInvalidBookingState)
}

func TestValidateBooking_ChargesCommissionAndPaysOut(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{
		ID:            uuid.New(),
		DriverID:      driverID,
		Status:        models.TripStatusStarted,
		GuaranteeHeld: 16000,
	}
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: uuid.New(),
		SeatsBooked: 1,
		TotalPrice:  20000,
		Status:      models.BookingStatusConfirmed,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.pricingGW.EXPECT().
		QuoteCommission(gomock.Any(), models.CommissionRequest{BookingPrice: 20000, Seats: 1}).
		Return(&models.CommissionQuote{
			BookingPrice:         20000,
			PercentageCommission: 2000,
			FixedCommission:      2000,
			TotalCommission:      4000,
			Payout:               16000,
		}, nil)
	d.walletGW.EXPECT().
		Charge(gomock.Any(), driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.WalletOpRequest) error {
			assert.Equal(t, int64(4000), req.Amount)
			return nil
		})
	d.walletGW.EXPECT().
		Release(gomock.Any(), driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.WalletOpRequest) error {
			assert.Equal(t, int64(20000), req.Amount)
			return nil
		})
	d.tripRepo.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	d.tripRepo.EXPECT().
		UpdateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *models.Trip) error {
			assert.Equal(t, int64(12000), tr.GuaranteeHeld)
			return nil
		})
	d.eventsGW.EXPECT().
		PublishBookingEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.BookingEvent) error {
			assert.Equal(t, int64(4000), event.Commission)
			assert.Equal(t, int64(16000), event.Payout)
			return nil
		})

	result, err := d.uc.ValidateBooking(context.Background(), driverID, booking.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusValidated, result.Booking.Status)
	assert.Equal(t, int64(4000), result.Commission.TotalCommission)
	assert.Equal(t, int64(16000), result.Commission.Payout)
}

func TestValidateBooking_GuaranteeFloorsAtZero(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{
		ID:            uuid.New(),
		DriverID:      driverID,
		Status:        models.TripStatusStarted,
		GuaranteeHeld: 3000,
	}
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: uuid.New(),
		SeatsBooked: 1,
		TotalPrice:  20000,
		Status:      models.BookingStatusConfirmed,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.pricingGW.EXPECT().QuoteCommission(gomock.Any(), gomock.Any()).
		Return(&models.CommissionQuote{TotalCommission: 4000, Payout: 16000}, nil)
	d.walletGW.EXPECT().Charge(gomock.Any(), driverID, gomock.Any()).Return(nil)
	d.walletGW.EXPECT().Release(gomock.Any(), driverID, gomock.Any()).Return(nil)
	d.tripRepo.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	d.tripRepo.EXPECT().
		UpdateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *models.Trip) error {
			assert.Equal(t, int64(0), tr.GuaranteeHeld)
			return nil
		})
	d.eventsGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.uc.ValidateBooking(context.Background(), driverID, booking.ID)

	require.NoError(t, err)
}

func TestValidateBooking_NotConfirmed(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	booking := &models.Booking{ID: uuid.New(), Status: models.BookingStatusPending}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := d.uc.ValidateBooking(context.Background(), uuid.New(), booking.ID)

	assert.ErrorIs(t, err, trips.ErrInvalidBookingState)
}

func TestCancelBooking_PendingRestoresSeats(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	passengerID := uuid.New()
	trip := publishedTrip(uuid.New())
	trip.SeatsAvailable = 1
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: passengerID,
		SeatsBooked: 2,
		TotalPrice:  40000,
		Status:      models.BookingStatusPending,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	d.tripRepo.EXPECT().ReleaseSeats(gomock.Any(), trip.ID, 2).Return(nil)
	d.eventsGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	canceled, err := d.uc.CancelBooking(context.Background(), passengerID, booking.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCanceled, canceled.Status)
}

func TestCancelBooking_ConfirmedRefundsEscrow(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	passengerID := uuid.New()
	driverID := uuid.New()
	trip := publishedTrip(driverID)
	trip.SeatsAvailable = 2
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: passengerID,
		SeatsBooked: 1,
		TotalPrice:  20000,
		Status:      models.BookingStatusConfirmed,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.walletGW.EXPECT().
		HoldReturn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.HoldRequest) error {
			assert.Equal(t, passengerID, req.PayerUserID)
			assert.Equal(t, driverID, req.HolderUserID)
			assert.Equal(t, int64(20000), req.Amount)
			return nil
		})
	d.tripRepo.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	d.tripRepo.EXPECT().ReleaseSeats(gomock.Any(), trip.ID, 1).Return(nil)
	d.eventsGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	canceled, err := d.uc.CancelBooking(context.Background(), passengerID, booking.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCanceled, canceled.Status)
}

func TestCancelBooking_DriverMayCancel(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := publishedTrip(driverID)
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: uuid.New(),
		SeatsBooked: 1,
		Status:      models.BookingStatusPending,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	d.tripRepo.EXPECT().ReleaseSeats(gomock.Any(), trip.ID, 1).Return(nil)
	d.eventsGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.uc.CancelBooking(context.Background(), driverID, booking.ID)

	require.NoError(t, err)
}

func TestCancelBooking_Stranger(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	trip := publishedTrip(uuid.New())
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusPending,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := d.uc.CancelBooking(context.Background(), uuid.New(), booking.ID)

	assert.ErrorIs(t, err, trips.ErrNotBookingOwner)
}

func TestCancelBooking_AlreadyValidated(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	passengerID := uuid.New()
	trip := publishedTrip(uuid.New())
	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: passengerID,
		Status:      models.BookingStatusValidated,
	}

	d.tripRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := d.uc.CancelBooking(context.Background(), passengerID, booking.ID)

	assert.ErrorIs(t, err, trips.ErrInvalidBookingState)
}
