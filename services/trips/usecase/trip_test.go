package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/trips"
	"github.com/cupoapp/cupo/services/trips/mocks"
)

type tripTestDeps struct {
	ctrl      *gomock.Controller
	tripRepo  *mocks.MockTripRepo
	pricingGW *mocks.MockPricingGW
	walletGW  *mocks.MockWalletGW
	eventsGW  *mocks.MockTripEventsGW
	uc        trips.TripUC
}

func newTripTestDeps(t *testing.T) *tripTestDeps {
	ctrl := gomock.NewController(t)
	tripRepo := mocks.NewMockTripRepo(ctrl)
	pricingGW := mocks.NewMockPricingGW(ctrl)
	walletGW := mocks.NewMockWalletGW(ctrl)
	eventsGW := mocks.NewMockTripEventsGW(ctrl)
	uc := NewTripUC(&models.Config{}, tripRepo, pricingGW, walletGW, eventsGW)
	return &tripTestDeps{
		ctrl:      ctrl,
		tripRepo:  tripRepo,
		pricingGW: pricingGW,
		walletGW:  walletGW,
		eventsGW:  eventsGW,
		uc:        uc,
	}
}

func urbanFareQuote() *models.FareQuote {
	return &models.FareQuote{
		DistanceKm:            20,
		IsUrban:               true,
		PricePerKm:            1000,
		SuggestedPricePerSeat: 20000,
		MinPricePerSeat:       16000,
		MaxPricePerSeat:       24000,
		Currency:              "COP",
	}
}

func TestCreateTrip_SuggestedPrice(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	d.pricingGW.EXPECT().CalculateFare(gomock.Any(), "20 km").Return(urbanFareQuote(), nil)
	d.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := d.uc.CreateTrip(context.Background(), driverID, models.CreateTripRequest{
		Origin:      "Bogotá",
		Destination: "Chía",
		Distance:    "20 km",
		Seats:       3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(20000), trip.PricePerSeat)
	assert.Equal(t, models.TripStatusCreated, trip.Status)
	assert.Equal(t, 3, trip.SeatsAvailable)
	assert.Equal(t, float64(20), trip.DistanceKm)
}

func TestCreateTrip_PriceInsideBand(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	d.pricingGW.EXPECT().CalculateFare(gomock.Any(), "20 km").Return(urbanFareQuote(), nil)
	d.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := d.uc.CreateTrip(context.Background(), uuid.New(), models.CreateTripRequest{
		Distance:     "20 km",
		Seats:        4,
		PricePerSeat: 18000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(18000), trip.PricePerSeat)
}

func TestCreateTrip_PriceOutOfRange(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	d.pricingGW.EXPECT().CalculateFare(gomock.Any(), "20 km").Return(urbanFareQuote(), nil).Times(2)

	_, err := d.uc.CreateTrip(context.Background(), uuid.New(), models.CreateTripRequest{
		Distance:     "20 km",
		Seats:        2,
		PricePerSeat: 25000,
	})
	assert.ErrorIs(t, err, trips.ErrPriceOutOfRange)

	_, err = d.uc.CreateTrip(context.Background(), uuid.New(), models.CreateTripRequest{
		Distance:     "20 km",
		Seats:        2,
		PricePerSeat: 15000,
	})
	assert.ErrorIs(t, err, trips.ErrPriceOutOfRange)
}

func TestCreateTrip_InvalidSeats(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	_, err := d.uc.CreateTrip(context.Background(), uuid.New(), models.CreateTripRequest{
		Distance: "20 km",
		Seats:    0,
	})

	assert.ErrorIs(t, err, trips.ErrInvalidSeats)
}

func TestPublishTrip_FreezesGuarantee(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{
		ID:           uuid.New(),
		DriverID:     driverID,
		Seats:        3,
		PricePerSeat: 33334,
		Status:       models.TripStatusCreated,
	}

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.pricingGW.EXPECT().
		QuoteGuarantee(gomock.Any(), models.GuaranteeRequest{TripValue: 100002, Seats: 3}).
		Return(&models.GuaranteeQuote{
			TripValue:      100002,
			Seats:          3,
			PercentageFee:  10001,
			FixedFee:       6000,
			TotalGuarantee: 16001,
		}, nil)
	d.walletGW.EXPECT().
		Freeze(gomock.Any(), driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.WalletOpRequest) error {
			assert.Equal(t, int64(16001), req.Amount)
			assert.Equal(t, "trip:"+trip.ID.String(), req.Reference)
			return nil
		})
	d.tripRepo.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	d.eventsGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := d.uc.PublishTrip(context.Background(), driverID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusPublished, updated.Status)
	assert.Equal(t, int64(16001), updated.GuaranteeTotal)
	assert.Equal(t, int64(16001), updated.GuaranteeHeld)
	assert.NotNil(t, updated.PublishedAt)
}

func TestPublishTrip_ReleasesOnUpdateFailure(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{
		ID:           uuid.New(),
		DriverID:     driverID,
		Seats:        2,
		PricePerSeat: 20000,
		Status:       models.TripStatusCreated,
	}

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.pricingGW.EXPECT().QuoteGuarantee(gomock.Any(), gomock.Any()).
		Return(&models.GuaranteeQuote{TotalGuarantee: 8000}, nil)
	d.walletGW.EXPECT().Freeze(gomock.Any(), driverID, gomock.Any()).Return(nil)
	d.tripRepo.EXPECT().UpdateTrip(gomock.Any(), trip).Return(errors.New("db down"))
	d.walletGW.EXPECT().
		Release(gomock.Any(), driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.WalletOpRequest) error {
			assert.Equal(t, int64(8000), req.Amount)
			return nil
		})

	_, err := d.uc.PublishTrip(context.Background(), driverID, trip.ID)

	assert.Error(t, err)
}

func TestPublishTrip_NotOwner(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	trip := &models.Trip{ID: uuid.New(), DriverID: uuid.New(), Status: models.TripStatusCreated}
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := d.uc.PublishTrip(context.Background(), uuid.New(), trip.ID)

	assert.ErrorIs(t, err, trips.ErrNotTripOwner)
}

func TestPublishTrip_AlreadyPublished(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{ID: uuid.New(), DriverID: driverID, Status: models.TripStatusPublished}
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := d.uc.PublishTrip(context.Background(), driverID, trip.ID)

	assert.ErrorIs(t, err, trips.ErrInvalidTripState)
}

func TestStartTrip_Success(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{ID: uuid.New(), DriverID: driverID, Status: models.TripStatusPublished}

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	d.eventsGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := d.uc.StartTrip(context.Background(), driverID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusStarted, updated.Status)
	assert.NotNil(t, updated.StartedAt)
}

func TestFinishTrip_ReleasesRemainingGuarantee(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{
		ID:            uuid.New(),
		DriverID:      driverID,
		Status:        models.TripStatusStarted,
		GuaranteeHeld: 12000,
	}

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().ListBookingsByTrip(gomock.Any(), trip.ID).Return([]models.Booking{
		{ID: uuid.New(), Status: models.BookingStatusValidated},
	}, nil)
	d.walletGW.EXPECT().
		Release(gomock.Any(), driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.WalletOpRequest) error {
			assert.Equal(t, int64(12000), req.Amount)
			return nil
		})
	d.tripRepo.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	d.eventsGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := d.uc.FinishTrip(context.Background(), driverID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusFinished, updated.Status)
	assert.Equal(t, int64(0), updated.GuaranteeHeld)
}

func TestFinishTrip_RejectsConfirmedBookings(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{ID: uuid.New(), DriverID: driverID, Status: models.TripStatusStarted}

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().ListBookingsByTrip(gomock.Any(), trip.ID).Return([]models.Booking{
		{ID: uuid.New(), Status: models.BookingStatusConfirmed},
	}, nil)

	_, err := d.uc.FinishTrip(context.Background(), driverID, trip.ID)

	assert.ErrorIs(t, err, trips.ErrUnresolvedBookings)
}

func TestFinishTrip_CancelsPendingBookings(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{ID: uuid.New(), DriverID: driverID, Status: models.TripStatusStarted}
	pending := models.Booking{ID: uuid.New(), TripID: trip.ID, Status: models.BookingStatusPending}

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().ListBookingsByTrip(gomock.Any(), trip.ID).Return([]models.Booking{pending}, nil)
	d.tripRepo.EXPECT().
		UpdateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, models.BookingStatusCanceled, b.Status)
			return nil
		})
	d.eventsGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)
	d.tripRepo.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	d.eventsGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := d.uc.FinishTrip(context.Background(), driverID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusFinished, updated.Status)
}

func TestCancelTrip_RefundsConfirmedBookings(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	passengerID := uuid.New()
	trip := &models.Trip{
		ID:            uuid.New(),
		DriverID:      driverID,
		Status:        models.TripStatusPublished,
		GuaranteeHeld: 16000,
	}
	confirmed := models.Booking{
		ID:          uuid.New(),
		TripID:      trip.ID,
		PassengerID: passengerID,
		TotalPrice:  20000,
		Status:      models.BookingStatusConfirmed,
	}

	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	d.tripRepo.EXPECT().ListBookingsByTrip(gomock.Any(), trip.ID).Return([]models.Booking{confirmed}, nil)
	d.walletGW.EXPECT().
		HoldReturn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.HoldRequest) error {
			assert.Equal(t, passengerID, req.PayerUserID)
			assert.Equal(t, driverID, req.HolderUserID)
			assert.Equal(t, int64(20000), req.Amount)
			return nil
		})
	d.tripRepo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Return(nil)
	d.eventsGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)
	d.walletGW.EXPECT().
		Release(gomock.Any(), driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.WalletOpRequest) error {
			assert.Equal(t, int64(16000), req.Amount)
			return nil
		})
	d.tripRepo.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	d.eventsGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := d.uc.CancelTrip(context.Background(), driverID, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCanceled, updated.Status)
	assert.Equal(t, int64(0), updated.GuaranteeHeld)
}

func TestCancelTrip_InvalidState(t *testing.T) {
	d := newTripTestDeps(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	trip := &models.Trip{ID: uuid.New(), DriverID: driverID, Status: models.TripStatusStarted}
	d.tripRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := d.uc.CancelTrip(context.Background(), driverID, trip.ID)

	assert.ErrorIs(t, err, trips.ErrInvalidTripState)
}
