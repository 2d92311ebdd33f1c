package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/pricing"
	"github.com/cupoapp/cupo/services/pricing/mocks"
)

func testAssumptions() *models.Assumptions {
	return &models.Assumptions{
		ID:                   1,
		UrbanPricePerKm:      1000,
		InterurbanPricePerKm: 800,
		UrbanThresholdKm:     30,
		PriceLimitPercentage: 20,
		FeePercentage:        10,
		FixedRate:            2000,
	}
}

func TestCalculateFare_UrbanRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(testAssumptions(), nil)

	cfg := &models.Config{Pricing: models.PricingConfig{Currency: "COP"}}
	uc := NewPricingUC(cfg, mockRepo)

	quote, err := uc.CalculateFare(context.Background(), models.FareRequest{Distance: "20 km"})

	require.NoError(t, err)
	assert.True(t, quote.IsUrban)
	assert.Equal(t, float64(1000), quote.PricePerKm)
	assert.Equal(t, int64(20000), quote.SuggestedPricePerSeat)
	assert.Equal(t, "$ 20.000", quote.SuggestedDisplay)
	assert.Equal(t, int64(16000), quote.MinPricePerSeat)
	assert.Equal(t, int64(24000), quote.MaxPricePerSeat)
	assert.Equal(t, "COP", quote.Currency)
}

func TestCalculateFare_InterurbanRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(testAssumptions(), nil)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	quote, err := uc.CalculateFare(context.Background(), models.FareRequest{Distance: "50 km"})

	require.NoError(t, err)
	assert.False(t, quote.IsUrban)
	assert.Equal(t, float64(800), quote.PricePerKm)
	assert.Equal(t, int64(40000), quote.SuggestedPricePerSeat)
}

func TestCalculateFare_ThresholdBoundaryIsInterurban(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(testAssumptions(), nil)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	quote, err := uc.CalculateFare(context.Background(), models.FareRequest{Distance: "30 km"})

	require.NoError(t, err)
	assert.False(t, quote.IsUrban)
	assert.Equal(t, float64(800), quote.PricePerKm)
	assert.Equal(t, int64(24000), quote.SuggestedPricePerSeat)
}

func TestCalculateFare_JustBelowThresholdIsUrban(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(testAssumptions(), nil)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	quote, err := uc.CalculateFare(context.Background(), models.FareRequest{Distance: "29.9 km"})

	require.NoError(t, err)
	assert.True(t, quote.IsUrban)
	assert.Equal(t, float64(1000), quote.PricePerKm)
	assert.Equal(t, int64(29900), quote.SuggestedPricePerSeat)
}

func TestCalculateFare_InvalidDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	uc := NewPricingUC(&models.Config{}, mockRepo)

	_, err := uc.CalculateFare(context.Background(), models.FareRequest{Distance: "no distance here"})

	assert.ErrorIs(t, err, pricing.ErrInvalidDistance)
}

func TestCalculateFare_AssumptionsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(nil, pricing.ErrAssumptionsNotConfigured)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	_, err := uc.CalculateFare(context.Background(), models.FareRequest{Distance: "20 km"})

	assert.ErrorIs(t, err, pricing.ErrAssumptionsNotConfigured)
}

func TestQuoteGuarantee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(testAssumptions(), nil)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	quote, err := uc.QuoteGuarantee(context.Background(), models.GuaranteeRequest{
		TripValue: 100000,
		Seats:     3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10000), quote.PercentageFee)
	assert.Equal(t, int64(6000), quote.FixedFee)
	assert.Equal(t, int64(16000), quote.TotalGuarantee)
}

func TestQuoteGuarantee_PercentageRoundsUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	assumptions := testAssumptions()
	assumptions.FeePercentage = 7.5
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(assumptions, nil)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	quote, err := uc.QuoteGuarantee(context.Background(), models.GuaranteeRequest{
		TripValue: 33333,
		Seats:     1,
	})

	require.NoError(t, err)
	// 33333 * 7.5% = 2499.975, rounds up
	assert.Equal(t, int64(2500), quote.PercentageFee)
	assert.Equal(t, int64(4500), quote.TotalGuarantee)
}

func TestQuoteGuarantee_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	uc := NewPricingUC(&models.Config{}, mockRepo)

	_, err := uc.QuoteGuarantee(context.Background(), models.GuaranteeRequest{TripValue: 0, Seats: 3})
	assert.ErrorIs(t, err, pricing.ErrInvalidQuoteRequest)

	_, err = uc.QuoteGuarantee(context.Background(), models.GuaranteeRequest{TripValue: 100000, Seats: 0})
	assert.ErrorIs(t, err, pricing.ErrInvalidQuoteRequest)
}

func TestQuoteCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(testAssumptions(), nil)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	quote, err := uc.QuoteCommission(context.Background(), models.CommissionRequest{
		BookingPrice: 20000,
		Seats:        1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2000), quote.PercentageCommission)
	assert.Equal(t, int64(2000), quote.FixedCommission)
	assert.Equal(t, int64(4000), quote.TotalCommission)
	assert.Equal(t, int64(16000), quote.Payout)
}

func TestQuoteCommission_DefaultsToOneSeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	mockRepo.EXPECT().GetAssumptions(gomock.Any()).Return(testAssumptions(), nil)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	quote, err := uc.QuoteCommission(context.Background(), models.CommissionRequest{BookingPrice: 20000})

	require.NoError(t, err)
	assert.Equal(t, int64(2000), quote.FixedCommission)
}

func TestUpdateAssumptions_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	next := testAssumptions()
	next.FeePercentage = 12

	mockRepo.EXPECT().UpdateAssumptions(gomock.Any(), next).Return(next, nil)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	updated, err := uc.UpdateAssumptions(context.Background(), next)

	require.NoError(t, err)
	assert.Equal(t, float64(12), updated.FeePercentage)
}

func TestUpdateAssumptions_RejectsOutOfRangeFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	uc := NewPricingUC(&models.Config{}, mockRepo)

	bad := testAssumptions()
	bad.FeePercentage = 150

	_, err := uc.UpdateAssumptions(context.Background(), bad)

	assert.Error(t, err)
}

func TestUpdateAssumptions_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssumptionsRepo(ctrl)
	expectedErr := errors.New("database error")
	mockRepo.EXPECT().UpdateAssumptions(gomock.Any(), gomock.Any()).Return(nil, expectedErr)

	uc := NewPricingUC(&models.Config{}, mockRepo)

	_, err := uc.UpdateAssumptions(context.Background(), testAssumptions())

	assert.Equal(t, expectedErr, err)
}
