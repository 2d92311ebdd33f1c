package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	httppkg "github.com/cupoapp/cupo/internal/pkg/http"
	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/models"
	nrpkg "github.com/cupoapp/cupo/internal/pkg/newrelic"
	"github.com/cupoapp/cupo/internal/utils"
	"github.com/cupoapp/cupo/services/trips"
)

// TripsHandler handles HTTP requests for trip and booking operations
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

// CreateTrip creates a trip draft for the authenticated driver
func (h *TripsHandler) CreateTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CreateTrip")

	driverID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), driverID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created", trip)
}

// ListTrips returns trips open for booking
func (h *TripsHandler) ListTrips(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ListTrips")

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.tripUC.ListPublishedTrips(c.Request().Context(), limit, offset)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", result)
}

// ListMyTrips returns the authenticated driver's trips
func (h *TripsHandler) ListMyTrips(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ListMyTrips")

	driverID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.tripUC.ListDriverTrips(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", result)
}

// GetTrip returns one trip
func (h *TripsHandler) GetTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.GetTrip")

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", trip)
}

// PublishTrip opens a trip draft for booking
func (h *TripsHandler) PublishTrip(c echo.Context) error {
	return h.tripTransition(c, "Trips.PublishTrip", h.tripUC.PublishTrip)
}

// StartTrip marks a trip as underway
func (h *TripsHandler) StartTrip(c echo.Context) error {
	return h.tripTransition(c, "Trips.StartTrip", h.tripUC.StartTrip)
}

// FinishTrip closes a trip and settles the guarantee
func (h *TripsHandler) FinishTrip(c echo.Context) error {
	return h.tripTransition(c, "Trips.FinishTrip", h.tripUC.FinishTrip)
}

// CancelTrip aborts a trip before departure
func (h *TripsHandler) CancelTrip(c echo.Context) error {
	return h.tripTransition(c, "Trips.CancelTrip", h.tripUC.CancelTrip)
}

func (h *TripsHandler) tripTransition(
	c echo.Context,
	txnName string,
	op func(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error),
) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	driverID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := op(c.Request().Context(), driverID, tripID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated", trip)
}

// CreateBooking reserves seats on a trip for the authenticated passenger
func (h *TripsHandler) CreateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CreateBooking")

	passengerID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.tripUC.CreateBooking(c.Request().Context(), passengerID, tripID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", booking)
}

// ListTripBookings returns the bookings on the driver's trip
func (h *TripsHandler) ListTripBookings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ListTripBookings")

	driverID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	bookings, err := h.tripUC.ListTripBookings(c.Request().Context(), driverID, tripID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", bookings)
}

// ConfirmBooking escrows the booking payment
func (h *TripsHandler) ConfirmBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ConfirmBooking")

	passengerID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.tripUC.ConfirmBooking(c.Request().Context(), passengerID, bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking confirmed", booking)
}

// ValidateBooking settles a booking after the ride took place
func (h *TripsHandler) ValidateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ValidateBooking")

	driverID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	result, err := h.tripUC.ValidateBooking(c.Request().Context(), driverID, bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking validated", result)
}

// CancelBooking aborts a booking and refunds escrowed funds
func (h *TripsHandler) CancelBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CancelBooking")

	userID, ok := currentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.tripUC.CancelBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking canceled", booking)
}

func (h *TripsHandler) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, trips.ErrTripNotFound), errors.Is(err, trips.ErrBookingNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, trips.ErrNotTripOwner), errors.Is(err, trips.ErrNotBookingOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, trips.ErrPriceOutOfRange),
		errors.Is(err, trips.ErrInvalidSeats),
		errors.Is(err, trips.ErrOwnTripBooking):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, trips.ErrInvalidTripState),
		errors.Is(err, trips.ErrInvalidBookingState),
		errors.Is(err, trips.ErrNoSeatsAvailable),
		errors.Is(err, trips.ErrUnresolvedBookings):
		return utils.ConflictResponse(c, err.Error())
	}

	var statusErr *httppkg.StatusError
	if errors.As(err, &statusErr) {
		// Surface downstream wallet/pricing rejections with their status
		if statusErr.StatusCode == http.StatusPaymentRequired {
			return utils.PaymentRequiredResponse(c, statusErr.Message)
		}
		if statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
			return utils.ErrorResponseHandler(c, statusErr.StatusCode, statusErr.Message)
		}
	}

	logger.Error("Trips request failed", logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "")
}
