package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cupoapp/cupo/internal/pkg/middleware"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/trips"
	httpHandler "github.com/cupoapp/cupo/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtMW := middleware.JWTAuthMiddleware(h.cfg.JWT)

	tripGroup := e.Group("/trips", jwtMW)
	tripGroup.POST("", h.tripsHTTP.CreateTrip)
	tripGroup.GET("", h.tripsHTTP.ListTrips)
	tripGroup.GET("/mine", h.tripsHTTP.ListMyTrips)
	tripGroup.GET("/:tripID", h.tripsHTTP.GetTrip)
	tripGroup.POST("/:tripID/publish", h.tripsHTTP.PublishTrip)
	tripGroup.POST("/:tripID/start", h.tripsHTTP.StartTrip)
	tripGroup.POST("/:tripID/finish", h.tripsHTTP.FinishTrip)
	tripGroup.POST("/:tripID/cancel", h.tripsHTTP.CancelTrip)
	tripGroup.POST("/:tripID/bookings", h.tripsHTTP.CreateBooking)
	tripGroup.GET("/:tripID/bookings", h.tripsHTTP.ListTripBookings)

	bookingGroup := e.Group("/bookings", jwtMW)
	bookingGroup.POST("/:bookingID/confirm", h.tripsHTTP.ConfirmBooking)
	bookingGroup.POST("/:bookingID/validate", h.tripsHTTP.ValidateBooking)
	bookingGroup.POST("/:bookingID/cancel", h.tripsHTTP.CancelBooking)
}
