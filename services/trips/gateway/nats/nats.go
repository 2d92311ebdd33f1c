package nats

import (
	"context"
	"encoding/json"

	"github.com/cupoapp/cupo/internal/pkg/constants"
	"github.com/cupoapp/cupo/internal/pkg/models"
	natspkg "github.com/cupoapp/cupo/internal/pkg/nats"
	"github.com/cupoapp/cupo/services/trips"
)

// TripEventsGW handles NATS publishing for trip and booking events
type TripEventsGW struct {
	natsClient *natspkg.Client
}

// NewTripEventsGW creates a new trip events gateway
func NewTripEventsGW(client *natspkg.Client) trips.TripEventsGW {
	return &TripEventsGW{
		natsClient: client,
	}
}

// PublishTripEvent publishes a trip lifecycle event to NATS
func (g *TripEventsGW) PublishTripEvent(ctx context.Context, event *models.TripEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	var subject string
	switch event.Status {
	case models.TripStatusPublished:
		subject = constants.SubjectTripPublished
	case models.TripStatusStarted:
		subject = constants.SubjectTripStarted
	case models.TripStatusFinished:
		subject = constants.SubjectTripFinished
	case models.TripStatusCanceled:
		subject = constants.SubjectTripCanceled
	default:
		return nil
	}

	return g.natsClient.Publish(subject, data)
}

// PublishBookingEvent publishes a booking lifecycle event to NATS
func (g *TripEventsGW) PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	var subject string
	switch event.Status {
	case models.BookingStatusConfirmed:
		subject = constants.SubjectBookingConfirmed
	case models.BookingStatusValidated:
		subject = constants.SubjectBookingValidated
	case models.BookingStatusCanceled:
		subject = constants.SubjectBookingCanceled
	default:
		return nil
	}

	return g.natsClient.Publish(subject, data)
}
