package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusCreated   TripStatus = "created"
	TripStatusPublished TripStatus = "published"
	TripStatusStarted   TripStatus = "started"
	TripStatusFinished  TripStatus = "finished"
	TripStatusCanceled  TripStatus = "canceled"
)

// Trip represents a published ride offer
type Trip struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	DriverID       uuid.UUID  `json:"driver_id" db:"driver_id"`
	Origin         string     `json:"origin" db:"origin"`
	Destination    string     `json:"destination" db:"destination"`
	DistanceKm     float64    `json:"distance_km" db:"distance_km"`
	Seats          int        `json:"seats" db:"seats"`
	SeatsAvailable int        `json:"seats_available" db:"seats_available"`
	PricePerSeat   int64      `json:"price_per_seat" db:"price_per_seat"`
	GuaranteeTotal int64      `json:"guarantee_total" db:"guarantee_total"`
	GuaranteeHeld  int64      `json:"guarantee_held" db:"guarantee_held"`
	Status         TripStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	PublishedAt    *time.Time `json:"published_at,omitempty" db:"published_at"`
	StartedAt      *time.Time `json:"started_at,omitempty" db:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty" db:"finished_at"`
	CanceledAt     *time.Time `json:"canceled_at,omitempty" db:"canceled_at"`
}

// TripValue returns the total value of the trip at full occupancy
func (t *Trip) TripValue() int64 {
	return int64(t.Seats) * t.PricePerSeat
}

// CreateTripRequest is the request body for creating a trip draft
type CreateTripRequest struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Distance     string  `json:"distance"` // route distance string, e.g. "20 km"
	Seats        int     `json:"seats"`
	PricePerSeat int64   `json:"price_per_seat"` // 0 means use the suggested price
}

// TripEvent is published to NATS on trip lifecycle transitions
type TripEvent struct {
	TripID    uuid.UUID  `json:"trip_id"`
	DriverID  uuid.UUID  `json:"driver_id"`
	Status    TripStatus `json:"status"`
	Guarantee int64      `json:"guarantee,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
