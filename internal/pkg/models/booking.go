package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusValidated BookingStatus = "validated"
	BookingStatusCanceled  BookingStatus = "canceled"
)

// Booking represents seats reserved by a passenger on a trip
type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	TripID      uuid.UUID     `json:"trip_id" db:"trip_id"`
	PassengerID uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	SeatsBooked int           `json:"seats_booked" db:"seats_booked"`
	TotalPrice  int64         `json:"total_price" db:"total_price"`
	Status      BookingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty" db:"confirmed_at"`
	ValidatedAt *time.Time    `json:"validated_at,omitempty" db:"validated_at"`
	CanceledAt  *time.Time    `json:"canceled_at,omitempty" db:"canceled_at"`
}

// CreateBookingRequest is the request body for reserving seats on a trip
type CreateBookingRequest struct {
	Seats int `json:"seats"`
}

// BookingEvent is published to NATS on booking lifecycle transitions
type BookingEvent struct {
	BookingID   uuid.UUID     `json:"booking_id"`
	TripID      uuid.UUID     `json:"trip_id"`
	PassengerID uuid.UUID     `json:"passenger_id"`
	Status      BookingStatus `json:"status"`
	TotalPrice  int64         `json:"total_price"`
	Commission  int64         `json:"commission,omitempty"`
	Payout      int64         `json:"payout,omitempty"`
	Timestamp   time.Time     `json:"timestamp"`
}

// ValidateBookingResult is returned when a booking is validated
type ValidateBookingResult struct {
	Booking    *Booking        `json:"booking"`
	Commission CommissionQuote `json:"commission"`
}
