package trips

import "errors"

var (
	// ErrTripNotFound indicates no trip exists with the given ID
	ErrTripNotFound = errors.New("trip not found")

	// ErrBookingNotFound indicates no booking exists with the given ID
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotTripOwner indicates the caller does not own the trip
	ErrNotTripOwner = errors.New("trip belongs to another driver")

	// ErrNotBookingOwner indicates the caller does not own the booking
	ErrNotBookingOwner = errors.New("booking belongs to another user")

	// ErrPriceOutOfRange indicates the chosen price per seat falls outside
	// the allowed band around the suggested price
	ErrPriceOutOfRange = errors.New("price per seat is outside the allowed range")

	// ErrInvalidTripState indicates the trip is not in a state that allows
	// the requested transition
	ErrInvalidTripState = errors.New("trip state does not allow this operation")

	// ErrInvalidBookingState indicates the booking is not in a state that
	// allows the requested transition
	ErrInvalidBookingState = errors.New("booking state does not allow this operation")

	// ErrNoSeatsAvailable indicates the trip cannot seat the requested party
	ErrNoSeatsAvailable = errors.New("not enough seats available")

	// ErrOwnTripBooking indicates a driver tried to book their own trip
	ErrOwnTripBooking = errors.New("cannot book your own trip")

	// ErrUnresolvedBookings indicates the trip still has confirmed bookings
	// that were neither validated nor canceled
	ErrUnresolvedBookings = errors.New("trip has unresolved confirmed bookings")

	// ErrInvalidSeats indicates a trip or booking with a non-positive seat
	// count
	ErrInvalidSeats = errors.New("seats must be positive")
)
