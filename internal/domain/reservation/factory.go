package reservation

import (
	"errors"

	"trip-booking/internal/pkg/clock"
)

var ErrTooManySeats = errors.New("too many seats requested")

// Factory prices new bookings with the configured seat price.
type Factory struct {
	services  *Services
	seatPrice Money
	maxSeats  int
}

func NewFactory(clk clock.Clock, codes CodeGenerator, seatPrice Money, maxSeats int) *Factory {
	return &Factory{
		services:  &Services{Clock: clk, Codes: codes},
		seatPrice: seatPrice,
		maxSeats:  maxSeats,
	}
}

func (f *Factory) CreateReservation(holder Holder, seats int) (*Reservation, error) {
	if f.maxSeats > 0 && seats > f.maxSeats {
		return nil, ErrTooManySeats
	}
	return NewReservation(f.services, holder, seats, f.seatPrice)
}

func (f *Factory) SeatPrice() Money {
	return f.seatPrice
}
