package commands

import (
	"context"
	"log/slog"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/mock_reservation.go -package=commandsmock

const maxCodeAttempts = 5

var (
	ErrInvalidReservation = errs.New("invalid reservation")
	ErrCodeSpaceExhausted = errs.New("could not allocate a unique reservation code")
	ErrAlreadyCancelled   = errs.New("reservation already cancelled")
)

type CreateReservationInput struct {
	HolderName  string
	HolderEmail string
	HolderPhone string
	Seats       int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, code string) (*reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
	}
}

// CreateReservation draws a fresh code on every collision with an existing one.
func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error) {
	holder, err := reservation.NewHolder(in.HolderName, in.HolderEmail, in.HolderPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		res, err := r.factory.CreateReservation(holder, in.Seats)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidReservation)
		}

		err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().Create(ctx, tx.DB(), res)
		})
		if err == nil {
			slog.Info("reservation created",
				"reservation_code", res.Code().String(),
				"seats", res.Seats(),
				"total_amount", res.TotalAmount().String())
			return res, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slog.Warn("reservation code collision, retrying", "attempt", attempt, "reservation_code", res.Code().String())
	}
	return nil, ErrCodeSpaceExhausted
}

func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, code string) (*reservation.Reservation, error) {
	parsed, err := reservation.NewCode(code)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	var cancelled *reservation.Reservation
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockByCode(ctx, tx.DB(), parsed)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if err := res.Cancel(r.clock.Now()); err != nil {
			return errs.Mark(err, ErrAlreadyCancelled)
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return err
		}
		cancelled = res
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrReservationNotFound), errs.Is(err, ErrAlreadyCancelled):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	slog.Info("reservation cancelled", "reservation_code", cancelled.Code().String(), "amount_paid", cancelled.AmountPaid().String())
	return cancelled, nil
}
