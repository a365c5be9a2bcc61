package commands

import (
	"context"
	"log/slog"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/shared"
)

type RecomputeResult struct {
	Code       string
	AmountPaid string
	Status     string
	Changed    bool
}

// RecomputeBalance rebuilds amount paid and status from the payment ledger.
func (c *paymentCommandsImpl) RecomputeBalance(ctx context.Context, code string) (*RecomputeResult, error) {
	parsed, err := reservation.NewCode(code)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	var result *RecomputeResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockByCode(ctx, tx.DB(), parsed)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		paid, err := tx.Payments().SumByReservation(ctx, tx.DB(), res.ID())
		if err != nil {
			return err
		}
		changed, err := res.ApplyLedgerTotal(paid, c.clock.Now())
		if err != nil {
			return err
		}
		if changed {
			if err := tx.Reservations().UpdateBalance(ctx, tx.DB(), res); err != nil {
				return err
			}
		}

		result = &RecomputeResult{
			Code:       res.Code().String(),
			AmountPaid: res.AmountPaid().String(),
			Status:     res.Status().String(),
			Changed:    changed,
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if result.Changed {
		slog.Info("balance recomputed from ledger",
			"reservation_code", result.Code,
			"amount_paid", result.AmountPaid,
			"status", result.Status)
	}
	return result, nil
}

// RecomputeAll sweeps every reservation; one failure does not stop the sweep.
func (c *paymentCommandsImpl) RecomputeAll(ctx context.Context) ([]RecomputeResult, error) {
	codes, err := c.uow.CommandReads().ReservationCodes(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	results := make([]RecomputeResult, 0, len(codes))
	var failed int
	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r, err := c.RecomputeBalance(ctx, code)
		if err != nil {
			failed++
			slog.Error("recompute failed", "reservation_code", code, "error", err.Error())
			continue
		}
		results = append(results, *r)
	}
	if failed > 0 {
		return results, errs.Newf("recompute failed for %d of %d reservations", failed, len(codes))
	}
	return results, nil
}
