package commands

import (
	"context"
	"encoding/json"

	"trip-booking/internal/domain/payment"
	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/shared"
)

var (
	ErrLedgerUpdate            = errs.New("ledger update failed")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationCancelled    = errs.New("reservation is cancelled")
	ErrDuplicatePayment        = errs.New("payment already recorded")
	ErrInvalidPayment          = errs.New("invalid payment")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ledgerEntry struct {
	code            reservation.Code
	amount          reservation.Money
	method          payment.Method
	reference       payment.ExternalReference
	note            string
	rejectCancelled bool
}

type ledgerResult struct {
	notFound    bool
	duplicate   bool
	reservation *reservation.Reservation
	payment     *payment.Payment
	event       shared.PaymentRecorded
}

// recordLedgerEntry inserts one payment and rebuilds the reservation balance
// from the ledger sum, all under the reservation row lock. The outbox job is
// written in the same transaction.
func (c *paymentCommandsImpl) recordLedgerEntry(ctx context.Context, entry ledgerEntry) (*ledgerResult, error) {
	var result *ledgerResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = &ledgerResult{}

		res, err := tx.Reservations().LockByCode(ctx, tx.DB(), entry.code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				result.notFound = true
				return nil
			}
			return err
		}
		if entry.rejectCancelled && res.IsCancelled() {
			return ErrReservationCancelled
		}

		now := c.clock.Now()
		p, err := payment.NewPayment(res.ID(), entry.amount, entry.method, entry.reference, entry.note, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidPayment)
		}

		inserted, err := tx.Payments().InsertIfAbsent(ctx, tx.DB(), p)
		if err != nil {
			return err
		}
		if !inserted {
			result.duplicate = true
			return nil
		}

		paid, err := tx.Payments().SumByReservation(ctx, tx.DB(), res.ID())
		if err != nil {
			return err
		}
		changed, err := res.ApplyLedgerTotal(paid, now)
		if err != nil {
			return err
		}
		if changed {
			if err := tx.Reservations().UpdateBalance(ctx, tx.DB(), res); err != nil {
				return err
			}
		}

		event := newPaymentRecorded(res, p)
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.JobKindPaymentRecorded, c.outboxTopic, payload, now); err != nil {
			return err
		}

		result.reservation = res
		result.payment = p
		result.event = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.payment != nil {
		c.events.Publish(result.event)
	}
	return result, nil
}

func newPaymentRecorded(res *reservation.Reservation, p *payment.Payment) shared.PaymentRecorded {
	return shared.PaymentRecorded{
		PaymentID:       p.ID(),
		ReservationID:   res.ID(),
		ReservationCode: res.Code().String(),
		HolderName:      res.Holder().Name(),
		Method:          p.Method().String(),
		Reference:       p.Reference().String(),
		Amount:          p.Amount().String(),
		AmountPaid:      res.AmountPaid().String(),
		TotalAmount:     res.TotalAmount().String(),
		Status:          res.Status().String(),
		RecordedAt:      p.CreatedAt(),
	}
}
