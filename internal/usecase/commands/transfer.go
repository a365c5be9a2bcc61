package commands

import (
	"context"
	"log/slog"
	"strings"

	"trip-booking/internal/domain/payment"
	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/shared"
)

type RecordTransferInput struct {
	Code      string
	Amount    string
	Reference string
	Note      string
}

type RecordedPayment struct {
	Event shared.PaymentRecorded
}

func (c *paymentCommandsImpl) RecordTransfer(ctx context.Context, in RecordTransferInput) (*RecordedPayment, error) {
	code, err := reservation.NewCode(in.Code)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	amount, err := reservation.NewMoneyFromString(in.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidPayment
	}

	ref := payment.NewTransferReference()
	if strings.TrimSpace(in.Reference) != "" {
		ref, err = payment.NewExternalReference(in.Reference)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidPayment)
		}
	}

	result, err := c.recordLedgerEntry(ctx, ledgerEntry{
		code:            code,
		amount:          amount,
		method:          payment.MethodTransfer,
		reference:       ref,
		note:            in.Note,
		rejectCancelled: true,
	})
	if err != nil {
		if errs.Is(err, ErrReservationCancelled) || errs.Is(err, ErrInvalidPayment) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	switch {
	case result.notFound:
		return nil, ErrReservationNotFound
	case result.duplicate:
		return nil, ErrDuplicatePayment
	}

	slog.Info("transfer recorded",
		"reservation_code", code.String(),
		"reference", ref.String(),
		"amount", amount.String(),
		"status", result.reservation.Status().String())
	return &RecordedPayment{Event: result.event}, nil
}
