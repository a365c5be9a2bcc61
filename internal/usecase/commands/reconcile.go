package commands

import (
	"context"
	"log/slog"

	"trip-booking/internal/domain/notification"
	"trip-booking/internal/domain/payment"
	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reconcile.go -destination=../../../tests/mock/commands/mock_reconcile.go -package=commandsmock

type Outcome string

const (
	OutcomeIgnored             Outcome = "ignored"
	OutcomeGatewayUnavailable  Outcome = "gateway_unavailable"
	OutcomeNotApproved         Outcome = "not_approved"
	OutcomeInFlight            Outcome = "in_flight"
	OutcomeDuplicate           Outcome = "duplicate"
	OutcomeReservationNotFound Outcome = "reservation_not_found"
	OutcomeRecorded            Outcome = "recorded"
)

func (o Outcome) String() string {
	return string(o)
}

type PaymentCommands interface {
	// ReconcilePayment returns an error only when the ledger transaction
	// failed; every other outcome is acknowledged to the gateway.
	ReconcilePayment(ctx context.Context, n notification.Notification) (Outcome, error)
	RecordTransfer(ctx context.Context, in RecordTransferInput) (*RecordedPayment, error)
	RecomputeBalance(ctx context.Context, code string) (*RecomputeResult, error)
	RecomputeAll(ctx context.Context) ([]RecomputeResult, error)
}

type paymentCommandsImpl struct {
	uow         shared.UnitOfWork
	gateway     PaymentGateway
	lock        DeliveryLock
	events      shared.EventPublisher
	clock       clock.Clock
	outboxTopic string
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	lock DeliveryLock,
	events shared.EventPublisher,
	clk clock.Clock,
	outboxTopic string,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:         uow,
		gateway:     gateway,
		lock:        lock,
		events:      events,
		clock:       clk,
		outboxTopic: outboxTopic,
	}
}

func (c *paymentCommandsImpl) ReconcilePayment(ctx context.Context, n notification.Notification) (Outcome, error) {
	if !n.Relevant() {
		return OutcomeIgnored, nil
	}
	log := slog.With("payment_id", n.PaymentID)

	gp, err := c.gateway.GetPayment(ctx, n.PaymentID)
	if err != nil {
		log.Warn("payment lookup failed, acknowledging", "error", err.Error())
		return OutcomeGatewayUnavailable, nil
	}
	if gp.Status != GatewayStatusApproved {
		log.Info("payment not approved", "status", gp.Status, "outcome", OutcomeNotApproved)
		return OutcomeNotApproved, nil
	}

	paymentID := gp.ID
	if paymentID == "" {
		paymentID = n.PaymentID
	}
	ref, err := payment.NewExternalReference(paymentID)
	if err != nil {
		log.Warn("unusable payment id", "error", err.Error())
		return OutcomeIgnored, nil
	}
	log = log.With("reservation_code", gp.ExternalReference)

	release, acquired, err := c.acquire(ctx, ref.String())
	if err != nil {
		log.Warn("delivery lock unavailable, continuing without it", "error", err.Error())
	} else if !acquired {
		log.Info("delivery already in progress", "outcome", OutcomeInFlight)
		return OutcomeInFlight, nil
	}
	defer release()

	if _, err := c.uow.CommandReads().PaymentByReference(ctx, payment.MethodMercadoPago, ref); err == nil {
		log.Info("payment already recorded", "outcome", OutcomeDuplicate)
		return OutcomeDuplicate, nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		log.Warn("dedup lookup failed, relying on ledger constraint", "error", err.Error())
	}

	code, err := reservation.NewCode(gp.ExternalReference)
	if err != nil {
		log.Warn("payment references no reservation", "outcome", OutcomeReservationNotFound)
		return OutcomeReservationNotFound, nil
	}
	amount, err := reservation.NewMoney(gp.Amount)
	if err != nil || !amount.IsPositive() {
		log.Warn("approved payment without a usable amount", "amount", gp.Amount.String(), "outcome", OutcomeIgnored)
		return OutcomeIgnored, nil
	}
	net, err := reservation.NewMoney(gp.NetReceived)
	if err != nil {
		net = reservation.Zero()
	}

	result, err := c.recordLedgerEntry(ctx, ledgerEntry{
		code:      code,
		amount:    amount,
		method:    payment.MethodMercadoPago,
		reference: ref,
		note:      payment.GatewayNote(ref.String(), net),
	})
	if err != nil {
		log.Error("ledger update failed", "error", err.Error())
		return "", errs.Mark(err, ErrLedgerUpdate)
	}

	switch {
	case result.notFound:
		log.Warn("reservation not found for approved payment", "outcome", OutcomeReservationNotFound)
		return OutcomeReservationNotFound, nil
	case result.duplicate:
		log.Info("payment recorded concurrently", "outcome", OutcomeDuplicate)
		return OutcomeDuplicate, nil
	}

	if result.reservation.IsCancelled() {
		log.Warn("payment recorded on cancelled reservation", "amount", amount.String())
	}
	log.Info("payment recorded",
		"outcome", OutcomeRecorded,
		"amount", amount.String(),
		"amount_paid", result.reservation.AmountPaid().String(),
		"status", result.reservation.Status().String())
	return OutcomeRecorded, nil
}

func (c *paymentCommandsImpl) acquire(ctx context.Context, paymentID string) (func(), bool, error) {
	if c.lock == nil {
		return func() {}, true, nil
	}
	release, acquired, err := c.lock.Acquire(ctx, "payment:"+paymentID)
	if err != nil {
		return func() {}, false, err
	}
	if release == nil {
		release = func() {}
	}
	return release, acquired, nil
}
