package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/shared"
)

//go:generate mockgen -source=preference.go -destination=../../../tests/mock/commands/mock_preference.go -package=commandsmock

var (
	ErrInvalidBasis = errs.New("invalid payment basis")
	ErrNotPayable   = errs.New("reservation is not payable")
)

type CheckoutSettings struct {
	TripName            string
	Currency            string
	PublicBaseURL       string
	StatementDescriptor string
}

type PreferenceResult struct {
	PreferenceID     string
	InitPoint        string
	SandboxInitPoint string
	Amount           reservation.Money
	Basis            reservation.Basis
}

type CheckoutCommands interface {
	CreatePreference(ctx context.Context, code, basis string) (*PreferenceResult, error)
}

type checkoutCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	settings CheckoutSettings
}

func NewCheckoutCommands(uow shared.UnitOfWork, gateway PaymentGateway, settings CheckoutSettings) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:      uow,
		gateway:  gateway,
		settings: settings,
	}
}

func (c *checkoutCommandsImpl) CreatePreference(ctx context.Context, code, basis string) (*PreferenceResult, error) {
	b, err := reservation.ParseBasis(basis)
	if err != nil {
		return nil, ErrInvalidBasis
	}
	parsed, err := reservation.NewCode(code)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	res, err := c.uow.CommandReads().ReservationByCode(ctx, parsed)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	amount, err := res.PayableAmount(b)
	if err != nil {
		return nil, errs.Mark(err, ErrNotPayable)
	}

	pref, err := c.gateway.CreatePreference(ctx, c.buildRequest(res, b, amount))
	if err != nil {
		return nil, err
	}

	slog.Info("checkout preference created",
		"reservation_code", res.Code().String(),
		"preference_id", pref.ID,
		"basis", b.String(),
		"amount", amount.String())

	return &PreferenceResult{
		PreferenceID:     pref.ID,
		InitPoint:        pref.InitPoint,
		SandboxInitPoint: pref.SandboxInitPoint,
		Amount:           amount,
		Basis:            b,
	}, nil
}

func (c *checkoutCommandsImpl) buildRequest(res *reservation.Reservation, basis reservation.Basis, amount reservation.Money) PreferenceRequest {
	code := res.Code().String()
	base := strings.TrimRight(c.settings.PublicBaseURL, "/")
	back := func(result string) string {
		return fmt.Sprintf("%s/reservations/%s?payment=%s", base, url.PathEscape(code), result)
	}

	title := fmt.Sprintf("%s - %d seat(s)", c.settings.TripName, res.Seats())
	description := fmt.Sprintf("Reservation %s, full balance", code)
	if basis == reservation.BasisDeposit {
		title = fmt.Sprintf("%s - deposit", c.settings.TripName)
		description = fmt.Sprintf("Reservation %s, 50%% deposit", code)
	}

	return PreferenceRequest{
		Title:               title,
		Description:         description,
		UnitPrice:           amount.Decimal(),
		Quantity:            1,
		Currency:            c.settings.Currency,
		ExternalReference:   code,
		SuccessURL:          back("success"),
		PendingURL:          back("pending"),
		FailureURL:          back("failure"),
		NotificationURL:     base + "/api/webhooks/mercadopago",
		StatementDescriptor: c.settings.StatementDescriptor,
	}
}
