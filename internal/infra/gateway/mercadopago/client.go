package mercadopago

import (
	"context"
	"strconv"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"

	"trip-booking/internal/pkg/config"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/commands"
)

const autoReturnApproved = "approved"

type paymentFetcher interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// Client adapts the MercadoPago SDK to commands.PaymentGateway. Without an
// access token every call fails with commands.ErrGatewayNotConfigured.
type Client struct {
	payments    paymentFetcher
	preferences preferenceCreator
	timeout     time.Duration
}

var _ commands.PaymentGateway = (*Client)(nil)

func NewClient(cfg config.MercadoPagoConfig) (*Client, error) {
	if !cfg.Configured() {
		return &Client{timeout: cfg.Timeout}, nil
	}
	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		return nil, errs.Wrap(err, "failed to configure mercadopago sdk")
	}
	return &Client{
		payments:    payment.NewClient(sdkCfg),
		preferences: preference.NewClient(sdkCfg),
		timeout:     cfg.Timeout,
	}, nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*commands.GatewayPayment, error) {
	if c.payments == nil {
		return nil, commands.ErrGatewayNotConfigured
	}
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "payment id %q is not numeric", paymentID), commands.ErrGatewayFailure)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.payments.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "get payment %d", id), commands.ErrGatewayFailure)
	}

	return &commands.GatewayPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		Amount:            toDecimal(resp.TransactionAmount),
		NetReceived:       toDecimal(resp.TransactionDetails.NetReceivedAmount),
		ExternalReference: resp.ExternalReference,
	}, nil
}

func (c *Client) CreatePreference(ctx context.Context, req commands.PreferenceRequest) (*commands.Preference, error) {
	if c.preferences == nil {
		return nil, commands.ErrGatewayNotConfigured
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	price, _ := req.UnitPrice.Float64()
	resp, err := c.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          req.ExternalReference,
				Title:       req.Title,
				Description: req.Description,
				Quantity:    req.Quantity,
				UnitPrice:   price,
				CurrencyID:  req.Currency,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Pending: req.PendingURL,
			Failure: req.FailureURL,
		},
		AutoReturn:          autoReturnApproved,
		ExternalReference:   req.ExternalReference,
		NotificationURL:     req.NotificationURL,
		StatementDescriptor: req.StatementDescriptor,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "create preference for %s", req.ExternalReference), commands.ErrGatewayFailure)
	}

	return &commands.Preference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// The SDK reports amounts as float64; cents are recovered by rounding.
func toDecimal(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
