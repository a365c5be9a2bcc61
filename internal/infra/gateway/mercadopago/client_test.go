//go:build unit

package mercadopago

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-booking/internal/pkg/config"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/commands"
)

type fakePayments struct {
	gotID int
	resp  *payment.Response
	err   error
}

func (f *fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	f.gotID = id
	return f.resp, f.err
}

type fakePreferences struct {
	got  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewClient_NotConfigured(t *testing.T) {
	c, err := NewClient(config.MercadoPagoConfig{})
	require.NoError(t, err)

	_, err = c.GetPayment(context.Background(), "123")
	assert.True(t, errs.Is(err, commands.ErrGatewayNotConfigured))

	_, err = c.CreatePreference(context.Background(), commands.PreferenceRequest{})
	assert.True(t, errs.Is(err, commands.ErrGatewayNotConfigured))
}

func TestGetPayment(t *testing.T) {
	t.Run("maps the sdk response", func(t *testing.T) {
		resp := &payment.Response{
			ID:                987654,
			Status:            "approved",
			TransactionAmount: 600.1,
			ExternalReference: "TRIP-ABC234",
		}
		resp.TransactionDetails.NetReceivedAmount = 571.35
		fake := &fakePayments{resp: resp}
		c := &Client{payments: fake, timeout: time.Second}

		got, err := c.GetPayment(context.Background(), "987654")
		require.NoError(t, err)
		assert.Equal(t, 987654, fake.gotID)
		assert.Equal(t, "987654", got.ID)
		assert.Equal(t, "approved", got.Status)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("600.10")))
		assert.True(t, got.NetReceived.Equal(decimal.RequireFromString("571.35")))
		assert.Equal(t, "TRIP-ABC234", got.ExternalReference)
	})

	t.Run("non numeric id is a gateway failure", func(t *testing.T) {
		c := &Client{payments: &fakePayments{}}
		_, err := c.GetPayment(context.Background(), "abc")
		assert.True(t, errs.Is(err, commands.ErrGatewayFailure))
	})

	t.Run("sdk error is a gateway failure", func(t *testing.T) {
		c := &Client{payments: &fakePayments{err: errors.New("401 unauthorized")}}
		_, err := c.GetPayment(context.Background(), "1")
		assert.True(t, errs.Is(err, commands.ErrGatewayFailure))
	})
}

func TestCreatePreference(t *testing.T) {
	fake := &fakePreferences{resp: &preference.Response{ID: "pref-1", InitPoint: "https://mp/init", SandboxInitPoint: "https://sandbox/init"}}
	c := &Client{preferences: fake}

	got, err := c.CreatePreference(context.Background(), commands.PreferenceRequest{
		Title:               "Group trip - deposit",
		Description:         "Reservation TRIP-ABC234, 50% deposit",
		UnitPrice:           decimal.RequireFromString("500.00"),
		Quantity:            1,
		Currency:            "ARS",
		ExternalReference:   "TRIP-ABC234",
		SuccessURL:          "https://trip.example.com/reservations/TRIP-ABC234?payment=success",
		PendingURL:          "https://trip.example.com/reservations/TRIP-ABC234?payment=pending",
		FailureURL:          "https://trip.example.com/reservations/TRIP-ABC234?payment=failure",
		NotificationURL:     "https://trip.example.com/api/webhooks/mercadopago",
		StatementDescriptor: "TRIP",
	})
	require.NoError(t, err)
	assert.Equal(t, "pref-1", got.ID)
	assert.Equal(t, "https://sandbox/init", got.SandboxInitPoint)

	require.Len(t, fake.got.Items, 1)
	assert.Equal(t, 500.0, fake.got.Items[0].UnitPrice)
	assert.Equal(t, 1, fake.got.Items[0].Quantity)
	assert.Equal(t, "TRIP-ABC234", fake.got.ExternalReference)
	assert.Equal(t, "approved", fake.got.AutoReturn)
	require.NotNil(t, fake.got.BackURLs)
	assert.Contains(t, fake.got.BackURLs.Failure, "payment=failure")
	assert.Equal(t, "https://trip.example.com/api/webhooks/mercadopago", fake.got.NotificationURL)
}

func TestCreatePreference_Failure(t *testing.T) {
	c := &Client{preferences: &fakePreferences{err: errors.New("bad request")}}
	_, err := c.CreatePreference(context.Background(), commands.PreferenceRequest{ExternalReference: "TRIP-ABC234"})
	assert.True(t, errs.Is(err, commands.ErrGatewayFailure))
}
