//go:build unit || e2e

package gatewaytest

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"trip-booking/internal/usecase/commands"
)

// FakeGateway serves payments registered by the test and records preferences.
type FakeGateway struct {
	mu          sync.Mutex
	payments    map[string]commands.GatewayPayment
	preferences []commands.PreferenceRequest
}

var _ commands.PaymentGateway = (*FakeGateway)(nil)

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{payments: map[string]commands.GatewayPayment{}}
}

func (f *FakeGateway) Approve(id, reservationCode string, amount int64) {
	f.Put(commands.GatewayPayment{
		ID:                id,
		Status:            commands.GatewayStatusApproved,
		Amount:            decimal.NewFromInt(amount),
		NetReceived:       decimal.NewFromInt(amount),
		ExternalReference: reservationCode,
	})
}

func (f *FakeGateway) Put(p commands.GatewayPayment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[p.ID] = p
}

func (f *FakeGateway) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments = map[string]commands.GatewayPayment{}
	f.preferences = nil
}

func (f *FakeGateway) Preferences() []commands.PreferenceRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]commands.PreferenceRequest(nil), f.preferences...)
}

func (f *FakeGateway) GetPayment(_ context.Context, paymentID string) (*commands.GatewayPayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", paymentID, commands.ErrGatewayFailure)
	}
	return &p, nil
}

func (f *FakeGateway) CreatePreference(_ context.Context, req commands.PreferenceRequest) (*commands.Preference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preferences = append(f.preferences, req)
	id := fmt.Sprintf("pref-%d", len(f.preferences))
	return &commands.Preference{
		ID:        id,
		InitPoint: "https://checkout.example.com/" + id,
	}, nil
}
