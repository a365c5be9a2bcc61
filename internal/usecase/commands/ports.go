package commands

import (
	"context"

	"github.com/shopspring/decimal"

	"trip-booking/internal/pkg/errs"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commandsmock

var (
	ErrGatewayNotConfigured = errs.New("payment gateway not configured")
	ErrGatewayFailure       = errs.New("payment gateway request failed")
)

const GatewayStatusApproved = "approved"

// GatewayPayment is the authoritative view of a payment as reported by the processor.
type GatewayPayment struct {
	ID                string
	Status            string
	Amount            decimal.Decimal
	NetReceived       decimal.Decimal
	ExternalReference string
}

type PreferenceRequest struct {
	Title               string
	Description         string
	UnitPrice           decimal.Decimal
	Quantity            int
	Currency            string
	ExternalReference   string
	SuccessURL          string
	PendingURL          string
	FailureURL          string
	NotificationURL     string
	StatementDescriptor string
}

type Preference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

type PaymentGateway interface {
	GetPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
	CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error)
}

// DeliveryLock serializes concurrent deliveries for the same payment id.
// Acquire reports false when another holder owns the key.
type DeliveryLock interface {
	Acquire(ctx context.Context, key string) (release func(), acquired bool, err error)
}
