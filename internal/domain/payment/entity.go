package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"trip-booking/internal/domain/reservation"
)

const (
	MaxReferenceLength = 120
	MaxNoteLength      = 500
	transferRefPrefix  = "transfer-"
)

var (
	ErrInvalidAmount    = errors.New("payment amount must be positive")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrInvalidReference = errors.New("invalid external reference")
	ErrNoteTooLong      = errors.New("payment note too long")
)

// ExternalReference is the deduplication key of a payment: the gateway's
// payment id, or a bank operation number for manual transfers.
type ExternalReference struct {
	value string
}

func NewExternalReference(s string) (ExternalReference, error) {
	v := strings.TrimSpace(s)
	if v == "" || utf8.RuneCountInString(v) > MaxReferenceLength {
		return ExternalReference{}, ErrInvalidReference
	}
	return ExternalReference{value: v}, nil
}

func NewTransferReference() ExternalReference {
	return ExternalReference{value: transferRefPrefix + uuid.NewString()}
}

func (r ExternalReference) String() string {
	return r.value
}

type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        reservation.Money
	method        Method
	reference     ExternalReference
	note          string
	createdAt     time.Time
}

func NewPayment(
	reservationID uuid.UUID,
	amount reservation.Money,
	method Method,
	reference ExternalReference,
	note string,
	now time.Time,
) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if reference.value == "" {
		return nil, ErrInvalidReference
	}
	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        amount,
		method:        method,
		reference:     reference,
		note:          note,
		createdAt:     now,
	}, nil
}

func ReconstructPayment(
	id, reservationID uuid.UUID,
	amount reservation.Money,
	method Method,
	reference ExternalReference,
	note string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		method:        method,
		reference:     reference,
		note:          note,
		createdAt:     createdAt,
	}
}

// GatewayNote describes a gateway payment for the ledger.
func GatewayNote(paymentID string, net reservation.Money) string {
	if net.IsZero() {
		return fmt.Sprintf("MercadoPago payment %s", paymentID)
	}
	return fmt.Sprintf("MercadoPago payment %s (net received %s)", paymentID, net)
}

func (p *Payment) ID() uuid.UUID                { return p.id }
func (p *Payment) ReservationID() uuid.UUID     { return p.reservationID }
func (p *Payment) Amount() reservation.Money    { return p.amount }
func (p *Payment) Method() Method               { return p.method }
func (p *Payment) Reference() ExternalReference { return p.reference }
func (p *Payment) Note() string                 { return p.note }
func (p *Payment) CreatedAt() time.Time         { return p.createdAt }
