package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobKindPaymentRecorded = "payment_recorded"
)

// PaymentRecorded is emitted once per ledger entry, after commit.
type PaymentRecorded struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	ReservationCode string    `json:"reservation_code"`
	HolderName      string    `json:"holder_name"`
	Method          string    `json:"method"`
	Reference       string    `json:"external_reference"`
	Amount          string    `json:"amount"`
	AmountPaid      string    `json:"amount_paid"`
	TotalAmount     string    `json:"total_amount"`
	Status          string    `json:"status"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// EventPublisher fans events out to in-process subscribers.
type EventPublisher interface {
	Publish(ev PaymentRecorded) int
}
