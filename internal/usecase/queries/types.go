package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"trip-booking/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

// ReservationView is the read model shared by the public lookup and the dashboard.
type ReservationView struct {
	ID              uuid.UUID       `json:"id"`
	Code            string          `json:"code"`
	HolderName      string          `json:"holder_name"`
	HolderEmail     string          `json:"holder_email"`
	HolderPhone     string          `json:"holder_phone"`
	Seats           int32           `json:"seats"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DepositRequired decimal.Decimal `json:"deposit_required"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type PaymentView struct {
	ID                uuid.UUID       `json:"id"`
	ReservationID     uuid.UUID       `json:"reservation_id"`
	Amount            decimal.Decimal `json:"amount"`
	Method            string          `json:"method"`
	ExternalReference string          `json:"external_reference"`
	Note              string          `json:"note"`
	CreatedAt         time.Time       `json:"created_at"`
}

type StatusSummary struct {
	Status       string          `json:"status"`
	Reservations int64           `json:"reservations"`
	Seats        int64           `json:"seats"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
}

type Summary struct {
	ByStatus     []StatusSummary `json:"by_status"`
	Reservations int64           `json:"reservations"`
	Seats        int64           `json:"seats"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

type ListFilter struct {
	Status *string
}

// ListPage is a keyset position; a nil AfterCreatedAt requests the first page.
type ListPage struct {
	AfterCreatedAt *time.Time
	AfterID        uuid.UUID
	Limit          int32
}
