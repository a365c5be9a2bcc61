package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"trip-booking/internal/pkg/clock"
)

var (
	ErrInvalidSeats         = errors.New("seats must be at least 1")
	ErrInvalidUnitPrice     = errors.New("unit price must be positive")
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidBasis         = errors.New("invalid payment basis")
	ErrAlreadyCancelled     = errors.New("reservation is already cancelled")
	ErrReservationCancelled = errors.New("reservation is cancelled")
	ErrAlreadyFullyPaid     = errors.New("reservation is already fully paid")
	ErrAmountDecrease       = errors.New("amount paid cannot decrease")
)

type Services struct {
	Clock clock.Clock
	Codes CodeGenerator
}

type Reservation struct {
	id              uuid.UUID
	code            Code
	holder          Holder
	seats           int
	totalAmount     Money
	depositRequired Money
	amountPaid      Money
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(services *Services, holder Holder, seats int, unitPrice Money) (*Reservation, error) {
	if seats < 1 {
		return nil, ErrInvalidSeats
	}
	if !unitPrice.IsPositive() {
		return nil, ErrInvalidUnitPrice
	}
	code, err := services.Codes.Generate()
	if err != nil {
		return nil, err
	}

	total := unitPrice.Mul(seats)
	now := services.Clock.Now()
	return &Reservation{
		id:              uuid.New(),
		code:            code,
		holder:          holder,
		seats:           seats,
		totalAmount:     total,
		depositRequired: DepositFor(total),
		amountPaid:      Zero(),
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	code Code,
	holder Holder,
	seats int,
	totalAmount, depositRequired, amountPaid Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		code:            code,
		holder:          holder,
		seats:           seats,
		totalAmount:     totalAmount,
		depositRequired: depositRequired,
		amountPaid:      amountPaid,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// DeriveStatus maps a cumulative paid amount onto the payment state machine.
// Any positive amount reaches deposit_paid, even below the nominal deposit.
func DeriveStatus(paid, total Money) Status {
	switch {
	case paid.GreaterThanOrEqual(total):
		return StatusFullyPaid
	case paid.IsPositive():
		return StatusDepositPaid
	default:
		return StatusPending
	}
}

// ApplyLedgerTotal sets the amount paid to the sum of the payment ledger. A
// cancelled reservation keeps its status. It reports whether anything changed.
func (r *Reservation) ApplyLedgerTotal(paid Money, now time.Time) (bool, error) {
	if paid.LessThan(r.amountPaid) {
		return false, ErrAmountDecrease
	}

	next := r.status
	if next != StatusCancelled {
		next = DeriveStatus(paid, r.totalAmount)
	}
	if paid.Equal(r.amountPaid) && next == r.status {
		return false, nil
	}

	r.amountPaid = paid
	r.status = next
	r.updatedAt = now
	return true, nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) Outstanding() Money {
	return r.totalAmount.Sub(r.amountPaid)
}

func (r *Reservation) PayableAmount(basis Basis) (Money, error) {
	if r.IsCancelled() {
		return Money{}, ErrReservationCancelled
	}
	outstanding := r.Outstanding()
	if outstanding.IsZero() {
		return Money{}, ErrAlreadyFullyPaid
	}

	switch basis {
	case BasisFull:
		return outstanding, nil
	case BasisDeposit:
		return r.depositRequired.Min(outstanding), nil
	default:
		return Money{}, ErrInvalidBasis
	}
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) IsFullyPaid() bool {
	return r.status == StatusFullyPaid
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) Code() Code             { return r.code }
func (r *Reservation) Holder() Holder         { return r.holder }
func (r *Reservation) Seats() int             { return r.seats }
func (r *Reservation) TotalAmount() Money     { return r.totalAmount }
func (r *Reservation) DepositRequired() Money { return r.depositRequired }
func (r *Reservation) AmountPaid() Money      { return r.amountPaid }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
