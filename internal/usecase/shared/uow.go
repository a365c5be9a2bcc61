package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"trip-booking/internal/domain/payment"
	"trip-booking/internal/domain/reservation"
	sqlc "trip-booking/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/mock_uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ReservationByCode(ctx context.Context, code reservation.Code) (*reservation.Reservation, error)
	PaymentByReference(ctx context.Context, method payment.Method, ref payment.ExternalReference) (*PaymentSnapshot, error)
	ReservationCodes(ctx context.Context) ([]string, error)
}

// Minimal snapshot for command read operations
type PaymentSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Method        string
	Reference     string
	CreatedAt     time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	// LockByCode loads the reservation with a row lock held until the transaction ends.
	LockByCode(ctx context.Context, tx sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error)
	UpdateBalance(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type PaymentRepository interface {
	// InsertIfAbsent reports false when a payment with the same method and
	// external reference already exists.
	InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (bool, error)
	SumByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (reservation.Money, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
