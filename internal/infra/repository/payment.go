package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"trip-booking/internal/domain/payment"
	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/infra/repository/converter"
	sqlc "trip-booking/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/repository/mock_payment.go -package=repositorymock

type PaymentWriteQueries interface {
	InsertPaymentIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentIfAbsentParams) (int64, error)
	SumPaymentsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (pgtype.Numeric, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// InsertIfAbsent reports false when the (method, external_reference) key is taken.
func (r *PaymentRepository) InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (bool, error) {
	rows, err := r.queries.InsertPaymentIfAbsent(ctx, tx, converter.PaymentToInfra(p))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert payment", err)
	}
	return rows == 1, nil
}

func (r *PaymentRepository) SumByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (reservation.Money, error) {
	total, err := r.queries.SumPaymentsByReservation(ctx, tx, reservationID)
	if err != nil {
		return reservation.Money{}, infra.WrapRepoErr("failed to sum payments", err)
	}
	m, err := converter.MoneyFromNumeric(total)
	if err != nil {
		return reservation.Money{}, infra.WrapRepoErr("invalid payment total", err, infra.KindDBFailure)
	}
	return m, nil
}
