package readstore

import (
	"context"

	"github.com/google/uuid"

	"trip-booking/internal/infra"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/pgconv"
	"trip-booking/internal/usecase/queries"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/readstore/mock_payment.go -package=readstoremock

type PaymentViewQueries interface {
	ListPaymentsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.Payments, error)
	GetPaymentByReference(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentByReferenceParams) (sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentViewQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToPaymentView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map payment", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *PaymentReadStore) FindByReference(ctx context.Context, method, reference string) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByReference(ctx, r.db, sqlc.GetPaymentByReferenceParams{
		Method:            method,
		ExternalReference: reference,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by reference", err)
	}
	view, err := rowToPaymentView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map payment", err, infra.KindDBFailure)
	}
	return view, nil
}

func rowToPaymentView(row sqlc.Payments) (*queries.PaymentView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return &queries.PaymentView{
		ID:                row.ID,
		ReservationID:     row.ReservationID,
		Amount:            amount,
		Method:            row.Method,
		ExternalReference: row.ExternalReference,
		Note:              row.Note,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
