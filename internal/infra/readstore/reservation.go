package readstore

import (
	"context"

	"github.com/shopspring/decimal"

	"trip-booking/internal/infra"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/pgconv"
	"trip-booking/internal/usecase/queries"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/mock_reservation.go -package=readstoremock

type ReservationViewQueries interface {
	GetReservationByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Reservations, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.Reservations, error)
	ListReservationCodes(ctx context.Context, db sqlc.DBTX) ([]string, error)
	SummarizeReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.SummarizeReservationsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByCode(ctx context.Context, code string) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by code", err)
	}
	view, err := rowToReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map reservation", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, status *string, page queries.ListPage) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsParams{
		Status: pgconv.StringPtrToPgtype(status),
		Limit:  page.Limit,
	}
	if page.AfterCreatedAt != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(*page.AfterCreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(page.AfterID)
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToReservationView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map reservation", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}

// Codes lists every reservation code, oldest first.
func (r *ReservationReadStore) Codes(ctx context.Context) ([]string, error) {
	codes, err := r.queries.ListReservationCodes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation codes", err)
	}
	return codes, nil
}

func (r *ReservationReadStore) Summarize(ctx context.Context) ([]queries.StatusSummary, error) {
	rows, err := r.queries.SummarizeReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize reservations", err)
	}

	out := make([]queries.StatusSummary, 0, len(rows))
	for _, row := range rows {
		total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid total amount", err, infra.KindDBFailure)
		}
		paid, err := pgconv.DecimalFromNumeric(row.AmountPaid)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid amount paid", err, infra.KindDBFailure)
		}
		out = append(out, queries.StatusSummary{
			Status:       row.Status,
			Reservations: row.Reservations,
			Seats:        row.Seats,
			TotalAmount:  total,
			AmountPaid:   paid,
		})
	}
	return out, nil
}

func rowToReservationView(row sqlc.Reservations) (*queries.ReservationView, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, err
	}
	deposit, err := pgconv.DecimalFromNumeric(row.DepositRequired)
	if err != nil {
		return nil, err
	}
	paid, err := pgconv.DecimalFromNumeric(row.AmountPaid)
	if err != nil {
		return nil, err
	}

	outstanding := decimal.Max(decimal.Zero, total.Sub(paid))

	return &queries.ReservationView{
		ID:              row.ID,
		Code:            row.Code,
		HolderName:      row.HolderName,
		HolderEmail:     row.HolderEmail,
		HolderPhone:     row.HolderPhone,
		Seats:           row.Seats,
		TotalAmount:     total,
		DepositRequired: deposit,
		AmountPaid:      paid,
		Outstanding:     outstanding,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
