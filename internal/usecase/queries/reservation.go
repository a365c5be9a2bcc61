package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/mock_reservation.go -package=queriesmock

type ReservationReadStore interface {
	FindByCode(ctx context.Context, code string) (*ReservationView, error)
	List(ctx context.Context, status *string, page ListPage) ([]*ReservationView, error)
	Summarize(ctx context.Context) ([]StatusSummary, error)
}

type PaymentReadStore interface {
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*PaymentView, error)
}

type ReservationQueries interface {
	GetByCode(ctx context.Context, code string) (*ReservationView, error)
	List(ctx context.Context, filter ListFilter, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	ListPayments(ctx context.Context, code string) ([]*PaymentView, error)
	Summary(ctx context.Context) (*Summary, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	payments     PaymentReadStore
}

func NewReservationQueries(reservations ReservationReadStore, payments PaymentReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		payments:     payments,
	}
}

func (q *reservationQueriesImpl) GetByCode(ctx context.Context, code string) (*ReservationView, error) {
	c, err := reservation.NewCode(code)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	view, err := q.reservations.FindByCode(ctx, c.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ListFilter, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if filter.Status != nil {
		if _, err := reservation.ParseStatus(*filter.Status); err != nil {
			return nil, nil, ErrInvalidStatusFilter
		}
	}

	limit = ValidateLimit(limit)
	page := ListPage{Limit: int32(limit + 1)}
	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		page.AfterCreatedAt = &lastCreatedAt
		page.AfterID = lastID
	}

	rows, err := q.reservations.List(ctx, filter.Status, page)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) ListPayments(ctx context.Context, code string) ([]*PaymentView, error) {
	view, err := q.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	payments, err := q.payments.ListByReservation(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*PaymentView{}
	}
	return payments, nil
}

// Summary totals every status except cancelled into the headline figures.
func (q *reservationQueriesImpl) Summary(ctx context.Context) (*Summary, error) {
	rows, err := q.reservations.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	out := &Summary{
		ByStatus:    []StatusSummary{},
		TotalAmount: decimal.Zero,
		AmountPaid:  decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, row := range rows {
		out.ByStatus = append(out.ByStatus, row)
		if row.Status == string(reservation.StatusCancelled) {
			continue
		}
		out.Reservations += row.Reservations
		out.Seats += row.Seats
		out.TotalAmount = out.TotalAmount.Add(row.TotalAmount)
		out.AmountPaid = out.AmountPaid.Add(row.AmountPaid)
	}
	if out.TotalAmount.GreaterThan(out.AmountPaid) {
		out.Outstanding = out.TotalAmount.Sub(out.AmountPaid)
	}
	return out, nil
}
