package repository

import (
	"context"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/infra/repository/converter"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/mock_reservation.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Reservations, error)
	UpdateReservationBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationBalanceParams) error
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) LockByCode(ctx context.Context, tx sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByCodeForUpdate(ctx, tx, code.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateBalance(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params := sqlc.UpdateReservationBalanceParams{
		ID:         res.ID(),
		AmountPaid: pgconv.DecimalToNumeric(res.AmountPaid().Decimal()),
		Status:     res.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	if err := r.queries.UpdateReservationBalance(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update reservation balance", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params := sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	if err := r.queries.UpdateReservationStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	return nil
}
