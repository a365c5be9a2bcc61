package converter

import (
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgtype"

	"trip-booking/internal/domain/reservation"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	seats := res.Seats()
	if seats > math.MaxInt32 {
		panic(fmt.Sprintf("seats out of int32 range: %d", seats))
	}

	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		Code:            res.Code().String(),
		HolderName:      res.Holder().Name(),
		HolderEmail:     res.Holder().Email(),
		HolderPhone:     res.Holder().Phone(),
		Seats:           int32(seats),
		TotalAmount:     pgconv.DecimalToNumeric(res.TotalAmount().Decimal()),
		DepositRequired: pgconv.DecimalToNumeric(res.DepositRequired().Decimal()),
		AmountPaid:      pgconv.DecimalToNumeric(res.AmountPaid().Decimal()),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	code, err := reservation.NewCode(row.Code)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	total, err := MoneyFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, err
	}
	deposit, err := MoneyFromNumeric(row.DepositRequired)
	if err != nil {
		return nil, err
	}
	paid, err := MoneyFromNumeric(row.AmountPaid)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		code,
		reservation.ReconstructHolder(row.HolderName, row.HolderEmail, row.HolderPhone),
		int(row.Seats),
		total,
		deposit,
		paid,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func MoneyFromNumeric(n pgtype.Numeric) (reservation.Money, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return reservation.Money{}, err
	}
	return reservation.NewMoney(d)
}
