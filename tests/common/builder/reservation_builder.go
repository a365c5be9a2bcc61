//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"trip-booking/internal/domain/payment"
	"trip-booking/internal/domain/reservation"
	reqdto "trip-booking/internal/handler/dto/request"
	"trip-booking/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	Code        string
	HolderName  string
	HolderEmail string
	HolderPhone string
	Seats       int
	Total       decimal.Decimal
	Paid        decimal.Decimal
	Status      reservation.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:          uuid.New(),
		Code:        "TRIP-ABC234",
		HolderName:  "Ana Gómez",
		HolderEmail: "ana@example.com",
		HolderPhone: "+54 11 5555 0000",
		Seats:       2,
		Total:       decimal.NewFromInt(1000),
		Paid:        decimal.Zero,
		Status:      reservation.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		HolderName:  r.HolderName,
		HolderEmail: r.HolderEmail,
		HolderPhone: r.HolderPhone,
		Seats:       r.Seats,
	}
}

func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	code, err := reservation.NewCode(r.Code)
	if err != nil {
		panic(err)
	}
	total := mustMoney(r.Total)
	return reservation.ReconstructReservation(
		r.ID,
		code,
		reservation.ReconstructHolder(r.HolderName, r.HolderEmail, r.HolderPhone),
		r.Seats,
		total,
		reservation.DepositFor(total),
		mustMoney(r.Paid),
		r.Status,
		r.CreatedAt,
		r.UpdatedAt,
	)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	outstanding := r.Total.Sub(r.Paid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return &queries.ReservationView{
		ID:              r.ID,
		Code:            r.Code,
		HolderName:      r.HolderName,
		HolderEmail:     r.HolderEmail,
		HolderPhone:     r.HolderPhone,
		Seats:           int32(r.Seats),
		TotalAmount:     r.Total,
		DepositRequired: reservation.DepositFor(mustMoney(r.Total)).Decimal(),
		AmountPaid:      r.Paid,
		Outstanding:     outstanding,
		Status:          r.Status.String(),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildPaymentView(amount int64, method payment.Method, reference string) *queries.PaymentView {
	return &queries.PaymentView{
		ID:                uuid.New(),
		ReservationID:     r.ID,
		Amount:            decimal.NewFromInt(amount),
		Method:            method.String(),
		ExternalReference: reference,
		CreatedAt:         r.UpdatedAt,
	}
}

func mustMoney(d decimal.Decimal) reservation.Money {
	m, err := reservation.NewMoney(d)
	if err != nil {
		panic(err)
	}
	return m
}
