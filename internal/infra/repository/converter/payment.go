package converter

import (
	"fmt"

	"trip-booking/internal/domain/payment"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/pgconv"
)

func PaymentToInfra(p *payment.Payment) sqlc.InsertPaymentIfAbsentParams {
	return sqlc.InsertPaymentIfAbsentParams{
		ID:                p.ID(),
		ReservationID:     p.ReservationID(),
		Amount:            pgconv.DecimalToNumeric(p.Amount().Decimal()),
		Method:            p.Method().String(),
		ExternalReference: p.Reference().String(),
		Note:              p.Note(),
		CreatedAt:         pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PaymentFromInfra(row sqlc.Payments) (*payment.Payment, error) {
	amount, err := MoneyFromNumeric(row.Amount)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", row.ID, err)
	}
	ref, err := payment.NewExternalReference(row.ExternalReference)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", row.ID, err)
	}
	return payment.ReconstructPayment(
		row.ID,
		row.ReservationID,
		amount,
		payment.Method(row.Method),
		ref,
		row.Note,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
