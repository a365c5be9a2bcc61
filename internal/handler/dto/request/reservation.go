package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"trip-booking/internal/usecase/commands"
	"trip-booking/internal/usecase/queries"
)

type CreateReservationRequest struct {
	HolderName  string `json:"holder_name" binding:"required,max=120"`
	HolderEmail string `json:"holder_email" binding:"required,email"`
	HolderPhone string `json:"holder_phone" binding:"omitempty,max=40"`
	Seats       int    `json:"seats" binding:"required,min=1"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		HolderName:  strings.TrimSpace(r.HolderName),
		HolderEmail: strings.TrimSpace(r.HolderEmail),
		HolderPhone: strings.TrimSpace(r.HolderPhone),
		Seats:       r.Seats,
	}
}

type CreatePreferenceRequest struct {
	Basis string `json:"basis" binding:"required,oneof=full deposit"`
}

// RecordTransferRequest accepts the amount as a JSON number or a quoted decimal.
type RecordTransferRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference" binding:"omitempty,max=120"`
	Note      string          `json:"note" binding:"omitempty,max=500"`
}

func (r RecordTransferRequest) ToInput(code string) commands.RecordTransferInput {
	return commands.RecordTransferInput{
		Code:      code,
		Amount:    r.Amount.String(),
		Reference: r.Reference,
		Note:      r.Note,
	}
}

type ListReservationsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending deposit_paid fully_paid cancelled"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListReservationsQuery) Filter() queries.ListFilter {
	if q.Status == "" {
		return queries.ListFilter{}
	}
	status := q.Status
	return queries.ListFilter{Status: &status}
}

func (q ListReservationsQuery) PageCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}
