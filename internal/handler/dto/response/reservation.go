package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/usecase/commands"
	"trip-booking/internal/usecase/queries"
)

// Amounts are rendered as fixed two-decimal strings and times as unix seconds.
var viewOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

type ReservationResponse struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	HolderName      string `json:"holder_name"`
	HolderEmail     string `json:"holder_email"`
	HolderPhone     string `json:"holder_phone"`
	Seats           int32  `json:"seats"`
	TotalAmount     string `json:"total_amount"`
	DepositRequired string `json:"deposit_required"`
	AmountPaid      string `json:"amount_paid"`
	Outstanding     string `json:"outstanding"`
	Status          string `json:"status"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

// PublicReservationResponse is what the booking page may show without auth.
type PublicReservationResponse struct {
	Code            string `json:"code"`
	HolderName      string `json:"holder_name"`
	Seats           int32  `json:"seats"`
	TotalAmount     string `json:"total_amount"`
	DepositRequired string `json:"deposit_required"`
	AmountPaid      string `json:"amount_paid"`
	Outstanding     string `json:"outstanding"`
	Status          string `json:"status"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

type PaymentResponse struct {
	ID                string `json:"id"`
	Amount            string `json:"amount"`
	Method            string `json:"method"`
	ExternalReference string `json:"external_reference"`
	Note              string `json:"note"`
	CreatedAt         int64  `json:"created_at"`
}

type StatusSummaryResponse struct {
	Status       string `json:"status"`
	Reservations int64  `json:"reservations"`
	Seats        int64  `json:"seats"`
	TotalAmount  string `json:"total_amount"`
	AmountPaid   string `json:"amount_paid"`
}

type SummaryResponse struct {
	ByStatus     []StatusSummaryResponse `json:"by_status"`
	Reservations int64                   `json:"reservations"`
	Seats        int64                   `json:"seats"`
	TotalAmount  string                  `json:"total_amount"`
	AmountPaid   string                  `json:"amount_paid"`
	Outstanding  string                  `json:"outstanding"`
}

type PreferenceResponse struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
	Amount           string `json:"amount"`
	Basis            string `json:"basis"`
}

type RecomputeResponse struct {
	Code       string `json:"code"`
	AmountPaid string `json:"amount_paid"`
	Status     string `json:"status"`
	Changed    bool   `json:"changed"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID().String(),
		Code:            r.Code().String(),
		HolderName:      r.Holder().Name(),
		HolderEmail:     r.Holder().Email(),
		HolderPhone:     r.Holder().Phone(),
		Seats:           int32(r.Seats()),
		TotalAmount:     r.TotalAmount().String(),
		DepositRequired: r.DepositRequired().String(),
		AmountPaid:      r.AmountPaid().String(),
		Outstanding:     r.Outstanding().String(),
		Status:          r.Status().String(),
		CreatedAt:       r.CreatedAt().Unix(),
		UpdatedAt:       r.UpdatedAt().Unix(),
	}
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	out := &ReservationResponse{}
	if err := copier.CopyWithOption(out, v, viewOptions); err != nil {
		return nil, err
	}
	return out, nil
}

func FromPublicReservationView(v *queries.ReservationView) (*PublicReservationResponse, error) {
	out := &PublicReservationResponse{}
	if err := copier.CopyWithOption(out, v, viewOptions); err != nil {
		return nil, err
	}
	return out, nil
}

func FromReservationList(views []*queries.ReservationView, next *queries.Cursor) (*ReservationListResponse, error) {
	out := &ReservationListResponse{Items: make([]*ReservationResponse, 0, len(views))}
	for _, v := range views {
		item, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	if next != nil {
		out.NextCursor = next.After
	}
	return out, nil
}

func FromPaymentViews(views []*queries.PaymentView) ([]PaymentResponse, error) {
	out := make([]PaymentResponse, 0, len(views))
	if err := copier.CopyWithOption(&out, views, viewOptions); err != nil {
		return nil, err
	}
	return out, nil
}

func FromSummary(s *queries.Summary) (*SummaryResponse, error) {
	out := &SummaryResponse{ByStatus: []StatusSummaryResponse{}}
	if err := copier.CopyWithOption(out, s, viewOptions); err != nil {
		return nil, err
	}
	return out, nil
}

func FromPreferenceResult(r *commands.PreferenceResult) *PreferenceResponse {
	return &PreferenceResponse{
		PreferenceID:     r.PreferenceID,
		InitPoint:        r.InitPoint,
		SandboxInitPoint: r.SandboxInitPoint,
		Amount:           r.Amount.String(),
		Basis:            r.Basis.String(),
	}
}

func FromRecomputeResult(r *commands.RecomputeResult) *RecomputeResponse {
	return &RecomputeResponse{
		Code:       r.Code,
		AmountPaid: r.AmountPaid,
		Status:     r.Status,
		Changed:    r.Changed,
	}
}
