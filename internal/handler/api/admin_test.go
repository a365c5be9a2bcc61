//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trip-booking/internal/domain/payment"
	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/handler/api"
	resdto "trip-booking/internal/handler/dto/response"
	"trip-booking/internal/usecase/commands"
	"trip-booking/internal/usecase/queries"
	"trip-booking/internal/usecase/shared"
	"trip-booking/tests/common/builder"
	"trip-booking/tests/common/httptest"
	commandsmock "trip-booking/tests/mock/commands"
	queriesmock "trip-booking/tests/mock/queries"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockPayments     *commandsmock.MockPaymentCommands
	mockReservations *commandsmock.MockReservationCommands
	mockQueries      *queriesmock.MockReservationQueries
	handler          *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockPayments, s.mockReservations, s.mockQueries)

	s.router.GET("/admin/reservations", s.handler.List)
	s.router.GET("/admin/summary", s.handler.Summary)
	s.router.GET("/admin/reservations/:code/payments", s.handler.ListPayments)
	s.router.POST("/admin/reservations/:code/transfers", s.handler.RecordTransfer)
	s.router.POST("/admin/reservations/:code/cancel", s.handler.Cancel)
	s.router.POST("/admin/reservations/:code/recompute", s.handler.Recompute)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestList() {
	b := builder.NewReservationBuilder()

	s.Run("success: returns items and the next cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), 1).
			DoAndReturn(func(_ context.Context, filter queries.ListFilter, cursor *queries.Cursor, _ int) ([]*queries.ReservationView, *queries.Cursor, error) {
				s.Require().NotNil(filter.Status)
				s.Equal("pending", *filter.Status)
				s.Nil(cursor)
				return []*queries.ReservationView{b.BuildView()}, &queries.Cursor{After: "next-page"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations?status=pending&limit=1", nil, "")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(b.Code, response.Items[0].Code)
		s.Equal(b.HolderEmail, response.Items[0].HolderEmail)
		s.Equal(b.CreatedAt.Unix(), response.Items[0].CreatedAt)
		s.Equal("next-page", response.NextCursor)
	})

	s.Run("success: cursor is passed through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{}, &queries.Cursor{After: "abc"}, 0).
			Return([]*queries.ReservationView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations?cursor=abc", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]any{}, response["items"])
		s.NotContains(response, "next_cursor")
	})

	s.Run("error: 400 on invalid query", func() {
		for _, url := range []string{
			"/admin/reservations?status=paid",
			"/admin/reservations?limit=101",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		}
	})

	s.Run("error: 400 on a corrupt cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations?cursor=!!", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *AdminHandlerTestSuite) TestSummary() {
	s.Run("success: decimals are rendered with two places", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any()).Return(&queries.Summary{
			ByStatus: []queries.StatusSummary{
				{Status: "deposit_paid", Reservations: 1, Seats: 2, TotalAmount: decimal.NewFromInt(1000), AmountPaid: decimal.NewFromInt(600)},
			},
			Reservations: 1,
			Seats:        2,
			TotalAmount:  decimal.NewFromInt(1000),
			AmountPaid:   decimal.NewFromInt(600),
			Outstanding:  decimal.NewFromInt(400),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/summary", nil, "")

		var response resdto.SummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("1000.00", response.TotalAmount)
		s.Equal("600.00", response.AmountPaid)
		s.Equal("400.00", response.Outstanding)
		s.Require().Len(response.ByStatus, 1)
		s.Equal("deposit_paid", response.ByStatus[0].Status)
		s.Equal("600.00", response.ByStatus[0].AmountPaid)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/summary", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Summary failed")
	})
}

func (s *AdminHandlerTestSuite) TestListPayments() {
	b := builder.NewReservationBuilder()

	s.Run("success: returns the ledger", func() {
		s.mockQueries.EXPECT().ListPayments(gomock.Any(), b.Code).Return([]*queries.PaymentView{
			b.BuildPaymentView(600, payment.MethodMercadoPago, "1234567"),
			b.BuildPaymentView(400, payment.MethodTransfer, "TRF-1"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/"+b.Code+"/payments", nil, "")

		var response []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("600.00", response[0].Amount)
		s.Equal("mercadopago", response[0].Method)
		s.Equal("1234567", response[0].ExternalReference)
		s.Equal("transfer", response[1].Method)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockQueries.EXPECT().ListPayments(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/TRIP-ZZZ999/payments", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *AdminHandlerTestSuite) TestRecordTransfer() {
	code := "TRIP-ABC234"
	url := "/admin/reservations/" + code + "/transfers"

	s.Run("success: returns 201 with the recorded event", func() {
		event := shared.PaymentRecorded{
			PaymentID:       uuid.New(),
			ReservationCode: code,
			Method:          "transfer",
			Reference:       "TRF-1",
			Amount:          "250.50",
			AmountPaid:      "250.50",
			TotalAmount:     "1000.00",
			Status:          "deposit_paid",
			RecordedAt:      time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		}
		s.mockPayments.EXPECT().RecordTransfer(gomock.Any(), commands.RecordTransferInput{
			Code:      code,
			Amount:    "250.5",
			Reference: "TRF-1",
			Note:      "bank deposit",
		}).Return(&commands.RecordedPayment{Event: event}, nil).Times(1)

		body := map[string]any{"amount": 250.50, "reference": "TRF-1", "note": "bank deposit"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response shared.PaymentRecorded
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(event.PaymentID, response.PaymentID)
		s.Equal("deposit_paid", response.Status)
	})

	s.Run("success: quoted amounts are accepted", func() {
		s.mockPayments.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RecordTransferInput) (*commands.RecordedPayment, error) {
				s.Equal("100", in.Amount)
				s.Empty(in.Reference)
				return &commands.RecordedPayment{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": "100.00"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on a malformed amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": "ten"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid payment", commandsError: commands.ErrInvalidPayment, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid payment"},
			{name: "not found", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Reservation not found"},
			{name: "duplicate reference", commandsError: commands.ErrDuplicatePayment, expectedStatus: http.StatusConflict, expectedMsg: "Payment already recorded"},
			{name: "cancelled reservation", commandsError: commands.ErrReservationCancelled, expectedStatus: http.StatusConflict, expectedMsg: "Reservation is cancelled"},
			{name: "ledger failure", commandsError: commands.ErrLedgerUpdate, expectedStatus: http.StatusInternalServerError, expectedMsg: "Record transfer failed"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockPayments.EXPECT().RecordTransfer(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 10}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestCancel() {
	b := builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
		r.Paid = decimal.NewFromInt(500)
		r.Status = reservation.StatusCancelled
	})
	url := "/admin/reservations/" + b.Code + "/cancel"

	s.Run("success: returns the cancelled reservation", func() {
		s.mockReservations.EXPECT().CancelReservation(gomock.Any(), b.Code).Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
		s.Equal("500.00", response.AmountPaid)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Reservation not found"},
			{name: "already cancelled", commandsError: commands.ErrAlreadyCancelled, expectedStatus: http.StatusConflict, expectedMsg: "Reservation already cancelled"},
			{name: "unexpected", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Cancel reservation failed"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReservations.EXPECT().CancelReservation(gomock.Any(), b.Code).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestRecompute() {
	code := "TRIP-ABC234"
	url := "/admin/reservations/" + code + "/recompute"

	s.Run("success: reports the rebuilt balance", func() {
		s.mockPayments.EXPECT().RecomputeBalance(gomock.Any(), code).Return(&commands.RecomputeResult{
			Code:       code,
			AmountPaid: "600.00",
			Status:     "deposit_paid",
			Changed:    true,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.RecomputeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.RecomputeResponse{Code: code, AmountPaid: "600.00", Status: "deposit_paid", Changed: true}, response)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockPayments.EXPECT().RecomputeBalance(gomock.Any(), code).Return(nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
