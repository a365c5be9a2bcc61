//go:build e2e

package webhook_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"trip-booking/tests/common/authtest"
	"trip-booking/tests/common/dbtest"
	"trip-booking/tests/common/httptest"
	"trip-booking/tests/e2e"
)

const webhookURL = "/api/webhooks/mercadopago"

type WebhookSuite struct {
	e2e.SharedSuite
}

func TestWebhookSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WebhookSuite))
}

func (s *WebhookSuite) deliver(paymentID string) (int, string) {
	body := []byte(`{"type":"payment","action":"payment.updated","data":{"id":"` + paymentID + `"}}`)
	rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, webhookURL, body, "")

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec.Code, resp["outcome"]
}

func (s *WebhookSuite) TestReconcile() {
	s.Run("Normal case: deposit then balance", func() {
		t := s.T()
		code := "TRIP-ABC234"
		id := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{Code: code, Total: decimal.NewFromInt(1000)})

		s.Gateway.Approve("1001", code, 600)
		status, outcome := s.deliver("1001")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "recorded", outcome)

		paid, state := dbtest.ReservationState(t, s.DB, code)
		require.True(t, paid.Equal(decimal.NewFromInt(600)))
		require.Equal(t, "deposit_paid", state)
		require.Equal(t, 1, dbtest.CountQueuedJobs(t, s.DB))

		s.Gateway.Approve("1002", code, 400)
		rec := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL+"?topic=payment&id=1002", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		paid, state = dbtest.ReservationState(t, s.DB, code)
		require.True(t, paid.Equal(decimal.NewFromInt(1000)))
		require.Equal(t, "fully_paid", state)
		require.Equal(t, 2, dbtest.CountPayments(t, s.DB, id))
		require.Equal(t, 2, dbtest.CountQueuedJobs(t, s.DB))
	})

	s.Run("Normal case: redelivery is a duplicate", func() {
		t := s.T()
		code := "TRIP-DEF567"
		id := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{Code: code, Total: decimal.NewFromInt(1000)})
		s.Gateway.Approve("2001", code, 1000)

		_, first := s.deliver("2001")
		_, second := s.deliver("2001")

		require.Equal(t, "recorded", first)
		require.Equal(t, "duplicate", second)
		require.Equal(t, 1, dbtest.CountPayments(t, s.DB, id))
	})

	s.Run("Normal case: concurrent deliveries record a single payment", func() {
		t := s.T()
		code := "TRIP-GHJ789"
		id := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{Code: code, Total: decimal.NewFromInt(1000)})
		s.Gateway.Approve("3001", code, 500)

		const deliveries = 8
		outcomes := make(chan string, deliveries)
		var wg sync.WaitGroup
		for range deliveries {
			wg.Add(1)
			go func() {
				defer wg.Done()
				status, outcome := s.deliver("3001")
				if status == http.StatusOK {
					outcomes <- outcome
				} else {
					outcomes <- "http_error"
				}
			}()
		}
		wg.Wait()
		close(outcomes)

		counts := map[string]int{}
		for o := range outcomes {
			counts[o]++
		}
		require.Equal(t, 1, counts["recorded"], counts)
		require.Equal(t, deliveries-1, counts["duplicate"], counts)
		require.Equal(t, 1, dbtest.CountPayments(t, s.DB, id))

		paid, state := dbtest.ReservationState(t, s.DB, code)
		require.True(t, paid.Equal(decimal.NewFromInt(500)))
		require.Equal(t, "deposit_paid", state)
	})

	s.Run("Normal case: cancelled reservations keep their status", func() {
		t := s.T()
		code := "TRIP-KLM234"
		dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{Code: code, Total: decimal.NewFromInt(1000), Status: "cancelled"})
		s.Gateway.Approve("4001", code, 1000)

		_, outcome := s.deliver("4001")
		require.Equal(t, "recorded", outcome)

		paid, state := dbtest.ReservationState(t, s.DB, code)
		require.True(t, paid.Equal(decimal.NewFromInt(1000)))
		require.Equal(t, "cancelled", state)
	})

	s.Run("Normal case: a transfer sharing the payment reference is kept apart", func() {
		t := s.T()
		code := "TRIP-RST345"
		id := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationFixture{Code: code, Total: decimal.NewFromInt(1000)})
		token := authtest.Login(t, s.Router, e2e.AdminUsername, e2e.AdminPassword)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/reservations/"+code+"/transfers",
			map[string]any{"amount": "300", "reference": "6001"}, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		s.Gateway.Approve("6001", code, 400)
		_, outcome := s.deliver("6001")
		require.Equal(t, "recorded", outcome)
		require.Equal(t, 2, dbtest.CountPayments(t, s.DB, id))

		paid, _ := dbtest.ReservationState(t, s.DB, code)
		require.True(t, paid.Equal(decimal.NewFromInt(700)))
	})

	s.Run("Exception case: unusable deliveries are acknowledged without ledger writes", func() {
		t := s.T()
		s.Gateway.Approve("5001", "TRIP-NPQ999", 100)

		cases := []struct {
			paymentID string
			outcome   string
		}{
			{paymentID: "9999", outcome: "gateway_unavailable"},
			{paymentID: "5001", outcome: "reservation_not_found"},
		}
		for _, tc := range cases {
			status, outcome := s.deliver(tc.paymentID)
			require.Equal(t, http.StatusOK, status)
			require.Equal(t, tc.outcome, outcome, tc.paymentID)
		}

		rec := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL+"?topic=merchant_order&id=77", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, dbtest.CountQueuedJobs(t, s.DB))
	})
}
