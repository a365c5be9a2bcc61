package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "trip-booking/internal/handler/dto/request"
	resdto "trip-booking/internal/handler/dto/response"
	"trip-booking/internal/handler/httperr"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/commands"
	"trip-booking/internal/usecase/queries"
)

// AdminHandler serves the payments dashboard.
type AdminHandler struct {
	payments     commands.PaymentCommands
	reservations commands.ReservationCommands
	q            queries.ReservationQueries
}

func NewAdminHandler(
	payments commands.PaymentCommands,
	reservations commands.ReservationCommands,
	q queries.ReservationQueries,
) *AdminHandler {
	return &AdminHandler{payments: payments, reservations: reservations, q: q}
}

// @Summary List reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param cursor query string false "Opaque page cursor"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *AdminHandler) List(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, next, err := h.q.List(c.Request.Context(), q.Filter(), q.PageCursor(), q.Limit)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		case errs.Is(err, queries.ErrInvalidStatusFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "List reservations failed", nil)
		}
		return
	}

	resp, err := resdto.FromReservationList(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Dashboard summary
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SummaryResponse
// @Router /admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Summary failed", nil)
		return
	}

	resp, err := resdto.FromSummary(summary)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reservation ledger
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Reservation code"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{code}/payments [get]
func (h *AdminHandler) ListPayments(c *gin.Context) {
	payments, err := h.q.ListPayments(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortLookupError(c, err)
		return
	}

	resp, err := resdto.FromPaymentViews(payments)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Record manual transfer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Reservation code"
// @Param request body reqdto.RecordTransferRequest true "Transfer"
// @Success 201 {object} shared.PaymentRecorded
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{code}/transfers [post]
func (h *AdminHandler) RecordTransfer(c *gin.Context) {
	var req reqdto.RecordTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	recorded, err := h.payments.RecordTransfer(c.Request.Context(), req.ToInput(c.Param("code")))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidPayment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment", nil)
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errs.Is(err, commands.ErrDuplicatePayment):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment already recorded", nil)
		case errs.Is(err, commands.ErrReservationCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Record transfer failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, recorded.Event)
}

// @Summary Cancel reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Reservation code"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{code}/cancel [post]
func (h *AdminHandler) Cancel(c *gin.Context) {
	res, err := h.reservations.CancelReservation(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errs.Is(err, commands.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cancel reservation failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Recompute balance
// @Description Rebuild amount paid and status from the payment ledger
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Reservation code"
// @Success 200 {object} resdto.RecomputeResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{code}/recompute [post]
func (h *AdminHandler) Recompute(c *gin.Context) {
	result, err := h.payments.RecomputeBalance(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errs.Is(err, commands.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Recompute failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecomputeResult(result))
}
