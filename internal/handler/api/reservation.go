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

type ReservationHandler struct {
	cmds     commands.ReservationCommands
	checkout commands.CheckoutCommands
	q        queries.ReservationQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	checkout commands.CheckoutCommands,
	q queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, checkout: checkout, q: q}
}

// @Summary Create reservation
// @Description Submit the booking form
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Booking form"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.cmds.CreateReservation(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidReservation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid reservation", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create reservation failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary Get reservation
// @Description Public lookup by reservation code
// @Tags reservations
// @Produce json
// @Param code path string true "Reservation code"
// @Success 200 {object} resdto.PublicReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{code} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortLookupError(c, err)
		return
	}

	resp, err := resdto.FromPublicReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create checkout preference
// @Description Create a MercadoPago checkout for the full balance or the deposit
// @Tags reservations
// @Accept json
// @Produce json
// @Param code path string true "Reservation code"
// @Param request body reqdto.CreatePreferenceRequest true "Payment basis"
// @Success 201 {object} resdto.PreferenceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/{code}/preference [post]
func (h *ReservationHandler) CreatePreference(c *gin.Context) {
	var req reqdto.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkout.CreatePreference(c.Request.Context(), c.Param("code"), req.Basis)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidBasis):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment basis", nil)
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errs.Is(err, commands.ErrNotPayable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is not payable", nil)
		case errs.Is(err, commands.ErrGatewayNotConfigured):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Online payments are not available", nil)
		case errs.Is(err, commands.ErrGatewayFailure):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create preference failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPreferenceResult(result))
}

func abortLookupError(c *gin.Context, err error) {
	if errs.Is(err, queries.ErrReservationNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
