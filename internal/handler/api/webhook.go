package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-booking/internal/domain/notification"
	"trip-booking/internal/handler/httperr"
	"trip-booking/internal/usecase/commands"
)

const maxWebhookBody = 64 << 10

type WebhookHandler struct {
	payments commands.PaymentCommands
}

func NewWebhookHandler(payments commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{payments: payments}
}

// @Summary MercadoPago notification
// @Description Reconcile a payment notification. The id is read from the query string or the JSON body; the payment itself is always fetched from the gateway.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	// An unreadable body still leaves the query string to work with.
	raw, _ := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	n := notification.Parse(c.Request.URL.Query(), raw)

	outcome, err := h.payments.ReconcilePayment(c.Request.Context(), n)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Ledger update failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"outcome": outcome.String(),
	})
}
