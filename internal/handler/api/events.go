package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trip-booking/internal/handler/httperr"
	"trip-booking/internal/usecase/shared"
)

const defaultHeartbeat = 25 * time.Second

// PaymentFeed is satisfied by *eventbus.Bus[shared.PaymentRecorded].
type PaymentFeed interface {
	Subscribe(ctx context.Context) <-chan shared.PaymentRecorded
	Subscribers() int
}

type EventsHandler struct {
	feed      PaymentFeed
	heartbeat time.Duration
}

func NewEventsHandler(feed PaymentFeed, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &EventsHandler{feed: feed, heartbeat: heartbeat}
}

// @Summary Live payment feed
// @Description Server-sent events, one "payment" event per recorded ledger entry
// @Tags admin
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} shared.PaymentRecorded
// @Router /admin/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	ctx := c.Request.Context()
	events := h.feed.Subscribe(ctx)

	setupSSEHeaders(c.Writer)
	c.Status(http.StatusOK)
	fmt.Fprint(c.Writer, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()
	slog.Info("admin feed connected", "client_ip", c.ClientIP(), "subscribers", h.feed.Subscribers())

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				slog.Error("failed to encode feed event", "error", err.Error())
				continue
			}
			fmt.Fprintf(c.Writer, "event: payment\nid: %s\ndata: %s\n\n", ev.PaymentID, data)
			flusher.Flush()
		case <-ticker.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			flusher.Flush()
		case <-ctx.Done():
			slog.Debug("admin feed disconnected", "client_ip", c.ClientIP())
			return
		}
	}
}

func setupSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream;charset=UTF-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Accel-Buffering", "no")
}
