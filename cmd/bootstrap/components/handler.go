package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"trip-booking/internal/handler"
	"trip-booking/internal/handler/api"
	"trip-booking/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewHealthHandler,
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewWebhookHandler,
		NewEventsHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(pool *pgxpool.Pool) *api.HealthHandler {
	return api.NewHealthHandler(pool)
}

func NewEventsHandler(feed api.PaymentFeed) *api.EventsHandler {
	return api.NewEventsHandler(feed, 0)
}

func NewHandlers(
	health *api.HealthHandler,
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	admin *api.AdminHandler,
	webhook *api.WebhookHandler,
	events *api.EventsHandler,
) handler.Handlers {
	return handler.Handlers{
		Health:      health,
		Auth:        auth,
		Reservation: reservation,
		Admin:       admin,
		Webhook:     webhook,
		Events:      events,
	}
}
