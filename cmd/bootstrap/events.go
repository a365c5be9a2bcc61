package bootstrap

import (
	"go.uber.org/fx"

	"trip-booking/internal/handler/api"
	"trip-booking/internal/pkg/eventbus"
	"trip-booking/internal/usecase/shared"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewPaymentBus,
			fx.As(new(shared.EventPublisher)),
			fx.As(new(api.PaymentFeed)),
		),
	),
)

func NewPaymentBus() *eventbus.Bus[shared.PaymentRecorded] {
	return eventbus.New[shared.PaymentRecorded](eventbus.DefaultBuffer)
}
