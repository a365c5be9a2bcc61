package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"trip-booking/internal/infra/gateway/mercadopago"
	"trip-booking/internal/pkg/config"
	"trip-booking/internal/usecase/commands"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) (commands.PaymentGateway, error) {
	client, err := mercadopago.NewClient(cfg.MercadoPago)
	if err != nil {
		return nil, err
	}
	if !cfg.MercadoPago.Configured() {
		logger.Warn("MP_ACCESS_TOKEN is empty; checkout and webhook reconciliation are disabled")
	}
	return client, nil
}
