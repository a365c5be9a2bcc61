package bootstrap

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"trip-booking/internal/infra/outbox"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/pkg/config"
	"trip-booking/internal/usecase/shared"
)

var KafkaModule = fx.Module("kafka",
	fx.Invoke(
		StartOutboxRelay,
	),
)

// StartOutboxRelay runs the relay for the app's lifetime. With Kafka disabled
// jobs simply stay queued until a relay is enabled.
func StartOutboxRelay(
	lc fx.Lifecycle,
	cfg config.Config,
	uow shared.UnitOfWork,
	q *sqlc.Queries,
	clk clock.Clock,
	logger *slog.Logger,
) {
	if !cfg.Kafka.Enabled {
		logger.Info("kafka disabled; notification jobs stay queued")
		return
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	relay := outbox.NewRelay(uow, q, writer, clk, outbox.Options{
		PollInterval: cfg.Kafka.PollInterval,
		BatchSize:    cfg.Kafka.BatchSize,
		MaxAttempts:  cfg.Kafka.MaxAttempts,
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return writer.Close()
		},
	})
}
