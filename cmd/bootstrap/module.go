package bootstrap

import (
	"go.uber.org/fx"

	"trip-booking/cmd/bootstrap/components"
	"trip-booking/internal/pkg/config"
)

// ConfigModule loads and validates the environment once per process.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module is the full HTTP service graph. tripctl assembles a subset of it.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	GatewayModule,
	RedisModule,
	EventsModule,
	KafkaModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
