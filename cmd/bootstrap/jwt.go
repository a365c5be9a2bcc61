package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/pkg/config"
	"trip-booking/internal/pkg/jwt"
)

// HS256 keys shorter than the hash output weaken the signature.
const minSecretLength = 32

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock, logger *slog.Logger) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	if len(cfg.JWT.Secret) < minSecretLength {
		logger.Warn("JWT_SECRET is shorter than recommended", "length", len(cfg.JWT.Secret), "recommended", minSecretLength)
	}

	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
