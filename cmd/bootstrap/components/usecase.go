package components

import (
	"go.uber.org/fx"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/pkg/config"
	"trip-booking/internal/pkg/patch"
	"trip-booking/internal/usecase"
	"trip-booking/internal/usecase/commands"
	"trip-booking/internal/usecase/queries"
	"trip-booking/internal/usecase/shared"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewReservationFactory,
	NewCheckoutSettings,
	NewAdminAccount,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewCheckoutCommands,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewReservationFactory(cfg config.Config, clk clock.Clock) (*reservation.Factory, error) {
	seatPrice, err := reservation.NewMoney(cfg.Booking.SeatPrice)
	if err != nil {
		return nil, err
	}
	codes := reservation.NewRandomCodeGenerator(patch.NonZero(cfg.Booking.CodePrefix, "TRIP"))
	return reservation.NewFactory(clk, codes, seatPrice, cfg.Booking.MaxSeats), nil
}

func NewCheckoutSettings(cfg config.Config) commands.CheckoutSettings {
	return commands.CheckoutSettings{
		TripName:            cfg.Booking.TripName,
		Currency:            cfg.MercadoPago.Currency,
		PublicBaseURL:       cfg.MercadoPago.PublicBaseURL,
		StatementDescriptor: cfg.MercadoPago.StatementDescriptor,
	}
}

func NewAdminAccount(cfg config.Config) commands.AdminAccount {
	return commands.AdminAccount{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
	}
}

func NewPaymentCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	gateway commands.PaymentGateway,
	lock commands.DeliveryLock,
	events shared.EventPublisher,
	clk clock.Clock,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(uow, gateway, lock, events, clk, cfg.Kafka.Topic)
}
