package components

import (
	"log/slog"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/pricing"
	"booking-intake/internal/domain/throttle"
	"booking-intake/internal/pkg/clock"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/usecase/commands"
	"booking-intake/internal/usecase/queries"
	"booking-intake/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewValidator,
	NewCalculator,
	NewLimiter,
	shared.NewQuoter,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewVehicleQueries,
	),
)

func NewValidator(clk clock.Clock, cfg config.Config) *booking.Validator {
	return booking.NewValidator(clk, cfg.Booking.Location())
}

func NewCalculator(cfg config.Config) (*pricing.Calculator, error) {
	return pricing.NewCalculator(pricing.Options{
		TaxRate:        cfg.Booking.TaxRate,
		CurrencyPrefix: cfg.Booking.CurrencyPrefix,
		Locale:         cfg.Booking.Locale,
	})
}

func NewLimiter(store throttle.Store, clk clock.Clock, cfg config.Config, logger *slog.Logger) *throttle.Limiter {
	return throttle.NewLimiter(store, clk, throttle.Config{
		MaxAttempts: cfg.Throttle.MaxAttempts,
		Window:      cfg.Throttle.Window,
		KeyPrefix:   cfg.Throttle.KeyPrefix,
	}, logger)
}
