package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"booking-intake/internal/infra/dispatch"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/usecase/commands"

	"go.uber.org/fx"
)

var DispatchModule = fx.Module("dispatch",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.Mailer, error) {
	switch cfg.Email.Driver {
	case "", "log":
		return dispatch.NewLog(logger), nil
	case "emailjs":
		return dispatch.NewEmailJS(cfg.Email, nil)
	case "amqp":
		ch, cleanup, err := dispatch.DialAMQP(cfg.AMQP)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return dispatch.NewAMQP(ch, cfg.AMQP), nil
	default:
		return nil, fmt.Errorf("unknown EMAIL_DRIVER %q", cfg.Email.Driver)
	}
}
