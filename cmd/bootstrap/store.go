package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"booking-intake/internal/domain/throttle"
	"booking-intake/internal/infra/kvstore"
	"booking-intake/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewThrottleStore,
	),
)

func NewThrottleStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (throttle.Store, error) {
	switch cfg.Throttle.Driver {
	case "", "memory":
		return kvstore.NewMemory(), nil
	case "redis":
		client, cleanup, err := kvstore.Connect(context.Background(), cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("throttle store: redis", "addr", cfg.Redis.Addr)
		return kvstore.NewRedis(client, cfg.Throttle.Window), nil
	default:
		return nil, fmt.Errorf("unknown THROTTLE_DRIVER %q", cfg.Throttle.Driver)
	}
}
