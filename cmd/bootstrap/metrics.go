package bootstrap

import (
	"booking-intake/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewIntake,
	),
)
