package bootstrap

import (
	"booking-intake/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModules are the outer adapters; tests swap them out individually.
var InfraModules = fx.Options(
	LoggerModule,
	MetricsModule,
	StoreModule,
	CatalogModule,
	DispatchModule,
)

var Module = fx.Options(
	ConfigModule,
	InfraModules,
	components.UseCaseModule,
	components.HandlerModule,
)
