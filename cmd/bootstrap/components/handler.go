package components

import (
	"booking-intake/internal/handler"
	"booking-intake/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewVehicleHandler,
	),
	fx.Invoke(handler.NewRouter),
)
