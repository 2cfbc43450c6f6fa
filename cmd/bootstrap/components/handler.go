package components

import (
	"go.uber.org/fx"

	"sharekit/internal/handler"
	"sharekit/internal/handler/api"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewRequestHandler,
	),
	fx.Invoke(handler.NewRouter),
)
