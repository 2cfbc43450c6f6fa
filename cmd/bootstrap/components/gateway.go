package components

import (
	"go.uber.org/fx"

	"sharekit/internal/gateway"
	"sharekit/internal/gateway/client"
	gwhandler "sharekit/internal/gateway/handler"
	"sharekit/internal/pkg/clock"
	"sharekit/internal/pkg/config"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config) *client.Client {
			return client.New(cfg.Gateway)
		},
		gwhandler.NewUserHandler,
		gwhandler.NewItemHandler,
		gwhandler.NewBookingHandler,
		gwhandler.NewRequestHandler,
	),
	fx.Invoke(gateway.NewRouter),
)
