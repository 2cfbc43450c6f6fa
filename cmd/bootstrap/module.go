package bootstrap

import (
	"go.uber.org/fx"

	"sharekit/cmd/bootstrap/components"
)

// ServerModule wires the business-logic service.
var ServerModule = fx.Options(
	ConfigModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// GatewayModule wires the validation/forwarding proxy. No database.
var GatewayModule = fx.Options(
	ConfigModule,
	components.GatewayModule,
)
