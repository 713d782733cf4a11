package bootstrap

import (
	"airvoucher-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	PartnerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	MaintenanceModule,
)
