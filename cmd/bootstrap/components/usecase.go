package components

import (
	"airvoucher-admin/internal/infra/sheet"
	"airvoucher-admin/internal/pkg/clock"
	"airvoucher-admin/internal/pkg/config"
	"airvoucher-admin/internal/usecase"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.UploadConfig {
		return cfg.Upload
	},
	fx.Annotate(
		sheet.NewVoucherSheetReader,
		fx.As(new(commands.VoucherSheetReader)),
	),
	fx.Annotate(
		sheet.NewVoucherSheetWriter,
		fx.As(new(queries.VoucherSheetWriter)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewVoucherCommands,
		commands.NewAdminCommands,
		commands.NewRetailerCommands,
		commands.NewSupplierCommands,
		commands.NewCommissionGroupCommands,
		commands.NewPartnerCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVoucherQueries,
		queries.NewAdminQueries,
		queries.NewEntityQueries[queries.RetailerView],
		queries.NewEntityQueries[queries.SupplierView],
		queries.NewCommissionGroupQueries,
		queries.NewPartnerQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
