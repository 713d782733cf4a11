package components

import (
	"airvoucher-admin/internal/infra/readstore"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/infra/uow"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Voucher
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VoucherReadQueries)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		// Admin
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AdminReadQueries)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
		// Retailer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RetailerReadQueries)),
		),
		fx.Annotate(
			readstore.NewRetailerReadStore,
			fx.As(new(queries.EntityReadStore[queries.RetailerView])),
		),
		// Supplier
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SupplierReadQueries)),
		),
		fx.Annotate(
			readstore.NewSupplierReadStore,
			fx.As(new(queries.EntityReadStore[queries.SupplierView])),
		),
		// CommissionGroup
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommissionGroupReadQueries)),
		),
		fx.Annotate(
			readstore.NewCommissionGroupReadStore,
			fx.As(new(queries.CommissionGroupReadStore)),
		),
		// Dashboard
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DashboardReadQueries)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)

// Repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
