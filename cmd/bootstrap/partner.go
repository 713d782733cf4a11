package bootstrap

import (
	"airvoucher-admin/internal/infra/partner"
	"airvoucher-admin/internal/pkg/config"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var PartnerModule = fx.Module("partner",
	fx.Provide(
		fx.Annotate(
			NewPartnerClient,
			fx.As(new(queries.BundleCatalog)),
			fx.As(new(commands.VoucherIssuer)),
		),
	),
)

func NewPartnerClient(cfg config.Config) *partner.Client {
	return partner.NewClient(cfg.Partner)
}
