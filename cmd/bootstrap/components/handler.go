package components

import (
	"airvoucher-admin/internal/handler"
	"airvoucher-admin/internal/handler/api"
	"airvoucher-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVoucherHandler,
		api.NewAdminHandler,
		api.NewRetailerHandler,
		api.NewSupplierHandler,
		api.NewCommissionGroupHandler,
		api.NewPartnerHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Vouchers         *api.VoucherHandler
	Admins           *api.AdminHandler
	Retailers        *api.RetailerHandler
	Suppliers        *api.SupplierHandler
	CommissionGroups *api.CommissionGroupHandler
	Partner          *api.PartnerHandler
	Dashboard        *api.DashboardHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Vouchers:         p.Vouchers,
		Admins:           p.Admins,
		Retailers:        p.Retailers,
		Suppliers:        p.Suppliers,
		CommissionGroups: p.CommissionGroups,
		Partner:          p.Partner,
		Dashboard:        p.Dashboard,
	}
}
