package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/handler/api"
	"airvoucher-admin/internal/handler/middleware"
	"airvoucher-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Vouchers         *api.VoucherHandler
	Admins           *api.AdminHandler
	Retailers        *api.RetailerHandler
	Suppliers        *api.SupplierHandler
	CommissionGroups *api.CommissionGroupHandler
	Partner          *api.PartnerHandler
	Dashboard        *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())

	adminOnly := authMiddleware.RequireRoleAtLeast(admin.RoleAdmin)
	{
		vouchers := apiGroup.Group("/vouchers")
		addRoutes(vouchers, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Vouchers.Availability},
			{Method: http.MethodPost, Path: "/pick", Handler: h.Vouchers.Pick},
			{Method: http.MethodPost, Path: "/upload", Handler: h.Vouchers.Upload},
			{Method: http.MethodGet, Path: "/export", Handler: h.Vouchers.Export},
			{Method: http.MethodGet, Path: "", Handler: h.Vouchers.List},
			{Method: http.MethodPost, Path: "", Handler: h.Vouchers.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Vouchers.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Vouchers.Update},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Vouchers.ChangeStatus},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Vouchers.Delete, Mw: []gin.HandlerFunc{adminOnly}},
		})

		admins := apiGroup.Group("/admins")
		admins.Use(adminOnly)
		addRoutes(admins, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Admins.List},
			{Method: http.MethodPost, Path: "", Handler: h.Admins.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Admins.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Admins.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Admins.Delete},
			{Method: http.MethodGet, Path: "/:id/retailers", Handler: h.Admins.Retailers},
			{Method: http.MethodPut, Path: "/:id/retailers", Handler: h.Admins.AssignRetailers},
		})

		retailers := apiGroup.Group("/retailers")
		addRoutes(retailers, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Retailers.List},
			{Method: http.MethodPost, Path: "", Handler: h.Retailers.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Retailers.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Retailers.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Retailers.Delete, Mw: []gin.HandlerFunc{adminOnly}},
		})

		suppliers := apiGroup.Group("/suppliers")
		addRoutes(suppliers, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Suppliers.List},
			{Method: http.MethodPost, Path: "", Handler: h.Suppliers.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Suppliers.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Suppliers.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Suppliers.Delete, Mw: []gin.HandlerFunc{adminOnly}},
		})

		groups := apiGroup.Group("/commission-groups")
		addRoutes(groups, []route{
			{Method: http.MethodGet, Path: "", Handler: h.CommissionGroups.List},
			{Method: http.MethodPost, Path: "", Handler: h.CommissionGroups.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.CommissionGroups.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.CommissionGroups.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.CommissionGroups.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/:id/vouchers", Handler: h.CommissionGroups.Vouchers},
			{Method: http.MethodPost, Path: "/:id/vouchers", Handler: h.CommissionGroups.AddVoucher},
			{Method: http.MethodDelete, Path: "/:id/vouchers/:voucherId", Handler: h.CommissionGroups.RemoveVoucher},
			{Method: http.MethodPost, Path: "/:id/supplier-vouchers", Handler: h.CommissionGroups.SupplierVouchers},
		})

		partner := apiGroup.Group("/partner")
		addRoutes(partner, []route{
			{Method: http.MethodGet, Path: "/bundles", Handler: h.Partner.Bundles},
			{Method: http.MethodPost, Path: "/vouchers", Handler: h.Partner.RequestVoucher},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/dashboard/summary", Handler: h.Dashboard.Summary},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
