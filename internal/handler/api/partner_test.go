//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"airvoucher-admin/internal/handler/api"
	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/infra/partner"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"
	"airvoucher-admin/tests/common/httptest"
	commandsmock "airvoucher-admin/tests/mock/commands"
	queriesmock "airvoucher-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPartnerRouter(t *testing.T) (*gin.Engine, *commandsmock.MockPartnerCommands, *queriesmock.MockPartnerQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	cmds := commandsmock.NewMockPartnerCommands(ctrl)
	q := queriesmock.NewMockPartnerQueries(ctrl)
	h := api.NewPartnerHandler(cmds, q)

	router := gin.New()
	router.GET("/partner/bundles", h.Bundles)
	router.POST("/partner/vouchers", h.RequestVoucher)
	return router, cmds, q
}

func TestPartnerHandler_Bundles(t *testing.T) {
	t.Run("success: returns the catalog", func(t *testing.T) {
		router, _, q := newPartnerRouter(t)
		amount := decimal.RequireFromString("49")
		q.EXPECT().Bundles(gomock.Any(), "data").Return([]partner.BundleProduct{
			{ID: "b-1", Name: "1GB", Vendor: "MTN", Category: "data", Amount: &amount},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/partner/bundles?category=data", nil, "")

		var body []partner.BundleProduct
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "1GB", body[0].Name)
	})

	t.Run("error: 502 when the partner is down", func(t *testing.T) {
		router, _, q := newPartnerRouter(t)
		q.EXPECT().Bundles(gomock.Any(), "").Return(nil, errs.Mark(errors.New("dial tcp: refused"), queries.ErrPartnerUnavailable))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/partner/bundles", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Partner service unavailable")
		assert.NotContains(t, rec.Body.String(), "dial tcp")
	})
}

func TestPartnerHandler_RequestVoucher(t *testing.T) {
	t.Run("success: returns the issued voucher", func(t *testing.T) {
		router, cmds, _ := newPartnerRouter(t)
		cmds.EXPECT().RequestVoucher(gomock.Any(), "10", "MTN").Return(&commands.PartnerVoucherResult{
			Voucher:  &partner.Voucher{PIN: "1234", Serial: "S-1", Amount: decimal.NewFromInt(10), Provider: "MTN"},
			External: true,
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/partner/vouchers", map[string]any{"value": "10", "provider": "MTN"}, "")

		var body commands.PartnerVoucherResult
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.External)
		assert.Equal(t, "1234", body.Voucher.PIN)
	})

	t.Run("error: 400 without provider", func(t *testing.T) {
		router, _, _ := newPartnerRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/partner/vouchers", map[string]any{"value": "10"}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})

	t.Run("error: maps command errors", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "bad value", err: errs.WithMessage(commands.ErrValidation, "amount must be a number"), status: http.StatusBadRequest},
			{name: "partner down", err: commands.ErrPartnerUnavailable, status: http.StatusBadGateway},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				router, cmds, _ := newPartnerRouter(t)
				cmds.EXPECT().RequestVoucher(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(t, router, http.MethodPost, "/partner/vouchers", map[string]any{"value": "x", "provider": "MTN"}, "")
				httptest.AssertErrorResponse(t, rec, tc.status, "")
			})
		}
	})
}

func TestDashboardHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockDashboardQueries(ctrl)
	h := api.NewDashboardHandler(q)
	router := gin.New()
	router.GET("/dashboard/summary", h.Summary)

	t.Run("success: flattens entity counts", func(t *testing.T) {
		q.EXPECT().Summary(gomock.Any()).Return(&queries.DashboardSummary{
			Vouchers:     queries.VoucherStatusCounts{Active: 7, Sold: 2, Expired: 1, Total: 10},
			EntityCounts: queries.EntityCounts{Admins: 2, Retailers: 5, Suppliers: 3, CommissionGroups: 1},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/dashboard/summary", nil, "")

		var body resdto.DashboardResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, int64(10), body.Vouchers.Total)
		assert.Equal(t, int64(5), body.Retailers)
		assert.Equal(t, int64(1), body.CommissionGroups)
	})

	t.Run("error: 500 on store failure", func(t *testing.T) {
		q.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("database error"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/dashboard/summary", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Failed to load dashboard")
	})
}
