//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	"airvoucher-admin/internal/domain/admin"
	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/handler/httperr"
	"airvoucher-admin/tests/common/authtest"
	"airvoucher-admin/tests/common/dbtest"
	"airvoucher-admin/tests/common/httptest"
	"airvoucher-admin/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func (s *AdminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) token(role admin.Role) string {
	t := s.T()
	adminID := dbtest.CreateTestAdmin(t, s.DB, string(role)+"@airvoucher.test", string(role))
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, adminID, role)
}

func (s *AdminSuite) TestAdminCRUD() {
	s.Run("Normal case: create, rename and delete an admin", func() {
		t := s.T()
		token := s.token(admin.RoleSuperAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admins", map[string]any{
			"name": "Lerato", "email": "Lerato@Example.com", "role": "sub_admin",
		}, token)
		var created resdto.AdminResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "lerato@example.com", created.Email)
		require.True(t, created.IsActive)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/admins/"+created.ID, map[string]any{"name": "Lerato M"}, token)
		var updated resdto.AdminResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "Lerato M", updated.Name)
		require.Equal(t, "sub_admin", updated.Role)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admins/"+created.ID, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admins/"+created.ID, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Abnormal case: duplicate email", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		body := map[string]any{"name": "Sipho", "email": "sipho@example.com", "role": "admin"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admins", body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admins", body, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Abnormal case: sub admins cannot manage admins", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admins", nil, s.token(admin.RoleSubAdmin))
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}

func (s *AdminSuite) TestAssignRetailers() {
	s.Run("Normal case: assignment replaces the previous set", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		target := dbtest.CreateTestAdmin(t, s.DB, "field@airvoucher.test", "sub_admin")
		r1 := dbtest.CreateTestRetailer(t, s.DB, "Spaza One", "one@spaza.test")
		r2 := dbtest.CreateTestRetailer(t, s.DB, "Spaza Two", "two@spaza.test")
		url := "/api/admins/" + target.String() + "/retailers"

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"retailer_ids": []uuid.UUID{r1, r2}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"retailer_ids": []uuid.UUID{r2}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		var res resdto.AdminRetailersResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, []string{r2.String()}, res.RetailerIDs)
	})

	s.Run("Abnormal case: unknown retailer ids are reported and nothing changes", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		target := dbtest.CreateTestAdmin(t, s.DB, "field@airvoucher.test", "sub_admin")
		r1 := dbtest.CreateTestRetailer(t, s.DB, "Spaza One", "one@spaza.test")
		ghost := uuid.New()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/admins/"+target.String()+"/retailers",
			map[string]any{"retailer_ids": []uuid.UUID{r1, ghost}}, token)
		var detail httperr.MissingRetailers
		httptest.AssertErrorDetail(t, w, http.StatusUnprocessableEntity, "Unknown retailers", &detail)
		require.Equal(t, []uuid.UUID{ghost}, detail.IDs)

		var n int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM admin_retailers WHERE admin_id = $1", target).Scan(&n))
		require.Zero(t, n)
	})
}

func (s *AdminSuite) TestCommissionGroupVouchers() {
	s.Run("Normal case: attached vouchers are disabled in the supplier candidates", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		supplierID := dbtest.SupplierIDByName(t, s.DB, "Glocell")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/commission-groups", map[string]any{
			"name": "Gold", "retailer_commission_pct": "4.50", "agent_commission_pct": "1.25",
		}, token)
		var group resdto.CommissionGroupResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &group)

		vouchersURL := "/api/commission-groups/" + group.ID + "/vouchers"
		attach := map[string]any{
			"supplier_id":             supplierID.String(),
			"name":                    "Glocell batch (10 vouchers)",
			"vendor":                  "glocell",
			"category":                "batch",
			"retailer_commission_pct": "3",
			"agent_commission_pct":    "1",
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, attach, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, attach, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL, nil, token)
		var attached []resdto.GroupVoucherResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &attached)
		require.Len(t, attached, 1)
		require.Equal(t, "GLOCELL", attached[0].Vendor)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/commission-groups/"+group.ID+"/supplier-vouchers",
			map[string]any{"supplier_id": supplierID.String(), "batch_count": 10}, token)
		var candidates []resdto.CandidateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &candidates)
		want := []resdto.CandidateResponse{{Name: "Glocell batch (10 vouchers)", Vendor: "GLOCELL", Category: "batch"}}
		if diff := cmp.Diff(want, candidates, cmpopts.IgnoreFields(resdto.CandidateResponse{}, "ID")); diff != "" {
			t.Errorf("candidates mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Abnormal case: a retailer's group cannot be deleted while referenced", func() {
		t := s.T()
		token := s.token(admin.RoleSuperAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/commission-groups", map[string]any{
			"name": "Silver", "retailer_commission_pct": "2", "agent_commission_pct": "0.5",
		}, token)
		var group resdto.CommissionGroupResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &group)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/retailers", map[string]any{
			"name": "Corner Cafe", "email": "cafe@example.com", "commission_group_id": group.ID,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/commission-groups/"+group.ID, nil, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *AdminSuite) TestDashboard() {
	s.Run("Normal case: summary counts vouchers and entities", func() {
		t := s.T()
		token := s.token(admin.RoleSubAdmin)
		dbtest.CreateTestVoucher(t, s.DB, "MTN", "airtime", "Flash", 1000)
		dbtest.CreateTestRetailer(t, s.DB, "Spaza One", "one@spaza.test")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/dashboard/summary", nil, token)
		var summary resdto.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		require.Equal(t, int64(1), summary.Vouchers.Active)
		require.Equal(t, int64(1), summary.Vouchers.Total)
		require.Equal(t, int64(1), summary.Retailers)
		require.Equal(t, int64(3), summary.Suppliers)
		require.Equal(t, int64(1), summary.Admins)
	})
}
