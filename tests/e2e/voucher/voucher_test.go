//go:build e2e

package voucher_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"airvoucher-admin/internal/domain/admin"
	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/tests/common/authtest"
	"airvoucher-admin/tests/common/dbtest"
	"airvoucher-admin/tests/common/httptest"
	"airvoucher-admin/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	vouchersURL     = "/api/vouchers"
	uploadURL       = "/api/vouchers/upload"
	availabilityURL = "/api/vouchers/availability"
	pickURL         = "/api/vouchers/pick"
	exportURL       = "/api/vouchers/export"
)

type VoucherSuite struct {
	e2e.SharedSuite
}

func (s *VoucherSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestVoucherSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(VoucherSuite))
}

func (s *VoucherSuite) token(role admin.Role) string {
	t := s.T()
	adminID := dbtest.CreateTestAdmin(t, s.DB, string(role)+"@airvoucher.test", string(role))
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, adminID, role)
}

const uploadCSV = `name,category,vendor,supplier_name,amount,pin,serial,expires_at
MTN R10,airtime,MTN,Flash,10,1111,S-1,2030-01-31
MTN R10,airtime,MTN,Flash,10.00,2222,S-2,
Vodacom R29.50,airtime,Vodacom,Flash,R29.50,3333,S-3,
`

func (s *VoucherSuite) upload(token, key, filename, content string) (int, string) {
	w := httptest.PerformMultipartRequest(s.T(), s.Router, uploadURL, "file", filename, []byte(content),
		map[string]string{"Idempotency-Key": key}, token)
	return w.Code, w.Body.String()
}

func (s *VoucherSuite) TestUpload() {
	s.Run("Normal case: upload inserts every row and replays on retry", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		key := uuid.NewString()

		code, body := s.upload(token, key, "batch.csv", uploadCSV)
		require.Equal(t, http.StatusCreated, code, body)
		require.JSONEq(t, `{"inserted":3,"replayed":false}`, body)

		code, body = s.upload(token, key, "batch.csv", uploadCSV)
		require.Equal(t, http.StatusOK, code, body)
		require.JSONEq(t, `{"inserted":3,"replayed":true}`, body)

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM vouchers").Scan(&count))
		require.Equal(t, 3, count)
	})

	s.Run("Abnormal case: same key with another file is a conflict", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		key := uuid.NewString()

		code, body := s.upload(token, key, "batch.csv", uploadCSV)
		require.Equal(t, http.StatusCreated, code, body)

		other := strings.Replace(uploadCSV, "1111", "9999", 1)
		code, body = s.upload(token, key, "batch.csv", other)
		require.Equal(t, http.StatusConflict, code, body)
	})

	s.Run("Abnormal case: one bad row rejects the whole file", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		bad := uploadCSV + "Broken,airtime,MTN,Flash,ten,4444,S-4,\n"

		code, body := s.upload(token, uuid.NewString(), "batch.csv", bad)
		require.Equal(t, http.StatusUnprocessableEntity, code, body)
		require.Contains(t, body, `"line":5`)

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM vouchers").Scan(&count))
		require.Zero(t, count)
	})

	s.Run("Abnormal case: unsupported file type", func() {
		code, body := s.upload(s.token(admin.RoleAdmin), uuid.NewString(), "batch.pdf", uploadCSV)
		require.Equal(s.T(), http.StatusUnsupportedMediaType, code, body)
	})

	s.Run("Abnormal case: missing idempotency key", func() {
		w := httptest.PerformMultipartRequest(s.T(), s.Router, uploadURL, "file", "batch.csv", []byte(uploadCSV), nil, s.token(admin.RoleAdmin))
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Idempotency-Key")
	})
}

func (s *VoucherSuite) TestAvailabilityAndPick() {
	s.Run("Normal case: grid counts active stock and pick returns the oldest", func() {
		t := s.T()
		token := s.token(admin.RoleSubAdmin)
		first := dbtest.CreateTestVoucher(t, s.DB, "MTN", "airtime", "Flash", 1000)
		dbtest.CreateTestVoucher(t, s.DB, "MTN", "airtime", "Flash", 1000)
		sold := dbtest.CreateTestVoucher(t, s.DB, "MTN", "airtime", "Flash", 500)
		dbtest.CreateTestVoucher(t, s.DB, "MTN", "data", "Flash", 1000)
		_, err := s.DB.Exec(t.Context(), "UPDATE vouchers SET status = 'sold' WHERE id = $1", sold)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?provider=MTN&service=airtime", nil, token)
		var grid resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)
		require.False(t, grid.Unavailable)

		got := map[int64][2]int64{}
		for _, item := range grid.Items {
			if item.Total > 0 {
				got[item.AmountCents] = [2]int64{item.Total, item.Available}
			}
		}
		if diff := cmp.Diff(map[int64][2]int64{1000: {2, 2}, 500: {1, 0}}, got); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, pickURL,
			map[string]string{"provider": "MTN", "service": "airtime", "amount": "10"}, token)
		var picked resdto.PickedVoucherResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &picked)
		require.False(t, picked.External)
		require.Equal(t, first.String(), picked.Voucher.ID)
	})

	s.Run("Abnormal case: nothing left for the amount", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, pickURL,
			map[string]string{"provider": "Telkom", "amount": "R50"}, s.token(admin.RoleSubAdmin))
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "R50.00")
	})
}

func (s *VoucherSuite) TestStatusLifecycle() {
	s.Run("Normal case: active to sold, then sold is final", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		id := dbtest.CreateTestVoucher(t, s.DB, "Vodacom", "airtime", "Flash", 2900)
		url := fmt.Sprintf("%s/%s/status", vouchersURL, id)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]string{"status": "sold"}, token)
		var res resdto.VoucherResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "sold", res.Status)
		require.NotNil(t, res.SoldAtUnix)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]string{"status": "expired"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "from sold to expired")
	})

	s.Run("Abnormal case: sub admins cannot delete", func() {
		t := s.T()
		id := dbtest.CreateTestVoucher(t, s.DB, "MTN", "airtime", "Flash", 1000)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, vouchersURL+"/"+id.String(), nil, s.token(admin.RoleSubAdmin))
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, vouchersURL+"/"+id.String(), nil, s.token(admin.RoleSuperAdmin))
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func (s *VoucherSuite) TestListAndExport() {
	s.Run("Normal case: keyset pages cover every voucher once", func() {
		t := s.T()
		token := s.token(admin.RoleAdmin)
		want := map[string]bool{}
		for range 5 {
			want[dbtest.CreateTestVoucher(t, s.DB, "MTN", "airtime", "Flash", 1000).String()] = true
		}
		dbtest.CreateTestVoucher(t, s.DB, "Telkom", "airtime", "Flash", 1000)

		seen := map[string]bool{}
		cursor := ""
		for pages := 0; pages < 10; pages++ {
			url := vouchersURL + "?vendor=mtn&limit=2"
			if cursor != "" {
				url += "&after=" + cursor
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
			var page resdto.VoucherListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			for _, item := range page.Items {
				require.False(t, seen[item.ID], "voucher %s listed twice", item.ID)
				seen[item.ID] = true
			}
			if page.NextCursor == "" {
				break
			}
			cursor = page.NextCursor
		}
		require.Equal(t, want, seen)
	})

	s.Run("Normal case: export is an xlsx attachment", func() {
		t := s.T()
		dbtest.CreateTestVoucher(t, s.DB, "MTN", "airtime", "Flash", 1000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, exportURL+"?status=active", nil, s.token(admin.RoleAdmin))
		require.Equal(t, http.StatusOK, w.Code)
		httptest.AssertAttachment(t, w, httptest.XLSXContentType, "vouchers.xlsx")
		require.True(t, strings.HasPrefix(w.Body.String(), "PK"), "xlsx is a zip archive")
	})
}
