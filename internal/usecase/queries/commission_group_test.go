//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/partner"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/queries"
	queriesmock "airvoucher-admin/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommissionGroupQueriesTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockCtrl      *gomock.Controller
	mockStore     *queriesmock.MockCommissionGroupReadStore
	mockSuppliers *queriesmock.MockEntityReadStore[queries.SupplierView]
	mockCatalog   *queriesmock.MockBundleCatalog
	q             queries.CommissionGroupQueries

	groupID uuid.UUID
}

func (s *CommissionGroupQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockCommissionGroupReadStore(s.mockCtrl)
	s.mockSuppliers = queriesmock.NewMockEntityReadStore[queries.SupplierView](s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockBundleCatalog(s.mockCtrl)
	s.q = queries.NewCommissionGroupQueries(s.mockStore, s.mockSuppliers, s.mockCatalog)
	s.groupID = uuid.New()
}

func (s *CommissionGroupQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommissionGroupQueriesSuite(t *testing.T) {
	suite.Run(t, new(CommissionGroupQueriesTestSuite))
}

func (s *CommissionGroupQueriesTestSuite) expectGroup() {
	s.mockStore.EXPECT().FindByID(gomock.Any(), s.groupID).
		Return(&queries.CommissionGroupView{ID: s.groupID, Name: "Gold"}, nil)
}

func (s *CommissionGroupQueriesTestSuite) TestVouchers() {
	s.Run("success: lists the group's vouchers", func() {
		s.expectGroup()
		s.mockStore.EXPECT().FindVouchers(gomock.Any(), s.groupID).
			Return([]*queries.GroupVoucherView{{ID: uuid.New(), Name: "1GB"}}, nil)

		views, err := s.q.Vouchers(s.ctx, s.groupID)
		s.Require().NoError(err)
		s.Len(views, 1)
	})

	s.Run("error: unknown group", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), s.groupID).
			Return(nil, infra.WrapRepoErr("commission group not found", nil, infra.KindNotFound))

		_, err := s.q.Vouchers(s.ctx, s.groupID)
		s.True(errs.Is(err, queries.ErrEntityNotFound))
	})
}

func (s *CommissionGroupQueriesTestSuite) TestSupplierVouchers() {
	supplierID := uuid.New()
	catalog := "mobile_data"

	s.Run("success: aggregator candidates flag session and saved duplicates", func() {
		s.expectGroup()
		s.mockSuppliers.EXPECT().FindByID(gomock.Any(), supplierID).Return(&queries.SupplierView{
			ID: supplierID, Name: "Flash", Kind: "aggregator", Catalog: &catalog,
		}, nil)
		s.mockStore.EXPECT().FindVouchersBySupplier(gomock.Any(), s.groupID, supplierID).
			Return([]*queries.GroupVoucherView{{Name: "2GB", Vendor: "MTN"}}, nil)

		amount := decimal.RequireFromString("49.99")
		s.mockCatalog.EXPECT().ListBundles(gomock.Any(), "data").Return([]partner.BundleProduct{
			{ID: "b1", Name: "1GB", Vendor: "vodacom", Amount: &amount},
			{Name: "2GB"},
			{Name: "5GB", Vendor: "Telkom", Category: "data"},
		}, nil)

		got, err := s.q.SupplierVouchers(s.ctx, s.groupID, queries.SupplierVoucherParams{
			SupplierID: supplierID,
			InSession:  []commissiongroup.Selected{{Name: "1gb", Vendor: "VODACOM"}},
		})
		s.Require().NoError(err)
		s.Require().Len(got, 3)

		s.Equal("VODACOM", got[0].Vendor)
		s.True(got[0].Disabled)
		s.Require().NotNil(got[0].AmountCents)
		s.Equal(int64(4999), *got[0].AmountCents)
		s.Equal("data", got[0].Category)

		s.Equal("2gb-mtn", got[1].ID)
		s.Equal("MTN", got[1].Vendor)
		s.True(got[1].Disabled)

		s.False(got[2].Disabled)
	})

	s.Run("success: ott supplier offers the fixed entry without the catalog", func() {
		s.expectGroup()
		s.mockSuppliers.EXPECT().FindByID(gomock.Any(), supplierID).
			Return(&queries.SupplierView{ID: supplierID, Name: "OTT Mobile", Kind: "ott"}, nil)
		s.mockStore.EXPECT().FindVouchersBySupplier(gomock.Any(), s.groupID, supplierID).Return(nil, nil)

		got, err := s.q.SupplierVouchers(s.ctx, s.groupID, queries.SupplierVoucherParams{SupplierID: supplierID})
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal(commissiongroup.OTTVoucherName, got[0].Name)
	})

	s.Run("success: batch supplier names the batch size", func() {
		s.expectGroup()
		s.mockSuppliers.EXPECT().FindByID(gomock.Any(), supplierID).
			Return(&queries.SupplierView{ID: supplierID, Name: "Glocell", Kind: "batch"}, nil)
		s.mockStore.EXPECT().FindVouchersBySupplier(gomock.Any(), s.groupID, supplierID).Return(nil, nil)

		got, err := s.q.SupplierVouchers(s.ctx, s.groupID, queries.SupplierVoucherParams{SupplierID: supplierID, BatchCount: 40})
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal("Glocell batch (40 vouchers)", got[0].Name)
		s.Equal("GLOCELL", got[0].Vendor)
	})

	s.Run("error: unknown supplier", func() {
		s.expectGroup()
		s.mockSuppliers.EXPECT().FindByID(gomock.Any(), supplierID).
			Return(nil, infra.WrapRepoErr("supplier not found", nil, infra.KindNotFound))

		_, err := s.q.SupplierVouchers(s.ctx, s.groupID, queries.SupplierVoucherParams{SupplierID: supplierID})
		s.True(errs.Is(err, queries.ErrEntityNotFound))
		s.Contains(err.Error(), supplierID.String())
	})

	s.Run("error: catalog outage is marked", func() {
		s.expectGroup()
		s.mockSuppliers.EXPECT().FindByID(gomock.Any(), supplierID).Return(&queries.SupplierView{
			ID: supplierID, Name: "Flash", Kind: "aggregator", Catalog: &catalog,
		}, nil)
		s.mockStore.EXPECT().FindVouchersBySupplier(gomock.Any(), s.groupID, supplierID).Return(nil, nil)
		s.mockCatalog.EXPECT().ListBundles(gomock.Any(), "data").Return(nil, errors.New("timeout"))

		_, err := s.q.SupplierVouchers(s.ctx, s.groupID, queries.SupplierVoucherParams{SupplierID: supplierID})
		s.True(errs.Is(err, queries.ErrCatalogUnavailable))
	})
}

func TestDashboardQueries_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockDashboardReadStore(ctrl)
	q := queries.NewDashboardQueries(store)
	ctx := context.Background()

	t.Run("success: totals every status", func(t *testing.T) {
		store.EXPECT().CountVouchersByStatus(gomock.Any()).Return(map[string]int64{"active": 4, "sold": 3, "expired": 1}, nil)
		store.EXPECT().CountEntities(gomock.Any()).Return(&queries.EntityCounts{Admins: 2, Retailers: 9}, nil)

		summary, err := q.Summary(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Vouchers != (queries.VoucherStatusCounts{Active: 4, Sold: 3, Expired: 1, Total: 8}) {
			t.Errorf("unexpected voucher counts: %+v", summary.Vouchers)
		}
		if summary.Retailers != 9 {
			t.Errorf("retailers = %d, want 9", summary.Retailers)
		}
	})

	t.Run("error: entity count failure", func(t *testing.T) {
		store.EXPECT().CountVouchersByStatus(gomock.Any()).Return(map[string]int64{}, nil)
		store.EXPECT().CountEntities(gomock.Any()).Return(nil, errors.New("database error"))

		if _, err := q.Summary(ctx); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestPartnerQueries_Bundles(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := queriesmock.NewMockBundleCatalog(ctrl)
	q := queries.NewPartnerQueries(catalog)
	ctx := context.Background()

	t.Run("success: category selects the catalog", func(t *testing.T) {
		catalog.EXPECT().ListBundles(gomock.Any(), "airtime").Return([]partner.BundleProduct{{Name: "R10"}}, nil)

		bundles, err := q.Bundles(ctx, " Airtime ")
		if err != nil || len(bundles) != 1 {
			t.Fatalf("Bundles() = %v, %v", bundles, err)
		}
	})

	t.Run("error: unknown category", func(t *testing.T) {
		_, err := q.Bundles(ctx, "sms")
		if !errs.Is(err, queries.ErrInvalidRequest) {
			t.Fatalf("expected invalid request, got %v", err)
		}
	})

	t.Run("error: partner failure", func(t *testing.T) {
		catalog.EXPECT().ListBundles(gomock.Any(), "data").Return(nil, errors.New("502"))

		_, err := q.Bundles(ctx, "data")
		if !errs.Is(err, queries.ErrPartnerUnavailable) {
			t.Fatalf("expected partner unavailable, got %v", err)
		}
	})
}
