//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/domain/supplier"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/repository"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/tests/common/builder"
	repositorymock "airvoucher-admin/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Admin Repository Tests
// =============================================================================

func TestAdminRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: admin created"},
		{name: "error: email already taken", dbErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAdminWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAdminRepository(mockQueries, mockDB)

			domainAdmin, err := builder.NewAdminBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateAdmin(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAdminParams) error {
					assert.Equal(t, "admin@example.com", arg.Email)
					assert.Equal(t, "admin", arg.Role)
					assert.False(t, arg.Phone.Valid)
					return tc.dbErr
				})

			actualError := repo.Create(ctx, mockDB, domainAdmin)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestAdminRepository_ReplaceRetailers(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("clears then inserts the new set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAdminWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAdminRepository(mockQueries, mockDB)
		retailerIDs := []uuid.UUID{uuid.New(), uuid.New()}

		gomock.InOrder(
			mockQueries.EXPECT().DeleteAdminRetailers(ctx, mockDB, adminID).Return(nil),
			mockQueries.EXPECT().InsertAdminRetailers(ctx, mockDB, sqlc.InsertAdminRetailersParams{
				AdminID:     adminID,
				RetailerIds: retailerIDs,
			}).Return(nil),
		)

		assert.NoError(t, repo.ReplaceRetailers(ctx, mockDB, adminID, retailerIDs))
	})

	t.Run("empty set only clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAdminWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAdminRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteAdminRetailers(ctx, mockDB, adminID).Return(nil)

		assert.NoError(t, repo.ReplaceRetailers(ctx, mockDB, adminID, nil))
	})

	t.Run("retailer removed concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAdminWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAdminRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteAdminRetailers(ctx, mockDB, adminID).Return(nil)
		mockQueries.EXPECT().InsertAdminRetailers(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

		err := repo.ReplaceRetailers(ctx, mockDB, adminID, []uuid.UUID{uuid.New()})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

// =============================================================================
// Retailer / Supplier Repository Tests
// =============================================================================

func TestRetailerRepository_Update(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()

	ret, err := retailer.NewRetailer(uuid.New(), retailer.Params{
		Name:              "Corner Spaza",
		Email:             "spaza@example.com",
		IsActive:          true,
		CommissionGroupID: &groupID,
	}, time.Now())
	require.NoError(t, err)

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: retailer updated", rows: 1},
		{name: "error: retailer not found", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: unknown commission group", dbErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRetailerWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRetailerRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateRetailer(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateRetailerParams) (int64, error) {
					assert.Equal(t, ret.ID(), arg.ID)
					assert.Equal(t, groupID, uuid.UUID(arg.CommissionGroupID.Bytes))
					return tc.rows, tc.dbErr
				})

			actualError := repo.Update(ctx, mockDB, ret)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestSupplierRepository_Delete(t *testing.T) {
	ctx := context.Background()
	supplierID := uuid.New()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: supplier deleted", rows: 1},
		{name: "error: supplier not found", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: still referenced by group vouchers", dbErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSupplierWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSupplierRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteSupplier(ctx, mockDB, supplierID).Return(tc.rows, tc.dbErr)

			actualError := repo.Delete(ctx, mockDB, supplierID)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestSupplierRepository_Create(t *testing.T) {
	ctx := context.Background()
	catalog := "mobile_data"

	s, err := supplier.NewSupplier(uuid.New(), supplier.Params{
		Name:     "Glocell",
		Kind:     "aggregator",
		Catalog:  &catalog,
		IsActive: true,
	}, time.Now())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockSupplierWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSupplierRepository(mockQueries, mockDB)

	mockQueries.EXPECT().CreateSupplier(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSupplierParams) error {
			assert.Equal(t, "aggregator", arg.Kind)
			assert.Equal(t, "mobile_data", arg.Catalog.String)
			assert.True(t, arg.Catalog.Valid)
			assert.False(t, arg.ContactEmail.Valid)
			return nil
		})

	assert.NoError(t, repo.Create(ctx, mockDB, s))
}

// =============================================================================
// Commission Group Repository Tests
// =============================================================================

func TestCommissionGroupRepository_AddVoucher(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	amount := int64(2900)

	gv, err := commissiongroup.NewGroupVoucher(groupID, commissiongroup.GroupVoucherParams{
		SupplierID:            uuid.New(),
		Name:                  "Vodacom R29",
		Vendor:                "vodacom",
		Category:              "airtime",
		AmountCents:           &amount,
		RetailerCommissionPct: decimal.RequireFromString("2.5"),
		AgentCommissionPct:    decimal.RequireFromString("1"),
	}, time.Now())
	require.NoError(t, err)

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: voucher attached"},
		{name: "error: same product twice", dbErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: unknown group or supplier", dbErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCommissionGroupWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCommissionGroupRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CreateCommissionGroupVoucher(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCommissionGroupVoucherParams) error {
					assert.Equal(t, groupID, arg.CommissionGroupID)
					assert.Equal(t, "VODACOM", arg.Vendor)
					assert.Equal(t, int64(2900), arg.AmountCents.Int64)
					return tc.dbErr
				})

			actualError := repo.AddVoucher(ctx, mockDB, gv)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestCommissionGroupRepository_RemoveVoucher(t *testing.T) {
	ctx := context.Background()
	groupID, voucherID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockCommissionGroupWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCommissionGroupRepository(mockQueries, mockDB)

	mockQueries.EXPECT().DeleteCommissionGroupVoucher(ctx, mockDB, sqlc.DeleteCommissionGroupVoucherParams{
		ID:                voucherID,
		CommissionGroupID: groupID,
	}).Return(int64(0), nil)

	err := repo.RemoveVoucher(ctx, mockDB, groupID, voucherID)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// Idempotency Repository Tests
// =============================================================================

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key, adminID := uuid.New(), uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)

	testCases := []struct {
		name      string
		rows      int64
		dbErr     error
		wantOwned bool
		wantErr   bool
	}{
		{name: "fresh key is owned", rows: 1, wantOwned: true},
		{name: "live key held by an earlier request", rows: 0, wantOwned: false},
		{name: "database error", dbErr: errors.New("database connection error"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, adminID, arg.AdminID)
					assert.Equal(t, "POST /api/vouchers/upload", arg.Endpoint)
					return tc.rows, tc.dbErr
				})

			owned, err := repo.TryInsert(ctx, mockDB, key, adminID, "POST /api/vouchers/upload", "hash", expiresAt)

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOwned, owned)
		})
	}
}

func TestIdempotencyRepository_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

	mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, mockDB).Return(int64(4), nil)

	count, err := repo.PurgeExpired(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
