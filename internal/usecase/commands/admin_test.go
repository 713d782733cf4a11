//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/partner"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/shared"
	commandsmock "airvoucher-admin/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminCommands_AssignRetailers(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	r1, r2, r3 := uuid.New(), uuid.New(), uuid.New()

	setup := func(t *testing.T) (*txMocks, commands.AdminCommands) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		return m, commands.NewAdminCommands(&fakeUoW{tx: m.tx}, newFixedClock())
	}

	t.Run("success: duplicates collapse before replacing", func(t *testing.T) {
		m, cmds := setup(t)
		m.reads.EXPECT().AdminByID(gomock.Any(), adminID).Return(&shared.AdminSnapshot{ID: adminID}, nil)
		m.reads.EXPECT().ExistingRetailerIDs(gomock.Any(), []uuid.UUID{r1, r2}).Return([]uuid.UUID{r2, r1}, nil)
		m.admins.EXPECT().ReplaceRetailers(gomock.Any(), gomock.Any(), adminID, []uuid.UUID{r1, r2}).Return(nil)

		require.NoError(t, cmds.AssignRetailers(ctx, adminID, []uuid.UUID{r1, r2, r1}))
	})

	t.Run("success: empty list clears assignments", func(t *testing.T) {
		m, cmds := setup(t)
		m.reads.EXPECT().AdminByID(gomock.Any(), adminID).Return(&shared.AdminSnapshot{ID: adminID}, nil)
		m.admins.EXPECT().ReplaceRetailers(gomock.Any(), gomock.Any(), adminID, []uuid.UUID{}).Return(nil)

		require.NoError(t, cmds.AssignRetailers(ctx, adminID, nil))
	})

	t.Run("error: unknown retailers are listed and nothing is written", func(t *testing.T) {
		m, cmds := setup(t)
		m.reads.EXPECT().AdminByID(gomock.Any(), adminID).Return(&shared.AdminSnapshot{ID: adminID}, nil)
		m.reads.EXPECT().ExistingRetailerIDs(gomock.Any(), gomock.Any()).Return([]uuid.UUID{r2}, nil)

		err := cmds.AssignRetailers(ctx, adminID, []uuid.UUID{r1, r2, r3})
		require.True(t, errs.Is(err, commands.ErrUnknownRetailers))
		var missing *commands.MissingRetailersError
		require.True(t, errs.As(err, &missing))
		assert.Equal(t, []uuid.UUID{r1, r3}, missing.IDs)
	})

	t.Run("error: unknown admin", func(t *testing.T) {
		m, cmds := setup(t)
		m.reads.EXPECT().AdminByID(gomock.Any(), adminID).
			Return(nil, infra.WrapRepoErr("admin not found", nil, infra.KindNotFound))

		err := cmds.AssignRetailers(ctx, adminID, []uuid.UUID{r1})
		assert.True(t, errs.Is(err, commands.ErrEntityNotFound))
	})
}

func TestAdminCommands_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	cmds := commands.NewAdminCommands(&fakeUoW{tx: m.tx}, newFixedClock())

	t.Run("error: bad role is a validation error", func(t *testing.T) {
		_, err := cmds.Create(ctx, admin.Params{Name: "Thandi", Email: "thandi@example.com", Role: "owner", IsActive: true})
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("error: email taken", func(t *testing.T) {
		m.admins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert admin", errors.New("unique"), infra.KindDuplicateKey))

		_, err := cmds.Create(ctx, admin.Params{Name: "Thandi", Email: "thandi@example.com", Role: "admin", IsActive: true})
		assert.True(t, errs.Is(err, commands.ErrEntityDuplicate))
		assert.Equal(t, "admin already exists", err.Error())
	})
}

func TestRetailerCommands_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	cmds := commands.NewRetailerCommands(&fakeUoW{tx: m.tx}, newFixedClock())
	id := uuid.New()

	m.retailers.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
		Return(infra.WrapRepoErr("delete retailer", errors.New("fk"), infra.KindForeignKeyViolated))

	err := cmds.Delete(ctx, id)
	assert.True(t, errs.Is(err, commands.ErrEntityReference))
}

func TestRetailerCommands_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	cmds := commands.NewRetailerCommands(&fakeUoW{tx: m.tx}, newFixedClock())

	var stored *retailer.Retailer
	m.retailers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, r *retailer.Retailer) error {
			stored = r
			return nil
		})

	id, err := cmds.Create(ctx, retailer.Params{Name: "Spaza 24", Email: "owner@spaza.co.za", IsActive: true})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, id, stored.ID())
}

func TestCommissionGroupCommands_AddVoucher(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	params := commissiongroup.GroupVoucherParams{
		SupplierID:            uuid.New(),
		Name:                  "1GB",
		Vendor:                "mtn",
		Category:              "data",
		RetailerCommissionPct: decimal.RequireFromString("3.5"),
		AgentCommissionPct:    decimal.RequireFromString("1"),
	}

	setup := func(t *testing.T) (*txMocks, commands.CommissionGroupCommands) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		return m, commands.NewCommissionGroupCommands(&fakeUoW{tx: m.tx}, newFixedClock())
	}

	t.Run("success: vendor is normalised", func(t *testing.T) {
		m, cmds := setup(t)
		m.groups.EXPECT().AddVoucher(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, gv *commissiongroup.GroupVoucher) error {
				assert.Equal(t, groupID, gv.GroupID())
				assert.Equal(t, "MTN", gv.Vendor())
				return nil
			})

		id, err := cmds.AddVoucher(ctx, groupID, params)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("error: already attached names the voucher", func(t *testing.T) {
		m, cmds := setup(t)
		m.groups.EXPECT().AddVoucher(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert group voucher", errors.New("unique"), infra.KindDuplicateKey))

		_, err := cmds.AddVoucher(ctx, groupID, params)
		require.True(t, errs.Is(err, commands.ErrEntityDuplicate))
		assert.Contains(t, err.Error(), `"1GB" from MTN`)
	})

	t.Run("error: missing group or supplier", func(t *testing.T) {
		m, cmds := setup(t)
		m.groups.EXPECT().AddVoucher(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert group voucher", errors.New("fk"), infra.KindForeignKeyViolated))

		_, err := cmds.AddVoucher(ctx, groupID, params)
		assert.True(t, errs.Is(err, commands.ErrEntityReference))
	})

	t.Run("error: commission over 100", func(t *testing.T) {
		_, cmds := setup(t)
		bad := params
		bad.AgentCommissionPct = decimal.RequireFromString("101")

		_, err := cmds.AddVoucher(ctx, groupID, bad)
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("error: removing an unattached voucher", func(t *testing.T) {
		m, cmds := setup(t)
		voucherID := uuid.New()
		m.groups.EXPECT().RemoveVoucher(gomock.Any(), gomock.Any(), groupID, voucherID).
			Return(infra.WrapRepoErr("group voucher not found", nil, infra.KindNotFound))

		err := cmds.RemoveVoucher(ctx, groupID, voucherID)
		assert.True(t, errs.Is(err, commands.ErrEntityNotFound))
	})
}

func TestPartnerCommands_RequestVoucher(t *testing.T) {
	ctx := context.Background()

	t.Run("success: value is sent as exact rand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		issuer := commandsmock.NewMockVoucherIssuer(ctrl)
		cmds := commands.NewPartnerCommands(issuer)

		issuer.EXPECT().RequestVoucher(gomock.Any(), gomock.Any(), "MTN").
			DoAndReturn(func(_ context.Context, value decimal.Decimal, _ string) (*partner.Voucher, error) {
				assert.True(t, value.Equal(decimal.RequireFromString("29.5")))
				return &partner.Voucher{PIN: "9876", Amount: value, Provider: "MTN"}, nil
			})

		result, err := cmds.RequestVoucher(ctx, "R29.50", " MTN ")
		require.NoError(t, err)
		assert.True(t, result.External)
		assert.Equal(t, "9876", result.Voucher.PIN)
	})

	t.Run("error: validation happens before calling the partner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commands.NewPartnerCommands(commandsmock.NewMockVoucherIssuer(ctrl))

		_, err := cmds.RequestVoucher(ctx, "10", "")
		assert.True(t, errs.Is(err, commands.ErrValidation))
		_, err = cmds.RequestVoucher(ctx, "-5", "MTN")
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("error: partner failure is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		issuer := commandsmock.NewMockVoucherIssuer(ctrl)
		cmds := commands.NewPartnerCommands(issuer)
		issuer.EXPECT().RequestVoucher(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &partner.APIError{StatusCode: 503, Body: "down"})

		_, err := cmds.RequestVoucher(ctx, "10", "Vodacom")
		assert.True(t, errs.Is(err, commands.ErrPartnerUnavailable))
	})
}

func TestMaintenanceCommands_PurgeExpiredIdempotencyKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	cmds := commands.NewMaintenanceCommands(&fakeUoW{tx: m.tx})

	m.idempotency.EXPECT().PurgeExpired(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	n, err := cmds.PurgeExpiredIdempotencyKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
