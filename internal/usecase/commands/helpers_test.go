//go:build unit

package commands_test

import (
	"context"
	"time"

	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/clock"
	"airvoucher-admin/internal/usecase/shared"
	sharedmock "airvoucher-admin/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

// fakeUoW runs every callback inline against the same mocked transaction.
type fakeUoW struct {
	tx    shared.Tx
	calls int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.calls++
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.Reads()
}

type txMocks struct {
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	vouchers    *sharedmock.MockVoucherRepository
	admins      *sharedmock.MockAdminRepository
	retailers   *sharedmock.MockRetailerRepository
	suppliers   *sharedmock.MockSupplierRepository
	groups      *sharedmock.MockCommissionGroupRepository
	idempotency *sharedmock.MockIdempotencyRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		vouchers:    sharedmock.NewMockVoucherRepository(ctrl),
		admins:      sharedmock.NewMockAdminRepository(ctrl),
		retailers:   sharedmock.NewMockRetailerRepository(ctrl),
		suppliers:   sharedmock.NewMockSupplierRepository(ctrl),
		groups:      sharedmock.NewMockCommissionGroupRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Vouchers().Return(m.vouchers).AnyTimes()
	m.tx.EXPECT().Admins().Return(m.admins).AnyTimes()
	m.tx.EXPECT().Retailers().Return(m.retailers).AnyTimes()
	m.tx.EXPECT().Suppliers().Return(m.suppliers).AnyTimes()
	m.tx.EXPECT().CommissionGroups().Return(m.groups).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	return m
}

func newFixedClock() clock.Clock {
	return clock.NewMockClock(fixedNow)
}
