//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/pkg/config"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/shared"
	commandsmock "airvoucher-admin/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	mocks     *txMocks
	uow       *fakeUoW
	mockSheet *commandsmock.MockVoucherSheetReader
	cmds      commands.VoucherCommands
}

func (s *VoucherCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mocks = newTxMocks(s.mockCtrl)
	s.uow = &fakeUoW{tx: s.mocks.tx}
	s.mockSheet = commandsmock.NewMockVoucherSheetReader(s.mockCtrl)
	s.cmds = commands.NewVoucherCommands(s.uow, newFixedClock(), s.mockSheet, config.UploadConfig{MaxBytes: 1024, MaxRows: 10})
}

func (s *VoucherCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherCommandsSuite(t *testing.T) {
	suite.Run(t, new(VoucherCommandsTestSuite))
}

func validVoucherParams() voucher.NewVoucherParams {
	return voucher.NewVoucherParams{
		Name:         "MTN R10",
		Category:     "airtime",
		Vendor:       "MTN",
		SupplierName: "Flash",
		AmountCents:  1000,
	}
}

func (s *VoucherCommandsTestSuite) TestCreate() {
	s.Run("success: stores an active voucher", func() {
		var stored *voucher.Voucher
		s.mocks.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, v *voucher.Voucher) error {
				stored = v
				return nil
			})

		id, err := s.cmds.Create(s.ctx, validVoucherParams())
		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.Equal(id, stored.ID())
		s.Equal(voucher.StatusActive, stored.Status())
		s.Equal(int64(1000), stored.Amount().Cents())
		s.True(stored.CreatedAt().Equal(fixedNow))
	})

	s.Run("error: invalid params never reach the store", func() {
		p := validVoucherParams()
		p.AmountCents = 0

		_, err := s.cmds.Create(s.ctx, p)
		s.True(errs.Is(err, commands.ErrValidation))
	})

	s.Run("error: duplicate pin", func() {
		s.mocks.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert voucher", errors.New("unique"), infra.KindDuplicateKey))

		_, err := s.cmds.Create(s.ctx, validVoucherParams())
		s.True(errs.Is(err, commands.ErrEntityDuplicate))
		s.Equal("voucher already exists", err.Error())
	})
}

func (s *VoucherCommandsTestSuite) TestUpdateAndDelete() {
	id := uuid.New()

	s.Run("success: update keeps the id", func() {
		s.mocks.vouchers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, v *voucher.Voucher) error {
				s.Equal(id, v.ID())
				return nil
			})
		s.NoError(s.cmds.Update(s.ctx, id, validVoucherParams()))
	})

	s.Run("error: update of a missing voucher", func() {
		s.mocks.vouchers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound))
		s.True(errs.Is(s.cmds.Update(s.ctx, id, validVoucherParams()), commands.ErrEntityNotFound))
	})

	s.Run("error: delete of a missing voucher", func() {
		s.mocks.vouchers.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound))
		s.True(errs.Is(s.cmds.Delete(s.ctx, id), commands.ErrEntityNotFound))
	})
}

func (s *VoucherCommandsTestSuite) TestChangeStatus() {
	id := uuid.New()

	s.Run("success: active to sold is conditional on the read status", func() {
		s.mocks.reads.EXPECT().VoucherByID(gomock.Any(), id).Return(&shared.VoucherSnapshot{ID: id, Status: "active"}, nil)
		s.mocks.vouchers.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), id, voucher.StatusActive, voucher.StatusSold, fixedNow).Return(nil)

		s.NoError(s.cmds.ChangeStatus(s.ctx, id, "SOLD"))
	})

	s.Run("error: sold vouchers cannot move", func() {
		s.mocks.reads.EXPECT().VoucherByID(gomock.Any(), id).Return(&shared.VoucherSnapshot{ID: id, Status: "sold"}, nil)

		err := s.cmds.ChangeStatus(s.ctx, id, "expired")
		s.True(errs.Is(err, commands.ErrInvalidTransition))
		s.Contains(err.Error(), "from sold to expired")
	})

	s.Run("error: concurrent change", func() {
		s.mocks.reads.EXPECT().VoucherByID(gomock.Any(), id).Return(&shared.VoucherSnapshot{ID: id, Status: "active"}, nil)
		s.mocks.vouchers.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), id, voucher.StatusActive, voucher.StatusExpired, fixedNow).
			Return(infra.WrapRepoErr("status changed", nil, infra.KindConflict))

		s.True(errs.Is(s.cmds.ChangeStatus(s.ctx, id, "expired"), commands.ErrStatusConflict))
	})

	s.Run("error: unknown voucher", func() {
		s.mocks.reads.EXPECT().VoucherByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound))
		s.True(errs.Is(s.cmds.ChangeStatus(s.ctx, id, "sold"), commands.ErrVoucherNotFound))
	})

	s.Run("error: unknown status skips the transaction", func() {
		calls := s.uow.calls
		s.True(errs.Is(s.cmds.ChangeStatus(s.ctx, id, "redeemed"), commands.ErrValidation))
		s.Equal(calls, s.uow.calls)
	})
}

func uploadRows() []voucher.UploadRow {
	return []voucher.UploadRow{
		{Line: 2, Name: "MTN R10", Category: "airtime", Vendor: "MTN", SupplierName: "Flash", Amount: "10", PIN: "111", Serial: "S1"},
		{Line: 3, Name: "MTN R20", Category: "airtime", Vendor: "MTN", SupplierName: "Flash", Amount: "R20.00", PIN: "222", Serial: "S2"},
	}
}

func (s *VoucherCommandsTestSuite) TestUpload() {
	adminID := uuid.New()
	key := uuid.New()
	content := []byte("name,category\n")
	in := commands.UploadInput{AdminID: adminID, IdempotencyKey: key, Filename: "batch.csv", Content: content}

	s.Run("success: inserts every row and records the result", func() {
		s.mockSheet.EXPECT().ReadRows("batch.csv", gomock.Any(), 10).Return(uploadRows(), nil)
		s.mocks.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, adminID, gomock.Any(), gomock.Any(), fixedNow.Add(24*time.Hour)).
			Return(true, nil)
		s.mocks.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.mocks.idempotency.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), key, adminID, []byte(`{"inserted":2}`)).Return(nil)

		result, err := s.cmds.Upload(s.ctx, in)
		s.Require().NoError(err)
		s.Equal(2, result.Inserted)
		s.False(result.Replayed)
	})

	s.Run("success: same key and file replays the stored result", func() {
		var hash string
		s.mockSheet.EXPECT().ReadRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(uploadRows(), nil)
		s.mocks.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, adminID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, requestHash string, _ any) (bool, error) {
				hash = requestHash
				return false, nil
			})
		s.mocks.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, adminID).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				stored, _ := json.Marshal(commands.UploadResult{Inserted: 7})
				return &shared.IdempotencyRecord{
					Endpoint:    "POST /api/vouchers/upload",
					Status:      shared.IdempotencyStatusCompleted,
					RequestHash: hash,
					Result:      stored,
				}, nil
			})

		result, err := s.cmds.Upload(s.ctx, in)
		s.Require().NoError(err)
		s.Equal(7, result.Inserted)
		s.True(result.Replayed)
	})

	s.Run("error: same key with another file", func() {
		s.mockSheet.EXPECT().ReadRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(uploadRows(), nil)
		s.mocks.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, adminID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.mocks.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, adminID).Return(&shared.IdempotencyRecord{
			Endpoint:    "POST /api/vouchers/upload",
			Status:      shared.IdempotencyStatusCompleted,
			RequestHash: "someone-else",
		}, nil)

		_, err := s.cmds.Upload(s.ctx, in)
		s.True(errs.Is(err, commands.ErrIdempotencyKeyReused))
	})

	s.Run("error: first request still running", func() {
		var hash string
		s.mockSheet.EXPECT().ReadRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(uploadRows(), nil)
		s.mocks.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, adminID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, requestHash string, _ any) (bool, error) {
				hash = requestHash
				return false, nil
			})
		s.mocks.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, adminID).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Endpoint:    "POST /api/vouchers/upload",
					Status:      shared.IdempotencyStatusProcessing,
					RequestHash: hash,
				}, nil
			})

		_, err := s.cmds.Upload(s.ctx, in)
		s.True(errs.Is(err, commands.ErrIdempotencyInProgress))
	})

	s.Run("error: invalid rows reject the whole file before the transaction", func() {
		rows := uploadRows()
		rows[0].Amount = "ten"
		rows[1].Name = ""
		s.mockSheet.EXPECT().ReadRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)
		calls := s.uow.calls

		_, err := s.cmds.Upload(s.ctx, in)
		s.Require().True(errs.Is(err, commands.ErrUploadRejected))
		var rowErrs *commands.RowErrors
		s.Require().True(errs.As(err, &rowErrs))
		s.Len(rowErrs.Rows, 2)
		s.Equal(2, rowErrs.Rows[0].Line)
		s.Equal(3, rowErrs.Rows[1].Line)
		s.Equal(calls, s.uow.calls)
	})

	s.Run("error: a failed insert aborts the upload", func() {
		s.mockSheet.EXPECT().ReadRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(uploadRows(), nil)
		s.mocks.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.mocks.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mocks.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert voucher", errors.New("unique"), infra.KindDuplicateKey))

		_, err := s.cmds.Upload(s.ctx, in)
		s.True(errs.Is(err, commands.ErrEntityDuplicate))
	})

	s.Run("error: empty, oversized and row-less files", func() {
		_, err := s.cmds.Upload(s.ctx, commands.UploadInput{AdminID: adminID, IdempotencyKey: key, Filename: "a.csv"})
		s.True(errs.Is(err, commands.ErrMalformedUpload))

		big := make([]byte, 2048)
		_, err = s.cmds.Upload(s.ctx, commands.UploadInput{AdminID: adminID, IdempotencyKey: key, Filename: "a.csv", Content: big})
		s.True(errs.Is(err, commands.ErrUploadTooLarge))

		s.mockSheet.EXPECT().ReadRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		_, err = s.cmds.Upload(s.ctx, in)
		s.True(errs.Is(err, commands.ErrMalformedUpload))
	})

	s.Run("error: reader errors pass through", func() {
		s.mockSheet.EXPECT().ReadRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrUnsupportedUpload)

		_, err := s.cmds.Upload(s.ctx, commands.UploadInput{AdminID: adminID, IdempotencyKey: key, Filename: "a.pdf", Content: content})
		s.True(errs.Is(err, commands.ErrUnsupportedUpload))
	})
}
