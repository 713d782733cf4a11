package commands

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/commands/voucher.go -package=commandsmock

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/pkg/clock"
	"airvoucher-admin/internal/pkg/config"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	uploadEndpoint = "POST /api/vouchers/upload"
	idempotencyTTL = 24 * time.Hour
)

// VoucherSheetReader decodes an uploaded .csv or .xlsx into rows keyed by header name.
type VoucherSheetReader interface {
	ReadRows(filename string, r io.Reader, maxRows int) ([]voucher.UploadRow, error)
}

type UploadInput struct {
	AdminID        uuid.UUID
	IdempotencyKey uuid.UUID
	Filename       string
	Content        []byte
}

type UploadResult struct {
	Inserted int  `json:"inserted"`
	Replayed bool `json:"-"`
}

type VoucherCommands interface {
	Create(ctx context.Context, params voucher.NewVoucherParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params voucher.NewVoucherParams) error
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)
}

type voucherCommandsImpl struct {
	*entityCommandsImpl[voucher.Voucher, voucher.NewVoucherParams]
	uow    shared.UnitOfWork
	clock  clock.Clock
	sheets VoucherSheetReader
	limits config.UploadConfig
}

func NewVoucherCommands(uow shared.UnitOfWork, clk clock.Clock, sheets VoucherSheetReader, limits config.UploadConfig) VoucherCommands {
	return &voucherCommandsImpl{
		entityCommandsImpl: newEntityCommands[voucher.Voucher, voucher.NewVoucherParams](uow, clk, "voucher",
			func(tx shared.Tx) shared.EntityRepository[voucher.Voucher] { return tx.Vouchers() },
			func(id uuid.UUID, p voucher.NewVoucherParams, now time.Time) (*voucher.Voucher, error) {
				p.ID = id
				return voucher.NewVoucher(p, now)
			},
		),
		uow:    uow,
		clock:  clk,
		sheets: sheets,
		limits: limits,
	}
}

func (c *voucherCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string) error {
	next, err := voucher.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VoucherByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVoucherNotFound
			}
			return err
		}

		current := voucher.Status(snap.Status)
		if !current.CanTransitionTo(next) {
			return errs.WithMessage(ErrInvalidTransition,
				"cannot change voucher status from %s to %s", current, next)
		}

		err = tx.Vouchers().UpdateStatus(ctx, tx.DB(), id, current, next, c.clock.Now())
		if infra.IsKind(err, infra.KindConflict) {
			return ErrStatusConflict
		}
		return err
	})
}

// Upload inserts every row of the file or none of them. A repeated key with the same
// file replays the first result; the same key with another file is rejected.
func (c *voucherCommandsImpl) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if len(in.Content) == 0 {
		return nil, errs.WithMessage(ErrMalformedUpload, "uploaded file is empty")
	}
	if c.limits.MaxBytes > 0 && int64(len(in.Content)) > c.limits.MaxBytes {
		return nil, errs.WithMessage(ErrUploadTooLarge, "uploaded file exceeds %d bytes", c.limits.MaxBytes)
	}

	rows, err := c.sheets.ReadRows(in.Filename, bytes.NewReader(in.Content), c.limits.MaxRows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.WithMessage(ErrMalformedUpload, "uploaded file has no voucher rows")
	}

	now := c.clock.Now()
	vouchers, rowErrs := voucher.ConvertRows(rows, now)
	if len(rowErrs) > 0 {
		return nil, errs.Mark(&RowErrors{Rows: rowErrs}, ErrUploadRejected)
	}

	requestHash := hashContent(in.Content)
	var result UploadResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owned, err := tx.Idempotency().TryInsert(ctx, tx.DB(), in.IdempotencyKey, in.AdminID, uploadEndpoint, requestHash, now.Add(idempotencyTTL))
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if !owned {
			return c.replay(ctx, tx, in, requestHash, &result)
		}

		for _, v := range vouchers {
			if err := tx.Vouchers().Create(ctx, tx.DB(), v); err != nil {
				return classifyWriteErr(err, "voucher")
			}
		}

		result = UploadResult{Inserted: len(vouchers)}
		payload, err := json.Marshal(result)
		if err != nil {
			return err
		}
		return tx.Idempotency().MarkCompleted(ctx, tx.DB(), in.IdempotencyKey, in.AdminID, payload)
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		slog.InfoContext(ctx, "Voucher upload stored",
			slog.String("admin_id", in.AdminID.String()),
			slog.String("file", in.Filename),
			slog.Int("inserted", result.Inserted))
	}
	return &result, nil
}

func (c *voucherCommandsImpl) replay(ctx context.Context, tx shared.Tx, in UploadInput, requestHash string, out *UploadResult) error {
	existing, err := tx.Reads().IdempotencyByKey(ctx, in.IdempotencyKey, in.AdminID)
	if err != nil {
		return errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.RequestHash != requestHash || existing.Endpoint != uploadEndpoint {
		return ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if err := json.Unmarshal(existing.Result, out); err != nil {
			return errs.Wrap(err, "failed to decode stored upload result")
		}
		out.Replayed = true
		return nil
	case shared.IdempotencyStatusProcessing:
		return ErrIdempotencyInProgress
	default:
		return errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func hashContent(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
