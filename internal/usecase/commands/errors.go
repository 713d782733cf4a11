package commands

import (
	"fmt"
	"strings"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrValidation             = errs.New("validation failed")
	ErrEntityNotFound         = errs.New("entity not found")
	ErrEntityDuplicate        = errs.New("entity already exists")
	ErrEntityReference        = errs.New("entity reference violated")
	ErrVoucherNotFound        = errs.New("voucher not found")
	ErrInvalidTransition      = errs.New("invalid voucher status transition")
	ErrStatusConflict         = errs.New("voucher status changed concurrently")
	ErrUnknownRetailers       = errs.New("unknown retailers")
	ErrUploadRejected         = errs.New("upload rejected")
	ErrUnsupportedUpload      = errs.New("unsupported upload format")
	ErrMalformedUpload        = errs.New("malformed upload")
	ErrUploadTooLarge         = errs.New("upload too large")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrPartnerUnavailable     = errs.New("partner api unavailable")
)

// RowErrors carries every invalid upload row; marked with ErrUploadRejected.
type RowErrors struct {
	Rows []voucher.RowError
}

func (e *RowErrors) Error() string {
	return fmt.Sprintf("%d invalid rows", len(e.Rows))
}

// MissingRetailersError lists assignment ids with no retailer behind them.
type MissingRetailersError struct {
	IDs []uuid.UUID
}

func (e *MissingRetailersError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = id.String()
	}
	return "unknown retailers: " + strings.Join(ids, ", ")
}

// classifyWriteErr turns repository kinds into the sentinels handlers map to status codes.
func classifyWriteErr(err error, entity string) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.WithMessage(ErrEntityNotFound, "%s not found", entity)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.WithMessage(ErrEntityDuplicate, "%s already exists", entity)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithMessage(ErrEntityReference, "%s references a missing record or is still in use", entity)
	default:
		return err
	}
}
