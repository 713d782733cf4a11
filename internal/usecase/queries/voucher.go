package queries

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/queries/voucher.go -package=queriesmock

import (
	"context"
	"io"
	"log/slog"
	"time"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/pkg/money"

	"github.com/google/uuid"
)

const availabilityUnavailableMessage = "Voucher availability could not be loaded. Please try again."

type VoucherReadStore interface {
	CountByAmountAndStatus(ctx context.Context, filter voucher.Filter) ([]voucher.AmountStatusCount, error)
	FindFirstActive(ctx context.Context, filter voucher.Filter, amountCents int64) (*VoucherView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VoucherView, error)
	ListFirstPage(ctx context.Context, filter VoucherListFilter, limit int32) ([]*VoucherView, error)
	ListKeyset(ctx context.Context, filter VoucherListFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*VoucherView, error)
	ListForExport(ctx context.Context, filter VoucherListFilter) ([]*VoucherView, error)
}

// VoucherSheetWriter renders an inventory export.
type VoucherSheetWriter interface {
	WriteVouchers(w io.Writer, vouchers []*VoucherView) error
}

type VoucherQueries interface {
	Availability(ctx context.Context, provider, service string) (*AvailabilityResult, error)
	Pick(ctx context.Context, params PickParams) (*PickedVoucher, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VoucherView, error)
	List(ctx context.Context, filter VoucherListFilter, cursor *Cursor, limit int) ([]*VoucherView, *Cursor, error)
	Export(ctx context.Context, filter VoucherListFilter, w io.Writer) error
}

type voucherQueriesImpl struct {
	store  VoucherReadStore
	sheets VoucherSheetWriter
}

func NewVoucherQueries(store VoucherReadStore, sheets VoucherSheetWriter) VoucherQueries {
	return &voucherQueriesImpl{store: store, sheets: sheets}
}

// Availability never fails on a store error: the whole grid comes back zeroed and flagged.
func (q *voucherQueriesImpl) Availability(ctx context.Context, provider, service string) (*AvailabilityResult, error) {
	filter, err := voucher.NewFilter(provider, service)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	result := &AvailabilityResult{Provider: provider, Service: service}

	counts, err := q.store.CountByAmountAndStatus(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load voucher availability",
			slog.String("filter", filter.Describe()),
			slog.Any("error", err))
		result.Items = voucher.EmptyAvailability(voucher.StandardDenominations)
		result.Unavailable = true
		result.Message = availabilityUnavailableMessage
		return result, nil
	}

	result.Items = voucher.Aggregate(voucher.StandardDenominations, counts)
	return result, nil
}

// Pick returns the oldest active voucher for the amount without claiming it.
func (q *voucherQueriesImpl) Pick(ctx context.Context, params PickParams) (*PickedVoucher, error) {
	filter, err := voucher.NewFilter(params.Provider, params.Service)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	cents, err := money.ParseRand(params.Amount)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	v, err := q.store.FindFirstActive(ctx, filter, cents)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithMessage(ErrNoVoucherAvailable,
				"no vouchers available for %s %s", money.FormatRand(cents), describePick(filter, params.Service))
		}
		return nil, err
	}
	return &PickedVoucher{Voucher: v, External: false}, nil
}

// describePick keeps the requested service in the message even when it did not narrow the filter.
func describePick(filter voucher.Filter, service string) string {
	desc := filter.Describe()
	if filter.Category == nil && service != "" {
		desc += " " + service
	}
	return desc
}

func (q *voucherQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VoucherView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *voucherQueriesImpl) List(ctx context.Context, filter VoucherListFilter, cursor *Cursor, limit int) ([]*VoucherView, *Cursor, error) {
	filter, err := normalizeListFilter(filter)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*VoucherView
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, filter, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, filter, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *voucherQueriesImpl) Export(ctx context.Context, filter VoucherListFilter, w io.Writer) error {
	filter, err := normalizeListFilter(filter)
	if err != nil {
		return err
	}
	rows, err := q.store.ListForExport(ctx, filter)
	if err != nil {
		return err
	}
	return q.sheets.WriteVouchers(w, rows)
}

func normalizeListFilter(filter VoucherListFilter) (VoucherListFilter, error) {
	if filter.Status == nil {
		return filter, nil
	}
	status, err := voucher.NewStatus(*filter.Status)
	if err != nil {
		return filter, errs.Mark(err, ErrInvalidRequest)
	}
	s := status.String()
	filter.Status = &s
	return filter, nil
}
