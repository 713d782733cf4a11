package readstore

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/readstore/voucher.go -package=readstoremock

import (
	"context"
	"strings"
	"time"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/infra"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherReadQueries interface {
	CountVouchersByAmountAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.CountVouchersByAmountAndStatusParams) ([]sqlc.CountVouchersByAmountAndStatusRow, error)
	GetFirstActiveVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.GetFirstActiveVoucherParams) (sqlc.Vouchers, error)
	GetVoucherByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vouchers, error)
	ListVouchersFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersFirstPageParams) ([]sqlc.Vouchers, error)
	ListVouchersKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersKeysetParams) ([]sqlc.Vouchers, error)
	ListVouchersForExport(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersForExportParams) ([]sqlc.Vouchers, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      sqlc.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db sqlc.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) CountByAmountAndStatus(ctx context.Context, filter voucher.Filter) ([]voucher.AmountStatusCount, error) {
	rows, err := r.queries.CountVouchersByAmountAndStatus(ctx, r.db, sqlc.CountVouchersByAmountAndStatusParams{
		Vendor:       exactPattern(filter.Vendor),
		Category:     exactPattern(filter.Category),
		SupplierName: exactPattern(filter.SupplierName),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count vouchers by amount and status", err)
	}

	counts := make([]voucher.AmountStatusCount, len(rows))
	for i, row := range rows {
		counts[i] = voucher.AmountStatusCount{
			AmountCents: row.AmountCents,
			Status:      voucher.Status(row.Status),
			Count:       row.VoucherCount,
		}
	}
	return counts, nil
}

func (r *VoucherReadStore) FindFirstActive(ctx context.Context, filter voucher.Filter, amountCents int64) (*queries.VoucherView, error) {
	row, err := r.queries.GetFirstActiveVoucher(ctx, r.db, sqlc.GetFirstActiveVoucherParams{
		AmountCents:  amountCents,
		Vendor:       exactPattern(filter.Vendor),
		Category:     exactPattern(filter.Category),
		SupplierName: exactPattern(filter.SupplierName),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active voucher", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get first active voucher", err)
	}
	return toVoucherView(row), nil
}

func (r *VoucherReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VoucherView, error) {
	row, err := r.queries.GetVoucherByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get voucher by id", err)
	}
	return toVoucherView(row), nil
}

func (r *VoucherReadStore) ListFirstPage(ctx context.Context, filter queries.VoucherListFilter, limit int32) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchersFirstPage(ctx, r.db, sqlc.ListVouchersFirstPageParams{
		Status:       pgconv.StringPtrToPgtype(filter.Status),
		Vendor:       exactPattern(filter.Vendor),
		SupplierName: exactPattern(filter.SupplierName),
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers first page", err)
	}
	return toVoucherViews(rows), nil
}

func (r *VoucherReadStore) ListKeyset(ctx context.Context, filter queries.VoucherListFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchersKeyset(ctx, r.db, sqlc.ListVouchersKeysetParams{
		Status:       pgconv.StringPtrToPgtype(filter.Status),
		Vendor:       exactPattern(filter.Vendor),
		SupplierName: exactPattern(filter.SupplierName),
		CreatedAt:    pgconv.TimeToPgtype(lastCreatedAt),
		ID:           lastID,
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers keyset", err)
	}
	return toVoucherViews(rows), nil
}

func (r *VoucherReadStore) ListForExport(ctx context.Context, filter queries.VoucherListFilter) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchersForExport(ctx, r.db, sqlc.ListVouchersForExportParams{
		Status:       pgconv.StringPtrToPgtype(filter.Status),
		Vendor:       exactPattern(filter.Vendor),
		SupplierName: exactPattern(filter.SupplierName),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers for export", err)
	}
	return toVoucherViews(rows), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// exactPattern turns a filter value into an ILIKE pattern with no wildcards,
// which makes the match a case-insensitive equality.
func exactPattern(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: likeEscaper.Replace(*s), Valid: true}
}

func toVoucherView(row sqlc.Vouchers) *queries.VoucherView {
	return &queries.VoucherView{
		ID:                row.ID,
		Name:              row.Name,
		Category:          row.Category,
		Vendor:            row.Vendor,
		SupplierName:      row.SupplierName,
		AmountCents:       row.AmountCents,
		Status:            row.Status,
		PIN:               pgconv.StringPtrFromPgtype(row.Pin),
		Serial:            pgconv.StringPtrFromPgtype(row.Serial),
		CommissionGroupID: pgconv.UUIDPtrFromPgtype(row.CommissionGroupID),
		ExpiresAt:         pgconv.TimePtrFromDate(row.ExpiresAt),
		SoldAt:            pgconv.TimePtrFromPgtype(row.SoldAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toVoucherViews(rows []sqlc.Vouchers) []*queries.VoucherView {
	views := make([]*queries.VoucherView, len(rows))
	for i, row := range rows {
		views[i] = toVoucherView(row)
	}
	return views
}
