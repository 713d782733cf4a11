package readstore

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/readstore/dashboard.go -package=readstoremock

import (
	"context"

	"airvoucher-admin/internal/infra"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/usecase/queries"
)

type DashboardReadQueries interface {
	CountVouchersByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountVouchersByStatusRow, error)
	GetEntityCounts(ctx context.Context, db sqlc.DBTX) (sqlc.GetEntityCountsRow, error)
}

type DashboardReadStore struct {
	queries DashboardReadQueries
	db      sqlc.DBTX
}

func NewDashboardReadStore(queries DashboardReadQueries, db sqlc.DBTX) *DashboardReadStore {
	return &DashboardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DashboardReadStore) CountVouchersByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.queries.CountVouchersByStatus(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count vouchers by status", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.VoucherCount
	}
	return counts, nil
}

func (r *DashboardReadStore) CountEntities(ctx context.Context) (*queries.EntityCounts, error) {
	row, err := r.queries.GetEntityCounts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count entities", err)
	}
	return &queries.EntityCounts{
		Admins:           row.AdminCount,
		Retailers:        row.RetailerCount,
		Suppliers:        row.SupplierCount,
		CommissionGroups: row.CommissionGroupCount,
	}, nil
}
