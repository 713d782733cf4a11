package readstore

//go:generate mockgen -source=commission_group.go -destination=../../../tests/mock/readstore/commission_group.go -package=readstoremock

import (
	"context"

	"airvoucher-admin/internal/infra"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommissionGroupReadQueries interface {
	GetCommissionGroupByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CommissionGroups, error)
	ListCommissionGroups(ctx context.Context, db sqlc.DBTX) ([]sqlc.CommissionGroups, error)
	ListCommissionGroupVouchers(ctx context.Context, db sqlc.DBTX, commissionGroupID uuid.UUID) ([]sqlc.ListCommissionGroupVouchersRow, error)
	ListCommissionGroupVouchersBySupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommissionGroupVouchersBySupplierParams) ([]sqlc.CommissionGroupVouchers, error)
}

type CommissionGroupReadStore struct {
	queries CommissionGroupReadQueries
	db      sqlc.DBTX
}

func NewCommissionGroupReadStore(queries CommissionGroupReadQueries, db sqlc.DBTX) *CommissionGroupReadStore {
	return &CommissionGroupReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommissionGroupReadStore) FindAll(ctx context.Context) ([]*queries.CommissionGroupView, error) {
	rows, err := r.queries.ListCommissionGroups(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list commission groups", err)
	}
	views := make([]*queries.CommissionGroupView, len(rows))
	for i, row := range rows {
		views[i] = toCommissionGroupView(row)
	}
	return views, nil
}

func (r *CommissionGroupReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CommissionGroupView, error) {
	row, err := r.queries.GetCommissionGroupByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("commission group not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get commission group by id", err)
	}
	return toCommissionGroupView(row), nil
}

func (r *CommissionGroupReadStore) FindVouchers(ctx context.Context, groupID uuid.UUID) ([]*queries.GroupVoucherView, error) {
	rows, err := r.queries.ListCommissionGroupVouchers(ctx, r.db, groupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list commission group vouchers", err)
	}
	views := make([]*queries.GroupVoucherView, len(rows))
	for i, row := range rows {
		views[i] = &queries.GroupVoucherView{
			ID:                    row.ID,
			CommissionGroupID:     row.CommissionGroupID,
			SupplierID:            row.SupplierID,
			SupplierName:          row.SupplierName,
			Name:                  row.Name,
			Vendor:                row.Vendor,
			Category:              row.Category,
			AmountCents:           pgconv.Int64PtrFromPgtype(row.AmountCents),
			RetailerCommissionPct: pgconv.DecimalFromNumeric(row.RetailerCommissionPct),
			AgentCommissionPct:    pgconv.DecimalFromNumeric(row.AgentCommissionPct),
			CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func (r *CommissionGroupReadStore) FindVouchersBySupplier(ctx context.Context, groupID, supplierID uuid.UUID) ([]*queries.GroupVoucherView, error) {
	rows, err := r.queries.ListCommissionGroupVouchersBySupplier(ctx, r.db, sqlc.ListCommissionGroupVouchersBySupplierParams{
		CommissionGroupID: groupID,
		SupplierID:        supplierID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list commission group vouchers by supplier", err)
	}
	views := make([]*queries.GroupVoucherView, len(rows))
	for i, row := range rows {
		views[i] = &queries.GroupVoucherView{
			ID:                    row.ID,
			CommissionGroupID:     row.CommissionGroupID,
			SupplierID:            row.SupplierID,
			Name:                  row.Name,
			Vendor:                row.Vendor,
			Category:              row.Category,
			AmountCents:           pgconv.Int64PtrFromPgtype(row.AmountCents),
			RetailerCommissionPct: pgconv.DecimalFromNumeric(row.RetailerCommissionPct),
			AgentCommissionPct:    pgconv.DecimalFromNumeric(row.AgentCommissionPct),
			CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func toCommissionGroupView(row sqlc.CommissionGroups) *queries.CommissionGroupView {
	return &queries.CommissionGroupView{
		ID:                    row.ID,
		Name:                  row.Name,
		Description:           pgconv.StringPtrFromPgtype(row.Description),
		RetailerCommissionPct: pgconv.DecimalFromNumeric(row.RetailerCommissionPct),
		AgentCommissionPct:    pgconv.DecimalFromNumeric(row.AgentCommissionPct),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
