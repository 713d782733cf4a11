package readstore

//go:generate mockgen -source=supplier.go -destination=../../../tests/mock/readstore/supplier.go -package=readstoremock

import (
	"context"

	"airvoucher-admin/internal/infra"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type SupplierReadQueries interface {
	GetSupplierByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Suppliers, error)
	ListSuppliers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Suppliers, error)
}

type SupplierReadStore struct {
	queries SupplierReadQueries
	db      sqlc.DBTX
}

func NewSupplierReadStore(queries SupplierReadQueries, db sqlc.DBTX) *SupplierReadStore {
	return &SupplierReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SupplierReadStore) FindAll(ctx context.Context) ([]*queries.SupplierView, error) {
	rows, err := r.queries.ListSuppliers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list suppliers", err)
	}
	views := make([]*queries.SupplierView, len(rows))
	for i, row := range rows {
		views[i] = toSupplierView(row)
	}
	return views, nil
}

func (r *SupplierReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SupplierView, error) {
	row, err := r.queries.GetSupplierByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("supplier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get supplier by id", err)
	}
	return toSupplierView(row), nil
}

func toSupplierView(row sqlc.Suppliers) *queries.SupplierView {
	return &queries.SupplierView{
		ID:           row.ID,
		Name:         row.Name,
		Kind:         row.Kind,
		Catalog:      pgconv.StringPtrFromPgtype(row.Catalog),
		ContactEmail: pgconv.StringPtrFromPgtype(row.ContactEmail),
		ContactPhone: pgconv.StringPtrFromPgtype(row.ContactPhone),
		IsActive:     row.IsActive,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
