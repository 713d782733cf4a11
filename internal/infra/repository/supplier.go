package repository

//go:generate mockgen -source=supplier.go -destination=../../../tests/mock/repository/supplier.go -package=repositorymock

import (
	"context"

	"airvoucher-admin/internal/domain/supplier"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/repository/converter"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SupplierWriteQueries interface {
	CreateSupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSupplierParams) error
	UpdateSupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSupplierParams) (int64, error)
	DeleteSupplier(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SupplierRepository struct {
	queries SupplierWriteQueries
	db      sqlc.DBTX
}

func NewSupplierRepository(queries SupplierWriteQueries, db sqlc.DBTX) *SupplierRepository {
	return &SupplierRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SupplierRepository) Create(ctx context.Context, tx sqlc.DBTX, s *supplier.Supplier) error {
	if err := r.queries.CreateSupplier(ctx, tx, converter.SupplierToCreateParams(s)); err != nil {
		return infra.WrapWriteErr("failed to create supplier", err)
	}
	return nil
}

func (r *SupplierRepository) Update(ctx context.Context, tx sqlc.DBTX, s *supplier.Supplier) error {
	rows, err := r.queries.UpdateSupplier(ctx, tx, converter.SupplierToUpdateParams(s))
	if err != nil {
		return infra.WrapWriteErr("failed to update supplier", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("supplier not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete fails with KindForeignKeyViolated while group vouchers still reference the supplier.
func (r *SupplierRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteSupplier(ctx, tx, id)
	if err != nil {
		return infra.WrapWriteErr("failed to delete supplier", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("supplier not found", nil, infra.KindNotFound)
	}
	return nil
}
