package repository

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/repository/admin.go -package=repositorymock

import (
	"context"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/repository/converter"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AdminWriteQueries interface {
	CreateAdmin(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAdminParams) error
	UpdateAdmin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAdminParams) (int64, error)
	DeleteAdmin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteAdminRetailers(ctx context.Context, db sqlc.DBTX, adminID uuid.UUID) error
	InsertAdminRetailers(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAdminRetailersParams) error
}

type AdminRepository struct {
	queries AdminWriteQueries
	db      sqlc.DBTX
}

func NewAdminRepository(queries AdminWriteQueries, db sqlc.DBTX) *AdminRepository {
	return &AdminRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AdminRepository) Create(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) error {
	if err := r.queries.CreateAdmin(ctx, tx, converter.AdminToCreateParams(a)); err != nil {
		return infra.WrapWriteErr("failed to create admin", err)
	}
	return nil
}

func (r *AdminRepository) Update(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) error {
	rows, err := r.queries.UpdateAdmin(ctx, tx, converter.AdminToUpdateParams(a))
	if err != nil {
		return infra.WrapWriteErr("failed to update admin", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteAdmin(ctx, tx, id)
	if err != nil {
		return infra.WrapWriteErr("failed to delete admin", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("admin not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReplaceRetailers swaps the whole assignment set; an empty list clears it.
func (r *AdminRepository) ReplaceRetailers(ctx context.Context, tx sqlc.DBTX, adminID uuid.UUID, retailerIDs []uuid.UUID) error {
	if err := r.queries.DeleteAdminRetailers(ctx, tx, adminID); err != nil {
		return infra.WrapWriteErr("failed to clear admin retailers", err)
	}
	if len(retailerIDs) == 0 {
		return nil
	}
	err := r.queries.InsertAdminRetailers(ctx, tx, sqlc.InsertAdminRetailersParams{
		AdminID:     adminID,
		RetailerIds: retailerIDs,
	})
	if err != nil {
		return infra.WrapWriteErr("failed to assign admin retailers", err)
	}
	return nil
}
