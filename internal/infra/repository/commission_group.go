package repository

//go:generate mockgen -source=commission_group.go -destination=../../../tests/mock/repository/commission_group.go -package=repositorymock

import (
	"context"

	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/repository/converter"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CommissionGroupWriteQueries interface {
	CreateCommissionGroup(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommissionGroupParams) error
	UpdateCommissionGroup(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCommissionGroupParams) (int64, error)
	DeleteCommissionGroup(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CreateCommissionGroupVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommissionGroupVoucherParams) error
	DeleteCommissionGroupVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCommissionGroupVoucherParams) (int64, error)
}

type CommissionGroupRepository struct {
	queries CommissionGroupWriteQueries
	db      sqlc.DBTX
}

func NewCommissionGroupRepository(queries CommissionGroupWriteQueries, db sqlc.DBTX) *CommissionGroupRepository {
	return &CommissionGroupRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommissionGroupRepository) Create(ctx context.Context, tx sqlc.DBTX, g *commissiongroup.CommissionGroup) error {
	if err := r.queries.CreateCommissionGroup(ctx, tx, converter.CommissionGroupToCreateParams(g)); err != nil {
		return infra.WrapWriteErr("failed to create commission group", err)
	}
	return nil
}

func (r *CommissionGroupRepository) Update(ctx context.Context, tx sqlc.DBTX, g *commissiongroup.CommissionGroup) error {
	rows, err := r.queries.UpdateCommissionGroup(ctx, tx, converter.CommissionGroupToUpdateParams(g))
	if err != nil {
		return infra.WrapWriteErr("failed to update commission group", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("commission group not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CommissionGroupRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteCommissionGroup(ctx, tx, id)
	if err != nil {
		return infra.WrapWriteErr("failed to delete commission group", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("commission group not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CommissionGroupRepository) AddVoucher(ctx context.Context, tx sqlc.DBTX, v *commissiongroup.GroupVoucher) error {
	if err := r.queries.CreateCommissionGroupVoucher(ctx, tx, converter.GroupVoucherToCreateParams(v)); err != nil {
		return infra.WrapWriteErr("failed to add commission group voucher", err)
	}
	return nil
}

func (r *CommissionGroupRepository) RemoveVoucher(ctx context.Context, tx sqlc.DBTX, groupID, voucherID uuid.UUID) error {
	rows, err := r.queries.DeleteCommissionGroupVoucher(ctx, tx, sqlc.DeleteCommissionGroupVoucherParams{
		ID:                voucherID,
		CommissionGroupID: groupID,
	})
	if err != nil {
		return infra.WrapWriteErr("failed to remove commission group voucher", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("commission group voucher not found", nil, infra.KindNotFound)
	}
	return nil
}
