package repository

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/repository/voucher.go -package=repositorymock

import (
	"context"
	"time"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/repository/converter"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherWriteQueries interface {
	CreateVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherParams) (uuid.UUID, error)
	UpdateVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVoucherParams) (int64, error)
	UpdateVoucherStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVoucherStatusParams) (int64, error)
	DeleteVoucher(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      sqlc.DBTX
}

func NewVoucherRepository(queries VoucherWriteQueries, db sqlc.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherRepository) Create(ctx context.Context, tx sqlc.DBTX, v *voucher.Voucher) error {
	if _, err := r.queries.CreateVoucher(ctx, tx, converter.VoucherToCreateParams(v)); err != nil {
		return infra.WrapWriteErr("failed to create voucher", err)
	}
	return nil
}

func (r *VoucherRepository) Update(ctx context.Context, tx sqlc.DBTX, v *voucher.Voucher) error {
	rows, err := r.queries.UpdateVoucher(ctx, tx, converter.VoucherToUpdateParams(v))
	if err != nil {
		return infra.WrapWriteErr("failed to update voucher", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateStatus stamps sold_at when the voucher moves to sold.
func (r *VoucherRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to voucher.Status, now time.Time) error {
	soldAt := pgtype.Timestamptz{Valid: false}
	if to == voucher.StatusSold {
		soldAt = pgconv.TimeToPgtype(now)
	}

	rows, err := r.queries.UpdateVoucherStatus(ctx, tx, sqlc.UpdateVoucherStatusParams{
		ToStatus:   to.String(),
		SoldAt:     soldAt,
		UpdatedAt:  pgconv.TimeToPgtype(now),
		ID:         id,
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update voucher status", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("voucher status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *VoucherRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteVoucher(ctx, tx, id)
	if err != nil {
		return infra.WrapWriteErr("failed to delete voucher", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	return nil
}
