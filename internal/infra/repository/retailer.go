package repository

//go:generate mockgen -source=retailer.go -destination=../../../tests/mock/repository/retailer.go -package=repositorymock

import (
	"context"

	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/repository/converter"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RetailerWriteQueries interface {
	CreateRetailer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRetailerParams) error
	UpdateRetailer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRetailerParams) (int64, error)
	DeleteRetailer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RetailerRepository struct {
	queries RetailerWriteQueries
	db      sqlc.DBTX
}

func NewRetailerRepository(queries RetailerWriteQueries, db sqlc.DBTX) *RetailerRepository {
	return &RetailerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RetailerRepository) Create(ctx context.Context, tx sqlc.DBTX, ret *retailer.Retailer) error {
	if err := r.queries.CreateRetailer(ctx, tx, converter.RetailerToCreateParams(ret)); err != nil {
		return infra.WrapWriteErr("failed to create retailer", err)
	}
	return nil
}

func (r *RetailerRepository) Update(ctx context.Context, tx sqlc.DBTX, ret *retailer.Retailer) error {
	rows, err := r.queries.UpdateRetailer(ctx, tx, converter.RetailerToUpdateParams(ret))
	if err != nil {
		return infra.WrapWriteErr("failed to update retailer", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("retailer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RetailerRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteRetailer(ctx, tx, id)
	if err != nil {
		return infra.WrapWriteErr("failed to delete retailer", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("retailer not found", nil, infra.KindNotFound)
	}
	return nil
}
