package readstore

//go:generate mockgen -source=retailer.go -destination=../../../tests/mock/readstore/retailer.go -package=readstoremock

import (
	"context"

	"airvoucher-admin/internal/infra"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type RetailerReadQueries interface {
	GetRetailerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Retailers, error)
	ListRetailers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Retailers, error)
	FindExistingRetailerIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]uuid.UUID, error)
}

type RetailerReadStore struct {
	queries RetailerReadQueries
	db      sqlc.DBTX
}

func NewRetailerReadStore(queries RetailerReadQueries, db sqlc.DBTX) *RetailerReadStore {
	return &RetailerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RetailerReadStore) FindAll(ctx context.Context) ([]*queries.RetailerView, error) {
	rows, err := r.queries.ListRetailers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list retailers", err)
	}
	views := make([]*queries.RetailerView, len(rows))
	for i, row := range rows {
		views[i] = toRetailerView(row)
	}
	return views, nil
}

func (r *RetailerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RetailerView, error) {
	row, err := r.queries.GetRetailerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("retailer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get retailer by id", err)
	}
	return toRetailerView(row), nil
}

// FindExistingIDs returns the subset of ids that name a retailer.
func (r *RetailerReadStore) FindExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	found, err := r.queries.FindExistingRetailerIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check retailer ids", err)
	}
	return found, nil
}

func toRetailerView(row sqlc.Retailers) *queries.RetailerView {
	return &queries.RetailerView{
		ID:                row.ID,
		Name:              row.Name,
		ContactPerson:     pgconv.StringPtrFromPgtype(row.ContactPerson),
		Email:             row.Email,
		Phone:             pgconv.StringPtrFromPgtype(row.Phone),
		Location:          pgconv.StringPtrFromPgtype(row.Location),
		IsActive:          row.IsActive,
		CommissionGroupID: pgconv.UUIDPtrFromPgtype(row.CommissionGroupID),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
