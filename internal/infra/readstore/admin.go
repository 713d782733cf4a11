package readstore

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/readstore/admin.go -package=readstoremock

import (
	"context"

	"airvoucher-admin/internal/infra"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminReadQueries interface {
	GetAdminByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Admins, error)
	ListAdmins(ctx context.Context, db sqlc.DBTX) ([]sqlc.Admins, error)
	ListAdminRetailerIDs(ctx context.Context, db sqlc.DBTX, adminID uuid.UUID) ([]uuid.UUID, error)
}

type AdminReadStore struct {
	queries AdminReadQueries
	db      sqlc.DBTX
}

func NewAdminReadStore(queries AdminReadQueries, db sqlc.DBTX) *AdminReadStore {
	return &AdminReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AdminReadStore) FindAll(ctx context.Context) ([]*queries.AdminView, error) {
	rows, err := r.queries.ListAdmins(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admins", err)
	}
	views := make([]*queries.AdminView, len(rows))
	for i, row := range rows {
		views[i] = toAdminView(row)
	}
	return views, nil
}

func (r *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdminView, error) {
	row, err := r.queries.GetAdminByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get admin by id", err)
	}
	return toAdminView(row), nil
}

func (r *AdminReadStore) FindRetailerIDs(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListAdminRetailerIDs(ctx, r.db, adminID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admin retailer ids", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

func toAdminView(row sqlc.Admins) *queries.AdminView {
	return &queries.AdminView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Role:      row.Role,
		IsActive:  row.IsActive,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
