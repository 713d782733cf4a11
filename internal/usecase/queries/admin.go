package queries

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type AdminReadStore interface {
	EntityReadStore[AdminView]
	FindRetailerIDs(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error)
}

type AdminQueries interface {
	EntityQueries[AdminView]
	AssignedRetailers(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error)
}

type adminQueriesImpl struct {
	EntityQueries[AdminView]
	store AdminReadStore
}

func NewAdminQueries(store AdminReadStore) AdminQueries {
	return &adminQueriesImpl{
		EntityQueries: NewEntityQueries[AdminView](store),
		store:         store,
	}
}

func (q *adminQueriesImpl) AssignedRetailers(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	if _, err := q.GetByID(ctx, adminID); err != nil {
		return nil, err
	}
	return q.store.FindRetailerIDs(ctx, adminID)
}
