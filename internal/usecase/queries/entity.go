package queries

//go:generate mockgen -source=entity.go -destination=../../../tests/mock/queries/entity.go -package=queriesmock

import (
	"context"

	"airvoucher-admin/internal/infra"

	"github.com/google/uuid"
)

// EntityReadStore lists an administered entity ordered by name.
type EntityReadStore[V any] interface {
	FindAll(ctx context.Context) ([]*V, error)
	FindByID(ctx context.Context, id uuid.UUID) (*V, error)
}

type EntityQueries[V any] interface {
	List(ctx context.Context) ([]*V, error)
	GetByID(ctx context.Context, id uuid.UUID) (*V, error)
}

type entityQueriesImpl[V any] struct {
	store EntityReadStore[V]
}

func NewEntityQueries[V any](store EntityReadStore[V]) EntityQueries[V] {
	return &entityQueriesImpl[V]{store: store}
}

func (q *entityQueriesImpl[V]) List(ctx context.Context) ([]*V, error) {
	return q.store.FindAll(ctx)
}

func (q *entityQueriesImpl[V]) GetByID(ctx context.Context, id uuid.UUID) (*V, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEntityNotFound
		}
		return nil, err
	}
	return v, nil
}
