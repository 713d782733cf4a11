package repository

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/repository/idempotency.go -package=repositorymock

import (
	"context"
	"time"

	"airvoucher-admin/internal/infra"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert claims the key when it is new or its previous holder has expired.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key, adminID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		AdminID:     adminID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	rows, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return rows > 0, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx sqlc.DBTX, key, adminID uuid.UUID, result []byte) error {
	params := sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:     key,
		AdminID: adminID,
		Result:  result,
	}

	err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

func (r *IdempotencyRepository) PurgeExpired(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
