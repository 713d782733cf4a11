package readstore

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/readstore/idempotency.go -package=readstoremock

import (
	"context"
	"time"

	"airvoucher-admin/internal/infra"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"
	"airvoucher-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	now     func() time.Time
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, now func() time.Time) *IdempotencyReadStore {
	if now == nil {
		now = time.Now
	}
	return &IdempotencyReadStore{
		queries: queries,
		now:     now,
	}
}

// Get treats an expired record the same as a missing one.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, adminID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:     key,
		AdminID: adminID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record := &shared.IdempotencyRecord{
		Key:         row.Key,
		AdminID:     row.AdminID,
		Endpoint:    row.Endpoint,
		Status:      row.Status,
		RequestHash: row.RequestHash,
		Result:      row.Result,
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}

	if r.now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}
