package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"airvoucher-admin/internal/infra/readstore"
	"airvoucher-admin/internal/infra/repository"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	voucherRepo         shared.VoucherRepository
	adminRepo           shared.AdminRepository
	retailerRepo        shared.RetailerRepository
	supplierRepo        shared.SupplierRepository
	commissionGroupRepo shared.CommissionGroupRepository
	idempotencyRepo     shared.IdempotencyRepository
	commandReads        shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Vouchers() shared.VoucherRepository {
	if t.voucherRepo == nil {
		t.voucherRepo = repository.NewVoucherRepository(t.uow.q, t.dbtx)
	}
	return t.voucherRepo
}

func (t *pgTx) Admins() shared.AdminRepository {
	if t.adminRepo == nil {
		t.adminRepo = repository.NewAdminRepository(t.uow.q, t.dbtx)
	}
	return t.adminRepo
}

func (t *pgTx) Retailers() shared.RetailerRepository {
	if t.retailerRepo == nil {
		t.retailerRepo = repository.NewRetailerRepository(t.uow.q, t.dbtx)
	}
	return t.retailerRepo
}

func (t *pgTx) Suppliers() shared.SupplierRepository {
	if t.supplierRepo == nil {
		t.supplierRepo = repository.NewSupplierRepository(t.uow.q, t.dbtx)
	}
	return t.supplierRepo
}

func (t *pgTx) CommissionGroups() shared.CommissionGroupRepository {
	if t.commissionGroupRepo == nil {
		t.commissionGroupRepo = repository.NewCommissionGroupRepository(t.uow.q, t.dbtx)
	}
	return t.commissionGroupRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	voucherStore     *readstore.VoucherReadStore
	adminStore       *readstore.AdminReadStore
	retailerStore    *readstore.RetailerReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) VoucherByID(ctx context.Context, id uuid.UUID) (*shared.VoucherSnapshot, error) {
	if r.voucherStore == nil {
		r.voucherStore = readstore.NewVoucherReadStore(r.uow.q, r.dbtx)
	}

	v, err := r.voucherStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.VoucherSnapshot{
		ID:        v.ID,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) AdminByID(ctx context.Context, id uuid.UUID) (*shared.AdminSnapshot, error) {
	if r.adminStore == nil {
		r.adminStore = readstore.NewAdminReadStore(r.uow.q, r.dbtx)
	}

	a, err := r.adminStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.AdminSnapshot{
		ID:       a.ID,
		Role:     a.Role,
		IsActive: a.IsActive,
	}
	return snapshot, nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, adminID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q, nil)
	}

	return r.idempotencyStore.Get(ctx, r.dbtx, key, adminID)
}

func (r *commandReads) ExistingRetailerIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if r.retailerStore == nil {
		r.retailerStore = readstore.NewRetailerReadStore(r.uow.q, r.dbtx)
	}

	return r.retailerStore.FindExistingIDs(ctx, ids)
}
