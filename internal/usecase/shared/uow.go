package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/domain/supplier"
	"airvoucher-admin/internal/domain/voucher"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Vouchers() VoucherRepository
	Admins() AdminRepository
	Retailers() RetailerRepository
	Suppliers() SupplierRepository
	CommissionGroups() CommissionGroupRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	VoucherByID(ctx context.Context, id uuid.UUID) (*VoucherSnapshot, error)
	AdminByID(ctx context.Context, id uuid.UUID) (*AdminSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, adminID uuid.UUID) (*IdempotencyRecord, error)
	ExistingRetailerIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

// EntityRepository is the write side shared by every administered entity.
// Update and Delete report a missing row as infra.KindNotFound.
type EntityRepository[T any] interface {
	Create(ctx context.Context, tx sqlc.DBTX, e *T) error
	Update(ctx context.Context, tx sqlc.DBTX, e *T) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type VoucherRepository interface {
	EntityRepository[voucher.Voucher]
	// UpdateStatus only applies when the stored status still equals from; otherwise infra.KindConflict.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to voucher.Status, now time.Time) error
}

type AdminRepository interface {
	EntityRepository[admin.Admin]
	ReplaceRetailers(ctx context.Context, tx sqlc.DBTX, adminID uuid.UUID, retailerIDs []uuid.UUID) error
}

type RetailerRepository interface {
	EntityRepository[retailer.Retailer]
}

type SupplierRepository interface {
	EntityRepository[supplier.Supplier]
}

type CommissionGroupRepository interface {
	EntityRepository[commissiongroup.CommissionGroup]
	AddVoucher(ctx context.Context, tx sqlc.DBTX, v *commissiongroup.GroupVoucher) error
	RemoveVoucher(ctx context.Context, tx sqlc.DBTX, groupID, voucherID uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether this call now owns the key (fresh insert or expired reclaim).
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, adminID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, key, adminID uuid.UUID, result []byte) error
	PurgeExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}
