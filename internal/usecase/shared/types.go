package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

// Minimal snapshot for command read operations
type VoucherSnapshot struct {
	ID        uuid.UUID
	Status    string
	CreatedAt time.Time
}

type AdminSnapshot struct {
	ID       uuid.UUID
	Role     string
	IsActive bool
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	AdminID     uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	Result      []byte
	ExpiresAt   time.Time
}
