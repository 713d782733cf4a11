package queries

import (
	"time"

	"airvoucher-admin/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherView represents read-optimized voucher data
type VoucherView struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Vendor            string     `json:"vendor"`
	SupplierName      string     `json:"supplier_name"`
	AmountCents       int64      `json:"amount_cents"`
	Status            string     `json:"status"`
	PIN               *string    `json:"pin,omitempty"`
	Serial            *string    `json:"serial,omitempty"`
	CommissionGroupID *uuid.UUID `json:"commission_group_id,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	SoldAt            *time.Time `json:"sold_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type VoucherListFilter struct {
	Status       *string
	Vendor       *string
	SupplierName *string
}

type AvailabilityResult struct {
	Provider    string                 `json:"provider"`
	Service     string                 `json:"service"`
	Items       []voucher.Availability `json:"items"`
	Unavailable bool                   `json:"unavailable"`
	Message     string                 `json:"message,omitempty"`
}

type PickParams struct {
	Provider string
	Service  string
	Amount   string
}

type PickedVoucher struct {
	Voucher  *VoucherView `json:"voucher"`
	External bool         `json:"external"`
}

type AdminView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RetailerView struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	ContactPerson     *string    `json:"contact_person,omitempty"`
	Email             string     `json:"email"`
	Phone             *string    `json:"phone,omitempty"`
	Location          *string    `json:"location,omitempty"`
	IsActive          bool       `json:"is_active"`
	CommissionGroupID *uuid.UUID `json:"commission_group_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type SupplierView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	Catalog      *string   `json:"catalog,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CommissionGroupView struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	Description           *string         `json:"description,omitempty"`
	RetailerCommissionPct decimal.Decimal `json:"retailer_commission_pct"`
	AgentCommissionPct    decimal.Decimal `json:"agent_commission_pct"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

type GroupVoucherView struct {
	ID                    uuid.UUID       `json:"id"`
	CommissionGroupID     uuid.UUID       `json:"commission_group_id"`
	SupplierID            uuid.UUID       `json:"supplier_id"`
	SupplierName          string          `json:"supplier_name,omitempty"`
	Name                  string          `json:"name"`
	Vendor                string          `json:"vendor"`
	Category              string          `json:"category"`
	AmountCents           *int64          `json:"amount_cents,omitempty"`
	RetailerCommissionPct decimal.Decimal `json:"retailer_commission_pct"`
	AgentCommissionPct    decimal.Decimal `json:"agent_commission_pct"`
	CreatedAt             time.Time       `json:"created_at"`
}

type VoucherStatusCounts struct {
	Active  int64 `json:"active"`
	Sold    int64 `json:"sold"`
	Expired int64 `json:"expired"`
	Total   int64 `json:"total"`
}

type EntityCounts struct {
	Admins           int64 `json:"admins"`
	Retailers        int64 `json:"retailers"`
	Suppliers        int64 `json:"suppliers"`
	CommissionGroups int64 `json:"commission_groups"`
}

type DashboardSummary struct {
	Vouchers VoucherStatusCounts `json:"vouchers"`
	EntityCounts
}
