package commissiongroup

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrVoucherNameRequired   = errors.New("voucher name is required")
	ErrVoucherVendorRequired = errors.New("voucher vendor is required")
	ErrVoucherInvalidAmount  = errors.New("voucher amount must be greater than zero")
)

type GroupVoucherParams struct {
	SupplierID            uuid.UUID
	Name                  string
	Vendor                string
	Category              string
	AmountCents           *int64
	RetailerCommissionPct decimal.Decimal
	AgentCommissionPct    decimal.Decimal
}

// GroupVoucher is a voucher product attached to a group with its own commission split.
type GroupVoucher struct {
	id          uuid.UUID
	groupID     uuid.UUID
	supplierID  uuid.UUID
	name        string
	vendor      string
	category    string
	amountCents *int64
	retailerPct Percentage
	agentPct    Percentage
	createdAt   time.Time
}

func NewGroupVoucher(groupID uuid.UUID, p GroupVoucherParams, now time.Time) (*GroupVoucher, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrVoucherNameRequired
	}
	vendor := strings.ToUpper(strings.TrimSpace(p.Vendor))
	if vendor == "" {
		return nil, ErrVoucherVendorRequired
	}
	if p.AmountCents != nil && *p.AmountCents <= 0 {
		return nil, ErrVoucherInvalidAmount
	}
	retailerPct, err := NewPercentage(p.RetailerCommissionPct)
	if err != nil {
		return nil, err
	}
	agentPct, err := NewPercentage(p.AgentCommissionPct)
	if err != nil {
		return nil, err
	}

	return &GroupVoucher{
		id:          uuid.New(),
		groupID:     groupID,
		supplierID:  p.SupplierID,
		name:        name,
		vendor:      vendor,
		category:    strings.TrimSpace(p.Category),
		amountCents: p.AmountCents,
		retailerPct: retailerPct,
		agentPct:    agentPct,
		createdAt:   now,
	}, nil
}

func (v *GroupVoucher) ID() uuid.UUID                     { return v.id }
func (v *GroupVoucher) GroupID() uuid.UUID                { return v.groupID }
func (v *GroupVoucher) SupplierID() uuid.UUID             { return v.supplierID }
func (v *GroupVoucher) Name() string                      { return v.name }
func (v *GroupVoucher) Vendor() string                    { return v.vendor }
func (v *GroupVoucher) Category() string                  { return v.category }
func (v *GroupVoucher) AmountCents() *int64               { return v.amountCents }
func (v *GroupVoucher) RetailerCommissionPct() Percentage { return v.retailerPct }
func (v *GroupVoucher) AgentCommissionPct() Percentage    { return v.agentPct }
func (v *GroupVoucher) CreatedAt() time.Time              { return v.createdAt }
