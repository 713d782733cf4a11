package voucher

import (
	"time"

	"github.com/google/uuid"
)

type Voucher struct {
	id                uuid.UUID
	name              Name
	category          string
	vendor            string
	supplierName      string
	amount            Amount
	status            Status
	pin               *string
	serial            *string
	commissionGroupID *uuid.UUID
	expiresAt         *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

type NewVoucherParams struct {
	ID                uuid.UUID
	Name              string
	Category          string
	Vendor            string
	SupplierName      string
	AmountCents       int64
	Status            string
	PIN               *string
	Serial            *string
	CommissionGroupID *uuid.UUID
	ExpiresAt         *time.Time
}

func NewVoucher(p NewVoucherParams, now time.Time) (*Voucher, error) {
	name, err := NewName(p.Name)
	if err != nil {
		return nil, err
	}

	category, err := requiredText(p.Category, ErrCategoryRequired)
	if err != nil {
		return nil, err
	}

	vendor, err := requiredText(p.Vendor, ErrVendorRequired)
	if err != nil {
		return nil, err
	}

	supplierName, err := requiredText(p.SupplierName, ErrSupplierRequired)
	if err != nil {
		return nil, err
	}

	amount, err := NewAmount(p.AmountCents)
	if err != nil {
		return nil, err
	}

	status := StatusActive
	if p.Status != "" {
		if status, err = NewStatus(p.Status); err != nil {
			return nil, err
		}
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Voucher{
		id:                id,
		name:              name,
		category:          category,
		vendor:            vendor,
		supplierName:      supplierName,
		amount:            amount,
		status:            status,
		pin:               optionalText(p.PIN),
		serial:            optionalText(p.Serial),
		commissionGroupID: p.CommissionGroupID,
		expiresAt:         p.ExpiresAt,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// TransitionTo validates a status change; the store applies it conditionally on the old status.
func (v *Voucher) TransitionTo(next Status, now time.Time) error {
	if !v.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	v.status = next
	v.updatedAt = now
	return nil
}

func (v *Voucher) ID() uuid.UUID                 { return v.id }
func (v *Voucher) Name() Name                    { return v.name }
func (v *Voucher) Category() string              { return v.category }
func (v *Voucher) Vendor() string                { return v.vendor }
func (v *Voucher) SupplierName() string          { return v.supplierName }
func (v *Voucher) Amount() Amount                { return v.amount }
func (v *Voucher) Status() Status                { return v.status }
func (v *Voucher) PIN() *string                  { return v.pin }
func (v *Voucher) Serial() *string               { return v.serial }
func (v *Voucher) CommissionGroupID() *uuid.UUID { return v.commissionGroupID }
func (v *Voucher) ExpiresAt() *time.Time         { return v.expiresAt }
func (v *Voucher) CreatedAt() time.Time          { return v.createdAt }
func (v *Voucher) UpdatedAt() time.Time          { return v.updatedAt }
