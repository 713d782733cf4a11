package request

import (
	"strings"
	"time"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/pkg/money"
	"airvoucher-admin/internal/pkg/patch"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

// Amounts travel as rand text ("12.50") and are scaled to cents exactly.
type CreateVoucherRequest struct {
	Name              string     `json:"name" binding:"required,max=120"`
	Category          string     `json:"category" binding:"required"`
	Vendor            string     `json:"vendor" binding:"required"`
	SupplierName      string     `json:"supplier_name" binding:"required"`
	Amount            string     `json:"amount" binding:"required"`
	PIN               *string    `json:"pin"`
	Serial            *string    `json:"serial"`
	CommissionGroupID *uuid.UUID `json:"commission_group_id"`
	ExpiresAt         *string    `json:"expires_at"`
}

type UpdateVoucherRequest struct {
	Name              *string    `json:"name" binding:"omitempty,max=120"`
	Category          *string    `json:"category"`
	Vendor            *string    `json:"vendor"`
	SupplierName      *string    `json:"supplier_name"`
	Amount            *string    `json:"amount"`
	PIN               *string    `json:"pin"`
	Serial            *string    `json:"serial"`
	CommissionGroupID *uuid.UUID `json:"commission_group_id"`
	ExpiresAt         *string    `json:"expires_at"`
}

type ChangeVoucherStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active sold expired"`
}

type PickVoucherRequest struct {
	Provider string `json:"provider" binding:"required"`
	Service  string `json:"service"`
	Amount   string `json:"amount" binding:"required"`
}

func (r *CreateVoucherRequest) ToParams() (voucher.NewVoucherParams, error) {
	cents, err := money.ParseRand(r.Amount)
	if err != nil {
		return voucher.NewVoucherParams{}, err
	}
	expiresAt, err := parseExpiry(r.ExpiresAt)
	if err != nil {
		return voucher.NewVoucherParams{}, err
	}
	return voucher.NewVoucherParams{
		Name:              r.Name,
		Category:          r.Category,
		Vendor:            r.Vendor,
		SupplierName:      r.SupplierName,
		AmountCents:       cents,
		PIN:               r.PIN,
		Serial:            r.Serial,
		CommissionGroupID: r.CommissionGroupID,
		ExpiresAt:         expiresAt,
	}, nil
}

// ToParams overlays the request on the stored voucher; status is left to ChangeStatus.
func (r *UpdateVoucherRequest) ToParams(existing *queries.VoucherView) (voucher.NewVoucherParams, error) {
	cents := existing.AmountCents
	if r.Amount != nil {
		parsed, err := money.ParseRand(*r.Amount)
		if err != nil {
			return voucher.NewVoucherParams{}, err
		}
		cents = parsed
	}
	expiresAt := existing.ExpiresAt
	if r.ExpiresAt != nil {
		parsed, err := parseExpiry(r.ExpiresAt)
		if err != nil {
			return voucher.NewVoucherParams{}, err
		}
		expiresAt = parsed
	}
	return voucher.NewVoucherParams{
		ID:                existing.ID,
		Name:              patch.Coalesce(r.Name, existing.Name),
		Category:          patch.Coalesce(r.Category, existing.Category),
		Vendor:            patch.Coalesce(r.Vendor, existing.Vendor),
		SupplierName:      patch.Coalesce(r.SupplierName, existing.SupplierName),
		AmountCents:       cents,
		Status:            existing.Status,
		PIN:               coalescePtr(r.PIN, existing.PIN),
		Serial:            coalescePtr(r.Serial, existing.Serial),
		CommissionGroupID: coalescePtr(r.CommissionGroupID, existing.CommissionGroupID),
		ExpiresAt:         expiresAt,
	}, nil
}

func (r *PickVoucherRequest) ToParams() queries.PickParams {
	return queries.PickParams{
		Provider: r.Provider,
		Service:  r.Service,
		Amount:   r.Amount,
	}
}

// blank clears the expiry
func parseExpiry(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(voucher.ExpiryDateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, ErrInvalidExpiry
	}
	return &t, nil
}

func coalescePtr[T any](ptr, fallback *T) *T {
	if ptr != nil {
		return ptr
	}
	return fallback
}
