package request

import (
	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/domain/supplier"
	"airvoucher-admin/internal/pkg/money"
	"airvoucher-admin/internal/pkg/patch"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Each entity's create/update pair is its editor schema. Update requests are partial:
// absent fields keep the stored value.

type CreateAdminRequest struct {
	Name     string  `json:"name" binding:"required,max=120"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role" binding:"required,oneof=sub_admin admin super_admin"`
	IsActive *bool   `json:"is_active"`
}

type UpdateAdminRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=120"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" binding:"omitempty,oneof=sub_admin admin super_admin"`
	IsActive *bool   `json:"is_active"`
}

type AssignRetailersRequest struct {
	RetailerIDs []uuid.UUID `json:"retailer_ids" binding:"required"`
}

func (r *CreateAdminRequest) ToParams() admin.Params {
	return admin.Params{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Role:     r.Role,
		IsActive: patch.Coalesce(r.IsActive, true),
	}
}

func (r *UpdateAdminRequest) ToParams(existing *queries.AdminView) admin.Params {
	return admin.Params{
		Name:     patch.Coalesce(r.Name, existing.Name),
		Email:    patch.Coalesce(r.Email, existing.Email),
		Phone:    coalescePtr(r.Phone, existing.Phone),
		Role:     patch.Coalesce(r.Role, existing.Role),
		IsActive: patch.Coalesce(r.IsActive, existing.IsActive),
	}
}

type CreateRetailerRequest struct {
	Name              string     `json:"name" binding:"required,max=120"`
	ContactPerson     *string    `json:"contact_person"`
	Email             string     `json:"email" binding:"required,email"`
	Phone             *string    `json:"phone"`
	Location          *string    `json:"location"`
	IsActive          *bool      `json:"is_active"`
	CommissionGroupID *uuid.UUID `json:"commission_group_id"`
}

type UpdateRetailerRequest struct {
	Name              *string    `json:"name" binding:"omitempty,max=120"`
	ContactPerson     *string    `json:"contact_person"`
	Email             *string    `json:"email" binding:"omitempty,email"`
	Phone             *string    `json:"phone"`
	Location          *string    `json:"location"`
	IsActive          *bool      `json:"is_active"`
	CommissionGroupID *uuid.UUID `json:"commission_group_id"`
}

func (r *CreateRetailerRequest) ToParams() retailer.Params {
	return retailer.Params{
		Name:              r.Name,
		ContactPerson:     r.ContactPerson,
		Email:             r.Email,
		Phone:             r.Phone,
		Location:          r.Location,
		IsActive:          patch.Coalesce(r.IsActive, true),
		CommissionGroupID: r.CommissionGroupID,
	}
}

func (r *UpdateRetailerRequest) ToParams(existing *queries.RetailerView) retailer.Params {
	return retailer.Params{
		Name:              patch.Coalesce(r.Name, existing.Name),
		ContactPerson:     coalescePtr(r.ContactPerson, existing.ContactPerson),
		Email:             patch.Coalesce(r.Email, existing.Email),
		Phone:             coalescePtr(r.Phone, existing.Phone),
		Location:          coalescePtr(r.Location, existing.Location),
		IsActive:          patch.Coalesce(r.IsActive, existing.IsActive),
		CommissionGroupID: coalescePtr(r.CommissionGroupID, existing.CommissionGroupID),
	}
}

type CreateSupplierRequest struct {
	Name         string  `json:"name" binding:"required,max=120"`
	Kind         string  `json:"kind" binding:"required,oneof=standard ott aggregator batch"`
	Catalog      *string `json:"catalog" binding:"omitempty,oneof=mobile_data mobile_airtime"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	IsActive     *bool   `json:"is_active"`
}

type UpdateSupplierRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=120"`
	Kind         *string `json:"kind" binding:"omitempty,oneof=standard ott aggregator batch"`
	Catalog      *string `json:"catalog" binding:"omitempty,oneof=mobile_data mobile_airtime"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	IsActive     *bool   `json:"is_active"`
}

func (r *CreateSupplierRequest) ToParams() supplier.Params {
	return supplier.Params{
		Name:         r.Name,
		Kind:         r.Kind,
		Catalog:      r.Catalog,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		IsActive:     patch.Coalesce(r.IsActive, true),
	}
}

// Switching away from aggregator drops the stored catalog unless one is sent.
func (r *UpdateSupplierRequest) ToParams(existing *queries.SupplierView) supplier.Params {
	kind := patch.Coalesce(r.Kind, existing.Kind)
	catalog := coalescePtr(r.Catalog, existing.Catalog)
	if r.Catalog == nil && kind != string(supplier.KindAggregator) {
		catalog = nil
	}
	return supplier.Params{
		Name:         patch.Coalesce(r.Name, existing.Name),
		Kind:         kind,
		Catalog:      catalog,
		ContactEmail: coalescePtr(r.ContactEmail, existing.ContactEmail),
		ContactPhone: coalescePtr(r.ContactPhone, existing.ContactPhone),
		IsActive:     patch.Coalesce(r.IsActive, existing.IsActive),
	}
}

type CreateCommissionGroupRequest struct {
	Name                  string           `json:"name" binding:"required,max=120"`
	Description           *string          `json:"description"`
	RetailerCommissionPct *decimal.Decimal `json:"retailer_commission_pct" binding:"required"`
	AgentCommissionPct    *decimal.Decimal `json:"agent_commission_pct" binding:"required"`
}

type UpdateCommissionGroupRequest struct {
	Name                  *string          `json:"name" binding:"omitempty,max=120"`
	Description           *string          `json:"description"`
	RetailerCommissionPct *decimal.Decimal `json:"retailer_commission_pct"`
	AgentCommissionPct    *decimal.Decimal `json:"agent_commission_pct"`
}

func (r *CreateCommissionGroupRequest) ToParams() commissiongroup.Params {
	return commissiongroup.Params{
		Name:                  r.Name,
		Description:           r.Description,
		RetailerCommissionPct: *r.RetailerCommissionPct,
		AgentCommissionPct:    *r.AgentCommissionPct,
	}
}

func (r *UpdateCommissionGroupRequest) ToParams(existing *queries.CommissionGroupView) commissiongroup.Params {
	return commissiongroup.Params{
		Name:                  patch.Coalesce(r.Name, existing.Name),
		Description:           coalescePtr(r.Description, existing.Description),
		RetailerCommissionPct: patch.Coalesce(r.RetailerCommissionPct, existing.RetailerCommissionPct),
		AgentCommissionPct:    patch.Coalesce(r.AgentCommissionPct, existing.AgentCommissionPct),
	}
}

type AddGroupVoucherRequest struct {
	SupplierID            uuid.UUID        `json:"supplier_id" binding:"required"`
	Name                  string           `json:"name" binding:"required,max=120"`
	Vendor                string           `json:"vendor" binding:"required"`
	Category              string           `json:"category" binding:"required"`
	Amount                *string          `json:"amount"`
	RetailerCommissionPct *decimal.Decimal `json:"retailer_commission_pct" binding:"required"`
	AgentCommissionPct    *decimal.Decimal `json:"agent_commission_pct" binding:"required"`
}

func (r *AddGroupVoucherRequest) ToParams() (commissiongroup.GroupVoucherParams, error) {
	var cents *int64
	if r.Amount != nil {
		parsed, err := money.ParseRand(*r.Amount)
		if err != nil {
			return commissiongroup.GroupVoucherParams{}, err
		}
		cents = &parsed
	}
	return commissiongroup.GroupVoucherParams{
		SupplierID:            r.SupplierID,
		Name:                  r.Name,
		Vendor:                r.Vendor,
		Category:              r.Category,
		AmountCents:           cents,
		RetailerCommissionPct: *r.RetailerCommissionPct,
		AgentCommissionPct:    *r.AgentCommissionPct,
	}, nil
}

type SelectedVoucher struct {
	Name   string `json:"name" binding:"required"`
	Vendor string `json:"vendor"`
}

type SupplierVouchersRequest struct {
	SupplierID uuid.UUID         `json:"supplier_id" binding:"required"`
	BatchCount int               `json:"batch_count" binding:"min=0"`
	InSession  []SelectedVoucher `json:"in_session" binding:"dive"`
}

func (r *SupplierVouchersRequest) ToParams() queries.SupplierVoucherParams {
	selected := make([]commissiongroup.Selected, len(r.InSession))
	for i, s := range r.InSession {
		selected[i] = commissiongroup.Selected{Name: s.Name, Vendor: s.Vendor}
	}
	return queries.SupplierVoucherParams{
		SupplierID: r.SupplierID,
		BatchCount: r.BatchCount,
		InSession:  selected,
	}
}
