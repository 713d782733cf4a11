package response

import (
	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/pkg/money"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdminResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

type AdminRetailersResponse struct {
	AdminID     string   `json:"admin_id"`
	RetailerIDs []string `json:"retailer_ids"`
}

type RetailerResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	ContactPerson     *string    `json:"contact_person,omitempty"`
	Email             string     `json:"email"`
	Phone             *string    `json:"phone,omitempty"`
	Location          *string    `json:"location,omitempty"`
	IsActive          bool       `json:"is_active"`
	CommissionGroupID *uuid.UUID `json:"commission_group_id,omitempty"`
	CreatedAt         int64      `json:"created_at"`
	UpdatedAt         int64      `json:"updated_at"`
}

type SupplierResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Kind         string  `json:"kind"`
	Catalog      *string `json:"catalog,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    int64   `json:"created_at"`
	UpdatedAt    int64   `json:"updated_at"`
}

type CommissionGroupResponse struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Description           *string         `json:"description,omitempty"`
	RetailerCommissionPct decimal.Decimal `json:"retailer_commission_pct"`
	AgentCommissionPct    decimal.Decimal `json:"agent_commission_pct"`
	CreatedAt             int64           `json:"created_at"`
	UpdatedAt             int64           `json:"updated_at"`
}

type GroupVoucherResponse struct {
	ID                    string          `json:"id"`
	CommissionGroupID     string          `json:"commission_group_id"`
	SupplierID            string          `json:"supplier_id"`
	SupplierName          string          `json:"supplier_name,omitempty"`
	Name                  string          `json:"name"`
	Vendor                string          `json:"vendor"`
	Category              string          `json:"category"`
	AmountCents           *int64          `json:"amount_cents,omitempty"`
	Amount                *string         `json:"amount,omitempty"`
	RetailerCommissionPct decimal.Decimal `json:"retailer_commission_pct"`
	AgentCommissionPct    decimal.Decimal `json:"agent_commission_pct"`
	CreatedAt             int64           `json:"created_at"`
}

type CandidateResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Vendor      string  `json:"vendor"`
	Category    string  `json:"category"`
	AmountCents *int64  `json:"amount_cents,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Disabled    bool    `json:"disabled"`
}

// FromViews maps a list of views with the same field-name rules as the single mappers.
func FromViews[V, R any](views []*V) []*R {
	res := make([]*R, len(views))
	for i, v := range views {
		r := new(R)
		copyView(r, v)
		res[i] = r
	}
	return res
}

func FromView[V, R any](v *V) *R {
	r := new(R)
	copyView(r, v)
	return r
}

func FromAdminRetailers(adminID uuid.UUID, ids []uuid.UUID) *AdminRetailersResponse {
	res := &AdminRetailersResponse{AdminID: adminID.String(), RetailerIDs: make([]string, len(ids))}
	for i, id := range ids {
		res.RetailerIDs[i] = id.String()
	}
	return res
}

func FromGroupVouchers(views []*queries.GroupVoucherView) []*GroupVoucherResponse {
	res := FromViews[queries.GroupVoucherView, GroupVoucherResponse](views)
	for _, r := range res {
		r.Amount = formatOptionalRand(r.AmountCents)
	}
	return res
}

func FromCandidates(candidates []commissiongroup.Candidate) []*CandidateResponse {
	res := make([]*CandidateResponse, len(candidates))
	for i := range candidates {
		r := &CandidateResponse{}
		copyView(r, &candidates[i])
		r.Amount = formatOptionalRand(r.AmountCents)
		res[i] = r
	}
	return res
}

func formatOptionalRand(cents *int64) *string {
	if cents == nil {
		return nil
	}
	s := money.FormatRand(*cents)
	return &s
}
