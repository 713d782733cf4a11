package response

import (
	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/pkg/money"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Vendor            string     `json:"vendor"`
	SupplierName      string     `json:"supplier_name"`
	AmountCents       int64      `json:"amount_cents"`
	Amount            string     `json:"amount"`
	Status            string     `json:"status"`
	PIN               *string    `json:"pin,omitempty"`
	Serial            *string    `json:"serial,omitempty"`
	CommissionGroupID *uuid.UUID `json:"commission_group_id,omitempty"`
	ExpiresOn         *string    `json:"expires_at,omitempty"`
	SoldAtUnix        *int64     `json:"sold_at,omitempty"`
	CreatedAt         int64      `json:"created_at"`
	UpdatedAt         int64      `json:"updated_at"`
}

func FromVoucherView(v *queries.VoucherView) *VoucherResponse {
	res := &VoucherResponse{}
	copyView(res, v)
	res.Amount = money.FormatRand(v.AmountCents)
	res.SoldAtUnix = unixPtr(v.SoldAt)
	if v.ExpiresAt != nil {
		d := v.ExpiresAt.Format(voucher.ExpiryDateLayout)
		res.ExpiresOn = &d
	}
	return res
}

func FromVoucherViews(views []*queries.VoucherView) []*VoucherResponse {
	res := make([]*VoucherResponse, len(views))
	for i, v := range views {
		res[i] = FromVoucherView(v)
	}
	return res
}

type VoucherListResponse struct {
	Items      []*VoucherResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromVoucherPage(views []*queries.VoucherView, next *queries.Cursor) *VoucherListResponse {
	res := &VoucherListResponse{Items: FromVoucherViews(views)}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type AvailabilityItemResponse struct {
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amount_cents"`
	Total       int64  `json:"total"`
	Available   int64  `json:"available"`
	Disabled    bool   `json:"disabled"`
}

type AvailabilityResponse struct {
	Provider    string                      `json:"provider"`
	Service     string                      `json:"service"`
	Items       []*AvailabilityItemResponse `json:"items"`
	Unavailable bool                        `json:"unavailable"`
	Message     string                      `json:"message,omitempty"`
}

func FromAvailability(r *queries.AvailabilityResult) *AvailabilityResponse {
	res := &AvailabilityResponse{
		Provider:    r.Provider,
		Service:     r.Service,
		Items:       make([]*AvailabilityItemResponse, len(r.Items)),
		Unavailable: r.Unavailable,
		Message:     r.Message,
	}
	for i, it := range r.Items {
		res.Items[i] = &AvailabilityItemResponse{
			Amount:      money.FormatRand(it.AmountCents),
			AmountCents: it.AmountCents,
			Total:       it.Total,
			Available:   it.Available,
			Disabled:    it.Disabled,
		}
	}
	return res
}

type PickedVoucherResponse struct {
	Voucher  *VoucherResponse `json:"voucher"`
	External bool             `json:"external"`
}

func FromPickedVoucher(p *queries.PickedVoucher) *PickedVoucherResponse {
	return &PickedVoucherResponse{
		Voucher:  FromVoucherView(p.Voucher),
		External: p.External,
	}
}

type UploadResponse struct {
	Inserted int  `json:"inserted"`
	Replayed bool `json:"replayed"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
