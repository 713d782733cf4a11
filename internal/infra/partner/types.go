package partner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BundleProduct is one entry of the partner bundle catalog. ID and Vendor are optional upstream.
type BundleProduct struct {
	ID       string           `json:"id,omitempty"`
	Name     string           `json:"name"`
	Vendor   string           `json:"vendor,omitempty"`
	Category string           `json:"category"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
}

type bundleListResponse struct {
	Bundles []BundleProduct `json:"bundles"`
}

type voucherRequest struct {
	Value    decimal.Decimal `json:"value"`
	Provider string          `json:"provider"`
}

// Voucher is a voucher issued by the partner on request.
type Voucher struct {
	PIN       string          `json:"pin"`
	Serial    string          `json:"serial"`
	Amount    decimal.Decimal `json:"amount"`
	Provider  string          `json:"provider"`
	Reference string          `json:"reference"`
}

// APIError is returned for any non-2xx partner response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("partner api returned status %d: %s", e.StatusCode, e.Body)
}
