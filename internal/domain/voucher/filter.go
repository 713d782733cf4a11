package voucher

import (
	"errors"
	"strings"
)

var ErrProviderRequired = errors.New("provider is required")

// TelecomProviders are matched on the vendor column; every other provider is a supplier name.
var TelecomProviders = []string{"MTN", "Vodacom", "CellC", "Telkom"}

type Filter struct {
	Vendor       *string
	Category     *string
	SupplierName *string
}

func IsTelecomProvider(provider string) bool {
	provider = strings.TrimSpace(provider)
	for _, p := range TelecomProviders {
		if strings.EqualFold(p, provider) {
			return true
		}
	}
	return false
}

func NewFilter(provider, service string) (Filter, error) {
	provider = strings.TrimSpace(provider)
	service = strings.TrimSpace(service)
	if provider == "" {
		return Filter{}, ErrProviderRequired
	}

	if !IsTelecomProvider(provider) {
		return Filter{SupplierName: &provider}, nil
	}

	f := Filter{Vendor: &provider}
	if service != "" {
		f.Category = &service
	}
	return f, nil
}

// Describe renders the filter the way an operator selected it, e.g. "MTN airtime".
func (f Filter) Describe() string {
	parts := make([]string, 0, 2)
	switch {
	case f.Vendor != nil:
		parts = append(parts, *f.Vendor)
	case f.SupplierName != nil:
		parts = append(parts, *f.SupplierName)
	}
	if f.Category != nil {
		parts = append(parts, *f.Category)
	}
	return strings.Join(parts, " ")
}
