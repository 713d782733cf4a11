package commissiongroup

import (
	"fmt"
	"strings"
	"unicode"

	"airvoucher-admin/internal/domain/supplier"
)

const (
	OTTVoucherName   = "OTT Voucher"
	OTTVendor        = "OTT"
	OTTCategory      = "ott"
	DefaultVendor    = "MTN"
	batchCategory    = "batch"
	ottCandidateSlug = "ott-voucher"
)

// CatalogEntry is one product from the partner bundle catalog; ID and Vendor may be empty.
type CatalogEntry struct {
	ID          string
	Name        string
	Vendor      string
	Category    string
	AmountCents *int64
}

// Selected identifies an entry already chosen in the edit session or saved on the group.
type Selected struct {
	Name   string
	Vendor string
}

type SelectionInput struct {
	SupplierName    string
	SupplierKind    supplier.Kind
	SupplierCatalog *supplier.Catalog
	Catalog         []CatalogEntry
	BatchCount      int
	InSession       []Selected
	Persisted       []Selected
}

type Candidate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Vendor      string `json:"vendor"`
	Category    string `json:"category"`
	AmountCents *int64 `json:"amount_cents,omitempty"`
	Disabled    bool   `json:"disabled"`
}

// SelectCandidates lists what can be attached to a group for one supplier.
// Duplicates of selected entries stay in the list with Disabled set; the OTT and batch
// entries are always offered as-is.
func SelectCandidates(in SelectionInput) []Candidate {
	switch in.SupplierKind {
	case supplier.KindOTT:
		return []Candidate{{
			ID:       ottCandidateSlug,
			Name:     OTTVoucherName,
			Vendor:   OTTVendor,
			Category: OTTCategory,
		}}
	case supplier.KindBatch:
		if in.BatchCount <= 0 {
			return []Candidate{}
		}
		name := fmt.Sprintf("%s batch (%d vouchers)", in.SupplierName, in.BatchCount)
		return []Candidate{{
			ID:       slug(name),
			Name:     name,
			Vendor:   strings.ToUpper(in.SupplierName),
			Category: batchCategory,
		}}
	case supplier.KindAggregator:
		return aggregatorCandidates(in)
	default:
		return []Candidate{}
	}
}

func aggregatorCandidates(in SelectionInput) []Candidate {
	taken := make(map[string]struct{}, len(in.InSession)+len(in.Persisted))
	for _, s := range in.InSession {
		taken[dedupKey(s.Name, s.Vendor)] = struct{}{}
	}
	for _, s := range in.Persisted {
		taken[dedupKey(s.Name, s.Vendor)] = struct{}{}
	}

	defaultCategory := ""
	if in.SupplierCatalog != nil {
		defaultCategory = in.SupplierCatalog.Category()
	}

	result := make([]Candidate, 0, len(in.Catalog))
	ids := make(map[string]struct{}, len(in.Catalog))
	for i, e := range in.Catalog {
		vendor := NormalizeVendor(e.Vendor)
		name := strings.TrimSpace(e.Name)

		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = slug(name) + "-" + slug(vendor)
			if _, seen := ids[id]; seen {
				id = fmt.Sprintf("%s-%d", id, i)
			}
		}
		ids[id] = struct{}{}
		category := strings.TrimSpace(e.Category)
		if category == "" {
			category = defaultCategory
		}

		_, dup := taken[dedupKey(name, vendor)]
		result = append(result, Candidate{
			ID:          id,
			Name:        name,
			Vendor:      vendor,
			Category:    category,
			AmountCents: e.AmountCents,
			Disabled:    dup,
		})
	}
	return result
}

func NormalizeVendor(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	if v == "" {
		return DefaultVendor
	}
	return v
}

func dedupKey(name, vendor string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "\x00" + strings.ToLower(NormalizeVendor(vendor))
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
