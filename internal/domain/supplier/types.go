package supplier

import "strings"

type Kind string

const (
	KindStandard   Kind = "standard"
	KindOTT        Kind = "ott"
	KindAggregator Kind = "aggregator"
	KindBatch      Kind = "batch"
)

func NewKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindStandard, KindOTT, KindAggregator, KindBatch:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

// Catalog names the partner bundle list an aggregator supplier resells.
type Catalog string

const (
	CatalogMobileData    Catalog = "mobile_data"
	CatalogMobileAirtime Catalog = "mobile_airtime"
)

func NewCatalog(s string) (Catalog, error) {
	c := Catalog(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CatalogMobileData, CatalogMobileAirtime:
		return c, nil
	default:
		return "", ErrInvalidCatalog
	}
}

// Category is the voucher category the catalog's bundles are sold under.
func (c Catalog) Category() string {
	if c == CatalogMobileData {
		return "data"
	}
	return "airtime"
}

// CatalogForCategory maps a voucher category back to its catalog.
func CatalogForCategory(category string) (Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case CatalogMobileData.Category():
		return CatalogMobileData, nil
	case CatalogMobileAirtime.Category():
		return CatalogMobileAirtime, nil
	default:
		return "", ErrInvalidCatalog
	}
}
