//go:build unit

package commissiongroup_test

import (
	"testing"

	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/domain/supplier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cents(v int64) *int64 { return &v }

func dataCatalog() []commissiongroup.CatalogEntry {
	return []commissiongroup.CatalogEntry{
		{ID: "vc-1gb", Name: "1GB Monthly", Vendor: "vodacom", Category: "data", AmountCents: cents(9900)},
		{Name: "500MB Weekly", Vendor: "", AmountCents: cents(4900)},
		{Name: "2GB Monthly", Vendor: "Cell C"},
	}
}

func TestSelectCandidates_Aggregator(t *testing.T) {
	catalog := supplier.CatalogMobileData
	base := commissiongroup.SelectionInput{
		SupplierName:    "Glocell",
		SupplierKind:    supplier.KindAggregator,
		SupplierCatalog: &catalog,
		Catalog:         dataCatalog(),
	}

	t.Run("normalizes vendors and synthesizes ids", func(t *testing.T) {
		got := commissiongroup.SelectCandidates(base)
		require.Len(t, got, 3)

		assert.Equal(t, "vc-1gb", got[0].ID)
		assert.Equal(t, "VODACOM", got[0].Vendor)
		assert.Equal(t, "data", got[0].Category)

		assert.Equal(t, "MTN", got[1].Vendor, "missing vendor defaults to MTN")
		assert.Equal(t, "500mb-weekly-mtn", got[1].ID)
		assert.Equal(t, "data", got[1].Category, "category falls back to the supplier catalog")

		assert.Equal(t, "CELL C", got[2].Vendor)
		assert.Equal(t, "2gb-monthly-cell-c", got[2].ID)
		for _, c := range got {
			assert.False(t, c.Disabled)
		}
	})

	t.Run("synthesized ids stay unique for repeated catalog entries", func(t *testing.T) {
		in := base
		in.Catalog = []commissiongroup.CatalogEntry{
			{Name: "1GB", Vendor: "MTN", AmountCents: cents(4900)},
			{Name: "1GB", Vendor: "mtn", AmountCents: cents(5900)},
			{Name: "1GB", Vendor: "MTN"},
		}

		got := commissiongroup.SelectCandidates(in)
		require.Len(t, got, 3)
		assert.Equal(t, "1gb-mtn", got[0].ID)
		assert.Equal(t, "1gb-mtn-1", got[1].ID)
		assert.Equal(t, "1gb-mtn-2", got[2].ID)
	})

	t.Run("duplicates are disabled, never dropped", func(t *testing.T) {
		in := base
		in.InSession = []commissiongroup.Selected{{Name: "1gb monthly", Vendor: "VODACOM"}}
		in.Persisted = []commissiongroup.Selected{{Name: "500MB Weekly", Vendor: ""}}

		got := commissiongroup.SelectCandidates(in)
		require.Len(t, got, len(in.Catalog))

		assert.True(t, got[0].Disabled, "in-session duplicate")
		assert.True(t, got[1].Disabled, "persisted duplicate, vendor defaulted on both sides")
		assert.False(t, got[2].Disabled)
	})

	t.Run("same name under another vendor is not a duplicate", func(t *testing.T) {
		in := base
		in.Persisted = []commissiongroup.Selected{{Name: "1GB Monthly", Vendor: "MTN"}}

		got := commissiongroup.SelectCandidates(in)
		assert.False(t, got[0].Disabled)
	})

	t.Run("empty catalog", func(t *testing.T) {
		in := base
		in.Catalog = nil
		assert.Empty(t, commissiongroup.SelectCandidates(in))
	})
}

func TestSelectCandidates_SpecialSuppliers(t *testing.T) {
	t.Run("ott always offers the fixed voucher", func(t *testing.T) {
		in := commissiongroup.SelectionInput{
			SupplierName: "OTT Mobile",
			SupplierKind: supplier.KindOTT,
			Persisted:    []commissiongroup.Selected{{Name: "OTT Voucher", Vendor: "OTT"}},
		}

		got := commissiongroup.SelectCandidates(in)
		require.Len(t, got, 1)
		assert.Equal(t, commissiongroup.OTTVoucherName, got[0].Name)
		assert.Equal(t, commissiongroup.OTTVendor, got[0].Vendor)
		assert.False(t, got[0].Disabled)
	})

	t.Run("batch supplier with a batch count", func(t *testing.T) {
		in := commissiongroup.SelectionInput{
			SupplierName: "Hollywoodbets",
			SupplierKind: supplier.KindBatch,
			BatchCount:   250,
			InSession:    []commissiongroup.Selected{{Name: "Hollywoodbets batch (250 vouchers)", Vendor: "HOLLYWOODBETS"}},
		}

		got := commissiongroup.SelectCandidates(in)
		require.Len(t, got, 1)
		assert.Equal(t, "Hollywoodbets batch (250 vouchers)", got[0].Name)
		assert.False(t, got[0].Disabled)
	})

	t.Run("batch supplier without a batch count", func(t *testing.T) {
		got := commissiongroup.SelectCandidates(commissiongroup.SelectionInput{
			SupplierName: "Hollywoodbets",
			SupplierKind: supplier.KindBatch,
		})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("standard supplier offers nothing", func(t *testing.T) {
		got := commissiongroup.SelectCandidates(commissiongroup.SelectionInput{
			SupplierName: "Flash",
			SupplierKind: supplier.KindStandard,
			Catalog:      dataCatalog(),
		})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
