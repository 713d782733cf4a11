//go:build unit

package voucher_test

import (
	"testing"

	"airvoucher-admin/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	t.Run("telecom provider filters by vendor and category", func(t *testing.T) {
		f, err := voucher.NewFilter("MTN", "airtime")
		require.NoError(t, err)

		require.NotNil(t, f.Vendor)
		require.NotNil(t, f.Category)
		assert.Equal(t, "MTN", *f.Vendor)
		assert.Equal(t, "airtime", *f.Category)
		assert.Nil(t, f.SupplierName)
	})

	t.Run("telecom provider without service leaves category open", func(t *testing.T) {
		f, err := voucher.NewFilter("vodacom", "")
		require.NoError(t, err)

		require.NotNil(t, f.Vendor)
		assert.Equal(t, "vodacom", *f.Vendor)
		assert.Nil(t, f.Category)
	})

	t.Run("non-telecom providers only ever match supplier name", func(t *testing.T) {
		for _, provider := range []string{"Glocell", "OTT", "Hollywoodbets", "Blu Label", "mtn-data-reseller"} {
			t.Run(provider, func(t *testing.T) {
				f, err := voucher.NewFilter(provider, "data")
				require.NoError(t, err)

				require.NotNil(t, f.SupplierName)
				assert.Equal(t, provider, *f.SupplierName)
				assert.Nil(t, f.Vendor, "vendor must never be set for a non-telecom provider")
				assert.Nil(t, f.Category)
			})
		}
	})

	t.Run("blank provider is rejected", func(t *testing.T) {
		_, err := voucher.NewFilter("   ", "airtime")
		assert.ErrorIs(t, err, voucher.ErrProviderRequired)
	})

	t.Run("input is trimmed", func(t *testing.T) {
		f, err := voucher.NewFilter("  Telkom ", " data ")
		require.NoError(t, err)
		assert.Equal(t, "Telkom", *f.Vendor)
		assert.Equal(t, "data", *f.Category)
	})
}

func TestIsTelecomProvider(t *testing.T) {
	for _, p := range []string{"MTN", "mtn", "Vodacom", "CELLC", "CellC", "telkom"} {
		assert.True(t, voucher.IsTelecomProvider(p), p)
	}
	for _, p := range []string{"", "Cell C", "OTT", "Glocell"} {
		assert.False(t, voucher.IsTelecomProvider(p), p)
	}
}

func TestFilter_Describe(t *testing.T) {
	f, _ := voucher.NewFilter("MTN", "airtime")
	assert.Equal(t, "MTN airtime", f.Describe())

	f, _ = voucher.NewFilter("Glocell", "airtime")
	assert.Equal(t, "Glocell", f.Describe())
}
