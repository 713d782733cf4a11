//go:build unit

package testutil_test

import (
	"testing"

	"airvoucher-admin/tests/common/testutil"

	"github.com/stretchr/testify/assert"
)

func TestDtoMap(t *testing.T) {
	body := map[string]any{"provider": "MTN", "service": "airtime", "amount": "10"}

	got := testutil.DtoMap(t, body,
		testutil.Field("amount", "29.50"),
		testutil.Field("service", nil),
		testutil.Omit("provider"),
	)

	assert.Equal(t, map[string]any{"amount": "29.50"}, got)
	assert.Len(t, body, 3, "source body is not mutated")
}
