//go:build unit

package money_test

import (
	"fmt"
	"testing"

	"airvoucher-admin/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRand(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "whole rand", input: "5", want: 500},
		{name: "one decimal", input: "12.5", want: 1250},
		{name: "two decimals", input: "29.99", want: 2999},
		{name: "float rounding trap", input: "0.29", want: 29},
		{name: "currency prefix and spaces", input: " R 110.00 ", want: 11000},
		{name: "thousands separator", input: "1,000", want: 100000},
		{name: "thousands with decimals", input: "R1,250,000.5", wantErr: money.ErrAmountTooLarge},
		{name: "grouped thousands and cents", input: "12,345.67", want: 1234567},
		{name: "decimal comma", input: "12,50", want: 1250},
		{name: "decimal comma one digit", input: "R 7,5", want: 750},
		{name: "misplaced comma", input: "1,2345", wantErr: money.ErrInvalidAmount},
		{name: "mixed separators", input: "12,5.0", wantErr: money.ErrInvalidAmount},
		{name: "exponent", input: "1e2", wantErr: money.ErrInvalidAmount},
		{name: "upper exponent", input: "1E30", wantErr: money.ErrInvalidAmount},
		{name: "beyond int64", input: "99999999999999999999", wantErr: money.ErrAmountTooLarge},
		{name: "largest voucher", input: "1000000", want: money.MaxCents},
		{name: "one cent over the cap", input: "1000000.01", wantErr: money.ErrAmountTooLarge},
		{name: "empty", input: "  ", wantErr: money.ErrEmptyAmount},
		{name: "not a number", input: "five", wantErr: money.ErrInvalidAmount},
		{name: "zero", input: "0", wantErr: money.ErrNonPositiveAmount},
		{name: "negative", input: "-5", wantErr: money.ErrNonPositiveAmount},
		{name: "three decimals", input: "1.005", wantErr: money.ErrTooManyDecimals},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.ParseRand(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRand_ExactForAllTwoDecimalInputs(t *testing.T) {
	for cents := int64(1); cents <= 100000; cents += 7 {
		input := fmt.Sprintf("%d.%02d", cents/100, cents%100)
		got, err := money.ParseRand(input)
		require.NoError(t, err, input)
		require.Equal(t, cents, got, input)
	}
}

func TestFromDecimal_RejectsOverflow(t *testing.T) {
	_, err := money.FromDecimal(decimal.RequireFromString("1e30"))
	require.ErrorIs(t, err, money.ErrAmountTooLarge)

	got, err := money.FromDecimal(decimal.RequireFromString("29.5"))
	require.NoError(t, err)
	assert.Equal(t, int64(2950), got)
}

func TestFormatRand(t *testing.T) {
	assert.Equal(t, "R12.50", money.FormatRand(1250))
	assert.Equal(t, "R5.00", money.FormatRand(500))
	assert.Equal(t, "R0.05", money.FormatRand(5))
}
