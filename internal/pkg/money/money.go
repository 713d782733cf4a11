package money

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAmount       = errors.New("amount is required")
	ErrInvalidAmount     = errors.New("amount must be a number")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrTooManyDecimals   = errors.New("amount cannot have more than two decimal places")
	ErrAmountTooLarge    = errors.New("amount exceeds R1,000,000")
)

const (
	centsExponent = 2
	// MaxCents caps a single voucher at R1,000,000.
	MaxCents int64 = 100_000_000
)

var (
	plainAmount    = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
	thousandsGroup = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)
	decimalComma   = regexp.MustCompile(`^[+-]?\d+,\d{1,2}$`)
	maxCents       = decimal.NewFromInt(MaxCents)
)

// ParseRand converts a rand amount such as "5", "12.5", "12,50", "1,000" or "R 29.99" to exact cents.
// Exponent notation is rejected.
func ParseRand(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "R"), "r")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyAmount
	}

	switch {
	case thousandsGroup.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	case decimalComma.MatchString(s):
		s = strings.Replace(s, ",", ".", 1)
	}
	if !plainAmount.MatchString(s) {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromDecimal(d)
}

func FromDecimal(d decimal.Decimal) (int64, error) {
	if !d.IsPositive() {
		return 0, ErrNonPositiveAmount
	}

	cents := d.Shift(centsExponent)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, ErrTooManyDecimals
	}
	if cents.GreaterThan(maxCents) {
		return 0, ErrAmountTooLarge
	}
	return cents.IntPart(), nil
}

func ToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -centsExponent)
}

// FormatRand renders cents the way the dashboard shows them: R12.50.
func FormatRand(cents int64) string {
	return "R" + ToDecimal(cents).StringFixed(centsExponent)
}
