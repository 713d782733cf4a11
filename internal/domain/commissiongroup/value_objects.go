package commissiongroup

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired         = errors.New("commission group name is required")
	ErrPercentageOutOfRange = errors.New("commission percentage must be between 0 and 100")
	ErrPercentagePrecision  = errors.New("commission percentage cannot have more than two decimal places")
)

var maxPercentage = decimal.NewFromInt(100)

// Percentage fits numeric(5,2).
type Percentage struct {
	value decimal.Decimal
}

func NewPercentage(d decimal.Decimal) (Percentage, error) {
	if d.IsNegative() || d.GreaterThan(maxPercentage) {
		return Percentage{}, ErrPercentageOutOfRange
	}
	if !d.Equal(d.Round(2)) {
		return Percentage{}, ErrPercentagePrecision
	}
	return Percentage{value: d}, nil
}

func (p Percentage) Decimal() decimal.Decimal {
	return p.value
}

func (p Percentage) String() string {
	return p.value.StringFixed(2)
}
