package invoice

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const minorUnitExp = -2

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// Money is an amount in minor units of Currency.
type Money struct {
	Minor    int64
	Currency string
}

// ParseMoney parses a decimal string such as "120.50" into minor units.
// Amounts with more than two fractional digits or not above zero are rejected.
func ParseMoney(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal amount", ErrInvalidAmount, amount)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if d.Exponent() < minorUnitExp && !d.Equal(d.Round(-minorUnitExp)) {
		return Money{}, fmt.Errorf("%w: amount %s has more than two decimal places", ErrInvalidAmount, amount)
	}

	minor := d.Shift(-minorUnitExp)
	if minor.GreaterThan(maxMinor) {
		return Money{}, fmt.Errorf("%w: amount %s is too large", ErrInvalidAmount, amount)
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidAmount)
	}

	return Money{
		Minor:    minor.IntPart(),
		Currency: currency,
	}, nil
}

// FormatMinor renders minor units as a fixed two-decimal string.
func FormatMinor(minor int64) string {
	return decimal.New(minor, minorUnitExp).StringFixed(-minorUnitExp)
}
