package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

// ParseAmount parses a client-entered amount string. At most two decimal
// places are accepted; sign checks are left to the caller.
func ParseAmount(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, ErrInvalidAmount
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if value.Exponent() < -2 {
		return 0, ErrTooManyDecimals
	}
	amount, _ := value.Float64()
	return amount, nil
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

// ApplyInterest marks up an amount by a percentage rate, the one-time simple
// interest applied at the moment debt is recorded.
func ApplyInterest(amount, rate float64) float64 {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate).Div(decimal.NewFromInt(100)))
	result, _ := decimal.NewFromFloat(amount).Mul(factor).Float64()
	return result
}
