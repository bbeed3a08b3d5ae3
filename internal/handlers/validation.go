package handlers

import (
	"errors"

	"blackbook/internal/money"
)

var errInvalidAmount = errors.New("invalid amount")

// parsePositiveAmount parses a client-entered amount and rejects zero and
// negative values. The ledger itself accepts anything, so validation lives
// here at the edge, the way the app's forms pre-validate before submitting.
func parsePositiveAmount(raw string) (float64, error) {
	amount, err := money.ParseAmount(raw)
	if err != nil || amount <= 0 {
		return 0, errInvalidAmount
	}
	return amount, nil
}
