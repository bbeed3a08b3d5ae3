package handlers

import (
	"net/http"

	"blackbook/internal/ledger"
	"blackbook/internal/money"
)

// Summary backs the app's summary screen: total owed, the interest/principal
// breakdown, and the debtor counts.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	debtors := h.ledger.Debtors()
	rate := h.ledger.InterestRate()
	total := ledger.TotalOutstanding(debtors)
	principal, interest := ledger.Split(total, rate)

	respondJSON(w, http.StatusOK, map[string]any{
		"total_owed":     money.FormatAmount(total),
		"principal":      money.FormatAmount(principal),
		"interest":       money.FormatAmount(interest),
		"interest_rate":  rate,
		"active_debtors": len(debtors),
		"overdue":        h.ledger.OverdueCount(),
	})
}
