package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"blackbook/internal/models"
)

// Derived metrics are pure functions over a debtor snapshot, recomputed on
// every read rather than cached.

// TotalOutstanding sums the owed amount across all records.
func TotalOutstanding(debtors []models.DebtorRecord) float64 {
	total := 0.0
	for _, d := range debtors {
		total += d.Amount
	}
	return total
}

// OverdueCount counts records whose due date has passed and which are not
// settled. Records without a due date are never overdue.
func OverdueCount(debtors []models.DebtorRecord, now time.Time) int {
	count := 0
	for _, d := range debtors {
		if d.DueDate == nil || d.Status == models.StatusSettled {
			continue
		}
		if d.DueDate.Before(now) {
			count++
		}
	}
	return count
}

// Upcoming returns the records due within daysAhead days, both boundaries
// inclusive: a debt due right now and one due in exactly daysAhead days are
// both included. Order follows the input, newest-first.
func Upcoming(debtors []models.DebtorRecord, now time.Time, daysAhead int) []models.DebtorRecord {
	out := []models.DebtorRecord{}
	for _, d := range debtors {
		if d.DueDate == nil || d.Status == models.StatusSettled {
			continue
		}
		diffDays := d.DueDate.Sub(now).Hours() / 24
		if diffDays >= 0 && diffDays <= float64(daysAhead) {
			out = append(out, d)
		}
	}
	return out
}

// Split back-computes the principal/interest breakdown of the total from the
// current rate. Records created under an older rate make this an
// approximation; it drives a display card, not bookkeeping.
func Split(total, rate float64) (principal, interest float64) {
	if rate <= 0 {
		return total, 0
	}
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate).Div(decimal.NewFromInt(100)))
	principal, _ = decimal.NewFromFloat(total).Div(factor).Float64()
	return principal, total - principal
}
