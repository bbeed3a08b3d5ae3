package handlers

import (
	"net/http"

	"blackbook/internal/models"
)

// Reminders returns the debtors due within the configured look-ahead window.
// When notifications are disabled the list is empty, matching the app's
// reminder sheet.
func (h *Handler) Reminders(w http.ResponseWriter, r *http.Request) {
	settings := h.prefs.Notifications()
	upcoming := []models.DebtorRecord{}
	if settings.Enabled {
		upcoming = h.ledger.Upcoming(settings.DaysBefore)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"enabled":     settings.Enabled,
		"days_before": settings.DaysBefore,
		"debtors":     upcoming,
	})
}
