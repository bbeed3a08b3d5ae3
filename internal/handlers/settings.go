package handlers

import (
	"encoding/json"
	"net/http"

	"blackbook/internal/models"
	"blackbook/internal/validator"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"theme_mode":    h.prefs.Mode(),
		"color_scheme":  h.prefs.ColorScheme(),
		"interest_rate": h.ledger.InterestRate(),
		"notifications": h.prefs.Notifications(),
		"onboarded":     h.prefs.Onboarded(),
	})
}

type setInterestRateRequest struct {
	Rate float64 `json:"rate"`
}

func (h *Handler) SetInterestRate(w http.ResponseWriter, r *http.Request) {
	var req setInterestRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateRate(req.Rate); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.ledger.SetInterestRate(req.Rate)
	respondJSON(w, http.StatusOK, map[string]any{
		"interest_rate": req.Rate,
	})
}

type setThemeRequest struct {
	Mode string `json:"mode"`
	// SystemScheme is the OS scheme the client currently reports, used to
	// resolve the effective scheme when mode is system.
	SystemScheme string `json:"system_scheme,omitempty"`
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateThemeMode(req.Mode); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SystemScheme == string(models.SchemeDark) {
		h.prefs.SetSystemScheme(models.SchemeDark)
	} else if req.SystemScheme == string(models.SchemeLight) {
		h.prefs.SetSystemScheme(models.SchemeLight)
	}
	h.prefs.SetMode(models.ThemeMode(req.Mode))
	respondJSON(w, http.StatusOK, map[string]any{
		"theme_mode":   h.prefs.Mode(),
		"color_scheme": h.prefs.ColorScheme(),
	})
}

type setNotificationsRequest struct {
	Enabled    bool `json:"enabled"`
	DaysBefore int  `json:"days_before"`
}

func (h *Handler) SetNotifications(w http.ResponseWriter, r *http.Request) {
	var req setNotificationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateDaysBefore(req.DaysBefore); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.prefs.SetNotifications(models.NotificationSettings{
		Enabled:    req.Enabled,
		DaysBefore: req.DaysBefore,
	})
	respondJSON(w, http.StatusOK, h.prefs.Notifications())
}

func (h *Handler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{
		"complete": h.prefs.Onboarded(),
	})
}

func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	h.prefs.CompleteOnboarding()
	respondJSON(w, http.StatusOK, map[string]bool{
		"complete": true,
	})
}
