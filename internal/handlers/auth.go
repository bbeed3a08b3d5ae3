package handlers

import (
	"encoding/json"
	"net/http"

	"blackbook/internal/auth"
)

type loginRequest struct {
	Passphrase string `json:"passphrase"`
}

// Login exchanges the owner passphrase for a bearer token. There is a single
// owner; no accounts, no registration.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if !auth.CheckPassword(h.passphraseHash, req.Passphrase) {
		respondError(w, http.StatusUnauthorized, "invalid passphrase")
		return
	}
	token, err := auth.GenerateToken(h.cfg.JWTSecret, "owner", h.cfg.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"token": token,
	})
}
