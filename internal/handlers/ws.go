package handlers

import (
	"net/http"

	"blackbook/internal/auth"
	"blackbook/internal/websocket"
)

// WSUpdates upgrades to a websocket and streams ledger summaries. Browsers
// cannot set an Authorization header on the upgrade request, so the token
// travels in the query string.
func (h *Handler) WSUpdates(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if _, err := auth.ParseToken(h.cfg.JWTSecret, token); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	websocket.ServeWS(w, r, h.hub)
}
