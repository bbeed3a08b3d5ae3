package handlers

import (
	"net/http"

	"blackbook/internal/config"
	"blackbook/internal/middleware"
	"blackbook/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg            config.Config
	passphraseHash string
	ledger         DebtLedger
	prefs          PreferenceStore
	hub            *websocket.Hub
}

func New(cfg config.Config, passphraseHash string, ledger DebtLedger, prefs PreferenceStore, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:            cfg,
		passphraseHash: passphraseHash,
		ledger:         ledger,
		prefs:          prefs,
		hub:            hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Post("/auth/login", h.Login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))
		r.Get("/debtors", h.ListDebtors)
		r.Post("/debtors", h.CreateDebtor)
		r.Get("/debtors/{id}", h.GetDebtor)
		r.Post("/debtors/{id}/debts", h.AddDebt)
		r.Get("/summary", h.Summary)
		r.Get("/reminders", h.Reminders)
		r.Get("/settings", h.GetSettings)
		r.Put("/settings/interest-rate", h.SetInterestRate)
		r.Put("/settings/theme", h.SetTheme)
		r.Put("/settings/notifications", h.SetNotifications)
		r.Get("/settings/onboarding", h.GetOnboarding)
		r.Post("/settings/onboarding", h.CompleteOnboarding)
	})

	router.Get("/ws/updates", h.WSUpdates)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}
