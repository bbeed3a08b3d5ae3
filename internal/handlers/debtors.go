package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"blackbook/internal/validator"

	"github.com/go-chi/chi/v5"
)

type createDebtorRequest struct {
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	DueDate string `json:"due_date,omitempty"`
}

func (h *Handler) ListDebtors(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ledger.Debtors())
}

func (h *Handler) CreateDebtor(w http.ResponseWriter, r *http.Request) {
	var req createDebtorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateName(req.Name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := parsePositiveAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_amount")
		return
	}
	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_due_date")
			return
		}
		dueDate = &parsed
	}
	record := h.ledger.AddDebtor(req.Name, amount, dueDate)
	respondJSON(w, http.StatusCreated, record)
}

func (h *Handler) GetDebtor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, ok := h.ledger.Debtor(id)
	if !ok {
		respondError(w, http.StatusNotFound, "debtor not found")
		return
	}
	respondJSON(w, http.StatusOK, record)
}

type addDebtRequest struct {
	Amount string `json:"amount"`
}

func (h *Handler) AddDebt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req addDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	amount, err := parsePositiveAmount(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_amount")
		return
	}
	record, ok := h.ledger.AddMoreDebt(id, amount)
	if !ok {
		respondError(w, http.StatusNotFound, "debtor not found")
		return
	}
	respondJSON(w, http.StatusOK, record)
}
