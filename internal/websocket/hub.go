package websocket

import (
	"encoding/json"
	"sync"
)

// SummaryUpdate is pushed to every connected client after a ledger mutation
// so the app can refresh its totals without polling.
type SummaryUpdate struct {
	TotalOutstanding string `json:"total_outstanding"`
	DebtorCount      int    `json:"debtor_count"`
	OverdueCount     int    `json:"overdue_count"`
	InterestRate     string `json:"interest_rate"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *Hub) BroadcastSummary(update SummaryUpdate) {
	payload, _ := json.Marshal(update)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
		}
	}
}
