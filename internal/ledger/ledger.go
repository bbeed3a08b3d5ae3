// Package ledger owns the debtor list and the global interest rate. It is the
// process-wide state container behind the API: mutations update in-memory
// state synchronously and persist to the key-value store asynchronously,
// best-effort, mirroring how the mobile client treats its device storage.
package ledger

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"blackbook/internal/kvstore"
	"blackbook/internal/models"
	"blackbook/internal/money"
	"blackbook/internal/websocket"
)

// DefaultInterestRate applies when nothing is stored yet.
const DefaultInterestRate = 5.0

const defaultDueIn = 7 * 24 * time.Hour

type SummaryHub interface {
	BroadcastSummary(update websocket.SummaryUpdate)
}

type Ledger struct {
	mu      sync.RWMutex
	store   kvstore.Store
	hub     SummaryHub
	debtors []models.DebtorRecord
	rate    float64
}

func New(store kvstore.Store, hub SummaryHub) *Ledger {
	return &Ledger{
		store: store,
		hub:   hub,
		rate:  DefaultInterestRate,
	}
}

// Hydrate loads persisted state. Missing keys and read failures fall back to
// defaults silently; the app stays usable even when storage is broken.
func (l *Ledger) Hydrate(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if raw, ok, err := l.store.Get(ctx, kvstore.KeyDebtors); err != nil {
		log.Printf("ledger: load debtors: %v", err)
	} else if ok {
		debtors, err := decodeDebtors(raw)
		if err != nil {
			log.Printf("ledger: decode debtors: %v", err)
		} else {
			l.debtors = debtors
		}
	}
	if raw, ok, err := l.store.Get(ctx, kvstore.KeyInterestRate); err != nil {
		log.Printf("ledger: load interest rate: %v", err)
	} else if ok {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("ledger: parse interest rate %q: %v", raw, err)
		} else {
			l.rate = rate
		}
	}
}

// AddDebtor records a new debt with simple interest applied at the current
// rate. The record is prepended so the list stays newest-first. When no due
// date is supplied the debt falls due in seven days. Input validation is the
// caller's job; the ledger itself accepts what it is given.
func (l *Ledger) AddDebtor(name string, baseAmount float64, dueDate *time.Time) models.DebtorRecord {
	l.mu.Lock()
	now := time.Now().UTC()
	due := now.Add(defaultDueIn)
	if dueDate != nil {
		due = dueDate.UTC()
	}
	record := models.DebtorRecord{
		ID:          uuid.NewString(),
		Name:        name,
		Amount:      money.ApplyInterest(baseAmount, l.rate),
		Credibility: models.CredibilityLow,
		Status:      models.StatusUnpaid,
		DueDate:     &due,
		CreatedAt:   now,
	}
	l.debtors = append([]models.DebtorRecord{record}, l.debtors...)
	snapshot := l.encodeLocked()
	l.mu.Unlock()

	l.saveDebtors(snapshot)
	l.broadcast()
	return record
}

// AddMoreDebt increases an existing record's amount by the extra debt plus
// interest at the current rate. An unknown id leaves the ledger untouched;
// the returned bool lets callers decide whether to surface that.
func (l *Ledger) AddMoreDebt(id string, extraAmount float64) (models.DebtorRecord, bool) {
	l.mu.Lock()
	var updated models.DebtorRecord
	found := false
	for i := range l.debtors {
		if l.debtors[i].ID == id {
			l.debtors[i].Amount += money.ApplyInterest(extraAmount, l.rate)
			updated = l.debtors[i]
			found = true
			break
		}
	}
	if !found {
		l.mu.Unlock()
		return models.DebtorRecord{}, false
	}
	snapshot := l.encodeLocked()
	l.mu.Unlock()

	l.saveDebtors(snapshot)
	l.broadcast()
	return updated, true
}

// SetInterestRate replaces the rate for future debt entries only. Amounts on
// existing records are never recomputed.
func (l *Ledger) SetInterestRate(rate float64) {
	l.mu.Lock()
	l.rate = rate
	l.mu.Unlock()

	l.save(kvstore.KeyInterestRate, strconv.FormatFloat(rate, 'f', -1, 64))
	l.broadcast()
}

func (l *Ledger) InterestRate() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rate
}

// Debtors returns a copy of the list, newest-first.
func (l *Ledger) Debtors() []models.DebtorRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.DebtorRecord, len(l.debtors))
	copy(out, l.debtors)
	return out
}

func (l *Ledger) Debtor(id string) (models.DebtorRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, d := range l.debtors {
		if d.ID == id {
			return d, true
		}
	}
	return models.DebtorRecord{}, false
}

func (l *Ledger) TotalOutstanding() float64 {
	return TotalOutstanding(l.Debtors())
}

func (l *Ledger) OverdueCount() int {
	return OverdueCount(l.Debtors(), time.Now())
}

func (l *Ledger) Upcoming(daysAhead int) []models.DebtorRecord {
	return Upcoming(l.Debtors(), time.Now(), daysAhead)
}

func (l *Ledger) encodeLocked() string {
	raw, err := encodeDebtors(l.debtors)
	if err != nil {
		log.Printf("ledger: encode debtors: %v", err)
		return ""
	}
	return raw
}

func (l *Ledger) saveDebtors(snapshot string) {
	if snapshot == "" {
		return
	}
	l.save(kvstore.KeyDebtors, snapshot)
}

// save writes fire-and-forget. Each write carries the whole serialized state,
// so rapid concurrent mutations race and the last write to finish wins. That
// matches the client's behavior and is acceptable for single-user edits.
func (l *Ledger) save(key, value string) {
	go func() {
		if err := l.store.Set(context.Background(), key, value); err != nil {
			log.Printf("ledger: save %s: %v", key, err)
		}
	}()
}

func (l *Ledger) broadcast() {
	if l.hub == nil {
		return
	}
	debtors := l.Debtors()
	l.hub.BroadcastSummary(websocket.SummaryUpdate{
		TotalOutstanding: money.FormatAmount(TotalOutstanding(debtors)),
		DebtorCount:      len(debtors),
		OverdueCount:     OverdueCount(debtors, time.Now()),
		InterestRate:     strconv.FormatFloat(l.InterestRate(), 'f', -1, 64),
	})
}

func encodeDebtors(debtors []models.DebtorRecord) (string, error) {
	if debtors == nil {
		debtors = []models.DebtorRecord{}
	}
	raw, err := json.Marshal(debtors)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeDebtors(raw string) ([]models.DebtorRecord, error) {
	var debtors []models.DebtorRecord
	if err := json.Unmarshal([]byte(raw), &debtors); err != nil {
		return nil, err
	}
	return debtors, nil
}
