package ledger

import (
	"context"
	"math"
	"reflect"
	"sync"
	"testing"
	"time"

	"blackbook/internal/kvstore"
	"blackbook/internal/models"
	"blackbook/internal/websocket"
)

type stubStore struct {
	mu     sync.Mutex
	values map[string]string
	sets   chan string
	getErr error
	setErr error
}

func newStubStore() *stubStore {
	return &stubStore{
		values: make(map[string]string),
		sets:   make(chan string, 16),
	}
}

func (s *stubStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *stubStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	if s.setErr == nil {
		s.values[key] = value
	}
	err := s.setErr
	s.mu.Unlock()
	s.sets <- key
	return err
}

func (s *stubStore) Close() error { return nil }

func (s *stubStore) value(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

type stubHub struct {
	mu      sync.Mutex
	updates []websocket.SummaryUpdate
}

func (h *stubHub) BroadcastSummary(update websocket.SummaryUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.updates = append(h.updates, update)
}

func (h *stubHub) last(t *testing.T) websocket.SummaryUpdate {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.updates) == 0 {
		t.Fatalf("expected at least one broadcast")
	}
	return h.updates[len(h.updates)-1]
}

func waitForSet(t *testing.T, sets <-chan string, key string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case k := <-sets:
			if k == key {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for save of %s", key)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAddDebtorAppliesInterest(t *testing.T) {
	l := New(newStubStore(), nil)

	before := time.Now().UTC()
	record := l.AddDebtor("Asisipho", 500, nil)

	if !almostEqual(record.Amount, 525) {
		t.Fatalf("expected amount 525, got %v", record.Amount)
	}
	if record.Status != models.StatusUnpaid {
		t.Fatalf("expected Unpaid, got %s", record.Status)
	}
	if record.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if record.CreatedAt.Before(before) {
		t.Fatalf("expected createdAt to be set at creation")
	}
	if record.DueDate == nil {
		t.Fatalf("expected default due date")
	}
	wantDue := record.CreatedAt.Add(7 * 24 * time.Hour)
	if diff := record.DueDate.Sub(wantDue); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expected due date 7 days out, got %v", record.DueDate)
	}

	debtors := l.Debtors()
	if len(debtors) != 1 || debtors[0].ID != record.ID {
		t.Fatalf("expected new record first in list, got %#v", debtors)
	}
}

func TestAddDebtorCustomDueDate(t *testing.T) {
	l := New(newStubStore(), nil)

	due := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	record := l.AddDebtor("Sipho", 200, &due)

	if record.DueDate == nil || !record.DueDate.Equal(due) {
		t.Fatalf("expected due date %v, got %v", due, record.DueDate)
	}
}

func TestAddDebtorPrepends(t *testing.T) {
	l := New(newStubStore(), nil)

	first := l.AddDebtor("First", 100, nil)
	second := l.AddDebtor("Second", 100, nil)

	debtors := l.Debtors()
	if len(debtors) != 2 {
		t.Fatalf("expected 2 debtors, got %d", len(debtors))
	}
	if debtors[0].ID != second.ID || debtors[1].ID != first.ID {
		t.Fatalf("expected newest-first order")
	}
}

func TestSetInterestRateNonRetroactive(t *testing.T) {
	l := New(newStubStore(), nil)

	l.AddDebtor("Asisipho", 500, nil)
	l.SetInterestRate(10)
	second := l.AddDebtor("Sipho", 200, nil)

	debtors := l.Debtors()
	if !almostEqual(debtors[1].Amount, 525) {
		t.Fatalf("rate change must not touch existing amounts, got %v", debtors[1].Amount)
	}
	if !almostEqual(second.Amount, 220) {
		t.Fatalf("expected 220 at rate 10, got %v", second.Amount)
	}
	if !almostEqual(l.TotalOutstanding(), 745) {
		t.Fatalf("expected total 745, got %v", l.TotalOutstanding())
	}
	if l.OverdueCount() != 0 {
		t.Fatalf("expected no overdue debtors, got %d", l.OverdueCount())
	}
}

func TestSetInterestRateIdempotent(t *testing.T) {
	l := New(newStubStore(), nil)
	record := l.AddDebtor("Asisipho", 500, nil)

	l.SetInterestRate(10)
	l.SetInterestRate(10)

	if l.InterestRate() != 10 {
		t.Fatalf("expected rate 10, got %v", l.InterestRate())
	}
	got, ok := l.Debtor(record.ID)
	if !ok || !almostEqual(got.Amount, 525) {
		t.Fatalf("expected amount unchanged at 525, got %v", got.Amount)
	}
}

func TestAddMoreDebtAppliesCurrentRate(t *testing.T) {
	l := New(newStubStore(), nil)
	record := l.AddDebtor("Asisipho", 500, nil)

	l.SetInterestRate(10)
	updated, ok := l.AddMoreDebt(record.ID, 100)
	if !ok {
		t.Fatalf("expected debtor to be found")
	}
	if !almostEqual(updated.Amount, 635) {
		t.Fatalf("expected 525 + 110 = 635, got %v", updated.Amount)
	}
}

func TestAddMoreDebtUnknownID(t *testing.T) {
	l := New(newStubStore(), nil)
	l.AddDebtor("Asisipho", 500, nil)

	_, ok := l.AddMoreDebt("missing", 100)
	if ok {
		t.Fatalf("expected unknown id to report not found")
	}
	if !almostEqual(l.TotalOutstanding(), 525) {
		t.Fatalf("expected ledger untouched, got total %v", l.TotalOutstanding())
	}
}

func TestHydrateLoadsState(t *testing.T) {
	store := newStubStore()
	due := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	raw, err := encodeDebtors([]models.DebtorRecord{
		{ID: "d-1", Name: "Asisipho", Amount: 525, Status: models.StatusUnpaid, DueDate: &due, CreatedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.values[kvstore.KeyDebtors] = raw
	store.values[kvstore.KeyInterestRate] = "12.5"

	l := New(store, nil)
	l.Hydrate(context.Background())

	if l.InterestRate() != 12.5 {
		t.Fatalf("expected rate 12.5, got %v", l.InterestRate())
	}
	debtors := l.Debtors()
	if len(debtors) != 1 || debtors[0].ID != "d-1" || !almostEqual(debtors[0].Amount, 525) {
		t.Fatalf("unexpected debtors: %#v", debtors)
	}
}

func TestHydrateDefaultsOnReadFailure(t *testing.T) {
	store := newStubStore()
	store.getErr = context.DeadlineExceeded

	l := New(store, nil)
	l.Hydrate(context.Background())

	if l.InterestRate() != DefaultInterestRate {
		t.Fatalf("expected default rate, got %v", l.InterestRate())
	}
	if len(l.Debtors()) != 0 {
		t.Fatalf("expected empty ledger")
	}
}

func TestHydrateDefaultsOnCorruptDebtors(t *testing.T) {
	store := newStubStore()
	store.values[kvstore.KeyDebtors] = "not json"
	store.values[kvstore.KeyInterestRate] = "7"

	l := New(store, nil)
	l.Hydrate(context.Background())

	if len(l.Debtors()) != 0 {
		t.Fatalf("expected empty ledger on corrupt data")
	}
	if l.InterestRate() != 7 {
		t.Fatalf("expected rate 7, got %v", l.InterestRate())
	}
}

func TestAddDebtorPersistsSnapshot(t *testing.T) {
	store := newStubStore()
	l := New(store, nil)

	record := l.AddDebtor("Asisipho", 500, nil)
	waitForSet(t, store.sets, kvstore.KeyDebtors)

	stored, err := decodeDebtors(store.value(kvstore.KeyDebtors))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != record.ID || !almostEqual(stored[0].Amount, 525) {
		t.Fatalf("unexpected persisted state: %#v", stored)
	}
}

func TestSetInterestRatePersists(t *testing.T) {
	store := newStubStore()
	l := New(store, nil)

	l.SetInterestRate(7.5)
	waitForSet(t, store.sets, kvstore.KeyInterestRate)

	if got := store.value(kvstore.KeyInterestRate); got != "7.5" {
		t.Fatalf("expected 7.5, got %q", got)
	}
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	store := newStubStore()
	store.setErr = context.DeadlineExceeded
	l := New(store, nil)

	record := l.AddDebtor("Asisipho", 500, nil)
	waitForSet(t, store.sets, kvstore.KeyDebtors)

	// In-memory state is authoritative regardless of persistence failures.
	if got, ok := l.Debtor(record.ID); !ok || !almostEqual(got.Amount, 525) {
		t.Fatalf("expected record to survive save failure, got %#v (ok=%v)", got, ok)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	due := time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC)
	original := []models.DebtorRecord{
		{ID: "d-1", Name: "Asisipho", Amount: 525, Credibility: models.CredibilityLow, Status: models.StatusUnpaid, DueDate: &due, CreatedAt: time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)},
		{ID: "d-2", Name: "Sipho", Amount: 220, Status: models.StatusSettled, CreatedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
	}

	raw, err := encodeDebtors(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := decodeDebtors(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch:\n%#v\n%#v", original, decoded)
	}
}

func TestMutationsBroadcastSummary(t *testing.T) {
	hub := &stubHub{}
	l := New(newStubStore(), hub)

	l.AddDebtor("Asisipho", 500, nil)
	update := hub.last(t)
	if update.DebtorCount != 1 || update.TotalOutstanding != "525.00" {
		t.Fatalf("unexpected update: %#v", update)
	}

	l.SetInterestRate(10)
	update = hub.last(t)
	if update.InterestRate != "10" {
		t.Fatalf("expected rate 10 in update, got %#v", update)
	}
}
