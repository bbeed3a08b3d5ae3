package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blackbook/internal/auth"
	"blackbook/internal/config"
	"blackbook/internal/models"
	"blackbook/internal/websocket"
)

const testPassphrase = "open sesame 42"

type stubLedger struct {
	debtorsFn          func() []models.DebtorRecord
	debtorFn           func(id string) (models.DebtorRecord, bool)
	addDebtorFn        func(name string, baseAmount float64, dueDate *time.Time) models.DebtorRecord
	addMoreDebtFn      func(id string, extraAmount float64) (models.DebtorRecord, bool)
	interestRateFn     func() float64
	setInterestRateFn  func(rate float64)
	totalOutstandingFn func() float64
	overdueCountFn     func() int
	upcomingFn         func(daysAhead int) []models.DebtorRecord
}

func (s stubLedger) Debtors() []models.DebtorRecord {
	if s.debtorsFn == nil {
		return nil
	}
	return s.debtorsFn()
}

func (s stubLedger) Debtor(id string) (models.DebtorRecord, bool) {
	if s.debtorFn == nil {
		return models.DebtorRecord{}, false
	}
	return s.debtorFn(id)
}

func (s stubLedger) AddDebtor(name string, baseAmount float64, dueDate *time.Time) models.DebtorRecord {
	if s.addDebtorFn == nil {
		return models.DebtorRecord{}
	}
	return s.addDebtorFn(name, baseAmount, dueDate)
}

func (s stubLedger) AddMoreDebt(id string, extraAmount float64) (models.DebtorRecord, bool) {
	if s.addMoreDebtFn == nil {
		return models.DebtorRecord{}, false
	}
	return s.addMoreDebtFn(id, extraAmount)
}

func (s stubLedger) InterestRate() float64 {
	if s.interestRateFn == nil {
		return 5
	}
	return s.interestRateFn()
}

func (s stubLedger) SetInterestRate(rate float64) {
	if s.setInterestRateFn != nil {
		s.setInterestRateFn(rate)
	}
}

func (s stubLedger) TotalOutstanding() float64 {
	if s.totalOutstandingFn == nil {
		return 0
	}
	return s.totalOutstandingFn()
}

func (s stubLedger) OverdueCount() int {
	if s.overdueCountFn == nil {
		return 0
	}
	return s.overdueCountFn()
}

func (s stubLedger) Upcoming(daysAhead int) []models.DebtorRecord {
	if s.upcomingFn == nil {
		return nil
	}
	return s.upcomingFn(daysAhead)
}

type stubPrefs struct {
	modeFn               func() models.ThemeMode
	setModeFn            func(mode models.ThemeMode)
	setSystemSchemeFn    func(scheme models.ColorScheme)
	colorSchemeFn        func() models.ColorScheme
	notificationsFn      func() models.NotificationSettings
	setNotificationsFn   func(settings models.NotificationSettings)
	onboardedFn          func() bool
	completeOnboardingFn func()
}

func (s stubPrefs) Mode() models.ThemeMode {
	if s.modeFn == nil {
		return models.ThemeSystem
	}
	return s.modeFn()
}

func (s stubPrefs) SetMode(mode models.ThemeMode) {
	if s.setModeFn != nil {
		s.setModeFn(mode)
	}
}

func (s stubPrefs) SetSystemScheme(scheme models.ColorScheme) {
	if s.setSystemSchemeFn != nil {
		s.setSystemSchemeFn(scheme)
	}
}

func (s stubPrefs) ColorScheme() models.ColorScheme {
	if s.colorSchemeFn == nil {
		return models.SchemeLight
	}
	return s.colorSchemeFn()
}

func (s stubPrefs) Notifications() models.NotificationSettings {
	if s.notificationsFn == nil {
		return models.NotificationSettings{Enabled: true, DaysBefore: 3}
	}
	return s.notificationsFn()
}

func (s stubPrefs) SetNotifications(settings models.NotificationSettings) {
	if s.setNotificationsFn != nil {
		s.setNotificationsFn(settings)
	}
}

func (s stubPrefs) Onboarded() bool {
	if s.onboardedFn == nil {
		return false
	}
	return s.onboardedFn()
}

func (s stubPrefs) CompleteOnboarding() {
	if s.completeOnboardingFn != nil {
		s.completeOnboardingFn()
	}
}

func newTestHandler(t *testing.T, ledger DebtLedger, prefs PreferenceStore) *Handler {
	t.Helper()
	hash, err := auth.HashPassword(testPassphrase)
	if err != nil {
		t.Fatalf("failed to hash passphrase: %v", err)
	}
	cfg := config.Config{
		Port:           "8080",
		JWTSecret:      "secret",
		TokenTTL:       time.Minute,
		AllowedOrigins: "*",
	}
	return New(cfg, hash, ledger, prefs, websocket.NewHub())
}

func authedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken("secret", "owner", time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func jsonBody(payload string) io.Reader {
	return strings.NewReader(payload)
}
