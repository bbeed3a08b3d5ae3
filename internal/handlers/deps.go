package handlers

import (
	"time"

	"blackbook/internal/models"
)

type DebtLedger interface {
	Debtors() []models.DebtorRecord
	Debtor(id string) (models.DebtorRecord, bool)
	AddDebtor(name string, baseAmount float64, dueDate *time.Time) models.DebtorRecord
	AddMoreDebt(id string, extraAmount float64) (models.DebtorRecord, bool)
	InterestRate() float64
	SetInterestRate(rate float64)
	TotalOutstanding() float64
	OverdueCount() int
	Upcoming(daysAhead int) []models.DebtorRecord
}

type PreferenceStore interface {
	Mode() models.ThemeMode
	SetMode(mode models.ThemeMode)
	SetSystemScheme(scheme models.ColorScheme)
	ColorScheme() models.ColorScheme
	Notifications() models.NotificationSettings
	SetNotifications(settings models.NotificationSettings)
	Onboarded() bool
	CompleteOnboarding()
}
