package models

import "time"

type DebtorStatus string

const (
	StatusUnpaid  DebtorStatus = "Unpaid"
	StatusPartial DebtorStatus = "Partial"
	StatusSettled DebtorStatus = "Settled"
)

type Credibility string

const (
	CredibilityLow    Credibility = "low"
	CredibilityMedium Credibility = "medium"
	CredibilityHigh   Credibility = "high"
)

// DebtorRecord is one tracked person-owes-money entry. The JSON field names
// match the shape the mobile client persists, so a ledger written by either
// side can be read by the other.
type DebtorRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Amount      float64      `json:"amount"`
	Credibility Credibility  `json:"credibility,omitempty"`
	Status      DebtorStatus `json:"status"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

type NotificationSettings struct {
	Enabled    bool `json:"enabled"`
	DaysBefore int  `json:"days_before"`
}
