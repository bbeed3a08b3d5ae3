// Package kvstore is the persistence layer: a string-keyed store holding the
// serialized ledger and preference state. The keys and value shapes are shared
// with the mobile client's local storage, so either side can hydrate from a
// store written by the other.
package kvstore

import "context"

// Storage keys. Values are strings: the debtor list is a JSON array, the
// interest rate a decimal number, the flags literal "true"/"false", the
// days-before threshold an integer.
const (
	KeyDebtors            = "bb:debtors"
	KeyInterestRate       = "bb:interest-rate"
	KeyThemeMode          = "bb:theme-mode"
	KeyNotifEnabled       = "bb:notif-enabled"
	KeyNotifDaysBefore    = "bb:notif-days-before"
	KeyOnboardingComplete = "bb:onboarding-complete"
)

// Store is an asynchronous-friendly key-value store. Get reports ok=false
// when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
