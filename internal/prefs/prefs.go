// Package prefs holds the user's app preferences: theme mode, reminder
// settings and the onboarding flag. Like the ledger, in-memory state is
// authoritative and saves are asynchronous best-effort.
package prefs

import (
	"context"
	"log"
	"strconv"
	"sync"

	"blackbook/internal/kvstore"
	"blackbook/internal/models"
)

const (
	defaultNotifEnabled    = true
	defaultNotifDaysBefore = 3
)

type Store struct {
	mu           sync.RWMutex
	store        kvstore.Store
	mode         models.ThemeMode
	systemScheme models.ColorScheme
	notif        models.NotificationSettings
	onboarded    bool
}

func New(store kvstore.Store) *Store {
	return &Store{
		store:        store,
		mode:         models.ThemeSystem,
		systemScheme: models.SchemeLight,
		notif: models.NotificationSettings{
			Enabled:    defaultNotifEnabled,
			DaysBefore: defaultNotifDaysBefore,
		},
	}
}

// Hydrate loads persisted preferences, keeping defaults for anything missing
// or unreadable.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw, ok, err := s.store.Get(ctx, kvstore.KeyThemeMode); err != nil {
		log.Printf("prefs: load theme mode: %v", err)
	} else if ok {
		switch models.ThemeMode(raw) {
		case models.ThemeSystem, models.ThemeLight, models.ThemeDark:
			s.mode = models.ThemeMode(raw)
		default:
			log.Printf("prefs: unknown theme mode %q", raw)
		}
	}
	if raw, ok, err := s.store.Get(ctx, kvstore.KeyNotifEnabled); err != nil {
		log.Printf("prefs: load notification flag: %v", err)
	} else if ok {
		s.notif.Enabled = raw == "true"
	}
	if raw, ok, err := s.store.Get(ctx, kvstore.KeyNotifDaysBefore); err != nil {
		log.Printf("prefs: load notification days: %v", err)
	} else if ok {
		days, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("prefs: parse notification days %q: %v", raw, err)
		} else {
			s.notif.DaysBefore = days
		}
	}
	if raw, ok, err := s.store.Get(ctx, kvstore.KeyOnboardingComplete); err != nil {
		log.Printf("prefs: load onboarding flag: %v", err)
	} else if ok {
		s.onboarded = raw == "true"
	}
}

func (s *Store) Mode() models.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode stores the theme preference. Only the mode is persisted; the
// resolved color scheme is always derived.
func (s *Store) SetMode(mode models.ThemeMode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	s.save(kvstore.KeyThemeMode, string(mode))
}

// SetSystemScheme records the OS-reported color scheme the client last saw.
// Not persisted.
func (s *Store) SetSystemScheme(scheme models.ColorScheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systemScheme = scheme
}

// ColorScheme resolves the effective scheme: the system scheme when mode is
// system, the mode's literal value otherwise.
func (s *Store) ColorScheme() models.ColorScheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.mode {
	case models.ThemeLight:
		return models.SchemeLight
	case models.ThemeDark:
		return models.SchemeDark
	default:
		return s.systemScheme
	}
}

func (s *Store) Notifications() models.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notif
}

func (s *Store) SetNotifications(settings models.NotificationSettings) {
	s.mu.Lock()
	s.notif = settings
	s.mu.Unlock()

	s.save(kvstore.KeyNotifEnabled, strconv.FormatBool(settings.Enabled))
	s.save(kvstore.KeyNotifDaysBefore, strconv.Itoa(settings.DaysBefore))
}

func (s *Store) Onboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarded
}

// CompleteOnboarding flips the flag and writes it once; completing again is
// a no-op.
func (s *Store) CompleteOnboarding() {
	s.mu.Lock()
	already := s.onboarded
	s.onboarded = true
	s.mu.Unlock()

	if already {
		return
	}
	s.save(kvstore.KeyOnboardingComplete, "true")
}

func (s *Store) save(key, value string) {
	go func() {
		if err := s.store.Set(context.Background(), key, value); err != nil {
			log.Printf("prefs: save %s: %v", key, err)
		}
	}()
}
