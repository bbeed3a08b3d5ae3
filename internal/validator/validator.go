package validator

import (
	"errors"
	"strings"

	"blackbook/internal/models"
)

var (
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidRate       = errors.New("invalid interest rate")
	ErrInvalidThemeMode  = errors.New("invalid theme mode")
	ErrInvalidDaysBefore = errors.New("invalid days before")
	ErrInvalidPassphrase = errors.New("invalid passphrase")
)

func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > 80 {
		return ErrInvalidName
	}
	return nil
}

// ValidateRate bounds the interest rate to the range the settings slider
// offers.
func ValidateRate(rate float64) error {
	if rate < 0 || rate > 50 {
		return ErrInvalidRate
	}
	return nil
}

func ValidateThemeMode(mode string) error {
	switch models.ThemeMode(mode) {
	case models.ThemeSystem, models.ThemeLight, models.ThemeDark:
		return nil
	}
	return ErrInvalidThemeMode
}

func ValidateDaysBefore(days int) error {
	if days < 0 || days > 30 {
		return ErrInvalidDaysBefore
	}
	return nil
}

func ValidatePassphrase(passphrase string) error {
	if len(passphrase) < 8 {
		return ErrInvalidPassphrase
	}
	return nil
}
