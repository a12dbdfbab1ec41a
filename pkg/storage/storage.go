package storage

import (
	"context"
	"errors"
	"time"
)

// Common storage errors
var (
	ErrPreferencesNotFound = errors.New("preferences not found")
)

// Preferences are the per profile settings that survive restarts. The
// bankroll is deliberately not part of them.
type Preferences struct {
	Language  string    `json:"language,omitempty"`
	Muted     bool      `json:"muted"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Storage defines the interface for preference persistence
type Storage interface {
	// LoadPreferences returns the stored preferences of a profile
	LoadPreferences(ctx context.Context, profileID string) (*Preferences, error)

	// SavePreferences saves or replaces the preferences of a profile
	SavePreferences(ctx context.Context, profileID string, prefs *Preferences) error

	// DeletePreferences forgets a profile
	DeletePreferences(ctx context.Context, profileID string) error
}

// Options represents storage configuration options
type Options struct {
	Path string
}

// NewOptions creates a new Options with default values
func NewOptions() *Options {
	return &Options{
		Path: "preferences.json",
	}
}

// Update loads the preferences of profileID, or a zero value when none are
// stored, applies fn and saves the result.
func Update(ctx context.Context, s Storage, profileID string, fn func(*Preferences)) error {
	prefs, err := s.LoadPreferences(ctx, profileID)
	if errors.Is(err, ErrPreferencesNotFound) {
		prefs = &Preferences{}
	} else if err != nil {
		return err
	}

	fn(prefs)
	return s.SavePreferences(ctx, profileID, prefs)
}
