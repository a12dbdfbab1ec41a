package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fadedpez/tucojack/pkg/storage"
)

// Storage implements file-based storage for preferences
type Storage struct {
	path     string
	mu       sync.RWMutex
	profiles map[string]*storage.Preferences
}

// New creates a new file storage instance
func New(options *storage.Options) (*Storage, error) {
	if options == nil {
		options = storage.NewOptions()
	}

	s := &Storage{
		path:     options.Path,
		profiles: make(map[string]*storage.Preferences),
	}

	// Load existing preferences from file
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return s, nil
}

// LoadPreferences returns a copy of the stored preferences
func (s *Storage) LoadPreferences(ctx context.Context, profileID string) (*storage.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, ok := s.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrPreferencesNotFound, profileID)
	}

	p := *prefs
	return &p, nil
}

// SavePreferences saves or updates the preferences of a profile
func (s *Storage) SavePreferences(ctx context.Context, profileID string, prefs *storage.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *prefs
	p.UpdatedAt = time.Now()
	s.profiles[profileID] = &p

	return s.save()
}

// DeletePreferences deletes a profile
func (s *Storage) DeletePreferences(ctx context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.profiles, profileID)
	return s.save()
}

// Helper functions

func (s *Storage) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, &s.profiles)
}

func (s *Storage) save() error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(s.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
