package sound

import (
	"context"
	"sync"

	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/storage"
)

// Manager plays game events. Playback is fire-and-forget: Play never blocks
// the caller and never reports an error.
type Manager struct {
	mu        sync.RWMutex
	muted     bool
	backend   Backend
	store     storage.Storage
	profileID string
	wg        sync.WaitGroup
}

// NewManager creates a sound manager. backend and store may be nil, in which
// case nothing is played or nothing is persisted.
func NewManager(backend Backend, store storage.Storage, profileID string) *Manager {
	return &Manager{
		backend:   backend,
		store:     store,
		profileID: profileID,
	}
}

// Init restores the muted flag from storage
func (m *Manager) Init(ctx context.Context) {
	if m.store == nil {
		return
	}

	prefs, err := m.store.LoadPreferences(ctx, m.profileID)
	if err != nil {
		logging.Default.Debug("[SOUND] No stored preferences for %s: %v", m.profileID, err)
		return
	}

	m.mu.Lock()
	m.muted = prefs.Muted
	m.mu.Unlock()
}

// Enabled reports whether the backend can play anything
func (m *Manager) Enabled() bool {
	return m.backend != nil && m.backend.Available()
}

// IsMuted reports whether playback is muted
func (m *Manager) IsMuted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// ToggleMute flips the muted flag, persists it and returns the new value
func (m *Manager) ToggleMute(ctx context.Context) bool {
	m.mu.Lock()
	m.muted = !m.muted
	muted := m.muted
	m.mu.Unlock()

	if m.store != nil {
		err := storage.Update(ctx, m.store, m.profileID, func(p *storage.Preferences) {
			p.Muted = muted
		})
		if err != nil {
			logging.Default.Warn("[SOUND] Error saving mute preference: %v", err)
		}
	}
	return muted
}

// Play plays event in the background
func (m *Manager) Play(event entities.Event) {
	if m.IsMuted() || !m.Enabled() {
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.play(event)
	}()
}

// Wait blocks until every pending playback has returned
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) play(event entities.Event) {
	defer func() {
		if r := recover(); r != nil {
			logging.Default.Warn("[SOUND] Backend panicked playing %s: %v", event, r)
		}
	}()

	err := m.backend.Play(event)
	if err == nil {
		return
	}
	logging.Default.Debug("[SOUND] Could not play %s, using tone: %v", event, err)

	if err := m.backend.Beep(FallbackTone(event)); err != nil {
		logging.Default.Debug("[SOUND] Tone for %s failed: %v", event, err)
	}
}
