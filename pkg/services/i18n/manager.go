package i18n

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/pkg/storage"
	"golang.org/x/text/language"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a supported UI language code
type Language string

const (
	Spanish Language = "es"
	English Language = "en"

	DefaultLanguage = Spanish
)

// Supported lists the UI languages, default first
var Supported = []Language{Spanish, English}

var matcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})

// ParseLanguage maps a BCP 47 tag such as "en-US", or a POSIX locale such
// as "es_MX.UTF-8", to a supported language. A colon separated list, as in
// $LANGUAGE, picks the first entry that matches.
func ParseLanguage(s string) (Language, error) {
	var tags []language.Tag
	for _, entry := range strings.Split(s, ":") {
		if i := strings.IndexAny(entry, ".@"); i >= 0 {
			entry = entry[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(entry, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}

	for _, tag := range tags {
		_, index, confidence := matcher.Match(tag)
		if confidence != language.No {
			return Supported[index], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Manager resolves label keys into the active language
type Manager struct {
	mu        sync.RWMutex
	language  Language
	store     storage.Storage
	profileID string
	listeners []func(Language)
}

// NewManager creates a manager in the default language. store may be nil.
func NewManager(store storage.Storage, profileID string) *Manager {
	return &Manager{
		language:  DefaultLanguage,
		store:     store,
		profileID: profileID,
	}
}

// Init restores the stored language. Without a stored choice, preferred
// (a locale such as $LANG) picks the language. Anything unusable keeps the default.
func (m *Manager) Init(ctx context.Context, preferred string) {
	lang, ok := m.storedLanguage(ctx)
	if !ok && preferred != "" {
		parsed, err := ParseLanguage(preferred)
		if err != nil {
			logging.Default.Debug("[I18N] Ignoring preferred language: %v", err)
			return
		}
		lang, ok = parsed, true
	}
	if !ok {
		return
	}

	m.mu.Lock()
	m.language = lang
	m.mu.Unlock()
}

func (m *Manager) storedLanguage(ctx context.Context) (Language, bool) {
	if m.store == nil {
		return "", false
	}

	prefs, err := m.store.LoadPreferences(ctx, m.profileID)
	if err != nil {
		logging.Default.Debug("[I18N] No stored preferences for %s: %v", m.profileID, err)
		return "", false
	}

	lang := Language(prefs.Language)
	_, ok := translations[lang]
	return lang, ok
}

// Language returns the active language
func (m *Manager) Language() Language {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.language
}

// SetLanguage switches the active language, persists it and notifies listeners
func (m *Manager) SetLanguage(ctx context.Context, lang Language) (Language, error) {
	if _, ok := translations[lang]; !ok {
		return m.Language(), fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	m.mu.Lock()
	m.language = lang
	listeners := append([]func(Language){}, m.listeners...)
	m.mu.Unlock()

	if m.store != nil {
		err := storage.Update(ctx, m.store, m.profileID, func(p *storage.Preferences) {
			p.Language = string(lang)
		})
		if err != nil {
			logging.Default.Warn("[I18N] Error saving language preference: %v", err)
		}
	}

	for _, fn := range listeners {
		fn(lang)
	}
	return lang, nil
}

// OnChange registers fn to be called after every language switch
func (m *Manager) OnChange(fn func(Language)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Translate returns the text for key in the active language, or key itself
// when there is no entry.
func (m *Manager) Translate(key string) string {
	if text, ok := translations[m.Language()][key]; ok {
		return text
	}
	return key
}

// Keys returns every label key, sorted
func Keys() []string {
	keys := make([]string, 0, len(translations[DefaultLanguage]))
	for key := range translations[DefaultLanguage] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
