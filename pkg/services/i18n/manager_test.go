package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/tucojack/pkg/storage"
	storageMock "github.com/fadedpez/tucojack/pkg/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ManagerTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *storageMock.Storage
	manager *Manager
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = storageMock.New()
	s.manager = NewManager(s.store, "local")
}

func (s *ManagerTestSuite) TearDownTest() {
	s.store.AssertExpectations(s.T())
}

func (s *ManagerTestSuite) TestDefaultsToSpanish() {
	s.Equal(Spanish, s.manager.Language())
	s.Equal("Pedir", s.manager.Translate("hit"))
	s.Equal("Crupier se pasó", s.manager.Translate("dealer-bust"))
}

func (s *ManagerTestSuite) TestUnknownKeyReturnsKey() {
	s.Equal("no-such-key", s.manager.Translate("no-such-key"))
}

func (s *ManagerTestSuite) TestInitRestoresLanguage() {
	s.store.On("LoadPreferences", s.ctx, "local").Return(&storage.Preferences{Language: "en"}, nil)

	s.manager.Init(s.ctx, "")

	s.Equal(English, s.manager.Language())
	s.Equal("You Win!", s.manager.Translate("win"))
}

func (s *ManagerTestSuite) TestInitIgnoresInvalidLanguage() {
	s.store.On("LoadPreferences", s.ctx, "local").Return(&storage.Preferences{Language: "fr"}, nil)

	s.manager.Init(s.ctx, "")

	s.Equal(Spanish, s.manager.Language())
}

func (s *ManagerTestSuite) TestInitWithoutPreferences() {
	s.store.On("LoadPreferences", s.ctx, "local").Return(nil, storage.ErrPreferencesNotFound)

	s.manager.Init(s.ctx, "")

	s.Equal(Spanish, s.manager.Language())
}

func (s *ManagerTestSuite) TestInitUsesPreferredLocale() {
	s.store.On("LoadPreferences", s.ctx, "local").Return(nil, storage.ErrPreferencesNotFound)

	s.manager.Init(s.ctx, "en_GB.UTF-8")

	s.Equal(English, s.manager.Language())
}

func (s *ManagerTestSuite) TestInitStoredLanguageBeatsLocale() {
	s.store.On("LoadPreferences", s.ctx, "local").Return(&storage.Preferences{Language: "es"}, nil)

	s.manager.Init(s.ctx, "en_US.UTF-8")

	s.Equal(Spanish, s.manager.Language())
}

func (s *ManagerTestSuite) TestInitIgnoresUnsupportedLocale() {
	s.store.On("LoadPreferences", s.ctx, "local").Return(nil, storage.ErrPreferencesNotFound)

	s.manager.Init(s.ctx, "C")

	s.Equal(Spanish, s.manager.Language())
}

func (s *ManagerTestSuite) TestSetLanguagePersistsAndNotifies() {
	s.store.On("LoadPreferences", s.ctx, "local").Return(&storage.Preferences{Muted: true}, nil)
	s.store.On("SavePreferences", s.ctx, "local", mock.MatchedBy(func(p *storage.Preferences) bool {
		return p.Language == "en" && p.Muted
	})).Return(nil)

	var notified []Language
	s.manager.OnChange(func(lang Language) {
		notified = append(notified, lang)
	})

	lang, err := s.manager.SetLanguage(s.ctx, English)

	s.Require().NoError(err)
	s.Equal(English, lang)
	s.Equal([]Language{English}, notified)
	s.Equal("Stand", s.manager.Translate("stand"))
}

func (s *ManagerTestSuite) TestSetLanguageRejectsUnsupported() {
	var called bool
	s.manager.OnChange(func(Language) { called = true })

	lang, err := s.manager.SetLanguage(s.ctx, Language("de"))

	s.ErrorIs(err, ErrUnsupportedLanguage)
	s.Equal(Spanish, lang)
	s.False(called)
}

func (s *ManagerTestSuite) TestSetLanguageSaveFailureStillSwitches() {
	s.store.On("LoadPreferences", s.ctx, "local").Return(nil, errors.New("read only"))

	lang, err := s.manager.SetLanguage(s.ctx, English)

	s.NoError(err)
	s.Equal(English, lang)
	s.Equal(English, s.manager.Language())
}

func TestTranslationTablesMatch(t *testing.T) {
	for _, lang := range Supported {
		for _, key := range Keys() {
			_, ok := translations[lang][key]
			assert.True(t, ok, "%s missing key %s", lang, key)
		}
		assert.Len(t, translations[lang], len(Keys()))
	}
}

func TestParseLanguage(t *testing.T) {
	testCases := []struct {
		input    string
		expected Language
		wantErr  bool
	}{
		{"es", Spanish, false},
		{"en", English, false},
		{"en-US", English, false},
		{"es-MX", Spanish, false},
		{"EN", English, false},
		{"en_US.UTF-8", English, false},
		{"es_ES@euro", Spanish, false},
		{"fr:en", English, false},
		{"ja", "", true},
		{"C", "", true},
		{"not a tag!", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			lang, err := ParseLanguage(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedLanguage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, lang)
		})
	}
}

func TestInitWithoutStoreUsesLocale(t *testing.T) {
	m := NewManager(nil, "local")
	m.Init(context.Background(), "fr_FR:en_US")

	assert.Equal(t, English, m.Language())
}

func TestManagerWithoutStore(t *testing.T) {
	m := NewManager(nil, "local")
	m.Init(context.Background(), "")

	lang, err := m.SetLanguage(context.Background(), English)

	assert.NoError(t, err)
	assert.Equal(t, English, lang)
}
