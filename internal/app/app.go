package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coder/quartz"
	"github.com/fadedpez/tucojack/internal/config"
	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/internal/render"
	"github.com/fadedpez/tucojack/pkg/repositories/game"
	walletRepo "github.com/fadedpez/tucojack/pkg/repositories/wallet"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
	"github.com/fadedpez/tucojack/pkg/services/i18n"
	"github.com/fadedpez/tucojack/pkg/services/sound"
	"github.com/fadedpez/tucojack/pkg/services/statistics"
	"github.com/fadedpez/tucojack/pkg/services/wallet"
	"github.com/fadedpez/tucojack/pkg/session"
	"github.com/fadedpez/tucojack/pkg/storage"
	"github.com/fadedpez/tucojack/pkg/storage/file"
)

// Options carries collaborators that differ between the terminal and tests
type Options struct {
	Clock     quartz.Clock
	Sound     sound.Backend
	Random    blackjack.RandomSource
	Transport http.RoundTripper // Elasticsearch client transport
}

// App wires a table session to its storage and presentation
type App struct {
	config   *config.Config
	store    storage.Storage
	results  game.Repository
	stats    *statistics.Service
	sound    *sound.Manager
	labels   *i18n.Manager
	session  *session.Session
	renderer *render.Renderer
}

// New creates the application and restores the stored preferences
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	store, err := file.New(&storage.Options{Path: cfg.PreferencesPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}

	results, err := NewResultRepository(ctx, cfg, opts.Transport)
	if err != nil {
		return nil, err
	}

	labels := i18n.NewManager(store, cfg.PlayerID)
	labels.Init(ctx, cfg.Language)

	sounds := sound.NewManager(opts.Sound, store, cfg.PlayerID)
	sounds.Init(ctx)

	stats := statistics.NewService(results)
	sess := session.New(session.Config{
		PlayerID:             cfg.PlayerID,
		DealerDelay:          cfg.DealerDelay,
		DisableDrawReshuffle: !cfg.ReshuffleEachDraw,
		Seed:                 cfg.RNGSeed,
		Random:               opts.Random,
	}, session.Deps{
		// Balance lives for the session only
		Wallet:     wallet.NewService(walletRepo.NewMemoryRepository(), cfg.InitialBalance),
		Statistics: stats,
		Sound:      sounds,
		Labels:     labels,
		Clock:      opts.Clock,
	})
	refreshCtx := context.WithoutCancel(ctx)
	labels.OnChange(func(i18n.Language) {
		sess.Refresh(refreshCtx)
	})

	return &App{
		config:   cfg,
		store:    store,
		results:  results,
		stats:    stats,
		sound:    sounds,
		labels:   labels,
		session:  sess,
		renderer: render.New(labels),
	}, nil
}

// NewResultRepository opens the round history selected by cfg. With an
// Elasticsearch URL every saved round is indexed as well.
func NewResultRepository(ctx context.Context, cfg *config.Config, transport http.RoundTripper) (game.Repository, error) {
	var repo game.Repository
	switch cfg.StorageType {
	case config.StorageSQLite:
		sqliteRepo, err := game.NewSQLiteRepository(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open round history: %w", err)
		}
		repo = sqliteRepo
	default:
		repo = game.NewMemoryRepository()
	}

	if cfg.ElasticsearchURL == "" {
		return repo, nil
	}

	esRepo, err := game.NewElasticsearchRepository(ctx, repo, &game.ElasticsearchConfig{
		URL:         cfg.ElasticsearchURL,
		Username:    cfg.ElasticsearchUsername,
		Password:    cfg.ElasticsearchPassword,
		IndexPrefix: "tucojack",
		Transport:   transport,
	})
	if err != nil {
		// Indexing is optional; keep playing on the local history
		logging.Default.Warn("[APP] Elasticsearch unavailable, rounds are not indexed: %v", err)
		return repo, nil
	}
	return esRepo, nil
}

// Session returns the table session
func (a *App) Session() *session.Session {
	return a.session
}

// Muted reports whether sound is muted
func (a *App) Muted() bool {
	return a.sound.IsMuted()
}

// View renders the current table
func (a *App) View(ctx context.Context) (string, error) {
	snap, err := a.session.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return a.renderer.Table(snap, a.sound.IsMuted()), nil
}

// OnRender calls fn with a freshly rendered table after every change
func (a *App) OnRender(fn func(view string)) {
	a.session.Subscribe(func(snap *blackjack.Snapshot) {
		fn(a.renderer.Table(snap, a.sound.IsMuted()))
	})
}

// Summary returns the statistics of the configured player
func (a *App) Summary(ctx context.Context, recent int) (*statistics.Summary, error) {
	return a.stats.GetSummary(ctx, a.config.PlayerID, recent)
}

// RenderSummary draws summary with the active labels
func (a *App) RenderSummary(summary *statistics.Summary) string {
	return a.renderer.Summary(summary)
}

// Shutdown stops the dealer and closes the round history
func (a *App) Shutdown() error {
	if err := a.session.Close(); err != nil {
		logging.Default.Warn("[APP] Error closing session: %v", err)
	}
	return a.results.Close()
}
