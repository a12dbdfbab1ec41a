package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/internal/types"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/scheduler"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
	"github.com/fadedpez/tucojack/pkg/services/i18n"
	"github.com/fadedpez/tucojack/pkg/services/sound"
	"github.com/fadedpez/tucojack/pkg/services/statistics"
)

// Observer receives a fresh snapshot after every state change
type Observer func(snap *blackjack.Snapshot)

// Config holds the table settings of a session
type Config struct {
	PlayerID             string
	DealerDelay          time.Duration
	MinBet               int64
	MaxBet               int64
	DisableDrawReshuffle bool
	Seed                 int64

	// Random overrides the seeded source
	Random blackjack.RandomSource
}

// Deps are the collaborators of a session. Everything except Wallet is optional.
type Deps struct {
	Wallet     blackjack.WalletService
	Statistics *statistics.Service
	Sound      *sound.Manager
	Labels     *i18n.Manager
	Clock      quartz.Clock
	Logger     *logging.Logger
}

// Session serializes player actions and dealer steps on one table and
// notifies observers of every change.
type Session struct {
	mu        sync.Mutex
	game      *blackjack.Game
	pacer     *scheduler.Pacer
	dealerRun *scheduler.Run
	dealing   bool
	recorded  string

	stats  *statistics.Service
	sound  *sound.Manager
	labels *i18n.Manager
	logger *logging.Logger

	observersMu sync.RWMutex
	observers   []Observer

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a session in the betting state
func New(cfg Config, deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = logging.Default
	}

	opts := blackjack.Options{
		PlayerID:             cfg.PlayerID,
		MinBet:               cfg.MinBet,
		MaxBet:               cfg.MaxBet,
		DisableDrawReshuffle: cfg.DisableDrawReshuffle,
		Random:               cfg.Random,
		Logger:               deps.Logger,
	}
	if opts.Random == nil {
		opts.Random = blackjack.NewRand(cfg.Seed)
	}
	if deps.Sound != nil {
		opts.Notifier = deps.Sound
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		game:   blackjack.NewGame(deps.Wallet, opts),
		pacer:  scheduler.NewPacer(deps.Clock, cfg.DealerDelay),
		stats:  deps.Statistics,
		sound:  deps.Sound,
		labels: deps.Labels,
		logger: deps.Logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Subscribe registers an observer
func (s *Session) Subscribe(fn Observer) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()
	s.observers = append(s.observers, fn)
}

// Snapshot returns the current table state
func (s *Session) Snapshot(ctx context.Context) (*blackjack.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot(ctx)
}

// PlayerID returns the profile playing this session
func (s *Session) PlayerID() string {
	return s.game.PlayerID()
}

// SetBet selects the wager for the next round
func (s *Session) SetBet(ctx context.Context, amount int64) error {
	return s.do(ctx, "set bet", func() error {
		return s.game.SetBet(ctx, amount)
	})
}

// AdjustBet moves the wager by delta within the allowed range
func (s *Session) AdjustBet(ctx context.Context, delta int64) error {
	return s.do(ctx, "adjust bet", func() error {
		_, err := s.game.AdjustBet(ctx, delta)
		return err
	})
}

// Deal starts a round with the current bet
func (s *Session) Deal(ctx context.Context) error {
	return s.do(ctx, "deal", func() error {
		return s.game.StartGame(ctx)
	})
}

// Hit draws a card for the player
func (s *Session) Hit(ctx context.Context) error {
	return s.do(ctx, "hit", func() error {
		return s.game.Hit(ctx)
	})
}

// Stand ends the player's turn
func (s *Session) Stand(ctx context.Context) error {
	return s.do(ctx, "stand", func() error {
		return s.game.Stand(ctx)
	})
}

// DoubleDown doubles the bet for exactly one more card
func (s *Session) DoubleDown(ctx context.Context) error {
	return s.do(ctx, "double down", func() error {
		return s.game.DoubleDown(ctx)
	})
}

// NewRound clears the table for the next bet
func (s *Session) NewRound(ctx context.Context) error {
	return s.do(ctx, "new round", func() error {
		return s.game.NewGame()
	})
}

// ToggleMute flips sound playback and re-renders
func (s *Session) ToggleMute(ctx context.Context) bool {
	if s.sound == nil {
		return false
	}
	muted := s.sound.ToggleMute(ctx)
	s.Refresh(ctx)
	return muted
}

// SetLanguage switches the label language. Listeners registered with the
// label manager decide whether to re-render.
func (s *Session) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if s.labels == nil {
		return i18n.ErrUnsupportedLanguage
	}
	_, err := s.labels.SetLanguage(ctx, lang)
	return err
}

// Statistics summarizes the player's rounds
func (s *Session) Statistics(ctx context.Context, recent int) (*statistics.Summary, error) {
	if s.stats == nil {
		return nil, errors.New("statistics are not enabled")
	}
	return s.stats.GetSummary(ctx, s.game.PlayerID(), recent)
}

// WaitDealer blocks until a running dealer turn has finished
func (s *Session) WaitDealer() error {
	s.mu.Lock()
	run := s.dealerRun
	s.mu.Unlock()

	if run == nil {
		return nil
	}
	return run.Wait()
}

// Close stops a running dealer turn and waits for pending sounds
func (s *Session) Close() error {
	s.mu.Lock()
	run := s.dealerRun
	s.mu.Unlock()
	if run != nil {
		run.Stop()
	}

	err := s.WaitDealer()
	s.cancel()
	if s.sound != nil {
		s.sound.Wait()
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// do runs a player action. Rule rejections leave the table untouched and
// are only logged; the returned error is for infrastructure failures.
func (s *Session) do(ctx context.Context, name string, action func() error) error {
	s.mu.Lock()
	err := action()
	startDealer := s.settleLocked(ctx)
	snap, snapErr := s.game.Snapshot(ctx)
	s.mu.Unlock()

	if startDealer {
		s.startDealer()
	}
	if snapErr == nil {
		s.notify(snap)
	}

	if err != nil {
		var gameErr *types.GameError
		if types.As(err, &gameErr) && gameErr.Code != types.ErrDatabaseError && gameErr.Code != types.ErrInternalError {
			s.logger.Debug("[SESSION] %s ignored: %v", name, err)
			return nil
		}
		s.logger.Error("[SESSION] %s failed: %v", name, err)
		return err
	}
	return snapErr
}

// settleLocked records a finished round and reports whether a dealer turn
// needs to be started.
func (s *Session) settleLocked(ctx context.Context) bool {
	switch {
	case s.game.State == entities.StateGameOver:
		s.recordLocked(ctx)
	case s.game.InDealerTurn() && !s.dealing:
		s.dealing = true
		return true
	}
	return false
}

func (s *Session) startDealer() {
	run := s.pacer.Start(s.ctx, "dealer", s.dealerStep)

	s.mu.Lock()
	s.dealerRun = run
	s.mu.Unlock()

	go func() {
		if err := run.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("[SESSION] dealer turn failed: %v", err)
		}
	}()
}

func (s *Session) dealerStep(ctx context.Context) (bool, error) {
	s.mu.Lock()
	done, err := s.game.Step(ctx)
	if done {
		s.recordLocked(ctx)
	}
	if done || err != nil {
		s.dealing = false
	}
	snap, snapErr := s.game.Snapshot(ctx)
	s.mu.Unlock()

	if snapErr == nil {
		s.notify(snap)
	}
	return done, err
}

func (s *Session) recordLocked(ctx context.Context) {
	result := s.game.LastResult()
	if result == nil || result.RoundID == s.recorded {
		return
	}
	s.recorded = result.RoundID
	s.logger.Info("[SESSION] round %s: %s bet=%d payout=%d balance=%d", result.RoundID, result.Result, result.Bet, result.Payout, result.BalanceAfter)

	if s.stats == nil {
		return
	}
	if err := s.stats.RecordRound(ctx, result); err != nil {
		s.logger.Warn("[SESSION] could not record round %s: %v", result.RoundID, err)
	}
}

// Refresh sends the current table to every observer
func (s *Session) Refresh(ctx context.Context) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		s.logger.Warn("[SESSION] snapshot failed: %v", err)
		return
	}
	s.notify(snap)
}

func (s *Session) notify(snap *blackjack.Snapshot) {
	s.observersMu.RLock()
	observers := append([]Observer(nil), s.observers...)
	s.observersMu.RUnlock()

	for _, fn := range observers {
		fn(snap)
	}
}
