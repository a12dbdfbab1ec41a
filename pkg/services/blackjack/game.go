package blackjack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/internal/types"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/google/uuid"
)

var (
	ErrInvalidAction     = types.NewGameError(types.ErrInvalidState, "invalid action for current game state")
	ErrRoundInProgress   = types.NewGameError(types.ErrRoundActive, "round already in progress")
	ErrInsufficientFunds = types.NewGameError(types.ErrInsufficientFunds, "balance does not cover the bet")
	ErrInvalidBet        = types.NewGameError(types.ErrInvalidBet, "bet outside the allowed range")
	ErrCannotDoubleDown  = types.NewGameError(types.ErrInvalidAction, "double down needs a single card hand")
)

// WalletService defines the balance operations the game needs
type WalletService interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	AddFunds(ctx context.Context, userID string, amount int64, txType entities.TransactionType, referenceID string) error
	RemoveFunds(ctx context.Context, userID string, amount int64, txType entities.TransactionType, referenceID string) error
}

// Options configures a Game. Zero values select the house defaults.
type Options struct {
	PlayerID string
	MinBet   int64
	MaxBet   int64

	// DisableDrawReshuffle skips the re-randomization before every draw.
	// Decks are still shuffled when created.
	DisableDrawReshuffle bool

	Random   RandomSource
	Notifier Notifier
	Logger   *logging.Logger
}

// Game is a single player blackjack table. It is not safe for concurrent use;
// callers serialize access.
type Game struct {
	RoundID     string
	State       entities.GameState
	Deck        *entities.Deck
	Player      *Hand
	Dealer      *Hand
	CurrentBet  int64
	Result      entities.Result
	Payout      int64
	DoubledDown bool

	playerID   string
	minBet     int64
	maxBet     int64
	decks      *DeckManager
	dealing    *DealingService
	wallet     WalletService
	notifier   Notifier
	logger     *logging.Logger
	lastResult *entities.GameResult
}

// NewGame creates a table in the betting state with a freshly shuffled deck
func NewGame(wallet WalletService, opts Options) *Game {
	if opts.PlayerID == "" {
		opts.PlayerID = "local"
	}
	if opts.MinBet <= 0 {
		opts.MinBet = MinBet
	}
	if opts.MaxBet <= 0 {
		opts.MaxBet = MaxBet
	}
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default
	}

	decks := NewDeckManager(opts.Random, opts.Notifier)
	g := &Game{
		State:      entities.StateBetting,
		Player:     NewHand(),
		Dealer:     NewHand(),
		CurrentBet: opts.MinBet,
		playerID:   opts.PlayerID,
		minBet:     opts.MinBet,
		maxBet:     opts.MaxBet,
		decks:      decks,
		dealing:    NewDealingService(decks, opts.Notifier, !opts.DisableDrawReshuffle),
		wallet:     wallet,
		notifier:   opts.Notifier,
		logger:     opts.Logger,
	}
	g.Deck = decks.CreateDeck()
	return g
}

// PlayerID returns the profile the table debits and credits
func (g *Game) PlayerID() string {
	return g.playerID
}

// MinBet returns the smallest accepted wager
func (g *Game) MinBet() int64 {
	return g.minBet
}

// Balance returns the player's current balance
func (g *Game) Balance(ctx context.Context) (int64, error) {
	return g.wallet.GetBalance(ctx, g.playerID)
}

// MaxAllowedBet returns the largest bet the player can place right now
func (g *Game) MaxAllowedBet(ctx context.Context) (int64, error) {
	balance, err := g.Balance(ctx)
	if err != nil {
		return 0, err
	}
	return min(g.maxBet, balance), nil
}

// SetBet selects the wager for the next round
func (g *Game) SetBet(ctx context.Context, amount int64) error {
	if g.State != entities.StateBetting {
		return ErrInvalidAction
	}

	maxBet, err := g.MaxAllowedBet(ctx)
	if err != nil {
		return err
	}
	if amount < g.minBet || amount > maxBet {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidBet, amount, g.minBet, maxBet)
	}

	g.CurrentBet = amount
	return nil
}

// AdjustBet moves the wager by delta, clamped to the allowed range, and returns the new bet
func (g *Game) AdjustBet(ctx context.Context, delta int64) (int64, error) {
	if g.State != entities.StateBetting {
		return g.CurrentBet, ErrInvalidAction
	}

	maxBet, err := g.MaxAllowedBet(ctx)
	if err != nil {
		return g.CurrentBet, err
	}

	bet := g.CurrentBet + delta
	if bet > maxBet {
		bet = maxBet
	}
	if bet < g.minBet {
		bet = g.minBet
	}
	g.CurrentBet = bet
	return bet, nil
}

// CanStart reports whether StartGame would succeed
func (g *Game) CanStart(ctx context.Context) bool {
	if g.State != entities.StateBetting {
		return false
	}
	balance, err := g.Balance(ctx)
	return err == nil && balance >= g.CurrentBet
}

// CanHit reports whether the player may take a card
func (g *Game) CanHit() bool {
	return g.State == entities.StatePlayerTurn
}

// CanDoubleDown reports whether DoubleDown would succeed
func (g *Game) CanDoubleDown(ctx context.Context) bool {
	if g.State != entities.StatePlayerTurn || g.Player.Len() != 1 {
		return false
	}
	balance, err := g.Balance(ctx)
	return err == nil && balance >= g.CurrentBet
}

// StartGame takes the bet and deals one card to the player and two to the
// dealer, the second face down.
func (g *Game) StartGame(ctx context.Context) error {
	if g.State != entities.StateBetting {
		return ErrRoundInProgress
	}

	balance, err := g.Balance(ctx)
	if err != nil {
		return err
	}
	if balance < g.CurrentBet {
		return ErrInsufficientFunds
	}

	roundID := uuid.New().String()
	if err := g.wallet.RemoveFunds(ctx, g.playerID, g.CurrentBet, entities.TransactionTypeBet, roundID); err != nil {
		return fmt.Errorf("error taking bet: %w", err)
	}
	g.notifier.Play(entities.EventBet)

	g.RoundID = roundID
	g.Result = entities.ResultNone
	g.Payout = 0
	g.DoubledDown = false
	g.lastResult = nil
	g.Player.Clear()
	g.Dealer.Clear()
	g.Deck = g.decks.CreateDeck()

	deals := []struct {
		hand   *Hand
		hidden bool
	}{
		{g.Player, false},
		{g.Dealer, false},
		{g.Dealer, true},
	}
	for _, d := range deals {
		card, err := g.draw(d.hidden)
		if err != nil {
			return err
		}
		if err := d.hand.AddCard(card); err != nil {
			return err
		}
	}

	g.State = entities.StatePlayerTurn
	g.logger.Debug("round %s started: bet=%d player=%v dealer=%v", g.RoundID, g.CurrentBet, g.Player.Strings(), g.Dealer.Strings())
	return nil
}

// Hit draws one card for the player. Busting ends the round, reaching 21
// hands over to the dealer.
func (g *Game) Hit(ctx context.Context) error {
	if g.State != entities.StatePlayerTurn {
		return ErrInvalidAction
	}

	card, err := g.draw(false)
	if err != nil {
		return err
	}
	if err := g.Player.AddCard(card); err != nil {
		return err
	}

	value := g.Player.Value()
	g.logger.Debug("player hits %s, value %d", card, value)

	switch {
	case value > BlackjackValue:
		return g.finish(ctx)
	case value == BlackjackValue:
		return g.beginDealerTurn(ctx)
	}
	return nil
}

// Stand ends the player's turn
func (g *Game) Stand(ctx context.Context) error {
	if g.State != entities.StatePlayerTurn {
		return ErrInvalidAction
	}

	g.logger.Debug("player stands on %d", g.Player.Value())
	return g.beginDealerTurn(ctx)
}

// DoubleDown doubles the bet, draws exactly one card and ends the player's turn
func (g *Game) DoubleDown(ctx context.Context) error {
	if g.State != entities.StatePlayerTurn {
		return ErrInvalidAction
	}
	if g.Player.Len() != 1 {
		return ErrCannotDoubleDown
	}

	balance, err := g.Balance(ctx)
	if err != nil {
		return err
	}
	if balance < g.CurrentBet {
		return ErrInsufficientFunds
	}

	if err := g.wallet.RemoveFunds(ctx, g.playerID, g.CurrentBet, entities.TransactionTypeDoubleDown, g.RoundID); err != nil {
		return fmt.Errorf("error taking double down bet: %w", err)
	}
	g.notifier.Play(entities.EventDoubleDown)
	g.CurrentBet *= 2
	g.DoubledDown = true

	card, err := g.draw(false)
	if err != nil {
		return err
	}
	if err := g.Player.AddCard(card); err != nil {
		return err
	}

	g.logger.Debug("player doubles down to %d, draws %s", g.CurrentBet, card)
	return g.beginDealerTurn(ctx)
}

// InDealerTurn reports whether the dealer still has steps to play
func (g *Game) InDealerTurn() bool {
	return g.State == entities.StateDealerTurn
}

// Step plays a single dealer action: one card while the dealer is under 17,
// otherwise the round is resolved. It reports whether the round is over.
func (g *Game) Step(ctx context.Context) (bool, error) {
	if g.State != entities.StateDealerTurn {
		return false, ErrInvalidAction
	}

	if g.Dealer.Value() < DealerStandValue {
		card, err := g.draw(false)
		if err != nil {
			return false, err
		}
		if err := g.Dealer.AddCard(card); err != nil {
			return false, err
		}
		g.logger.Debug("dealer draws %s, value %d", card, g.Dealer.Value())
		return false, nil
	}

	if err := g.finish(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// PlayDealer runs the dealer's turn to completion without pacing
func (g *Game) PlayDealer(ctx context.Context) error {
	for g.InDealerTurn() {
		if _, err := g.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// NewGame clears the table for the next round. The balance is untouched.
func (g *Game) NewGame() error {
	if g.State != entities.StateGameOver && g.State != entities.StateBetting {
		return ErrRoundInProgress
	}

	g.RoundID = ""
	g.Player.Clear()
	g.Dealer.Clear()
	g.Result = entities.ResultNone
	g.Payout = 0
	g.DoubledDown = false
	g.CurrentBet = g.minBet
	g.Deck = g.decks.CreateDeck()
	g.State = entities.StateBetting
	return nil
}

// LastResult returns the record of the most recently resolved round, or nil
func (g *Game) LastResult() *entities.GameResult {
	return g.lastResult
}

func (g *Game) beginDealerTurn(ctx context.Context) error {
	g.State = entities.StateDealerTurn
	g.Dealer.Reveal()
	g.logger.Debug("dealer reveals %v, value %d", g.Dealer.Strings(), g.Dealer.Value())

	if g.Player.Value() > BlackjackValue {
		return g.finish(ctx)
	}
	return nil
}

func (g *Game) finish(ctx context.Context) error {
	playerValue := g.Player.Value()
	// A bust ends the round with the hole card still face down on the table;
	// the record keeps the full dealer hand.
	dealerCards := g.Dealer.Revealed()
	dealerValue := HandValue(dealerCards)
	result, payout := Resolve(playerValue, dealerValue, g.Player.Len(), g.CurrentBet)

	if payout > 0 {
		if err := g.wallet.AddFunds(ctx, g.playerID, payout, entities.TransactionTypePayout, g.RoundID); err != nil {
			return fmt.Errorf("error paying out round %s: %w", g.RoundID, err)
		}
	}
	if event, ok := OutcomeEvent(result); ok {
		g.notifier.Play(event)
	}

	balance, err := g.Balance(ctx)
	if err != nil {
		g.logger.Warn("could not read balance after round %s: %v", g.RoundID, err)
	}

	g.Result = result
	g.Payout = payout
	g.State = entities.StateGameOver
	g.lastResult = &entities.GameResult{
		RoundID:      g.RoundID,
		PlayerID:     g.playerID,
		Result:       result,
		Bet:          g.CurrentBet,
		Payout:       payout,
		PlayerScore:  playerValue,
		DealerScore:  dealerValue,
		PlayerCards:  g.Player.Strings(),
		DealerCards:  cardNames(dealerCards),
		DoubledDown:  g.DoubledDown,
		BalanceAfter: balance,
		CompletedAt:  time.Now(),
	}

	g.logger.Debug("round %s over: %s player=%d dealer=%d payout=%d", g.RoundID, result, playerValue, dealerValue, payout)
	return nil
}

// draw takes a card, regenerating the deck when it has run out so the
// action that asked for the card still completes.
func (g *Game) draw(hidden bool) (*entities.Card, error) {
	card, err := g.dealing.Draw(g.Deck, hidden)
	if errors.Is(err, ErrDeckEmpty) {
		g.logger.Warn("deck exhausted during round %s, regenerating", g.RoundID)
		g.Deck = g.decks.CreateDeck()
		card, err = g.dealing.Draw(g.Deck, hidden)
	}
	return card, err
}
