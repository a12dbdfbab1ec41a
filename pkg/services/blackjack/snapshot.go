package blackjack

import (
	"context"

	"github.com/fadedpez/tucojack/pkg/entities"
)

// Snapshot is a read-only view of the table for renderers
type Snapshot struct {
	RoundID       string
	State         entities.GameState
	Balance       int64
	CurrentBet    int64
	Result        entities.Result
	Payout        int64
	PlayerCards   []entities.Card
	DealerCards   []entities.Card
	PlayerValue   int
	DealerValue   int
	PlayerSoft    bool // an ace is counted as 11
	DealerHidden  bool // hole card still face down
	DeckRemaining int
	CanStart      bool
	CanHit        bool
	CanDoubleDown bool
	LabelKeys     []string
}

// Snapshot captures the current table state
func (g *Game) Snapshot(ctx context.Context) (*Snapshot, error) {
	balance, err := g.Balance(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		RoundID:       g.RoundID,
		State:         g.State,
		Balance:       balance,
		CurrentBet:    g.CurrentBet,
		Result:        g.Result,
		Payout:        g.Payout,
		PlayerCards:   g.Player.Snapshot(),
		DealerCards:   g.Dealer.Snapshot(),
		PlayerValue:   g.Player.Value(),
		DealerValue:   g.Dealer.Value(),
		PlayerSoft:    IsSoft(g.Player.Cards),
		DealerHidden:  g.Dealer.HasHidden(),
		DeckRemaining: g.Deck.Len(),
		CanStart:      g.State == entities.StateBetting && balance >= g.CurrentBet,
		CanHit:        g.CanHit(),
		CanDoubleDown: g.State == entities.StatePlayerTurn && g.Player.Len() == 1 && balance >= g.CurrentBet,
	}
	if g.State == entities.StateGameOver {
		snap.LabelKeys = LabelKeys(g.lastResult)
	}
	return snap, nil
}
