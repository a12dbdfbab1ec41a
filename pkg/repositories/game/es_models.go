package game

import (
	"time"

	"github.com/fadedpez/tucojack/pkg/entities"
)

// ESRoundResult represents a round document in Elasticsearch
type ESRoundResult struct {
	RoundID      string    `json:"round_id"`
	PlayerID     string    `json:"player_id"`
	Result       string    `json:"result"` // "win", "lose", "push", "blackjack"
	Bet          int64     `json:"bet"`
	Payout       int64     `json:"payout"`
	PlayerScore  int       `json:"player_score"`
	DealerScore  int       `json:"dealer_score"`
	PlayerCards  []string  `json:"player_cards"`
	DealerCards  []string  `json:"dealer_cards"`
	Blackjack    bool      `json:"blackjack"`
	Busted       bool      `json:"busted"`
	DealerBusted bool      `json:"dealer_busted"`
	DoubledDown  bool      `json:"doubled_down"`
	BalanceAfter int64     `json:"balance_after"`
	CompletedAt  time.Time `json:"completed_at"`
}

// ToESRoundResult converts a round into its search document
func ToESRoundResult(r *entities.GameResult) *ESRoundResult {
	return &ESRoundResult{
		RoundID:      r.RoundID,
		PlayerID:     r.PlayerID,
		Result:       string(r.Result),
		Bet:          r.Bet,
		Payout:       r.Payout,
		PlayerScore:  r.PlayerScore,
		DealerScore:  r.DealerScore,
		PlayerCards:  r.PlayerCards,
		DealerCards:  r.DealerCards,
		Blackjack:    r.Result == entities.ResultBlackjack,
		Busted:       r.PlayerBusted(),
		DealerBusted: r.DealerBusted(),
		DoubledDown:  r.DoubledDown,
		BalanceAfter: r.BalanceAfter,
		CompletedAt:  r.CompletedAt,
	}
}

// ToGameResult converts a search document back into a round
func (d *ESRoundResult) ToGameResult() *entities.GameResult {
	return &entities.GameResult{
		RoundID:      d.RoundID,
		PlayerID:     d.PlayerID,
		Result:       entities.Result(d.Result),
		Bet:          d.Bet,
		Payout:       d.Payout,
		PlayerScore:  d.PlayerScore,
		DealerScore:  d.DealerScore,
		PlayerCards:  d.PlayerCards,
		DealerCards:  d.DealerCards,
		DoubledDown:  d.DoubledDown,
		BalanceAfter: d.BalanceAfter,
		CompletedAt:  d.CompletedAt,
	}
}
