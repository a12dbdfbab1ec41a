package entities

import "time"

// GameState is the phase of a blackjack round
type GameState string

const (
	StateBetting    GameState = "betting"
	StatePlayerTurn GameState = "playerTurn"
	StateDealerTurn GameState = "dealerTurn"
	StateGameOver   GameState = "gameOver"
)

// String returns the string representation of the state
func (s GameState) String() string {
	return string(s)
}

// Result is the outcome of a finished round. ResultNone is used while a round is not over.
type Result string

const (
	ResultNone      Result = ""
	ResultWin       Result = "win"
	ResultLose      Result = "lose"
	ResultPush      Result = "push"
	ResultBlackjack Result = "blackjack"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin || r == ResultBlackjack
}

// GameResult records a resolved round
type GameResult struct {
	RoundID      string    `json:"round_id"`
	PlayerID     string    `json:"player_id"`
	Result       Result    `json:"result"`
	Bet          int64     `json:"bet"`
	Payout       int64     `json:"payout"`
	PlayerScore  int       `json:"player_score"`
	DealerScore  int       `json:"dealer_score"`
	PlayerCards  []string  `json:"player_cards"`
	DealerCards  []string  `json:"dealer_cards"`
	DoubledDown  bool      `json:"doubled_down"`
	BalanceAfter int64     `json:"balance_after"`
	CompletedAt  time.Time `json:"completed_at"`
}

// PlayerBusted reports whether the player went over 21
func (r *GameResult) PlayerBusted() bool {
	return r.PlayerScore > 21
}

// DealerBusted reports whether the dealer went over 21
func (r *GameResult) DealerBusted() bool {
	return r.DealerScore > 21
}
