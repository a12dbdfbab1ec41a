package entities

import "time"

// PlayerStatistics represents aggregated blackjack statistics for a player
type PlayerStatistics struct {
	PlayerID      string
	GamesPlayed   int
	Wins          int
	Losses        int
	Pushes        int
	Blackjacks    int
	Busts         int
	DoubleDowns   int
	TotalBet      int64
	TotalWinnings int64
	LastUpdated   time.Time
}

// Add folds a single round into the statistics
func (s *PlayerStatistics) Add(r *GameResult) {
	s.GamesPlayed++
	s.TotalBet += r.Bet
	s.TotalWinnings += r.Payout

	switch r.Result {
	case ResultWin:
		s.Wins++
	case ResultBlackjack:
		s.Wins++
		s.Blackjacks++
	case ResultLose:
		s.Losses++
	case ResultPush:
		s.Pushes++
	}

	if r.PlayerBusted() {
		s.Busts++
	}
	if r.DoubledDown {
		s.DoubleDowns++
	}
	if r.CompletedAt.After(s.LastUpdated) {
		s.LastUpdated = r.CompletedAt
	}
}

// NetProfit calculates the player's net profit
func (s *PlayerStatistics) NetProfit() int64 {
	return s.TotalWinnings - s.TotalBet
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100.0
}
