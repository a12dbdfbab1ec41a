package statistics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/repositories/game"
)

// Service records finished rounds and reports player statistics
type Service struct {
	repository game.Repository

	mu      sync.RWMutex
	session map[string]*entities.PlayerStatistics
}

// NewService creates a new statistics service
func NewService(repository game.Repository) *Service {
	return &Service{
		repository: repository,
		session:    make(map[string]*entities.PlayerStatistics),
	}
}

// Summary combines the statistics of the running session with the stored history
type Summary struct {
	Session    *entities.PlayerStatistics `json:"session"`
	Lifetime   *entities.PlayerStatistics `json:"lifetime"`
	WinRate    float64                    `json:"win_rate"`
	ProfitRate float64                    `json:"profit_rate"`
	Streak     int                        `json:"streak"` // positive for wins, negative for losses
	Recent     []*entities.GameResult     `json:"recent"`
	CreatedAt  time.Time                  `json:"created_at"`
}

// RecordRound adds a round to the session statistics and stores it. The
// session statistics are updated even when storing fails.
func (s *Service) RecordRound(ctx context.Context, result *entities.GameResult) error {
	s.mu.Lock()
	stats, ok := s.session[result.PlayerID]
	if !ok {
		stats = &entities.PlayerStatistics{PlayerID: result.PlayerID}
		s.session[result.PlayerID] = stats
	}
	stats.Add(result)
	s.mu.Unlock()

	if err := s.repository.SaveGameResult(ctx, result); err != nil {
		logging.Default.Warn("[STATS] Error saving round %s: %v", result.RoundID, err)
		return fmt.Errorf("error saving round %s: %w", result.RoundID, err)
	}
	return nil
}

// SessionStatistics returns a copy of the statistics gathered since start up
func (s *Service) SessionStatistics(playerID string) *entities.PlayerStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.session[playerID]
	if !ok {
		return &entities.PlayerStatistics{PlayerID: playerID}
	}
	copied := *stats
	return &copied
}

// GetSummary builds a summary with the last recentLimit rounds
func (s *Service) GetSummary(ctx context.Context, playerID string, recentLimit int) (*Summary, error) {
	lifetime, err := s.repository.GetPlayerStatistics(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("error loading statistics: %w", err)
	}

	recent, err := s.repository.GetPlayerResults(ctx, playerID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("error loading recent rounds: %w", err)
	}

	var profitRate float64
	if lifetime.TotalBet > 0 {
		profitRate = float64(lifetime.TotalWinnings) / float64(lifetime.TotalBet)
	}

	return &Summary{
		Session:    s.SessionStatistics(playerID),
		Lifetime:   lifetime,
		WinRate:    lifetime.WinRate(),
		ProfitRate: profitRate,
		Streak:     Streak(recent),
		Recent:     recent,
		CreatedAt:  time.Now(),
	}, nil
}

// Streak counts consecutive wins (positive) or losses (negative) from the
// newest round. Pushes end a streak.
func Streak(newestFirst []*entities.GameResult) int {
	streak := 0
	for _, result := range newestFirst {
		switch {
		case result.Result.IsWin() && streak >= 0:
			streak++
		case result.Result == entities.ResultLose && streak <= 0:
			streak--
		default:
			return streak
		}
	}
	return streak
}
