package render

import (
	"testing"
	"time"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/services/statistics"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	r := englishRenderer(t)
	completed := time.Date(2025, 3, 14, 21, 5, 0, 0, time.UTC)

	summary := &statistics.Summary{
		Session: &entities.PlayerStatistics{GamesPlayed: 2, Wins: 1, Losses: 1, TotalBet: 200, TotalWinnings: 250},
		Lifetime: &entities.PlayerStatistics{
			GamesPlayed: 10, Wins: 4, Losses: 5, Pushes: 1, Busts: 2, TotalBet: 1_000, TotalWinnings: 800,
		},
		Streak: -1,
		Recent: []*entities.GameResult{
			{Result: entities.ResultLose, Bet: 100, PlayerScore: 24, DealerScore: 18, CompletedAt: completed},
		},
	}

	out := r.Summary(summary)
	assert.Contains(t, out, "Statistics")
	assert.Contains(t, out, "Session")
	assert.Contains(t, out, "Lifetime")
	assert.Contains(t, out, "Net: +50")
	assert.Contains(t, out, "Net: -200")
	assert.Contains(t, out, "Win Rate: 40.0%")
	assert.Contains(t, out, "Streak: -1")
	assert.Contains(t, out, "2025-03-14 21:05")
	assert.Contains(t, out, "You Lose")
	assert.Contains(t, out, "24 vs 18")
}

func TestSummaryWithoutHistory(t *testing.T) {
	r := englishRenderer(t)

	out := r.Summary(&statistics.Summary{})
	assert.Contains(t, out, "Games: 0")
	assert.Contains(t, out, "Win Rate: 0.0%")
}
