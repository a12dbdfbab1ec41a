package game

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same behaviour checks against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func(t *testing.T) Repository
	repo    Repository
	now     time.Time
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) Repository {
			return NewMemoryRepository()
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) Repository {
			repo, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "data", "rounds.db"))
			if err != nil {
				t.Fatalf("Error creating SQLite repository: %v", err)
			}
			return repo
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo(s.T())
	s.now = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
}

func (s *RepositoryTestSuite) round(n int, playerID string, result entities.Result, bet, payout int64, playerScore, dealerScore int) *entities.GameResult {
	return &entities.GameResult{
		RoundID:      fmt.Sprintf("round-%s-%d", playerID, n),
		PlayerID:     playerID,
		Result:       result,
		Bet:          bet,
		Payout:       payout,
		PlayerScore:  playerScore,
		DealerScore:  dealerScore,
		PlayerCards:  []string{"K of SPADES", "9 of HEARTS"},
		DealerCards:  []string{"10 of CLUBS", "7 of DIAMONDS"},
		BalanceAfter: 1_000 + int64(n),
		CompletedAt:  s.now.Add(time.Duration(n) * time.Minute),
	}
}

func (s *RepositoryTestSuite) TestSaveAndGetPlayerResults() {
	for i := 1; i <= 3; i++ {
		s.Require().NoError(s.repo.SaveGameResult(s.ctx, s.round(i, "alice", entities.ResultWin, 100, 200, 19, 17)))
	}
	s.Require().NoError(s.repo.SaveGameResult(s.ctx, s.round(1, "bob", entities.ResultLose, 50, 0, 15, 20)))

	results, err := s.repo.GetPlayerResults(s.ctx, "alice", 0)
	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Equal("round-alice-3", results[0].RoundID, "Newest round first")
	s.Equal("round-alice-1", results[2].RoundID)

	first := results[2]
	s.Equal(entities.ResultWin, first.Result)
	s.Equal(int64(100), first.Bet)
	s.Equal(int64(200), first.Payout)
	s.Equal(19, first.PlayerScore)
	s.Equal(17, first.DealerScore)
	s.Equal([]string{"K of SPADES", "9 of HEARTS"}, first.PlayerCards)
	s.Equal(int64(1_001), first.BalanceAfter)
	s.True(s.now.Add(time.Minute).Equal(first.CompletedAt))

	limited, err := s.repo.GetPlayerResults(s.ctx, "alice", 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
	s.Equal("round-alice-3", limited[0].RoundID)
}

func (s *RepositoryTestSuite) TestGetPlayerResultsUnknownPlayer() {
	results, err := s.repo.GetPlayerResults(s.ctx, "nobody", 10)

	s.Require().NoError(err)
	s.NotNil(results)
	s.Empty(results)
}

func (s *RepositoryTestSuite) TestGetPlayerStatistics() {
	rounds := []*entities.GameResult{
		s.round(1, "alice", entities.ResultWin, 100, 200, 20, 18),
		s.round(2, "alice", entities.ResultBlackjack, 100, 250, 21, 19),
		s.round(3, "alice", entities.ResultLose, 100, 0, 24, 10),
		s.round(4, "alice", entities.ResultPush, 100, 100, 18, 18),
		s.round(5, "alice", entities.ResultWin, 200, 400, 19, 23),
	}
	rounds[4].DoubledDown = true
	for _, r := range rounds {
		s.Require().NoError(s.repo.SaveGameResult(s.ctx, r))
	}
	s.Require().NoError(s.repo.SaveGameResult(s.ctx, s.round(1, "bob", entities.ResultLose, 999, 0, 15, 20)))

	stats, err := s.repo.GetPlayerStatistics(s.ctx, "alice")
	s.Require().NoError(err)

	s.Equal("alice", stats.PlayerID)
	s.Equal(5, stats.GamesPlayed)
	s.Equal(3, stats.Wins)
	s.Equal(1, stats.Losses)
	s.Equal(1, stats.Pushes)
	s.Equal(1, stats.Blackjacks)
	s.Equal(1, stats.Busts)
	s.Equal(1, stats.DoubleDowns)
	s.Equal(int64(600), stats.TotalBet)
	s.Equal(int64(950), stats.TotalWinnings)
	s.Equal(int64(350), stats.NetProfit())
	s.InDelta(60.0, stats.WinRate(), 0.001)
	s.True(s.now.Add(5 * time.Minute).Equal(stats.LastUpdated))
}

func (s *RepositoryTestSuite) TestGetPlayerStatisticsEmpty() {
	stats, err := s.repo.GetPlayerStatistics(s.ctx, "nobody")

	s.Require().NoError(err)
	s.Equal("nobody", stats.PlayerID)
	s.Equal(0, stats.GamesPlayed)
	s.True(stats.LastUpdated.IsZero())
}
