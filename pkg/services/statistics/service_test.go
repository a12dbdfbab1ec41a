package statistics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/repositories/game"
	mock_game "github.com/fadedpez/tucojack/pkg/repositories/game/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *game.MemoryRepository
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = game.NewMemoryRepository()
	s.service = NewService(s.repo)
}

func round(n int, result entities.Result, bet, payout int64) *entities.GameResult {
	return &entities.GameResult{
		RoundID:     fmt.Sprintf("round-%d", n),
		PlayerID:    "local",
		Result:      result,
		Bet:         bet,
		Payout:      payout,
		PlayerScore: 18,
		DealerScore: 17,
		CompletedAt: time.Date(2025, 1, 1, 12, n, 0, 0, time.UTC),
	}
}

func (s *ServiceTestSuite) TestRecordRound() {
	s.Require().NoError(s.service.RecordRound(s.ctx, round(1, entities.ResultWin, 100, 200)))
	s.Require().NoError(s.service.RecordRound(s.ctx, round(2, entities.ResultLose, 50, 0)))

	session := s.service.SessionStatistics("local")
	s.Equal(2, session.GamesPlayed)
	s.Equal(1, session.Wins)
	s.Equal(1, session.Losses)
	s.Equal(int64(150), session.TotalBet)
	s.Equal(int64(50), session.NetProfit())

	stored, err := s.repo.GetPlayerResults(s.ctx, "local", 0)
	s.Require().NoError(err)
	s.Len(stored, 2)
}

func (s *ServiceTestSuite) TestSessionStatisticsIsCopy() {
	s.Require().NoError(s.service.RecordRound(s.ctx, round(1, entities.ResultPush, 100, 100)))

	stats := s.service.SessionStatistics("local")
	stats.GamesPlayed = 99

	s.Equal(1, s.service.SessionStatistics("local").GamesPlayed)
	s.Equal(0, s.service.SessionStatistics("other").GamesPlayed)
}

func (s *ServiceTestSuite) TestGetSummary() {
	rounds := []*entities.GameResult{
		round(1, entities.ResultLose, 100, 0),
		round(2, entities.ResultWin, 100, 200),
		round(3, entities.ResultBlackjack, 100, 250),
		round(4, entities.ResultWin, 100, 200),
	}
	for _, r := range rounds {
		s.Require().NoError(s.service.RecordRound(s.ctx, r))
	}

	summary, err := s.service.GetSummary(s.ctx, "local", 3)
	s.Require().NoError(err)

	s.Equal(4, summary.Lifetime.GamesPlayed)
	s.Equal(4, summary.Session.GamesPlayed)
	s.InDelta(75.0, summary.WinRate, 0.001)
	s.InDelta(1.625, summary.ProfitRate, 0.001)
	s.Equal(3, summary.Streak)
	s.Require().Len(summary.Recent, 3)
	s.Equal("round-4", summary.Recent[0].RoundID)
}

func TestRecordRoundStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_game.NewMockRepository(ctrl)
	repo.EXPECT().SaveGameResult(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	service := NewService(repo)
	err := service.RecordRound(context.Background(), round(1, entities.ResultWin, 100, 200))

	assert.Error(t, err)
	assert.Equal(t, 1, service.SessionStatistics("local").GamesPlayed, "Session statistics do not depend on storage")
}

func TestGetSummaryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_game.NewMockRepository(ctrl)
	repo.EXPECT().GetPlayerStatistics(gomock.Any(), "local").Return(nil, errors.New("offline"))

	_, err := NewService(repo).GetSummary(context.Background(), "local", 5)

	assert.Error(t, err)
}

func TestStreak(t *testing.T) {
	testCases := []struct {
		name     string
		results  []entities.Result
		expected int
	}{
		{"empty", nil, 0},
		{"wins", []entities.Result{entities.ResultWin, entities.ResultBlackjack, entities.ResultLose}, 2},
		{"losses", []entities.Result{entities.ResultLose, entities.ResultLose, entities.ResultWin}, -2},
		{"push first", []entities.Result{entities.ResultPush, entities.ResultWin}, 0},
		{"push ends streak", []entities.Result{entities.ResultWin, entities.ResultPush, entities.ResultWin}, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results := make([]*entities.GameResult, len(tc.results))
			for i, r := range tc.results {
				results[i] = &entities.GameResult{Result: r}
			}
			assert.Equal(t, tc.expected, Streak(results))
		})
	}
}
