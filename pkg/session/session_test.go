package session

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/fadedpez/tucojack/pkg/entities"
	gameRepo "github.com/fadedpez/tucojack/pkg/repositories/game"
	walletRepo "github.com/fadedpez/tucojack/pkg/repositories/wallet"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
	"github.com/fadedpez/tucojack/pkg/services/i18n"
	"github.com/fadedpez/tucojack/pkg/services/sound"
	"github.com/fadedpez/tucojack/pkg/services/statistics"
	"github.com/fadedpez/tucojack/pkg/services/wallet"
	"github.com/stretchr/testify/suite"
)

const (
	testPlayer  = "player-1"
	dealerDelay = 300 * time.Millisecond
)

// orderedRandom never swaps, so every deck comes out as 2H 3H 4H ...
type orderedRandom struct{}

func (orderedRandom) IntN(n int) int { return n - 1 }

type SessionTestSuite struct {
	suite.Suite
	ctx     context.Context
	cancel  context.CancelFunc
	clock   *quartz.Mock
	wallet  *wallet.Service
	stats   *statistics.Service
	session *Session

	mu    sync.Mutex
	snaps []*blackjack.Snapshot
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)
	s.clock = quartz.NewMock(s.T())
	s.wallet = wallet.NewService(walletRepo.NewMemoryRepository(), 10_000)
	s.stats = statistics.NewService(gameRepo.NewMemoryRepository())
	s.snaps = nil
	s.session = s.newSession(dealerDelay)
}

func (s *SessionTestSuite) TearDownTest() {
	s.NoError(s.session.Close())
	s.cancel()
}

func (s *SessionTestSuite) newSession(delay time.Duration) *Session {
	sess := New(Config{
		PlayerID:    testPlayer,
		DealerDelay: delay,
		Random:      orderedRandom{},
	}, Deps{
		Wallet:     s.wallet,
		Statistics: s.stats,
		Sound:      sound.NewManager(sound.NewBellBackend(io.Discard), nil, testPlayer),
		Labels:     i18n.NewManager(nil, testPlayer),
		Clock:      s.clock,
	})
	sess.Subscribe(func(snap *blackjack.Snapshot) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.snaps = append(s.snaps, snap)
	})
	return sess
}

func (s *SessionTestSuite) snapshot() *blackjack.Snapshot {
	snap, err := s.session.Snapshot(s.ctx)
	s.Require().NoError(err)
	return snap
}

func (s *SessionTestSuite) lastNotified() *blackjack.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.snaps)
	return s.snaps[len(s.snaps)-1]
}

func (s *SessionTestSuite) advance() {
	s.clock.Advance(dealerDelay).MustWait(s.ctx)
}

func (s *SessionTestSuite) TestDealAndStandPacesDealer() {
	s.Require().NoError(s.session.SetBet(s.ctx, 100))
	s.Require().NoError(s.session.Deal(s.ctx))

	snap := s.snapshot()
	s.Equal(entities.StatePlayerTurn, snap.State)
	s.Equal(int64(9_900), snap.Balance)
	s.Equal(2, snap.PlayerValue)
	s.Equal(3, snap.DealerValue, "Hole card stays hidden")

	s.Require().NoError(s.session.Stand(s.ctx))
	s.Equal(entities.StateDealerTurn, s.lastNotified().State)
	s.Equal(7, s.lastNotified().DealerValue)

	s.advance()
	s.Equal(12, s.lastNotified().DealerValue)
	s.advance()
	s.Equal(18, s.lastNotified().DealerValue)
	s.advance()

	s.Require().NoError(s.session.WaitDealer())
	snap = s.snapshot()
	s.Equal(entities.StateGameOver, snap.State)
	s.Equal(entities.ResultLose, snap.Result)
	s.Equal(int64(9_900), snap.Balance)
	s.Equal(snap, s.lastNotified())

	session := s.stats.SessionStatistics(testPlayer)
	s.Equal(1, session.GamesPlayed)
	s.Equal(1, session.Losses)
}

func (s *SessionTestSuite) TestActionsIgnoredDuringDealerTurn() {
	s.Require().NoError(s.session.Deal(s.ctx))
	s.Require().NoError(s.session.Stand(s.ctx))

	before := s.snapshot()
	s.NoError(s.session.Hit(s.ctx))
	s.NoError(s.session.Stand(s.ctx))
	s.NoError(s.session.SetBet(s.ctx, 500))
	s.NoError(s.session.NewRound(s.ctx))
	s.Equal(before, s.snapshot())

	s.advance()
	s.advance()
	s.advance()
	s.Require().NoError(s.session.WaitDealer())
	s.Equal(entities.StateGameOver, s.snapshot().State)
}

func (s *SessionTestSuite) TestRuleRejectionsAreIgnored() {
	s.NoError(s.session.Hit(s.ctx), "No round yet")
	s.NoError(s.session.DoubleDown(s.ctx))
	s.NoError(s.session.SetBet(s.ctx, 1_000_000))

	snap := s.snapshot()
	s.Equal(entities.StateBetting, snap.State)
	s.Equal(int64(blackjack.MinBet), snap.CurrentBet)
	s.Equal(int64(10_000), snap.Balance)
}

func (s *SessionTestSuite) TestPlayerBustSkipsDealer() {
	s.Require().NoError(s.session.Deal(s.ctx))
	// 2 + 5 + 6 + 7 + 8 = 28
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.session.Hit(s.ctx))
	}

	snap := s.snapshot()
	s.Equal(entities.StateGameOver, snap.State)
	s.Equal(entities.ResultLose, snap.Result)
	s.Equal(1, s.stats.SessionStatistics(testPlayer).Busts)
	s.NoError(s.session.WaitDealer())
}

func (s *SessionTestSuite) TestRoundRecordedOnce() {
	s.Require().NoError(s.session.Deal(s.ctx))
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.session.Hit(s.ctx))
	}
	s.NoError(s.session.Hit(s.ctx))
	s.NoError(s.session.Stand(s.ctx))

	s.Equal(1, s.stats.SessionStatistics(testPlayer).GamesPlayed)

	s.Require().NoError(s.session.NewRound(s.ctx))
	s.Equal(entities.StateBetting, s.snapshot().State)
	s.Equal(1, s.stats.SessionStatistics(testPlayer).GamesPlayed)
}

func (s *SessionTestSuite) TestDoubleDownWithoutDelay() {
	s.Require().NoError(s.session.Close())
	s.session = s.newSession(0)

	s.Require().NoError(s.session.SetBet(s.ctx, 200))
	s.Require().NoError(s.session.Deal(s.ctx))
	s.Require().NoError(s.session.DoubleDown(s.ctx))
	s.Require().NoError(s.session.WaitDealer())

	snap := s.snapshot()
	s.Equal(entities.StateGameOver, snap.State)
	s.Equal(int64(400), snap.CurrentBet)
	s.Equal(entities.ResultLose, snap.Result)
	s.Equal(int64(9_600), snap.Balance)
	s.Equal(1, s.stats.SessionStatistics(testPlayer).DoubleDowns)
}

func (s *SessionTestSuite) TestAdjustBetClamps() {
	s.Require().NoError(s.session.AdjustBet(s.ctx, 50))
	s.Equal(int64(blackjack.MinBet+50), s.snapshot().CurrentBet)

	s.Require().NoError(s.session.AdjustBet(s.ctx, -1_000))
	s.Equal(int64(blackjack.MinBet), s.snapshot().CurrentBet)
}

func (s *SessionTestSuite) TestToggleMute() {
	s.True(s.session.ToggleMute(s.ctx))
	s.False(s.session.ToggleMute(s.ctx))
	s.Len(s.snaps, 2, "Each toggle re-renders")
}

func (s *SessionTestSuite) TestSetLanguage() {
	s.Require().NoError(s.session.SetLanguage(s.ctx, i18n.English))
	s.Empty(s.snaps, "Re-rendering is left to language listeners")

	s.ErrorIs(s.session.SetLanguage(s.ctx, i18n.Language("fr")), i18n.ErrUnsupportedLanguage)
}

func (s *SessionTestSuite) TestStatistics() {
	s.Require().NoError(s.session.Deal(s.ctx))
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.session.Hit(s.ctx))
	}

	summary, err := s.session.Statistics(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(1, summary.Lifetime.GamesPlayed)
	s.Equal(-1, summary.Streak)
	s.Len(summary.Recent, 1)
}

func (s *SessionTestSuite) TestCloseStopsDealer() {
	s.Require().NoError(s.session.Deal(s.ctx))
	s.Require().NoError(s.session.Stand(s.ctx))

	s.NoError(s.session.Close())
	s.Equal(entities.StateDealerTurn, s.snapshot().State)
}
