package blackjack

import (
	"testing"

	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name           string
		player         int
		dealer         int
		playerCards    int
		bet            int64
		expectedResult entities.Result
		expectedPayout int64
	}{
		{"dealer busts", 20, 22, 2, 100, entities.ResultWin, 200},
		{"two card 21", 21, 19, 2, 100, entities.ResultBlackjack, 250},
		{"push", 18, 18, 3, 100, entities.ResultPush, 100},
		{"player busts", 22, 17, 3, 100, entities.ResultLose, 0},
		{"player busts dealer busts", 24, 23, 3, 100, entities.ResultLose, 0},
		{"dealer higher", 17, 19, 2, 100, entities.ResultLose, 0},
		{"player higher", 20, 18, 3, 100, entities.ResultWin, 200},
		{"three card 21 is a plain win", 21, 20, 3, 100, entities.ResultWin, 200},
		{"two card 21 ties dealer 21", 21, 21, 2, 100, entities.ResultPush, 100},
		{"odd bet blackjack", 21, 18, 2, 15, entities.ResultBlackjack, 37},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, payout := Resolve(tc.player, tc.dealer, tc.playerCards, tc.bet)

			assert.Equal(t, tc.expectedResult, result)
			assert.Equal(t, tc.expectedPayout, payout)
		})
	}
}

func TestOutcomeEvent(t *testing.T) {
	event, ok := OutcomeEvent(entities.ResultBlackjack)
	assert.True(t, ok)
	assert.Equal(t, entities.EventWin, event)

	event, ok = OutcomeEvent(entities.ResultLose)
	assert.True(t, ok)
	assert.Equal(t, entities.EventLose, event)

	_, ok = OutcomeEvent(entities.ResultPush)
	assert.False(t, ok, "Push has no sound")
}

func TestLabelKeys(t *testing.T) {
	assert.Nil(t, LabelKeys(nil))
	assert.Equal(t, []string{"bust", "lose"}, LabelKeys(&entities.GameResult{Result: entities.ResultLose, PlayerScore: 25, DealerScore: 10}))
	assert.Equal(t, []string{"dealer-bust", "win"}, LabelKeys(&entities.GameResult{Result: entities.ResultWin, PlayerScore: 15, DealerScore: 23}))
	assert.Equal(t, []string{"push"}, LabelKeys(&entities.GameResult{Result: entities.ResultPush, PlayerScore: 19, DealerScore: 19}))
}
