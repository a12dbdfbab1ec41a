package render

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
	"github.com/fadedpez/tucojack/pkg/services/i18n"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func card(suit entities.Suit, rank entities.Rank, hidden bool) entities.Card {
	c := entities.NewCard(suit, rank)
	c.Hidden = hidden
	return *c
}

func englishRenderer(t *testing.T) *Renderer {
	labels := i18n.NewManager(nil, "player-1")
	_, err := labels.SetLanguage(t.Context(), i18n.English)
	require.NoError(t, err)
	return New(labels)
}

func TestCard(t *testing.T) {
	r := englishRenderer(t)

	assert.Contains(t, r.Card(card(entities.Hearts, entities.Ace, false), true, 0), "A♥")
	assert.Contains(t, r.Card(card(entities.Spades, entities.Ten, false), true, 1), "10♠")

	hole := r.Card(card(entities.Clubs, entities.King, true), false, 1)
	assert.NotContains(t, hole, "K")
	assert.Contains(t, hole, "░░")
}

func TestHand(t *testing.T) {
	r := englishRenderer(t)

	assert.Contains(t, r.Hand(nil, true), "-")

	hand := r.Hand([]entities.Card{
		card(entities.Diamonds, entities.Five, false),
		card(entities.Clubs, entities.Queen, false),
	}, true)
	assert.Contains(t, hand, "5♦")
	assert.Contains(t, hand, "Q♣")
	assert.Len(t, strings.Split(hand, "\n"), 3, "Cards sit side by side in one bordered row")
}

func TestTablePlayerTurn(t *testing.T) {
	r := englishRenderer(t)
	snap := &blackjack.Snapshot{
		State:       entities.StatePlayerTurn,
		Balance:     9_900,
		CurrentBet:  100,
		PlayerCards: []entities.Card{card(entities.Hearts, entities.Nine, false)},
		DealerCards: []entities.Card{
			card(entities.Spades, entities.Six, false),
			card(entities.Hearts, entities.King, true),
		},
		PlayerValue:   9,
		DealerValue:   6,
		DealerHidden:  true,
		CanHit:        true,
		CanDoubleDown: true,
	}

	out := r.Table(snap, false)
	assert.Contains(t, out, "Blackjack")
	assert.Contains(t, out, "Dealer")
	assert.Contains(t, out, "6 + ?")
	assert.Contains(t, out, "Player")
	assert.Contains(t, out, "9♥")
	assert.NotContains(t, out, "K♥")
	assert.Contains(t, out, "9900")
	assert.Contains(t, out, "[h] Hit")
	assert.Contains(t, out, "[x] Double")
	assert.Contains(t, out, "[m] Sound: On")
	assert.NotContains(t, out, "[d]")
}

func TestTableSoftHand(t *testing.T) {
	r := englishRenderer(t)
	snap := &blackjack.Snapshot{
		State: entities.StatePlayerTurn,
		PlayerCards: []entities.Card{
			card(entities.Hearts, entities.Ace, false),
			card(entities.Clubs, entities.Six, false),
		},
		DealerCards: []entities.Card{
			card(entities.Spades, entities.Six, false),
			card(entities.Hearts, entities.Seven, false),
		},
		PlayerValue: 17,
		PlayerSoft:  true,
		DealerValue: 13,
	}

	out := r.Table(snap, false)
	assert.Contains(t, out, "soft 17")
	assert.NotContains(t, out, "+ ?")
}

func TestTableSpanish(t *testing.T) {
	r := New(i18n.NewManager(nil, "player-1"))
	snap := &blackjack.Snapshot{State: entities.StateBetting, Balance: 10_000, CurrentBet: 10, CanStart: true}

	out := r.Table(snap, true)
	assert.Contains(t, out, "Saldo")
	assert.Contains(t, out, "[d] Repartir")
	assert.Contains(t, out, "Sonido: Desactivado")
}

func TestOutcome(t *testing.T) {
	r := englishRenderer(t)

	testCases := []struct {
		name     string
		snap     *blackjack.Snapshot
		expected []string
	}{
		{
			name:     "round in progress",
			snap:     &blackjack.Snapshot{State: entities.StatePlayerTurn},
			expected: nil,
		},
		{
			name: "win with dealer bust",
			snap: &blackjack.Snapshot{
				State: entities.StateGameOver, Result: entities.ResultWin, Payout: 200,
				LabelKeys: []string{"win", "dealer-bust"},
			},
			expected: []string{"You Win!", "Dealer Bust", "+200"},
		},
		{
			name: "player bust",
			snap: &blackjack.Snapshot{
				State: entities.StateGameOver, Result: entities.ResultLose,
				LabelKeys: []string{"lose", "bust"},
			},
			expected: []string{"You Lose", "Bust"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := r.Outcome(tc.snap)
			if tc.expected == nil {
				assert.Empty(t, out)
				return
			}
			for _, text := range tc.expected {
				assert.Contains(t, out, text)
			}
		})
	}
}

func TestActions(t *testing.T) {
	testCases := []struct {
		name     string
		snap     *blackjack.Snapshot
		key      string
		expected Command
		found    bool
	}{
		{
			name:     "deal when affordable",
			snap:     &blackjack.Snapshot{State: entities.StateBetting, CanStart: true},
			key:      "d",
			expected: CommandDeal,
			found:    true,
		},
		{
			name:  "deal disabled without funds",
			snap:  &blackjack.Snapshot{State: entities.StateBetting},
			key:   "d",
			found: false,
		},
		{
			name:  "hit not offered while betting",
			snap:  &blackjack.Snapshot{State: entities.StateBetting, CanStart: true},
			key:   "h",
			found: false,
		},
		{
			name:  "double disabled after hitting",
			snap:  &blackjack.Snapshot{State: entities.StatePlayerTurn, CanHit: true},
			key:   "x",
			found: false,
		},
		{
			name:  "nothing but settings during dealer turn",
			snap:  &blackjack.Snapshot{State: entities.StateDealerTurn},
			key:   "s",
			found: false,
		},
		{
			name:     "mute always available",
			snap:     &blackjack.Snapshot{State: entities.StateDealerTurn},
			key:      "m",
			expected: CommandMute,
			found:    true,
		},
		{
			name:     "new game after round",
			snap:     &blackjack.Snapshot{State: entities.StateGameOver},
			key:      "n",
			expected: CommandNewRound,
			found:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, ok := Lookup(tc.snap, tc.key)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.expected, action.Command)
			}
		})
	}
}
