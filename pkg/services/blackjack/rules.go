package blackjack

import (
	"github.com/fadedpez/tucojack/pkg/entities"
)

const (
	BlackjackValue   = 21            // Best possible hand value
	DealerStandValue = 17            // Dealer stands on 17 and above, soft 17 included
	MinBet           = 10            // Smallest accepted wager
	MaxBet           = 1_000_000_000 // Largest accepted wager
)

// HandValue returns the best blackjack value of the face-up cards. Hidden
// cards count as zero. Aces count 11 and are demoted to 1 one at a time
// while the total is over 21.
func HandValue(cards []*entities.Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		if card == nil || card.Hidden {
			continue
		}
		score += card.Value
		if card.IsAce() {
			aces++
		}
	}

	for score > BlackjackValue && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// IsSoft reports whether the hand value counts an ace as 11
func IsSoft(cards []*entities.Card) bool {
	hard := 0
	hasAce := false
	for _, card := range cards {
		if card == nil || card.Hidden {
			continue
		}
		if card.IsAce() {
			hard++
			hasAce = true
		} else {
			hard += card.Value
		}
	}
	return hasAce && HandValue(cards) != hard
}

// IsBlackjack reports a two card 21
func IsBlackjack(cards []*entities.Card) bool {
	return len(cards) == 2 && HandValue(cards) == BlackjackValue
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []*entities.Card) bool {
	return HandValue(cards) > BlackjackValue
}
