package blackjack

import (
	"errors"

	"github.com/fadedpez/tucojack/pkg/entities"
)

var ErrInvalidCard = errors.New("invalid card")

// Hand represents the cards a player or the dealer received during one round
type Hand struct {
	Cards []*entities.Card
}

// NewHand creates a new empty hand
func NewHand() *Hand {
	return &Hand{
		Cards: make([]*entities.Card, 0),
	}
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *entities.Card) error {
	if card == nil {
		return ErrInvalidCard
	}

	h.Cards = append(h.Cards, card)
	return nil
}

// Value returns the best possible score for the face-up cards
func (h *Hand) Value() int {
	return HandValue(h.Cards)
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.Cards)
}

// IsBust checks if the hand exceeds 21
func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}

// IsBlackjack reports a two card 21
func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.Cards)
}

// HasHidden reports whether any card is still face down
func (h *Hand) HasHidden() bool {
	for _, card := range h.Cards {
		if card.Hidden {
			return true
		}
	}
	return false
}

// Reveal turns every hidden card face up and reports whether anything changed
func (h *Hand) Reveal() bool {
	revealed := false
	for _, card := range h.Cards {
		if card.Hidden {
			card.Hidden = false
			revealed = true
		}
	}
	return revealed
}

// Clear removes all cards from the hand
func (h *Hand) Clear() {
	h.Cards = make([]*entities.Card, 0)
}

// Snapshot returns copies of the cards so callers cannot mutate the hand
func (h *Hand) Snapshot() []entities.Card {
	cards := make([]entities.Card, len(h.Cards))
	for i, card := range h.Cards {
		cards[i] = *card
	}
	return cards
}

// Revealed returns face up copies of the cards, leaving the hand untouched
func (h *Hand) Revealed() []*entities.Card {
	cards := make([]*entities.Card, len(h.Cards))
	for i, card := range h.Cards {
		c := *card
		c.Hidden = false
		cards[i] = &c
	}
	return cards
}

// Strings returns the card names in deal order
func (h *Hand) Strings() []string {
	return cardNames(h.Cards)
}

func cardNames(cards []*entities.Card) []string {
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.String()
	}
	return names
}
