package blackjack

import (
	"github.com/fadedpez/tucojack/internal/types"
	"github.com/fadedpez/tucojack/pkg/entities"
)

var ErrDeckEmpty = types.NewGameError(types.ErrDeckEmpty, "deck is empty")

// DealingService moves cards from a deck into hands
type DealingService struct {
	decks             *DeckManager
	notifier          Notifier
	reshuffleEachDraw bool
}

// NewDealingService creates a dealing service. When reshuffleEachDraw is set
// the remaining deck is re-randomized before every draw.
func NewDealingService(decks *DeckManager, notifier Notifier, reshuffleEachDraw bool) *DealingService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &DealingService{
		decks:             decks,
		notifier:          notifier,
		reshuffleEachDraw: reshuffleEachDraw,
	}
}

// Draw removes the top card from deck, optionally face down. The card is
// owned by the caller afterwards and is no longer in the deck.
func (s *DealingService) Draw(deck *entities.Deck, hidden bool) (*entities.Card, error) {
	if deck == nil || deck.IsEmpty() {
		return nil, ErrDeckEmpty
	}

	if s.reshuffleEachDraw {
		s.decks.Reshuffle(deck)
	}

	card := deck.Draw()
	card.Hidden = hidden

	s.notifier.Play(entities.EventCard)
	return card, nil
}
