package blackjack

import (
	"github.com/fadedpez/tucojack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_blackjack

// Notifier receives fire-and-forget presentation events such as sounds
type Notifier interface {
	Play(event entities.Event)
}

type nopNotifier struct{}

func (nopNotifier) Play(entities.Event) {}

// DeckManager creates and randomizes decks
type DeckManager struct {
	rng      RandomSource
	notifier Notifier
}

// NewDeckManager creates a deck manager. Nil arguments fall back to a clock
// seeded source and a silent notifier.
func NewDeckManager(rng RandomSource, notifier Notifier) *DeckManager {
	if rng == nil {
		rng = NewRand(0)
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &DeckManager{
		rng:      rng,
		notifier: notifier,
	}
}

// CreateDeck builds the 52 card set and shuffles it
func (m *DeckManager) CreateDeck() *entities.Deck {
	return m.Reshuffle(entities.NewDeck())
}

// Reshuffle re-randomizes deck in place with a Fisher-Yates shuffle and returns it
func (m *DeckManager) Reshuffle(deck *entities.Deck) *entities.Deck {
	cards := deck.Cards
	for i := len(cards) - 1; i > 0; i-- {
		j := m.rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	m.notifier.Play(entities.EventShuffle)
	return deck
}
