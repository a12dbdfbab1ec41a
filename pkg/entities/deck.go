package entities

// DeckSize is the number of cards in a fresh deck
const DeckSize = 52

type Deck struct {
	Cards []*Card
}

// NewDeck creates a new ordered deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]*Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{Cards: cards}
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}

// IsEmpty reports whether the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.Cards) == 0
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		return nil
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card
}
