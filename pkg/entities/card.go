package entities

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit

type Suit string

const (
	Hearts   Suit = "HEARTS"
	Diamonds Suit = "DIAMONDS"
	Clubs    Suit = "CLUBS"
	Spades   Suit = "SPADES"
)

// Suits lists the suits in deck construction order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank represents a card rank

type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists the ranks in deck construction order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card. Suit, Rank and Value never change after
// NewCard; Hidden is toggled for the dealer's hole card only.

type Card struct {
	Suit   Suit `json:"suit"`
	Rank   Rank `json:"rank"`
	Value  int  `json:"value"`
	Hidden bool `json:"hidden,omitempty"`
}

// NewCard creates a new face-up card with its nominal blackjack value

func NewCard(suit Suit, rank Rank) *Card {
	return &Card{
		Suit:  suit,
		Rank:  rank,
		Value: RankValue(rank),
	}
}

// RankValue returns the nominal value of a rank: aces 11, faces 10, numerics their pip count
func RankValue(rank Rank) int {
	switch rank {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	default:
		val, _ := strconv.Atoi(string(rank))
		return val
	}
}

// ID returns the identity of the card, unique within a single deck
func (c *Card) ID() string {
	return fmt.Sprintf("%s-%s", c.Suit, c.Rank)
}

// IsAce reports whether the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// String returns the string representation of the card

func (c *Card) String() string {
	if c.Hidden {
		return "hidden card"
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
