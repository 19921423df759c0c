package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Card is a pure value; two cards with equal rank and suit are the same card.
type Card struct {
	Rank Rank
	Suit Suit
}

var rankChars = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var suitChars = map[Suit]string{Spades: "s", Hearts: "h", Diamonds: "d", Clubs: "c"}

func (c Card) String() string {
	return rankChars[c.Rank] + suitChars[c.Suit]
}

// ParseCard reads the shorthand used on the wire: "As", "Td", "9h".
// "10d" is accepted as an alias for "Td".
func ParseCard(s string) (Card, error) {
	raw := s
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, raw)
	}
	var rank Rank
	found := false
	for r, ch := range rankChars {
		if strings.EqualFold(ch, s[:1]) {
			rank = r
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, raw)
	}
	var suit Suit
	found = false
	for su, ch := range suitChars {
		if strings.EqualFold(ch, s[1:]) {
			suit = su
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, raw)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a slice of shorthand cards, failing on the first bad one.
func ParseCards(ss []string) ([]Card, error) {
	out := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

type Deck struct {
	cards []Card
}

func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Shuffle() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	rnd.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Deal() Card {
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
