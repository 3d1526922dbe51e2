package poker

import (
	rand "math/rand/v2"

	"github.com/phantomop26/Poker-Analyst/internal/randutil"
)

// Deck represents a deck of playing cards. A deck is created fresh per
// simulation trial and is never shared across goroutines.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new shuffled 52-card deck with an explicit RNG.
// A nil rng selects the cryptographically seeded source, falling back to a
// time-seeded generator on platforms without one.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng, _ = randutil.NewSecure()
	}

	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}

	d.Shuffle()
	return d
}

// Shuffle randomizes the order of cards in the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		cards[i], _ = d.Deal()
	}
	return cards
}

// Remove excludes every card matching (rank, suit) of a card in used.
// O(|deck|*|used|), fine for at most 52x14.
func (d *Deck) Remove(used ...Card) {
	filtered := d.cards[:0]
	for _, card := range d.cards {
		if !containsCard(used, card) {
			filtered = append(filtered, card)
		}
	}
	d.cards = filtered
}

// Cards returns the remaining cards in deal order. The slice aliases the
// deck's storage; callers must not mutate it.
func (d *Deck) Cards() []Card {
	return d.cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

func containsCard(cards []Card, c Card) bool {
	for _, card := range cards {
		if card == c {
			return true
		}
	}
	return false
}
