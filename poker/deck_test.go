package poker

import (
	"testing"

	"github.com/phantomop26/Poker-Analyst/internal/randutil"
)

func TestNewDeckHas52DistinctCards(t *testing.T) {
	d := NewDeck(randutil.New(1))
	if d.CardsRemaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for _, c := range d.Cards() {
		if seen[c] {
			t.Errorf("duplicate card in fresh deck: %s", c)
		}
		seen[c] = true
	}
}

func TestDealN(t *testing.T) {
	d := NewDeck(randutil.New(1))

	cards := d.DealN(5)
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
	if d.CardsRemaining() != 47 {
		t.Errorf("expected 47 remaining, got %d", d.CardsRemaining())
	}
}

func TestRemove(t *testing.T) {
	d := NewDeck(randutil.New(1))
	hole := MustParseCards("AsKd")

	d.Remove(hole...)
	if d.CardsRemaining() != 50 {
		t.Fatalf("expected 50 remaining, got %d", d.CardsRemaining())
	}
	for _, c := range d.Cards() {
		if c == hole[0] || c == hole[1] {
			t.Errorf("removed card %s still in deck", c)
		}
	}

	// Removing an absent card is a no-op
	d.Remove(hole[0])
	if d.CardsRemaining() != 50 {
		t.Errorf("expected 50 remaining after no-op remove, got %d", d.CardsRemaining())
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	d1 := NewDeck(randutil.New(7))
	d2 := NewDeck(randutil.New(7))
	d1.Shuffle()
	d2.Shuffle()

	c1, c2 := d1.Cards(), d2.Cards()
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("decks diverge at %d: %s vs %s", i, c1[i], c2[i])
		}
	}
}

func TestDealExhaustion(t *testing.T) {
	d := NewDeck(randutil.New(1))
	d.DealN(52)
	if _, ok := d.Deal(); ok {
		t.Error("expected Deal to fail on empty deck")
	}
	if cards := d.DealN(3); len(cards) != 0 {
		t.Errorf("expected no cards from DealN on empty deck, got %d", len(cards))
	}
}
