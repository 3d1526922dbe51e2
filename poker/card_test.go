package poker

import (
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		rank  Rank
		suit  Suit
	}{
		{"As", Ace, Spades},
		{"Kd", King, Diamonds},
		{"Th", Ten, Hearts},
		{"2c", Two, Clubs},
		{"9s", Nine, Spades},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if err != nil {
				t.Fatalf("ParseCard(%q) returned error: %v", tt.input, err)
			}
			if card.Rank != tt.rank || card.Suit != tt.suit {
				t.Errorf("ParseCard(%q) = %v, want %v%v", tt.input, card, tt.rank, tt.suit)
			}
		})
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, input := range []string{"", "A", "Asd", "Xs", "Az", "1h"} {
		if _, err := ParseCard(input); err == nil {
			t.Errorf("ParseCard(%q) expected error, got none", input)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AsKdQh")
	if err != nil {
		t.Fatalf("ParseCards returned error: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0] != (Card{Rank: Ace, Suit: Spades}) {
		t.Errorf("first card = %v, want As", cards[0])
	}

	if _, err := ParseCards("AsK"); err == nil {
		t.Error("expected error for odd-length input")
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"As", "A♠"},
		{"Td", "T♦"},
		{"2c", "2♣"},
		{"Jh", "J♥"},
	}
	for _, tt := range tests {
		card, err := ParseCard(tt.input)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", tt.input, err)
		}
		if card.String() != tt.want {
			t.Errorf("%q String() = %q, want %q", tt.input, card.String(), tt.want)
		}
	}
}

func TestRankOrdinal(t *testing.T) {
	if Two.Ordinal() != 0 {
		t.Errorf("Two.Ordinal() = %d, want 0", Two.Ordinal())
	}
	if Ace.Ordinal() != 12 {
		t.Errorf("Ace.Ordinal() = %d, want 12", Ace.Ordinal())
	}
}

func TestSuitColor(t *testing.T) {
	if !Hearts.IsRed() || !Diamonds.IsRed() {
		t.Error("hearts and diamonds should be red")
	}
	if Spades.IsRed() || Clubs.IsRed() {
		t.Error("spades and clubs should be black")
	}
}

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard(Rank(1), Spades); err == nil {
		t.Error("expected error for rank below Two")
	}
	if _, err := NewCard(Ace, Suit(4)); err == nil {
		t.Error("expected error for out-of-range suit")
	}
}
