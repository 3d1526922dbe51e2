package main

import (
	"testing"

	"github.com/phantomop26/Poker-Analyst/poker"
)

func TestValidateDistinct(t *testing.T) {
	if err := validateDistinct(poker.MustParseCards("AsKdQh")); err != nil {
		t.Errorf("unexpected error for distinct cards: %v", err)
	}
	if err := validateDistinct(poker.MustParseCards("AsKdAs")); err == nil {
		t.Error("expected error for duplicate cards")
	}
}

func TestFormatCards(t *testing.T) {
	got := formatCards(poker.MustParseCards("AsKd"))
	if got != "A♠ K♦" {
		t.Errorf("formatCards = %q, want %q", got, "A♠ K♦")
	}
}
