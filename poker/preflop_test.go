package poker

import "testing"

func TestPreflopScore(t *testing.T) {
	tests := []struct {
		hand  string
		score int
	}{
		{"AsAd", 31}, // premium pair
		{"KsKd", 29},
		{"JsJd", 20}, // below the premium bonus threshold
		{"2s2d", 5},  // pair floor
		{"AsKs", 16},
		{"AdKh", 14},
		{"Ts9s", 11},
		{"7h2c", 2},
		{"7h2h", 4},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			cards := MustParseCards(tt.hand)
			if got := PreflopScore(cards[0], cards[1]); got != tt.score {
				t.Errorf("PreflopScore(%s) = %d, want %d", tt.hand, got, tt.score)
			}
		})
	}
}

func TestPreflopScoreSymmetric(t *testing.T) {
	cards := MustParseCards("Kd7s")
	if PreflopScore(cards[0], cards[1]) != PreflopScore(cards[1], cards[0]) {
		t.Error("score should not depend on card order")
	}
}

func TestPreflopLabel(t *testing.T) {
	tests := []struct {
		score int
		label string
	}{
		{31, "Premium Hand"},
		{9, "Strong Hand"},
		{6, "Playable Hand"},
		{4, "Marginal Hand"},
		{2, "Weak Hand"},
	}
	for _, tt := range tests {
		if got := PreflopLabel(tt.score); got != tt.label {
			t.Errorf("PreflopLabel(%d) = %q, want %q", tt.score, got, tt.label)
		}
	}
}

func TestHandKey(t *testing.T) {
	tests := []struct {
		hand string
		key  string
	}{
		{"AsAd", "AA"},
		{"AsKs", "AKs"},
		{"KdAh", "AKo"},
		{"2c7h", "72o"},
	}
	for _, tt := range tests {
		cards := MustParseCards(tt.hand)
		if got := HandKey(cards[0], cards[1]); got != tt.key {
			t.Errorf("HandKey(%s) = %q, want %q", tt.hand, got, tt.key)
		}
	}
}

func TestHandStrengthLabel(t *testing.T) {
	tests := []struct {
		pct   float64
		label string
	}{
		{90, "Monster Hand"},
		{72, "Very Strong"},
		{60, "Strong Hand"},
		{45, "Decent Hand"},
		{30, "Marginal"},
		{10, "Weak Hand"},
	}
	for _, tt := range tests {
		if got := HandStrengthLabel(tt.pct); got != tt.label {
			t.Errorf("HandStrengthLabel(%v) = %q, want %q", tt.pct, got, tt.label)
		}
	}
}
