package poker

// preflopMatrix maps canonical starting-hand keys ("AA", "AKs", "72o") to
// their enhanced Chen score. Built once at process start, read-only after.
var preflopMatrix = buildPreflopMatrix()

// buildPreflopMatrix computes the enhanced Chen formula score for every
// rank-pair shape, suited and offsuit.
func buildPreflopMatrix() map[string]int {
	matrix := make(map[string]int, 13*13*2)

	for high := 0; high < 13; high++ {
		for low := 0; low <= high; low++ {
			isPair := high == low
			for _, suited := range []bool{true, false} {
				if isPair && suited {
					continue // pairs carry no suited variant
				}

				score := high + 1

				if isPair {
					score *= 2
					if score < 5 {
						score = 5
					}
					if high >= 10 {
						score += 5 // premium pairs
					}
				} else {
					if suited {
						score += 2
					}

					gap := high - low - 1
					switch {
					case gap == 1:
						score++ // connector bonus
					case gap == 2:
						score--
					case gap == 3:
						score -= 2
					case gap == 4:
						score -= 4
					case gap >= 5:
						score -= 5
					}

					if high >= 10 {
						score++
					}
				}

				if score < 0 {
					score = 0
				}
				matrix[preflopKey(high, low, suited)] = score
			}
		}
	}

	return matrix
}

// preflopKey builds the canonical lookup key: higher ordinal first, suited
// marker last, no marker for pairs.
func preflopKey(high, low int, suited bool) string {
	if low > high {
		high, low = low, high
	}
	hs := Rank(high + 2).String()
	ls := Rank(low + 2).String()
	if high == low {
		return hs + ls
	}
	if suited {
		return hs + ls + "s"
	}
	return hs + ls + "o"
}

// PreflopScore returns the enhanced Chen score for a starting hand.
// The lookup is symmetric in card order; suitedness is derived from the
// actual suits.
func PreflopScore(card1, card2 Card) int {
	suited := card1.Suit == card2.Suit
	return preflopMatrix[preflopKey(card1.Rank.Ordinal(), card2.Rank.Ordinal(), suited)]
}

// PreflopLabel maps a Chen score onto a qualitative band. The bands are for
// human-readable output; the simulator works from raw scores.
func PreflopLabel(score int) string {
	switch {
	case score >= 12:
		return "Premium Hand"
	case score >= 8:
		return "Strong Hand"
	case score >= 6:
		return "Playable Hand"
	case score >= 4:
		return "Marginal Hand"
	default:
		return "Weak Hand"
	}
}

// HandStrengthLabel grades a win percentage for display.
func HandStrengthLabel(winPercentage float64) string {
	switch {
	case winPercentage >= 85:
		return "Monster Hand"
	case winPercentage >= 70:
		return "Very Strong"
	case winPercentage >= 55:
		return "Strong Hand"
	case winPercentage >= 40:
		return "Decent Hand"
	case winPercentage >= 25:
		return "Marginal"
	default:
		return "Weak Hand"
	}
}

// HandKey returns the canonical starting-hand key for two hole cards,
// e.g. "AKs", "72o" or "QQ".
func HandKey(card1, card2 Card) string {
	return preflopKey(card1.Rank.Ordinal(), card2.Rank.Ordinal(), card1.Suit == card2.Suit)
}
