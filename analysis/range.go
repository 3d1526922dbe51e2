package analysis

import (
	rand "math/rand/v2"
	"sort"

	"github.com/phantomop26/Poker-Analyst/poker"
)

// handCombo pairs a candidate hole-card combination with its preflop score.
type handCombo struct {
	first, second poker.Card
	score         int
}

// playableFraction computes the effective fraction of hands an opponent
// plays, given position and stack depth. Shallow stacks tighten ranges.
func playableFraction(profile BehaviorProfile, position Position, stackDepth float64) float64 {
	stackMultiplier := 1.0
	if stackDepth <= 50 {
		stackMultiplier = 0.8
	}
	return profile.VPIP * profile.HandRangeMultiplier * position.rangeMultiplier() * stackMultiplier / 100
}

// sampleOpponentHand draws a 2-card hand for an opponent from the live deck
// and removes it. A nil profile (unknown archetype) or an empty candidate set
// deals the next two undealt cards unbiased.
func sampleOpponentHand(d *poker.Deck, profile *BehaviorProfile, position Position, stackDepth float64, rng *rand.Rand) [2]poker.Card {
	if profile == nil {
		return dealUnbiased(d)
	}

	remaining := d.Cards()
	if len(remaining) < 2 {
		return dealUnbiased(d)
	}

	combos := make([]handCombo, 0, len(remaining)*(len(remaining)-1)/2)
	for i := 0; i < len(remaining)-1; i++ {
		for j := i + 1; j < len(remaining); j++ {
			combos = append(combos, handCombo{
				first:  remaining[i],
				second: remaining[j],
				score:  poker.PreflopScore(remaining[i], remaining[j]),
			})
		}
	}
	sort.SliceStable(combos, func(i, j int) bool {
		return combos[i].score > combos[j].score
	})

	rangeSize := int(playableFraction(*profile, position, stackDepth) * float64(len(combos)))
	if rangeSize < 1 {
		rangeSize = 1
	}
	if rangeSize > len(combos) {
		rangeSize = len(combos)
	}

	pick := combos[rng.IntN(rangeSize)]
	d.Remove(pick.first, pick.second)
	return [2]poker.Card{pick.first, pick.second}
}

func dealUnbiased(d *poker.Deck) [2]poker.Card {
	cards := d.DealN(2)
	var hand [2]poker.Card
	copy(hand[:], cards)
	return hand
}
