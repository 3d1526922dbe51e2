package analysis

import (
	"fmt"
	"math"
)

// Adjustments breaks down the additive corrections applied on top of the raw
// simulated win percentage, all in percentage points.
type Adjustments struct {
	Behavioral float64
	Positional float64
	StackDepth float64
	GameTheory float64
}

// Total returns the sum of all four adjustments.
func (a Adjustments) Total() float64 {
	return a.Behavioral + a.Positional + a.StackDepth + a.GameTheory
}

// DegenerateResultError signals that the adjusted win percentage came out
// non-numeric or outside [0, 100] before clamping could be justified.
// Callers should retry with CalculateSimple.
type DegenerateResultError struct {
	WinPercentage float64
}

func (e *DegenerateResultError) Error() string {
	return fmt.Sprintf("degenerate adjusted win percentage %v", e.WinPercentage)
}

// behavioralAdjustment sums each known opponent's contribution: aggressive,
// loose, position-aware opponents depress our equity; frequent bluffers
// raise it.
func behavioralAdjustment(profiles []*BehaviorProfile) float64 {
	total := 0.0
	for _, p := range profiles {
		if p == nil {
			continue
		}
		modifier := (p.Aggression-2.5)*-0.5 +
			(p.VPIP-25)*-0.02 +
			p.BluffFreq*2 -
			p.PositionAwareness*1.5
		total += modifier
	}
	return total
}

// stackDepthAdjustment penalizes short stacks and rewards deep ones.
func stackDepthAdjustment(stackDepth float64) float64 {
	switch {
	case stackDepth < 20:
		return -3.0
	case stackDepth > 100:
		return 1.0
	default:
		return 0
	}
}

// gameTheoryAdjustment nudges equity toward the equal-share baseline across
// remaining players, more strongly on earlier streets where more uncertainty
// remains.
func gameTheoryAdjustment(winPercentage float64, numOpponents, communityCount int) float64 {
	optimalWinRate := 1.0 / float64(numOpponents+1)
	deviation := winPercentage/100 - optimalWinRate

	stageMultiplier := 1.0
	switch communityCount {
	case 3:
		stageMultiplier = 0.8
	case 4:
		stageMultiplier = 0.6
	case 5:
		stageMultiplier = 0.4
	}

	return deviation * 10 * stageMultiplier
}

// confidenceRating grades how much to trust the prediction, in [0.1, 1.0].
// Game-theory correction is excluded from the magnitude term; it measures
// deviation from baseline, not model uncertainty.
func confidenceRating(iterations int, stdDev float64, a Adjustments) float64 {
	confidence := 0.8

	if iterations >= 10000 {
		confidence += 0.1
	} else if iterations < 1000 {
		confidence -= 0.2
	}

	if stdDev < 10 {
		confidence += 0.1
	}

	magnitude := math.Abs(a.Behavioral + a.Positional + a.StackDepth)
	if magnitude < 5 {
		confidence += 0.1
	} else if magnitude > 15 {
		confidence -= 0.1
	}

	return math.Max(0.1, math.Min(1.0, confidence))
}
