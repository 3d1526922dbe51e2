package poker

import "math/bits"

// DrawAnalysis describes the draws available to a hand on an incomplete
// board, plus an estimate of outs to improve.
type DrawAnalysis struct {
	FlushDraw             bool
	OpenEndedStraightDraw bool
	GutshotStraightDraw   bool
	BackdoorFlush         bool
	BackdoorStraight      bool
	Overcards             int
	Outs                  int
}

// HasStraightDraw reports whether any straight draw is present.
func (d DrawAnalysis) HasStraightDraw() bool {
	return d.OpenEndedStraightDraw || d.GutshotStraightDraw
}

// straightMasks holds the rank masks of all ten straights, ace-high first.
// Bit i is rank ordinal i; 0x100F is the wheel (A-2-3-4-5).
var straightMasks = []uint16{
	0x1F00, 0x0F80, 0x07C0, 0x03E0, 0x01F0,
	0x00F8, 0x007C, 0x003E, 0x001F, 0x100F,
}

// AnalyzeDraws inspects hole cards against a 3- or 4-card board. Complete or
// preflop boards yield a zero analysis; backdoor draws only exist on the flop.
func AnalyzeDraws(hole, board []Card) DrawAnalysis {
	if len(board) < 3 || len(board) >= 5 {
		return DrawAnalysis{}
	}

	all := make([]Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	var analysis DrawAnalysis

	suitCounts := [4]int{}
	for _, c := range all {
		suitCounts[c.Suit]++
	}
	for _, n := range suitCounts {
		if n == 4 {
			analysis.FlushDraw = true
		}
		if n == 3 && len(board) == 3 {
			analysis.BackdoorFlush = true
		}
	}

	var rankMask uint16
	for _, c := range all {
		rankMask |= 1 << c.Rank.Ordinal()
	}

	analysis.OpenEndedStraightDraw, analysis.GutshotStraightDraw = straightDraws(rankMask)
	if len(board) == 3 && !analysis.HasStraightDraw() {
		analysis.BackdoorStraight = backdoorStraight(rankMask)
	}

	boardHigh := -1
	for _, c := range board {
		if c.Rank.Ordinal() > boardHigh {
			boardHigh = c.Rank.Ordinal()
		}
	}
	for _, c := range hole {
		if c.Rank.Ordinal() > boardHigh {
			analysis.Overcards++
		}
	}

	analysis.Outs = estimateOuts(analysis)
	return analysis
}

// straightDraws reports open-ended and gutshot draws: four cards of some
// straight with at least two distinct completing ranks is open-ended, exactly
// one is a gutshot. A made straight suppresses both.
func straightDraws(rankMask uint16) (openEnded, gutshot bool) {
	var completers uint16
	for _, mask := range straightMasks {
		missing := mask &^ rankMask
		if missing == 0 {
			return false, false // straight already made
		}
		if bits.OnesCount16(missing) == 1 {
			completers |= missing
		}
	}

	switch bits.OnesCount16(completers) {
	case 0:
		return false, false
	case 1:
		return false, true
	default:
		return true, false
	}
}

// backdoorStraight reports whether three ranks of some straight are present,
// leaving a runner-runner chance on the flop.
func backdoorStraight(rankMask uint16) bool {
	for _, mask := range straightMasks {
		if bits.OnesCount16(mask&rankMask) >= 3 {
			return true
		}
	}
	return false
}

// estimateOuts applies the additive out-count model: nine flush outs, eight
// or four straight outs, three per overcard, minus one for the straight-flush
// overlap, capped at the 47 unseen cards.
func estimateOuts(a DrawAnalysis) int {
	outs := 0
	if a.FlushDraw {
		outs += 9
	}
	if a.OpenEndedStraightDraw {
		outs += 8
	} else if a.GutshotStraightDraw {
		outs += 4
	}
	outs += a.Overcards * 3
	if a.FlushDraw && a.HasStraightDraw() {
		outs--
	}
	if outs > 47 {
		outs = 47
	}
	return outs
}
