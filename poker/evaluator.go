package poker

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// HandCategory represents the ranking category of a poker hand
type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand category
func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// EvaluatedHand is the result of classifying a 5-card hand. Kickers hold the
// rank ordinals (0-12) used for tie-breaking, most significant first.
// Incomplete marks the sentinel returned for fewer than five cards; it is a
// valid value used mid-computation before a full board exists, not an error.
type EvaluatedHand struct {
	Category    HandCategory
	Kickers     []int
	Description string
	Incomplete  bool
}

// String returns a string representation of the evaluated hand
func (h EvaluatedHand) String() string {
	if len(h.Kickers) == 0 {
		return h.Description
	}
	kickers := make([]string, len(h.Kickers))
	for i, k := range h.Kickers {
		kickers[i] = Rank(k + 2).String()
	}
	return fmt.Sprintf("%s [%s]", h.Description, strings.Join(kickers, " "))
}

// Compare total-orders two evaluated hands. It returns 1 if a is stronger,
// -1 if b is stronger, and 0 on an exact tie. Categories decide first; equal
// categories fall through to element-wise kicker comparison with a missing
// kicker treated as -1.
func Compare(a, b EvaluatedHand) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}

	n := len(a.Kickers)
	if len(b.Kickers) > n {
		n = len(b.Kickers)
	}
	for i := 0; i < n; i++ {
		ka, kb := -1, -1
		if i < len(a.Kickers) {
			ka = a.Kickers[i]
		}
		if i < len(b.Kickers) {
			kb = b.Kickers[i]
		}
		if ka != kb {
			if ka > kb {
				return 1
			}
			return -1
		}
	}

	return 0
}

// Evaluate classifies a 5-card hand. Fewer than five cards yields the
// Incomplete sentinel; more than five delegates to BestHand.
func Evaluate(cards []Card) EvaluatedHand {
	if len(cards) < 5 {
		return EvaluatedHand{Category: HighCard, Description: "Incomplete Hand", Incomplete: true}
	}
	if len(cards) > 5 {
		return BestHand(cards)
	}

	ordinals := make([]int, 5)
	for i, c := range cards {
		ordinals[i] = c.Rank.Ordinal()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ordinals)))

	isFlush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	straight := isStraight(ordinals)
	wheel := isWheel(ordinals)

	counts := make(map[int]int, 5)
	for _, o := range ordinals {
		counts[o]++
	}
	pairs := 0
	maxCount, secondCount := 0, 0
	for _, n := range counts {
		if n == 2 {
			pairs++
		}
		if n > maxCount {
			secondCount = maxCount
			maxCount = n
		} else if n > secondCount {
			secondCount = n
		}
	}

	switch {
	case isFlush && isRoyal(ordinals):
		return EvaluatedHand{Category: RoyalFlush, Kickers: []int{}, Description: "Royal Flush"}

	case isFlush && (straight || wheel):
		high := ordinals[0]
		if wheel {
			high = 3 // the five plays high in a wheel
		}
		return EvaluatedHand{Category: StraightFlush, Kickers: []int{high}, Description: "Straight Flush"}

	case maxCount == 4:
		quad := rankWithCount(counts, 4)
		kicker := highestWithCount(counts, 1)
		return EvaluatedHand{Category: FourOfAKind, Kickers: []int{quad, kicker}, Description: "Four of a Kind"}

	case maxCount == 3 && secondCount == 2:
		trips := rankWithCount(counts, 3)
		pair := rankWithCount(counts, 2)
		return EvaluatedHand{Category: FullHouse, Kickers: []int{trips, pair}, Description: "Full House"}

	case isFlush:
		return EvaluatedHand{Category: Flush, Kickers: ordinals, Description: "Flush"}

	case straight || wheel:
		high := ordinals[0]
		if wheel {
			high = 3
		}
		return EvaluatedHand{Category: Straight, Kickers: []int{high}, Description: "Straight"}

	case maxCount == 3:
		trips := rankWithCount(counts, 3)
		kickers := append([]int{trips}, ranksWithCount(counts, 1, 2)...)
		return EvaluatedHand{Category: ThreeOfAKind, Kickers: kickers, Description: "Three of a Kind"}

	case pairs == 2:
		pairRanks := ranksWithCount(counts, 2, 2)
		kicker := highestWithCount(counts, 1)
		kickers := append(pairRanks, kicker)
		return EvaluatedHand{Category: TwoPair, Kickers: kickers, Description: "Two Pair"}

	case pairs == 1:
		pair := rankWithCount(counts, 2)
		kickers := append([]int{pair}, ranksWithCount(counts, 1, 3)...)
		return EvaluatedHand{Category: OnePair, Kickers: kickers, Description: "One Pair"}

	default:
		return EvaluatedHand{Category: HighCard, Kickers: ordinals, Description: "High Card"}
	}
}

// fiveOfSeven holds the 21 index tuples for choosing 5 cards of 7, and
// fiveOfSix the 6 tuples for 5 of 6. Precomputed so the hot evaluation path
// never allocates combination builders.
var (
	fiveOfSeven = combinationIndices(7, 5)
	fiveOfSix   = combinationIndices(6, 5)
)

// BestHand selects the strongest 5-card sub-hand by exhaustive enumeration.
// Fewer than six cards evaluate directly; the six and seven card tuples are
// precomputed, larger inputs generate theirs on the fly.
func BestHand(cards []Card) EvaluatedHand {
	if len(cards) <= 5 {
		return Evaluate(cards)
	}

	var tuples [][]int
	switch len(cards) {
	case 6:
		tuples = fiveOfSix
	case 7:
		tuples = fiveOfSeven
	default:
		tuples = combinationIndices(len(cards), 5)
	}

	var best EvaluatedHand
	combo := make([]Card, 5)
	for i, tuple := range tuples {
		for j, idx := range tuple {
			combo[j] = cards[idx]
		}
		hand := Evaluate(combo)
		if i == 0 || Compare(hand, best) > 0 {
			best = hand
		}
	}

	return best
}

// HandStrength converts an evaluated hand into a scalar score for variance
// tracking: category*10 plus decaying kicker terms, scaled by 1.1 when the
// source set had seven cards so confirmed hands edge out partial evaluations.
func HandStrength(h EvaluatedHand, numCards int) float64 {
	strength := float64(h.Category) * 10
	for i, k := range h.Kickers {
		strength += float64(k) / math.Pow(10, float64(i+2))
	}
	if numCards == 7 {
		strength *= 1.1
	}
	return strength
}

func combinationIndices(n, k int) [][]int {
	var result [][]int
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	for {
		tuple := make([]int, k)
		copy(tuple, indices)
		result = append(result, tuple)

		// Advance the rightmost index that can still move
		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return result
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// isStraight expects ordinals sorted descending.
func isStraight(ordinals []int) bool {
	unique := uniqueDescending(ordinals)
	if len(unique) < 5 {
		return false
	}
	for i := 0; i+4 < len(unique); i++ {
		consecutive := true
		for j := 0; j < 4; j++ {
			if unique[i+j]-unique[i+j+1] != 1 {
				consecutive = false
				break
			}
		}
		if consecutive {
			return true
		}
	}
	return false
}

func isWheel(ordinals []int) bool {
	return containsAll(ordinals, []int{12, 3, 2, 1, 0})
}

func isRoyal(ordinals []int) bool {
	return containsAll(ordinals, []int{12, 11, 10, 9, 8})
}

func containsAll(ordinals, wanted []int) bool {
	for _, w := range wanted {
		found := false
		for _, o := range ordinals {
			if o == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func uniqueDescending(sorted []int) []int {
	unique := make([]int, 0, len(sorted))
	for i, o := range sorted {
		if i == 0 || o != sorted[i-1] {
			unique = append(unique, o)
		}
	}
	return unique
}

// rankWithCount returns the highest ordinal appearing exactly n times.
func rankWithCount(counts map[int]int, n int) int {
	best := -1
	for ordinal, c := range counts {
		if c == n && ordinal > best {
			best = ordinal
		}
	}
	return best
}

func highestWithCount(counts map[int]int, n int) int {
	return rankWithCount(counts, n)
}

// ranksWithCount returns up to limit ordinals with the given count, descending.
func ranksWithCount(counts map[int]int, n, limit int) []int {
	var ranks []int
	for ordinal, c := range counts {
		if c == n {
			ranks = append(ranks, ordinal)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}
