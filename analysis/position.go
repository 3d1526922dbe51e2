package analysis

import "fmt"

// Position is the player's table position; it widens or narrows sampled
// opponent ranges and feeds the positional equity adjustment.
type Position int

// Middle comes first so the zero Options value gets the default position.
const (
	Middle Position = iota
	Early
	Late
	Blinds
)

// String returns the string representation of a position
func (p Position) String() string {
	switch p {
	case Early:
		return "early"
	case Middle:
		return "middle"
	case Late:
		return "late"
	case Blinds:
		return "blinds"
	default:
		return "unknown"
	}
}

// ParsePosition parses a position name.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "early":
		return Early, nil
	case "middle":
		return Middle, nil
	case "late":
		return Late, nil
	case "blinds":
		return Blinds, nil
	default:
		return 0, fmt.Errorf("unknown position %q", s)
	}
}

// rangeMultiplier scales the playable-hand fraction when sampling opponent
// ranges.
func (p Position) rangeMultiplier() float64 {
	switch p {
	case Early:
		return 0.8
	case Middle:
		return 0.9
	case Late:
		return 1.1
	case Blinds:
		return 0.85
	default:
		return 1.0
	}
}

// equityAdjustment is the additive positional correction in percentage points.
func (p Position) equityAdjustment() float64 {
	switch p {
	case Early:
		return -2.0
	case Late:
		return 2.5
	case Blinds:
		return -1.5
	default:
		return 0
	}
}
