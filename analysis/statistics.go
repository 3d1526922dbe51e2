package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// zScores maps the supported confidence levels to their critical values.
// Other levels fall back to the standard normal quantile.
var zScores = map[float64]float64{
	0.90: 1.645,
	0.95: 1.96,
	0.99: 2.576,
}

func zScore(confidenceLevel float64) float64 {
	if z, ok := zScores[confidenceLevel]; ok {
		return z
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return zScores[0.95]
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	return normal.Quantile(1 - (1-confidenceLevel)/2)
}

// populationVariance computes the population (not sample-corrected) variance
// of the recorded hand strengths.
func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.PopVariance(values, nil)
}

// ConfidenceInterval bounds the win-rate proportion under the normal
// approximation, clamped to [0, 1].
type ConfidenceInterval struct {
	Lower  float64
	Upper  float64
	Margin float64
	Level  float64
}

// Contains reports whether the interval covers the given rate.
func (ci ConfidenceInterval) Contains(rate float64) bool {
	return rate >= ci.Lower && rate <= ci.Upper
}

// confidenceInterval computes the interval around a win-rate proportion
// observed over n trials.
func confidenceInterval(winRate float64, n int, level float64) ConfidenceInterval {
	if n == 0 {
		return ConfidenceInterval{Level: level}
	}
	margin := zScore(level) * math.Sqrt(winRate*(1-winRate)/float64(n))
	return ConfidenceInterval{
		Lower:  math.Max(0, winRate-margin),
		Upper:  math.Min(1, winRate+margin),
		Margin: margin,
		Level:  level,
	}
}
