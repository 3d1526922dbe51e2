package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZScore(t *testing.T) {
	assert.Equal(t, 1.645, zScore(0.90))
	assert.Equal(t, 1.96, zScore(0.95))
	assert.Equal(t, 2.576, zScore(0.99))

	// Unsupported levels fall back to the normal quantile
	assert.InDelta(t, 2.326, zScore(0.98), 0.01)

	// Nonsense levels get the 95% default
	assert.Equal(t, 1.96, zScore(0))
	assert.Equal(t, 1.96, zScore(1.5))
}

func TestPopulationVariance(t *testing.T) {
	assert.Equal(t, 0.0, populationVariance(nil))
	assert.Equal(t, 0.0, populationVariance([]float64{42}))
	assert.InDelta(t, 4.0, populationVariance([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestConfidenceInterval(t *testing.T) {
	ci := confidenceInterval(0.5, 100, 0.95)
	assert.InDelta(t, 0.098, ci.Margin, 1e-3)
	assert.True(t, ci.Contains(0.5))
	assert.False(t, ci.Contains(0.7))
	assert.Equal(t, 0.95, ci.Level)

	// Margin shrinks with sample size
	tighter := confidenceInterval(0.5, 10000, 0.95)
	require.Less(t, tighter.Margin, ci.Margin)

	// Bounds clamp to [0, 1]
	edge := confidenceInterval(0.99, 50, 0.95)
	assert.LessOrEqual(t, edge.Upper, 1.0)
	assert.GreaterOrEqual(t, edge.Lower, 0.0)
}

func TestConfidenceIntervalZeroTrials(t *testing.T) {
	ci := confidenceInterval(0.5, 0, 0.95)
	assert.Equal(t, ConfidenceInterval{Level: 0.95}, ci)
}
