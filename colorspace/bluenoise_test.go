package colorspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlueNoiseTablesPopulated(t *testing.T) {
	var sawNonZero bool
	for _, b := range RawBlueNoise {
		if b != 0 {
			sawNonZero = true
			break
		}
	}
	assert.True(t, sawNonZero)
	assert.Len(t, TriBlueNoiseMultipliers, BlueNoiseLength)
}

func TestTriBlueNoiseMultiplierGeometricMean(t *testing.T) {
	sumLog := 0.0
	for _, m := range TriBlueNoiseMultipliers {
		sumLog += math.Log(m)
	}
	mean := sumLog / float64(len(TriBlueNoiseMultipliers))
	// Geometric mean should be close to 1, i.e. mean of logs close to 0.
	assert.InDelta(t, 0.0, mean, 0.05)
}
