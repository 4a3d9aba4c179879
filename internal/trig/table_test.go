package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurve_StartsAtZero(t *testing.T) {
	assert.Zero(t, curve[0], "sin(0) is 0")
}

func TestCurve_MonotonicallyNonDecreasing(t *testing.T) {
	for i := 1; i < len(curve); i++ {
		assert.LessOrEqual(t, uint64(curve[i-1]), uint64(curve[i]), "entry %d", i)
	}
}

func TestCurve_MatchesSine(t *testing.T) {
	// Table entries are exact well below the evaluator's correction
	// error; they only carry the float64 precision of the generator.
	for i, w := range curve {
		want := math.Sin(2 * math.Pi * float64(i) / 1024)
		assert.InDelta(t, want, w.Float(0), 1e-12, "entry %d", i)
	}
}

func TestSamples_ReturnsCopy(t *testing.T) {
	s := Samples()
	assert.Len(t, s, 256)
	s[0] = 1
	assert.Zero(t, curve[0], "mutating the copy must not touch the table")
}
