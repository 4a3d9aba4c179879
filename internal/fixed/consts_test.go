package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTau_MatchesCircleConstant(t *testing.T) {
	// The stored pattern truncates tau below double precision, so the
	// reconstruction is bit-identical to the float64 circle constant.
	assert.Equal(t, 2*math.Pi, Tau.Float(TauOffset))
}

func TestDegrees_IsExactly360(t *testing.T) {
	assert.Equal(t, 360.0, Degrees.Float(DegreesOffset))
}
