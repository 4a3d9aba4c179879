package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit_Spellings(t *testing.T) {
	for _, s := range []string{"deg", "degree", "degrees", "d", "°", "DEG", " deg "} {
		u, err := ParseUnit(s)
		require.NoError(t, err, s)
		assert.Equal(t, UnitDegrees, u, s)
	}
	for _, s := range []string{"rad", "radian", "radians", "r"} {
		u, err := ParseUnit(s)
		require.NoError(t, err, s)
		assert.Equal(t, UnitRadians, u, s)
	}
	for _, s := range []string{"rot", "rotation", "rotations"} {
		u, err := ParseUnit(s)
		require.NoError(t, err, s)
		assert.Equal(t, UnitRotations, u, s)
	}
}

func TestParseUnit_Unknown(t *testing.T) {
	_, err := ParseUnit("gradians")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestParseAngle_Valid(t *testing.T) {
	a, err := ParseAngle("0.5 rot")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8000000000000000), a.Repr())

	b, err := ParseAngle("180 deg")
	require.NoError(t, err)
	assert.Equal(t, a.Repr(), b.Repr())
}

func TestParseAngle_Malformed(t *testing.T) {
	cases := map[string]string{
		"":            "need a value",
		"0.5":         "need a unit",
		"0.5 rot rot": "fields",
		"abc rot":     "failed to parse value",
		"1 parsec":    "failed to parse unit",
		"nan rot":     "failed to build angle",
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAngle(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), want)
		})
	}
}
