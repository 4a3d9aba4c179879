package quarterwave

import (
	"fmt"
	"math"

	"github.com/roach88/quarterwave/internal/fixed"
	"github.com/roach88/quarterwave/internal/trig"
)

// Angle is a fraction of one full rotation in [0, 1), stored as a 64-bit
// fixed-point word. The zero Angle is zero rotations. Angles are immutable
// value types: constructed once, copied by value, no mutation.
//
// An Angle can never hold NaN or an infinity, so every operation on a
// constructed Angle is total.
type Angle struct {
	frac fixed.Word
}

// FromRepr builds an Angle from its raw 64-bit pattern. Infallible: the
// full 64-bit space is valid. Together with Repr this gives bit-exact
// round-trips for deterministic serialization.
func FromRepr(repr uint64) Angle {
	return Angle{frac: fixed.Word(repr)}
}

// FromRotations builds an Angle from a fractional number of rotations.
// Values outside [0, 1) wrap modularly: 1.5 rotations is 0.5, -0.25 is
// 0.75. Fails for NaN, infinite, and subnormal inputs.
func FromRotations(rotations float64) (Angle, error) {
	w, err := fixed.FromFloat(rotations, 0)
	if err != nil {
		return Angle{}, fmt.Errorf("angle from %g rotations: %w", rotations, err)
	}
	return Angle{frac: w}, nil
}

// FromRadians builds an Angle from radians, with the same wraparound and
// failure behavior as FromRotations.
func FromRadians(radians float64) (Angle, error) {
	return FromRotations(radians / (2 * math.Pi))
}

// FromDegrees builds an Angle from degrees, with the same wraparound and
// failure behavior as FromRotations.
func FromDegrees(degrees float64) (Angle, error) {
	return FromRotations(degrees / 360)
}

// Repr returns the lossless 64-bit pattern of the angle.
func (a Angle) Repr() uint64 {
	return uint64(a.frac)
}

// Rotations returns the angle as a fraction of a full rotation.
func (a Angle) Rotations() float64 {
	return a.frac.Float(0)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return fixed.Tau.Mul(a.frac).Float(fixed.TauOffset)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return fixed.Degrees.Mul(a.frac).Float(fixed.DegreesOffset)
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return trig.Sin(a.Repr()).Float()
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return trig.Cos(a.Repr()).Float()
}

// Tan returns the tangent of the angle. Near the cosine zeros it follows
// ordinary floating-point division semantics, producing huge values or
// infinities with no special-casing.
func (a Angle) Tan() float64 {
	return a.Sin() / a.Cos()
}
