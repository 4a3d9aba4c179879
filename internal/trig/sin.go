package trig

import "github.com/roach88/quarterwave/internal/fixed"

const (
	// halfTurn and quarterTurn are rotation fractions on the full-word
	// scale, where 2^64 is one rotation.
	halfTurn    uint64 = 1 << 63
	quarterTurn uint64 = 1 << 62

	// A quarter-range word splits into an 8-bit zone indexing the curve
	// table and a 54-bit epsilon below it.
	epsilonBits = 54
	epsilonMask = 1<<epsilonBits - 1
)

// Result is the outcome of a sine evaluation: a polarity plus either the
// exactly-one sentinel or a fixed-point fraction. The fraction format
// spans [0,1) and cannot encode 1 itself, so the quarter-turn peak is
// carried as a sentinel rather than an approximation.
type Result struct {
	sign fixed.Sign
	one  bool
	frac fixed.Word
}

// Float converts the result to a double, reattaching the sign.
func (r Result) Float() float64 {
	v := 1.0
	if !r.one {
		v = r.frac.Float(0)
	}
	return r.sign.Apply(v)
}

// Exact reports whether the result is the exact quarter-turn peak.
func (r Result) Exact() bool {
	return r.one
}

// Sin returns the sine of repr, a fraction of one full rotation scaled
// across the whole 64-bit word. The most significant bit carries the sign:
// angles in the second half turn are the negated reflection of the first,
// sin(x + 1/2 rot) = -sin(x).
func Sin(repr uint64) Result {
	sign := fixed.SignFromBit(repr&halfTurn != 0)
	frac, one := halfSin(repr & (halfTurn - 1))
	return Result{sign: sign, one: one, frac: frac}
}

// Cos returns the cosine of repr via cos(x) = sin(x + 1/4 rot). The
// wrapping add handles the boundary crossing for free.
func Cos(repr uint64) Result {
	return Sin(repr + quarterTurn)
}

// halfSin evaluates sine for repr in [0, 1/2) rotations. The exact
// quarter-turn midpoint reports the sentinel; values beyond it reflect
// onto the first quarter via sin(1/2 rot - x) = sin(x).
func halfSin(repr uint64) (frac fixed.Word, one bool) {
	switch {
	case repr < quarterTurn:
	case repr == quarterTurn:
		return 0, true
	default:
		repr = halfTurn - repr
	}
	return quarterSin(repr), false
}

// quarterSin evaluates sine for repr in [0, 1/4) rotations. The zone is
// the coarse angle A addressing the table; the epsilon is the fine angle b
// well below one table step. Using sin(A+b) ~= sin(A) + b*cos(A) with
// cos(A) = sin(1/4 rot - A) read at the mirrored index. The epsilon is
// converted to radians first, since the linearization sin(b) ~= b only
// holds on the radian scale.
func quarterSin(repr uint64) fixed.Word {
	zone := repr >> epsilonBits
	epsilon := fixed.Word(repr & epsilonMask)

	// The epsilon is far below a full rotation, so the product stays well
	// under the offset-0 ceiling and no wrap occurs.
	epsilonRadians := fixed.Tau.MulFrac(epsilon, fixed.TauOffset)

	// Zone 0 degenerates to exactly b (sin(0)=0, cos(0)=1), and its
	// mirrored cosine index would fall off the end of the table.
	if zone == 0 {
		return epsilonRadians
	}

	sinA := curve[zone]
	cosA := curve[256-zone]
	return sinA.SaturatingAdd(cosA.Mul(epsilonRadians))
}
