package fixed

import (
	"errors"
	"math"
	"math/bits"
)

// IEEE-754 double precision layout constants.
const (
	expMask     = 0x7FF
	expShift    = 52
	expBias     = 1023
	mantMask    = 1<<52 - 1
	implicitBit = 1 << 52
)

// ErrUnrepresentable is returned when a float cannot be mapped into the
// fixed-point scale: NaN, infinities, and subnormals. Subnormals are
// refused rather than silently truncated because the caller has no way to
// detect the precision loss afterwards.
var ErrUnrepresentable = errors.New("value is not a normal finite float")

// Word is a 64-bit fixed-point value. With a call-site exponent offset
// off, it represents bits/2^64 * 2^off. See the package documentation for
// the representation contract.
type Word uint64

// FromFloat converts a float into a fixed-point word at the given exponent
// offset. Zero maps to the zero word. Normal finite values are converted
// by restoring the implicit mantissa bit and shifting it into the
// fixed-point scale; negative values are encoded via two's-complement
// negation so the modular-add machinery treats them uniformly. Values
// outside [0, 2^off) wrap modularly; that is first-class behavior, not an
// error. NaN, infinite, and subnormal inputs return ErrUnrepresentable.
func FromFloat(value float64, off int) (Word, error) {
	if value == 0 {
		return 0, nil
	}

	raw := math.Float64bits(value)
	exp := int(raw>>expShift) & expMask
	switch exp {
	case expMask: // NaN or infinity
		return 0, ErrUnrepresentable
	case 0: // subnormal (zero was handled above)
		return 0, ErrUnrepresentable
	}

	mantissa := raw&mantMask | implicitBit

	// Align the 53-bit significand with the fixed-point scale. Go defines
	// shifts at or beyond the word width as zero, which is exactly right
	// here: such values are either multiples of the modulus or truncate
	// away entirely.
	shift := exp - expBias + (64 - expShift) - off
	var w uint64
	if shift < 0 {
		w = mantissa >> uint(-shift)
	} else {
		w = mantissa << uint(shift)
	}

	if raw>>63 != 0 {
		w = -w
	}
	return Word(w), nil
}

// Float converts the word back to the nearest representable double,
// interpreting it at the given exponent offset. The zero word converts to
// 0.0 exactly. The most significant set bit determines the binary
// exponent; the following bits, left-aligned, form the mantissa. Ties are
// resolved by truncation of the shifted mantissa; there is no rounding
// mode configurability.
func (w Word) Float(off int) float64 {
	if w == 0 {
		return 0
	}

	lz := bits.LeadingZeros64(uint64(w))
	mantissa := (uint64(w) << uint(lz+1)) >> (64 - expShift)
	biased := uint64(expBias + off - 1 - lz)

	return math.Float64frombits(biased<<expShift | mantissa)
}

// Mul multiplies the word by an offset-0 fraction, keeping the receiver's
// offset: a widened 128-bit product shifted right by the word width. This
// is how the constants (Tau, Degrees) scale a rotation fraction into
// radians or degrees.
func (w Word) Mul(frac Word) Word {
	hi, _ := bits.Mul64(uint64(w), uint64(frac))
	return Word(hi)
}

// MulFrac multiplies the word (at exponent offset off) by an offset-0
// fraction and returns the result rescaled to offset 0. The shift is
// 64-off instead of 64, folding the receiver's integer bits back into the
// fraction.
func (w Word) MulFrac(frac Word, off int) Word {
	hi, lo := bits.Mul64(uint64(w), uint64(frac))
	return Word(hi<<uint(off) | lo>>uint(64-off))
}

// WrappingAdd returns w+v modulo 2^64. Wraparound encodes periodicity:
// crossing a full rotation lands back at the start.
func (w Word) WrappingAdd(v Word) Word {
	return w + v
}

// SaturatingAdd returns w+v clamped to the maximum word. Used when
// building a corrected sine value near 1, where overshooting the top of
// the representable range must clamp rather than wrap.
func (w Word) SaturatingAdd(v Word) Word {
	sum, carry := bits.Add64(uint64(w), uint64(v), 0)
	if carry != 0 {
		return Word(math.MaxUint64)
	}
	return Word(sum)
}
