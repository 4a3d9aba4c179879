// Package fixed provides the 64-bit fixed-point word underlying angle
// representation and evaluation.
//
// A Word, paired with an exponent offset supplied at each call site,
// represents a real number in a bounded half-open interval: with offset
// off, a word w means w/2^64 * 2^off, i.e. a value in [0, 2^off). The
// usual offset is 0, a fraction in [0, 1). Arithmetic is modular over the
// 64-bit word: overflow wraps, which is the deliberate encoding of angular
// periodicity (a full-rotation overflow is equivalent to zero rotations).
//
// Key design constraints:
//   - The bit pattern plus the call-site offset fully determine the value;
//     no other state exists and the offset is never stored at runtime.
//   - Multiplication requires one operand at offset 0 (a [0,1) multiplier).
//     The API exposes only the combinations actually used.
//   - Conversions from float refuse NaN, infinities, and subnormals;
//     out-of-range finite values wrap modularly (1.5 -> 0.5, -0.25 -> 0.75).
package fixed
