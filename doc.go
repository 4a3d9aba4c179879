// Package quarterwave computes sine and cosine of an angle using a
// fixed-point circular representation instead of floating-point radians.
//
// An Angle stores a fraction of one full rotation in [0, 1), scaled across
// a 64-bit word. That makes wraparound free (modular arithmetic is the
// periodicity), serialization bit-exact (the raw pattern reproduces the
// angle with no float round-trip error), and evaluation deterministic,
// allocation-free, and bounded. Results accept a small relative error from
// a table-plus-linear-correction scheme in exchange for avoiding
// transcendental calls.
//
// All value types are small, immutable, and copied by value; safe to use
// concurrently without coordination.
package quarterwave
