// Package trig evaluates sine and cosine over the fixed-point rotation
// format, using a quarter-turn lookup table and a first-order correction
// instead of floating-point transcendental calls.
//
// The evaluator decomposes a full-turn pattern by structure: the sign bit
// selects the polarity, a reflection folds the half turn onto the first
// quarter, the top eight bits of the folded value index the table, and the
// residual low bits feed the linearized identity
//
//	sin(A + b) ~= sin(A) + b*cos(A)
//
// with cos(A) read from the same table at the mirrored index. Evaluation
// is branch-light, allocation-free, and bounded: fixed-width bit
// operations only, no loops proportional to input magnitude. The package
// has no mutable state and is safe for concurrent use.
package trig
