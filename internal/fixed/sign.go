package fixed

// Sign is the polarity carried alongside a fixed-point magnitude. The
// magnitude format spans [0, 2^off) and cannot itself encode a negative
// value, so the sign bit extracted from a raw pattern travels separately
// during evaluation. It is always recomputed, never persisted.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// SignFromBit derives a Sign from the most significant bit of a raw
// pattern.
func SignFromBit(bit bool) Sign {
	if bit {
		return Negative
	}
	return Positive
}

// Apply attaches the sign to an unsigned magnitude.
func (s Sign) Apply(v float64) float64 {
	if s == Negative {
		return -v
	}
	return v
}

// String implements fmt.Stringer.
func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}
