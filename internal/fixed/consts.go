package fixed

// Fixed-point literals derived offline from their real-valued definitions.
// Tau needs 3 integer bits (tau is in [4,8)), Degrees needs 9 (360 is in
// [256,512)), hence their exponent offsets.
const (
	// Tau is the circle constant at exponent offset TauOffset.
	Tau Word = 0xC90FDAA22168C234

	// TauOffset is the exponent offset Tau is expressed at.
	TauOffset = 3

	// Degrees is 360 at exponent offset DegreesOffset.
	Degrees Word = 0xB400000000000000

	// DegreesOffset is the exponent offset Degrees is expressed at.
	DegreesOffset = 9
)
