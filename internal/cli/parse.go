package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/quarterwave"
)

// Unit is an angle unit accepted at the CLI boundary.
type Unit int

const (
	UnitRotations Unit = iota
	UnitRadians
	UnitDegrees
)

// ParseUnit parses a unit name. Input is NFC-normalized before matching so
// visually identical spellings compare equal.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
	switch s {
	case "deg", "degree", "degrees", "d", "°":
		return UnitDegrees, nil
	case "rad", "radian", "radians", "r":
		return UnitRadians, nil
	case "rot", "rotation", "rotations":
		return UnitRotations, nil
	}
	return 0, fmt.Errorf("unit must be one of deg, rad, rot (got %q)", s)
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case UnitRadians:
		return "rad"
	case UnitDegrees:
		return "deg"
	default:
		return "rot"
	}
}

// Angle constructs an Angle from a value in this unit.
func (u Unit) Angle(value float64) (quarterwave.Angle, error) {
	switch u {
	case UnitRadians:
		return quarterwave.FromRadians(value)
	case UnitDegrees:
		return quarterwave.FromDegrees(value)
	default:
		return quarterwave.FromRotations(value)
	}
}

// ParseAngle parses "value unit" input text, e.g. "0.25 rot" or "30 deg".
func ParseAngle(input string) (quarterwave.Angle, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return quarterwave.Angle{}, errors.New("need a value and a unit, separated by whitespace")
	}
	if len(fields) == 1 {
		return quarterwave.Angle{}, errors.New("need a unit: rad, deg, rot")
	}
	if len(fields) > 2 {
		return quarterwave.Angle{}, fmt.Errorf("expected \"value unit\", got %d fields", len(fields))
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return quarterwave.Angle{}, fmt.Errorf("failed to parse value: %w", err)
	}

	unit, err := ParseUnit(fields[1])
	if err != nil {
		return quarterwave.Angle{}, fmt.Errorf("failed to parse unit: %w", err)
	}

	angle, err := unit.Angle(value)
	if err != nil {
		return quarterwave.Angle{}, fmt.Errorf("failed to build angle: %w", err)
	}
	return angle, nil
}
