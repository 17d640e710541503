/*
Package unit normalizes CSS dimensions to a single canonical unit.

Lengths are converted to pixels, following the CSS reference pixel of
1/96 inch. Font-relative units assume a root font size of 16px, and
percentages are evaluated against that font size as well. Angles are
converted to degrees.

    px, err := unit.Normalize("1.5", "rem")   // 24

The package is stateless; all functions are safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/tyse/core/dimen"
)

// ErrUnit is matched by errors for unknown units and for unitless non-zero values.
var ErrUnit = errors.New("invalid unit")

// ErrFloat is matched by errors for numbers which cannot be parsed.
var ErrFloat = errors.New("invalid number")

// UnitError reports a dimension with a unit not present in the conversion table.
// An empty Unit denotes a unitless value other than zero.
type UnitError struct {
	Unit  string
	Value float32
	Of    string // "length" or "angle"
}

func (e *UnitError) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("unitless %s %g is not allowed", e.Of, e.Value)
	}
	return fmt.Sprintf("unknown %s unit %q", e.Of, e.Unit)
}

// Is makes UnitError match ErrUnit.
func (e *UnitError) Is(target error) bool {
	return target == ErrUnit
}

// FloatError reports a numeric portion which is not a valid float.
type FloatError struct {
	Text string
	Err  error
}

func (e *FloatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse %q as a number", e.Text)
	}
	return fmt.Sprintf("cannot parse %q as a number: %v", e.Text, e.Err)
}

func (e *FloatError) Unwrap() error {
	return e.Err
}

// Is makes FloatError match ErrFloat.
func (e *FloatError) Is(target error) bool {
	return target == ErrFloat
}

// pixels per unit; keys are lower case
var pixelsPer = map[string]float32{
	"em":  16,
	"rem": 16,
	"pc":  16,
	"pt":  4.0 / 3.0,
	"px":  1,
	"in":  96,
	"cm":  96 / 2.54,
	"mm":  96 / 25.4,
	"q":   96 / 25.4 / 4,
	"%":   16.0 / 100,
}

// degrees per unit; keys are lower case
var degreesPer = map[string]float32{
	"deg":  1,
	"grad": 0.9,
	"rad":  180 / math.Pi,
	"turn": 360,
}

// SplitLength splits an argument into its leading numeric portion and its
// trailing unit. The numeric portion extends up to the first letter or '%',
// the unit up to a closing parenthesis, if any. Both are trimmed.
//
//     SplitLength("20 px)")  =>  "20", "px"
func SplitLength(arg string) (number, unit string) {
	if i := strings.IndexByte(arg, ')'); i >= 0 {
		arg = arg[:i]
	}
	i := strings.IndexFunc(arg, func(r rune) bool {
		return unicode.IsLetter(r) || r == '%'
	})
	if i < 0 {
		return strings.TrimSpace(arg), ""
	}
	return strings.TrimSpace(arg[:i]), strings.TrimSpace(arg[i:])
}

// ParseFloat parses the numeric portion of an argument as a 32-bit float.
// NaN and infinities are rejected.
func ParseFloat(number string) (float32, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(number), 32)
	if err != nil {
		return 0, &FloatError{Text: number, Err: err}
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &FloatError{Text: number}
	}
	return float32(x), nil
}

// Normalize converts a number with a length unit into pixels. Units are
// matched case-insensitively. An empty unit is legal for zero only.
func Normalize(number, unit string) (float32, error) {
	return convert(number, unit, pixelsPer, "length")
}

// NormalizeAngle converts a number with an angle unit (deg, grad, rad, turn)
// into degrees. An empty unit is legal for zero only.
func NormalizeAngle(number, unit string) (float32, error) {
	return convert(number, unit, degreesPer, "angle")
}

// ParseLength is SplitLength followed by Normalize.
func ParseLength(arg string) (float32, error) {
	return Normalize(SplitLength(arg))
}

func convert(number, unit string, table map[string]float32, of string) (float32, error) {
	x, err := ParseFloat(number)
	if err != nil {
		return 0, err
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		if x == 0 {
			return 0, nil
		}
		return 0, &UnitError{Value: x, Of: of}
	}
	factor, ok := table[u]
	if !ok {
		return 0, &UnitError{Unit: unit, Value: x, Of: of}
	}
	return x * factor, nil
}

// ToDU converts a length in pixels to typesetting design units, with
// 1px = 3/4pt.
func ToDU(px float32) dimen.DU {
	return dimen.DU(math.Round(float64(px) * 0.75 * float64(dimen.PT)))
}
