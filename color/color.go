/*
Package color parses the CSS color values a filter function may carry.

Supported are hex notation (#rgb, #rgba, #rrggbb, #rrggbbaa), named colors
(the CSS/SVG keyword set plus 'transparent'), and the functional notations
rgb(), rgba(), hsl() and hsla(). This is deliberately a subset of CSS Color
Level 4; text outside of it yields Nothing.

    c := color.Parse("rgba(47, 20, 223, .5)").WithDefault(color.Black)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package color

import (
	"fmt"
	imgcolor "image/color"
	"strings"

	"github.com/npillmayer/cssfilter/maybe"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/colornames"
)

// tracer traces with key 'cssfilter.color'.
func tracer() tracing.Trace {
	return tracing.Select("cssfilter.color")
}

// RGBA8 is a non-premultiplied color with 8 bits per channel.
type RGBA8 struct {
	R, G, B, A uint8
}

// Black is opaque black, the default color of a drop shadow.
var Black = RGBA8{0, 0, 0, 255}

// Transparent is fully transparent black.
var Transparent = RGBA8{}

// RGBA implements image/color.Color.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library representation.
func (c RGBA8) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String returns c in #rrggbbaa notation.
func (c RGBA8) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromColor converts any image/color.Color.
func FromColor(c imgcolor.Color) RGBA8 {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return RGBA8{n.R, n.G, n.B, n.A}
}

// Parse parses a CSS color value.
func Parse(text string) maybe.Maybe[RGBA8] {
	text = strings.TrimSpace(text)
	var c maybe.Maybe[RGBA8]
	switch {
	case strings.HasPrefix(text, "#"):
		c = Hex(text)
	case strings.Contains(text, "("):
		c = functional(text)
	default:
		c = Named(text)
	}
	if !c.IsJust() {
		tracer().Debugf("not a color: %q", text)
	}
	return c
}

// Named looks up a color keyword, ignoring case.
func Named(name string) maybe.Maybe[RGBA8] {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "transparent" {
		return maybe.Just(Transparent)
	}
	c, ok := colornames.Map[name]
	if !ok {
		return maybe.Nothing[RGBA8]()
	}
	return maybe.Just(FromColor(c))
}

// Hex parses #rgb, #rgba, #rrggbb and #rrggbbaa. The leading '#' is optional.
func Hex(text string) maybe.Maybe[RGBA8] {
	hex := strings.TrimPrefix(strings.TrimSpace(text), "#")
	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return maybe.Nothing[RGBA8]()
		}
		digits[i] = d
	}
	c := Black
	switch len(digits) {
	case 4:
		c.A = digits[3] * 17
		fallthrough
	case 3:
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
	case 8:
		c.A = digits[6]<<4 | digits[7]
		fallthrough
	case 6:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
	default:
		return maybe.Nothing[RGBA8]()
	}
	return maybe.Just(c)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
