package cssfilter

import (
	"github.com/npillmayer/cssfilter/color"
	"github.com/npillmayer/cssfilter/maybe"
	"github.com/npillmayer/cssfilter/parse"
	"github.com/npillmayer/cssfilter/unit"
)

// ColorParser resolves the text of a color value.
type ColorParser interface {
	ParseColor(text string) maybe.Maybe[color.RGBA8]
}

// ColorParserFunc adapts a function to the ColorParser interface.
type ColorParserFunc func(text string) maybe.Maybe[color.RGBA8]

func (f ColorParserFunc) ParseColor(text string) maybe.Maybe[color.RGBA8] {
	return f(text)
}

// DefaultColorParser parses hex, named and rgb()/hsl() colors.
var DefaultColorParser ColorParser = ColorParserFunc(color.Parse)

// colorText recognizes the tokens a color value may consist of: a hash, an
// identifier or a function with its arguments.
var colorText = parse.Alt(
	parse.Recognize(parse.Hash()),
	parse.Recognize(parse.Ident()),
	parse.Recognize(parse.Balanced()),
)

// colorArg consumes a color value and resolves it. Text which does not
// resolve to a color is still consumed and yields Nothing.
func colorArg(colors ColorParser) parse.Parser[maybe.Maybe[color.RGBA8]] {
	return parse.Map(colorText, func(text string) maybe.Maybe[color.RGBA8] {
		c := colors.ParseColor(text)
		if !c.IsJust() {
			tracer().Debugf("drop-shadow: cannot resolve color %q, using black", text)
		}
		return c
	})
}

// blurRadius consumes a numeric argument. If it does not form a valid
// length, the radius is 0.
var blurRadius = parse.Map(quantityArg(false), func(q quantity) float32 {
	r, err := unit.Normalize(q.number, q.unit)
	if err != nil {
		tracer().Debugf("drop-shadow: ignoring blur radius: %v", err)
		return 0
	}
	return r
})

type offsets struct {
	x, y float32
}

// dropShadow parses
//
//     drop-shadow( <color>? <length> <length> <length>? <color>? )
//
// The color may lead or trail; a trailing color takes precedence. Lengths
// stop at whitespace, units may not be detached from their numbers.
func dropShadow(colors ColorParser) parse.Parser[CssFilter] {
	ws := parse.Whitespace()
	nocolor := maybe.Nothing[color.RGBA8]()
	leading := parse.Optional(parse.Left(colorArg(colors), ws), nocolor)
	xy := parse.AndThen(parse.Left(lengthArg(false), ws), func(x float32) parse.Parser[offsets] {
		return parse.Map(lengthArg(false), func(y float32) offsets {
			return offsets{x: x, y: y}
		})
	})
	radius := parse.Optional(parse.Right(ws, blurRadius), 0)
	trailing := parse.Optional(parse.Right(ws, colorArg(colors)), nocolor)
	args := parse.AndThen(leading, func(lead maybe.Maybe[color.RGBA8]) parse.Parser[CssFilter] {
		return parse.AndThen(xy, func(o offsets) parse.Parser[CssFilter] {
			return parse.AndThen(radius, func(r float32) parse.Parser[CssFilter] {
				return parse.Map(trailing, func(trail maybe.Maybe[color.RGBA8]) CssFilter {
					return DropShadow{
						OffsetX:    o.x,
						OffsetY:    o.y,
						BlurRadius: r,
						Color:      maybe.OneOf(trail, lead).WithDefault(color.Black),
					}
				})
			})
		})
	})
	return function("drop-shadow", args)
}
