package cssfilter

import (
	"github.com/npillmayer/cssfilter/parse"
	"github.com/npillmayer/cssfilter/unit"
)

// quantity is a signed number with an optional unit, as written.
type quantity struct {
	number string
	unit   string
}

var sign = parse.Optional(
	parse.Map(parse.Alt(parse.Char("-"), parse.Char("+")), func(t parse.Token) string {
		return t.Value
	}), "")

// detachedUnit is a unit separated from its number by whitespace, as in
// 'blur(20 px)'.
var detachedUnit = parse.Right(parse.Whitespace(),
	parse.Alt(parse.Ident(), parse.Char("%")))

// bareDecimal is the remainder of a number written with a trailing decimal
// point, as in '5.px'. The tokenizer splits it into '5', '.' and 'px'.
// The value is the unit directly following the point, if any.
var bareDecimal = parse.Right(parse.Char("."), parse.Optional(
	parse.Map(parse.Alt(parse.Ident(), parse.Char("%")), func(t parse.Token) string {
		return t.Value
	}), ""))

// quantityArg recognizes a signed number, percentage or dimension. With
// spaced set, a plain number may be followed by a unit after whitespace.
func quantityArg(spaced bool) parse.Parser[quantity] {
	return parse.AndThen(sign, func(s string) parse.Parser[quantity] {
		return parse.AndThen(parse.Numeric(), func(t parse.Token) parse.Parser[quantity] {
			n, u := unit.SplitLength(t.Value)
			q := quantity{number: s + n, unit: u}
			if !t.IsNumber() {
				return parse.Succeed(q)
			}
			return parse.AndThen(parse.Optional(bareDecimal, ""), func(u string) parse.Parser[quantity] {
				q := quantity{number: q.number, unit: u}
				if !spaced || u != "" {
					return parse.Succeed(q)
				}
				return parse.Optional(parse.Map(detachedUnit, func(ut parse.Token) quantity {
					return quantity{number: q.number, unit: ut.Value}
				}), q)
			})
		})
	})
}

// lengthArg is a length normalized to pixels.
func lengthArg(spaced bool) parse.Parser[float32] {
	return parse.Try(quantityArg(spaced), func(q quantity) (float32, error) {
		return unit.Normalize(q.number, q.unit)
	})
}

// factorArg is a number or a percentage; percentages are divided by 100.
func factorArg() parse.Parser[float32] {
	return parse.Try(quantityArg(true), func(q quantity) (float32, error) {
		x, err := unit.ParseFloat(q.number)
		if err != nil {
			return 0, err
		}
		switch q.unit {
		case "":
			return x, nil
		case "%":
			return x / 100, nil
		}
		return 0, &unit.UnitError{Unit: q.unit, Value: x, Of: "factor"}
	})
}

// angleArg is an angle normalized to degrees.
func angleArg() parse.Parser[float32] {
	return parse.Try(quantityArg(true), func(q quantity) (float32, error) {
		return unit.NormalizeAngle(q.number, q.unit)
	})
}

// function recognizes 'name(' args ')' and the whitespace following it.
// Whitespace around args is skipped.
func function[T any](name string, args parse.Parser[T]) parse.Parser[T] {
	return parse.Lexeme(parse.Between(parse.Function(name), parse.Padded(args), parse.Char(")")))
}

func blur() parse.Parser[CssFilter] {
	return function("blur", parse.Map(lengthArg(true), func(px float32) CssFilter {
		return Blur{Length: px}
	}))
}

func brightness() parse.Parser[CssFilter] {
	return function("brightness", parse.Map(factorArg(), func(x float32) CssFilter {
		return Brightness{Factor: x}
	}))
}

func contrast() parse.Parser[CssFilter] {
	return function("contrast", parse.Map(factorArg(), func(x float32) CssFilter {
		return Contrast{Factor: x}
	}))
}

func hueRotate() parse.Parser[CssFilter] {
	return function("hue-rotate", parse.Map(angleArg(), func(deg float32) CssFilter {
		return HueRotate{Degrees: deg}
	}))
}

// factor builds the grammar of grayscale, invert, opacity, saturate or sepia.
func factor(k Kind) parse.Parser[CssFilter] {
	return function(k.String(), parse.Map(factorArg(), func(x float32) CssFilter {
		return Factor{Of: k, Value: x}
	}))
}
