package color

import (
	"math"
	"strings"

	"github.com/npillmayer/cssfilter/maybe"
	"github.com/npillmayer/cssfilter/parse"
	"github.com/npillmayer/cssfilter/unit"
)

// functional parses rgb(), rgba(), hsl() and hsla(). Arguments may be
// separated by commas or blanks, and the alpha value may follow a '/'.
func functional(text string) maybe.Maybe[RGBA8] {
	toks := parse.Tokenize(text).Tokens()
	if len(toks) < 2 || !toks[len(toks)-1].IsChar(")") {
		return maybe.Nothing[RGBA8]()
	}
	name := toks[0].FunctionName()
	args, ok := arguments(toks[1 : len(toks)-1])
	if !ok {
		return maybe.Nothing[RGBA8]()
	}
	switch name {
	case "rgb", "rgba":
		return rgb(args)
	case "hsl", "hsla":
		return hsl(args)
	}
	return maybe.Nothing[RGBA8]()
}

// arguments collects the numeric arguments of a color function, with signs
// attached.
func arguments(toks []parse.Token) ([]string, bool) {
	var args []string
	sign := ""
	for _, tok := range toks {
		switch {
		case tok.IsSpace(), tok.IsChar(","), tok.IsChar("/"):
			if sign != "" {
				return nil, false
			}
		case tok.IsChar("-"), tok.IsChar("+"):
			if sign != "" {
				return nil, false
			}
			sign = tok.Value
		case tok.IsNumeric():
			args = append(args, sign+tok.Value)
			sign = ""
		default:
			return nil, false
		}
	}
	return args, sign == ""
}

func rgb(args []string) maybe.Maybe[RGBA8] {
	if len(args) != 3 && len(args) != 4 {
		return maybe.Nothing[RGBA8]()
	}
	var ch [4]uint8
	ch[3] = 255
	for i, arg := range args {
		var v uint8
		var ok bool
		if i == 3 {
			v, ok = alpha(arg)
		} else {
			v, ok = channel(arg)
		}
		if !ok {
			return maybe.Nothing[RGBA8]()
		}
		ch[i] = v
	}
	return maybe.Just(RGBA8{ch[0], ch[1], ch[2], ch[3]})
}

// channel parses a color channel, either 0…255 or a percentage.
func channel(arg string) (uint8, bool) {
	x, isPercent, ok := number(arg)
	if !ok {
		return 0, false
	}
	if isPercent {
		x = x * 255 / 100
	}
	return toByte(x), true
}

// alpha parses an alpha value, either 0…1 or a percentage. Out of range
// values are clamped, which maps 255 to opaque.
func alpha(arg string) (uint8, bool) {
	x, isPercent, ok := number(arg)
	if !ok {
		return 0, false
	}
	if isPercent {
		x /= 100
	}
	return toByte(clamp(x, 0, 1) * 255), true
}

func hsl(args []string) maybe.Maybe[RGBA8] {
	if len(args) != 3 && len(args) != 4 {
		return maybe.Nothing[RGBA8]()
	}
	num, u := unit.SplitLength(args[0])
	if u == "" {
		u = "deg"
	}
	hue, err := unit.NormalizeAngle(num, u)
	if err != nil {
		return maybe.Nothing[RGBA8]()
	}
	s, _, okS := number(args[1])
	l, _, okL := number(args[2])
	if !okS || !okL {
		return maybe.Nothing[RGBA8]()
	}
	c := fromHSL(float64(hue), clamp(s/100, 0, 1), clamp(l/100, 0, 1))
	if len(args) == 4 {
		a, ok := alpha(args[3])
		if !ok {
			return maybe.Nothing[RGBA8]()
		}
		c.A = a
	}
	return maybe.Just(c)
}

// fromHSL converts hue (degrees), saturation and lightness (0…1) to an
// opaque color.
func fromHSL(h, s, l float64) RGBA8 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGBA8{toByte((r + m) * 255), toByte((g + m) * 255), toByte((b + m) * 255), 255}
}

// number parses a plain number or a percentage. Dimensions are rejected.
func number(arg string) (float64, bool, bool) {
	num, u := unit.SplitLength(arg)
	if u != "" && u != "%" {
		return 0, false, false
	}
	x, err := unit.ParseFloat(num)
	if err != nil {
		return 0, false, false
	}
	return float64(x), strings.HasSuffix(arg, "%"), true
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func toByte(x float64) uint8 {
	return uint8(math.Round(clamp(x, 0, 255)))
}
