package cssfilter

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cssfilter/color"
)

// Kind enumerates the filter functions.
type Kind uint8

// Filter functions, in the order in which the parser tries them.
const (
	KindBlur Kind = iota
	KindBrightness
	KindContrast
	KindDropShadow
	KindGrayscale
	KindHueRotate
	KindInvert
	KindOpacity
	KindSaturate
	KindSepia
	kindCount
)

var kindNames = [...]string{
	"blur", "brightness", "contrast", "drop-shadow", "grayscale",
	"hue-rotate", "invert", "opacity", "saturate", "sepia",
}

// String returns the CSS function name of a kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// CoreKinds are the filter functions every rendering backend must support.
var CoreKinds = []Kind{KindBlur, KindBrightness, KindContrast, KindDropShadow}

// CssFilter is a single parsed filter function. It is a closed sum type;
// the concrete types are Blur, Brightness, Contrast, DropShadow, HueRotate
// and Factor.
//
// Clients either use a type switch or the matcher:
//
//     var px float32
//     switch m := f.Match(); m {
//     case m.Blur(&px):
//         …
//     }
type CssFilter interface {
	Kind() Kind
	String() string
	Match() *Matcher
	isFilter()
}

// Blur is blur(<length>); Length is in pixels.
type Blur struct {
	Length float32
}

// Brightness is brightness(<number>|<percentage>).
type Brightness struct {
	Factor float32
}

// Contrast is contrast(<number>|<percentage>).
type Contrast struct {
	Factor float32
}

// DropShadow is drop-shadow(<length>{2,3} <color>?). Lengths are in pixels.
type DropShadow struct {
	OffsetX, OffsetY float32
	BlurRadius       float32
	Color            color.RGBA8
}

// HueRotate is hue-rotate(<angle>); Degrees is the normalized angle.
type HueRotate struct {
	Degrees float32
}

// Factor holds the argument of one of the remaining factor-type functions
// grayscale, invert, opacity, saturate and sepia. Of is one of KindGrayscale,
// KindInvert, KindOpacity, KindSaturate, KindSepia.
type Factor struct {
	Of    Kind
	Value float32
}

func (Blur) isFilter()       {}
func (Brightness) isFilter() {}
func (Contrast) isFilter()   {}
func (DropShadow) isFilter() {}
func (HueRotate) isFilter()  {}
func (Factor) isFilter()     {}

func (Blur) Kind() Kind       { return KindBlur }
func (Brightness) Kind() Kind { return KindBrightness }
func (Contrast) Kind() Kind   { return KindContrast }
func (DropShadow) Kind() Kind { return KindDropShadow }
func (HueRotate) Kind() Kind  { return KindHueRotate }
func (f Factor) Kind() Kind   { return f.Of }

func (f Blur) String() string {
	return "blur(" + px(f.Length) + ")"
}

func (f Brightness) String() string {
	return "brightness(" + num(f.Factor) + ")"
}

func (f Contrast) String() string {
	return "contrast(" + num(f.Factor) + ")"
}

func (f DropShadow) String() string {
	return "drop-shadow(" + px(f.OffsetX) + " " + px(f.OffsetY) + " " + px(f.BlurRadius) +
		" " + f.Color.String() + ")"
}

func (f HueRotate) String() string {
	return "hue-rotate(" + num(f.Degrees) + "deg)"
}

func (f Factor) String() string {
	return f.Of.String() + "(" + num(f.Value) + ")"
}

func num(x float32) string {
	return strconv.FormatFloat(float64(x), 'f', -1, 32)
}

func px(x float32) string {
	if x == 0 {
		return "0"
	}
	return num(x) + "px"
}

// --- List ------------------------------------------------------------------

// List is a sequence of filters in textual order. Filters are applied in
// this order.
type List []CssFilter

// String returns the list in canonical CSS notation, all lengths in pixels.
func (l List) String() string {
	s := make([]string, len(l))
	for i, f := range l {
		s[i] = f.String()
	}
	return strings.Join(s, " ")
}

// Kinds returns the kind of every filter of the list.
func (l List) Kinds() []Kind {
	kinds := make([]Kind, len(l))
	for i, f := range l {
		kinds[i] = f.Kind()
	}
	return kinds
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern matching on a filter. Every case method returns
// the matcher if the filter is of the requested kind and copies its
// arguments, otherwise it returns nil.
type Matcher struct {
	f CssFilter
}

func (f Blur) Match() *Matcher       { return &Matcher{f: f} }
func (f Brightness) Match() *Matcher { return &Matcher{f: f} }
func (f Contrast) Match() *Matcher   { return &Matcher{f: f} }
func (f DropShadow) Match() *Matcher { return &Matcher{f: f} }
func (f HueRotate) Match() *Matcher  { return &Matcher{f: f} }
func (f Factor) Match() *Matcher     { return &Matcher{f: f} }

// IsKind matches any filter of kind k.
func (m *Matcher) IsKind(k Kind) *Matcher {
	if m.f.Kind() == k {
		return m
	}
	return nil
}

func (m *Matcher) Blur(length *float32) *Matcher {
	if b, ok := m.f.(Blur); ok {
		if length != nil {
			*length = b.Length
		}
		return m
	}
	return nil
}

func (m *Matcher) Brightness(factor *float32) *Matcher {
	if b, ok := m.f.(Brightness); ok {
		if factor != nil {
			*factor = b.Factor
		}
		return m
	}
	return nil
}

func (m *Matcher) Contrast(factor *float32) *Matcher {
	if c, ok := m.f.(Contrast); ok {
		if factor != nil {
			*factor = c.Factor
		}
		return m
	}
	return nil
}

func (m *Matcher) DropShadow(shadow *DropShadow) *Matcher {
	if d, ok := m.f.(DropShadow); ok {
		if shadow != nil {
			*shadow = d
		}
		return m
	}
	return nil
}

func (m *Matcher) HueRotate(deg *float32) *Matcher {
	if h, ok := m.f.(HueRotate); ok {
		if deg != nil {
			*deg = h.Degrees
		}
		return m
	}
	return nil
}

// Factor matches a factor-type function of kind k.
func (m *Matcher) Factor(k Kind, value *float32) *Matcher {
	if f, ok := m.f.(Factor); ok && f.Of == k {
		if value != nil {
			*value = f.Value
		}
		return m
	}
	return nil
}
