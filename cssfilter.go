package cssfilter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssfilter/parse"
)

// ErrTrailingInput is matched by errors of ParseStrict for input which is
// not completely consumed.
var ErrTrailingInput = errors.New("unrecognized filter input")

// TrailingInputError reports the unconsumed remainder of a filter value.
type TrailingInputError struct {
	Rest   string
	Parsed int // number of filters parsed before Rest
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("unrecognized filter input after %d filter(s): %q", e.Parsed, e.Rest)
}

// Is makes TrailingInputError match ErrTrailingInput.
func (e *TrailingInputError) Is(target error) bool {
	return target == ErrTrailingInput
}

// Parser parses filter lists. The zero value is not usable; create parsers
// with NewParser.
type Parser struct {
	filters parse.Parser[[]CssFilter]
}

type props struct {
	colors ColorParser
	kinds  []Kind
}

// Option is a type to help configuring parsers at creation time.
type Option struct {
	config func(props) props
}

// WithColorParser replaces the color capability used for drop-shadow colors.
// A nil ColorParser selects DefaultColorParser.
func WithColorParser(colors ColorParser) Option {
	return Option{config: func(p props) props {
		p.colors = colors
		return p
	}}
}

// WithKinds restricts a parser to the given filter functions. They are
// still tried in the fixed priority order of the Kind constants. Without
// arguments, all filter functions are enabled.
//
//     p := cssfilter.NewParser(cssfilter.WithKinds(cssfilter.CoreKinds...))
//
func WithKinds(kinds ...Kind) Option {
	return Option{config: func(p props) props {
		p.kinds = append([]Kind(nil), kinds...)
		return p
	}}
}

// NewParser creates a parser. Without options, it recognizes every supported
// filter function and resolves colors with DefaultColorParser.
func NewParser(opts ...Option) *Parser {
	p := props{}
	for _, option := range opts {
		p = option.config(p)
	}
	if p.colors == nil {
		p.colors = DefaultColorParser
	}
	enabled := [kindCount]bool{}
	if p.kinds == nil {
		for k := Kind(0); k < kindCount; k++ {
			enabled[k] = true
		}
	}
	for _, k := range p.kinds {
		if k < kindCount {
			enabled[k] = true
		}
	}
	var grammars []parse.Parser[CssFilter]
	for k := Kind(0); k < kindCount; k++ {
		if enabled[k] {
			grammars = append(grammars, grammar(k, p.colors))
		}
	}
	return &Parser{filters: parse.Many(parse.Alt(grammars...))}
}

func grammar(k Kind, colors ColorParser) parse.Parser[CssFilter] {
	switch k {
	case KindBlur:
		return blur()
	case KindBrightness:
		return brightness()
	case KindContrast:
		return contrast()
	case KindDropShadow:
		return dropShadow(colors)
	case KindHueRotate:
		return hueRotate()
	}
	return factor(k)
}

// Parse parses a filter value. It returns the filters recognized, in
// textual order, and the remainder of the input starting at the first
// filter function which could not be recognized. Line endings are
// normalized to LF and surrounding whitespace is trimmed before parsing;
// the remainder is a suffix of that normalized text.
//
// Parse never fails: an empty input yields an empty list and an empty
// remainder.
func (p *Parser) Parse(input string) (List, string) {
	input = strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
	filters, rest, err := p.filters.Run(parse.Tokenize(input))
	if err != nil { // Many does not fail; keep the input as a whole
		tracer().Errorf("filter list parser failed: %v", err)
		return List{}, input
	}
	if !rest.Done() {
		tracer().Debugf("stopped after %d filter(s), unrecognized: %q", len(filters), rest.Rest())
	}
	return List(filters), rest.Rest()
}

// ParseStrict parses a filter value and reports a *TrailingInputError if
// it is not completely recognized. The filters parsed up to the error are
// returned nevertheless.
func (p *Parser) ParseStrict(input string) (List, error) {
	filters, rest := p.Parse(input)
	if rest != "" {
		return filters, &TrailingInputError{Rest: rest, Parsed: len(filters)}
	}
	return filters, nil
}

var defaultParser = NewParser()

// ParseFilterList parses a filter value with the default parser.
// See Parser.Parse.
func ParseFilterList(input string) (List, string) {
	return defaultParser.Parse(input)
}

// ParseStrict parses a filter value with the default parser.
// See Parser.ParseStrict.
func ParseStrict(input string) (List, error) {
	return defaultParser.ParseStrict(input)
}
