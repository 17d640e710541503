/*
Package parse is a small parser-combinator layer over a CSS token stream.

Input is tokenized once with the scanner of package gorilla/css. Parsers are
functions from an Input cursor to a result.Result holding the parsed value
and the remaining Input. A failing parser returns an error value and never
consumes input, which makes backtracking trivial: ordered alternatives
(Alt) simply try the next parser on the same cursor.

    p := parse.Lexeme(parse.Between(parse.Function("blur"), arg, parse.Char(")")))
    out, err := p(parse.Tokenize("blur(2px) contrast(2)")).Unwrap()

Inputs are immutable values and parsers hold no state, so a parser may be
shared between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssfilter.parse'.
func tracer() tracing.Trace {
	return tracing.Select("cssfilter.parse")
}
