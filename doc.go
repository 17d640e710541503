/*
Package cssfilter parses values of the CSS 'filter' property.

A filter value is a list of filter functions, which are applied in order:

    blur(2px) brightness(150%) drop-shadow(2px 2px 5px rgba(0,0,0,.5))

ParseFilterList turns such a value into a List of typed filter operations.
All lengths are normalized to pixels (see package unit), percentages of
factor-type functions are converted to plain factors, and colors are
resolved to 8-bit RGBA.

Parsing is permissive: it stops at the first position where no filter
function is recognized and returns the filters parsed so far together with
the unconsumed remainder. Callers decide what a non-empty remainder means;
ParseStrict is a convenience for callers who want it to be an error.

    filters, rest := cssfilter.ParseFilterList("blur(20px) unknown-fn(1)")
    // filters = [blur(20px)], rest = "unknown-fn(1)"

Parsers are stateless and safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssfilter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssfilter'.
func tracer() tracing.Trace {
	return tracing.Select("cssfilter")
}
