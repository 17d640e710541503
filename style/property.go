/*
Package style connects filter parsing to CSS style sources: raw property
values, declaration blocks, style sheets and HTML documents.

Style sheets and declaration blocks are parsed with douceur. Selectors are
reported as written and are never matched against a document.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strings"

	"github.com/npillmayer/cssfilter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssfilter.style'
func tracer() tracing.Trace {
	return tracing.Select("cssfilter.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     filter: blur(2px) contrast(150%)
//
// a property value of "blur(2px) contrast(150%)" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

func (p Property) is(keyword string) bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), keyword)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p.is("initial")
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p.is("inherit")
}

// IsNone is true for the keyword "none".
func (p Property) IsNone() bool {
	return p.is("none")
}

// IsEmpty checks wether a property is empty, i.e. the null-string
// or whitespace only.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// Filters interprets p as the value of a 'filter' property. The keywords
// none and initial, as well as an empty value, denote no filters. Inherit
// cannot be resolved without a cascade and yields no filters, too.
func (p Property) Filters() (cssfilter.List, string) {
	if p.IsEmpty() || p.IsNone() || p.IsInitial() {
		return cssfilter.List{}, ""
	}
	if p.IsInherit() {
		tracer().Debugf("filter: inherit not resolved, no filters")
		return cssfilter.List{}, ""
	}
	return cssfilter.ParseFilterList(string(p))
}
