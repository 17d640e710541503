package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssfilter"
)

// FilterKey is the property key of filter declarations.
const FilterKey = "filter"

// Value returns the effective value of property key within decls: the last
// declaration wins, but an important declaration is never overridden by one
// which is not. Keys are compared case-insensitively.
func Value(decls []*css.Declaration, key string) (Property, bool) {
	var p Property
	found, important := false, false
	for _, d := range decls {
		if d == nil || !strings.EqualFold(d.Property, key) {
			continue
		}
		if important && !d.Important {
			continue
		}
		p, found, important = Property(d.Value), true, d.Important
	}
	return p, found
}

// FromDeclarations parses a declaration block, e.g.
//
//     color: red; filter: blur(2px) !important
//
// and returns the filters of its effective filter declaration. A block
// without a filter declaration yields an empty list. Syntax errors of the
// block are returned, errors within the filter value are not: they end the
// list and show up in the remainder.
func FromDeclarations(block string) (cssfilter.List, string, error) {
	decls, err := parser.ParseDeclarations(terminated(block))
	if err != nil {
		return cssfilter.List{}, "", fmt.Errorf("cannot parse declaration block: %w", err)
	}
	p, ok := Value(decls, FilterKey)
	if !ok {
		return cssfilter.List{}, "", nil
	}
	filters, rest := p.Filters()
	return filters, rest, nil
}

// terminated appends a ';' to a block whose last declaration lacks one.
// Douceur drops the value of an unterminated last declaration.
func terminated(block string) string {
	block = strings.TrimSpace(block)
	if block == "" || strings.HasSuffix(block, ";") {
		return block
	}
	return block + ";"
}

// RuleFilters holds the filters of a single style rule.
type RuleFilters struct {
	Prelude   string // selectors as written
	Filters   cssfilter.List
	Rest      string // unrecognized remainder of the filter value
	Important bool
}

// FromStylesheet parses a style sheet and reports the filters of every rule
// with a filter declaration, in source order. Rules nested within at-rules
// (e.g. @media) are included.
func FromStylesheet(sheet string) ([]RuleFilters, error) {
	stylesheet, err := parser.Parse(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style sheet: %w", err)
	}
	return collectRules(stylesheet.Rules, nil), nil
}

func collectRules(rules []*css.Rule, rf []RuleFilters) []RuleFilters {
	for _, r := range rules {
		if r == nil {
			continue
		}
		if len(r.Rules) > 0 {
			tracer().Debugf("descending into %s %s", r.Name, r.Prelude)
			rf = collectRules(r.Rules, rf)
		}
		p, ok := Value(r.Declarations, FilterKey)
		if !ok {
			continue
		}
		filters, rest := p.Filters()
		if rest != "" {
			tracer().Infof("rule %q: unrecognized filter input %q", r.Prelude, rest)
		}
		rf = append(rf, RuleFilters{
			Prelude:   r.Prelude,
			Filters:   filters,
			Rest:      rest,
			Important: isImportant(r.Declarations, FilterKey),
		})
	}
	return rf
}

func isImportant(decls []*css.Declaration, key string) bool {
	for _, d := range decls {
		if d != nil && d.Important && strings.EqualFold(d.Property, key) {
			return true
		}
	}
	return false
}
