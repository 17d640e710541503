package style

import (
	"strings"

	"github.com/npillmayer/cssfilter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ElementFilters holds the filters of an element's inline style attribute.
type ElementFilters struct {
	Node    *html.Node
	Filters cssfilter.List
	Rest    string
}

// FromHTML visits an HTML parse tree in document order. It collects the
// filter rules of embedded <style> elements and the filters of inline style
// attributes. Elements whose style attribute yields neither filters nor a
// remainder (no filter declaration, or 'filter: none') are skipped. If a
// style element or attribute cannot be parsed, FromHTML stops and returns
// what it found so far together with the error.
func FromHTML(doc *html.Node) ([]RuleFilters, []ElementFilters, error) {
	v := &visitor{}
	err := v.visit(doc)
	return v.rules, v.elements, err
}

type visitor struct {
	rules    []RuleFilters
	elements []ElementFilters
}

func (v *visitor) visit(h *html.Node) error {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode {
		if h.DataAtom == atom.Style {
			if err := v.styleElement(h); err != nil {
				return err
			}
		} else if attr, ok := styleAttribute(h); ok {
			if err := v.inlineStyle(h, attr); err != nil {
				return err
			}
		}
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := v.visit(ch); err != nil {
			return err
		}
	}
	return nil
}

func (v *visitor) styleElement(h *html.Node) error {
	var sheet strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			sheet.WriteString(ch.Data)
		}
	}
	rules, err := FromStylesheet(sheet.String())
	if err != nil {
		return err
	}
	v.rules = append(v.rules, rules...)
	return nil
}

func (v *visitor) inlineStyle(h *html.Node, decls string) error {
	if !strings.Contains(strings.ToLower(decls), FilterKey) {
		return nil
	}
	filters, rest, err := FromDeclarations(decls)
	if err != nil {
		return err
	}
	if len(filters) == 0 && rest == "" {
		return nil
	}
	tracer().Debugf("<%s>: %d inline filter(s)", h.Data, len(filters))
	v.elements = append(v.elements, ElementFilters{Node: h, Filters: filters, Rest: rest})
	return nil
}

func styleAttribute(h *html.Node) (string, bool) {
	for _, a := range h.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "style") {
			return a.Val, true
		}
	}
	return "", false
}
