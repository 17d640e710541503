/*
Package filterdbg renders filter lists for debugging.

    fmt.Println(filterdbg.Tree(filters))

prints something like

    filters (2)
    .
    ├── blur
    │   └── length: 24px [18pt as du]
    └── drop-shadow
        ├── offset: 2px 2px [1.5pt as du] [1.5pt as du]
        ├── blur-radius: 0px [0du]
        └── color: #000000ff

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package filterdbg

import (
	"fmt"

	"github.com/npillmayer/cssfilter"
	"github.com/npillmayer/cssfilter/unit"
	tp "github.com/xlab/treeprint"
)

// Tree renders a filter list and the normalized arguments of its filters
// as a tree.
func Tree(l cssfilter.List) string {
	header := fmt.Sprintf("filters (%d)\n", len(l))
	p := tp.New()
	for _, f := range l {
		ppf(p, f)
	}
	return header + p.String()
}

func ppf(p tp.Tree, f cssfilter.CssFilter) {
	branch := p.AddBranch(f.Kind().String())
	var x float32
	var shadow cssfilter.DropShadow
	switch m := f.Match(); m {
	case m.Blur(&x):
		branch.AddNode(fmt.Sprintf("length: %gpx %s", x, du(x)))
	case m.Brightness(&x), m.Contrast(&x):
		branch.AddNode(fmt.Sprintf("factor: %g", x))
	case m.DropShadow(&shadow):
		branch.AddNode(fmt.Sprintf("offset: %gpx %gpx %s %s", shadow.OffsetX, shadow.OffsetY,
			du(shadow.OffsetX), du(shadow.OffsetY)))
		branch.AddNode(fmt.Sprintf("blur-radius: %gpx %s", shadow.BlurRadius, du(shadow.BlurRadius)))
		branch.AddNode("color: " + shadow.Color.String())
	case m.HueRotate(&x):
		branch.AddNode(fmt.Sprintf("angle: %gdeg", x))
	default:
		if g, ok := f.(cssfilter.Factor); ok {
			branch.AddNode(fmt.Sprintf("factor: %g", g.Value))
		}
	}
}

// du prints a pixel length in typesetting design units.
func du(px float32) string {
	return fmt.Sprintf("[%ddu]", int64(unit.ToDU(px)))
}
