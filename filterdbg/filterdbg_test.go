package filterdbg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/cssfilter"
	"github.com/npillmayer/cssfilter/unit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter")
	defer teardown()
	//
	l, _ := cssfilter.ParseFilterList("blur(1.5rem) contrast(50%) drop-shadow(2px 3px red) hue-rotate(1turn) opacity(.5)")
	s := Tree(l)
	t.Logf("tree =\n%s", s)
	for _, part := range []string{
		"filters (5)",
		"blur", "length: 24px",
		"contrast", "factor: 0.5",
		"drop-shadow", "offset: 2px 3px", "blur-radius: 0px", "color: #ff0000ff",
		"hue-rotate", "angle: 360deg",
		"opacity",
	} {
		if !strings.Contains(s, part) {
			t.Errorf("expected tree to contain %q, doesn't", part)
		}
	}
	if want := fmt.Sprintf("length: 24px [%ddu]", int64(unit.ToDU(24))); !strings.Contains(s, want) {
		t.Errorf("expected tree to show blur length in design units as %q", want)
	}
	if !strings.Contains(s, "blur-radius: 0px [0du]") {
		t.Errorf("expected zero blur radius to be 0du")
	}
	if strings.Count(s, "factor: 0.5") != 2 {
		t.Errorf("expected contrast and opacity to print factor 0.5, is\n%s", s)
	}
}

func TestTreeEmpty(t *testing.T) {
	s := Tree(cssfilter.List{})
	if !strings.HasPrefix(s, "filters (0)") {
		t.Errorf("expected empty tree header, is %q", s)
	}
}
