package color

import (
	imgcolor "image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.color")
	defer teardown()
	//
	for _, c := range []struct {
		text string
		rgba RGBA8
	}{
		{"#2F14DF", RGBA8{47, 20, 223, 255}},
		{"#2f14df80", RGBA8{47, 20, 223, 128}},
		{"#fff", RGBA8{255, 255, 255, 255}},
		{"#f008", RGBA8{255, 0, 0, 136}},
		{"red", RGBA8{255, 0, 0, 255}},
		{"  SteelBlue ", RGBA8{70, 130, 180, 255}},
		{"transparent", Transparent},
		{"rgba(47,20,223,255)", RGBA8{47, 20, 223, 255}},
		{"rgba(0,0,0,.5)", RGBA8{0, 0, 0, 128}},
		{"rgb(47, 20, 223)", RGBA8{47, 20, 223, 255}},
		{"RGB(100%, 0%, 50%)", RGBA8{255, 0, 128, 255}},
		{"rgb(300 -20 10 / 50%)", RGBA8{255, 0, 10, 128}},
		{"hsl(120, 100%, 50%)", RGBA8{0, 255, 0, 255}},
		{"hsla(0.5turn, 100%, 50%, 0)", RGBA8{0, 255, 255, 0}},
	} {
		rgba, ok := Parse(c.text).Unwrap()
		if assert.True(t, ok, "expected %q to be a color", c.text) {
			assert.Equal(t, c.rgba, rgba, c.text)
		}
	}
}

func TestParseNonColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.color")
	defer teardown()
	//
	for _, text := range []string{
		"", "#12", "#ggg", "nocolor", "rgb(1,2)", "rgb(1px, 2, 3)",
		"rgb(1, 2, 3", "cmyk(1, 2, 3, 4)", "rgb(1, red, 3)", "hsl(1px, 2%, 3%)",
	} {
		if Parse(text).IsJust() {
			t.Errorf("expected %q not to be a color, is %v", text, Parse(text))
		}
	}
}

func TestRGBA8Color(t *testing.T) {
	var c imgcolor.Color = RGBA8{255, 0, 0, 128}
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	if n != (imgcolor.NRGBA{R: 255, A: 128}) {
		t.Errorf("expected conversion to NRGBA to be lossless, is %v", n)
	}
	if s := Black.String(); s != "#000000ff" {
		t.Errorf("expected black to print as #000000ff, is %q", s)
	}
	if FromColor(imgcolor.White) != (RGBA8{255, 255, 255, 255}) {
		t.Error("expected white to convert to (255,255,255,255)")
	}
}
