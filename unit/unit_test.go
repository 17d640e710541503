package unit

import (
	"errors"
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestSplitLength(t *testing.T) {
	for _, c := range []struct {
		arg, number, unit string
	}{
		{"20px", "20", "px"},
		{" 20 px ", "20", "px"},
		{"1.5rem)", "1.5", "rem"},
		{"150%", "150", "%"},
		{"0", "0", ""},
		{"-2.5 mm ) rest", "-2.5", "mm"},
	} {
		n, u := SplitLength(c.arg)
		if n != c.number || u != c.unit {
			t.Errorf("expected SplitLength(%q) to be (%q, %q), is (%q, %q)", c.arg, c.number, c.unit, n, u)
		}
	}
}

func TestNormalizeTable(t *testing.T) {
	for _, c := range []struct {
		number, unit string
		px           float32
	}{
		{"1.5", "rem", 24},
		{"2", "em", 32},
		{"1", "pc", 16},
		{"3", "pt", 4},
		{"5", "px", 5},
		{"1", "in", 96},
		{"2.54", "cm", 96},
		{"25.4", "mm", 96},
		{"101.6", "q", 96},
		{"50", "%", 8},
		{"0", "", 0},
		{"0.0", "", 0},
		{"-3", "PX", -3},
		{"4", "Q", 96 / 25.4},
	} {
		px, err := Normalize(c.number, c.unit)
		if assert.NoError(t, err, "%s%s", c.number, c.unit) {
			assert.InDelta(t, c.px, px, 1e-4, "%s%s", c.number, c.unit)
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	_, err := Normalize("5", "")
	if !errors.Is(err, ErrUnit) {
		t.Errorf("expected unitless 5 to be a unit error, is %v", err)
	}
	_, err = Normalize("5", "ex")
	var uerr *UnitError
	if !errors.As(err, &uerr) || uerr.Unit != "ex" {
		t.Errorf("expected unit error naming 'ex', is %v", err)
	}
	_, err = Normalize("five", "px")
	if !errors.Is(err, ErrFloat) {
		t.Errorf("expected 'five' to be a float error, is %v", err)
	}
	if errors.Is(err, ErrUnit) {
		t.Error("expected float error not to match ErrUnit")
	}
	_, err = ParseFloat("inf")
	assert.ErrorIs(t, err, ErrFloat)
	_, err = Normalize("", "px")
	assert.ErrorIs(t, err, ErrFloat)
}

func TestParseLength(t *testing.T) {
	px, err := ParseLength("1in")
	assert.NoError(t, err)
	assert.Equal(t, float32(96.0), px)
	_, err = ParseLength("1vw")
	assert.ErrorIs(t, err, ErrUnit)
}

func TestNormalizeAngle(t *testing.T) {
	for _, c := range []struct {
		number, unit string
		deg          float32
	}{
		{"90", "deg", 90},
		{"0.5", "turn", 180},
		{"100", "grad", 90},
		{"3.14159265", "rad", 180},
		{"0", "", 0},
	} {
		deg, err := NormalizeAngle(c.number, c.unit)
		if assert.NoError(t, err) {
			assert.InDelta(t, c.deg, deg, 1e-3, "%s%s", c.number, c.unit)
		}
	}
	_, err := NormalizeAngle("90", "px")
	assert.ErrorIs(t, err, ErrUnit)
	assert.Contains(t, err.Error(), "angle")
}

func TestToDU(t *testing.T) {
	if du := ToDU(4); du != 3*dimen.PT {
		t.Errorf("expected 4px to be 3pt, is %v", du)
	}
	if du := ToDU(0); du != 0 {
		t.Errorf("expected 0px to be 0, is %v", du)
	}
	if du := ToDU(-4); du != -3*dimen.PT {
		t.Errorf("expected -4px to be -3pt, is %v", du)
	}
}
