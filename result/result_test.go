package result_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/npillmayer/cssfilter/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultMapAndThen(t *testing.T) {
	half := func(n int) Result[int] {
		if n%2 != 0 {
			return Err[int](fmt.Errorf("%d is odd", n))
		}
		return Ok(n / 2)
	}
	r := AndThen(half, Ok(8))
	if v := r.WithDefault(-1); v != 4 {
		t.Errorf("expected Ok(8) |> andThen(half) to be 4, is %d", v)
	}
	r = AndThen(half, AndThen(half, Ok(6)))
	if r.IsOk() {
		t.Error("expected Ok(6) |> half |> half to fail, didn't")
	}
	s := Map(func(n int) string { return fmt.Sprintf("<%d>", n) }, Ok(3))
	if v, err := s.Unwrap(); err != nil || v != "<3>" {
		t.Errorf("expected Map(format, Ok 3) to return <3>, is %q", v)
	}
}

func TestResultErrors(t *testing.T) {
	base := errors.New("base")
	r := AndThen(func(n int) Result[int] {
		return Ok(n + 1)
	}, Err[int](fmt.Errorf("wrapped: %w", base)))
	_, err := r.Unwrap()
	if !errors.Is(err, base) {
		t.Errorf("expected chained error to wrap base error, is %v", err)
	}
	if r.WithDefault(-1) != -1 {
		t.Error("expected failed result to use default, didn't")
	}
	if Err[int](nil).WithDefault(0) != 0 || !Err[int](nil).IsOk() {
		t.Error("expected Err(nil) to be Ok(0), isn't")
	}
}
