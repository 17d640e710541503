/*
Package maybe implements an option type, modelled after Elm's Maybe.

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault, oneOf)

A Maybe is used throughout this module for optional values which carry no
error information, e.g. an optional color argument of a filter function.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just(value) or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	Unwrap() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

// Unwrap returns the wrapped value and true, or the zero value and false.
func (m maybe[T]) Unwrap() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// OneOf returns the first Just from a list of Maybes, or Nothing.
func OneOf[T any](ms ...Maybe[T]) Maybe[T] {
	for _, m := range ms {
		if m != nil && m.IsJust() {
			return m
		}
	}
	return Nothing[T]()
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to a Just value; the result type may differ from the input type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern matching on a Maybe:
//
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …
//     case m.Nothing():
//         …
//     }
//
// Matchers are pointers, thus matching works for non-comparable T as well.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
