/*
Package result implements a type for computations that may fail, modelled
after Elm's Result.

	type Result error value = Ok value | Err error

Grammar attempts in this module return Results; failures are plain values,
which lets combinators decide whether to swallow them or to pass them on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Unwrap() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err creates a failed result. A nil error is not a failure, thus
// Err(nil) is an Ok holding the zero value of T.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// --- Mapping and chaining --------------------------------------------------

// Map applies f to an Ok value and leaves errors untouched.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	x, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(x))
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	x, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return f(x)
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern matching on a Result:
//
//     switch m := r.Match(); m {
//     case m.Ok(&v):
//         …
//     case m.Err(&err):
//         …
//     }
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
