package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssfilter/result"
)

// ErrMismatch is matched by errors of parsers which do not recognize the
// input at the current position.
var ErrMismatch = errors.New("input does not match")

// MismatchError reports the position and a description of what a parser
// expected. Found is empty at end of input.
type MismatchError struct {
	Expected string
	Found    string
	Offset   int
}

func (e *MismatchError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("expected %s at offset %d, found end of input", e.Expected, e.Offset)
	}
	return fmt.Sprintf("expected %s at offset %d, found %q", e.Expected, e.Offset, e.Found)
}

// Is makes MismatchError match ErrMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

func mismatch(expected string, in Input) error {
	found := ""
	if tok, ok := in.Peek(); ok {
		found = tok.Value
	}
	return &MismatchError{Expected: expected, Found: found, Offset: in.Offset()}
}

// AltError collects the failures of all branches of an ordered alternative.
type AltError struct {
	Errs []error
}

func (e *AltError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "no alternative matches: " + strings.Join(msgs, "; ")
}

// Is matches target against each of the branch errors.
func (e *AltError) Is(target error) bool {
	for _, err := range e.Errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// --- Parser type -----------------------------------------------------------

// Output is the product of a successful parser: a value and the remaining input.
type Output[T any] struct {
	Value T
	Rest  Input
}

// Parser recognizes a prefix of its input. On failure the returned Result
// holds an error and nothing is consumed.
type Parser[T any] func(Input) result.Result[Output[T]]

// Run applies p and unpacks its result.
func (p Parser[T]) Run(in Input) (T, Input, error) {
	out, err := p(in).Unwrap()
	if err != nil {
		var zero T
		return zero, in, err
	}
	return out.Value, out.Rest, nil
}

func ok[T any](v T, rest Input) result.Result[Output[T]] {
	return result.Ok(Output[T]{Value: v, Rest: rest})
}

func fail[T any](err error) result.Result[Output[T]] {
	return result.Err[Output[T]](err)
}

// Succeed consumes nothing and returns v.
func Succeed[T any](v T) Parser[T] {
	return func(in Input) result.Result[Output[T]] {
		return ok(v, in)
	}
}

// Fail consumes nothing and fails with err.
func Fail[T any](err error) Parser[T] {
	return func(in Input) result.Result[Output[T]] {
		return fail[T](err)
	}
}

// --- Token parsers ---------------------------------------------------------

// Satisfy consumes a single token for which pred holds.
func Satisfy(expected string, pred func(Token) bool) Parser[Token] {
	return func(in Input) result.Result[Output[Token]] {
		tok, found := in.Peek()
		if !found || !pred(tok) {
			return fail[Token](mismatch(expected, in))
		}
		return ok(tok, in.Advance())
	}
}

// Function consumes a function token 'name(' (case-insensitive name).
func Function(name string) Parser[Token] {
	return Satisfy(name+"(", func(t Token) bool { return t.IsFunction(name) })
}

// Char consumes the delimiter c.
func Char(c string) Parser[Token] {
	return Satisfy(fmt.Sprintf("%q", c), func(t Token) bool { return t.IsChar(c) })
}

// Ident consumes an identifier.
func Ident() Parser[Token] {
	return Satisfy("identifier", Token.IsIdent)
}

// Hash consumes a '#name' token.
func Hash() Parser[Token] {
	return Satisfy("#hash", Token.IsHash)
}

// Numeric consumes a number, percentage or dimension token.
func Numeric() Parser[Token] {
	return Satisfy("number", Token.IsNumeric)
}

// Whitespace consumes any run of whitespace and comments, including none.
// It returns the number of tokens consumed.
func Whitespace() Parser[int] {
	return func(in Input) result.Result[Output[int]] {
		n := 0
		for tok, found := in.Peek(); found && tok.IsSpace(); tok, found = in.Peek() {
			in = in.Advance()
			n++
		}
		return ok(n, in)
	}
}

// Balanced consumes a function token up to and including its matching
// closing parenthesis, with any nested parentheses in between.
func Balanced() Parser[[]Token] {
	return func(start Input) result.Result[Output[[]Token]] {
		tok, found := start.Peek()
		if !found || !tok.IsFunction("") {
			return fail[[]Token](mismatch("function", start))
		}
		in := start.Advance()
		toks := []Token{tok}
		for depth := 1; depth > 0; {
			tok, found = in.Peek()
			if !found {
				return fail[[]Token](mismatch("\")\"", in))
			}
			switch {
			case tok.IsFunction(""), tok.IsChar("("):
				depth++
			case tok.IsChar(")"):
				depth--
			}
			toks = append(toks, tok)
			in = in.Advance()
		}
		return ok(toks, in)
	}
}

// --- Combinators -----------------------------------------------------------

// Map transforms the value of a successful parser.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) result.Result[Output[B]] {
		return result.Map(func(out Output[A]) Output[B] {
			return Output[B]{Value: f(out.Value), Rest: out.Rest}
		}, p(in))
	}
}

// Try transforms the value of a successful parser with a conversion that
// may fail. A failing conversion fails the parser, consuming nothing.
func Try[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return func(in Input) result.Result[Output[B]] {
		return result.AndThen(func(out Output[A]) result.Result[Output[B]] {
			b, err := f(out.Value)
			if err != nil {
				return fail[B](err)
			}
			return ok(b, out.Rest)
		}, p(in))
	}
}

// AndThen runs p and continues with the parser f produces from p's value.
// If the continuation fails, nothing is consumed.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in Input) result.Result[Output[B]] {
		return result.AndThen(func(out Output[A]) result.Result[Output[B]] {
			return f(out.Value)(out.Rest)
		}, p(in))
	}
}

// Left runs p, then q, and keeps the value of p.
func Left[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return AndThen(p, func(a A) Parser[A] {
		return Map(q, func(B) A { return a })
	})
}

// Right runs p, then q, and keeps the value of q.
func Right[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return AndThen(p, func(A) Parser[B] { return q })
}

// Between runs open, p and closing, and keeps the value of p.
func Between[O, T, C any](open Parser[O], p Parser[T], closing Parser[C]) Parser[T] {
	return Right(open, Left(p, closing))
}

// Lexeme runs p and skips whitespace following it.
func Lexeme[T any](p Parser[T]) Parser[T] {
	return Left(p, Whitespace())
}

// Padded skips whitespace around p.
func Padded[T any](p Parser[T]) Parser[T] {
	return Right(Whitespace(), Lexeme(p))
}

// Optional runs p; if p fails, it returns def without consuming input.
func Optional[T any](p Parser[T], def T) Parser[T] {
	return func(in Input) result.Result[Output[T]] {
		var out Output[T]
		var err error
		switch m := p(in).Match(); m {
		case m.Ok(&out):
			return ok(out.Value, out.Rest)
		case m.Err(&err):
			tracer().Debugf("optional: using default, %v", err)
		}
		return ok(def, in)
	}
}

// Recognize runs p and returns the source text it consumed.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Input) result.Result[Output[string]] {
		return result.Map(func(out Output[T]) Output[string] {
			return Output[string]{Value: in.Text(out.Rest), Rest: out.Rest}
		}, p(in))
	}
}

// Alt tries each parser in order and returns the first success. If all of
// them fail, the error is an *AltError holding every failure.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) result.Result[Output[T]] {
		errs := make([]error, 0, len(ps))
		for _, p := range ps {
			var out Output[T]
			var err error
			switch m := p(in).Match(); m {
			case m.Ok(&out):
				return ok(out.Value, out.Rest)
			case m.Err(&err):
				errs = append(errs, err)
			}
		}
		return fail[T](&AltError{Errs: errs})
	}
}

// Many applies p as often as possible and collects the values. It stops at
// the first failure or when p stops consuming input, and never fails itself.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) result.Result[Output[[]T]] {
		values := []T{}
		for !in.Done() {
			v, rest, err := p.Run(in)
			if err != nil {
				tracer().Debugf("many: stopped after %d item(s) at offset %d: %v", len(values), in.Offset(), err)
				break
			}
			if rest.Offset() == in.Offset() {
				break
			}
			values = append(values, v)
			in = rest
		}
		return ok(values, in)
	}
}
