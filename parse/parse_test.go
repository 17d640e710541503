package parse

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenizeOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.parse")
	defer teardown()
	//
	in := Tokenize("blur( 20px ) #fff")
	toks := in.Tokens()
	if len(toks) != 7 {
		t.Logf("tokens = %v", toks)
		t.Fatalf("expected 7 tokens, have %d", len(toks))
	}
	if !toks[0].IsFunction("BLUR") {
		t.Errorf("expected first token to be function blur(, is %v", toks[0])
	}
	if toks[2].Offset != 6 || toks[2].Value != "20px" {
		t.Errorf("expected dimension 20px at offset 6, is %v", toks[2])
	}
	if !toks[6].IsHash() || toks[6].End() != 17 {
		t.Errorf("expected #fff to end input at offset 17, is %v", toks[6])
	}
	if in.Rest() != "blur( 20px ) #fff" {
		t.Errorf("expected untouched input to be the rest, is %q", in.Rest())
	}
}

func TestTokenizeCRLF(t *testing.T) {
	in := Tokenize("a\r\nb")
	if in.Source() != "a\nb" {
		t.Errorf("expected CRLF to be normalized, source is %q", in.Source())
	}
	if rest := in.Advance().Advance().Rest(); rest != "b" {
		t.Errorf("expected rest after two tokens to be 'b', is %q", rest)
	}
}

func TestTokenizeStopsOnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.parse")
	defer teardown()
	//
	in := Tokenize(`x "unclosed`)
	for !in.Done() {
		in = in.Advance()
	}
	if in.Rest() != `"unclosed` {
		t.Errorf("expected unclosed string to remain, rest is %q", in.Rest())
	}
}

func TestSatisfyAndMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.parse")
	defer teardown()
	//
	in := Tokenize("blur(")
	_, rest, err := Function("blur").Run(in)
	if err != nil || !rest.Done() {
		t.Errorf("expected blur( to be consumed, error is %v", err)
	}
	_, rest, err = Function("contrast").Run(in)
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("expected mismatch for contrast(, is %v", err)
	}
	if rest.Offset() != 0 {
		t.Errorf("expected failing parser not to consume input, offset is %d", rest.Offset())
	}
	var merr *MismatchError
	if errors.As(err, &merr) && merr.Found != "blur(" {
		t.Errorf("expected mismatch to report blur(, reports %q", merr.Found)
	}
	_, _, err = Char(")").Run(rest.Advance())
	if err == nil {
		t.Error("expected mismatch at end of input")
	}
}

func TestBetweenAndLexeme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.parse")
	defer teardown()
	//
	p := Lexeme(Between(Function("f"), Padded(Numeric()), Char(")")))
	tok, rest, err := p.Run(Tokenize("f( 12px )  g(1)"))
	if err != nil {
		t.Fatalf("expected f( 12px ) to parse, error is %v", err)
	}
	if tok.Value != "12px" {
		t.Errorf("expected argument 12px, is %q", tok.Value)
	}
	if rest.Rest() != "g(1)" {
		t.Errorf("expected trailing whitespace to be consumed, rest is %q", rest.Rest())
	}
}

func TestAltOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.parse")
	defer teardown()
	//
	name := func(s string) Parser[string] {
		return Map(Function(s), func(Token) string { return s })
	}
	p := Alt(name("a"), name("b"), name("c"))
	v, _, err := p.Run(Tokenize("b("))
	if err != nil || v != "b" {
		t.Errorf("expected b to match, is %q / %v", v, err)
	}
	_, _, err = p.Run(Tokenize("d("))
	var aerr *AltError
	if !errors.As(err, &aerr) || len(aerr.Errs) != 3 {
		t.Errorf("expected 3 collected alternatives errors, is %v", err)
	}
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("expected alternative error to match ErrMismatch")
	}
}

func TestOptionalAndTry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.parse")
	defer teardown()
	//
	boom := errors.New("boom")
	p := Try(Numeric(), func(tok Token) (string, error) {
		if tok.Value == "0" {
			return "", boom
		}
		return tok.Value, nil
	})
	if _, _, err := p.Run(Tokenize("0")); !errors.Is(err, boom) {
		t.Errorf("expected conversion error to fail the parser, is %v", err)
	}
	v, rest, err := Optional(p, "def").Run(Tokenize("0"))
	if err != nil || v != "def" || rest.Offset() != 0 {
		t.Errorf("expected Optional to fall back to default without consuming, is %q @%d", v, rest.Offset())
	}
}

func TestBalancedRecognize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.parse")
	defer teardown()
	//
	p := Recognize(Balanced())
	text, rest, err := p.Run(Tokenize("rgba(1, calc(2), 3)) tail"))
	if err != nil {
		t.Fatalf("expected balanced function to parse, error is %v", err)
	}
	if text != "rgba(1, calc(2), 3)" {
		t.Errorf("expected recognized text to be the color function, is %q", text)
	}
	if rest.Rest() != ") tail" {
		t.Errorf("expected outer paren to remain, rest is %q", rest.Rest())
	}
	if _, _, err = p.Run(Tokenize("rgba(1, 2")); err == nil {
		t.Error("expected unbalanced function to fail")
	}
}

func TestManyStops(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssfilter.parse")
	defer teardown()
	//
	p := Many(Lexeme(Numeric()))
	vs, rest, err := p.Run(Tokenize("1 2px 3% x 4"))
	if err != nil {
		t.Fatalf("expected Many never to fail, error is %v", err)
	}
	if len(vs) != 3 {
		t.Errorf("expected 3 numbers, have %d", len(vs))
	}
	if rest.Rest() != "x 4" {
		t.Errorf("expected rest to be 'x 4', is %q", rest.Rest())
	}
	vs2, _, _ := Many(Whitespace()).Run(Tokenize("x"))
	if len(vs2) != 0 {
		t.Errorf("expected Many to stop on non-consuming parser, has %d", len(vs2))
	}
}
