package parse

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Token is a scanner token together with its byte offset in the input.
type Token struct {
	*scanner.Token
	Offset int
}

// End is the byte offset directly after the token.
func (t Token) End() int {
	return t.Offset + len(t.Value)
}

// IsSpace is true for whitespace and comments.
func (t Token) IsSpace() bool {
	return t.Type == scanner.TokenS || t.Type == scanner.TokenComment
}

// IsFunction is true for a function token 'name(', with name compared
// ASCII case-insensitively. An empty name matches any function.
func (t Token) IsFunction(name string) bool {
	if t.Type != scanner.TokenFunction {
		return false
	}
	return name == "" || strings.EqualFold(t.Value, name+"(")
}

// FunctionName returns the lower-case name of a function token, or "".
func (t Token) FunctionName() string {
	if t.Type != scanner.TokenFunction {
		return ""
	}
	return strings.ToLower(strings.TrimSuffix(t.Value, "("))
}

// IsChar is true for a delimiter token consisting of c.
func (t Token) IsChar(c string) bool {
	return t.Type == scanner.TokenChar && t.Value == c
}

// IsIdent is true for identifiers.
func (t Token) IsIdent() bool {
	return t.Type == scanner.TokenIdent
}

// IsHash is true for '#name' tokens.
func (t Token) IsHash() bool {
	return t.Type == scanner.TokenHash
}

// IsNumeric is true for numbers, percentages and dimensions.
func (t Token) IsNumeric() bool {
	return t.Type == scanner.TokenNumber || t.Type == scanner.TokenPercentage ||
		t.Type == scanner.TokenDimension
}

// IsNumber is true for numbers without a unit attached.
func (t Token) IsNumber() bool {
	return t.Type == scanner.TokenNumber
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q@%d", t.Type, t.Value, t.Offset)
}

// --- Input -----------------------------------------------------------------

// Input is an immutable cursor into a token stream.
type Input struct {
	src    string
	tokens []Token
	end    int // offset where tokenization stopped
	pos    int
}

// Tokenize scans src completely. CRLF line endings are normalized to LF
// before scanning, and all offsets refer to the normalized source.
// Tokenization stops at the first scanner error (an unclosed string or
// comment); text from there on is never consumed.
func Tokenize(src string) Input {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	in := Input{src: src}
	s := scanner.New(src)
	offset := 0
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			if tok.Type == scanner.TokenError {
				tracer().Debugf("tokenizer stopped at offset %d: %s", offset, tok.Value)
			}
			break
		}
		in.tokens = append(in.tokens, Token{Token: tok, Offset: offset})
		offset += len(tok.Value)
	}
	in.end = offset
	return in
}

// Source returns the complete (normalized) source text.
func (in Input) Source() string {
	return in.src
}

// Done is true if no tokens are left.
func (in Input) Done() bool {
	return in.pos >= len(in.tokens)
}

// Peek returns the current token without consuming it.
func (in Input) Peek() (Token, bool) {
	if in.Done() {
		return Token{}, false
	}
	return in.tokens[in.pos], true
}

// Advance returns a cursor positioned after the current token.
func (in Input) Advance() Input {
	if !in.Done() {
		in.pos++
	}
	return in
}

// Offset is the byte offset of the current token, or the end of the token
// stream if all tokens are consumed.
func (in Input) Offset() int {
	if in.Done() {
		return in.end
	}
	return in.tokens[in.pos].Offset
}

// Rest returns the unconsumed source text.
func (in Input) Rest() string {
	return in.src[in.Offset():]
}

// Tokens returns the unconsumed tokens.
func (in Input) Tokens() []Token {
	if in.Done() {
		return nil
	}
	return in.tokens[in.pos:]
}

// Text returns the source text between the positions of two cursors of the
// same input.
func (in Input) Text(to Input) string {
	from, upto := in.Offset(), to.Offset()
	if upto < from {
		return ""
	}
	return in.src[from:upto]
}
