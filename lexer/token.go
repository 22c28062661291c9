package lexer

import "fmt"

// Kind classifies a token.
type Kind uint8

const (
	// Error marks a character for which no scan rule exists, or a
	// malformed number, string, comment or tag. It is always the last
	// token of its stream.
	Error Kind = iota

	// Whitespace tokens are only produced when Config.IncludeWhitespace
	// is set; otherwise blanks are skipped silently.
	Whitespace

	Name
	Number
	QuotedString
	Comment
	Tag
	OpenParen
	CloseParen
	Comma
	Semicolon
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "error"
	case Whitespace:
		return "whitespace"
	case Name:
		return "name"
	case Number:
		return "number"
	case QuotedString:
		return "string"
	case Comment:
		return "comment"
	case Tag:
		return "tag"
	case OpenParen:
		return "'('"
	case CloseParen:
		return "')'"
	case Comma:
		return "','"
	case Semicolon:
		return "';'"
	}
	panic(fmt.Sprintf("BUG: unknown token kind %d", uint8(k)))
}

// A Token is a single lexical unit of input. Tokens are immutable once
// produced. Line and Col are 1-based and refer to the first character of
// the token; a CRLF pair counts as a single line break.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

// At returns the token position as "line:column", for error messages.
func (t Token) At() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Col)
}

func (t Token) String() string {
	return fmt.Sprintf("(%s %q at %s)", t.Kind, t.Text, t.At())
}

// Tokens is a materialized token stream.
type Tokens []Token

// HasError reports whether lexing stopped early at an invalid piece of
// input. By construction an Error token can only be the last one.
func (ts Tokens) HasError() bool {
	return len(ts) > 0 && ts[len(ts)-1].Kind == Error
}
