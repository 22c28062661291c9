package lexer

import (
	"fmt"
	"strings"
)

// class is the character class of a lookahead byte. It selects the scan
// routine that produces the next token.
type class uint8

const (
	classError class = iota
	classWhite
	classDigit
	classLetter
	classQuote
	classComment
	classTag
	classPunct
	numClasses
)

// Config selects the scanning rules of a lexing dialect. The zero value
// recognizes names, numbers, whitespace and the punctuation "();," only.
type Config struct {
	// Symbols lists additional characters scanned as part of unquoted
	// names, besides ASCII letters. Digits may continue a name but not
	// start one.
	Symbols string

	// Quotes lists the characters that delimit quoted strings.
	Quotes string

	// CommentOpen and CommentClose delimit comment text. A zero
	// CommentOpen disables comment scanning.
	CommentOpen, CommentClose byte

	// TagOpen and TagClose delimit tag text. A zero TagOpen disables tag
	// scanning.
	TagOpen, TagClose byte

	// NumberPrefix, when nonzero, is a character that introduces a number
	// token without becoming part of its text (Newick uses ':'). A sign
	// directly after the prefix is accepted.
	NumberPrefix byte

	// GlueSignToNumber scans a leading '+' or '-' as part of the number
	// that follows it, instead of rejecting it.
	GlueSignToNumber bool

	// TrimQuotes drops the surrounding quote characters from the text of
	// quoted strings.
	TrimQuotes bool

	// DoubledQuotes treats two consecutive quote characters inside a
	// quoted string as one literal quote.
	DoubledQuotes bool

	// EscapeQuotes enables backslash escapes inside quoted strings.
	EscapeQuotes bool

	// NestedBrackets tracks nesting inside comments and tags, so that a
	// bracketed section ends only when balanced.
	NestedBrackets bool

	// IncludeWhitespace emits runs of blanks as Whitespace tokens instead
	// of skipping them.
	IncludeWhitespace bool
}

type scanFn func(*Scanner) Token

// A Lexer holds the dispatch table of a dialect: one character class per
// ASCII code and one scan routine per class. Lexers are immutable and may
// be shared; each call to Scan or Tokenize starts an independent pass.
type Lexer struct {
	conf  Config
	table [128]class
	scan  [numClasses]scanFn
}

// New compiles a Config into a Lexer.
func New(conf Config) *Lexer {
	lx := &Lexer{conf: conf}

	for _, c := range []byte(" \t\n\v\f\r") {
		lx.table[c] = classWhite
	}
	for c := byte('0'); c <= '9'; c++ {
		lx.table[c] = classDigit
	}
	for c := byte('a'); c <= 'z'; c++ {
		lx.table[c] = classLetter
	}
	for c := byte('A'); c <= 'Z'; c++ {
		lx.table[c] = classLetter
	}
	for _, c := range []byte("();,") {
		lx.table[c] = classPunct
	}
	if conf.GlueSignToNumber {
		lx.table['+'] = classDigit
		lx.table['-'] = classDigit
	}
	// Dialect overrides win over the base classification.
	for i := 0; i < len(conf.Symbols); i++ {
		lx.table[conf.Symbols[i]&0x7f] = classLetter
	}
	for i := 0; i < len(conf.Quotes); i++ {
		lx.table[conf.Quotes[i]&0x7f] = classQuote
	}
	if conf.CommentOpen != 0 {
		lx.table[conf.CommentOpen&0x7f] = classComment
	}
	if conf.TagOpen != 0 {
		lx.table[conf.TagOpen&0x7f] = classTag
	}
	if conf.NumberPrefix != 0 {
		lx.table[conf.NumberPrefix&0x7f] = classDigit
	}

	lx.scan = [numClasses]scanFn{
		classError:   (*Scanner).scanInvalid,
		classWhite:   (*Scanner).scanWhitespace,
		classDigit:   (*Scanner).scanNumber,
		classLetter:  (*Scanner).scanName,
		classQuote:   (*Scanner).scanQuoted,
		classComment: (*Scanner).scanComment,
		classTag:     (*Scanner).scanTag,
		classPunct:   (*Scanner).scanPunct,
	}
	return lx
}

// Tokenize materializes the full token stream of text. If the text
// contains an invalid character, the returned stream ends at the
// corresponding Error token.
func (lx *Lexer) Tokenize(text string) Tokens {
	var ts Tokens
	s := lx.Scan(text)
	for tok, ok := s.Next(); ok; tok, ok = s.Next() {
		ts = append(ts, tok)
	}
	return ts
}

// Scan returns a Scanner that yields the tokens of text one at a time.
func (lx *Lexer) Scan(text string) *Scanner {
	return &Scanner{lx: lx, text: text, line: 1, col: 1}
}

// A Scanner is a single pass over one input text.
type Scanner struct {
	lx   *Lexer
	text string
	pos  int
	line int
	col  int
	done bool
}

// Next returns the next token of the input. The second return value is
// false once the input is exhausted, and after an Error token has been
// returned: an error short-circuits the rest of the stream.
func (s *Scanner) Next() (Token, bool) {
	for !s.done && s.pos < len(s.text) {
		tok := s.lx.scan[s.classOf(s.text[s.pos])](s)
		if tok.Kind == Error {
			s.done = true
			return tok, true
		}
		if tok.Kind == Whitespace && !s.lx.conf.IncludeWhitespace {
			continue
		}
		return tok, true
	}
	return Token{}, false
}

func (s *Scanner) classOf(c byte) class {
	if c >= 128 {
		return classError
	}
	return s.lx.table[c]
}

// next consumes one byte, maintaining the line and column counters. A CR,
// and an LF not preceded by a CR, start a new line; a CRLF pair therefore
// counts once.
func (s *Scanner) next() {
	c := s.text[s.pos]
	s.pos++
	switch {
	case c == '\r':
		s.line++
		s.col = 1
	case c == '\n':
		if s.pos >= 2 && s.text[s.pos-2] == '\r' {
			s.col = 1
		} else {
			s.line++
			s.col = 1
		}
	default:
		s.col++
	}
}

// at returns the byte at the given offset from the current position, or 0
// past either end of the text.
func (s *Scanner) at(off int) byte {
	p := s.pos + off
	if p < 0 || p >= len(s.text) {
		return 0
	}
	return s.text[p]
}

func (s *Scanner) end() bool {
	return s.pos >= len(s.text)
}

func (s *Scanner) scanInvalid() Token {
	t := Token{Error, fmt.Sprintf("invalid character %q", string(s.text[s.pos])), s.line, s.col}
	s.next()
	return t
}

func (s *Scanner) scanWhitespace() Token {
	line, col := s.line, s.col
	start := s.pos
	for !s.end() && s.classOf(s.text[s.pos]) == classWhite {
		s.next()
	}
	return Token{Whitespace, s.text[start:s.pos], line, col}
}

// scanNumber scans an optional sign, digits, at most one decimal point and
// an optional exponent. A NumberPrefix character introduces the token but
// is not part of its text.
func (s *Scanner) scanNumber() Token {
	line, col := s.line, s.col
	if s.lx.conf.NumberPrefix != 0 && s.text[s.pos] == s.lx.conf.NumberPrefix {
		s.next()
	}
	start := s.pos
	if c := s.at(0); c == '+' || c == '-' {
		s.next()
	}
	digits := 0
	for isDigit(s.at(0)) {
		s.next()
		digits++
	}
	if s.at(0) == '.' {
		s.next()
		for isDigit(s.at(0)) {
			s.next()
			digits++
		}
	}
	if digits == 0 {
		return Token{Error, "malformed number", line, col}
	}
	if c := s.at(0); c == 'e' || c == 'E' {
		s.next()
		if c := s.at(0); c == '+' || c == '-' {
			s.next()
		}
		if !isDigit(s.at(0)) {
			return Token{Error, "malformed number", line, col}
		}
		for isDigit(s.at(0)) {
			s.next()
		}
	}
	return Token{Number, s.text[start:s.pos], line, col}
}

func (s *Scanner) scanName() Token {
	line, col := s.line, s.col
	start := s.pos
	for !s.end() {
		c := s.text[s.pos]
		cl := s.classOf(c)
		if cl == classLetter ||
			(cl == classDigit && c != s.lx.conf.NumberPrefix && c != '+' && c != '-') {
			s.next()
			continue
		}
		break
	}
	return Token{Name, s.text[start:s.pos], line, col}
}

// scanQuoted scans a string delimited by the quote character it starts
// with. A doubled quote stands for a literal quote when DoubledQuotes is
// set; a backslash escapes the following character when EscapeQuotes is
// set.
func (s *Scanner) scanQuoted() Token {
	line, col := s.line, s.col
	q := s.text[s.pos]
	s.next()
	var val strings.Builder
	for {
		if s.end() {
			return Token{Error, "unterminated string", line, col}
		}
		c := s.text[s.pos]
		switch {
		case s.lx.conf.EscapeQuotes && c == '\\':
			s.next()
			if s.end() {
				return Token{Error, "unterminated string", line, col}
			}
			val.WriteByte(deescape(s.text[s.pos]))
			s.next()
		case c == q:
			if s.lx.conf.DoubledQuotes && s.at(1) == q {
				val.WriteByte(q)
				s.next()
				s.next()
				continue
			}
			s.next()
			text := val.String()
			if !s.lx.conf.TrimQuotes {
				text = string(q) + text + string(q)
			}
			return Token{QuotedString, text, line, col}
		default:
			val.WriteByte(c)
			s.next()
		}
	}
}

func (s *Scanner) scanComment() Token {
	return s.scanBracketed(Comment, s.lx.conf.CommentOpen, s.lx.conf.CommentClose)
}

func (s *Scanner) scanTag() Token {
	return s.scanBracketed(Tag, s.lx.conf.TagOpen, s.lx.conf.TagClose)
}

// scanBracketed scans the text between a bracket pair, excluding the
// brackets themselves.
func (s *Scanner) scanBracketed(k Kind, open, close byte) Token {
	line, col := s.line, s.col
	s.next()
	start := s.pos
	depth := 1
	for {
		if s.end() {
			return Token{Error, fmt.Sprintf("unterminated %s", k), line, col}
		}
		c := s.text[s.pos]
		if s.lx.conf.NestedBrackets && c == open {
			depth++
		}
		if c == close {
			depth--
			if depth == 0 || !s.lx.conf.NestedBrackets {
				end := s.pos
				s.next()
				return Token{k, s.text[start:end], line, col}
			}
		}
		s.next()
	}
}

func (s *Scanner) scanPunct() Token {
	line, col := s.line, s.col
	c := s.text[s.pos]
	s.next()
	var k Kind
	switch c {
	case '(':
		k = OpenParen
	case ')':
		k = CloseParen
	case ',':
		k = Comma
	case ';':
		k = Semicolon
	default:
		return Token{Error, fmt.Sprintf("invalid character %q", string(c)), line, col}
	}
	return Token{k, string(c), line, col}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func deescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	}
	return c
}
