package newick

import (
	"io"

	"github.com/TuftsBCB/phylo/lexer"
	"github.com/TuftsBCB/phylo/tree"
)

// A Reader reads trees in Newick notation from an underlying reader. An
// input may hold any number of trees, each closed by a semicolon.
type Reader struct {
	// Config controls parsing. It starts out as DefaultConfig.
	Config Config

	r      io.Reader
	tokens lexer.Tokens
	pos    int
	loaded bool
}

// NewReader returns a Reader on r using DefaultConfig.
func NewReader(r io.Reader) *Reader {
	return &Reader{Config: DefaultConfig(), r: r}
}

func (r *Reader) load() error {
	if r.loaded {
		return nil
	}
	text, err := io.ReadAll(r.r)
	if err != nil {
		return err
	}
	r.tokens = newickLexer.Tokenize(string(text))
	r.loaded = true
	return nil
}

// ReadTree reads the next tree of the input. It returns io.EOF after the
// last one.
func (r *Reader) ReadTree() (*tree.Tree, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	for r.pos < len(r.tokens) && r.tokens[r.pos].Kind == lexer.Comment {
		r.pos++
	}
	if r.pos >= len(r.tokens) {
		return nil, io.EOF
	}
	b, pos, err := parseTree(r.tokens, r.pos, r.Config)
	if err != nil {
		return nil, err
	}
	r.pos = pos
	return b.Tree()
}

// ReadAll reads every remaining tree of the input.
func (r *Reader) ReadAll() ([]*tree.Tree, error) {
	var trees []*tree.Tree
	for {
		t, err := r.ReadTree()
		if err == io.EOF {
			return trees, nil
		}
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
}

// ParseString reads a single tree from a string using DefaultConfig.
func ParseString(s string) (*tree.Tree, error) {
	b, err := ParseBroker(s)
	if err != nil {
		return nil, err
	}
	return b.Tree()
}

// ParseBroker parses a single tree from a string into its flat broker
// form, without materializing it.
func ParseBroker(s string) (Broker, error) {
	b, _, err := parseTree(newickLexer.Tokenize(s), 0, DefaultConfig())
	return b, err
}
