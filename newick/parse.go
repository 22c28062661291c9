package newick

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/TuftsBCB/phylo/lexer"
)

func parseErr(tok lexer.Token, format string, v ...any) error {
	return fmt.Errorf("newick: %s at %s", fmt.Sprintf(format, v...), tok.At())
}

// parseTree consumes the tokens of one tree starting at pos and returns
// its broker along with the position right after the closing semicolon.
//
// The grammar is checked against the previous token: a subtree opens
// only at the start or after '(' or ','; a label follows '(', ')' or
// ','; a branch length follows '(', ')', ',' or a label; ',' and ')'
// close off the element gathered since the last separator. Comments may
// sit anywhere and attach to the element under construction, as do tags.
func parseTree(ts lexer.Tokens, pos int, conf Config) (Broker, int, error) {
	var (
		b        Broker
		node     *Element
		depth    int
		closed   bool
		prev     lexer.Kind
		havePrev bool
		prevNC   lexer.Kind
		haveNC   bool
	)

	// fill completes the element under construction and pushes it.
	fill := func(root bool) {
		if node.Name == "" && conf.UseDefaultNames {
			switch {
			case root:
				node.Name = conf.DefaultRootName
			case node.IsLeaf:
				node.Name = conf.DefaultLeafName
			default:
				node.Name = conf.DefaultInternalName
			}
		}
		b = append(b, node)
		node = nil
	}

	i := pos
	for ; i < len(ts); i++ {
		tok := ts[i]

		if tok.Kind == lexer.Error {
			return nil, i, fmt.Errorf("newick: %s at %s", tok.Text, tok.At())
		}

		if tok.Kind == lexer.OpenParen {
			if havePrev && prev != lexer.OpenParen && prev != lexer.Comma && prev != lexer.Comment {
				return nil, i, parseErr(tok, "unexpected '('")
			}
			if closed {
				return nil, i, parseErr(tok, "tree was already closed, cannot reopen with '('")
			}
			depth++
			prev, havePrev = tok.Kind, true
			prevNC, haveNC = tok.Kind, true
			continue
		}

		if !havePrev {
			// Comments before the tree are dropped.
			if tok.Kind == lexer.Comment {
				continue
			}
			return nil, i, parseErr(tok, "tree does not start with '('")
		}

		if node == nil {
			node = &Element{Depth: depth}
			node.IsLeaf = haveNC && (prevNC == lexer.OpenParen || prevNC == lexer.Comma)
		}

		switch tok.Kind {
		case lexer.Name, lexer.QuotedString:
			if prev != lexer.OpenParen && prev != lexer.CloseParen &&
				prev != lexer.Comma && prev != lexer.Comment {
				return nil, i, parseErr(tok, "unexpected label %q", tok.Text)
			}
			if tok.Kind == lexer.Name {
				// Underscores in unquoted labels stand for spaces.
				node.Name = strings.ReplaceAll(tok.Text, "_", " ")
			} else {
				node.Name = tok.Text
			}

		case lexer.Number:
			if prev != lexer.OpenParen && prev != lexer.CloseParen &&
				prev != lexer.Comma && prev != lexer.Name &&
				prev != lexer.QuotedString && prev != lexer.Comment {
				return nil, i, parseErr(tok, "unexpected branch length")
			}
			l, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return nil, i, parseErr(tok, "bad branch length %q", tok.Text)
			}
			node.Length = l

		case lexer.Tag:
			node.Tags = append(node.Tags, tok.Text)

		case lexer.Comment:
			node.Comments = append(node.Comments, tok.Text)

		case lexer.Comma:
			if depth == 0 {
				return nil, i, parseErr(tok, "unexpected ',' outside the tree")
			}
			fill(false)

		case lexer.CloseParen:
			if depth == 0 {
				return nil, i, parseErr(tok, "too many ')'")
			}
			if prev == lexer.OpenParen {
				return nil, i, parseErr(tok, "empty subtree before ')'")
			}
			fill(false)
			depth--
			if depth == 0 {
				closed = true
			}

		case lexer.Semicolon:
			if depth != 0 {
				return nil, i, parseErr(tok, "unclosed subtree before ';'")
			}
			if prev != lexer.CloseParen && prev != lexer.Name &&
				prev != lexer.QuotedString && prev != lexer.Number &&
				prev != lexer.Comment && prev != lexer.Tag {
				return nil, i, parseErr(tok, "unexpected ';'")
			}
			fill(true)
			slices.Reverse(b)
			return b, i + 1, nil
		}

		prev, havePrev = tok.Kind, true
		if tok.Kind != lexer.Comment {
			prevNC, haveNC = tok.Kind, true
		}
	}
	return nil, i, fmt.Errorf("newick: tree does not finish with a semicolon")
}
