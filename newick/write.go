package newick

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/TuftsBCB/phylo/tree"
)

// BrokerString renders a broker into Newick notation, including the
// terminating semicolon.
func BrokerString(b Broker, conf Config) string {
	if len(b) == 0 {
		return ";"
	}
	return subtreeString(b, b.Ranks(), 0, conf) + ";"
}

// subtreeString renders the subtree rooted at element pos. The broker
// lists the children of an element in reverse notation order, so their
// rendered substrings are flipped before joining.
func subtreeString(b Broker, ranks []int, pos int, conf Config) string {
	if ranks[pos] == 0 {
		return elementString(b[pos], conf)
	}
	var children []string
	for i := pos + 1; i < len(b) && b[i].Depth > b[pos].Depth; i++ {
		if b[i].Depth > b[pos].Depth+1 {
			continue
		}
		children = append(children, subtreeString(b, ranks, i, conf))
	}
	slices.Reverse(children)
	return "(" + strings.Join(children, ",") + ")" + elementString(b[pos], conf)
}

func elementString(el *Element, conf Config) string {
	var sb strings.Builder
	if conf.PrintNames {
		sb.WriteString(strings.ReplaceAll(el.Name, " ", "_"))
	}
	if conf.PrintBranchLengths {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(el.Length, 'g', conf.Precision, 64))
	}
	if conf.PrintComments {
		for _, c := range el.Comments {
			sb.WriteString("[")
			sb.WriteString(c)
			sb.WriteString("]")
		}
	}
	if conf.PrintTags {
		for _, t := range el.Tags {
			sb.WriteString("{")
			sb.WriteString(t)
			sb.WriteString("}")
		}
	}
	return sb.String()
}

// TreeString renders a tree into Newick notation using DefaultConfig.
func TreeString(t *tree.Tree) string {
	return BrokerString(TreeBroker(t), DefaultConfig())
}

// A Writer writes trees in Newick notation to an underlying writer, one
// tree per line.
type Writer struct {
	// Config controls what gets written. It starts out as DefaultConfig.
	Config Config

	w io.Writer
}

// NewWriter returns a Writer on w using DefaultConfig.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Config: DefaultConfig(), w: w}
}

// WriteTree writes one tree followed by a newline.
func (w *Writer) WriteTree(t *tree.Tree) error {
	_, err := io.WriteString(w.w, BrokerString(TreeBroker(t), w.Config)+"\n")
	return err
}

// WriteAll writes each tree on its own line.
func (w *Writer) WriteAll(trees []*tree.Tree) error {
	for _, t := range trees {
		if err := w.WriteTree(t); err != nil {
			return err
		}
	}
	return nil
}
