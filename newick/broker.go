package newick

import (
	"fmt"

	"github.com/TuftsBCB/phylo/tree"
)

// An Element is one node of a tree in the flat broker form.
type Element struct {
	// Depth is the nesting depth of the node; the root has depth zero.
	Depth int

	// Name is the label of the node, empty if it has none.
	Name string

	// Length is the length of the branch leading to the node. It is
	// meaningless for the root.
	Length float64

	Comments []string
	Tags     []string

	// IsLeaf records whether the node was a leaf in the source text.
	IsLeaf bool
}

// A Broker is the flat form of one tree: its elements in root first
// order, every node preceding its subtree.
type Broker []*Element

// Ranks returns the number of children of each element. The children of
// element i are the elements after it with depth Depth+1 that come
// before the next element of depth Depth or less.
func (b Broker) Ranks() []int {
	ranks := make([]int, len(b))
	var stack []int
	for i, el := range b {
		for len(stack) > 0 && b[stack[len(stack)-1]].Depth >= el.Depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			ranks[stack[len(stack)-1]]++
		}
		stack = append(stack, i)
	}
	return ranks
}

// validate checks the depth sequence: exactly one root at depth zero up
// front, and no element deeper than one below its predecessor.
func (b Broker) validate() error {
	if b[0].Depth != 0 {
		return fmt.Errorf("newick: first broker element has depth %d", b[0].Depth)
	}
	prev := 0
	for i, el := range b[1:] {
		if el.Depth < 1 || el.Depth > prev+1 {
			return fmt.Errorf("newick: broker element %d jumps from depth %d to %d",
				i+1, prev, el.Depth)
		}
		prev = el.Depth
	}
	return nil
}

// Tree materializes the broker into a tree. Node, edge and link indices
// follow the broker: the root gets node zero, and each element after it
// the next node, link and edge in turn. The branch length of an element
// lands on the edge above its node.
func (b Broker) Tree() (*tree.Tree, error) {
	t := tree.New()
	if len(b) == 0 {
		return t, nil
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	ranks := b.Ranks()

	// Open child slots of processed elements; the next element attaches
	// to the last one.
	var slots []*tree.Link

	for i, el := range b {
		n := t.AppendNode()
		n.Name = el.Name
		n.Comments = append([]string(nil), el.Comments...)
		n.Tags = append([]string(nil), el.Tags...)

		var up *tree.Link
		if i > 0 {
			pd := slots[len(slots)-1]
			slots = slots[:len(slots)-1]
			up = t.AppendLink()
			e := t.AppendEdge()
			e.Length = el.Length
			up.SetNode(n)
			up.SetEdge(e)
			up.SetOuter(pd)
			pd.SetOuter(up)
			pd.SetEdge(e)
			e.SetPrimaryLink(pd)
			e.SetSecondaryLink(up)
			n.SetPrimaryLink(up)
		}

		downs := make([]*tree.Link, ranks[i])
		for j := range downs {
			d := t.AppendLink()
			d.SetNode(n)
			downs[j] = d
		}
		switch {
		case up != nil && len(downs) > 0:
			up.SetNext(downs[0])
			for j := 0; j < len(downs)-1; j++ {
				downs[j].SetNext(downs[j+1])
			}
			downs[len(downs)-1].SetNext(up)
		case up != nil:
			up.SetNext(up)
		case len(downs) > 0:
			for j := 0; j < len(downs)-1; j++ {
				downs[j].SetNext(downs[j+1])
			}
			downs[len(downs)-1].SetNext(downs[0])
			n.SetPrimaryLink(downs[0])
			t.SetRootLink(downs[0])
		default:
			// A broker of one element gives the lone root its
			// placeholder link.
			l := t.AppendLink()
			l.SetNode(n)
			l.SetNext(l)
			n.SetPrimaryLink(l)
			t.SetRootLink(l)
		}
		slots = append(slots, downs...)
	}
	return t, nil
}

// TreeBroker flattens a tree back into broker form. On a tree fresh out
// of Broker.Tree this inverts it exactly, element for element.
func TreeBroker(t *tree.Tree) Broker {
	if t.Empty() {
		return nil
	}
	type frame struct {
		node  *tree.Node
		depth int
	}
	var b Broker
	stack := []frame{{t.RootNode(), 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		el := &Element{
			Depth:    f.depth,
			Name:     f.node.Name,
			Comments: append([]string(nil), f.node.Comments...),
			Tags:     append([]string(nil), f.node.Tags...),
			IsLeaf:   f.node.IsLeaf(),
		}
		if f.depth > 0 {
			el.Length = f.node.PrimaryLink().Edge().Length
		}
		b = append(b, el)
		for _, l := range f.node.ChildLinks() {
			stack = append(stack, frame{l.Outer().Node(), f.depth + 1})
		}
	}
	return b
}
