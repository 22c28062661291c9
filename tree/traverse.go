package tree

import "iter"

// Preorder yields every node of the tree together with its depth below
// the root, each node before its children. Children follow the cycle
// order of their parent's links.
func Preorder(t *Tree) iter.Seq2[*Node, int] {
	return func(yield func(*Node, int) bool) {
		if t.Empty() {
			return
		}
		type frame struct {
			node  *Node
			depth int
		}
		stack := []frame{{t.RootNode(), 0}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(f.node, f.depth) {
				return
			}
			children := f.node.ChildLinks()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{children[i].Outer().Node(), f.depth + 1})
			}
		}
	}
}

// Levelorder yields every node of the tree together with its depth below
// the root, all nodes of one depth before any node of the next.
func Levelorder(t *Tree) iter.Seq2[*Node, int] {
	return func(yield func(*Node, int) bool) {
		if t.Empty() {
			return
		}
		type frame struct {
			node  *Node
			depth int
		}
		queue := []frame{{t.RootNode(), 0}}
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			if !yield(f.node, f.depth) {
				return
			}
			for _, l := range f.node.ChildLinks() {
				queue = append(queue, frame{l.Outer().Node(), f.depth + 1})
			}
		}
	}
}
