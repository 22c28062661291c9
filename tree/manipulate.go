package tree

// AdjustEdges lets a caller of AddNewNodeOnEdge or AddNewLeafNode
// distribute the split edge's values over the two resulting edges. It
// receives the edge that was split and the newly created one.
type AdjustEdges func(target, created *Edge)

// MergeEdges lets a caller of DeleteLinearNode fold the values of the
// removed edge into the kept one.
type MergeEdges func(kept, removed *Edge)

// Reroot makes the node holding link the new root and link its first
// child. Only orientation changes: primary links and edge directions
// along the path to the old root are flipped, while every index and
// every next cycle stays as it was.
func Reroot(t *Tree, link *Link) {
	t.mustOwnLink(link)
	if t.rootLink == link.index {
		return
	}
	oldRoot := t.RootNode()
	cur := link.Node().PrimaryLink()
	t.rootLink = link.index
	link.Node().link = link.index
	for cur.Node() != oldRoot {
		next := cur.Outer().Node().PrimaryLink()
		down := cur.Outer()
		e := cur.Edge()
		e.primary = cur.index
		e.secondary = down.index
		down.Node().link = down.index
		cur = next
	}
}

// AddNewNode grows a new leaf hanging off target by a fresh edge. The
// edge's link at target is spliced into the cycle directly before
// target's primary link. Returns the new leaf.
func AddNewNode(t *Tree, target *Node) *Node {
	t.mustOwnNode(target)

	pl := t.AppendLink()
	cl := t.AppendLink()
	node := t.AppendNode()
	edge := t.AppendEdge()

	edge.primary = pl.index
	edge.secondary = cl.index

	pl.node = target.index
	pl.edge = edge.index
	pl.outer = cl.index

	cl.node = node.index
	cl.edge = edge.index
	cl.outer = pl.index
	cl.next = cl.index

	node.link = cl.index

	if target.link < 0 {
		pl.next = pl.index
		target.link = pl.index
		return node
	}
	pri := target.PrimaryLink()
	if pri.edge < 0 && pri.next == pri.index {
		// Sole node of the tree: its placeholder link makes way.
		t.rootLink = pl.index
		target.link = pl.index
		pl.next = pl.index
		t.compact([]*Link{pri}, nil, nil)
		return node
	}
	cyclePrev(pri).next = pl.index
	pl.next = pri.index
	return node
}

// AddNewNodeOnEdge splits target with a new node of degree two. The root
// side of target keeps it; a fresh edge runs from the new node to
// target's former secondary side. adjust, when non-nil, runs once the
// split is in place; otherwise target keeps its length and the new edge
// gets none. Returns the new node.
func AddNewNodeOnEdge(t *Tree, target *Edge, adjust AdjustEdges) *Node {
	t.mustOwnEdge(target)

	up := t.AppendLink()
	down := t.AppendLink()
	node := t.AppendNode()
	edge := t.AppendEdge()

	oldPri := target.PrimaryLink()
	oldSec := target.SecondaryLink()

	up.node = node.index
	up.edge = target.index
	up.outer = oldPri.index
	up.next = down.index

	down.node = node.index
	down.edge = edge.index
	down.outer = oldSec.index
	down.next = up.index

	oldPri.outer = up.index
	oldSec.outer = down.index
	oldSec.edge = edge.index

	target.secondary = up.index

	edge.primary = down.index
	edge.secondary = oldSec.index

	node.link = up.index

	if adjust != nil {
		adjust(target, edge)
	}
	return node
}

// AddNewLeafNode splits target via AddNewNodeOnEdge and grows a new leaf
// off the created node. Returns the new leaf.
func AddNewLeafNode(t *Tree, target *Edge, adjust AdjustEdges) *Node {
	contact := AddNewNodeOnEdge(t, target, adjust)
	return AddNewNode(t, contact)
}

// DeleteLeafNode removes the leaf target and its edge. The remaining
// elements are renumbered densely, keeping their relative order. Deleting
// the last node leaves the empty tree; deleting one end of a two node
// tree leaves the other as a lone root.
func DeleteLeafNode(t *Tree, target *Node) {
	t.mustOwnNode(target)
	if !target.IsLeaf() {
		panic("tree: DeleteLeafNode: node is not a leaf")
	}
	cl := target.PrimaryLink()
	if cl == nil || cl.edge < 0 {
		t.links = t.links[:0]
		t.nodes = t.nodes[:0]
		t.edges = t.edges[:0]
		t.rootLink = -1
		return
	}
	pl := cl.Outer()
	parent := pl.Node()
	edge := cl.Edge()

	if pl.next == pl.index {
		// The neighbor stays behind as a lone root; its link remains as a
		// placeholder with no edge.
		pl.outer = -1
		pl.edge = -1
		parent.link = pl.index
		t.rootLink = pl.index
		t.compact([]*Link{cl}, []*Node{target}, []*Edge{edge})
		return
	}

	cyclePrev(pl).next = pl.next
	// The parent side link dies too; move the root link and the parent's
	// primary off of it when the leaf was the root or its first child.
	if target.IsRoot() || t.rootLink == pl.index {
		t.rootLink = pl.next
		parent.link = pl.next
	}
	t.compact([]*Link{cl, pl}, []*Node{target}, []*Edge{edge})
}

// DeleteLinearNode removes a node of degree two and fuses its two edges.
// The edge on the far side of the root survives; merge, when non-nil,
// receives it together with the edge about to go, and otherwise the kept
// edge simply keeps its own length. For a root of degree two its first
// child takes over as root.
func DeleteLinearNode(t *Tree, target *Node, merge MergeEdges) {
	t.mustOwnNode(target)
	if target.Degree() != 2 {
		panic("tree: DeleteLinearNode: node degree is not two")
	}

	up := target.PrimaryLink()

	if target.IsRoot() {
		c1, c2 := up, up.Next()
		aUp, bUp := c1.Outer(), c2.Outer()
		e1, e2 := c1.Edge(), c2.Edge()
		aUp.outer = bUp.index
		bUp.outer = aUp.index
		bUp.edge = e1.index
		e1.primary = aUp.index
		e1.secondary = bUp.index
		t.rootLink = aUp.index
		if merge != nil {
			merge(e1, e2)
		}
		t.compact([]*Link{c1, c2}, []*Node{target}, []*Edge{e2})
		return
	}

	cl := up.Next()
	pp := up.Outer()
	ck := cl.Outer()
	ep := up.Edge()
	ec := cl.Edge()

	pp.edge = ec.index
	pp.outer = ck.index
	ck.outer = pp.index
	ec.primary = pp.index

	if merge != nil {
		merge(ec, ep)
	}
	t.compact([]*Link{up, cl}, []*Node{target}, []*Edge{ep})
}

// DeleteNode removes target using the strategy fitting its shape: a leaf
// is pruned, a degree two node is spliced out, and an inner node of
// higher degree hands its children over to its parent. A root of degree
// three or more has no parent to hand them to and cannot be deleted.
func DeleteNode(t *Tree, target *Node) {
	t.mustOwnNode(target)
	switch {
	case target.IsLeaf():
		DeleteLeafNode(t, target)
	case target.Degree() == 2:
		DeleteLinearNode(t, target, nil)
	default:
		if target.IsRoot() {
			panic("tree: DeleteNode: root of degree three or more")
		}
		deleteInnerNode(t, target)
	}
}

// deleteInnerNode moves the child links of target into its parent's
// cycle, in target's place, and drops target with its parent edge.
func deleteInnerNode(t *Tree, target *Node) {
	up := target.PrimaryLink()
	pp := up.Outer()
	parent := pp.Node()
	ep := up.Edge()

	children := target.ChildLinks()
	for _, c := range children {
		c.node = parent.index
	}
	first, last := children[0], children[len(children)-1]
	if pp.next == pp.index {
		last.next = first.index
	} else {
		cyclePrev(pp).next = first.index
		last.next = pp.next
	}
	if parent.link == pp.index {
		parent.link = first.index
	}
	if t.rootLink == pp.index {
		t.rootLink = first.index
	}
	t.compact([]*Link{up, pp}, []*Node{target}, []*Edge{ep})
}

// cyclePrev walks the next cycle all the way around to the link before l.
func cyclePrev(l *Link) *Link {
	p := l
	for p.Next() != l {
		p = p.Next()
	}
	return p
}

// compact drops the given elements and renumbers the survivors, keeping
// their relative order. Every stored index, including the root link, is
// rewritten through the old to new maps.
func (t *Tree) compact(deadLinks []*Link, deadNodes []*Node, deadEdges []*Edge) {
	lm, keptLinks := remapLinks(t.links, deadLinks)
	nm, keptNodes := remapNodes(t.nodes, deadNodes)
	em, keptEdges := remapEdges(t.edges, deadEdges)

	for _, l := range keptLinks {
		l.index = lm[l.index]
		l.next = mapIndex(lm, l.next)
		l.outer = mapIndex(lm, l.outer)
		l.node = mapIndex(nm, l.node)
		l.edge = mapIndex(em, l.edge)
	}
	for _, n := range keptNodes {
		n.index = nm[n.index]
		n.link = mapIndex(lm, n.link)
	}
	for _, e := range keptEdges {
		e.index = em[e.index]
		e.primary = mapIndex(lm, e.primary)
		e.secondary = mapIndex(lm, e.secondary)
	}
	t.links = keptLinks
	t.nodes = keptNodes
	t.edges = keptEdges
	t.rootLink = mapIndex(lm, t.rootLink)
}

func remapLinks(all, dead []*Link) ([]int, []*Link) {
	gone := make([]bool, len(all))
	for _, l := range dead {
		gone[l.index] = true
	}
	m := make([]int, len(all))
	kept := all[:0]
	for i, l := range all {
		if gone[i] {
			m[i] = -1
			continue
		}
		m[i] = len(kept)
		kept = append(kept, l)
	}
	return m, kept
}

func remapNodes(all, dead []*Node) ([]int, []*Node) {
	gone := make([]bool, len(all))
	for _, n := range dead {
		gone[n.index] = true
	}
	m := make([]int, len(all))
	kept := all[:0]
	for i, n := range all {
		if gone[i] {
			m[i] = -1
			continue
		}
		m[i] = len(kept)
		kept = append(kept, n)
	}
	return m, kept
}

func remapEdges(all, dead []*Edge) ([]int, []*Edge) {
	gone := make([]bool, len(all))
	for _, e := range dead {
		gone[e.index] = true
	}
	m := make([]int, len(all))
	kept := all[:0]
	for i, e := range all {
		if gone[i] {
			m[i] = -1
			continue
		}
		m[i] = len(kept)
		kept = append(kept, e)
	}
	return m, kept
}

func mapIndex(m []int, i int) int {
	if i < 0 {
		return -1
	}
	return m[i]
}
