package tree

// A Link is one directed half of an edge. Next moves around the cycle of
// links at the same node; Outer crosses the edge to the link at the other
// end.
type Link struct {
	tree  *Tree
	index int
	next  int
	outer int
	node  int
	edge  int
}

// Index is the position of the link in its tree.
func (l *Link) Index() int { return l.index }

// Next is the following link in the cycle around this link's node.
func (l *Link) Next() *Link { return l.tree.linkAt(l.next) }

// Outer is the link at the other end of this link's edge, or nil if the
// link has no edge.
func (l *Link) Outer() *Link { return l.tree.linkAt(l.outer) }

// Node is the node this link belongs to.
func (l *Link) Node() *Node { return l.tree.nodeAt(l.node) }

// Edge is the edge this link belongs to, or nil if it has none.
func (l *Link) Edge() *Edge { return l.tree.edgeAt(l.edge) }

func (l *Link) SetNext(x *Link)  { l.next = x.index }
func (l *Link) SetOuter(x *Link) { l.outer = x.index }
func (l *Link) SetNode(n *Node)  { l.node = n.index }
func (l *Link) SetEdge(e *Edge)  { l.edge = e.index }

// A Node is a vertex of the tree. Name, Comments and Tags are free for
// callers to fill; the structure maintains only the link.
type Node struct {
	tree  *Tree
	index int
	link  int

	Name     string
	Comments []string
	Tags     []string
}

// Index is the position of the node in its tree.
func (n *Node) Index() int { return n.index }

// PrimaryLink is the link of this node that points toward the root. For
// the root node it is the designated first child link.
func (n *Node) PrimaryLink() *Link { return n.tree.linkAt(n.link) }

func (n *Node) SetPrimaryLink(l *Link) { n.link = l.index }

// Degree is the number of edges meeting at this node.
func (n *Node) Degree() int {
	pl := n.PrimaryLink()
	if pl == nil {
		return 0
	}
	d := 0
	for l := pl; ; {
		if l.edge >= 0 {
			d++
		}
		if l = l.Next(); l == pl {
			break
		}
	}
	return d
}

// IsLeaf reports whether the node's link cycle has length one.
func (n *Node) IsLeaf() bool {
	pl := n.PrimaryLink()
	return pl == nil || pl.next == pl.index
}

// IsRoot reports whether this node holds the tree's root link.
func (n *Node) IsRoot() bool {
	rl := n.tree.RootLink()
	return rl != nil && rl.node == n.index
}

// ChildLinks lists the links of this node that lead away from the root,
// in cycle order. For the root node that is the whole cycle starting at
// the root link; for any other node the cycle minus the primary link.
func (n *Node) ChildLinks() []*Link {
	pl := n.PrimaryLink()
	if pl == nil {
		return nil
	}
	var ls []*Link
	if n.IsRoot() {
		for l := pl; ; {
			if l.edge >= 0 {
				ls = append(ls, l)
			}
			if l = l.Next(); l == pl {
				break
			}
		}
		return ls
	}
	for l := pl.Next(); l != pl; l = l.Next() {
		ls = append(ls, l)
	}
	return ls
}

// Parent is the node on the root side of this node, or nil for the root.
func (n *Node) Parent() *Node {
	if n.IsRoot() {
		return nil
	}
	return n.PrimaryLink().Outer().Node()
}

// An Edge connects two nodes. The primary link sits on the node closer to
// the root, the secondary link on the node farther from it.
type Edge struct {
	tree      *Tree
	index     int
	primary   int
	secondary int

	Length float64
}

// Index is the position of the edge in its tree.
func (e *Edge) Index() int { return e.index }

// PrimaryLink is the link on the root side of the edge.
func (e *Edge) PrimaryLink() *Link { return e.tree.linkAt(e.primary) }

// SecondaryLink is the link on the far side of the edge.
func (e *Edge) SecondaryLink() *Link { return e.tree.linkAt(e.secondary) }

// PrimaryNode is the node on the root side of the edge.
func (e *Edge) PrimaryNode() *Node { return e.PrimaryLink().Node() }

// SecondaryNode is the node on the far side of the edge.
func (e *Edge) SecondaryNode() *Node { return e.SecondaryLink().Node() }

func (e *Edge) SetPrimaryLink(l *Link)   { e.primary = l.index }
func (e *Edge) SetSecondaryLink(l *Link) { e.secondary = l.index }

// A Tree owns its links, nodes and edges in three densely indexed
// collections. The zero Tree from New is empty.
type Tree struct {
	links []*Link
	nodes []*Node
	edges []*Edge

	rootLink int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{rootLink: -1}
}

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return len(t.nodes) == 0 }

func (t *Tree) LinkCount() int { return len(t.links) }
func (t *Tree) NodeCount() int { return len(t.nodes) }
func (t *Tree) EdgeCount() int { return len(t.edges) }

// LinkAt returns the link with the given index.
func (t *Tree) LinkAt(i int) *Link { return t.links[i] }

// NodeAt returns the node with the given index.
func (t *Tree) NodeAt(i int) *Node { return t.nodes[i] }

// EdgeAt returns the edge with the given index.
func (t *Tree) EdgeAt(i int) *Edge { return t.edges[i] }

func (t *Tree) linkAt(i int) *Link {
	if i < 0 {
		return nil
	}
	return t.links[i]
}

func (t *Tree) nodeAt(i int) *Node {
	if i < 0 {
		return nil
	}
	return t.nodes[i]
}

func (t *Tree) edgeAt(i int) *Edge {
	if i < 0 {
		return nil
	}
	return t.edges[i]
}

// RootLink is the link the traversal of the tree starts at, or nil for an
// empty tree.
func (t *Tree) RootLink() *Link { return t.linkAt(t.rootLink) }

// RootNode is the node holding the root link, or nil for an empty tree.
func (t *Tree) RootNode() *Node {
	rl := t.RootLink()
	if rl == nil {
		return nil
	}
	return rl.Node()
}

func (t *Tree) SetRootLink(l *Link) {
	t.mustOwnLink(l)
	t.rootLink = l.index
}

// AppendLink adds a fresh link to the tree. Its references start out
// unset.
func (t *Tree) AppendLink() *Link {
	l := &Link{tree: t, index: len(t.links), next: -1, outer: -1, node: -1, edge: -1}
	t.links = append(t.links, l)
	return l
}

// AppendNode adds a fresh node to the tree.
func (t *Tree) AppendNode() *Node {
	n := &Node{tree: t, index: len(t.nodes), link: -1}
	t.nodes = append(t.nodes, n)
	return n
}

// AppendEdge adds a fresh edge to the tree.
func (t *Tree) AppendEdge() *Edge {
	e := &Edge{tree: t, index: len(t.edges), primary: -1, secondary: -1}
	t.edges = append(t.edges, e)
	return e
}

// Clone returns a deep copy of the tree. Mutating either tree afterwards
// leaves the other untouched.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		links:    make([]*Link, len(t.links)),
		nodes:    make([]*Node, len(t.nodes)),
		edges:    make([]*Edge, len(t.edges)),
		rootLink: t.rootLink,
	}
	for i, l := range t.links {
		cl := *l
		cl.tree = c
		c.links[i] = &cl
	}
	for i, n := range t.nodes {
		cn := *n
		cn.tree = c
		cn.Comments = append([]string(nil), n.Comments...)
		cn.Tags = append([]string(nil), n.Tags...)
		c.nodes[i] = &cn
	}
	for i, e := range t.edges {
		ce := *e
		ce.tree = c
		c.edges[i] = &ce
	}
	return c
}

// FindNode returns the first node carrying the given name, or nil.
func FindNode(t *Tree, name string) *Node {
	for _, n := range t.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func (t *Tree) mustOwnLink(l *Link) {
	if l == nil || l.tree != t {
		panic("tree: link belongs to a different tree")
	}
}

func (t *Tree) mustOwnNode(n *Node) {
	if n == nil || n.tree != t {
		panic("tree: node belongs to a different tree")
	}
}

func (t *Tree) mustOwnEdge(e *Edge) {
	if e == nil || e.tree != t {
		panic("tree: edge belongs to a different tree")
	}
}
