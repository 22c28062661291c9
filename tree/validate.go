package tree

import "fmt"

// Validate checks the structural invariants of the tree and returns a
// description of the first violation found, or nil. It verifies dense
// indexing, closed next cycles that partition the links, mutual outer
// pairing, agreement between edges and their links, the orientation of
// primary links toward the root, the count relations between nodes,
// edges and links, and connectivity from the root.
func Validate(t *Tree) error {
	for i, l := range t.links {
		if l.tree != t || l.index != i {
			return fmt.Errorf("link at position %d carries index %d", i, l.index)
		}
	}
	for i, n := range t.nodes {
		if n.tree != t || n.index != i {
			return fmt.Errorf("node at position %d carries index %d", i, n.index)
		}
	}
	for i, e := range t.edges {
		if e.tree != t || e.index != i {
			return fmt.Errorf("edge at position %d carries index %d", i, e.index)
		}
	}

	if t.Empty() {
		if len(t.links) != 0 || len(t.edges) != 0 || t.rootLink != -1 {
			return fmt.Errorf("empty tree holds %d links, %d edges, root link %d",
				len(t.links), len(t.edges), t.rootLink)
		}
		return nil
	}
	if t.rootLink < 0 || t.rootLink >= len(t.links) {
		return fmt.Errorf("root link %d out of range", t.rootLink)
	}

	if len(t.nodes) == 1 {
		// A lone root keeps one placeholder link without an edge.
		if len(t.links) != 1 || len(t.edges) != 0 {
			return fmt.Errorf("single node tree holds %d links and %d edges",
				len(t.links), len(t.edges))
		}
		l := t.links[0]
		if l.next != 0 || l.outer != -1 || l.edge != -1 || l.node != 0 || t.nodes[0].link != 0 {
			return fmt.Errorf("single node tree is wired up wrong")
		}
		return nil
	}

	if len(t.nodes) != len(t.edges)+1 {
		return fmt.Errorf("%d nodes do not fit %d edges", len(t.nodes), len(t.edges))
	}
	if len(t.links) != 2*len(t.edges) {
		return fmt.Errorf("%d links do not fit %d edges", len(t.links), len(t.edges))
	}

	for i, l := range t.links {
		if l.next < 0 || l.next >= len(t.links) ||
			l.outer < 0 || l.outer >= len(t.links) ||
			l.node < 0 || l.node >= len(t.nodes) ||
			l.edge < 0 || l.edge >= len(t.edges) {
			return fmt.Errorf("link %d references out of range", i)
		}
	}

	for i, l := range t.links {
		o := t.links[l.outer]
		if o.outer != i {
			return fmt.Errorf("link %d and link %d are not mutual outers", i, l.outer)
		}
		if l.outer == i {
			return fmt.Errorf("link %d is its own outer", i)
		}
		if o.edge != l.edge {
			return fmt.Errorf("links %d and %d disagree about their edge", i, l.outer)
		}
		e := t.edges[l.edge]
		if e.primary != i && e.secondary != i {
			return fmt.Errorf("edge %d does not name link %d", l.edge, i)
		}
	}

	visited := make([]bool, len(t.links))
	for ni, n := range t.nodes {
		if n.link < 0 || n.link >= len(t.links) {
			return fmt.Errorf("node %d has primary link %d", ni, n.link)
		}
		steps := 0
		for l := n.link; ; {
			if visited[l] {
				return fmt.Errorf("link %d sits in two node cycles", l)
			}
			visited[l] = true
			if t.links[l].node != ni {
				return fmt.Errorf("link %d in the cycle of node %d names node %d",
					l, ni, t.links[l].node)
			}
			if steps++; steps > len(t.links) {
				return fmt.Errorf("next cycle at node %d does not close", ni)
			}
			if l = t.links[l].next; l == n.link {
				break
			}
		}
	}
	for i, v := range visited {
		if !v {
			return fmt.Errorf("link %d belongs to no node cycle", i)
		}
	}

	for i, e := range t.edges {
		if e.primary < 0 || e.primary >= len(t.links) ||
			e.secondary < 0 || e.secondary >= len(t.links) {
			return fmt.Errorf("edge %d references out of range", i)
		}
		p, s := t.links[e.primary], t.links[e.secondary]
		if p.edge != i || s.edge != i {
			return fmt.Errorf("edge %d is not named by its links", i)
		}
		if p.outer != e.secondary {
			return fmt.Errorf("edge %d: primary and secondary are not outer partners", i)
		}
	}

	root := t.links[t.rootLink].node
	if t.nodes[root].link != t.rootLink {
		return fmt.Errorf("root link %d is not the primary link of node %d", t.rootLink, root)
	}
	for ni, n := range t.nodes {
		if ni == root {
			continue
		}
		pl := t.links[n.link]
		if t.edges[pl.edge].secondary != n.link {
			return fmt.Errorf("node %d: primary link %d does not point toward the root", ni, n.link)
		}
	}

	seen := make([]bool, len(t.nodes))
	seen[root] = true
	reached := 0
	for queue := []int{root}; len(queue) > 0; queue = queue[1:] {
		ni := queue[0]
		reached++
		for l := t.nodes[ni].link; ; {
			other := t.links[t.links[l].outer].node
			if !seen[other] {
				seen[other] = true
				queue = append(queue, other)
			}
			if l = t.links[l].next; l == t.nodes[ni].link {
				break
			}
		}
	}
	if reached != len(t.nodes) {
		return fmt.Errorf("only %d of %d nodes reachable from the root", reached, len(t.nodes))
	}
	return nil
}
