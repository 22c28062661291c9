package tree_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/tree"
)

const sampleTree = "((B,(D,E)C)A,F,(H,I)G)R;"

func mustTree(t *testing.T, s string) *tree.Tree {
	t.Helper()
	tr, err := newick.ParseString(s)
	require.NoError(t, err)
	return tr
}

func levelorderString(tr *tree.Tree) string {
	var parts []string
	for n, d := range tree.Levelorder(tr) {
		parts = append(parts, fmt.Sprintf("%d%s", d, n.Name))
	}
	return strings.Join(parts, " ")
}

func TestCounts(t *testing.T) {
	tr := mustTree(t, sampleTree)
	assert.Equal(t, 10, tr.NodeCount())
	assert.Equal(t, 9, tr.EdgeCount())
	assert.Equal(t, 18, tr.LinkCount())
	require.NoError(t, tree.Validate(tr))
}

func TestFindNode(t *testing.T) {
	tr := mustTree(t, sampleTree)
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "R"} {
		n := tree.FindNode(tr, name)
		require.NotNil(t, n, "node %s", name)
		assert.Equal(t, name, n.Name)
	}
	assert.Nil(t, tree.FindNode(tr, "X"))
}

func TestNodeShape(t *testing.T) {
	tr := mustTree(t, sampleTree)

	r := tree.FindNode(tr, "R")
	assert.True(t, r.IsRoot())
	assert.False(t, r.IsLeaf())
	assert.Equal(t, 3, r.Degree())
	assert.Nil(t, r.Parent())

	a := tree.FindNode(tr, "A")
	assert.False(t, a.IsRoot())
	assert.Equal(t, 3, a.Degree())
	assert.Equal(t, r, a.Parent())

	b := tree.FindNode(tr, "B")
	assert.True(t, b.IsLeaf())
	assert.Equal(t, 1, b.Degree())
	assert.Equal(t, a, b.Parent())
}

func TestChildLinks(t *testing.T) {
	tr := mustTree(t, sampleTree)

	var names []string
	for _, l := range tree.FindNode(tr, "R").ChildLinks() {
		names = append(names, l.Outer().Node().Name)
	}
	assert.Equal(t, []string{"A", "F", "G"}, names)

	names = names[:0]
	for _, l := range tree.FindNode(tr, "A").ChildLinks() {
		names = append(names, l.Outer().Node().Name)
	}
	assert.Equal(t, []string{"B", "C"}, names)

	assert.Empty(t, tree.FindNode(tr, "F").ChildLinks())
}

func TestPrimaryLinkOrientation(t *testing.T) {
	tr := mustTree(t, sampleTree)
	for i := 0; i < tr.NodeCount(); i++ {
		n := tr.NodeAt(i)
		if n.IsRoot() {
			assert.Equal(t, tr.RootLink(), n.PrimaryLink())
			continue
		}
		e := n.PrimaryLink().Edge()
		assert.Equal(t, n, e.SecondaryNode(), "node %s", n.Name)
		assert.Equal(t, n.Parent(), e.PrimaryNode(), "node %s", n.Name)
	}
}

func TestIndexAccessors(t *testing.T) {
	tr := mustTree(t, sampleTree)
	for i := 0; i < tr.LinkCount(); i++ {
		l := tr.LinkAt(i)
		assert.Equal(t, i, l.Index())
		assert.Equal(t, l, l.Outer().Outer())
		assert.Equal(t, l.Edge(), l.Outer().Edge())
	}
	for i := 0; i < tr.EdgeCount(); i++ {
		e := tr.EdgeAt(i)
		assert.Equal(t, i, e.Index())
		assert.Equal(t, e.SecondaryLink(), e.PrimaryLink().Outer())
	}
}

func TestClone(t *testing.T) {
	tr := mustTree(t, sampleTree)
	cp := tr.Clone()
	require.NoError(t, tree.Validate(cp))
	assert.Equal(t, levelorderString(tr), levelorderString(cp))

	// The copy is fully independent.
	cp.NodeAt(0).Name = "changed"
	tree.DeleteLeafNode(cp, tree.FindNode(cp, "F"))
	assert.Equal(t, 9, cp.NodeCount())
	assert.Equal(t, 10, tr.NodeCount())
	assert.Equal(t, "R", tr.NodeAt(0).Name)
	require.NoError(t, tree.Validate(tr))
}

func TestEmptyTree(t *testing.T) {
	tr := tree.New()
	assert.True(t, tr.Empty())
	assert.Nil(t, tr.RootLink())
	assert.Nil(t, tr.RootNode())
	require.NoError(t, tree.Validate(tr))
}

func TestForeignNodePanics(t *testing.T) {
	tr := mustTree(t, sampleTree)
	other := mustTree(t, sampleTree)
	assert.Panics(t, func() {
		tree.DeleteLeafNode(tr, tree.FindNode(other, "B"))
	})
	assert.Panics(t, func() {
		tree.Reroot(tr, other.RootLink())
	})
}

func TestValidateCatchesCorruption(t *testing.T) {
	// A hand made two node tree, first correct, then with the outer
	// pairing broken.
	tr := tree.New()
	a := tr.AppendNode()
	b := tr.AppendNode()
	la := tr.AppendLink()
	lb := tr.AppendLink()
	e := tr.AppendEdge()

	la.SetNode(a)
	la.SetEdge(e)
	la.SetNext(la)
	la.SetOuter(lb)
	lb.SetNode(b)
	lb.SetEdge(e)
	lb.SetNext(lb)
	lb.SetOuter(la)
	e.SetPrimaryLink(la)
	e.SetSecondaryLink(lb)
	a.SetPrimaryLink(la)
	b.SetPrimaryLink(lb)
	tr.SetRootLink(la)
	require.NoError(t, tree.Validate(tr))

	lb.SetOuter(lb)
	assert.Error(t, tree.Validate(tr))
}
