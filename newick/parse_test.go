package newick

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuftsBCB/phylo/tree"
)

const sampleTree = "((B,(D,E)C)A,F,(H,I)G)R;"

func TestParseBrokerOrder(t *testing.T) {
	b, err := ParseBroker(sampleTree)
	require.NoError(t, err)

	var names []string
	var depths []int
	var leaves []bool
	for _, el := range b {
		names = append(names, el.Name)
		depths = append(depths, el.Depth)
		leaves = append(leaves, el.IsLeaf)
	}
	assert.Equal(t, []string{"R", "G", "I", "H", "F", "A", "C", "E", "D", "B"}, names)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 1, 2, 3, 3, 2}, depths)
	assert.Equal(t,
		[]bool{false, false, true, true, true, false, false, true, true, true},
		leaves)
	assert.Equal(t, []int{3, 2, 0, 0, 0, 2, 2, 0, 0, 0}, b.Ranks())
}

func TestBrokerTreeNumbering(t *testing.T) {
	b, err := ParseBroker(sampleTree)
	require.NoError(t, err)
	tr, err := b.Tree()
	require.NoError(t, err)

	// Nodes are numbered in broker order, the root first.
	want := []string{"R", "G", "I", "H", "F", "A", "C", "E", "D", "B"}
	require.Equal(t, len(want), tr.NodeCount())
	for i, name := range want {
		assert.Equal(t, name, tr.NodeAt(i).Name, "node %d", i)
	}
	assert.Equal(t, 9, tr.EdgeCount())
	assert.Equal(t, 18, tr.LinkCount())
	assert.Equal(t, 0, tr.RootNode().Index())
	require.NoError(t, tree.Validate(tr))
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "(A,B)C;", []string{"A", "B", "C"}},
		{"underscores decode", "(sub_species,B)C;", []string{"sub species", "B", "C"}},
		{"quoted verbatim", "('has space','kept_underscore')R;",
			[]string{"has space", "kept_underscore", "R"}},
		{"doubled quote", "('it''s',B)R;", []string{"it's", "B", "R"}},
		{"unnamed stay empty", "(A,)R;", []string{"A", "", "R"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := ParseString(tc.input)
			require.NoError(t, err)
			var got []string
			for i := 0; i < tr.NodeCount(); i++ {
				got = append(got, tr.NodeAt(i).Name)
			}
			// Node order is broker order, so compare as sets.
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestParseBranchLengths(t *testing.T) {
	tr, err := ParseString("(A:1.5,B:-2,C:3e-2)R:7;")
	require.NoError(t, err)
	require.NoError(t, tree.Validate(tr))

	wants := map[string]float64{"A": 1.5, "B": -2, "C": 0.03}
	for name, want := range wants {
		n := tree.FindNode(tr, name)
		require.NotNil(t, n)
		assert.Equal(t, want, n.PrimaryLink().Edge().Length, "node %s", name)
	}
}

func TestParseCommentsAndTags(t *testing.T) {
	tr, err := ParseString("(A[first][second]:1.5{tag one},B)R[root note];")
	require.NoError(t, err)

	a := tree.FindNode(tr, "A")
	require.NotNil(t, a)
	if diff := cmp.Diff([]string{"first", "second"}, a.Comments); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"tag one"}, a.Tags)

	r := tree.FindNode(tr, "R")
	require.NotNil(t, r)
	assert.Equal(t, []string{"root note"}, r.Comments)
}

func TestParseDefaultNames(t *testing.T) {
	r := NewReader(strings.NewReader("((A,),);"))
	r.Config.UseDefaultNames = true
	tr, err := r.ReadTree()
	require.NoError(t, err)

	var names []string
	for i := 0; i < tr.NodeCount(); i++ {
		names = append(names, tr.NodeAt(i).Name)
	}
	assert.ElementsMatch(t,
		[]string{"Root Node", "Internal Node", "A", "Leaf Node", "Leaf Node"},
		names)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bare name", "A;"},
		{"no semicolon", "(A,B)"},
		{"unclosed subtree", "((A,B);"},
		{"too many closers", "(A,B));"},
		{"second group", "(A)(B);"},
		{"empty subtree", "();"},
		{"double label", "(A B,C);"},
		{"length without node", "(:1,:2):3 :4;"},
		{"lexer error", "(A,#);"},
		{"stray comma", "(A),B;"},
		{"unterminated comment", "(A[oops,B);"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestParseErrorMentionsPosition(t *testing.T) {
	_, err := ParseString("(A,\nB C)D;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2:3")
}

func TestLeadingCommentsDropped(t *testing.T) {
	tr, err := ParseString("[one][two](A,B)R;")
	require.NoError(t, err)
	r := tree.FindNode(tr, "R")
	require.NotNil(t, r)
	assert.Empty(t, r.Comments)
}

func TestReaderMultipleTrees(t *testing.T) {
	r := NewReader(strings.NewReader("(A,B)R;\n(C,D)S;\n"))
	trees, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, "R", trees[0].RootNode().Name)
	assert.Equal(t, "S", trees[1].RootNode().Name)
}

func TestReaderEOF(t *testing.T) {
	r := NewReader(strings.NewReader("(A,B)R; [trailing note]"))
	_, err := r.ReadTree()
	require.NoError(t, err)
	_, err = r.ReadTree()
	assert.ErrorContains(t, err, "EOF")
}

func TestBrokerValidate(t *testing.T) {
	bad := Broker{
		{Depth: 0, Name: "R"},
		{Depth: 2, Name: "A"},
	}
	_, err := bad.Tree()
	assert.Error(t, err)

	alsoBad := Broker{
		{Depth: 0, Name: "R"},
		{Depth: 1, Name: "A"},
		{Depth: 0, Name: "S"},
	}
	_, err = alsoBad.Tree()
	assert.Error(t, err)
}

func TestEmptyBroker(t *testing.T) {
	tr, err := Broker(nil).Tree()
	require.NoError(t, err)
	assert.True(t, tr.Empty())
}

func TestSingleElementBroker(t *testing.T) {
	b := Broker{{Depth: 0, Name: "only"}}
	tr, err := b.Tree()
	require.NoError(t, err)
	assert.Equal(t, 1, tr.NodeCount())
	assert.Equal(t, 0, tr.EdgeCount())
	require.NoError(t, tree.Validate(tr))
}
