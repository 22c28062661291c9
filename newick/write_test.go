package newick

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuftsBCB/phylo/tree"
)

func TestTreeStringRoundTrip(t *testing.T) {
	tr, err := ParseString(sampleTree)
	require.NoError(t, err)
	assert.Equal(t, sampleTree, TreeString(tr))
}

func TestWriteBranchLengths(t *testing.T) {
	tr, err := ParseString("((B:2.0,(D:2.0,E:2.0)C:2.0)A:2.0,F:2.0,(H:2.0,I:2.0)G:2.0)R:2.0;")
	require.NoError(t, err)

	conf := DefaultConfig()
	conf.PrintBranchLengths = true
	got := BrokerString(TreeBroker(tr), conf)

	// The root has no edge above it, so its length reads zero.
	assert.Equal(t, "((B:2,(D:2,E:2)C:2)A:2,F:2,(H:2,I:2)G:2)R:0;", got)
}

func TestWritePrecision(t *testing.T) {
	tr, err := ParseString("(A:0.123456789,B:12345678)R;")
	require.NoError(t, err)

	conf := DefaultConfig()
	conf.PrintBranchLengths = true
	got := BrokerString(TreeBroker(tr), conf)
	assert.Equal(t, "(A:0.123457,B:1.23457e+07)R:0;", got)

	conf.Precision = 3
	got = BrokerString(TreeBroker(tr), conf)
	assert.Equal(t, "(A:0.123,B:1.23e+07)R:0;", got)
}

func TestWriteCommentsAndTags(t *testing.T) {
	tr, err := ParseString("(A[note]{7},B)R;")
	require.NoError(t, err)

	conf := DefaultConfig()
	conf.PrintComments = true
	conf.PrintTags = true
	got := BrokerString(TreeBroker(tr), conf)
	assert.Equal(t, "(A[note]{7},B)R;", got)
}

func TestWriteSpacesEncode(t *testing.T) {
	tr, err := ParseString("('my name',B)R;")
	require.NoError(t, err)
	assert.Equal(t, "(my_name,B)R;", TreeString(tr))
}

func TestWriteBareTopology(t *testing.T) {
	tr, err := ParseString(sampleTree)
	require.NoError(t, err)
	got := BrokerString(TreeBroker(tr), Config{})
	assert.Equal(t, "((,(,)),,(,));", got)
}

func TestWriterLines(t *testing.T) {
	first, err := ParseString("(A,B)R;")
	require.NoError(t, err)
	second, err := ParseString("(C,D)S;")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteAll([]*tree.Tree{first, second}))
	assert.Equal(t, "(A,B)R;\n(C,D)S;\n", buf.String())
}

func TestWriteAfterMutation(t *testing.T) {
	tr, err := ParseString(sampleTree)
	require.NoError(t, err)

	tree.Reroot(tr, tree.FindNode(tr, "C").PrimaryLink())
	require.NoError(t, tree.Validate(tr))
	assert.Equal(t, "(((F,(H,I)G)R,B)A,D,E)C;", TreeString(tr))

	tree.DeleteLeafNode(tr, tree.FindNode(tr, "D"))
	assert.Equal(t, "(((F,(H,I)G)R,B)A,E)C;", TreeString(tr))
}

func TestRoundTripStable(t *testing.T) {
	inputs := []string{
		sampleTree,
		"(A:1.5,B:2.5)R;",
		"((a_b,c)'d e',f)g;",
		"(A[x]{1},(B,C)[y])R;",
	}
	conf := DefaultConfig()
	conf.PrintBranchLengths = true
	conf.PrintComments = true
	conf.PrintTags = true

	for _, in := range inputs {
		first, err := ParseString(in)
		require.NoError(t, err, in)
		out := BrokerString(TreeBroker(first), conf)
		second, err := ParseString(out)
		require.NoError(t, err, out)
		assert.Equal(t, out, BrokerString(TreeBroker(second), conf), "input %s", in)
		require.NoError(t, tree.Validate(second), in)
	}
}
