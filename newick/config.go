package newick

import "github.com/TuftsBCB/phylo/lexer"

// Config controls parsing and printing. The zero value prints bare
// topology only; DefaultConfig is what most callers want.
type Config struct {
	// PrintNames writes node labels, with spaces turned back into
	// underscores.
	PrintNames bool

	// PrintBranchLengths writes a colon and the branch length after each
	// node.
	PrintBranchLengths bool

	// PrintComments writes the comments of each node in square brackets.
	PrintComments bool

	// PrintTags writes the tags of each node in curly braces.
	PrintTags bool

	// Precision is the number of significant digits used for branch
	// lengths.
	Precision int

	// UseDefaultNames fills the name of unnamed nodes while parsing,
	// using the three defaults below.
	UseDefaultNames bool

	DefaultLeafName     string
	DefaultInternalName string
	DefaultRootName     string
}

// DefaultConfig returns the configuration used when none is given:
// labels only, six digit precision, no default names.
func DefaultConfig() Config {
	return Config{
		PrintNames:          true,
		Precision:           6,
		DefaultLeafName:     "Leaf Node",
		DefaultInternalName: "Internal Node",
		DefaultRootName:     "Root Node",
	}
}

// newickLexer scans the Newick dialect: labels may contain the usual
// extra symbols, ':' introduces a branch length, '[]' wraps comments and
// '{}' wraps tags.
var newickLexer = lexer.New(lexer.Config{
	Symbols:          "_-.|",
	Quotes:           `'"`,
	CommentOpen:      '[',
	CommentClose:     ']',
	TagOpen:          '{',
	TagClose:         '}',
	NumberPrefix:     ':',
	GlueSignToNumber: true,
	TrimQuotes:       true,
	DoubledQuotes:    true,
})
