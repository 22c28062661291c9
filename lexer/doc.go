/*
Package lexer provides a small table-driven tokenizer for the textual
formats used in phylogenetics. A Lexer splits input text into classified
tokens (names, numbers, quoted strings, bracketed comments and tags, and
punctuation), tracking the line and column of every token.

The scanning behavior is controlled entirely by a Config value: which
characters belong to names, which bracket pairs delimit comments and tags,
how quoted strings are escaped, and so on. Concrete dialects (e.g. the
Newick tree notation) are plain Config values rather than subtypes.

Lexing never fails with an error return. An unrecognizable character
produces a single token of kind Error and ends the stream; callers discover
this by inspecting the last token or with Tokens.HasError.
*/
package lexer
