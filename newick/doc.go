/*
Package newick reads and writes trees in the Newick notation.

Reading happens in two passes. The text is first tokenized and parsed
into a Broker, a flat list of elements in root first order carrying the
depth, label, branch length, comments and tags of each node. The broker
is then materialized into a tree.Tree. Writing runs the same two passes
in reverse. The broker is exposed so callers can work on the flat form
directly, or feed trees from other sources through it.

The notation follows the common Newick conventions: a tree is a nested
list of parenthesized subtrees terminated by a semicolon, labels may be
quoted, underscores in unquoted labels stand for spaces, a branch length
follows its node after a colon, comments sit in square brackets, and
tags in curly braces.
*/
package newick
