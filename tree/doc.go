/*
Package tree provides a rooted tree structure for phylogenetic data.

Nodes, edges and links live in three dense, index addressed collections
owned by a Tree. A Link is one directed half of an edge: every edge owns
two links facing each other through Outer, and the links around a node
chain into a cycle through Next. The root node has no link toward a
parent, so a tree always holds one more node than edges and exactly two
links per edge.

The link of a node, via PrimaryLink, points toward the root; for the root
node itself it is the designated first child and doubles as the tree's
RootLink. Rerooting therefore only rewrites this orientation and never
moves an element or changes an index. Mutations that remove elements
compact the collections and renumber the survivors in order.
*/
package tree
