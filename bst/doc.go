/*
Package bst provides the unbalanced binary search tree underlying package
scapegoat.

The tree stores keys of an arbitrary type, ordered by a client-supplied
comparison function. Keys act as their own values; the tree is a set which
tolerates duplicates (equal keys are routed to the left on insertion).

Nodes do not carry parent links. Whenever an ancestor is needed, it is found
by descending from the root again, comparing keys on the way. Every node is
owned by exactly one parent (or by the tree's root slot), so there are no
back edges in the structure.

Apart from the usual set operations, the package exports a small number of
structural primitives which balancing disciplines build upon:

  - Insert returns the freshly created node together with its depth,
  - Parent locates the parent of a node by key comparison,
  - RebuildSubtree replaces the contents of a subtree by a perfectly
    balanced rebuild, keeping the identity of the subtree's top node.

Trees are not safe for concurrent use. Traversal sequences read the live
structure; the tree must not be modified while a traversal is being ranged
over.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
