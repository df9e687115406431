package bst

// Node is a cell of a binary search tree. Clients may inspect nodes, but
// cannot modify them.
//
// A nil *Node denotes an empty subtree; all accessors are safe to call on nil.
type Node[K any] struct {
	key         K
	left, right *Node[K]
}

// Key returns the key stored in n.
func (n *Node[K]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Left returns the left child of n, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf is true for a non-nil node without children.
func (n *Node[K]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Size returns the number of nodes of the subtree rooted at n.
// Sizes are not cached; this walks the whole subtree.
func (n *Node[K]) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Size() + n.right.Size()
}

// Height returns the height of the subtree rooted at n. An empty subtree has
// height -1, a leaf has height 0.
func (n *Node[K]) Height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// rightmost returns the node holding the maximum key of n's subtree.
func (n *Node[K]) rightmost() *Node[K] {
	assert(n != nil, "rightmost called with nil node")
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *Node[K]) leftmost() *Node[K] {
	assert(n != nil, "leftmost called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n
}
