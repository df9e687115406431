package bst

import "fmt"

// Balance rebuilds the whole tree to perfect balance. Keys are collected
// in-order and re-distributed by splitting at the midpoint index, which
// results in a tree of height floor(log2(n)).
// Time: O(n)
func (t *Tree[K]) Balance() {
	if t.IsEmpty() {
		return
	}
	keys := flatten(t.root, make([]K, 0, t.count))
	t.root = buildBalanced(keys)
	tracer().Debugf("bst: rebuilt tree of size %d", len(keys))
}

// RebuildSubtree rebuilds the subtree rooted at n to perfect balance.
//
// The replacement subtree is built separately, then its top node's contents
// are moved into n. n therefore keeps its identity (and its place in the
// tree), while its key and children change.
// Time: O(size of subtree)
func (t *Tree[K]) RebuildSubtree(n *Node[K]) {
	if n == nil {
		return
	}
	keys := flatten(n, make([]K, 0, 16))
	balanced := buildBalanced(keys)
	n.key, n.left, n.right = balanced.key, balanced.left, balanced.right
	tracer().Debugf("bst: rebuilt subtree of size %d", len(keys))
}

// Parent finds the parent node of n by descending from the root. Nodes do not
// store parent links, so every call costs O(h) key comparisons (more if the
// tree holds runs of equal keys).
//
// Parent fails with ErrInvalidArgument for a nil node and with
// ErrInvariantViolation if n is the root or is not part of the tree.
func (t *Tree[K]) Parent(n *Node[K]) (*Node[K], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: parent of nil node", ErrInvalidArgument)
	}
	if p := t.findParent(t.root, n); p != nil {
		return p, nil
	}
	tracer().Errorf("bst: node %v has no parent in tree", n.key)
	return nil, fmt.Errorf("%w: node %v not reachable as a child", ErrInvariantViolation, n.key)
}

// findParent searches the subtree at p for the parent of target. Equal keys
// may end up on both sides of a node after a rebuild, therefore both
// subtrees are searched when keys compare equal.
func (t *Tree[K]) findParent(p, target *Node[K]) *Node[K] {
	for p != nil {
		if p.left == target || p.right == target {
			return p
		}
		c := t.cfg.Compare(target.key, p.key)
		if c < 0 {
			p = p.left
		} else if c > 0 {
			p = p.right
		} else {
			if q := t.findParent(p.left, target); q != nil {
				return q
			}
			p = p.right
		}
	}
	return nil
}

// flatten appends the keys of the subtree at n to keys, in-order.
func flatten[K any](n *Node[K], keys []K) []K {
	if n == nil {
		return keys
	}
	keys = flatten(n.left, keys)
	keys = append(keys, n.key)
	return flatten(n.right, keys)
}

// buildBalanced creates a subtree of height floor(log2(len(keys))) from a
// sorted slice. The lower half goes to the left, the upper half to the right.
func buildBalanced[K any](keys []K) *Node[K] {
	if len(keys) == 0 {
		return nil
	}
	mid := (len(keys) - 1) / 2
	return &Node[K]{
		key:   keys[mid],
		left:  buildBalanced(keys[:mid]),
		right: buildBalanced(keys[mid+1:]),
	}
}
