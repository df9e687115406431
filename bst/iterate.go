package bst

import "iter"

// Preorder returns an iterator over all keys in pre-order (node, left, right).
//
// The sequence is lazy and may be ranged over any number of times; every
// range walks the tree as it is at that moment. The tree must not be modified
// while a range over the sequence is in progress.
func (t *Tree[K]) Preorder() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t != nil {
			preorder(t.root, yield)
		}
	}
}

// Inorder returns an iterator over all keys in ascending order
// (left, node, right). See Preorder for restrictions.
func (t *Tree[K]) Inorder() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t != nil {
			inorder(t.root, yield)
		}
	}
}

// Postorder returns an iterator over all keys in post-order
// (left, right, node). See Preorder for restrictions.
func (t *Tree[K]) Postorder() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t != nil {
			postorder(t.root, yield)
		}
	}
}

// ForEachNode walks the nodes of the tree in-order together with their depth.
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEachNode(fn func(n *Node[K], depth int) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachNode(t.root, 0, fn)
}

func preorder[K any](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.key) && preorder(n.left, yield) && preorder(n.right, yield)
}

func inorder[K any](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.key) && inorder(n.right, yield)
}

func postorder[K any](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return postorder(n.left, yield) && postorder(n.right, yield) && yield(n.key)
}

func forEachNode[K any](n *Node[K], depth int, fn func(*Node[K], int) bool) bool {
	if n == nil {
		return true
	}
	return forEachNode(n.left, depth+1, fn) && fn(n, depth) && forEachNode(n.right, depth+1, fn)
}
