package scapegoat

import (
	"fmt"
	"iter"

	"github.com/npillmayer/scapegoat/bst"
)

// Traversable is the export interface of trees: anything which is able to
// produce its keys in pre-, in- and post-order. Both Tree and bst.Tree
// implement it.
type Traversable[K any] interface {
	Size() int
	Height() int
	Preorder() iter.Seq[K]
	Inorder() iter.Seq[K]
	Postorder() iter.Seq[K]
}

// Equal reports whether two trees are structurally equal: same size, same
// height and identical keys in pre-, in- and post-order. This implies that
// both trees have the same shape.
func Equal[K comparable](a, b Traversable[K]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Size() != b.Size() || a.Height() != b.Height() {
		return false
	}
	return sameSeq(a.Preorder(), b.Preorder()) &&
		sameSeq(a.Inorder(), b.Inorder()) &&
		sameSeq(a.Postorder(), b.Postorder())
}

// SameValues reports whether two trees hold the same keys, regardless of
// their shapes.
func SameValues[K comparable](a, b Traversable[K]) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: cannot compare with nil tree", ErrInvalidArgument)
	}
	if a.Size() != b.Size() {
		return false, nil
	}
	return sameSeq(a.Inorder(), b.Inorder()), nil
}

func sameSeq[K comparable](s1, s2 iter.Seq[K]) bool {
	next, stop := iter.Pull(s2)
	defer stop()
	for k1 := range s1 {
		k2, ok := next()
		if !ok || k1 != k2 {
			return false
		}
	}
	_, more := next()
	return !more
}

var (
	_ Traversable[int] = (*Tree[int])(nil)
	_ Traversable[int] = (*bst.Tree[int])(nil)
)
