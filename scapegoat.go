package scapegoat

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"math"

	"github.com/npillmayer/scapegoat/bst"
	"golang.org/x/exp/constraints"
)

// Tree is an ordered set of keys, kept in a scapegoat tree.
//
// Keys of type K are ordered by a comparison function given in a bst.Config.
// Equal keys may be added more than once; the tree does not de-duplicate.
//
//	Operation     |   Amortized     |  Worst case
//	--------------+-----------------+-----------
//	Contains/Get  |   O(log n)      |  O(log n)
//	Add           |   O(log n)      |  O(n)
//	Remove        |   O(log n)      |  O(n)
//
// A Tree must be created by New or NewOrdered. Trees are not safe for
// concurrent use.
type Tree[K any] struct {
	base    *bst.Tree[K]
	maxSize int // largest size since the last complete rebuild
}

// Height bound factor: a new node deeper than log_{3/2}(maxSize) triggers a
// rebuild. A child carrying more than 2/3 of its parent's nodes makes the
// parent a scapegoat.
const (
	alphaNum = 2
	alphaDen = 3
)

var logInvAlpha = math.Log(float64(alphaDen) / float64(alphaNum))

// New creates an empty tree with validated configuration.
func New[K any](cfg bst.Config[K]) (*Tree[K], error) {
	base, err := bst.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Tree[K]{base: base}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{base: bst.NewOrdered[K]()}
}

// FromSorted creates a perfectly balanced tree from keys, which must be sorted
// in ascending order.
func FromSorted[K any](cfg bst.Config[K], keys []K) (*Tree[K], error) {
	base, err := bst.FromSorted(cfg, keys)
	if err != nil {
		return nil, err
	}
	return &Tree[K]{base: base, maxSize: base.Size()}, nil
}

// heightBound returns log_{3/2}(n).
func heightBound(n int) float64 {
	return math.Log(float64(n)) / logInvAlpha
}

// Add inserts k into the tree.
//
// If the new node's depth exceeds log_{3/2}(MaxSizeSeen()), Add searches for
// a scapegoat among the ancestors of the new node and rebuilds the
// scapegoat's subtree to perfect balance. After Add returns, the height of the
// tree does not exceed log_{3/2}(MaxSizeSeen()).
//
// Add fails with ErrInvalidArgument for an absent key, leaving the tree
// unchanged.
func (t *Tree[K]) Add(k K) error {
	if t.base.Config().IsAbsent(k) {
		return fmt.Errorf("%w: cannot insert absent key", ErrInvalidArgument)
	}
	t.maxSize++
	n, depth, err := t.base.Insert(k)
	if err != nil {
		t.maxSize--
		return err
	}
	// The tree was within bound before, thus only the new node may be too deep.
	if float64(depth) <= heightBound(t.maxSize) {
		return nil
	}
	goat, err := t.findScapegoat(n)
	if err != nil {
		T().Errorf("scapegoat: cannot rebalance after inserting %v: %v", k, err)
		return err
	}
	T().Debugf("scapegoat: depth %d > %.2f, rebuilding at %v", depth, heightBound(t.maxSize), goat.Key())
	t.base.RebuildSubtree(goat)
	return nil
}

// findScapegoat walks upwards from leaf as long as the current node holds at
// most 2/3 of its parent's nodes. The walk stops at the first child which is
// too heavy; its parent is the scapegoat.
//
// Parents are found by re-descending from the root. The size of a parent is
// derived from the size of the current node and its sibling, so every node of
// the scapegoat's subtree is counted at most once.
func (t *Tree[K]) findScapegoat(leaf *bst.Node[K]) (*bst.Node[K], error) {
	n, size := leaf, 1
	for n != t.base.Root() {
		p, err := t.base.Parent(n)
		if err != nil {
			return nil, err
		}
		sibling := p.Left()
		if sibling == n {
			sibling = p.Right()
		}
		psize := 1 + size + sibling.Size()
		if alphaDen*size > alphaNum*psize {
			return p, nil
		}
		n, size = p, psize
	}
	// Floating point rounding of the height bound may let the walk reach
	// the root without finding a heavy child.
	T().Infof("scapegoat: no unbalanced ancestor found, rebuilding from root")
	return n, nil
}

// Remove deletes a key comparing equal to k from the tree and reports whether
// such a key has been present.
//
// If the tree has shrunk to less than half of MaxSizeSeen(), the whole tree
// is rebuilt to perfect balance and MaxSizeSeen() is reset to Size().
func (t *Tree[K]) Remove(k K) (bool, error) {
	removed, err := t.base.Remove(k)
	if err != nil || !removed {
		return removed, err
	}
	if t.maxSize > 2*t.base.Size() {
		T().Debugf("scapegoat: size %d < %d/2, rebuilding tree", t.base.Size(), t.maxSize)
		t.base.Balance()
		t.maxSize = t.base.Size()
	}
	return true, nil
}

// MaxSizeSeen returns the largest size the tree has had since its last
// complete rebuild triggered by a deletion.
func (t *Tree[K]) MaxSizeSeen() int {
	return t.maxSize
}

// Contains reports whether k is stored in the tree.
func (t *Tree[K]) Contains(k K) (bool, error) {
	return t.base.Contains(k)
}

// Get returns the stored key comparing equal to k. The second return value is
// false if no such key exists.
func (t *Tree[K]) Get(k K) (K, bool, error) {
	return t.base.Get(k)
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.base.IsEmpty()
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	return t.base.Size()
}

// Height returns the height of the tree; -1 for an empty tree.
// The height is re-computed on every call, which is O(n).
func (t *Tree[K]) Height() int {
	return t.base.Height()
}

// Minimum returns the smallest key, or false for an empty tree.
func (t *Tree[K]) Minimum() (K, bool) {
	return t.base.Minimum()
}

// Maximum returns the largest key, or false for an empty tree.
func (t *Tree[K]) Maximum() (K, bool) {
	return t.base.Maximum()
}

// IsBalanced is true if the tree is packed as densely as a tree of its
// height can be (see bst.Tree.IsBalanced).
func (t *Tree[K]) IsBalanced() bool {
	return t.base.IsBalanced()
}

// Balance rebuilds the whole tree to perfect balance. MaxSizeSeen() is not
// affected.
func (t *Tree[K]) Balance() {
	t.base.Balance()
}

// Preorder returns an iterator over all keys in pre-order.
// The tree must not be modified while ranging over the sequence.
func (t *Tree[K]) Preorder() iter.Seq[K] {
	return t.base.Preorder()
}

// Inorder returns an iterator over all keys in ascending order.
// The tree must not be modified while ranging over the sequence.
func (t *Tree[K]) Inorder() iter.Seq[K] {
	return t.base.Inorder()
}

// Postorder returns an iterator over all keys in post-order.
// The tree must not be modified while ranging over the sequence.
func (t *Tree[K]) Postorder() iter.Seq[K] {
	return t.base.Postorder()
}

// Root exposes the root node for read-only inspection; nil for an empty tree.
func (t *Tree[K]) Root() *bst.Node[K] {
	return t.base.Root()
}

// Check validates the structural invariants of the underlying tree and the
// height bound of the scapegoat scheme.
func (t *Tree[K]) Check() error {
	if err := t.base.Check(); err != nil {
		return err
	}
	if h := t.base.Height(); h > 0 && float64(h) > heightBound(t.maxSize) {
		return fmt.Errorf("%w: height %d exceeds bound %.2f", ErrInvariantViolation, h, heightBound(t.maxSize))
	}
	return nil
}
