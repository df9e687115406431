package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree over keys of type K.
//
// The zero value is not usable; create trees with New or NewOrdered.
type Tree[K any] struct {
	cfg   Config[K]
	root  *Node[K]
	count int // number of reachable nodes, verified by Check
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{cfg: cfg.normalized()}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K constraints.Ordered]() *Tree[K] {
	t, err := New(OrderedConfig[K]())
	assert(err == nil, "NewOrdered: ordered configuration did not validate")
	return t
}

// FromSorted creates a perfectly balanced tree from keys, which must be
// sorted in ascending order with respect to cfg.Compare.
// Time: O(n).
func FromSorted[K any](cfg Config[K], keys []K) (*Tree[K], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		if t.cfg.IsAbsent(k) {
			return nil, fmt.Errorf("%w: absent key at index %d", ErrInvalidArgument, i)
		}
		if i > 0 && t.cfg.Compare(keys[i-1], k) > 0 {
			return nil, fmt.Errorf("%w: keys not sorted at index %d", ErrInvalidArgument, i)
		}
	}
	t.root = buildBalanced(keys)
	t.count = len(keys)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of keys in the tree.
// Time: O(1)
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the height of the tree. The empty tree has height -1,
// a tree consisting of a single node has height 0.
// Time: O(n), the height is re-computed on every call.
func (t *Tree[K]) Height() int {
	if t == nil {
		return -1
	}
	return t.root.Height()
}

// Root exposes the root node for read-only inspection. Returns nil for an
// empty tree.
func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// Contains reports whether k is stored in the tree.
func (t *Tree[K]) Contains(k K) (bool, error) {
	_, found, err := t.Get(k)
	return found, err
}

// Get returns the key stored in the tree which compares equal to k.
// The second return value is false if no such key exists.
// Time: O(h)
func (t *Tree[K]) Get(k K) (K, bool, error) {
	var zero K
	if t.cfg.IsAbsent(k) {
		return zero, false, fmt.Errorf("%w: cannot look up absent key", ErrInvalidArgument)
	}
	for n := t.root; n != nil; {
		c := t.cfg.Compare(k, n.key)
		if c == 0 {
			return n.key, true, nil
		} else if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return zero, false, nil
}

// Add inserts k into the tree. Keys comparing equal to a node's key are routed
// into the node's left subtree. Add does not rebalance.
func (t *Tree[K]) Add(k K) error {
	_, _, err := t.Insert(k)
	return err
}

// Insert inserts k as a new leaf and returns that leaf together with its
// depth (the root has depth 0). Otherwise it behaves like Add.
// Recursive. Time: O(h)
func (t *Tree[K]) Insert(k K) (*Node[K], int, error) {
	if t.cfg.IsAbsent(k) {
		return nil, 0, fmt.Errorf("%w: cannot insert absent key", ErrInvalidArgument)
	}
	leaf := &Node[K]{key: k}
	depth := t.insert(&t.root, leaf, 0)
	t.count++
	return leaf, depth, nil
}

// insert hangs leaf into the subtree at slot, which is passed by reference.
// Returns the depth at which leaf has been inserted.
func (t *Tree[K]) insert(slot **Node[K], leaf *Node[K], depth int) int {
	n := *slot
	if n == nil {
		*slot = leaf
		return depth
	}
	if t.cfg.Compare(leaf.key, n.key) <= 0 {
		return t.insert(&n.left, leaf, depth+1)
	}
	return t.insert(&n.right, leaf, depth+1)
}

// Remove deletes a key comparing equal to k from the tree and reports whether
// such a key has been present.
//
// A node with two children is not unlinked itself: it receives the key of its
// in-order predecessor, and the predecessor node, which has no right child,
// is spliced out instead.
// Recursive. Time: O(h)
func (t *Tree[K]) Remove(k K) (bool, error) {
	if t.cfg.IsAbsent(k) {
		return false, fmt.Errorf("%w: cannot remove absent key", ErrInvalidArgument)
	}
	if !t.remove(&t.root, k) {
		return false, nil
	}
	t.count--
	return true, nil
}

func (t *Tree[K]) remove(slot **Node[K], k K) bool {
	n := *slot
	if n == nil {
		return false
	}
	if c := t.cfg.Compare(k, n.key); c < 0 {
		return t.remove(&n.left, k)
	} else if c > 0 {
		return t.remove(&n.right, k)
	}
	switch {
	case n.left == nil:
		*slot = n.right
	case n.right == nil:
		*slot = n.left
	default:
		n.key = n.left.rightmost().key
		removeRightmost(&n.left)
	}
	return true
}

// removeRightmost splices out the rightmost node of the subtree at slot.
func removeRightmost[K any](slot **Node[K]) {
	for (*slot).right != nil {
		slot = &(*slot).right
	}
	*slot = (*slot).left
}

// Minimum returns the smallest key of the tree. The second return value is
// false for an empty tree.
// Time: O(h)
func (t *Tree[K]) Minimum() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	return t.root.leftmost().key, true
}

// Maximum returns the largest key of the tree. The second return value is
// false for an empty tree.
// Time: O(h)
func (t *Tree[K]) Maximum() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	return t.root.rightmost().key, true
}

// IsBalanced is true if the size of the tree lies within [2^h, 2^(h+1)),
// which is the range of sizes a perfectly packed tree of height h may hold.
// The empty tree is balanced.
func (t *Tree[K]) IsBalanced() bool {
	h, size := t.Height(), t.Size()
	if h < 0 {
		return true
	}
	return 1<<h <= size && size < 1<<(h+1)
}
