package bst

import "fmt"

// Check validates structural tree invariants:
//
//   - no node holds an absent key,
//   - keys are ordered, i.e. an in-order walk is non-decreasing and every key
//     in a right subtree is not less than the key of its ancestor,
//   - the cached node count matches the number of reachable nodes.
//
// Check is intended for tests and debugging; it walks the whole tree.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidArgument)
	}
	var prev *Node[K]
	var count int
	var err error
	t.ForEachNode(func(n *Node[K], depth int) bool {
		count++
		if t.cfg.IsAbsent(n.key) {
			err = fmt.Errorf("%w: absent key at depth %d", ErrInvariantViolation, depth)
			return false
		}
		if prev != nil && t.cfg.Compare(prev.key, n.key) > 0 {
			err = fmt.Errorf("%w: keys out of order (%v > %v)", ErrInvariantViolation, prev.key, n.key)
			return false
		}
		prev = n
		return true
	})
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrInvariantViolation, count, t.count)
	}
	return nil
}
