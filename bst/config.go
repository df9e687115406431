package bst

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Config configures a binary search tree.
type Config[K any] struct {
	// Compare orders keys. It returns a negative number if a < b, zero if
	// a == b and a positive number if a > b. Compare is required.
	Compare func(a, b K) int
	// IsAbsent reports whether a key is the "absent" sentinel, which must not
	// be stored in a tree. If IsAbsent is nil, nil pointers, interfaces, maps,
	// slices, channels and functions are considered absent.
	IsAbsent func(k K) bool
}

// OrderedConfig returns a configuration for keys with a natural order.
// NaN is the absent sentinel for floating point keys, as it cannot take part
// in a total order. Other ordered keys are never absent.
func OrderedConfig[K constraints.Ordered]() Config[K] {
	return Config[K]{
		Compare: cmp.Compare[K],
		IsAbsent: func(k K) bool {
			return k != k // NaN
		},
	}
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.IsAbsent == nil {
		cfg.IsAbsent = isNilKey[K]
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return nil
}

func isNilKey[K any](k K) bool {
	v := reflect.ValueOf(any(k))
	if !v.IsValid() { // nil interface
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
