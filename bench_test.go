package scapegoat

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/npillmayer/scapegoat/bst"
	"github.com/petar/GoLLRB/llrb"
)

const benchKeys = 10000

func benchInput(sorted bool) []int {
	if sorted {
		keys := make([]int, benchKeys)
		for i := range keys {
			keys[i] = i
		}
		return keys
	}
	return rand.New(rand.NewSource(99)).Perm(benchKeys)
}

func benchInsert(b *testing.B, sorted bool, insert func(keys []int)) {
	keys := benchInput(sorted)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		insert(keys)
	}
}

func BenchmarkInsertRandomScapegoat(b *testing.B) {
	benchInsert(b, false, func(keys []int) {
		tree := NewOrdered[int]()
		for _, k := range keys {
			_ = tree.Add(k)
		}
	})
}

func BenchmarkInsertSortedScapegoat(b *testing.B) {
	benchInsert(b, true, func(keys []int) {
		tree := NewOrdered[int]()
		for _, k := range keys {
			_ = tree.Add(k)
		}
	})
}

// Unbalanced inserts degrade to a list for sorted input, thus random only.
func BenchmarkInsertRandomPlainBST(b *testing.B) {
	benchInsert(b, false, func(keys []int) {
		tree := bst.NewOrdered[int]()
		for _, k := range keys {
			_ = tree.Add(k)
		}
	})
}

func BenchmarkInsertRandomBTree(b *testing.B) {
	benchInsert(b, false, func(keys []int) {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
	})
}

func BenchmarkInsertSortedBTree(b *testing.B) {
	benchInsert(b, true, func(keys []int) {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
	})
}

func BenchmarkInsertRandomRedBlack(b *testing.B) {
	benchInsert(b, false, func(keys []int) {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
	})
}

func BenchmarkInsertSortedRedBlack(b *testing.B) {
	benchInsert(b, true, func(keys []int) {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
	})
}

func BenchmarkInsertRandomLLRB(b *testing.B) {
	benchInsert(b, false, func(keys []int) {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	})
}

func BenchmarkInsertSortedLLRB(b *testing.B) {
	benchInsert(b, true, func(keys []int) {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	})
}

func BenchmarkLookupScapegoat(b *testing.B) {
	tree := NewOrdered[int]()
	for _, k := range benchInput(true) {
		_ = tree.Add(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Contains(i % benchKeys)
	}
}

func BenchmarkLookupBTree(b *testing.B) {
	tree := btree.NewOrderedG[int](32)
	for _, k := range benchInput(true) {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Has(i % benchKeys)
	}
}

func BenchmarkLookupRedBlack(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for _, k := range benchInput(true) {
		tree.Put(k, struct{}{})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Get(i % benchKeys)
	}
}

func BenchmarkLookupLLRB(b *testing.B) {
	tree := llrb.New()
	for _, k := range benchInput(true) {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Has(llrb.Int(i % benchKeys))
	}
}

func BenchmarkDeleteHalfScapegoat(b *testing.B) {
	keys := benchInput(false)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree, _ := FromSorted(bst.OrderedConfig[int](), benchInput(true))
		b.StartTimer()
		for _, k := range keys[:benchKeys/2+1] {
			_, _ = tree.Remove(k)
		}
	}
}
