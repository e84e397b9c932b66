package core

import (
	"algobench/pkg/common"
	"algobench/pkg/core/structure"
)

// Index hides the differences between the BST, the B-tree and the learned index.
type Index interface {
	Get(id int) (common.Record, bool)
	Size() int
	Type() string // "BST", "BTree", "Learned-RMI"
}

// BSTIndex adapts a record-valued BST to Index.
type BSTIndex struct {
	*structure.BST[common.Record]
}

func (b BSTIndex) Get(id int) (common.Record, bool) { return b.Search(id) }
func (b BSTIndex) Size() int                        { return b.Len() }
func (b BSTIndex) Type() string                     { return "BST" }

// Agree reports whether every index returns want for id.
func Agree(id int, want common.Record, indexes ...Index) bool {
	for _, idx := range indexes {
		got, ok := idx.Get(id)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Ascending reports whether walk visits exactly n ids in strictly increasing
// order. walk must stop as soon as visit returns false.
func Ascending(n int, walk func(visit func(id int) bool)) bool {
	count, prev, ok := 0, 0, true
	walk(func(id int) bool {
		if count > 0 && id <= prev {
			ok = false
			return false
		}
		prev = id
		count++
		return true
	})
	return ok && count == n
}
