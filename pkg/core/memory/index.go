package memory

import (
	"algobench/pkg/common"

	"github.com/google/btree"
)

func byID(a, b common.Record) bool {
	return a.ID < b.ID
}

// Index is a balanced B-tree over records ordered by id. It plays the
// reference role against the unbalanced BST: same overwrite-on-duplicate
// contract, logarithmic height regardless of insertion order.
type Index struct {
	tree *btree.BTreeG[common.Record]
}

func NewIndex(degree int) *Index {
	return &Index{
		tree: btree.NewG(degree, byID),
	}
}

// Put inserts r, replacing any record with the same id.
func (idx *Index) Put(r common.Record) {
	idx.tree.ReplaceOrInsert(r)
}

func (idx *Index) Get(id int) (common.Record, bool) {
	return idx.tree.Get(common.Record{ID: id})
}

func (idx *Index) Len() int {
	return idx.tree.Len()
}

// Ascend walks records in id order until fn returns false.
func (idx *Index) Ascend(fn func(r common.Record) bool) {
	idx.tree.Ascend(fn)
}

func (idx *Index) Size() int {
	return idx.tree.Len()
}

func (idx *Index) Type() string {
	return "BTree"
}
