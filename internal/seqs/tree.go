package seqs

import (
	"cmp"
	"fmt"

	"github.com/inoxlang/viewseq/internal/views"
	"github.com/tidwall/btree"
)

var (
	_ views.RandomAccess[int, TreePos[int]] = TreePos[int]{}
	_ views.Sized                           = Tree[int]{}
	_ views.BorrowedRange                   = Tree[int]{}
)

// Tree is a B-tree seen as a sorted range. Positions are ranks and are read-only: replacing an
// element could break the ordering.
type Tree[T any] struct {
	tree *btree.BTreeG[T]
}

func WrapTree[T any](tree *btree.BTreeG[T]) Tree[T] {
	return Tree[T]{tree: tree}
}

// NewTree returns a tree containing the given elements, duplicates are only stored once.
func NewTree[T cmp.Ordered](elements ...T) Tree[T] {
	tree := btree.NewBTreeG(cmp.Less[T])
	for _, e := range elements {
		tree.Set(e)
	}
	return Tree[T]{tree: tree}
}

func (t Tree[T]) BTree() *btree.BTreeG[T] {
	return t.tree
}

func (t Tree[T]) Begin() TreePos[T] {
	return TreePos[T]{tree: t.tree, rank: 0}
}

func (t Tree[T]) End() TreePos[T] {
	return TreePos[T]{tree: t.tree, rank: t.tree.Len()}
}

// Size takes a constant time, the B-tree keeps track of its length.
func (t Tree[T]) Size() int {
	return t.tree.Len()
}

func (t Tree[T]) BorrowedRange() bool {
	return true
}

type TreePos[T any] struct {
	tree *btree.BTreeG[T]
	rank int
}

// Get returns the element at the position, the access is logarithmic in the size of the tree.
func (p TreePos[T]) Get() T {
	item, ok := p.tree.GetAt(p.rank)
	if !ok {
		panic(fmt.Errorf("no element at rank %d", p.rank))
	}
	return item
}

func (p TreePos[T]) Rank() int {
	return p.rank
}

func (p TreePos[T]) Next() TreePos[T] {
	return TreePos[T]{tree: p.tree, rank: p.rank + 1}
}

func (p TreePos[T]) Prev() TreePos[T] {
	return TreePos[T]{tree: p.tree, rank: p.rank - 1}
}

func (p TreePos[T]) Jump(n int) TreePos[T] {
	return TreePos[T]{tree: p.tree, rank: p.rank + n}
}

func (p TreePos[T]) Distance(to TreePos[T]) int {
	return to.rank - p.rank
}

func (p TreePos[T]) Equal(other TreePos[T]) bool {
	return p.tree == other.tree && p.rank == other.rank
}
