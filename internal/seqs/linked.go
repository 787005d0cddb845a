package seqs

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/inoxlang/viewseq/internal/views"
)

var (
	_ views.Bidirectional[int, LinkedPos[int]] = LinkedPos[int]{}
	_ views.Writable[int]                      = LinkedPos[int]{}
	_ views.Sized                              = Linked[int]{}
	_ views.BorrowedRange                      = Linked[int]{}
)

// Linked is a doubly linked list seen as a range. The list stores untyped values,
// all of them should be of type T.
type Linked[T any] struct {
	list *doublylinkedlist.List
}

func WrapLinked[T any](list *doublylinkedlist.List) Linked[T] {
	return Linked[T]{list: list}
}

func NewLinked[T any](elements ...T) Linked[T] {
	list := doublylinkedlist.New()
	for _, e := range elements {
		list.Add(e)
	}
	return Linked[T]{list: list}
}

func (l Linked[T]) List() *doublylinkedlist.List {
	return l.list
}

func (l Linked[T]) Begin() LinkedPos[T] {
	it := l.list.Iterator()
	it.Next()
	return LinkedPos[T]{list: l.list, it: it}
}

func (l Linked[T]) End() LinkedPos[T] {
	it := l.list.Iterator()
	it.End()
	return LinkedPos[T]{list: l.list, it: it}
}

func (l Linked[T]) Size() int {
	return l.list.Size()
}

// BorrowedRange returns true: positions refer to the list, not to the Linked value.
func (l Linked[T]) BorrowedRange() bool {
	return true
}

// LinkedPos wraps a list iterator, the iterator is copied before each move.
type LinkedPos[T any] struct {
	list *doublylinkedlist.List
	it   doublylinkedlist.Iterator
}

func (p LinkedPos[T]) Get() T {
	return p.it.Value().(T)
}

// Set replaces the referenced element, it takes a time linear in the index.
func (p LinkedPos[T]) Set(v T) {
	p.list.Set(p.it.Index(), v)
}

func (p LinkedPos[T]) Index() int {
	return p.it.Index()
}

func (p LinkedPos[T]) Next() LinkedPos[T] {
	p.it.Next()
	return p
}

func (p LinkedPos[T]) Prev() LinkedPos[T] {
	p.it.Prev()
	return p
}

func (p LinkedPos[T]) Equal(other LinkedPos[T]) bool {
	return p.list == other.list && p.it.Index() == other.it.Index()
}
