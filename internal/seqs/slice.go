package seqs

import "github.com/inoxlang/viewseq/internal/views"

var (
	_ views.RandomAccess[int, SlicePos[int]] = SlicePos[int]{}
	_ views.Writable[int]                    = SlicePos[int]{}
	_ views.Sized                            = Slice[int]{}
	_ views.Contiguous[int]                  = Slice[int]{}
)

// Slice is a Go slice seen as a range, its positions are indexes into the backing array.
type Slice[T any] []T

func WrapSlice[T any](s []T) Slice[T] {
	return Slice[T](s)
}

func NewSlice[T any](elements ...T) Slice[T] {
	return Slice[T](elements)
}

func (s Slice[T]) Begin() SlicePos[T] {
	return SlicePos[T]{s: s, i: 0}
}

func (s Slice[T]) End() SlicePos[T] {
	return SlicePos[T]{s: s, i: len(s)}
}

func (s Slice[T]) Size() int {
	return len(s)
}

func (s Slice[T]) Data() []T {
	return s
}

type SlicePos[T any] struct {
	s []T
	i int
}

func (p SlicePos[T]) Get() T {
	return p.s[p.i]
}

func (p SlicePos[T]) Set(v T) {
	p.s[p.i] = v
}

func (p SlicePos[T]) Index() int {
	return p.i
}

func (p SlicePos[T]) Next() SlicePos[T] {
	return SlicePos[T]{s: p.s, i: p.i + 1}
}

func (p SlicePos[T]) Prev() SlicePos[T] {
	return SlicePos[T]{s: p.s, i: p.i - 1}
}

func (p SlicePos[T]) Jump(n int) SlicePos[T] {
	return SlicePos[T]{s: p.s, i: p.i + n}
}

func (p SlicePos[T]) Distance(to SlicePos[T]) int {
	return to.i - p.i
}

// Equal only compares indexes, comparing positions of different slices is not meaningful.
func (p SlicePos[T]) Equal(other SlicePos[T]) bool {
	return p.i == other.i
}
