package views

import (
	"fmt"
	"iter"
	"reflect"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// DropView is a view skipping the first count elements of a base view of type V. Nothing is
// computed at construction: Begin advances the begin position of the base at each call, so the
// view stays correct if the base changes.
//
// DropView has no Size method, SizedDropView has one.
type DropView[T any, P Iterator[T, P], V View[T, P]] struct {
	base  V
	count int
}

// NewDropView returns a view skipping the first count elements of base, count should be
// non-negative.
func NewDropView[T any, P Iterator[T, P], V View[T, P]](base V, count int) DropView[T, P, V] {
	if count < 0 {
		panic(ErrNegativeCount)
	}
	return DropView[T, P, V]{base: base, count: count}
}

// Drop returns a view skipping the first n elements of r, r is first turned into a view by All.
func Drop[T any, P Iterator[T, P], R Range[T, P], N constraints.Integer](r R, n N) DropView[T, P, View[T, P]] {
	return NewDropView[T, P](All[T, P](r), toCount(n))
}

func toCount[N constraints.Integer](n N) int {
	count, err := safecast.Conv[int](n)
	if err != nil {
		panic(fmt.Errorf("invalid count %v: %w", n, err))
	}
	if count < 0 {
		panic(ErrNegativeCount)
	}
	return count
}

func (d DropView[T, P, V]) Base() V {
	return d.base
}

func (d DropView[T, P, V]) Count() int {
	return d.count
}

// Begin returns the begin position of the base advanced by count, or the end position of the
// base if it has less than count elements.
func (d DropView[T, P, V]) Begin() P {
	begin, _ := Advance[T, P](d.base.Begin(), d.count, d.base.End())
	return begin
}

func (d DropView[T, P, V]) End() P {
	return d.base.End()
}

func (d DropView[T, P, V]) CBegin() ReadOnly[T, P] {
	return MakeReadOnly[T, P](d.Begin())
}

func (d DropView[T, P, V]) CEnd() ReadOnly[T, P] {
	return d.base.CEnd()
}

func (d DropView[T, P, V]) Empty() bool {
	if size, ok := SizeOf(d.base); ok {
		return size <= d.count
	}
	return d.Begin().Equal(d.End())
}

// reportSize returns max(0, size of base - count).
func (d DropView[T, P, V]) reportSize() (int, bool) {
	size, ok := SizeOf(d.base)
	if !ok {
		return 0, false
	}
	return max(0, size-d.count), true
}

func (d DropView[T, P, V]) Caps() Caps {
	return d.base.Caps() & (SizedCap | ConstTraversableCap)
}

// BorrowedRange returns true if the base is borrowed. When V is an interface type the dynamic
// base is queried.
func (d DropView[T, P, V]) BorrowedRange() bool {
	if reflect.TypeFor[V]().Kind() == reflect.Interface {
		return Borrowed(d.base)
	}
	return IsBorrowed[V]()
}

func (d DropView[T, P, V]) Values() iter.Seq[T] {
	return values[T, P](d.Begin(), d.End())
}

func (DropView[T, P, V]) isView() {}

// SizedDropView is a DropView over a sized view.
type SizedDropView[T any, P Iterator[T, P], V SizedView[T, P]] struct {
	DropView[T, P, V]
}

// DropSized is like Drop but takes a sized view and returns a sized view.
func DropSized[T any, P Iterator[T, P], V SizedView[T, P], N constraints.Integer](base V, n N) SizedDropView[T, P, V] {
	return SizedDropView[T, P, V]{DropView: NewDropView[T, P](base, toCount(n))}
}

// Size returns max(0, size of base - count).
func (d SizedDropView[T, P, V]) Size() int {
	return max(0, d.base.Size()-d.count)
}
