package views

import "iter"

// RefView is a borrowing view: it only stores a reference to a range owned elsewhere and never
// allocates. The range should outlive the view, no liveness check is performed.
//
// Begin and End return the native positions of the range, CBegin and CEnd return read-only
// positions even if the range itself would allow mutation.
//
// RefView has no Size nor Data method, SizedRefView and ContiguousRefView have them. SizeOf and
// DataOf work on any RefView whose range has the capability.
type RefView[T any, P Iterator[T, P]] struct {
	rg Range[T, P]
}

// Ref returns a view borrowing *r. Taking a pointer makes borrowing a temporary impossible.
func Ref[T any, P Iterator[T, P], R Range[T, P]](r *R) RefView[T, P] {
	return RefView[T, P]{rg: pointee[T, P, R]{ptr: r}}
}

// pointee turns a pointer to a range into a range, the method set of *R is empty when R is
// a type parameter.
type pointee[T any, P Iterator[T, P], R Range[T, P]] struct {
	ptr *R
}

func (p pointee[T, P, R]) Begin() P {
	return (*p.ptr).Begin()
}

func (p pointee[T, P, R]) End() P {
	return (*p.ptr).End()
}

// referenced returns the pointer itself when its dynamic type has the methods of R.
func (p pointee[T, P, R]) referenced() Range[T, P] {
	if r, ok := any(p.ptr).(Range[T, P]); ok {
		return r
	}
	return *p.ptr
}

type referencer[T any, P Iterator[T, P]] interface {
	referenced() Range[T, P]
}

// Base returns the borrowed range: for a view created by Ref(r) it is r.
func (v RefView[T, P]) Base() Range[T, P] {
	if p, ok := v.rg.(referencer[T, P]); ok {
		return p.referenced()
	}
	return v.rg
}

func (v RefView[T, P]) Begin() P {
	return v.rg.Begin()
}

func (v RefView[T, P]) End() P {
	return v.rg.End()
}

func (v RefView[T, P]) CBegin() ReadOnly[T, P] {
	return MakeReadOnly[T, P](v.rg.Begin())
}

func (v RefView[T, P]) CEnd() ReadOnly[T, P] {
	return MakeReadOnly[T, P](v.rg.End())
}

func (v RefView[T, P]) Empty() bool {
	return rangeIsEmpty[T, P](v.Base())
}

func (v RefView[T, P]) reportSize() (int, bool) {
	return rangeSize[T, P](v.Base())
}

func (v RefView[T, P]) reportData() ([]T, bool) {
	return DataOf[T](v.Base())
}

func (v RefView[T, P]) Caps() Caps {
	return rangeCaps[T, P](v.Base()) | ConstTraversableCap
}

// BorrowedRange returns true: positions only depend on the borrowed range, not on the view.
func (v RefView[T, P]) BorrowedRange() bool {
	return true
}

func (v RefView[T, P]) Values() iter.Seq[T] {
	return values[T, P](v.Begin(), v.End())
}

func (RefView[T, P]) isView() {}

// SizedRefView is a RefView over a sized range.
type SizedRefView[T any, P Iterator[T, P]] struct {
	RefView[T, P]
}

func RefSized[T any, P Iterator[T, P], R SizedRange[T, P]](r *R) SizedRefView[T, P] {
	return SizedRefView[T, P]{RefView: Ref[T, P, R](r)}
}

func (v SizedRefView[T, P]) Size() int {
	return v.Base().(Sized).Size()
}

// ContiguousRefView is a RefView over a contiguous range.
type ContiguousRefView[T any, P Iterator[T, P]] struct {
	SizedRefView[T, P]
}

func RefContiguous[T any, P Iterator[T, P], R ContiguousRange[T, P]](r *R) ContiguousRefView[T, P] {
	return ContiguousRefView[T, P]{SizedRefView: SizedRefView[T, P]{RefView: Ref[T, P, R](r)}}
}

func (v ContiguousRefView[T, P]) Data() []T {
	return v.Base().(Contiguous[T]).Data()
}
