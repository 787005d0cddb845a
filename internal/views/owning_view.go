package views

import "iter"

// noCopy may be embedded into structs which must not be copied after first use,
// see https://golang.org/issues/8005#issuecomment-190753527 (checked by go vet's copylocks).
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// OwningView is a view owning the range it wraps: the range was moved into the view and lives
// as long as the view. An OwningView should not be copied, use it through a pointer.
//
// OwningView has no Size nor Data method, SizedOwningView and ContiguousOwningView have them.
type OwningView[T any, P Iterator[T, P], R Range[T, P]] struct {
	_  noCopy
	rg R
}

// Own moves r into a new owning view. The caller should not use r afterwards.
func Own[T any, P Iterator[T, P], R Range[T, P]](r R) *OwningView[T, P, R] {
	return &OwningView[T, P, R]{rg: r}
}

// Base returns the owned range.
func (v *OwningView[T, P, R]) Base() *R {
	return &v.rg
}

// Release moves the owned range out of the view, the view is left with the zero value of R.
func (v *OwningView[T, P, R]) Release() R {
	rg := v.rg
	var zero R
	v.rg = zero
	return rg
}

func (v *OwningView[T, P, R]) Begin() P {
	return v.rg.Begin()
}

func (v *OwningView[T, P, R]) End() P {
	return v.rg.End()
}

// CBegin returns a read-only position to the first element, it panics if the owned range is
// single-pass (see Caps).
func (v *OwningView[T, P, R]) CBegin() ReadOnly[T, P] {
	v.assertConstTraversable()
	return MakeReadOnly[T, P](v.rg.Begin())
}

func (v *OwningView[T, P, R]) CEnd() ReadOnly[T, P] {
	v.assertConstTraversable()
	return MakeReadOnly[T, P](v.rg.End())
}

func (v *OwningView[T, P, R]) assertConstTraversable() {
	if _, ok := any(v.rg).(SinglePass); ok {
		panic(ErrNotConstTraversable)
	}
}

func (v *OwningView[T, P, R]) Empty() bool {
	return rangeIsEmpty[T, P](v.rg)
}

func (v *OwningView[T, P, R]) reportSize() (int, bool) {
	return rangeSize[T, P](v.rg)
}

func (v *OwningView[T, P, R]) reportData() ([]T, bool) {
	return DataOf[T](v.rg)
}

func (v *OwningView[T, P, R]) Caps() Caps {
	return rangeCaps[T, P](v.rg)
}

// BorrowedRange returns true if the owned range type is itself borrowed.
func (v *OwningView[T, P, R]) BorrowedRange() bool {
	return IsBorrowed[R]()
}

func (v *OwningView[T, P, R]) Values() iter.Seq[T] {
	return values[T, P](v.Begin(), v.End())
}

func (*OwningView[T, P, R]) isView() {}

// SizedOwningView is an OwningView over a sized range.
type SizedOwningView[T any, P Iterator[T, P], R SizedRange[T, P]] struct {
	OwningView[T, P, R]
}

func OwnSized[T any, P Iterator[T, P], R SizedRange[T, P]](r R) *SizedOwningView[T, P, R] {
	return &SizedOwningView[T, P, R]{OwningView: OwningView[T, P, R]{rg: r}}
}

func (v *SizedOwningView[T, P, R]) Size() int {
	return v.rg.Size()
}

// ContiguousOwningView is an OwningView over a contiguous range.
type ContiguousOwningView[T any, P Iterator[T, P], R ContiguousRange[T, P]] struct {
	SizedOwningView[T, P, R]
}

func OwnContiguous[T any, P Iterator[T, P], R ContiguousRange[T, P]](r R) *ContiguousOwningView[T, P, R] {
	return &ContiguousOwningView[T, P, R]{
		SizedOwningView: SizedOwningView[T, P, R]{OwningView: OwningView[T, P, R]{rg: r}},
	}
}

func (v *ContiguousOwningView[T, P, R]) Data() []T {
	return v.rg.Data()
}
