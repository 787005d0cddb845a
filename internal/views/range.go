package views

import (
	"iter"
	"reflect"
	"strings"
)

// Range is anything traversable with a pair of positions: [Begin, End).
type Range[T any, P Iterator[T, P]] interface {
	Begin() P
	End() P
}

// View is a range that can be traversed through a read-only handle: CBegin and CEnd always
// return read-only positions, whatever the positions of the underlying range allow.
// View types are declared in this package, other packages build views with All, Ref, Own,
// Sub and Drop.
type View[T any, P Iterator[T, P]] interface {
	Range[T, P]
	CBegin() ReadOnly[T, P]
	CEnd() ReadOnly[T, P]
	Empty() bool

	// Caps reports the optional operations that are available on this instance.
	Caps() Caps

	BorrowedRange

	Values() iter.Seq[T]

	isView()
}

// optional range capabilities.

type Sized interface {
	Size() int
}

// SizedRange is a range reporting its size, views over such ranges can be statically sized
// (RefSized, OwnSized, SubOfSized).
type SizedRange[T any, P Iterator[T, P]] interface {
	Range[T, P]
	Sized
}

type ContiguousRange[T any, P Iterator[T, P]] interface {
	Range[T, P]
	Sized
	Contiguous[T]
}

type SizedView[T any, P Iterator[T, P]] interface {
	View[T, P]
	Sized
}

type Emptier interface {
	Empty() bool
}

type Contiguous[T any] interface {
	Data() []T
}

// SinglePass is implemented by ranges whose traversal consumes them, such ranges cannot be
// traversed through a read-only handle.
type SinglePass interface {
	SinglePass()
}

// Capable is implemented by ranges whose optional operations depend on their state or on
// what they wrap. Caps is consulted before Size and Data.
type Capable interface {
	Caps() Caps
}

// BorrowedRange is implemented by ranges declaring whether positions obtained from them stay
// valid after the range value itself is gone. The answer only depends on the type.
type BorrowedRange interface {
	BorrowedRange() bool
}

type Caps uint8

const (
	SizedCap Caps = 1 << iota
	ContiguousCap
	ConstTraversableCap
)

func (c Caps) Has(other Caps) bool {
	return c&other == other
}

func (c Caps) String() string {
	var names []string
	if c.Has(SizedCap) {
		names = append(names, "sized")
	}
	if c.Has(ContiguousCap) {
		names = append(names, "contiguous")
	}
	if c.Has(ConstTraversableCap) {
		names = append(names, "const-traversable")
	}
	return "{" + strings.Join(names, ",") + "}"
}

// sizeReporter and dataReporter are implemented by views whose size or contiguous storage
// depends on what they wrap. Such views have no Size or Data method, their sized and contiguous
// variants do.
type sizeReporter interface {
	reportSize() (int, bool)
}

type dataReporter[T any] interface {
	reportData() ([]T, bool)
}

// SizeOf returns the size of r if r reports one in constant time.
func SizeOf(r any) (int, bool) {
	if c, ok := r.(Capable); ok && !c.Caps().Has(SizedCap) {
		return 0, false
	}
	switch r := r.(type) {
	case Sized:
		return r.Size(), true
	case sizeReporter:
		return r.reportSize()
	}
	return 0, false
}

// DataOf returns the contiguous storage of r, if any.
func DataOf[T any](r any) ([]T, bool) {
	if c, ok := r.(Capable); ok && !c.Caps().Has(ContiguousCap) {
		return nil, false
	}
	switch r := r.(type) {
	case Contiguous[T]:
		return r.Data(), true
	case dataReporter[T]:
		return r.reportData()
	}
	return nil, false
}

// rangeSize returns the size of r: either reported by r or computed from random access positions.
func rangeSize[T any, P Iterator[T, P]](r Range[T, P]) (int, bool) {
	if size, ok := SizeOf(r); ok {
		return size, true
	}
	return distanceTo[T, P](r.Begin(), r.End())
}

func rangeIsEmpty[T any, P Iterator[T, P]](r Range[T, P]) bool {
	if e, ok := r.(Emptier); ok {
		return e.Empty()
	}
	if size, ok := SizeOf(r); ok {
		return size == 0
	}
	return r.Begin().Equal(r.End())
}

func rangeCaps[T any, P Iterator[T, P]](r Range[T, P]) Caps {
	var caps Caps
	if _, ok := rangeSize[T, P](r); ok {
		caps |= SizedCap
	}
	if c, ok := r.(Capable); ok {
		caps |= c.Caps() & ContiguousCap
	} else if _, ok := r.(Contiguous[T]); ok {
		caps |= ContiguousCap
	}
	if _, ok := r.(SinglePass); !ok {
		caps |= ConstTraversableCap
	}
	return caps
}

func values[T any, P Iterator[T, P]](begin, end P) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin; !it.Equal(end); it = it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of r.
func Values[T any, P Iterator[T, P]](r Range[T, P]) iter.Seq[T] {
	return values[T, P](r.Begin(), r.End())
}

// Collect returns the elements of r in a new slice.
func Collect[T any, P Iterator[T, P]](r Range[T, P]) []T {
	elements := []T{}
	for it, end := r.Begin(), r.End(); !it.Equal(end); it = it.Next() {
		elements = append(elements, it.Get())
	}
	return elements
}

// Front returns the first element of r, it panics if r is empty.
func Front[T any, P Iterator[T, P]](r Range[T, P]) T {
	begin := r.Begin()
	if begin.Equal(r.End()) {
		panic(ErrEmptyRange)
	}
	return begin.Get()
}

// Back returns the last element of r, it panics if r is empty or if its positions cannot step backward.
func Back[T any, P Iterator[T, P]](r Range[T, P]) T {
	end := r.End()
	if r.Begin().Equal(end) {
		panic(ErrEmptyRange)
	}
	return Retreat[T, P](end, 1).Get()
}

var borrowedRangeType = reflect.TypeFor[BorrowedRange]()

// IsBorrowed reports whether positions obtained from a value of type R stay valid after the
// value is gone. Types declare it with a BorrowedRange method. Other pointers and slices are
// borrowed, and so is a pointer to a type declaring the method on its values: the positions only
// depend on the pointed value. Interface types are not: the answer depends on the dynamic type,
// use Borrowed.
func IsBorrowed[R any]() bool {
	t := reflect.TypeFor[R]()

	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Pointer:
		if t.Implements(borrowedRangeType) && !t.Elem().Implements(borrowedRangeType) {
			return reflect.New(t.Elem()).Interface().(BorrowedRange).BorrowedRange()
		}
		return true
	}

	if t.Implements(borrowedRangeType) {
		return reflect.Zero(t).Interface().(BorrowedRange).BorrowedRange()
	}
	return t.Kind() == reflect.Slice
}

// Borrowed is the value-level counterpart of IsBorrowed.
func Borrowed(r any) bool {
	if r == nil {
		return false
	}

	t := reflect.TypeOf(r)
	if t.Kind() == reflect.Pointer && t.Elem().Implements(borrowedRangeType) {
		return true
	}
	if b, ok := r.(BorrowedRange); ok {
		return b.BorrowedRange()
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}
