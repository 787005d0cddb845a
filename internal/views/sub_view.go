package views

import "iter"

type SubKind uint8

const (
	UnsizedSub SubKind = iota
	SizedSub
)

func (k SubKind) String() string {
	if k == SizedSub {
		return "sized"
	}
	return "unsized"
}

// Pair is a pair-like value holding two positions.
type Pair[A, B any] struct {
	First  A
	Second B
}

// SubView is a view over the half-open interval [begin, end) of positions.
//
// A sub view is sized if its positions are random access, the size is then always computed
// from the positions. A sub view over other positions is sized only if a size was provided
// at construction: this size is stored and kept in sync by Advance, it is trusted and never
// checked against the positions (see Config.CheckSizes).
//
// SubView has no Size method, its size is reported by SizeOf when Kind is SizedSub. The
// constructors whose result is always sized (SubSized, SubN, SubOfSized, SubOfN) return a
// SizedSubView.
//
// The positions of a sub view are plain values, so sub views are always borrowed.
type SubView[T any, P Iterator[T, P]] struct {
	begin P
	end   P

	kind      SubKind
	storeSize bool
	size      int //only valid if storeSize is true
}

// Sub returns a view over [begin, end), it is sized iff the positions are random access.
func Sub[T any, P Iterator[T, P]](begin, end P) SubView[T, P] {
	kind := UnsizedSub
	if CategoryOf[T, P](begin) == RandomAccessCategory {
		kind = SizedSub
	}
	return SubView[T, P]{begin: begin, end: end, kind: kind}
}

// SubSized returns a sized view over [begin, end), the size is computed from the positions.
func SubSized[T any, P RandomAccess[T, P]](begin, end P) SizedSubView[T, P] {
	return SizedSubView[T, P]{SubView: SubView[T, P]{begin: begin, end: end, kind: SizedSub}}
}

// SubN returns a sized view over [begin, end) having n elements. If the positions are random
// access n is ignored, otherwise it is stored and trusted.
func SubN[T any, P Iterator[T, P]](begin, end P, n int) SizedSubView[T, P] {
	if n < 0 {
		panic(ErrNegativeSize)
	}

	s := SubView[T, P]{begin: begin, end: end, kind: SizedSub}
	if CategoryOf[T, P](begin) != RandomAccessCategory {
		checkExplicitSize[T, P](begin, end, n)
		s.storeSize = true
		s.size = n
	}
	return SizedSubView[T, P]{SubView: s}
}

// SubOf returns a view over the positions of r, which should be borrowed. The view is sized
// if r is sized or if its positions are random access; the size of r is only stored in the
// second case.
func SubOf[T any, P Iterator[T, P], R Range[T, P]](r R) SubView[T, P] {
	assertBorrowed[T, P](r)

	begin, end := r.Begin(), r.End()
	if CategoryOf[T, P](begin) == RandomAccessCategory {
		return SubView[T, P]{begin: begin, end: end, kind: SizedSub}
	}
	if size, ok := SizeOf(r); ok {
		return SubView[T, P]{begin: begin, end: end, kind: SizedSub, storeSize: true, size: size}
	}
	return SubView[T, P]{begin: begin, end: end, kind: UnsizedSub}
}

// SubOfSized is like SubOf but the returned view is statically sized.
func SubOfSized[T any, P Iterator[T, P], R SizedRange[T, P]](r R) SizedSubView[T, P] {
	assertBorrowed[T, P](r)

	begin, end := r.Begin(), r.End()
	if CategoryOf[T, P](begin) == RandomAccessCategory {
		return SizedSubView[T, P]{SubView: SubView[T, P]{begin: begin, end: end, kind: SizedSub}}
	}
	return SizedSubView[T, P]{SubView: SubView[T, P]{begin: begin, end: end, kind: SizedSub, storeSize: true, size: r.Size()}}
}

// SubOfN is like SubOf but uses n as the size of r, n is ignored if the positions of r are
// random access.
func SubOfN[T any, P Iterator[T, P], R Range[T, P]](r R, n int) SizedSubView[T, P] {
	assertBorrowed[T, P](r)
	return SubN[T, P](r.Begin(), r.End(), n)
}

func assertBorrowed[T any, P Iterator[T, P], R Range[T, P]](r R) {
	if !IsBorrowed[R]() && !Borrowed(r) {
		panic(ErrNotBorrowed)
	}
}

// SubFromPair returns a view over [p.First, p.Second).
func SubFromPair[T any, P Iterator[T, P]](p Pair[P, P]) SubView[T, P] {
	return Sub[T, P](p.First, p.Second)
}

func (s SubView[T, P]) Begin() P {
	return s.begin
}

func (s SubView[T, P]) End() P {
	return s.end
}

func (s SubView[T, P]) CBegin() ReadOnly[T, P] {
	return MakeReadOnly[T, P](s.begin)
}

func (s SubView[T, P]) CEnd() ReadOnly[T, P] {
	return MakeReadOnly[T, P](s.end)
}

// Bounds returns the begin and end positions.
func (s SubView[T, P]) Bounds() (P, P) {
	return s.begin, s.end
}

func (s SubView[T, P]) Pair() Pair[P, P] {
	return Pair[P, P]{First: s.begin, Second: s.end}
}

func (s SubView[T, P]) Empty() bool {
	return s.begin.Equal(s.end)
}

func (s SubView[T, P]) Kind() SubKind {
	return s.kind
}

func (s SubView[T, P]) reportSize() (int, bool) {
	if s.kind != SizedSub {
		return 0, false
	}
	if s.storeSize {
		return s.size, true
	}
	return distanceTo[T, P](s.begin, s.end)
}

func (s SubView[T, P]) Caps() Caps {
	caps := ConstTraversableCap
	if s.kind == SizedSub {
		caps |= SizedCap
	}
	return caps
}

func (s SubView[T, P]) BorrowedRange() bool {
	return true
}

func (s SubView[T, P]) Values() iter.Seq[T] {
	return values[T, P](s.begin, s.end)
}

func (SubView[T, P]) isView() {}

// Next returns a copy of the view whose begin is advanced by n, see Advance.
func (s SubView[T, P]) Next(n int) SubView[T, P] {
	s.Advance(n)
	return s
}

// Prev returns a copy of the view whose begin is moved n steps backward, it panics if the
// positions cannot step backward.
func (s SubView[T, P]) Prev(n int) SubView[T, P] {
	s.Advance(-n)
	return s
}

// Advance moves begin by n positions. If n is negative begin steps backward, this is only
// valid for bidirectional positions. Otherwise begin steps forward at most n times and stops
// at end: the stored size, if any, is reduced by the number of steps actually taken.
func (s *SubView[T, P]) Advance(n int) *SubView[T, P] {
	if n < 0 {
		s.begin = Retreat[T, P](s.begin, -n)
		if s.storeSize {
			s.size += -n
		}
		return s
	}

	var missing int
	s.begin, missing = Advance[T, P](s.begin, n, s.end)
	if s.storeSize {
		s.size -= n - missing
	}
	return s
}

// SizedSubView is a SubView whose size is known.
type SizedSubView[T any, P Iterator[T, P]] struct {
	SubView[T, P]
}

func (s SizedSubView[T, P]) Size() int {
	size, _ := s.reportSize()
	return size
}

// Next returns a copy of the view whose begin is advanced by n, see SubView.Advance.
func (s SizedSubView[T, P]) Next(n int) SizedSubView[T, P] {
	s.SubView.Advance(n)
	return s
}

func (s SizedSubView[T, P]) Prev(n int) SizedSubView[T, P] {
	s.SubView.Advance(-n)
	return s
}

func (s *SizedSubView[T, P]) Advance(n int) *SizedSubView[T, P] {
	s.SubView.Advance(n)
	return s
}
