package views

// ReadOnly wraps a position and only gives read access to the referenced element:
// it has no Set method and never hands out the wrapped position.
//
// ReadOnly only has the methods of a forward position. Views return it whatever the tier of
// their positions, the tier-aware helpers (Advance, Retreat, Distance) still move it backward
// or randomly when the wrapped position can (see Category). ToBidirectional and ToRandomAccess
// convert it into a read-only position exposing the movements of the wrapped tier.
type ReadOnly[T any, P Iterator[T, P]] struct {
	pos P
}

// MakeReadOnly returns the read-only counterpart of p, it does not allocate.
// Wrapping a ReadOnly position again yields a position that behaves exactly like its input.
func MakeReadOnly[T any, P Iterator[T, P]](p P) ReadOnly[T, P] {
	return ReadOnly[T, P]{pos: p}
}

func (r ReadOnly[T, P]) Get() T {
	return r.pos.Get()
}

func (r ReadOnly[T, P]) Next() ReadOnly[T, P] {
	return ReadOnly[T, P]{pos: r.pos.Next()}
}

func (r ReadOnly[T, P]) Equal(other ReadOnly[T, P]) bool {
	return r.pos.Equal(other.pos)
}

// Category returns the category of the wrapped position.
func (r ReadOnly[T, P]) Category() Category {
	return CategoryOf[T, P](r.pos)
}

func (r ReadOnly[T, P]) prev() ReadOnly[T, P] {
	p, ok := stepBack[T, P](r.pos)
	if !ok {
		panic(ErrNotBidirectional)
	}
	return ReadOnly[T, P]{pos: p}
}

func (r ReadOnly[T, P]) jump(n int) ReadOnly[T, P] {
	p, ok := jump[T, P](r.pos, n)
	if !ok {
		panic(ErrNotRandomAccess)
	}
	return ReadOnly[T, P]{pos: p}
}

func (r ReadOnly[T, P]) distance(to ReadOnly[T, P]) int {
	d, ok := distanceTo[T, P](r.pos, to.pos)
	if !ok {
		panic(ErrNotRandomAccess)
	}
	return d
}

// ReadOnlyBidirectional is the read-only counterpart of a bidirectional position.
type ReadOnlyBidirectional[T any, P Bidirectional[T, P]] struct {
	pos P
}

func MakeReadOnlyBidirectional[T any, P Bidirectional[T, P]](p P) ReadOnlyBidirectional[T, P] {
	return ReadOnlyBidirectional[T, P]{pos: p}
}

// ToBidirectional converts r, whose wrapped position is bidirectional, into a position that can
// step backward.
func ToBidirectional[T any, P Bidirectional[T, P]](r ReadOnly[T, P]) ReadOnlyBidirectional[T, P] {
	return ReadOnlyBidirectional[T, P]{pos: r.pos}
}

func (r ReadOnlyBidirectional[T, P]) Get() T {
	return r.pos.Get()
}

func (r ReadOnlyBidirectional[T, P]) Next() ReadOnlyBidirectional[T, P] {
	return ReadOnlyBidirectional[T, P]{pos: r.pos.Next()}
}

func (r ReadOnlyBidirectional[T, P]) Prev() ReadOnlyBidirectional[T, P] {
	return ReadOnlyBidirectional[T, P]{pos: r.pos.Prev()}
}

func (r ReadOnlyBidirectional[T, P]) Equal(other ReadOnlyBidirectional[T, P]) bool {
	return r.pos.Equal(other.pos)
}

// ReadOnlyRandomAccess is the read-only counterpart of a random access position.
type ReadOnlyRandomAccess[T any, P RandomAccess[T, P]] struct {
	pos P
}

func MakeReadOnlyRandomAccess[T any, P RandomAccess[T, P]](p P) ReadOnlyRandomAccess[T, P] {
	return ReadOnlyRandomAccess[T, P]{pos: p}
}

// ToRandomAccess converts r, whose wrapped position is random access, into a position that can
// jump.
func ToRandomAccess[T any, P RandomAccess[T, P]](r ReadOnly[T, P]) ReadOnlyRandomAccess[T, P] {
	return ReadOnlyRandomAccess[T, P]{pos: r.pos}
}

func (r ReadOnlyRandomAccess[T, P]) Get() T {
	return r.pos.Get()
}

func (r ReadOnlyRandomAccess[T, P]) Next() ReadOnlyRandomAccess[T, P] {
	return ReadOnlyRandomAccess[T, P]{pos: r.pos.Next()}
}

func (r ReadOnlyRandomAccess[T, P]) Prev() ReadOnlyRandomAccess[T, P] {
	return ReadOnlyRandomAccess[T, P]{pos: r.pos.Prev()}
}

func (r ReadOnlyRandomAccess[T, P]) Jump(n int) ReadOnlyRandomAccess[T, P] {
	return ReadOnlyRandomAccess[T, P]{pos: r.pos.Jump(n)}
}

func (r ReadOnlyRandomAccess[T, P]) Distance(to ReadOnlyRandomAccess[T, P]) int {
	return r.pos.Distance(to.pos)
}

func (r ReadOnlyRandomAccess[T, P]) Equal(other ReadOnlyRandomAccess[T, P]) bool {
	return r.pos.Equal(other.pos)
}
