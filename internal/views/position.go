package views

import "errors"

var (
	ErrNegativeCount       = errors.New("count should be non-negative")
	ErrNegativeSize        = errors.New("explicit size should be non-negative")
	ErrNotBidirectional    = errors.New("position cannot step backward")
	ErrNotRandomAccess     = errors.New("position does not support random access")
	ErrUnsized             = errors.New("range has no constant-time size")
	ErrNotContiguous       = errors.New("range is not contiguous")
	ErrNotConstTraversable = errors.New("range cannot be traversed through a read-only handle")
	ErrNotBorrowed         = errors.New("positions of the range do not outlive the range value")
	ErrEmptyRange          = errors.New("range is empty")
	ErrUnknownAdaptor      = errors.New("unknown adaptor")
)

// Iterator is the minimal position contract: a position can be read, stepped forward
// and compared with another position of the same type. Positions are values, moving
// a position returns a new one.
type Iterator[T any, P any] interface {
	Get() T
	Next() P
	Equal(other P) bool
}

type Bidirectional[T any, P any] interface {
	Iterator[T, P]
	Prev() P
}

// RandomAccess positions move by any amount in constant time.
// Distance returns the signed number of steps from the receiver to the argument.
type RandomAccess[T any, P any] interface {
	Bidirectional[T, P]
	Jump(n int) P
	Distance(to P) int
}

// Writable is implemented by positions allowing the referenced element to be replaced.
type Writable[T any] interface {
	Set(v T)
}

type Category uint8

const (
	ForwardCategory Category = iota + 1
	BidirectionalCategory
	RandomAccessCategory
)

func (c Category) String() string {
	switch c {
	case ForwardCategory:
		return "forward"
	case BidirectionalCategory:
		return "bidirectional"
	case RandomAccessCategory:
		return "random-access"
	default:
		return "unknown"
	}
}

// categorizer is implemented by wrapping positions whose method set is wider than
// the capabilities of the position they wrap.
type categorizer interface {
	Category() Category
}

// CategoryOf returns the strongest traversal tier supported by p.
func CategoryOf[T any, P Iterator[T, P]](p P) Category {
	if c, ok := any(p).(categorizer); ok {
		return c.Category()
	}
	switch any(p).(type) {
	case RandomAccess[T, P]:
		return RandomAccessCategory
	case Bidirectional[T, P]:
		return BidirectionalCategory
	default:
		return ForwardCategory
	}
}

// backStepper and jumper are implemented by positions moving backward or randomly through
// unexported methods, such positions only expose the movements of their own tier.
type backStepper[P any] interface {
	prev() P
}

type jumper[P any] interface {
	jump(n int) P
	distance(to P) int
}

func stepBack[T any, P Iterator[T, P]](p P) (P, bool) {
	if CategoryOf[T, P](p) < BidirectionalCategory {
		return p, false
	}
	switch q := any(p).(type) {
	case Bidirectional[T, P]:
		return q.Prev(), true
	case backStepper[P]:
		return q.prev(), true
	}
	return p, false
}

func jump[T any, P Iterator[T, P]](p P, n int) (P, bool) {
	if CategoryOf[T, P](p) < RandomAccessCategory {
		return p, false
	}
	switch q := any(p).(type) {
	case RandomAccess[T, P]:
		return q.Jump(n), true
	case jumper[P]:
		return q.jump(n), true
	}
	return p, false
}

func distanceTo[T any, P Iterator[T, P]](p, to P) (int, bool) {
	if CategoryOf[T, P](p) < RandomAccessCategory {
		return 0, false
	}
	switch q := any(p).(type) {
	case RandomAccess[T, P]:
		return q.Distance(to), true
	case jumper[P]:
		return q.distance(to), true
	}
	return 0, false
}

// Advance steps p forward at most n times, stopping at bound. It returns the new position
// and the number of steps that could not be taken because bound was reached.
// Random access positions are moved in constant time.
func Advance[T any, P Iterator[T, P]](p P, n int, bound P) (P, int) {
	if n < 0 {
		panic(ErrNegativeCount)
	}

	if remaining, ok := distanceTo[T, P](p, bound); ok {
		if remaining >= 0 && n >= remaining {
			return bound, n - remaining
		}
		q, _ := jump[T, P](p, n)
		return q, 0
	}

	for n > 0 && !p.Equal(bound) {
		p = p.Next()
		n--
	}
	return p, n
}

// Retreat steps p backward n times, it panics if p cannot step backward.
func Retreat[T any, P Iterator[T, P]](p P, n int) P {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	if n == 0 {
		return p
	}

	if q, ok := jump[T, P](p, -n); ok {
		return q
	}

	for ; n > 0; n-- {
		q, ok := stepBack[T, P](p)
		if !ok {
			panic(ErrNotBidirectional)
		}
		p = q
	}
	return p
}

// Distance returns the number of steps from first to last, last should be reachable from first.
func Distance[T any, P Iterator[T, P]](first, last P) int {
	if d, ok := distanceTo[T, P](first, last); ok {
		return d
	}

	count := 0
	for !first.Equal(last) {
		first = first.Next()
		count++
	}
	return count
}
