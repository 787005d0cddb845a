package views

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	_ = []Adaptor{DropAdaptor{}, Chain{}}
)

// Adaptor is a view adaptor whose parameters have been captured, the range is provided
// later by Pipe.
type Adaptor interface {
	fmt.Stringer
	isAdaptor()
}

// DropAdaptor is the deferred form of Drop.
type DropAdaptor struct {
	count int
}

// Dropping returns an adaptor skipping the first n elements, Pipe(r, Dropping(n)) is
// equivalent to Drop(r, n).
func Dropping[N constraints.Integer](n N) DropAdaptor {
	return DropAdaptor{count: toCount(n)}
}

func (a DropAdaptor) Count() int {
	return a.count
}

func (a DropAdaptor) String() string {
	return fmt.Sprintf("drop(%d)", a.count)
}

func (DropAdaptor) isAdaptor() {}

// AdaptorFunc lifts a function into an adaptor. It can only be applied to views having
// the same element and position types.
type AdaptorFunc[T any, P Iterator[T, P]] func(View[T, P]) View[T, P]

func (f AdaptorFunc[T, P]) String() string {
	return "func"
}

func (AdaptorFunc[T, P]) isAdaptor() {}

// Chain is a sequence of adaptors applied left to right.
type Chain []Adaptor

func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, a := range c {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

func (Chain) isAdaptor() {}

// Compose returns an adaptor applying the given adaptors left to right. Nested chains
// are flattened, so composition is associative: Compose(a, Compose(b, c)) and
// Compose(Compose(a, b), c) are the same chain.
func Compose(adaptors ...Adaptor) Adaptor {
	var chain Chain
	for _, a := range adaptors {
		if nested, ok := a.(Chain); ok {
			chain = append(chain, nested...)
		} else {
			chain = append(chain, a)
		}
	}
	if len(chain) == 1 {
		return chain[0]
	}
	return chain
}

// Pipe turns r into a view with All and applies the adaptors left to right, it is the
// equivalent of r | a | b | ... .
func Pipe[T any, P Iterator[T, P], R Range[T, P]](r R, adaptors ...Adaptor) View[T, P] {
	v := All[T, P](r)
	for _, a := range adaptors {
		v = apply(v, a)
	}
	return v
}

func apply[T any, P Iterator[T, P]](v View[T, P], a Adaptor) View[T, P] {
	switch a := a.(type) {
	case DropAdaptor:
		return NewDropView[T, P](v, a.count)
	case Chain:
		for _, elem := range a {
			v = apply(v, elem)
		}
		return v
	case AdaptorFunc[T, P]:
		return a(v)
	default:
		panic(fmt.Errorf("%w: %s (%T)", ErrUnknownAdaptor, a, a))
	}
}
