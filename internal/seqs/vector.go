package seqs

import (
	"github.com/inoxlang/viewseq/internal/views"
	"gonum.org/v1/gonum/mat"
)

var (
	_ views.RandomAccess[float64, VectorPos] = VectorPos{}
	_ views.Writable[float64]                = VectorPos{}
	_ views.Capable                          = Vector{}
	_ views.Contiguous[float64]              = Vector{}
)

// Vector is a dense vector seen as a range. A vector viewing a matrix column has a stride
// greater than one: it is only contiguous if its elements are adjacent in memory, see Caps.
type Vector struct {
	vec *mat.VecDense
}

func WrapVector(vec *mat.VecDense) Vector {
	return Vector{vec: vec}
}

func NewVector(elements ...float64) Vector {
	if len(elements) == 0 {
		return Vector{vec: &mat.VecDense{}}
	}
	return Vector{vec: mat.NewVecDense(len(elements), elements)}
}

func (v Vector) VecDense() *mat.VecDense {
	return v.vec
}

func (v Vector) Begin() VectorPos {
	return VectorPos{vec: v.vec, i: 0}
}

func (v Vector) End() VectorPos {
	return VectorPos{vec: v.vec, i: v.vec.Len()}
}

func (v Vector) Size() int {
	return v.vec.Len()
}

func (v Vector) Caps() views.Caps {
	caps := views.SizedCap | views.ConstTraversableCap
	if v.contiguous() {
		caps |= views.ContiguousCap
	}
	return caps
}

func (v Vector) contiguous() bool {
	raw := v.vec.RawVector()
	return raw.Inc == 1 || raw.N <= 1
}

// Data returns the backing elements of the vector, it panics if the vector is not contiguous.
func (v Vector) Data() []float64 {
	if !v.contiguous() {
		panic(views.ErrNotContiguous)
	}
	raw := v.vec.RawVector()
	if raw.N == 0 {
		return []float64{}
	}
	return raw.Data[:raw.N]
}

func (v Vector) BorrowedRange() bool {
	return true
}

type VectorPos struct {
	vec *mat.VecDense
	i   int
}

func (p VectorPos) Get() float64 {
	return p.vec.AtVec(p.i)
}

func (p VectorPos) Set(v float64) {
	p.vec.SetVec(p.i, v)
}

func (p VectorPos) Next() VectorPos {
	return VectorPos{vec: p.vec, i: p.i + 1}
}

func (p VectorPos) Prev() VectorPos {
	return VectorPos{vec: p.vec, i: p.i - 1}
}

func (p VectorPos) Jump(n int) VectorPos {
	return VectorPos{vec: p.vec, i: p.i + n}
}

func (p VectorPos) Distance(to VectorPos) int {
	return to.i - p.i
}

func (p VectorPos) Equal(other VectorPos) bool {
	return p.vec == other.vec && p.i == other.i
}
