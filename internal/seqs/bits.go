package seqs

import (
	"fortio.org/safecast"
	"github.com/bits-and-blooms/bitset"
	"github.com/inoxlang/viewseq/internal/views"
)

var (
	_ views.Iterator[uint, BitsPos] = BitsPos{}
	_ views.Sized                   = Bits{}
	_ views.BorrowedRange           = Bits{}
)

// Bits is a bit set seen as the range of the indexes of its set bits, in increasing order.
// Positions only step forward.
type Bits struct {
	set *bitset.BitSet
}

func WrapBits(set *bitset.BitSet) Bits {
	return Bits{set: set}
}

func NewBits(indexes ...uint) Bits {
	set := bitset.New(0)
	for _, i := range indexes {
		set.Set(i)
	}
	return Bits{set: set}
}

func (b Bits) BitSet() *bitset.BitSet {
	return b.set
}

func (b Bits) Begin() BitsPos {
	index, ok := b.set.NextSet(0)
	return BitsPos{set: b.set, index: index, valid: ok}
}

func (b Bits) End() BitsPos {
	return BitsPos{set: b.set}
}

// Size returns the number of set bits, it is computed by a population count.
func (b Bits) Size() int {
	return safecast.MustConv[int](b.set.Count())
}

func (b Bits) BorrowedRange() bool {
	return true
}

// BitsPos is the position of a set bit, the end position is not valid.
type BitsPos struct {
	set   *bitset.BitSet
	index uint
	valid bool
}

func (p BitsPos) Get() uint {
	if !p.valid {
		panic(views.ErrEmptyRange)
	}
	return p.index
}

func (p BitsPos) Next() BitsPos {
	if !p.valid {
		return p
	}
	index, ok := p.set.NextSet(p.index + 1)
	return BitsPos{set: p.set, index: index, valid: ok}
}

func (p BitsPos) Equal(other BitsPos) bool {
	if p.valid != other.valid || p.set != other.set {
		return false
	}
	return !p.valid || p.index == other.index
}
