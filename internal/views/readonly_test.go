package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadOnly(t *testing.T) {
	t.Parallel()

	t.Run("random access position", func(t *testing.T) {
		s := intSlice{10, 20, 30}
		begin, end := MakeReadOnly(s.Begin()), MakeReadOnly(s.End())

		assert.Equal(t, 10, begin.Get())
		assert.Equal(t, 20, begin.Next().Get())
		assert.Equal(t, RandomAccessCategory, begin.Category())
		assert.False(t, begin.Equal(end))

		assert.Equal(t, 30, Retreat(end, 1).Get())
		assert.Equal(t, 3, Distance(begin, end))

		p, missing := Advance(begin, 3, end)
		assert.True(t, p.Equal(end))
		assert.Zero(t, missing)
	})

	t.Run("the wrapped position cannot be written through", func(t *testing.T) {
		var p any = MakeReadOnly(intSlice{1}.Begin())
		_, ok := p.(Writable[int])
		assert.False(t, ok)
	})

	t.Run("only forward movements are exported", func(t *testing.T) {
		var p any = MakeReadOnly(intSlice{1}.Begin())

		_, ok := p.(Bidirectional[int, ReadOnly[int, slicePos]])
		assert.False(t, ok)
		_, ok = p.(RandomAccess[int, ReadOnly[int, slicePos]])
		assert.False(t, ok)
	})

	t.Run("forward position", func(t *testing.T) {
		l := newFwdList(1, 2)
		begin := MakeReadOnly(l.Begin())

		assert.Equal(t, 2, begin.Next().Get())
		assert.True(t, begin.Next().Next().Equal(MakeReadOnly(l.End())))
		assert.Equal(t, ForwardCategory, begin.Category())

		assert.PanicsWithValue(t, ErrNotBidirectional, func() {
			Retreat(begin.Next(), 1)
		})
		assert.Equal(t, 2, Distance(begin, MakeReadOnly(l.End())))
	})

	t.Run("bidirectional position", func(t *testing.T) {
		b := bidiSlice{1, 2}
		end := MakeReadOnly(b.End())

		assert.Equal(t, BidirectionalCategory, end.Category())
		assert.Equal(t, 2, Retreat(end, 1).Get())
		assert.Equal(t, 1, Retreat(end, 2).Get())
	})

	t.Run("wrapping twice", func(t *testing.T) {
		s := intSlice{10, 20, 30}
		once := MakeReadOnly(s.Begin())
		twice := MakeReadOnly(once)

		assert.Equal(t, once.Get(), twice.Get())
		assert.Equal(t, once.Next().Get(), twice.Next().Get())
		assert.Equal(t, Distance(once, MakeReadOnly(s.End())), Distance(twice, MakeReadOnly(MakeReadOnly(s.End()))))
		assert.Equal(t, once.Category(), twice.Category())
		assert.Equal(t, 30, Retreat(MakeReadOnly(MakeReadOnly(s.End())), 1).Get())
	})
}

func TestReadOnlyTiers(t *testing.T) {
	t.Parallel()

	t.Run("bidirectional", func(t *testing.T) {
		b := bidiSlice{1, 2, 3}
		end := MakeReadOnlyBidirectional(b.End())

		assert.Equal(t, 3, end.Prev().Get())
		assert.True(t, end.Prev().Next().Equal(end))
		assert.Equal(t, BidirectionalCategory, CategoryOf(end))

		var p any = end
		_, ok := p.(Writable[int])
		assert.False(t, ok)
	})

	t.Run("random access", func(t *testing.T) {
		s := intSlice{10, 20, 30}
		begin, end := MakeReadOnlyRandomAccess(s.Begin()), MakeReadOnlyRandomAccess(s.End())

		assert.Equal(t, 30, begin.Jump(2).Get())
		assert.Equal(t, 30, end.Prev().Get())
		assert.Equal(t, 3, begin.Distance(end))
		assert.True(t, begin.Jump(3).Equal(end))
		assert.Equal(t, RandomAccessCategory, CategoryOf(begin))
	})

	t.Run("conversion of the read-only positions of a view", func(t *testing.T) {
		s := intSlice{10, 20, 30}
		v := Ref(&s)

		begin := ToRandomAccess(v.CBegin())
		assert.Equal(t, 3, begin.Distance(ToRandomAccess(v.CEnd())))
		assert.Equal(t, 20, begin.Jump(1).Get())

		b := bidiSlice{1, 2}
		assert.Equal(t, 2, ToBidirectional(Ref(&b).CEnd()).Prev().Get())
	})
}
