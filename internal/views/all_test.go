package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("view", func(t *testing.T) {
		s := intSlice{1, 2}
		sub := Sub(s.Begin(), s.End())

		v := All(sub)
		assert.Equal(t, sub, v)
	})

	t.Run("view behind a pointer", func(t *testing.T) {
		owning := Own(intSlice{1, 2})

		v := All(owning)
		assert.Same(t, owning, v)
	})

	t.Run("pointer", func(t *testing.T) {
		l := newFwdList(1, 2)

		v := All(&l)
		if !assert.IsType(t, RefView[int, fwdPos]{}, v) {
			return
		}
		assert.True(t, v.BorrowedRange())
		assert.Equal(t, []int{1, 2}, Collect(v))
	})

	t.Run("value", func(t *testing.T) {
		v := All(newFwdList(1, 2))

		if !assert.IsType(t, &OwningView[int, fwdPos, fwdList]{}, v) {
			return
		}
		assert.False(t, v.BorrowedRange())
		assert.Equal(t, []int{1, 2}, Collect(v))
	})

	t.Run("borrowed value", func(t *testing.T) {
		v := All(intSlice{1, 2})

		assert.IsType(t, &OwningView[int, slicePos, intSlice]{}, v)
		assert.True(t, v.BorrowedRange())
	})
}

func TestIsBorrowed(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBorrowed[intSlice]())
	assert.True(t, IsBorrowed[*fwdList]())
	assert.True(t, IsBorrowed[RefView[int, fwdPos]]())
	assert.True(t, IsBorrowed[SubView[int, fwdPos]]())
	assert.False(t, IsBorrowed[fwdList]())
	assert.False(t, IsBorrowed[View[int, fwdPos]]())

	assert.True(t, IsBorrowed[*OwningView[int, slicePos, intSlice]]())
	assert.False(t, IsBorrowed[*OwningView[int, fwdPos, fwdList]]())

	assert.True(t, IsBorrowed[DropView[int, fwdPos, RefView[int, fwdPos]]]())
	assert.True(t, IsBorrowed[DropView[int, fwdPos, SubView[int, fwdPos]]]())
	assert.False(t, IsBorrowed[DropView[int, fwdPos, *OwningView[int, fwdPos, fwdList]]]())
	assert.True(t, IsBorrowed[DropView[int, slicePos, *OwningView[int, slicePos, intSlice]]]())
	assert.False(t, IsBorrowed[DropView[int, fwdPos, View[int, fwdPos]]]())

	l := newFwdList(1)
	assert.True(t, Borrowed(Drop(&l, 0)))
	assert.False(t, Borrowed(Drop(l, 0)))
	assert.False(t, Borrowed(Own(l)))
	assert.True(t, Borrowed(Own(intSlice{1})))
	assert.False(t, Borrowed(l))
	assert.False(t, Borrowed(nil))
}

func TestValueHelpers(t *testing.T) {
	t.Parallel()

	s := intSlice{1, 2, 3}
	assert.Equal(t, 1, Front(s))
	assert.Equal(t, 3, Back(s))

	var elements []int
	for e := range Values(s) {
		if e == 3 {
			break
		}
		elements = append(elements, e)
	}
	assert.Equal(t, []int{1, 2}, elements)

	l := newFwdList(1, 2)
	assert.PanicsWithValue(t, ErrNotBidirectional, func() {
		Back(l)
	})
	assert.PanicsWithValue(t, ErrEmptyRange, func() {
		Back(intSlice{})
	})

	data, ok := DataOf[int](s)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, data)

	_, ok = DataOf[int](Drop(s, 1))
	assert.False(t, ok)

	size, ok := SizeOf(Drop(s, 1))
	assert.True(t, ok)
	assert.Equal(t, 2, size)
}
