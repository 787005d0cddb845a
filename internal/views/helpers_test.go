package views

var (
	_ RandomAccess[int, slicePos]                             = slicePos{}
	_ Writable[int]                                           = slicePos{}
	_ Bidirectional[int, bidiPos]                             = bidiPos{}
	_ Iterator[int, fwdPos]                                   = fwdPos{}
	_ Range[int, slicePos]                                    = intSlice{}
	_ Range[int, slicePos]                                    = (*intSlice)(nil)
	_ Range[int, bidiPos]                                     = bidiSlice{}
	_ Range[int, fwdPos]                                      = fwdList{}
	_ Iterator[int, ReadOnly[int, slicePos]]                  = ReadOnly[int, slicePos]{}
	_ Bidirectional[int, ReadOnlyBidirectional[int, bidiPos]] = ReadOnlyBidirectional[int, bidiPos]{}
	_ RandomAccess[int, ReadOnlyRandomAccess[int, slicePos]]  = ReadOnlyRandomAccess[int, slicePos]{}
	_ SizedRange[int, slicePos]                               = intSlice{}
	_ ContiguousRange[int, slicePos]                          = intSlice{}
	_ SizedView[int, slicePos]                                = SizedRefView[int, slicePos]{}
	_ SizedView[int, slicePos]                                = SizedSubView[int, slicePos]{}
	_ SizedView[int, slicePos]                                = (*SizedOwningView[int, slicePos, intSlice])(nil)
	_ Contiguous[int]                                         = ContiguousRefView[int, slicePos]{}
	_ Contiguous[int]                                         = (*ContiguousOwningView[int, slicePos, intSlice])(nil)
	_ SizedView[int, slicePos]                                = SizedDropView[int, slicePos, SizedRefView[int, slicePos]]{}
	_ View[int, slicePos]                                     = RefView[int, slicePos]{}
	_ View[int, slicePos]                                     = (*OwningView[int, slicePos, intSlice])(nil)
	_ View[int, slicePos]                                     = SubView[int, slicePos]{}
	_ View[int, slicePos]                                     = DropView[int, slicePos, View[int, slicePos]]{}
	_ View[int, fwdPos]                                       = DropView[int, fwdPos, RefView[int, fwdPos]]{}
)

// intSlice: random access, writable, contiguous and sized.

type intSlice []int

func (s intSlice) Begin() slicePos     { return slicePos{s: s, i: 0} }
func (s intSlice) End() slicePos       { return slicePos{s: s, i: len(s)} }
func (s intSlice) Size() int           { return len(s) }
func (s intSlice) Data() []int         { return s }
func (s intSlice) BorrowedRange() bool { return true }
func (s intSlice) at(i int) slicePos   { return slicePos{s: s, i: i} }

type slicePos struct {
	s []int
	i int
}

func (p slicePos) Get() int                  { return p.s[p.i] }
func (p slicePos) Set(v int)                 { p.s[p.i] = v }
func (p slicePos) Next() slicePos            { return slicePos{s: p.s, i: p.i + 1} }
func (p slicePos) Prev() slicePos            { return slicePos{s: p.s, i: p.i - 1} }
func (p slicePos) Jump(n int) slicePos       { return slicePos{s: p.s, i: p.i + n} }
func (p slicePos) Distance(to slicePos) int  { return to.i - p.i }
func (p slicePos) Equal(other slicePos) bool { return p.i == other.i }

// bidiSlice: sized range whose positions only step one element at a time.

type bidiSlice []int

func (s bidiSlice) Begin() bidiPos { return bidiPos{s: s, i: 0} }
func (s bidiSlice) End() bidiPos   { return bidiPos{s: s, i: len(s)} }
func (s bidiSlice) Size() int      { return len(s) }

type bidiPos struct {
	s []int
	i int
}

func (p bidiPos) Get() int                 { return p.s[p.i] }
func (p bidiPos) Set(v int)                { p.s[p.i] = v }
func (p bidiPos) Next() bidiPos            { return bidiPos{s: p.s, i: p.i + 1} }
func (p bidiPos) Prev() bidiPos            { return bidiPos{s: p.s, i: p.i - 1} }
func (p bidiPos) Equal(other bidiPos) bool { return p.i == other.i }

// fwdList: unsized singly linked list.

type fwdNode struct {
	value int
	next  *fwdNode
}

type fwdList struct {
	head *fwdNode
}

func newFwdList(elements ...int) fwdList {
	var head *fwdNode
	for i := len(elements) - 1; i >= 0; i-- {
		head = &fwdNode{value: elements[i], next: head}
	}
	return fwdList{head: head}
}

func (l fwdList) Begin() fwdPos { return fwdPos{node: l.head} }
func (l fwdList) End() fwdPos   { return fwdPos{} }

type fwdPos struct {
	node *fwdNode
}

func (p fwdPos) Get() int                { return p.node.value }
func (p fwdPos) Set(v int)               { p.node.value = v }
func (p fwdPos) Next() fwdPos            { return fwdPos{node: p.node.next} }
func (p fwdPos) Equal(other fwdPos) bool { return p.node == other.node }

// onceList can only be traversed once.

type onceList struct {
	fwdList
}

func (onceList) SinglePass() {}
