// Package views implements lazy, non-allocating views over ranges of positions.
//
// A range is anything having a Begin and an End position. Positions come in three tiers
// (Iterator, Bidirectional, RandomAccess).
//
// Views are obtained with All, Ref, Own, Sub and Drop, and can be chained with Pipe:
//
//	v := views.Pipe(s, views.Dropping(2), views.Dropping(1))
//
// A view type only has the methods its capabilities allow: RefView has no Size method while
// SizedRefView (RefSized) has one, ReadOnly positions cannot step backward while
// ReadOnlyBidirectional positions can. When the capabilities are only known at run time,
// CategoryOf, Caps, SizeOf and DataOf report them, and Advance, Retreat and Distance use the
// strongest tier of a position.
package views
