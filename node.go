package softheap

import "golang.org/x/exp/constraints"

// listCell is one entry in a node's doubly linked item list. elem holds the
// item's true priority as it was inserted; list cells are never mutated
// once created, only spliced between lists and popped.
type listCell[T constraints.Ordered] struct {
	elem T
	prev *listCell[T]
	next *listCell[T]
}

// node is a binary-tree node in a soft heap tree. ckey is the node's
// working priority: an upper bound on the true priority of every item in
// its list. rank is fixed at creation; size is the target occupancy a
// non-leaf node is repaired back up to. first/last bound the item list;
// left/right are the node's exclusive child links. A node is a leaf iff
// both child links are nil.
type node[T constraints.Ordered] struct {
	ckey   T
	rank   int
	size   int
	nelems int
	first  *listCell[T]
	last   *listCell[T]
	left   *node[T]
	right  *node[T]
}

// leaf reports whether x has no children.
func (x *node[T]) leaf() bool {
	return x.left == nil && x.right == nil
}

// makeLeaf builds a rank-0 node containing exactly one item, whose ckey
// equals that item's true priority since it is the sole occupant of the
// node's list.
func makeLeaf[T constraints.Ordered](elem T) *node[T] {
	cell := &listCell[T]{elem: elem}
	return &node[T]{
		ckey:   elem,
		rank:   0,
		size:   1,
		nelems: 1,
		first:  cell,
		last:   cell,
	}
}

// pushItem appends elem as a new list cell at the end of x's item list and
// increments nelems. The heap operations do not call it: makeLeaf builds its
// single cell directly, and repair and combine move whole lists instead of
// growing them cell by cell.
func (x *node[T]) pushItem(elem T) {
	cell := &listCell[T]{elem: elem, prev: x.last}
	if x.last != nil {
		x.last.next = cell
	}
	if x.first == nil {
		x.first = cell
	}
	x.last = cell
	x.nelems++
}

// popItem removes and returns the first cell of x's item list.
func (x *node[T]) popItem() T {
	cell := x.first
	elem := cell.elem
	x.first = cell.next
	if x.first != nil {
		x.first.prev = nil
	} else {
		x.last = nil
	}
	x.nelems--
	return elem
}

// moveListFrom splices src's entire item list onto the end of x's list and
// transfers src's nelems to x, leaving src's list empty. Precondition:
// src's list is non-empty.
func (x *node[T]) moveListFrom(src *node[T]) {
	if x.last != nil {
		x.last.next = src.first
	}
	if x.first == nil {
		x.first = src.first
	}
	src.first.prev = x.last
	x.last = src.last

	x.nelems += src.nelems
	src.nelems = 0
	src.first, src.last = nil, nil
}

// swapChildren exchanges x's left and right child links.
func (x *node[T]) swapChildren() {
	x.left, x.right = x.right, x.left
}
