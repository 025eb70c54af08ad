package softheap

// combine merges two equal-rank nodes x and y into a freshly built parent of
// rank(x)+1, then sifts it to fill its list. It is the only operation that
// increases a node's rank. h.r is the heap's r(epsilon): the new node's size
// is 1 at or below r, and otherwise grows from x's size by the ceil(3/2)
// recurrence.
func (h *Heap[T]) combine(x, y *node[T]) *node[T] {
	z := h.newNode()
	z.left = x
	z.right = y
	z.rank = x.rank + 1
	z.size = sizeForRank(z.rank, x.size, h.r)
	h.sift(z)

	if h.callbacks != nil {
		h.callbacks.run(z.rank)
	}
	return z
}
