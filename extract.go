package softheap

// ExtractMin removes and returns an item from the node of minimum working
// ckey in the heap — a close, but not always exact, stand-in for the true
// minimum. Returns ErrHeapEmpty if the heap contains no elements.
func (h *Heap[T]) ExtractMin() (T, error) {
	item, _, err := h.ExtractMinWithCKey()
	return item, err
}

// ExtractMinWithCKey removes and returns an item along with the working
// ckey it was traveling under at the moment of extraction — an upper bound
// on its true priority. Returns ErrHeapEmpty if the heap contains no
// elements.
func (h *Heap[T]) ExtractMinWithCKey() (T, T, error) {
	if h.IsEmpty() {
		return zeroValue[T](), zeroValue[T](), ErrHeapEmpty
	}

	t := h.first.sufmin
	x := t.root
	item := x.popItem()
	ckey := x.ckey
	h.count--

	if x.nelems <= x.size/2 {
		switch {
		case !x.leaf():
			h.sift(x)
			updateSuffixMin(t)
		case x.nelems == 0:
			h.freeNode(x)
			removeTree(h, t)

			if t.next == nil {
				if t.prev == nil {
					h.rank = -1
				} else {
					h.rank = t.prev.rank
				}
			}

			if t.prev != nil {
				updateSuffixMin(t.prev)
			}
		}
		// A non-empty leaf is left untouched; the next extract handles it.
	}

	return item, ckey, nil
}
