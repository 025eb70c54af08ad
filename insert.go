package softheap

// Insert adds item to the heap. If the heap is empty, it installs a
// rank-0 singleton tree directly; doing this through Meld instead would
// destructively consume the receiver itself. Otherwise it folds a
// singleton tree into the existing rootlist via the same merge-then-carry
// machinery Meld uses. Insert never fails for a heap constructed with a
// valid epsilon.
func (h *Heap[T]) Insert(item T) {
	if h.IsEmpty() {
		h.first = makeTree(item)
		h.rank = 0
		h.count = 1
		return
	}

	singleton := &Heap[T]{first: makeTree(item), rank: 0}
	mergeInto(singleton, h)
	h.repeatedCombine(singleton.rank)
	h.count++
}
