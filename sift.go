package softheap

// sift is the soft heap's repair procedure. Precondition: x is a non-leaf
// node with x.nelems < x.size. It repeatedly steals the entire item list
// and ckey of whichever child has the smaller ckey, which refills x above
// its size target but leaves that child deficient in turn; the deficient
// child is then destroyed (if it was a leaf, and so cannot be repaired
// further) or recursively sifted. sift never creates children, only
// consumes from them, and returns once x is full enough or has become a
// leaf itself.
func (h *Heap[T]) sift(x *node[T]) {
	for x.nelems < x.size && !x.leaf() {
		// Normalize so the left child exists and has the smaller ckey.
		if x.left == nil || (x.right != nil && x.left.ckey > x.right.ckey) {
			x.swapChildren()
		}

		x.moveListFrom(x.left)
		x.ckey = x.left.ckey

		if x.left.leaf() {
			h.freeNode(x.left)
			x.left = nil
		} else {
			h.sift(x.left)
		}
	}
}
