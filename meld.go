package softheap

import "golang.org/x/exp/constraints"

// mergeInto walks a's rootlist and splices each of its trees immediately
// before the first tree in b with rank >= its own, preserving b's
// nondecreasing rank order (now possibly with runs of equal rank up to
// length 3). Precondition: rank(a) <= rank(b).
func mergeInto[T constraints.Ordered](a, b *Heap[T]) {
	currP := a.first
	currQ := b.first

	for currP != nil {
		for currQ.rank < currP.rank {
			currQ = currQ.next
		}
		next := currP.next
		insertTree(b, currP, currQ)
		currP = next
	}
}

// repeatedCombine runs the binomial-style carry pass over h's rootlist,
// combining every run of two equal-rank trees into one of the next rank up
// (a run of three defers its first tree and lets the remaining two carry),
// stopping once a lone tree of rank greater than smallerRank is reached, since
// no tree beyond that point can have a partner. It finishes by updating h's
// top rank and the suffix-minimum chain from the last tree visited.
func (h *Heap[T]) repeatedCombine(smallerRank int) {
	curr := h.first

loop:
	for curr.next != nil {
		two := curr.rank == curr.next.rank
		three := two && curr.next.next != nil && curr.rank == curr.next.next.rank

		switch {
		case !two:
			if curr.rank > smallerRank {
				break loop
			}
			curr = curr.next
		case !three:
			curr.root = h.combine(curr.root, curr.next.root)
			curr.rank = curr.root.rank
			removeTree(h, curr.next)
		default:
			curr = curr.next
		}
	}

	if curr.rank > h.rank {
		h.rank = curr.rank
	}
	updateSuffixMin(curr)
}

// Meld combines heaps p and q into a single heap, destructively consuming
// both: the returned heap is the only handle that should be used
// afterward. Returns ErrEpsilonMismatch if p and q's error parameters
// differ by more than the 0.001 relative tolerance.
func Meld[T constraints.Ordered](p, q *Heap[T]) (*Heap[T], error) {
	if !epsilonsClose(p.epsilon, q.epsilon) {
		return nil, ErrEpsilonMismatch
	}

	var a, b *Heap[T]
	if p.rank >= q.rank {
		a, b = q, p
	} else {
		a, b = p, q
	}

	total := p.count + q.count

	if b.first != nil {
		mergeInto(a, b)
		b.repeatedCombine(a.rank)
	}
	b.count = total

	a.first = nil
	a.rank = -1
	a.count = 0

	return b, nil
}
