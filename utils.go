package softheap

import "math"

// epsilonTolerance is the relative tolerance within which two heaps'
// error parameters are considered compatible for melding.
const epsilonTolerance = 0.001

// rFromEpsilon computes r(epsilon) = ceil(log2(1/epsilon)) + 5, the
// maximum node rank guaranteed to hold only uncorrupted elements.
func rFromEpsilon(epsilon float64) int {
	return int(math.Ceil(math.Log2(1/epsilon))) + 5
}

// sizeForRank computes a combined node's target occupancy given its rank,
// the size of one of its (equal-rank) children, and the heap's r.
// size is 1 at or below r, and grows by the ceil(3/2) recurrence above it.
func sizeForRank(rank, childSize, r int) int {
	if rank <= r {
		return 1
	}
	return (3*childSize + 1) / 2
}

// epsilonsClose reports whether two error parameters are close enough,
// under the relative tolerance, to meld their heaps.
func epsilonsClose(a, b float64) bool {
	maxEps := math.Max(a, b)
	minEps := math.Min(a, b)
	return 1-minEps/maxEps <= epsilonTolerance
}

// zeroValue returns the zero value of type T, used on error paths where
// no meaningful item exists to return.
func zeroValue[T any]() T {
	var zero T
	return zero
}
