package softheap

import "errors"

var (
	// ErrInvalidEpsilon is returned when constructing a heap with an error
	// parameter that does not lie strictly between 0 and 1.
	ErrInvalidEpsilon = errors.New("epsilon must lie in the open interval (0, 1)")

	// ErrEpsilonMismatch is returned when melding two heaps whose error
	// parameters differ by more than the 0.001 relative tolerance.
	ErrEpsilonMismatch = errors.New("cannot meld heaps with differing epsilon")

	// ErrHeapEmpty is returned when attempting to extract from a heap that
	// contains no elements.
	ErrHeapEmpty = errors.New("the heap is empty and contains no elements")

	// ErrCallbackNotFound is returned when attempting to deregister a
	// combine callback that doesn't exist.
	ErrCallbackNotFound = errors.New("callback not found")
)
