package softheap

import (
	"github.com/mohae/deepcopy"
	"golang.org/x/exp/constraints"
)

// Heap is an approximate min-priority queue. Given an error parameter
// epsilon, in any sequence of operations containing n inserts, at most
// floor(epsilon*n) items may be extracted with an inflated working
// priority strictly greater than their true insertion priority; all other
// items emerge with their true priority. Insert, meld, and extract-min run
// in amortized O(1); insert is O(log(1/epsilon)) worst case.
//
// A Heap is not safe for concurrent use.
type Heap[T constraints.Ordered] struct {
	first *tree[T]
	rank  int // max rootlist rank, or -1 when empty
	count int // total live items, tracked for Length

	epsilon float64
	r       int

	id     string
	pool   pool[*node[T]]
	config HeapConfig

	callbacks *combineCallbacks
}

// NewEmpty constructs an empty heap with the given error parameter.
// Returns ErrInvalidEpsilon if epsilon is not strictly between 0 and 1.
func NewEmpty[T constraints.Ordered](epsilon float64, config ...HeapConfig) (*Heap[T], error) {
	if epsilon <= 0 || epsilon >= 1 {
		return nil, ErrInvalidEpsilon
	}

	var cfg HeapConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	h := &Heap[T]{
		rank:    -1,
		epsilon: epsilon,
		r:       rFromEpsilon(epsilon),
		id:      cfg.GetGenerator().Next(),
		config:  cfg,
		pool: newPool(cfg.UsePool, func() *node[T] {
			return &node[T]{}
		}),
	}
	return h, nil
}

// New constructs a heap with the given error parameter containing exactly
// one item. Returns ErrInvalidEpsilon if epsilon is not strictly between 0
// and 1.
func New[T constraints.Ordered](item T, epsilon float64, config ...HeapConfig) (*Heap[T], error) {
	h, err := NewEmpty[T](epsilon, config...)
	if err != nil {
		return nil, err
	}
	h.first = makeTree(item)
	h.rank = 0
	h.count = 1
	return h, nil
}

// newNode fetches a node from the heap's pool and resets it to the zero
// value, so a recycled node from a previous combine/destroy cycle never
// leaks stale links or list cells into its next life.
func (h *Heap[T]) newNode() *node[T] {
	x := h.pool.Get()
	*x = node[T]{}
	return x
}

// freeNode returns a node to the heap's pool once sift or extract-min has
// determined it is no longer reachable from any tree.
func (h *Heap[T]) freeNode(x *node[T]) {
	h.pool.Put(x)
}

// ID returns the heap's debug-correlation ID, generated at construction.
// It carries no meaning for the ε/r contract.
func (h *Heap[T]) ID() string { return h.id }

// IsEmpty reports whether the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool { return h.first == nil }

// Length returns the number of items currently held by the heap.
func (h *Heap[T]) Length() int { return h.count }

// Epsilon returns the heap's error parameter.
func (h *Heap[T]) Epsilon() float64 { return h.epsilon }

// RegisterCombineCallback subscribes fn to be invoked, with the rank of the
// resulting node, every time the meld engine combines two equal-rank trees.
func (h *Heap[T]) RegisterCombineCallback(fn func(rank int)) CombineCallback {
	if h.callbacks == nil {
		h.callbacks = &combineCallbacks{callbacks: make(map[int]CombineCallback)}
	}
	return h.callbacks.register(fn)
}

// DeregisterCombineCallback removes a previously registered combine
// callback. Returns ErrCallbackNotFound if the ID is unknown.
func (h *Heap[T]) DeregisterCombineCallback(id int) error {
	if h.callbacks == nil {
		return ErrCallbackNotFound
	}
	return h.callbacks.deregister(id)
}

// insertTree splices t into h's rootlist immediately before successor,
// updating h.first if successor was first. Precondition: rank(t) <=
// rank(successor) and, if successor has a predecessor, rank(t) >
// rank(successor.prev).
func insertTree[T constraints.Ordered](h *Heap[T], t, successor *tree[T]) {
	t.next = successor
	if successor.prev == nil {
		h.first = t
	} else {
		successor.prev.next = t
	}
	t.prev = successor.prev
	successor.prev = t
}

// removeTree unlinks t from h's rootlist, updating h.first if t was first.
// The tree shell itself is not freed here.
func removeTree[T constraints.Ordered](h *Heap[T], t *tree[T]) {
	if t.prev == nil {
		h.first = t.next
	} else {
		t.prev.next = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	}
}

// Destroy releases every node, list cell, and tree shell owned by the heap
// in O(total items) time and leaves it empty. Recycled nodes are returned
// to the heap's pool, so a heap built with HeapConfig.UsePool can reuse
// them on its next build-up. Destroy itself never fails.
func (h *Heap[T]) Destroy() {
	for t := h.first; t != nil; {
		next := t.next
		h.destroyNode(t.root)
		t = next
	}
	h.first = nil
	h.rank = -1
	h.count = 0
}

// destroyNode recursively releases x and its entire subtree back to the
// heap's pool.
func (h *Heap[T]) destroyNode(x *node[T]) {
	if x == nil {
		return
	}
	h.destroyNode(x.left)
	h.destroyNode(x.right)
	h.freeNode(x)
}

// Clone returns an independent deep copy of the heap's rootlist: mutating
// the clone never affects the original, and vice versa. Intended for
// diagnostics and invariant-checking tests, not as a persistence mechanism.
func (h *Heap[T]) Clone() *Heap[T] {
	clone := &Heap[T]{
		rank:    h.rank,
		count:   h.count,
		epsilon: h.epsilon,
		r:       h.r,
		id:      h.config.GetGenerator().Next(),
		config:  h.config,
		pool: newPool(h.config.UsePool, func() *node[T] {
			return &node[T]{}
		}),
	}

	var prevTree *tree[T]
	for t := h.first; t != nil; t = t.next {
		ct := &tree[T]{root: cloneNode(t.root), rank: t.rank}
		if prevTree == nil {
			clone.first = ct
		} else {
			prevTree.next = ct
			ct.prev = prevTree
		}
		prevTree = ct
	}
	if clone.first != nil {
		updateSuffixMin(prevTree)
	}
	return clone
}

// cloneNode recursively deep-copies a node subtree, including its item
// list, sharing no pointers with the original.
func cloneNode[T constraints.Ordered](x *node[T]) *node[T] {
	if x == nil {
		return nil
	}

	cloned := &node[T]{
		ckey:   deepcopy.Copy(x.ckey).(T),
		rank:   x.rank,
		size:   x.size,
		nelems: x.nelems,
		left:   cloneNode(x.left),
		right:  cloneNode(x.right),
	}

	var prevCell *listCell[T]
	for c := x.first; c != nil; c = c.next {
		cc := &listCell[T]{elem: deepcopy.Copy(c.elem).(T)}
		if prevCell == nil {
			cloned.first = cc
		} else {
			prevCell.next = cc
			cc.prev = prevCell
		}
		prevCell = cc
	}
	cloned.last = prevCell

	return cloned
}
