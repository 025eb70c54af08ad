package softheap

import "golang.org/x/exp/constraints"

// tree owns one soft-heap root node and sits in a heap's rootlist. rank
// mirrors root.rank. prev/next link it into the strictly-increasing-rank
// rootlist; sufmin names the tree within the suffix [this, next, ...] whose
// root has minimum ckey, preferring this tree itself on ties. sufmin is a
// non-owning reference: it is never used to extend a tree's lifetime.
type tree[T constraints.Ordered] struct {
	root   *node[T]
	rank   int
	prev   *tree[T]
	next   *tree[T]
	sufmin *tree[T]
}

// makeTree builds a singleton rank-0 tree containing exactly one item.
func makeTree[T constraints.Ordered](elem T) *tree[T] {
	t := &tree[T]{root: makeLeaf(elem), rank: 0}
	t.sufmin = t
	return t
}

// updateSuffixMin walks backward from t to the head of the rootlist,
// recomputing sufmin at every tree visited. Call after any mutation whose
// "last affected tree" is t: the tail of a meld's carry pass, an extract
// that leaves a non-destroyed root, or a tree removal (starting from the
// removed tree's predecessor).
func updateSuffixMin[T constraints.Ordered](t *tree[T]) {
	for t != nil {
		if t.next == nil || t.root.ckey <= t.next.sufmin.root.ckey {
			t.sufmin = t
		} else {
			t.sufmin = t.next.sufmin
		}
		t = t.prev
	}
}
