package softheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeTree(t *testing.T) {
	tr := makeTree(5)
	assert.Equal(t, 0, tr.rank)
	assert.Same(t, tr, tr.sufmin)
	assert.Equal(t, 5, tr.root.ckey)
}

func TestUpdateSuffixMinSingleTree(t *testing.T) {
	tr := makeTree(5)
	updateSuffixMin(tr)
	assert.Same(t, tr, tr.sufmin)
}

func TestUpdateSuffixMinChain(t *testing.T) {
	// Build three trees, increasing rank, with ckeys 7, 3, 9.
	t1 := makeTree(7)
	t1.rank = 0
	t2 := makeTree(3)
	t2.rank = 1
	t3 := makeTree(9)
	t3.rank = 2

	t1.next, t2.prev = t2, t1
	t2.next, t3.prev = t3, t2

	updateSuffixMin(t3)

	assert.Same(t, t3, t3.sufmin)
	assert.Same(t, t2, t2.sufmin) // 3 < 9
	assert.Same(t, t2, t1.sufmin) // min(7,3,9) = 3, at t2
}

func TestUpdateSuffixMinPrefersEarlierOnTie(t *testing.T) {
	t1 := makeTree(4)
	t1.rank = 0
	t2 := makeTree(4)
	t2.rank = 1

	t1.next, t2.prev = t2, t1

	updateSuffixMin(t2)
	assert.Same(t, t1, t1.sufmin) // tie: prefers t1 itself
}
