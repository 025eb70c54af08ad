package softheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeLeaf(t *testing.T) {
	x := makeLeaf(42)
	assert.True(t, x.leaf())
	assert.Equal(t, 42, x.ckey)
	assert.Equal(t, 0, x.rank)
	assert.Equal(t, 1, x.size)
	assert.Equal(t, 1, x.nelems)
	assert.Equal(t, x.first, x.last)
	assert.Equal(t, 42, x.first.elem)
}

func TestNodeLeaf(t *testing.T) {
	x := makeLeaf(1)
	assert.True(t, x.leaf())

	x.left = makeLeaf(2)
	assert.False(t, x.leaf())
}

func TestNodePushAndPopItem(t *testing.T) {
	x := makeLeaf(1)
	x.pushItem(2)
	x.pushItem(3)
	assert.Equal(t, 3, x.nelems)

	assert.Equal(t, 1, x.popItem())
	assert.Equal(t, 2, x.popItem())
	assert.Equal(t, 3, x.popItem())
	assert.Equal(t, 0, x.nelems)
	assert.Nil(t, x.first)
	assert.Nil(t, x.last)
}

func TestNodeMoveListFrom(t *testing.T) {
	dst := makeLeaf(1)
	src := makeLeaf(2)
	src.pushItem(3)

	dst.moveListFrom(src)
	assert.Equal(t, 3, dst.nelems)
	assert.Equal(t, 0, src.nelems)
	assert.Nil(t, src.first)
	assert.Nil(t, src.last)

	got := []int{dst.popItem(), dst.popItem(), dst.popItem()}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestNodeSwapChildren(t *testing.T) {
	x := &node[int]{}
	left := makeLeaf(1)
	right := makeLeaf(2)
	x.left, x.right = left, right

	x.swapChildren()
	assert.Same(t, right, x.left)
	assert.Same(t, left, x.right)
}
