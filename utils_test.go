package softheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRFromEpsilon(t *testing.T) {
	// r(eps) = ceil(log2(1/eps)) + 5
	assert.Equal(t, 5, rFromEpsilon(1)) // degenerate call, log2(1)=0
	assert.Equal(t, 9, rFromEpsilon(0.1))
	assert.Equal(t, 6, rFromEpsilon(0.5))
	assert.Equal(t, 15, rFromEpsilon(1.0/1024))
}

func TestSizeForRank(t *testing.T) {
	r := 5
	assert.Equal(t, 1, sizeForRank(0, 1, r))
	assert.Equal(t, 1, sizeForRank(5, 1, r))
	assert.Equal(t, 2, sizeForRank(6, 1, r))
	assert.Equal(t, 3, sizeForRank(7, 2, r))
}

func TestEpsilonsClose(t *testing.T) {
	assert.True(t, epsilonsClose(0.1, 0.1))
	assert.True(t, epsilonsClose(0.1, 0.1001))
	assert.False(t, epsilonsClose(0.1, 0.5))
}

func TestZeroValue(t *testing.T) {
	assert.Equal(t, 0, zeroValue[int]())
	assert.Equal(t, "", zeroValue[string]())
}
