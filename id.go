package softheap

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator is an interface that details a structure
// that can generate unique IDs. A Heap uses one to stamp itself with a
// debug-correlation ID; it plays no part in the ε/r contract.
type IDGenerator interface{ Next() string }

// IntegerIDGenerator is a generator that uses integers.
type IntegerIDGenerator struct{ NextID int }

// Next returns the next integer ID as a string.
func (g *IntegerIDGenerator) Next() string {
	intID := strconv.Itoa(g.NextID)
	g.NextID++
	return intID
}

// UUIDGenerator is a generator that uses UUIDs.
type UUIDGenerator struct{}

// Next returns a new UUID as a string (UUIDv4).
func (g *UUIDGenerator) Next() string {
	return uuid.New().String()
}
