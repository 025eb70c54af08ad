package softheap

// HeapConfig controls the ambient behavior of a heap: whether node
// allocations are recycled through a pool, and how the heap's
// debug-correlation ID is generated. Neither setting affects the ε/r
// contract or the corruption guarantee.
type HeapConfig struct {
	// UsePool indicates whether node allocations should be recycled through
	// a sync.Pool instead of allocated fresh each time. List cells are
	// always allocated fresh.
	UsePool bool
	// IDGenerator produces the heap's debug-correlation ID. If nil, the
	// default IDGenerator (UUIDGenerator) is used.
	IDGenerator IDGenerator
}

// GetGenerator returns the configured IDGenerator, falling back to a
// UUIDGenerator when none was supplied.
func (h *HeapConfig) GetGenerator() IDGenerator {
	if h.IDGenerator == nil {
		return &UUIDGenerator{}
	}
	return h.IDGenerator
}
