package softheap

import (
	"fmt"
	"sync"
)

// combineCallbacks maintains a registry of callback functions (ID → function)
// invoked whenever the meld engine combines two equal-rank trees into one.
// Subscribers receive the rank of the freshly combined node, which collaborators
// can use to track the amortized cost of a sequence of operations without
// reaching into heap internals.
type combineCallbacks struct {
	callbacks map[int]CombineCallback
	curId     int
	lock      sync.RWMutex
}

// CombineCallback stores a unique ID and the function to invoke on combine.
type CombineCallback struct {
	ID       int
	Function func(rank int)
}

// run invokes each registered callback with the rank of the node just combined.
func (c *combineCallbacks) run(rank int) {
	c.lock.RLock()
	for _, callback := range c.callbacks {
		callback.Function(rank)
	}
	c.lock.RUnlock()
}

// Deregister removes the callback with the specified ID, returning an error
// wrapping ErrCallbackNotFound if it does not exist.
func (c *combineCallbacks) deregister(id int) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, exists := c.callbacks[id]; !exists {
		return fmt.Errorf("%w: %d is not an ID of a callback", ErrCallbackNotFound, id)
	}
	delete(c.callbacks, id)
	return nil
}

// Register adds a callback function to be called on each combine and returns
// a CombineCallback struct containing the function and its unique ID.
func (c *combineCallbacks) register(fn func(rank int)) CombineCallback {
	c.lock.Lock()
	defer c.lock.Unlock()
	newId := c.curId + 1
	callback := CombineCallback{ID: newId, Function: fn}
	c.callbacks[newId] = callback
	c.curId = newId
	return callback
}
