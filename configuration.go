package dlist

// OverflowPolicy controls what happens when an insert would push a bounded
// list past its maximum size.
type OverflowPolicy int

const (
	// RejectWhenFull makes inserts into a full list fail with ErrListFull.
	RejectWhenFull OverflowPolicy = iota
	// EvictOldest deletes from the head (FIFO) until the new element fits.
	EvictOldest
)

// Unlimited disables the capacity bound.
const Unlimited = 0

type Configuration struct {
	elementSize int
	maxSize     int
	policy      OverflowPolicy
	print       PrintFunc
	compare     CompareFunc
	free        FreeFunc
	copyFn      CopyFunc
}

// Configure creates a configuration for a list holding elements of the given
// fixed byte size. Defaults: unbounded capacity, rejecting policy, no
// callbacks.
func Configure(elementSize int) *Configuration {
	return &Configuration{
		elementSize: elementSize,
		maxSize:     Unlimited,
		policy:      RejectWhenFull,
	}
}

// Print sets the callback used to render an element for display.
func (c *Configuration) Print(fn PrintFunc) *Configuration {
	c.print = fn
	return c
}

// Compare sets the callback used to order and equality-test elements.
func (c *Configuration) Compare(fn CompareFunc) *Configuration {
	c.compare = fn
	return c
}

// Free sets the callback invoked on an element exactly once when its node is
// released.
func (c *Configuration) Free(fn FreeFunc) *Configuration {
	c.free = fn
	return c
}

// Copy sets the callback used to deep-copy an element into list-owned
// storage. Without it, elements are copied byte-for-byte.
func (c *Configuration) Copy(fn CopyFunc) *Configuration {
	c.copyFn = fn
	return c
}

// MaxSize bounds the list to max elements and selects the overflow policy.
// Pass Unlimited to remove the bound.
func (c *Configuration) MaxSize(max int, policy OverflowPolicy) *Configuration {
	c.maxSize = max
	c.policy = policy
	return c
}
