// Package rowcollector implements the engine's append-only row sink: a
// two-tier stack-first, heap-spill container (spec.md §4.5). It plays
// the same pre-size-then-grow role that fastparser/pool.go's
// fieldPool/bufferPool play for the teacher's parsers, generalized from
// a sync.Pool of reusable buffers to a single growable sequence owned
// by one in-flight parse.
package rowcollector

// DefaultStackCapacity is S_stack, the size of the first-tier fixed
// array. The reference implementation spec.md describes uses 4096;
// any value in 1024-131072 is acceptable.
const DefaultStackCapacity = 4096

// Collector is an ordered, append-only sequence of rows of type T. The
// first DefaultStackCapacity (or caller-supplied) rows live in one
// pre-sized allocation; the (S_stack+1)-th Push spills to a heap array
// of twice that capacity, copies the stack contents across, and
// thereafter grows by Go's own append doubling.
//
// Collector is not safe for concurrent use; each in-flight parse or
// streaming session owns its own Collector, matching the "no shared
// mutable parser state" resource model.
type Collector[T any] struct {
	stack     []T
	stackLen  int
	heap      []T
	usingHeap bool
	oom       bool

	// limit, when nonzero, simulates allocator exhaustion at a fixed
	// row count. Real processes don't get a recoverable signal when an
	// allocation fails catastrophically; this is the hook tests use to
	// exercise the oom_occurred path deterministically instead of
	// trying to actually exhaust memory.
	limit int
}

// New returns a Collector whose first tier holds stackCapacity rows
// before spilling. A non-positive stackCapacity uses DefaultStackCapacity.
func New[T any](stackCapacity int) *Collector[T] {
	if stackCapacity <= 0 {
		stackCapacity = DefaultStackCapacity
	}
	return &Collector[T]{stack: make([]T, stackCapacity)}
}

// NewWithLimit is like New, but Push begins reporting OOM once the
// collector holds limit rows. limit <= 0 means unbounded.
func NewWithLimit[T any](stackCapacity, limit int) *Collector[T] {
	c := New[T](stackCapacity)
	c.limit = limit
	return c
}

// Push appends row. It returns false if the collector has already hit
// its OOM condition (the simulated allocator-failure limit) or an
// earlier Push set the OOM flag; in both cases row is dropped and every
// row collected so far remains intact.
func (c *Collector[T]) Push(row T) bool {
	if c.oom {
		return false
	}
	if c.limit > 0 && c.Len() >= c.limit {
		c.oom = true
		return false
	}

	if !c.usingHeap {
		if c.stackLen < len(c.stack) {
			c.stack[c.stackLen] = row
			c.stackLen++
			return true
		}
		c.heap = make([]T, c.stackLen, 2*len(c.stack))
		copy(c.heap, c.stack[:c.stackLen])
		c.usingHeap = true
	}

	c.heap = append(c.heap, row)
	return true
}

// Len returns the number of rows collected so far.
func (c *Collector[T]) Len() int {
	if c.usingHeap {
		return len(c.heap)
	}
	return c.stackLen
}

// OOM reports whether the collector has dropped one or more rows due
// to its allocator-failure condition.
func (c *Collector[T]) OOM() bool {
	return c.oom
}

// Finish builds the final ordered row sequence from whichever backing
// tier is currently in use.
func (c *Collector[T]) Finish() []T {
	if c.usingHeap {
		return c.heap
	}
	return c.stack[:c.stackLen]
}

// Deinit releases any heap backing and resets the collector to empty,
// for reuse across parses.
func (c *Collector[T]) Deinit() {
	c.heap = nil
	c.usingHeap = false
	c.stackLen = 0
	c.oom = false
}
