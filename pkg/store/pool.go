package store

// Pool is an explicit typed free list scoped to one handle: Borrow an
// item, mutate it, Return it before the top-level learn or tokenize
// call completes. Never leak a borrowed item across a call boundary.
//
// Pool is not safe for concurrent use, consistent with the handle it
// is attached to (spec §5, §9).
type Pool[T any] struct {
	free  []T
	newFn func() T
	reset func(T) T
}

// NewPool creates a Pool. newFn allocates a fresh item when the free
// list is empty; resetFn, if non-nil, clears an item before it is
// returned to the free list.
func NewPool[T any](newFn func() T, resetFn func(T) T) *Pool[T] {
	return &Pool[T]{newFn: newFn, reset: resetFn}
}

// Borrow returns a free item, or a freshly allocated one.
func (p *Pool[T]) Borrow() T {
	n := len(p.free)
	if n == 0 {
		return p.newFn()
	}
	item := p.free[n-1]
	p.free = p.free[:n-1]
	return item
}

// Return gives an item back to the pool.
func (p *Pool[T]) Return(item T) {
	if p.reset != nil {
		item = p.reset(item)
	}
	p.free = append(p.free, item)
}
