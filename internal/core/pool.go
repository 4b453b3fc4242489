package core

// Pool is an elastic reusable-object container. Acquire hands out a reset
// instance, reusing a released one when available and constructing a new one
// otherwise, so steady-state play allocates nothing once warm. The pool
// never refuses an acquire; callers that need a hard capacity bound (the
// projectile manager) keep their own fixed slot array instead.
//
// T is typically a pointer type; the pool tracks identity so every managed
// object is in exactly one of the free list or the in-use set.
type Pool[T comparable] struct {
	newFn   func() T
	resetFn func(T)
	free    []T
	inUse   map[T]struct{}
	created int
}

// NewPool creates a pool that constructs instances with newFn and prepares
// them for reuse with resetFn. resetFn may be nil when resetting is the
// caller's job.
func NewPool[T comparable](newFn func() T, resetFn func(T)) *Pool[T] {
	return &Pool[T]{
		newFn:  newFn,
		inUse:  make(map[T]struct{}),
		resetFn: resetFn,
	}
}

// Acquire returns a reset, in-use instance. The free list is drained before
// any new instance is constructed.
func (p *Pool[T]) Acquire() T {
	var obj T
	if n := len(p.free); n > 0 {
		obj = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		obj = p.newFn()
		p.created++
	}
	if p.resetFn != nil {
		p.resetFn(obj)
	}
	p.inUse[obj] = struct{}{}
	return obj
}

// Release returns an in-use instance to the free list.
// Releasing an object the pool does not consider in-use is a no-op, so
// double-release cannot corrupt the free list.
func (p *Pool[T]) Release(obj T) {
	if _, ok := p.inUse[obj]; !ok {
		return
	}
	delete(p.inUse, obj)
	p.free = append(p.free, obj)
}

// ReleaseAll reclaims every in-use instance.
func (p *Pool[T]) ReleaseAll() {
	for obj := range p.inUse {
		delete(p.inUse, obj)
		p.free = append(p.free, obj)
	}
}

// Stats returns the free count, in-use count, and total created.
// Free + in-use always equals total created.
func (p *Pool[T]) Stats() (free, inUse, created int) {
	return len(p.free), len(p.inUse), p.created
}
