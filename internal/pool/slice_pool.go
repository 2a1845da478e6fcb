package pool

import "sync"

// SlicePool reuses typed slices across calls.
//
// Workers take their local result buffers from a SlicePool so that no two
// workers share an allocation path and repeated invocations do not reallocate
// worst-case sized buffers. Slices whose capacity exceeds maxRetain are not
// returned to the pool.
type SlicePool[T any] struct {
	pool      sync.Pool
	maxRetain int
}

// NewSlicePool creates a SlicePool. A maxRetain of zero retains slices of any size.
func NewSlicePool[T any](maxRetain int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
		maxRetain: maxRetain,
	}
}

// Get retrieves a slice with length size from the pool.
//
// The contents of the returned slice are unspecified; callers overwrite what
// they read. If the pooled slice has insufficient capacity, a new slice is
// allocated. The caller must call the returned release function exactly once
// when done with the slice, and must not use the slice afterwards.
//
// Example:
//
//	runs, release := runPool.Get(len(partition))
//	defer release()
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	if ptr == nil {
		ptr = &[]T{}
	}

	slice := *ptr
	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.put(ptr) }
}

func (p *SlicePool[T]) put(ptr *[]T) {
	if p.maxRetain > 0 && cap(*ptr) > p.maxRetain {
		return
	}
	p.pool.Put(ptr)
}
