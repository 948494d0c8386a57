// Package podium pools the small flat float32 buffers the hot-path
// modifier evaluation loop allocates every tick (typical arity <= 4),
// cutting allocator pressure in the per-frame path.
package podium

import "sync"

// bufCapacity covers every Base Value kind's Euler arity (1/3/4) in
// one pooled size class.
const bufCapacity = 4

var pool = sync.Pool{
	New: func() any {
		b := make([]float32, 0, bufCapacity)
		return &b
	},
}

// Get returns an empty, zero-length buffer with capacity bufCapacity.
// Callers that need more room may append past it; such buffers should
// not be returned to the pool (see Put).
func Get() *[]float32 {
	b := pool.Get().(*[]float32)
	*b = (*b)[:0]
	return b
}

// Put returns b to the pool. Buffers whose capacity grew past
// bufCapacity (because a caller appended beyond it) are dropped
// instead of pooled, so the pool never retains an oversized buffer.
func Put(b *[]float32) {
	if cap(*b) != bufCapacity {
		return
	}
	pool.Put(b)
}
