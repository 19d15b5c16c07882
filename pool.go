package bitkit

import "sync"

// PackedPool is a pool of reusable packed bitsets sharing one shape.
// Callers running hot loops can Get a cleared set, fill it, and Put it
// back instead of allocating per iteration. Thread-safe.
type PackedPool[W Word] struct {
	pool sync.Pool
	n    int
}

// NewPackedPool creates a pool of n-word packed bitsets.
func NewPackedPool[W Word](n int) *PackedPool[W] {
	return &PackedPool[W]{
		n: n,
		pool: sync.Pool{
			New: func() any {
				b := NewPackedBits[W](n)
				return &b
			},
		},
	}
}

// Get retrieves an empty bitset from the pool.
func (p *PackedPool[W]) Get() *PackedBits[W] {
	return p.pool.Get().(*PackedBits[W])
}

// Put clears the bitset and returns it to the pool. Bitsets of a
// different shape are dropped rather than recycled.
func (p *PackedPool[W]) Put(b *PackedBits[W]) {
	if b == nil || b.Capacity() != p.n*WordCapacity[W]() {
		return
	}
	b.Clear()
	p.pool.Put(b)
}
