package bitkit

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Iterable is any set exposing ascending iteration over its members.
// All bitkit representations satisfy it.
type Iterable interface {
	All() iter.Seq[uint]
}

// ToRoaring copies the members of s into a fresh roaring bitmap.
// Roaring's universe is 32-bit, so every member must be below 1<<32;
// larger members are a caller error and would wrap.
func ToRoaring(s Iterable) *roaring.Bitmap {
	rb := roaring.New()
	for i := range s.All() {
		rb.Add(uint32(i))
	}
	return rb
}

// SparseFromRoaring builds a sparse bitset holding the members of rb.
func SparseFromRoaring[W Word](rb *roaring.Bitmap) *Sparse[W] {
	s := NewSparse[W]()
	it := rb.Iterator()
	for it.HasNext() {
		s.Insert(uint(it.Next()))
	}
	return s
}
