package bitkit

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/hupe1980/bitkit/internal/hwcap"
	"github.com/hupe1980/bitkit/internal/invariants"
)

// Word is the constraint for the unsigned integer types that serve as
// atomic bitset storage.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Set is the point-operation surface shared by every bitset in this
// package, including Sparse.
type Set interface {
	// Insert sets bit i and reports whether it transitioned from
	// unset to set. Repeated inserts of a set bit return false and
	// leave state unchanged.
	Insert(i uint) bool
	// Remove clears bit i unconditionally.
	Remove(i uint)
	// Contains reports whether bit i is set.
	Contains(i uint) bool
	// Count returns the number of set bits.
	Count() int
	// IsEmpty reports whether no bit is set.
	IsEmpty() bool
}

// Bitset is the full capability surface of the fixed-capacity
// representations (*Bits, *Packed, *Vector).
type Bitset interface {
	Set
	// Capacity returns the total number of representable indices.
	Capacity() int
	// InsertRange sets every bit in [lo, hi); hi is clamped to the
	// capacity.
	InsertRange(lo, hi uint)
	// RemoveRange clears every bit in [lo, hi); hi is clamped to the
	// capacity.
	RemoveRange(lo, hi uint)
	// All iterates the set bits in ascending order.
	All() iter.Seq[uint]
	// Reverse iterates the set bits in descending order.
	Reverse() iter.Seq[uint]
}

// Unchecked is the non-validating tier. These entry points never
// check bounds, under any build configuration; the caller must have
// already proven i < Capacity().
type Unchecked interface {
	InsertUnchecked(i uint) bool
	RemoveUnchecked(i uint)
	ContainsUnchecked(i uint) bool
}

// Component is the value-side capability a type must offer to serve
// as a Packed element. Full must return a value with every bit in the
// component's capacity set; the whole-element fast path of the packed
// range edits relies on that equivalence.
type Component[E any] interface {
	Capacity() int
	Count() int
	IsEmpty() bool
	Contains(i uint) bool
	ContainsUnchecked(i uint) bool
	Empty() E
	Full() E
	Clone() E
	Equal(E) bool
	And(E) E
	Or(E) E
	AndNot(E) E
	All() iter.Seq[uint]
	Reverse() iter.Seq[uint]
}

// ComponentPtr is the mutating side of Component, implemented on *E.
type ComponentPtr[E any] interface {
	*E
	Insert(i uint) bool
	InsertUnchecked(i uint) bool
	Remove(i uint)
	RemoveUnchecked(i uint)
	InsertRange(lo, hi uint)
	RemoveRange(lo, hi uint)
	SetAll()
	Clear()
	AndWith(E)
	OrWith(E)
	AndNotWith(E)
}

// wordBits returns the bit width of W.
func wordBits[W Word]() uint {
	var z W
	return uint(unsafe.Sizeof(z)) * 8
}

// rangeMask returns a word with exactly the bits in [lo, hi) set.
// Shifts of a full word width are well defined in Go (they yield 0),
// so hi == wordBits[W]() needs no special case.
func rangeMask[W Word](lo, hi uint) W {
	return (^W(0) << lo) &^ (^W(0) << hi)
}

// boundsCheck panics when i >= capacity, but only in builds with the
// invariants tag. Plain builds compile the check out; the checked
// tier is deliberately not made safe in release builds.
func boundsCheck(i uint, capacity int) {
	if invariants.Enabled && i >= uint(capacity) {
		panic(fmt.Sprintf("bitkit: index %d out of range [0, %d)", i, capacity))
	}
}

// WordCapacity returns the fixed capacity of Bits[W] without needing
// an instance.
func WordCapacity[W Word]() int {
	return int(wordBits[W]())
}

// HardwareVectorBits reports the widest bitwise vector register the
// host CPU offers. It is a sizing hint for callers choosing between
// Vector and Packed compositions; it does not change bitkit's fixed
// lane layout.
func HardwareVectorBits() int {
	return hwcap.VectorBits()
}

// HardwareVectorISA names the detected vector extension, e.g. "avx2"
// or "neon".
func HardwareVectorISA() string {
	return hwcap.ISA()
}
