package bitkit

import (
	"fmt"
	"iter"
	"math/bits"
)

// Bits is a bitset backed by a single unsigned integer word. Its
// capacity is the bit width of W and its zero value is the empty set.
// Bits is a plain comparable value type: assignment copies it.
type Bits[W Word] struct {
	bits W
}

// EmptyBits returns the empty word bitset.
func EmptyBits[W Word]() Bits[W] {
	return Bits[W]{}
}

// FullBits returns the word bitset with every bit set.
func FullBits[W Word]() Bits[W] {
	return Bits[W]{bits: ^W(0)}
}

// Capacity returns the bit width of W.
func (Bits[W]) Capacity() int {
	return int(wordBits[W]())
}

// Empty returns the empty set of the same type.
func (Bits[W]) Empty() Bits[W] {
	return Bits[W]{}
}

// Full returns the set with every bit in the capacity set.
func (Bits[W]) Full() Bits[W] {
	return Bits[W]{bits: ^W(0)}
}

// Clone returns a copy. Bits is a value type, so this is trivial; it
// exists to satisfy Component.
func (b Bits[W]) Clone() Bits[W] {
	return b
}

// Equal reports whether both sets hold the same members.
func (b Bits[W]) Equal(o Bits[W]) bool {
	return b.bits == o.bits
}

// Insert sets bit i and reports whether it was previously unset.
func (b *Bits[W]) Insert(i uint) bool {
	boundsCheck(i, b.Capacity())
	return b.InsertUnchecked(i)
}

// InsertUnchecked is Insert without the bounds assertion.
func (b *Bits[W]) InsertUnchecked(i uint) bool {
	mask := W(1) << i
	prev := b.bits
	b.bits |= mask
	return prev&mask == 0
}

// Remove clears bit i. Removing an unset bit is a no-op.
func (b *Bits[W]) Remove(i uint) {
	boundsCheck(i, b.Capacity())
	b.RemoveUnchecked(i)
}

// RemoveUnchecked is Remove without the bounds assertion.
func (b *Bits[W]) RemoveUnchecked(i uint) {
	b.bits &^= W(1) << i
}

// Contains reports whether bit i is set.
func (b Bits[W]) Contains(i uint) bool {
	boundsCheck(i, b.Capacity())
	return b.ContainsUnchecked(i)
}

// ContainsUnchecked is Contains without the bounds assertion.
func (b Bits[W]) ContainsUnchecked(i uint) bool {
	return b.bits&(W(1)<<i) != 0
}

// Count returns the number of set bits.
func (b Bits[W]) Count() int {
	return bits.OnesCount64(uint64(b.bits))
}

// IsEmpty reports whether no bit is set.
func (b Bits[W]) IsEmpty() bool {
	return b.bits == 0
}

// InsertRange sets every bit in [lo, hi) with one mask OR; hi is
// clamped to the capacity.
func (b *Bits[W]) InsertRange(lo, hi uint) {
	if c := uint(b.Capacity()); hi > c {
		hi = c
	}
	if lo >= hi {
		return
	}
	b.bits |= rangeMask[W](lo, hi)
}

// RemoveRange clears every bit in [lo, hi) with one mask AND-NOT; hi
// is clamped to the capacity.
func (b *Bits[W]) RemoveRange(lo, hi uint) {
	if c := uint(b.Capacity()); hi > c {
		hi = c
	}
	if lo >= hi {
		return
	}
	b.bits &^= rangeMask[W](lo, hi)
}

// SetAll sets every bit in the capacity.
func (b *Bits[W]) SetAll() {
	b.bits = ^W(0)
}

// Clear removes all members.
func (b *Bits[W]) Clear() {
	b.bits = 0
}

// And returns the intersection.
func (b Bits[W]) And(o Bits[W]) Bits[W] {
	b.bits &= o.bits
	return b
}

// Or returns the union.
func (b Bits[W]) Or(o Bits[W]) Bits[W] {
	b.bits |= o.bits
	return b
}

// AndNot returns the difference b \ o.
func (b Bits[W]) AndNot(o Bits[W]) Bits[W] {
	b.bits &^= o.bits
	return b
}

// AndWith intersects in place.
func (b *Bits[W]) AndWith(o Bits[W]) {
	b.bits &= o.bits
}

// OrWith unions in place.
func (b *Bits[W]) OrWith(o Bits[W]) {
	b.bits |= o.bits
}

// AndNotWith subtracts in place.
func (b *Bits[W]) AndNotWith(o Bits[W]) {
	b.bits &^= o.bits
}

// All iterates the set bits in ascending order. The sequence is lazy
// over a snapshot of the word taken when iteration starts and can be
// ranged over again to restart.
func (b Bits[W]) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		w := b.bits
		for w != 0 {
			i := uint(bits.TrailingZeros64(uint64(w)))
			if !yield(i) {
				return
			}
			w &= w - 1 // clear lowest set bit
		}
	}
}

// Reverse iterates the set bits in descending order.
func (b Bits[W]) Reverse() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		w := b.bits
		for w != 0 {
			i := uint(bits.Len64(uint64(w))) - 1
			if !yield(i) {
				return
			}
			w &^= W(1) << i
		}
	}
}

// Cursor returns a double-ended cursor over the current members.
// Next and NextBack consume opposite ends of one remaining-bits word,
// so interleaving them visits every member exactly once.
func (b Bits[W]) Cursor() Cursor[W] {
	return Cursor[W]{bits: b.bits}
}

// Cursor walks the members of a Bits value from either end.
type Cursor[W Word] struct {
	bits W
}

// Next pops the smallest remaining member.
func (c *Cursor[W]) Next() (uint, bool) {
	if c.bits == 0 {
		return 0, false
	}
	i := uint(bits.TrailingZeros64(uint64(c.bits)))
	c.bits &= c.bits - 1
	return i, true
}

// NextBack pops the largest remaining member.
func (c *Cursor[W]) NextBack() (uint, bool) {
	if c.bits == 0 {
		return 0, false
	}
	i := uint(bits.Len64(uint64(c.bits))) - 1
	c.bits &^= W(1) << i
	return i, true
}

func (b Bits[W]) String() string {
	return fmt.Sprintf("Bits(%0*x)", b.Capacity()/4, uint64(b.bits))
}

var (
	_ Bitset    = (*Bits[uint64])(nil)
	_ Unchecked = (*Bits[uint64])(nil)
)
