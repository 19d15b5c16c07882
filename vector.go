package bitkit

import (
	"fmt"
	"iter"
	"math/bits"
)

// VectorLanes is the fixed lane count of Vector. Eight 64-bit lanes
// fill one 512-bit register and one cache line.
const VectorLanes = 8

// Vector is a bitset backed by a fixed array of 8 lanes of W, sized
// to a hardware vector register (512 bits at W = uint64). Bulk AND/OR
// and whole-lane range edits are whole-array loops that stay in
// registers. Vector is a plain comparable value type and its zero
// value is the empty set.
type Vector[W Word] struct {
	lanes [VectorLanes]W
}

// VectorCapacity returns the fixed capacity of Vector[W] without
// needing an instance.
func VectorCapacity[W Word]() int {
	return VectorLanes * int(wordBits[W]())
}

// EmptyVector returns the empty vector bitset.
func EmptyVector[W Word]() Vector[W] {
	return Vector[W]{}
}

// FullVector returns the vector bitset with every bit set.
func FullVector[W Word]() Vector[W] {
	var v Vector[W]
	v.SetAll()
	return v
}

// Capacity returns lane count × lane width.
func (Vector[W]) Capacity() int {
	return VectorCapacity[W]()
}

// Empty returns the empty set of the same type.
func (Vector[W]) Empty() Vector[W] {
	return Vector[W]{}
}

// Full returns the set with every bit in the capacity set.
func (Vector[W]) Full() Vector[W] {
	return FullVector[W]()
}

// Clone returns a copy. Vector is a value type, so this is trivial;
// it exists to satisfy Component.
func (v Vector[W]) Clone() Vector[W] {
	return v
}

// Equal reports whether both sets hold the same members.
func (v Vector[W]) Equal(o Vector[W]) bool {
	return v.lanes == o.lanes
}

// Insert sets bit i and reports whether it was previously unset.
func (v *Vector[W]) Insert(i uint) bool {
	boundsCheck(i, v.Capacity())
	return v.InsertUnchecked(i)
}

// InsertUnchecked is Insert without the bounds assertion.
func (v *Vector[W]) InsertUnchecked(i uint) bool {
	lb := wordBits[W]()
	mask := W(1) << (i % lb)
	lane := &v.lanes[i/lb]
	prev := *lane
	*lane |= mask
	return prev&mask == 0
}

// Remove clears bit i.
func (v *Vector[W]) Remove(i uint) {
	boundsCheck(i, v.Capacity())
	v.RemoveUnchecked(i)
}

// RemoveUnchecked is Remove without the bounds assertion.
func (v *Vector[W]) RemoveUnchecked(i uint) {
	lb := wordBits[W]()
	v.lanes[i/lb] &^= W(1) << (i % lb)
}

// Contains reports whether bit i is set.
func (v Vector[W]) Contains(i uint) bool {
	boundsCheck(i, v.Capacity())
	return v.ContainsUnchecked(i)
}

// ContainsUnchecked is Contains without the bounds assertion.
func (v Vector[W]) ContainsUnchecked(i uint) bool {
	lb := wordBits[W]()
	return v.lanes[i/lb]&(W(1)<<(i%lb)) != 0
}

// Count returns the number of set bits across all lanes.
func (v Vector[W]) Count() int {
	n := 0
	for _, w := range v.lanes {
		n += bits.OnesCount64(uint64(w))
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (v Vector[W]) IsEmpty() bool {
	return v.lanes == [VectorLanes]W{}
}

// InsertRange sets every bit in [lo, hi), hi clamped to the capacity.
// Whole lanes in the span are overwritten with all-ones; the partial
// leading and trailing lanes get one mask OR each.
func (v *Vector[W]) InsertRange(lo, hi uint) {
	if c := uint(v.Capacity()); hi > c {
		hi = c
	}
	if lo >= hi {
		return
	}
	lb := wordBits[W]()
	first, last := int(lo/lb), int((hi-1)/lb)
	loBit, hiBit := lo%lb, (hi-1)%lb+1
	if first == last {
		v.lanes[first] |= rangeMask[W](loBit, hiBit)
		return
	}
	if loBit != 0 {
		v.lanes[first] |= rangeMask[W](loBit, lb)
		first++
	}
	if hiBit != lb {
		v.lanes[last] |= rangeMask[W](0, hiBit)
		last--
	}
	for i := first; i <= last; i++ {
		v.lanes[i] = ^W(0)
	}
}

// RemoveRange clears every bit in [lo, hi), hi clamped to the
// capacity. Whole lanes are overwritten with zero.
func (v *Vector[W]) RemoveRange(lo, hi uint) {
	if c := uint(v.Capacity()); hi > c {
		hi = c
	}
	if lo >= hi {
		return
	}
	lb := wordBits[W]()
	first, last := int(lo/lb), int((hi-1)/lb)
	loBit, hiBit := lo%lb, (hi-1)%lb+1
	if first == last {
		v.lanes[first] &^= rangeMask[W](loBit, hiBit)
		return
	}
	if loBit != 0 {
		v.lanes[first] &^= rangeMask[W](loBit, lb)
		first++
	}
	if hiBit != lb {
		v.lanes[last] &^= rangeMask[W](0, hiBit)
		last--
	}
	for i := first; i <= last; i++ {
		v.lanes[i] = 0
	}
}

// SetAll sets every bit in the capacity.
func (v *Vector[W]) SetAll() {
	for i := range v.lanes {
		v.lanes[i] = ^W(0)
	}
}

// Clear removes all members.
func (v *Vector[W]) Clear() {
	v.lanes = [VectorLanes]W{}
}

// And returns the lane-wise intersection.
func (v Vector[W]) And(o Vector[W]) Vector[W] {
	for i := range v.lanes {
		v.lanes[i] &= o.lanes[i]
	}
	return v
}

// Or returns the lane-wise union.
func (v Vector[W]) Or(o Vector[W]) Vector[W] {
	for i := range v.lanes {
		v.lanes[i] |= o.lanes[i]
	}
	return v
}

// AndNot returns the lane-wise difference v \ o.
func (v Vector[W]) AndNot(o Vector[W]) Vector[W] {
	for i := range v.lanes {
		v.lanes[i] &^= o.lanes[i]
	}
	return v
}

// AndWith intersects in place.
func (v *Vector[W]) AndWith(o Vector[W]) {
	for i := range v.lanes {
		v.lanes[i] &= o.lanes[i]
	}
}

// OrWith unions in place.
func (v *Vector[W]) OrWith(o Vector[W]) {
	for i := range v.lanes {
		v.lanes[i] |= o.lanes[i]
	}
}

// AndNotWith subtracts in place.
func (v *Vector[W]) AndNotWith(o Vector[W]) {
	for i := range v.lanes {
		v.lanes[i] &^= o.lanes[i]
	}
}

// All iterates the set bits in ascending order: lowest set bit of the
// lowest non-empty lane first, advancing across lanes on exhaustion.
func (v Vector[W]) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		lb := wordBits[W]()
		for li, w := range v.lanes {
			base := uint(li) * lb
			for w != 0 {
				i := uint(bits.TrailingZeros64(uint64(w)))
				if !yield(base + i) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// Reverse iterates the set bits in descending order.
func (v Vector[W]) Reverse() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		lb := wordBits[W]()
		for li := VectorLanes - 1; li >= 0; li-- {
			base := uint(li) * lb
			w := v.lanes[li]
			for w != 0 {
				i := uint(bits.Len64(uint64(w))) - 1
				if !yield(base + i) {
					return
				}
				w &^= W(1) << i
			}
		}
	}
}

// Cursor returns a double-ended cursor over the current members. The
// remaining bits live in the cursor itself, so stepping from the back
// never copies the parent vector.
func (v Vector[W]) Cursor() VectorCursor[W] {
	return VectorCursor[W]{lanes: v.lanes}
}

// VectorCursor walks the members of a Vector value from either end.
type VectorCursor[W Word] struct {
	lanes [VectorLanes]W
}

// Next pops the smallest remaining member.
func (c *VectorCursor[W]) Next() (uint, bool) {
	lb := wordBits[W]()
	for li := range c.lanes {
		if c.lanes[li] == 0 {
			continue
		}
		i := uint(bits.TrailingZeros64(uint64(c.lanes[li])))
		c.lanes[li] &= c.lanes[li] - 1
		return uint(li)*lb + i, true
	}
	return 0, false
}

// NextBack pops the largest remaining member.
func (c *VectorCursor[W]) NextBack() (uint, bool) {
	lb := wordBits[W]()
	for li := VectorLanes - 1; li >= 0; li-- {
		if c.lanes[li] == 0 {
			continue
		}
		i := uint(bits.Len64(uint64(c.lanes[li]))) - 1
		c.lanes[li] &^= W(1) << i
		return uint(li)*lb + i, true
	}
	return 0, false
}

func (v Vector[W]) String() string {
	return fmt.Sprintf("Vector(%x)", v.lanes)
}

var (
	_ Bitset                    = (*Vector[uint64])(nil)
	_ Unchecked                 = (*Vector[uint64])(nil)
	_ Component[Vector[uint64]] = Vector[uint64]{}
)
