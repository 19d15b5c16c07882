package bitkit

import (
	"iter"

	"github.com/hupe1980/bitkit/internal/invariants"
)

// Packed composes N sub-components of type E into one bitset with
// capacity N × sub-capacity. E may be a primitive Bits, a Vector, or
// another Packed; the element count is fixed at construction and
// never changes. Point operations delegate to the addressed element;
// range edits touch a number of elements proportional to the span,
// never to the bit count.
//
// Packed is slice-backed: a plain Go copy shares element storage with
// the original. Use Clone for an independent copy.
type Packed[E Component[E], P ComponentPtr[E]] struct {
	elems []E
	sub   int
}

// PackedBits is the common instantiation of Packed over primitive
// words.
type PackedBits[W Word] = Packed[Bits[W], *Bits[W]]

// NewPacked returns an empty packed bitset of n elements shaped like
// proto. Sub-capacity is taken from the prototype, so nesting works:
//
//	inner := bitkit.NewPackedBits[uint64](8)        // 512 bits
//	outer := bitkit.NewPacked(inner, 4)             // 2048 bits
func NewPacked[E Component[E], P ComponentPtr[E]](proto E, n int) Packed[E, P] {
	elems := make([]E, n)
	for i := range elems {
		elems[i] = proto.Empty()
	}
	return Packed[E, P]{elems: elems, sub: proto.Capacity()}
}

// NewPackedBits returns an empty packed bitset of n primitive words
// of type W.
func NewPackedBits[W Word](n int) PackedBits[W] {
	return NewPacked[Bits[W]](Bits[W]{}, n)
}

// Capacity returns element count × sub-capacity.
func (p Packed[E, P]) Capacity() int {
	return len(p.elems) * p.sub
}

// elementIndex returns the element holding global index i.
func (p Packed[E, P]) elementIndex(i uint) int {
	return int(i) / p.sub
}

// bitIndex returns i relative to its element's own base.
func (p Packed[E, P]) bitIndex(i uint) uint {
	return i % uint(p.sub)
}

// Empty returns an empty packed bitset of the same shape.
func (p Packed[E, P]) Empty() Packed[E, P] {
	out := Packed[E, P]{elems: make([]E, len(p.elems)), sub: p.sub}
	for i := range p.elems {
		out.elems[i] = p.elems[i].Empty()
	}
	return out
}

// Full returns a packed bitset of the same shape with every bit set.
func (p Packed[E, P]) Full() Packed[E, P] {
	out := Packed[E, P]{elems: make([]E, len(p.elems)), sub: p.sub}
	for i := range p.elems {
		out.elems[i] = p.elems[i].Full()
	}
	return out
}

// Clone returns an independent deep copy.
func (p Packed[E, P]) Clone() Packed[E, P] {
	out := Packed[E, P]{elems: make([]E, len(p.elems)), sub: p.sub}
	for i := range p.elems {
		out.elems[i] = p.elems[i].Clone()
	}
	return out
}

// Equal reports whether both bitsets have the same shape and members.
func (p Packed[E, P]) Equal(o Packed[E, P]) bool {
	if len(p.elems) != len(o.elems) || p.sub != o.sub {
		return false
	}
	for i := range p.elems {
		if !p.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

// Insert sets bit i and reports whether it was previously unset.
func (p *Packed[E, P]) Insert(i uint) bool {
	boundsCheck(i, p.Capacity())
	return P(&p.elems[p.elementIndex(i)]).Insert(p.bitIndex(i))
}

// InsertUnchecked is Insert without the bounds assertion.
func (p *Packed[E, P]) InsertUnchecked(i uint) bool {
	return P(&p.elems[p.elementIndex(i)]).InsertUnchecked(p.bitIndex(i))
}

// Remove clears bit i.
func (p *Packed[E, P]) Remove(i uint) {
	boundsCheck(i, p.Capacity())
	P(&p.elems[p.elementIndex(i)]).Remove(p.bitIndex(i))
}

// RemoveUnchecked is Remove without the bounds assertion.
func (p *Packed[E, P]) RemoveUnchecked(i uint) {
	P(&p.elems[p.elementIndex(i)]).RemoveUnchecked(p.bitIndex(i))
}

// Contains reports whether bit i is set.
func (p Packed[E, P]) Contains(i uint) bool {
	boundsCheck(i, p.Capacity())
	return p.elems[p.elementIndex(i)].Contains(p.bitIndex(i))
}

// ContainsUnchecked is Contains without the bounds assertion.
func (p Packed[E, P]) ContainsUnchecked(i uint) bool {
	return p.elems[p.elementIndex(i)].ContainsUnchecked(p.bitIndex(i))
}

// Count sums the counts of all elements.
func (p Packed[E, P]) Count() int {
	n := 0
	for i := range p.elems {
		n += p.elems[i].Count()
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (p Packed[E, P]) IsEmpty() bool {
	for i := range p.elems {
		if !p.elems[i].IsEmpty() {
			return false
		}
	}
	return true
}

// InsertRange sets every bit in [lo, hi), hi clamped to the capacity.
//
// The edit splits into three phases: a range inside a single element
// delegates directly; elements fully covered are overwritten with one
// SetAll each; at most one partial leading and one partial trailing
// fragment delegate to their elements. Cost is proportional to the
// elements spanned.
func (p *Packed[E, P]) InsertRange(lo, hi uint) {
	first, last, loBit, hiBit, ok := p.splitRange(lo, hi)
	if !ok {
		return
	}
	sub := uint(p.sub)
	if first == last {
		P(&p.elems[first]).InsertRange(loBit, hiBit)
		return
	}
	if loBit != 0 {
		P(&p.elems[first]).InsertRange(loBit, sub)
		first++
	}
	if hiBit != sub {
		P(&p.elems[last]).InsertRange(0, hiBit)
		last--
	}
	for i := first; i <= last; i++ {
		P(&p.elems[i]).SetAll()
	}
}

// RemoveRange clears every bit in [lo, hi), hi clamped to the
// capacity. Same three-phase split as InsertRange.
func (p *Packed[E, P]) RemoveRange(lo, hi uint) {
	first, last, loBit, hiBit, ok := p.splitRange(lo, hi)
	if !ok {
		return
	}
	sub := uint(p.sub)
	if first == last {
		P(&p.elems[first]).RemoveRange(loBit, hiBit)
		return
	}
	if loBit != 0 {
		P(&p.elems[first]).RemoveRange(loBit, sub)
		first++
	}
	if hiBit != sub {
		P(&p.elems[last]).RemoveRange(0, hiBit)
		last--
	}
	for i := first; i <= last; i++ {
		P(&p.elems[i]).Clear()
	}
}

// splitRange clamps [lo, hi) and locates the first and last touched
// elements plus the fragment bounds within them. hiBit is exclusive
// within the last element. ok is false for an empty range.
func (p *Packed[E, P]) splitRange(lo, hi uint) (first, last int, loBit, hiBit uint, ok bool) {
	if c := uint(p.Capacity()); hi > c {
		hi = c
	}
	if lo >= hi {
		return 0, 0, 0, 0, false
	}
	sub := uint(p.sub)
	return int(lo / sub), int((hi - 1) / sub), lo % sub, (hi-1)%sub + 1, true
}

// SetAll sets every bit in the capacity.
func (p *Packed[E, P]) SetAll() {
	for i := range p.elems {
		P(&p.elems[i]).SetAll()
	}
}

// Clear removes all members.
func (p *Packed[E, P]) Clear() {
	for i := range p.elems {
		P(&p.elems[i]).Clear()
	}
}

// sameShape reports whether two packed bitsets can be combined.
func (p Packed[E, P]) sameShape(o Packed[E, P]) bool {
	return len(p.elems) == len(o.elems) && p.sub == o.sub
}

func (p Packed[E, P]) shapeCheck(o Packed[E, P]) {
	if invariants.Enabled && !p.sameShape(o) {
		panic("bitkit: packed shape mismatch")
	}
}

// And returns the element-wise intersection. Operands must have equal
// shape.
func (p Packed[E, P]) And(o Packed[E, P]) Packed[E, P] {
	p.shapeCheck(o)
	out := Packed[E, P]{elems: make([]E, len(p.elems)), sub: p.sub}
	for i := range p.elems {
		out.elems[i] = p.elems[i].And(o.elems[i])
	}
	return out
}

// Or returns the element-wise union. Operands must have equal shape.
func (p Packed[E, P]) Or(o Packed[E, P]) Packed[E, P] {
	p.shapeCheck(o)
	out := Packed[E, P]{elems: make([]E, len(p.elems)), sub: p.sub}
	for i := range p.elems {
		out.elems[i] = p.elems[i].Or(o.elems[i])
	}
	return out
}

// AndNot returns the element-wise difference p \ o. Operands must
// have equal shape.
func (p Packed[E, P]) AndNot(o Packed[E, P]) Packed[E, P] {
	p.shapeCheck(o)
	out := Packed[E, P]{elems: make([]E, len(p.elems)), sub: p.sub}
	for i := range p.elems {
		out.elems[i] = p.elems[i].AndNot(o.elems[i])
	}
	return out
}

// AndWith intersects in place.
func (p *Packed[E, P]) AndWith(o Packed[E, P]) {
	p.shapeCheck(o)
	for i := range p.elems {
		P(&p.elems[i]).AndWith(o.elems[i])
	}
}

// OrWith unions in place.
func (p *Packed[E, P]) OrWith(o Packed[E, P]) {
	p.shapeCheck(o)
	for i := range p.elems {
		P(&p.elems[i]).OrWith(o.elems[i])
	}
}

// AndNotWith subtracts in place.
func (p *Packed[E, P]) AndNotWith(o Packed[E, P]) {
	p.shapeCheck(o)
	for i := range p.elems {
		P(&p.elems[i]).AndNotWith(o.elems[i])
	}
}

// All iterates the set bits in ascending order, chaining each
// element's forward iterator offset by its base.
func (p Packed[E, P]) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i := range p.elems {
			base := uint(i) * uint(p.sub)
			for j := range p.elems[i].All() {
				if !yield(base + j) {
					return
				}
			}
		}
	}
}

// Reverse iterates the set bits in descending order: elements in
// descending order, each element's own iterator reversed. For any
// content Reverse is the exact mirror of All.
func (p Packed[E, P]) Reverse() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i := len(p.elems) - 1; i >= 0; i-- {
			base := uint(i) * uint(p.sub)
			for j := range p.elems[i].Reverse() {
				if !yield(base + j) {
					return
				}
			}
		}
	}
}

var (
	_ Bitset                        = (*PackedBits[uint64])(nil)
	_ Unchecked                     = (*PackedBits[uint64])(nil)
	_ Component[Bits[uint64]]       = Bits[uint64]{}
	_ Component[PackedBits[uint64]] = PackedBits[uint64]{}
)
