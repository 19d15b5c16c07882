package bitkit

import (
	"iter"

	"github.com/hupe1980/bitkit/internal/invariants"
)

// sparseEntry pairs a block address (value / word bits) with the word
// holding that block's members.
type sparseEntry[W Word] struct {
	block uint
	bits  Bits[W]
}

// Sparse represents very large domains where only a few word-blocks
// are ever populated. Entries are unordered and scanned linearly, so
// every operation is O(populated blocks); the representation is only
// appropriate while that count stays small. It never promotes itself
// to a denser form.
//
// A plain Go copy shares the entry list; use Clone for an independent
// copy.
type Sparse[W Word] struct {
	entries   []sparseEntry[W]
	maxBlocks int // 0 = unbounded
}

// NewSparse returns an empty sparse bitset with an unbounded entry
// list.
func NewSparse[W Word]() *Sparse[W] {
	return &Sparse[W]{}
}

// NewSparseBounded returns an empty sparse bitset that may populate
// at most maxBlocks distinct blocks. Exceeding the bound is a
// contract violation, asserted only in invariants builds.
func NewSparseBounded[W Word](maxBlocks int) *Sparse[W] {
	return &Sparse[W]{entries: make([]sparseEntry[W], 0, maxBlocks), maxBlocks: maxBlocks}
}

// blockOffset splits a value into its block address and the offset
// within the block's word.
func blockOffset[W Word](v uint) (uint, uint) {
	lb := wordBits[W]()
	return v / lb, v % lb
}

// Insert sets the bit for v, appending a new block entry if v's block
// is not yet populated. Reports whether v was previously absent.
func (s *Sparse[W]) Insert(v uint) bool {
	block, offset := blockOffset[W](v)
	for i := range s.entries {
		if s.entries[i].block == block {
			return s.entries[i].bits.Insert(offset)
		}
	}
	if invariants.Enabled && s.maxBlocks > 0 && len(s.entries) >= s.maxBlocks {
		panic("bitkit: sparse block capacity exceeded")
	}
	var b Bits[W]
	b.Insert(offset)
	s.entries = append(s.entries, sparseEntry[W]{block: block, bits: b})
	return true
}

// Remove clears the bit for v. An absent block is a no-op.
func (s *Sparse[W]) Remove(v uint) {
	block, offset := blockOffset[W](v)
	for i := range s.entries {
		if s.entries[i].block == block {
			s.entries[i].bits.Remove(offset)
			return
		}
	}
}

// Contains reports whether v is a member.
func (s *Sparse[W]) Contains(v uint) bool {
	block, offset := blockOffset[W](v)
	for i := range s.entries {
		if s.entries[i].block == block {
			return s.entries[i].bits.Contains(offset)
		}
	}
	return false
}

// Count sums the population counts of all stored entries.
func (s *Sparse[W]) Count() int {
	n := 0
	for i := range s.entries {
		n += s.entries[i].bits.Count()
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (s *Sparse[W]) IsEmpty() bool {
	for i := range s.entries {
		if !s.entries[i].bits.IsEmpty() {
			return false
		}
	}
	return true
}

// InsertRange sets every value in [lo, hi), populating each touched
// block as needed.
func (s *Sparse[W]) InsertRange(lo, hi uint) {
	if lo >= hi {
		return
	}
	lb := wordBits[W]()
	for block := lo / lb; block <= (hi-1)/lb; block++ {
		base := block * lb
		subLo, subHi := uint(0), lb
		if base < lo {
			subLo = lo - base
		}
		if base+lb > hi {
			subHi = hi - base
		}
		s.blockFor(block).InsertRange(subLo, subHi)
	}
}

// RemoveRange clears every value in [lo, hi). Absent blocks are
// skipped.
func (s *Sparse[W]) RemoveRange(lo, hi uint) {
	if lo >= hi {
		return
	}
	lb := wordBits[W]()
	for i := range s.entries {
		base := s.entries[i].block * lb
		if base+lb <= lo || base >= hi {
			continue
		}
		subLo, subHi := uint(0), lb
		if base < lo {
			subLo = lo - base
		}
		if base+lb > hi {
			subHi = hi - base
		}
		s.entries[i].bits.RemoveRange(subLo, subHi)
	}
}

// blockFor returns the word for block, appending an empty entry when
// the block is not yet populated.
func (s *Sparse[W]) blockFor(block uint) *Bits[W] {
	for i := range s.entries {
		if s.entries[i].block == block {
			return &s.entries[i].bits
		}
	}
	if invariants.Enabled && s.maxBlocks > 0 && len(s.entries) >= s.maxBlocks {
		panic("bitkit: sparse block capacity exceeded")
	}
	s.entries = append(s.entries, sparseEntry[W]{block: block})
	return &s.entries[len(s.entries)-1].bits
}

// Clear removes all members but keeps the entry list capacity.
func (s *Sparse[W]) Clear() {
	s.entries = s.entries[:0]
}

// Clone returns an independent deep copy.
func (s *Sparse[W]) Clone() *Sparse[W] {
	out := &Sparse[W]{entries: make([]sparseEntry[W], len(s.entries)), maxBlocks: s.maxBlocks}
	copy(out.entries, s.entries)
	return out
}

// All iterates the members in ascending order. Entries are unordered,
// so each step selects the smallest not-yet-visited block with a
// linear scan: O(blocks²) overall, allocation-free, and cheap under
// the small-block-count assumption this type is built on.
func (s *Sparse[W]) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		lb := wordBits[W]()
		prev := -1
		for {
			best := -1
			var bestBits Bits[W]
			for i := range s.entries {
				b := int(s.entries[i].block)
				if b > prev && (best < 0 || b < best) && !s.entries[i].bits.IsEmpty() {
					best = b
					bestBits = s.entries[i].bits
				}
			}
			if best < 0 {
				return
			}
			base := uint(best) * lb
			for i := range bestBits.All() {
				if !yield(base + i) {
					return
				}
			}
			prev = best
		}
	}
}

// Reverse iterates the members in descending order.
func (s *Sparse[W]) Reverse() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		lb := wordBits[W]()
		prev := -1
		for {
			best := -1
			var bestBits Bits[W]
			for i := range s.entries {
				b := int(s.entries[i].block)
				if (prev < 0 || b < prev) && b > best && !s.entries[i].bits.IsEmpty() {
					best = b
					bestBits = s.entries[i].bits
				}
			}
			if best < 0 {
				return
			}
			base := uint(best) * lb
			for i := range bestBits.Reverse() {
				if !yield(base + i) {
					return
				}
			}
			prev = best
		}
	}
}

var _ Set = (*Sparse[uint64])(nil)
