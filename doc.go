// Package bitkit provides a family of fixed-capacity bitsets for Go.
//
// A bitset is a compact representation of a set of small non-negative
// integers. Bitkit offers four representations that share one
// capability surface and compose with each other:
//
//   - Bits[W]: a single machine word. Capacity equals the bit width
//     of W (8, 16, 32 or 64).
//   - Packed: an array of N sub-components, primitive or themselves
//     packed, giving capacity N × sub-capacity.
//   - Sparse[W]: a list of (block, word) entries for very large,
//     sparsely populated domains.
//   - Vector[W]: a fixed 8-lane wide value type sized to a hardware
//     vector register (512 bits at W = uint64).
//
// # Quick Start
//
//	var b bitkit.Bits[uint8]
//	b.Insert(2)
//	b.Insert(5)
//	b.Count()          // 2
//	for i := range b.All() {
//	    fmt.Println(i) // 2, 5
//	}
//
//	p := bitkit.NewPackedBits[uint8](8) // capacity 64
//	p.InsertRange(10, 54)
//	p.Count()          // 44
//
// # Capability Surface
//
// Every representation supports Insert, Remove, Contains, Count,
// IsEmpty, range edits (InsertRange/RemoveRange over [lo, hi)),
// bitwise AND/OR/ANDNOT in value-returning and in-place forms, and
// lazy forward/backward iteration via All and Reverse. The fixed-size
// types additionally expose Capacity, Empty and Full.
//
// # Checked and Unchecked Tiers
//
// The regular entry points validate index bounds only when built with
// -tags invariants; plain builds compile the checks out and an
// out-of-range index is a contract violation. The *Unchecked methods
// never validate, under any build configuration, and exist for call
// sites that have already proven the bound. See the invariants
// package for the guard idiom.
//
// # Concurrency
//
// Bitkit values are plain data with no internal synchronization.
// Concurrent use requires the caller to partition work over
// independent copies or impose its own locking.
package bitkit
