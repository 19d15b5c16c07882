package bitkit

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
)

// Comparative benchmarks: fixed-capacity packed bitsets vs Roaring.
// Run with: go test -bench=. -benchmem .

// ==============================================================================
// Insert comparison
// ==============================================================================

func BenchmarkInsert_Bits(b *testing.B) {
	var s Bits[uint64]

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Insert(uint(i) % 64)
	}
}

func BenchmarkInsert_Packed(b *testing.B) {
	p := NewPackedBits[uint64](16) // 1024 slots

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Insert(uint(i) % 1024)
	}
}

func BenchmarkInsert_Vector(b *testing.B) {
	var v Vector[uint64]

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Insert(uint(i) % 512)
	}
}

func BenchmarkInsert_Roaring(b *testing.B) {
	rb := roaring.New()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb.Add(uint32(i) % 1024)
	}
}

// ==============================================================================
// InsertRange comparison
// ==============================================================================

func BenchmarkInsertRange_Packed(b *testing.B) {
	p := NewPackedBits[uint64](160) // 10240 slots

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Clear()
		p.InsertRange(0, 10000)
	}
}

func BenchmarkInsertRange_Roaring(b *testing.B) {
	rb := roaring.New()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb.Clear()
		rb.AddRange(0, 10000)
	}
}

// ==============================================================================
// AND operation comparison
// ==============================================================================

func BenchmarkAnd_Vector(b *testing.B) {
	var x, y Vector[uint64]
	x.InsertRange(0, 300)
	y.InsertRange(150, 512)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = x.And(y)
	}
}

func BenchmarkAnd_Packed(b *testing.B) {
	x := NewPackedBits[uint64](160)
	y := NewPackedBits[uint64](160)
	x.InsertRange(0, 10000)
	y.InsertRange(5000, 10240)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x.AndWith(y)
	}
}

func BenchmarkAnd_Roaring(b *testing.B) {
	x := roaring.New()
	y := roaring.New()
	y.AddRange(5000, 10240)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x.Clear()
		x.AddRange(0, 10000)
		x.And(y)
	}
}

// ==============================================================================
// Cardinality (popcount) comparison
// ==============================================================================

func BenchmarkCount_Packed(b *testing.B) {
	p := NewPackedBits[uint64](160)
	p.InsertRange(0, 10000)

	b.ResetTimer()
	b.ReportAllocs()
	var n int
	for i := 0; i < b.N; i++ {
		n = p.Count()
	}
	_ = n
}

func BenchmarkCount_Roaring(b *testing.B) {
	rb := roaring.New()
	rb.AddRange(0, 10000)

	b.ResetTimer()
	b.ReportAllocs()
	var n uint64
	for i := 0; i < b.N; i++ {
		n = rb.GetCardinality()
	}
	_ = n
}

// ==============================================================================
// Iteration comparison
// ==============================================================================

func BenchmarkIterate_Packed(b *testing.B) {
	p := NewPackedBits[uint64](160)
	p.InsertRange(0, 10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := uint(0)
		for v := range p.All() {
			sum += v
		}
		_ = sum
	}
}

func BenchmarkIterate_Roaring(b *testing.B) {
	rb := roaring.New()
	rb.AddRange(0, 10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := uint(0)
		it := rb.Iterator()
		for it.HasNext() {
			sum += uint(it.Next())
		}
		_ = sum
	}
}
