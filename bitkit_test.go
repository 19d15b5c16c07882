package bitkit

import (
	"slices"
	"testing"

	"github.com/hupe1980/bitkit/internal/invariants"
)

// contractCase builds a fresh empty bitset behind the shared interface.
type contractCase struct {
	name string
	make func() Bitset
}

func contractCases() []contractCase {
	return []contractCase{
		{"bits64", func() Bitset { b := EmptyBits[uint64](); return &b }},
		{"packed8x8", func() Bitset { p := NewPackedBits[uint8](8); return &p }},
		{"packed4x16", func() Bitset { p := NewPackedBits[uint16](4); return &p }},
		{"vector64", func() Bitset { v := EmptyVector[uint8](); return &v }},
		{"vector512", func() Bitset { v := EmptyVector[uint64](); return &v }},
	}
}

func TestContractInsertRemove(t *testing.T) {
	for _, tc := range contractCases() {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.make()
			if !s.IsEmpty() || s.Count() != 0 {
				t.Fatal("fresh set must be empty")
			}
			if !s.Insert(2) {
				t.Error("first insert must report absence")
			}
			if s.Insert(2) {
				t.Error("second insert must report presence")
			}
			s.Insert(5)
			if s.Count() != 2 || !s.Contains(2) || !s.Contains(5) || s.Contains(3) {
				t.Errorf("unexpected membership, count=%d", s.Count())
			}
			s.Remove(5)
			s.Remove(5) // removing an absent value is a no-op
			if s.Count() != 1 || s.Contains(5) {
				t.Error("remove did not converge")
			}
		})
	}
}

func TestContractCapacityBounds(t *testing.T) {
	for _, tc := range contractCases() {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.make()
			last := uint(s.Capacity() - 1)
			s.Insert(last)
			if !s.Contains(last) {
				t.Error("last slot must be usable")
			}
			s.InsertRange(0, uint(s.Capacity()))
			if s.Count() != s.Capacity() {
				t.Errorf("full set count = %d, capacity = %d", s.Count(), s.Capacity())
			}
			s.RemoveRange(0, uint(s.Capacity()))
			if !s.IsEmpty() {
				t.Error("clearing the full range must empty the set")
			}
		})
	}
}

func TestContractIterationOrder(t *testing.T) {
	for _, tc := range contractCases() {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.make()
			members := []uint{0, 3, uint(s.Capacity()) - 1, 5}
			for _, v := range members {
				s.Insert(v)
			}
			want := slices.Clone(members)
			slices.Sort(want)
			want = slices.Compact(want)

			if got := slices.Collect(s.All()); !slices.Equal(got, want) {
				t.Errorf("All() = %v, want %v", got, want)
			}
			got := slices.Collect(s.Reverse())
			slices.Reverse(got)
			if !slices.Equal(got, want) {
				t.Errorf("Reverse() mirror = %v, want %v", got, want)
			}
		})
	}
}

func TestContractIterationRestartable(t *testing.T) {
	for _, tc := range contractCases() {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.make()
			s.InsertRange(1, 7)
			seq := s.All()
			first := slices.Collect(seq)
			second := slices.Collect(seq)
			if !slices.Equal(first, second) {
				t.Errorf("restarted iteration diverged: %v vs %v", first, second)
			}
		})
	}
}

func TestBoundsAssertions(t *testing.T) {
	if !invariants.Enabled {
		t.Skip("bounds assertions require -tags invariants")
	}
	for _, tc := range contractCases() {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.make()
			oob := uint(s.Capacity())
			mustPanic := func(name string, f func()) {
				t.Helper()
				defer func() {
					if recover() == nil {
						t.Errorf("%s(%d) must panic out of range", name, oob)
					}
				}()
				f()
			}
			mustPanic("Insert", func() { s.Insert(oob) })
			mustPanic("Remove", func() { s.Remove(oob) })
			mustPanic("Contains", func() { s.Contains(oob) })
		})
	}
}

func TestHardwareReport(t *testing.T) {
	bits := HardwareVectorBits()
	switch bits {
	case 64, 128, 256, 512:
	default:
		t.Fatalf("implausible vector width %d", bits)
	}
	if HardwareVectorISA() == "" {
		t.Fatal("ISA name must be non-empty")
	}
	t.Logf("vector unit: %d bits (%s)", bits, HardwareVectorISA())
}
