// Package hwcap reports the bitwise vector capability of the host CPU.
//
// The report is informational: bitkit's wide types have a fixed,
// compile-time lane layout, and callers that want to match the
// hardware register width (for example when choosing between
// Vector[uint64] and a Packed composition) can consult VectorBits.
// Platform-specific init functions override the generic defaults when
// a vector extension is detected.
package hwcap

var (
	vectorBits = 64
	isa        = "generic"
)

// VectorBits returns the width in bits of the widest full-width
// bitwise vector register the host CPU offers, or 64 when no vector
// extension was detected.
func VectorBits() int {
	return vectorBits
}

// ISA returns a short name for the detected vector extension:
// "generic", "sse2", "avx2", "avx512" or "neon".
func ISA() string {
	return isa
}
