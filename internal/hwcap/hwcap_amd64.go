//go:build amd64

package hwcap

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		vectorBits = 512
		isa = "avx512"
	case cpu.X86.HasAVX2:
		vectorBits = 256
		isa = "avx2"
	case cpu.X86.HasSSE2:
		vectorBits = 128
		isa = "sse2"
	}
}
