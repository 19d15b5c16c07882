//go:build arm64

package hwcap

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		vectorBits = 128
		isa = "neon"
	}
}
