//go:build amd64 && !purego

package ysc1

import "golang.org/x/sys/cpu"

// probeTokens runs the capability probe once per construction. AVX2 gives
// the lane backend full-width 4x64 registers; without it the scalar path is
// the faster of the two.
func probeTokens() tokens {
	return tokens{vector: cpu.X86.HasAVX2}
}
