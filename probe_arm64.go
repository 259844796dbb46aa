//go:build arm64 && !purego

package ysc1

import "golang.org/x/sys/cpu"

func probeTokens() tokens {
	return tokens{vector: cpu.ARM64.HasASIMD}
}
