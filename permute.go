package ysc1

import "math/bits"

const (
	// StateWords is the width of the permutation state in 64-bit words.
	StateWords = 16
	// BlockSize is the size of one keystream block in bytes.
	BlockSize = 64
)

// Word rotation distances of the f mix.
const (
	rot1 = 11
	rot2 = 27
	rot3 = 43
)

// diagonal relabels the sixteen state words between rounds so that each
// quadruple is rebuilt from one word of every prior quadruple.
var diagonal = [StateWords]uint8{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}

// fMix is the nonlinear word transform: two wrapping additions and one XOR,
// each against a rotated copy. Constant time, no lookups.
func fMix(x uint64) uint64 {
	y := x + bits.RotateLeft64(x, rot1)
	z := y ^ bits.RotateLeft64(y, rot2)
	return z + bits.RotateLeft64(z, rot3)
}

// quadMix runs the 2x2 Lai-Massey step over four state words. The two f
// outputs cross-feed both halves of the quadruple.
func quadMix(s *[StateWords]uint64, i0, i1, i2, i3 int) {
	x0, x1, x2, x3 := s[i0], s[i1], s[i2], s[i3]
	t0, t1 := fMix(x0^x2), fMix(x1^x3)
	y0, y1 := x0+t0, x1+t1
	y2, y3 := x2+t0, x3+t1
	s[i0], s[i1], s[i2], s[i3] = y0^y2, y1^y3, y0, y1
}

// permutationRound applies the quad mix to each of the four quadruples and
// then the diagonal relabeling over the whole state. The relabeling must
// observe the complete post-mix state, hence the full copy.
func permutationRound(s *[StateWords]uint64) {
	quadMix(s, 0, 1, 2, 3)
	quadMix(s, 4, 5, 6, 7)
	quadMix(s, 8, 9, 10, 11)
	quadMix(s, 12, 13, 14, 15)

	prev := *s
	for i := range s {
		s[i] = prev[diagonal[i]]
	}
}
