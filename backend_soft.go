package ysc1

import "encoding/binary"

// softBlock is the portable scalar backend: run the permutation rounds over
// a scratch copy of the state and emit the first eight words little-endian.
func softBlock(state *[StateWords]uint64, rounds int, block *[BlockSize]byte) {
	scratch := *state
	for r := 0; r < rounds; r++ {
		permutationRound(&scratch)
	}
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint64(block[i*8:], scratch[i])
	}
}
