package ysc1

import (
	"encoding/binary"
	"math/bits"
)

// The vector backend reslices the state into four lanes, one per in-quad
// position: lane b holds words {b, 4+b, 8+b, 12+b}, element j coming from
// quadruple j. The four quad mixes of a round collapse into elementwise
// lane arithmetic, and the diagonal relabeling becomes a fixed element
// rotation of each lane, which is how a 256-bit SIMD unit executes the
// round. All lane helpers are fixed-width and branch-free.

type lane [4]uint64

func (a lane) add(b lane) lane {
	return lane{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a lane) xor(b lane) lane {
	return lane{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

func (a lane) rotl(r int) lane {
	return lane{
		bits.RotateLeft64(a[0], r),
		bits.RotateLeft64(a[1], r),
		bits.RotateLeft64(a[2], r),
		bits.RotateLeft64(a[3], r),
	}
}

// shuffle rotates the lane elements left by n positions.
func (a lane) shuffle(n int) lane {
	switch n {
	case 1:
		return lane{a[1], a[2], a[3], a[0]}
	case 2:
		return lane{a[2], a[3], a[0], a[1]}
	default:
		return lane{a[3], a[0], a[1], a[2]}
	}
}

func fMixLane(x lane) lane {
	y := x.add(x.rotl(rot1))
	z := y.xor(y.rotl(rot2))
	return z.add(z.rotl(rot3))
}

func vectorBlock(state *[StateWords]uint64, rounds int, block *[BlockSize]byte) {
	var v0, v1, v2, v3 lane
	for j := 0; j < 4; j++ {
		v0[j] = state[4*j]
		v1[j] = state[4*j+1]
		v2[j] = state[4*j+2]
		v3[j] = state[4*j+3]
	}

	for r := 0; r < rounds; r++ {
		t0 := fMixLane(v0.xor(v2))
		t1 := fMixLane(v1.xor(v3))
		y0, y1 := v0.add(t0), v1.add(t1)
		y2, y3 := v2.add(t0), v3.add(t1)
		v0, v1, v2, v3 = y0.xor(y2), y1.xor(y3), y0, y1

		// Diagonal relabeling: lane b draws its words from b quadruples over.
		v1 = v1.shuffle(1)
		v2 = v2.shuffle(2)
		v3 = v3.shuffle(3)
	}

	// Words 0..7 are quadruples 0 and 1, interleaved across the lanes.
	binary.LittleEndian.PutUint64(block[0:], v0[0])
	binary.LittleEndian.PutUint64(block[8:], v1[0])
	binary.LittleEndian.PutUint64(block[16:], v2[0])
	binary.LittleEndian.PutUint64(block[24:], v3[0])
	binary.LittleEndian.PutUint64(block[32:], v0[1])
	binary.LittleEndian.PutUint64(block[40:], v1[1])
	binary.LittleEndian.PutUint64(block[48:], v2[1])
	binary.LittleEndian.PutUint64(block[56:], v3[1])
}
