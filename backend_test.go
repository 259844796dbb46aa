package ysc1

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomState(t *testing.T) [StateWords]uint64 {
	t.Helper()
	var raw [StateWords * 8]byte
	_, err := rand.Read(raw[:])
	require.NoError(t, err)
	var state [StateWords]uint64
	for i := range state {
		state[i] = binary.LittleEndian.Uint64(raw[i*8:])
	}
	return state
}

// The scalar and lane backends implement the same permutation and must be
// byte-identical for any state, counter and round count.
func TestBackendParity(t *testing.T) {
	for _, rounds := range []int{variantTable[V512].keystreamRounds, variantTable[V1024].keystreamRounds} {
		for trial := 0; trial < 128; trial++ {
			state := randomState(t)

			var counterRaw [8]byte
			_, err := rand.Read(counterRaw[:])
			require.NoError(t, err)
			state[counterWord] = binary.LittleEndian.Uint64(counterRaw[:])

			var soft, vector [BlockSize]byte
			softBlock(&state, rounds, &soft)
			vectorBlock(&state, rounds, &vector)
			require.Equal(t, soft, vector,
				"backend divergence at rounds=%d state=%x", rounds, state)
		}
	}
}

// Neither backend may touch the state it reads from.
func TestBackendsPreserveState(t *testing.T) {
	state := randomState(t)
	before := state

	var block [BlockSize]byte
	softBlock(&state, variantTable[V512].keystreamRounds, &block)
	require.Equal(t, before, state, "scalar backend mutated the state")
	vectorBlock(&state, variantTable[V512].keystreamRounds, &block)
	require.Equal(t, before, state, "lane backend mutated the state")
}

// End-to-end parity: two instances of the same key/nonce pinned to opposite
// backends must emit the same stream, including across partial reads.
func TestBackendParityStream(t *testing.T) {
	var key, nonce [64]byte
	_, err := rand.Read(key[:])
	require.NoError(t, err)
	_, err = rand.Read(nonce[:])
	require.NoError(t, err)

	soft, err := New512(key[:], nonce[:])
	require.NoError(t, err)
	soft.block = softBlock

	vector, err := New512(key[:], nonce[:])
	require.NoError(t, err)
	vector.block = vectorBlock

	a := make([]byte, 1024)
	b := make([]byte, 1024)
	soft.Keystream(a)
	for off, n := 0, 0; off < len(b); off += n {
		n = min(37, len(b)-off)
		vector.Keystream(b[off : off+n])
	}
	require.Equal(t, a, b)
}

func TestPickBackend(t *testing.T) {
	require.NotNil(t, pickBackend(tokens{}))
	require.NotNil(t, pickBackend(tokens{vector: true}))
}
