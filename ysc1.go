// Package ysc1 implements the YSC1 stream cipher, a seekable keyed
// keystream generator built on a 1024-bit permutation state.
//
// The permutation is a generalized (2x2) Lai-Massey network over sixteen
// 64-bit words: each round mixes the four word quadruples independently with
// an ARX word transform and then relabels the state along a fixed diagonal.
// Keystream is produced in counter mode. Every 64-byte block is computed
// from the fixed key/nonce-derived state plus a per-block counter, so blocks
// are independent and the stream can be repositioned in constant time.
//
// Two profiles are provided: YSC1-512 (512-bit key, 512-bit nonce) and
// YSC1-1024 (1024-bit key, 512-bit nonce). Key and nonce sizes are fixed per
// profile and never truncated or padded.
//
// A Cipher is not safe for concurrent use. Callers that need parallel
// keystream generation for one key/nonce should construct independent
// instances and seek them to disjoint regions.
package ysc1

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
)

// counterWord is the state slot that carries the block counter.
const counterWord = 12

var (
	// ErrKeySize is returned when the key length does not match the variant.
	ErrKeySize = errors.New("ysc1: invalid key size")
	// ErrNonceSize is returned when the nonce length does not match the variant.
	ErrNonceSize = errors.New("ysc1: invalid nonce size")
	// ErrVariant is returned for a variant outside the profile table.
	ErrVariant = errors.New("ysc1: invalid variant")
)

// Cipher is a YSC1 keystream generator instance. It implements
// cipher.Stream. Not safe for concurrent use.
type Cipher struct {
	// state words other than the counter slot are fixed after construction
	state [StateWords]uint64

	rounds int // keystream rounds of the variant
	v      Variant

	tok   tokens
	block blockFunc

	// buf holds the most recent keystream block when a call consumed only a
	// prefix of it; the last len bytes are still unspent.
	buf [BlockSize]byte
	len int
}

var _ cipher.Stream = (*Cipher)(nil)

// New builds a Cipher for the given variant. The key must be exactly
// variant.KeySize() bytes and the nonce variant.NonceSize() bytes; both are
// consumed as little-endian 64-bit words.
func New(variant Variant, key, nonce []byte) (*Cipher, error) {
	if !variant.valid() {
		return nil, fmt.Errorf("%w: %d", ErrVariant, uint8(variant))
	}
	p := variant.params()
	if len(key) != p.keyWords*8 {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrKeySize, len(key), p.keyWords*8)
	}
	if len(nonce) != p.nonceWords*8 {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrNonceSize, len(nonce), p.nonceWords*8)
	}

	c := &Cipher{
		rounds: p.keystreamRounds,
		v:      variant,
		tok:    probeTokens(),
	}
	c.block = pickBackend(c.tok)

	for i := 0; i < p.keyWords; i++ {
		c.state[i] = binary.LittleEndian.Uint64(key[i*8:])
	}
	if p.keyWords+p.nonceWords <= StateWords {
		// Key and nonce fit side by side.
		for i := 0; i < p.nonceWords; i++ {
			c.state[p.keyWords+i] = binary.LittleEndian.Uint64(nonce[i*8:])
		}
	} else {
		// No free slots: fold the nonce into the low key words.
		for i := 0; i < p.nonceWords; i++ {
			c.state[i] ^= binary.LittleEndian.Uint64(nonce[i*8:])
		}
	}
	c.state[counterWord] = 0

	for i := 0; i < p.initRounds; i++ {
		permutationRound(&c.state)
	}

	// The counter slot becomes the block counter once the schedule is done.
	// The first generated block sees counter 1.
	c.state[counterWord] = 0

	return c, nil
}

// New512 builds a YSC1-512 Cipher. Key and nonce are 64 bytes each.
func New512(key, nonce []byte) (*Cipher, error) {
	return New(V512, key, nonce)
}

// New1024 builds a YSC1-1024 Cipher. The key is 128 bytes, the nonce 64.
func New1024(key, nonce []byte) (*Cipher, error) {
	return New(V1024, key, nonce)
}

// Variant returns the profile this instance was built with.
func (c *Cipher) Variant() Variant {
	return c.v
}

// Reset scrubs key-derived material from the instance. The Cipher must not
// be used afterwards.
func (c *Cipher) Reset() {
	for i := range c.state {
		c.state[i] = 0
	}
	for i := range c.buf {
		c.buf[i] = 0
	}
	c.len = 0
}
