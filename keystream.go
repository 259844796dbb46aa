package ysc1

import "crypto/subtle"

// nextBlock advances the block counter and writes one keystream block.
// A counter that wraps to zero would replay the very first block for this
// key/nonce, so exhaustion is a hard stop, never a soft error.
func (c *Cipher) nextBlock(block *[BlockSize]byte) {
	c.state[counterWord]++
	if c.state[counterWord] == 0 {
		panic("ysc1: keystream exhausted")
	}
	c.block(&c.state, c.rounds, block)
}

// XORKeyStream XORs each byte of src with the keystream and writes the
// result to dst. Dst and src must overlap entirely or not at all, and dst
// must be at least as long as src. Successive calls continue the stream:
// a partial block left over from one call is consumed first by the next.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	if len(dst) < len(src) {
		panic("ysc1: output smaller than input")
	}
	dst = dst[:len(src)]
	if inexactOverlap(dst, src) {
		panic("ysc1: invalid buffer overlap")
	}

	// Spend keystream left over from a previous call.
	if c.len != 0 {
		keystream := c.buf[BlockSize-c.len:]
		if len(src) < len(keystream) {
			keystream = keystream[:len(src)]
		}
		subtle.XORBytes(dst, src, keystream)
		c.len -= len(keystream)
		src = src[len(keystream):]
		dst = dst[len(keystream):]
	}

	var block [BlockSize]byte
	for len(src) >= BlockSize {
		c.nextBlock(&block)
		subtle.XORBytes(dst, src, block[:])
		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}

	if len(src) > 0 {
		c.nextBlock(&c.buf)
		subtle.XORBytes(dst, src, c.buf[:len(src)])
		c.len = BlockSize - len(src)
	}
}

// Keystream fills dst with raw keystream bytes, equivalent to XORing an
// all-zero buffer.
func (c *Cipher) Keystream(dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
	c.XORKeyStream(dst, dst)
}
