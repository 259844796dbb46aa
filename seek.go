package ysc1

import (
	"errors"

	"lukechampine.com/uint128"
)

// ErrSeekRange is returned for byte offsets beyond the 2^70-byte keystream.
var ErrSeekRange = errors.New("ysc1: seek offset beyond keystream end")

// GetBlockPos returns the current block counter: the number of keystream
// blocks generated (or skipped over) so far.
func (c *Cipher) GetBlockPos() uint64 {
	return c.state[counterWord]
}

// SetBlockPos repositions the keystream at a block boundary. Blocks are
// derived from the fixed state plus the counter alone, so generating after
// a seek matches sequential generation from the start. Buffered partial
// keystream is dropped.
func (c *Cipher) SetBlockPos(pos uint64) {
	c.state[counterWord] = pos
	c.len = 0
}

// SeekBytes positions the keystream at an absolute byte offset. The full
// stream spans 2^64 blocks of 64 bytes, so offsets are 128-bit; anything at
// or past 2^70 is out of range. Seeking into the middle of a block costs
// one block computation.
func (c *Cipher) SeekBytes(pos uint128.Uint128) error {
	block := pos.Rsh(6)
	skip := int(pos.Lo % BlockSize)
	if block.Hi != 0 || (block.Lo == ^uint64(0) && skip > 0) {
		// The final counter value is unreachable: producing its block would
		// require the counter to wrap.
		return ErrSeekRange
	}
	c.state[counterWord] = block.Lo
	c.len = 0
	if skip > 0 {
		c.nextBlock(&c.buf)
		c.len = BlockSize - skip
	}
	return nil
}

// BytePosition reports the absolute byte offset of the next keystream byte.
func (c *Cipher) BytePosition() uint128.Uint128 {
	return uint128.From64(c.state[counterWord]).Mul64(BlockSize).Sub64(uint64(c.len))
}
