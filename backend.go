package ysc1

// tokens is the cached result of the one-time CPU capability probe run at
// construction. The block path only ever consults this cache.
type tokens struct {
	vector bool
}

// blockFunc computes the keystream block for the counter currently held in
// the state's counter slot. Implementations work on a scratch copy and must
// leave the state itself untouched. The scalar and vector backends produce
// byte-identical output for any (state, rounds) pair.
type blockFunc func(state *[StateWords]uint64, rounds int, block *[BlockSize]byte)

func pickBackend(tok tokens) blockFunc {
	if tok.vector {
		return vectorBlock
	}
	return softBlock
}
