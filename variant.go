package ysc1

// Variant selects one of the two YSC1 parameter profiles. The profile fixes
// the key length, nonce length and round counts at construction time; the
// block path never branches on the variant identity itself, only on the
// numbers the profile declares.
type Variant uint8

const (
	// V512 is YSC1-512: 512-bit key, 512-bit nonce.
	V512 Variant = iota
	// V1024 is YSC1-1024: 1024-bit key, 512-bit nonce.
	V1024
)

type variantParams struct {
	keyWords        int
	nonceWords      int
	initRounds      int
	keystreamRounds int
}

// The closed profile table. Word counts are 64-bit words.
var variantTable = [...]variantParams{
	V512:  {keyWords: 8, nonceWords: 8, initRounds: 16, keystreamRounds: 8},
	V1024: {keyWords: 16, nonceWords: 8, initRounds: 20, keystreamRounds: 10},
}

func (v Variant) valid() bool {
	return int(v) < len(variantTable)
}

func (v Variant) params() *variantParams {
	return &variantTable[v]
}

// KeySize returns the key length in bytes for this variant.
func (v Variant) KeySize() int {
	return v.params().keyWords * 8
}

// NonceSize returns the nonce length in bytes for this variant.
func (v Variant) NonceSize() int {
	return v.params().nonceWords * 8
}

func (v Variant) String() string {
	switch v {
	case V512:
		return "YSC1-512"
	case V1024:
		return "YSC1-1024"
	default:
		return "YSC1-invalid"
	}
}
