package ysc1

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"testing"
)

func BenchmarkKeystream(b *testing.B) {
	for _, v := range []Variant{V512, V1024} {
		b.Run(v.String(), func(b *testing.B) {
			b.ReportAllocs()

			key := make([]byte, v.KeySize())
			nonce := make([]byte, v.NonceSize())
			_, _ = rand.Read(key)
			_, _ = rand.Read(nonce)

			c, err := New(v, key, nonce)
			if err != nil {
				b.Fatal(err)
			}

			buf := make([]byte, 64*1024)
			b.SetBytes(int64(len(buf)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.XORKeyStream(buf, buf)
			}
		})
	}
}

func BenchmarkBlock(b *testing.B) {
	backends := []struct {
		name  string
		block blockFunc
	}{
		{"soft", softBlock},
		{"vector", vectorBlock},
	}
	for _, backend := range backends {
		for _, v := range []Variant{V512, V1024} {
			b.Run(fmt.Sprintf("%s/%s", backend.name, v), func(b *testing.B) {
				b.ReportAllocs()

				var state [StateWords]uint64
				var raw [StateWords * 8]byte
				_, _ = rand.Read(raw[:])
				for i := range state {
					state[i] = binary.LittleEndian.Uint64(raw[i*8:])
				}

				rounds := v.params().keystreamRounds
				var block [BlockSize]byte
				b.SetBytes(BlockSize)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					state[counterWord]++
					backend.block(&state, rounds, &block)
				}
			})
		}
	}
}

func BenchmarkSchedule(b *testing.B) {
	for _, v := range []Variant{V512, V1024} {
		b.Run(v.String(), func(b *testing.B) {
			b.ReportAllocs()

			key := make([]byte, v.KeySize())
			nonce := make([]byte, v.NonceSize())
			_, _ = rand.Read(key)
			_, _ = rand.Read(nonce)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := New(v, key, nonce)
				if err != nil {
					b.Fatal(err)
				}
				c.Reset()
			}
		})
	}
}
