// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rnd

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/chacha20"

	"github.com/vechain/pshuffle/seed"
)

// Secure draws from a ChaCha20 keystream keyed with the full 32-byte seed key.
type Secure struct {
	stream *chacha20.Cipher
	block  [64]byte
	pos    int
	r      *rand.Rand
}

var (
	_ Source      = (*Secure)(nil)
	_ rand.Source = (*Secure)(nil)
)

// NewSecure creates a Secure source keyed with key.
func NewSecure(key seed.Key) *Secure {
	s := &Secure{}
	s.Seed(key)
	s.r = rand.New(s)
	return s
}

// NewSecureFromEntropy creates a Secure source keyed from system entropy.
func NewSecureFromEntropy() *Secure {
	var key seed.Key
	entropy(key[:])
	return NewSecure(key)
}

// Seed rekeys the keystream and discards any buffered output.
func (s *Secure) Seed(key seed.Key) {
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed
		panic(err)
	}
	s.stream = stream
	s.pos = len(s.block)
}

// Uint64 implements rand.Source.
func (s *Secure) Uint64() uint64 {
	if s.pos == len(s.block) {
		s.nextBlock()
	}
	v := binary.LittleEndian.Uint64(s.block[s.pos:])
	s.pos += 8
	return v
}

func (s *Secure) nextBlock() {
	clear(s.block[:])
	s.stream.XORKeyStream(s.block[:], s.block[:])
	s.pos = 0
}

// Intn returns int in [0, n).
// panic if n <= 0
func (s *Secure) Intn(n int) int {
	if n <= 0 {
		panic("n must > 0")
	}
	return s.r.IntN(n)
}
