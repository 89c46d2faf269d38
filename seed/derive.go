// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package seed expands arbitrary seed bytes into the fixed-width keys
// that seed the random sources.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"sync"

	"github.com/ethereum/go-ethereum/crypto/blake2b"
)

// PrefixLen is the number of digest bytes consumed by Truncate64.
const PrefixLen = 8

// KeyLengthError is returned when a digest is too short to be truncated.
type KeyLengthError struct {
	Want int
	Got  int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("seed: digest too short, want at least %d bytes, got %d", e.Want, e.Got)
}

// Derive hashes seed into a Key. It is defined for every input, the empty one included.
func Derive(seed []byte) Key {
	return sha256.Sum256(seed)
}

// Truncate64 reads the first PrefixLen bytes of digest as a big-endian integer.
// Short digests are rejected, never padded.
func Truncate64(digest []byte) (uint64, error) {
	if len(digest) < PrefixLen {
		return 0, &KeyLengthError{Want: PrefixLen, Got: len(digest)}
	}
	return binary.BigEndian.Uint64(digest[:PrefixLen]), nil
}

// NewBlake2b return blake2b-256 hash.
func NewBlake2b() hash.Hash {
	hash, _ := blake2b.New256(nil)
	return hash
}

// Blake2b computes blake2b-256 checksum over the concatenation of parts.
func Blake2b(parts ...[]byte) Key {
	if len(parts) == 1 {
		return blake2b.Sum256(parts[0])
	}
	return Blake2bFn(func(w io.Writer) {
		for _, b := range parts {
			w.Write(b)
		}
	})
}

// Blake2bFn computes blake2b-256 checksum for the provided writer.
func Blake2bFn(fn func(w io.Writer)) (k Key) {
	w := blake2bStatePool.Get().(*blake2bState)
	fn(w)
	w.Sum(w.k[:0])
	k = w.k
	w.Reset()
	blake2bStatePool.Put(w)
	return
}

type blake2bState struct {
	hash.Hash
	k Key
}

var blake2bStatePool = sync.Pool{
	New: func() any {
		return &blake2bState{
			Hash: NewBlake2b(),
		}
	},
}
