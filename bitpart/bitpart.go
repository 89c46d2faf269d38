// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bitpart is an experimental permutation that locates a single index
// in O(log N) by recursive halving.
//
// A block [lo, lo+size) is split into a lower half of size/2 positions and an
// upper half holding the rest. One key-derived bit per block decides which half
// comes first in the block's output range; each half is then permuted the same
// way inside the range it was given. Both halves always map onto disjoint
// contiguous ranges of their own size, so every level, odd sizes included, is
// a bijection and so is the whole.
//
// The permutation is neither uniform nor related to shuffle.Perm for the same
// key. Use it only where a cheap, verifiable bijection is enough.
package bitpart

import (
	"encoding/binary"
	"io"

	"github.com/vechain/pshuffle/seed"
	"github.com/vechain/pshuffle/shuffle"
)

// byteBits[b][i] is bit i of b, most significant first.
var byteBits = func() (t [256][8]bool) {
	for b := range t {
		for i := range t[b] {
			t[b][i] = b&(0x80>>i) != 0
		}
	}
	return
}()

// upperFirst derives the half order of block (lo, size) at the given depth.
func upperFirst(key seed.Key, lo, size, depth int) bool {
	h := seed.Blake2bFn(func(w io.Writer) {
		var b [16]byte
		binary.BigEndian.PutUint64(b[:8], uint64(lo))
		binary.BigEndian.PutUint64(b[8:], uint64(size))
		w.Write(key[:])
		w.Write(b[:])
	})
	return byteBits[h[0]][depth%8]
}

// Position returns where index lands in a length-n sequence.
func Position(n, index int, key seed.Key) (int, error) {
	if err := shuffle.CheckSize(n); err != nil {
		return 0, err
	}
	if err := shuffle.CheckIndex(index, n); err != nil {
		return 0, err
	}
	return position(n, index, key), nil
}

func position(n, index int, key seed.Key) int {
	lo, size, out := 0, n, 0
	for depth := 0; size > 1; depth++ {
		lower := size / 2
		upper := size - lower
		swap := upperFirst(key, lo, size, depth)
		if index < lo+lower {
			if swap {
				out += upper
			}
			size = lower
		} else {
			if !swap {
				out += lower
			}
			lo += lower
			size = upper
		}
	}
	return out
}

// Predict returns the landing positions of the distinct peers.
func Predict(n int, peers []int, key seed.Key) (map[int]int, error) {
	if err := shuffle.CheckSize(n); err != nil {
		return nil, err
	}
	for _, p := range peers {
		if err := shuffle.CheckIndex(p, n); err != nil {
			return nil, err
		}
	}
	result := make(map[int]int, len(peers))
	for _, p := range peers {
		if _, ok := result[p]; !ok {
			result[p] = position(n, p, key)
		}
	}
	return result, nil
}

// Permutation materializes the permutation: perm[j] is the index landing at j.
func Permutation(n int, key seed.Key) ([]int, error) {
	if err := shuffle.CheckSize(n); err != nil {
		return nil, err
	}
	perm := make([]int, n)
	for i := range n {
		perm[position(n, i, key)] = i
	}
	return perm, nil
}
