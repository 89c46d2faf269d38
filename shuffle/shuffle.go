// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package shuffle computes seed-reproducible Fisher–Yates permutations and
// predicts where chosen positions land without materializing the permutation.
package shuffle

import (
	"github.com/vechain/pshuffle/log"
	"github.com/vechain/pshuffle/rnd"
)

var logger = log.WithContext("pkg", "shuffle")

// Shuffle returns a permutation of seq, leaving seq untouched.
//
// Durstenfeld's variant: out[:i+1] is the pool still to draw from. For i from
// N-1 down to 1 a position x in [0, i] is drawn, the element at x becomes the
// final element at i and the element at i takes its place in the pool.
// Predict issues exactly the same draws.
func Shuffle[T any](seq []T, src rnd.Source) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	for i := len(out) - 1; i > 0; i-- {
		x := src.Intn(i + 1)
		out[i], out[x] = out[x], out[i]
	}
	metricShuffled().Add(int64(len(out)))
	return out
}

// ShuffleWith shuffles seq with a source created from mode.
func ShuffleWith[T any](seq []T, mode Mode) ([]T, error) {
	src, err := mode.Source()
	if err != nil {
		return nil, err
	}
	return Shuffle(seq, src), nil
}

// Perm returns the shuffled permutation of [0, n): Perm[j] is the source
// position of the element placed at j.
func Perm(n int, mode Mode) ([]int, error) {
	if err := CheckSize(n); err != nil {
		return nil, err
	}
	return ShuffleWith(identity(n), mode)
}

func identity(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
