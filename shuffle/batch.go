// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import (
	"fmt"

	"github.com/vechain/pshuffle/rnd"
)

// PredictBatched is the approximate variant of Predict. It reuses a pool of
// n/batch random values instead of drawing once per position:
//
//	x = pool[i mod len(pool)] mod (i+1)
//
// With the fast backend the pool is a shuffle of [0, n/batch). With the secure
// backend the first n/batch steps draw fresh values and fill the pool.
//
// The result is injective over the distinct peers but does not equal the
// positions Shuffle produces for the same seed.
func PredictBatched(n int, peers []int, batch int, mode Mode) (map[int]int, error) {
	if err := CheckSize(n); err != nil {
		return nil, err
	}
	if batch <= 0 || batch > n {
		return nil, &ParameterError{Name: "batch", Value: batch, Reason: fmt.Sprintf("must be within [1, %d]", n)}
	}
	t, err := newTracker(n, peers)
	if err != nil {
		return nil, err
	}
	src, err := mode.Source()
	if err != nil {
		return nil, err
	}

	size := n / batch
	var draw func(i int) int
	if mode.Kind == rnd.KindSecure {
		pool := make([]int, 0, size)
		draw = func(i int) int {
			if len(pool) < size {
				x := src.Intn(i + 1)
				pool = append(pool, x)
				return x
			}
			return pool[i%size] % (i + 1)
		}
	} else {
		pool := Shuffle(identity(size), src)
		draw = func(i int) int {
			return pool[i%size] % (i + 1)
		}
	}

	steps := t.run(n, draw)
	observe("batched", mode, steps)
	logger.Trace("predicted positions", "n", n, "peers", len(t.result), "batch", batch, "pool", size, "steps", steps, "mode", mode)
	return t.result, nil
}
