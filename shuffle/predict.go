// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import (
	"github.com/vechain/pshuffle/rnd"
)

// tracker replays the swaps of Shuffle for tracked occupants only.
type tracker struct {
	slots     []int // occupant+1, 0 when empty
	remaining int
	result    map[int]int
}

// newTracker validates peers against n before anything is allocated.
// Duplicated peers are tracked once.
func newTracker(n int, peers []int) (*tracker, error) {
	if err := CheckSize(n); err != nil {
		return nil, err
	}
	for _, p := range peers {
		if err := CheckIndex(p, n); err != nil {
			return nil, err
		}
	}

	t := &tracker{
		slots:  make([]int, n),
		result: make(map[int]int, len(peers)),
	}
	for _, p := range peers {
		if t.slots[p] == 0 {
			t.slots[p] = p + 1
			t.remaining++
		}
	}
	return t, nil
}

// step applies the swap of positions i and x. It reports true once every
// occupant has its final position.
func (t *tracker) step(i, x int) bool {
	if o := t.slots[x]; o != 0 {
		t.result[o-1] = i
		t.slots[x] = 0
		t.remaining--
		if t.remaining == 0 {
			return true
		}
	}
	// the element at i moves into the pool slot x, even after a hit at x
	if o := t.slots[i]; o != 0 && x != i {
		t.slots[x] = o
		t.slots[i] = 0
	}
	return false
}

// run walks i from n-1 down to 0 drawing x from draw(i), and returns the
// number of steps taken. No draw is issued for i = 0, where x is always 0.
func (t *tracker) run(n int, draw func(i int) int) int {
	if t.remaining == 0 {
		return 0
	}
	for i := n - 1; i > 0; i-- {
		if t.step(i, draw(i)) {
			return n - i
		}
	}
	t.step(0, 0)
	return n
}

// Predict returns the final position of every distinct peer after a Shuffle of
// a length-n sequence under mode, without building the permutation. For a
// seeded mode the result equals the positions Perm(n, mode) places the peers at.
func Predict(n int, peers []int, mode Mode) (map[int]int, error) {
	t, err := newTracker(n, peers)
	if err != nil {
		return nil, err
	}
	src, err := mode.Source()
	if err != nil {
		return nil, err
	}
	steps := predictWith(t, n, src)
	observe("exact", mode, steps)
	logger.Trace("predicted positions", "n", n, "peers", len(t.result), "steps", steps, "mode", mode)
	return t.result, nil
}

func predictWith(t *tracker, n int, src rnd.Source) int {
	return t.run(n, func(i int) int {
		return src.Intn(i + 1)
	})
}
