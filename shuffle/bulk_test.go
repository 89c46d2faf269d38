// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/pshuffle/rnd"
)

func TestPredictAll(t *testing.T) {
	var reqs []Request
	for i := range 40 {
		reqs = append(reqs, Request{
			N:     1000 + i,
			Peers: []int{i, 2 * i, 999},
			Batch: i % 3,
			Mode:  SeededWith(kinds[i%2], fmt.Appendf(nil, "bulk-%d", i)),
		})
	}
	reqs = append(reqs, Request{N: 10, Peers: []int{10}, Mode: SeededWith(rnd.KindFast, nil)})

	results := PredictAll(reqs)
	require.Len(t, results, len(reqs))

	for i, req := range reqs[:40] {
		want, err := req.Do()
		require.NoError(t, err)
		require.NoError(t, results[i].Err)
		assert.Equal(t, want, results[i].Positions, "request %d", i)
	}

	last := results[len(results)-1]
	assert.Nil(t, last.Positions)
	var rerr *RangeError
	assert.True(t, errors.As(last.Err, &rerr))
}

func TestPredictAllEmpty(t *testing.T) {
	assert.Empty(t, PredictAll(nil))
}
