// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import (
	"github.com/vechain/pshuffle/co"
)

// Request describes one prediction. Batch 0 selects the exact algorithm.
type Request struct {
	N     int
	Peers []int
	Batch int
	Mode  Mode
}

// Result pairs the outcome of a Request with its error.
type Result struct {
	Positions map[int]int
	Err       error
}

// Do runs the request.
func (r Request) Do() (map[int]int, error) {
	if r.Batch == 0 {
		return Predict(r.N, r.Peers, r.Mode)
	}
	return PredictBatched(r.N, r.Peers, r.Batch, r.Mode)
}

// PredictAll runs independent requests on all CPUs. Results are in request order.
func PredictAll(reqs []Request) []Result {
	results := make([]Result, len(reqs))
	<-co.Parallel(func(queue chan<- func()) {
		for i := range reqs {
			queue <- func() {
				results[i].Positions, results[i].Err = reqs[i].Do()
			}
		}
	})
	return results
}
