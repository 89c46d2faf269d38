// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import (
	"github.com/vechain/pshuffle/metrics"
)

var (
	metricPredictions = metrics.LazyLoadCounterVec("predictions_count", []string{"algorithm", "kind"})
	metricSteps       = metrics.LazyLoadHistogramVec("prediction_steps", []string{"algorithm"}, metrics.DecadeBuckets(100_000_000))
	metricShuffled    = metrics.LazyLoadCounter("shuffled_elements_count")
)

func observe(algorithm string, mode Mode, steps int) {
	metricPredictions().AddWithLabel(1, map[string]string{"algorithm": algorithm, "kind": mode.Kind.String()})
	metricSteps().ObserveWithLabels(int64(steps), map[string]string{"algorithm": algorithm})
}
