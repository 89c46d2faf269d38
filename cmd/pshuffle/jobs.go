// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	"gopkg.in/yaml.v3"

	"github.com/vechain/pshuffle/co"
	"github.com/vechain/pshuffle/log"
	"github.com/vechain/pshuffle/metrics"
	"github.com/vechain/pshuffle/shuffle"
)

var metricJobCount = metrics.LazyLoadCounterVec("jobs_count", []string{"status"})

// jobFile is the YAML document consumed by the run command.
//
//	workers: 4
//	cache-size: 128
//	jobs:
//	  - name: committee
//	    n: 1000
//	    peers: [3, 14, 159]
//	    kind: secure
//	    seed: "epoch 7"
type jobFile struct {
	Workers   int   `yaml:"workers"`
	CacheSize int   `yaml:"cache-size"`
	Jobs      []job `yaml:"jobs"`
}

type job struct {
	Name  string  `yaml:"name"`
	N     int     `yaml:"n"`
	Peers []int   `yaml:"peers"`
	Batch int     `yaml:"batch"`
	Kind  string  `yaml:"kind"`
	Seed  *string `yaml:"seed"`
	Key   string  `yaml:"key"`
}

type jobResult struct {
	Name      string      `json:"name"`
	Mode      string      `json:"mode,omitempty"`
	Positions map[int]int `json:"positions,omitempty"`
	Error     string      `json:"error,omitempty"`
}

func loadJobFile(path string) (*jobFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open job file")
	}
	defer f.Close()
	return decodeJobFile(f)
}

func decodeJobFile(r io.Reader) (*jobFile, error) {
	var jf jobFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&jf); err != nil {
		return nil, errors.Wrap(err, "decode job file")
	}
	if len(jf.Jobs) == 0 {
		return nil, errors.New("job file has no jobs")
	}
	for i := range jf.Jobs {
		if jf.Jobs[i].Kind == "" {
			jf.Jobs[i].Kind = "fast"
		}
	}
	return &jf, nil
}

func (j *job) request() (shuffle.Request, error) {
	var text string
	if j.Seed != nil {
		text = *j.Seed
	}
	mode, err := parseMode(j.Kind, text, j.Key, j.Seed != nil)
	if err != nil {
		return shuffle.Request{}, err
	}
	return shuffle.Request{N: j.N, Peers: j.Peers, Batch: j.Batch, Mode: mode}, nil
}

// runJobs predicts every job on the given worker count. Seeded jobs sharing
// parameters are served from memo. Results are in job order.
func runJobs(jf *jobFile, workers int, memo *shuffle.Memo, progress bool) []jobResult {
	results := make([]jobResult, len(jf.Jobs))

	var bar *pb.ProgressBar
	if progress {
		bar = pb.New(len(jf.Jobs)).SetMaxWidth(90).Start()
		defer bar.Finish()
	}

	<-co.ParallelN(workers, func(queue chan<- func()) {
		for i := range jf.Jobs {
			queue <- func() {
				j := &jf.Jobs[i]
				results[i] = runJob(j, memo)
				if bar != nil {
					bar.Increment()
				}
			}
		}
	})
	return results
}

func runJob(j *job, memo *shuffle.Memo) jobResult {
	res := jobResult{Name: j.Name}
	req, err := j.request()
	if err == nil {
		res.Mode = req.Mode.String()
		res.Positions, err = memo.Predict(req)
	}
	if err != nil {
		res.Error = err.Error()
		metricJobCount().AddWithLabel(1, map[string]string{"status": "failed"})
		log.Warn("job failed", "name", j.Name, "err", err)
		return res
	}
	metricJobCount().AddWithLabel(1, map[string]string{"status": "ok"})
	log.Debug("job done", "name", j.Name, "mode", res.Mode, "peers", len(res.Positions))
	return res
}
