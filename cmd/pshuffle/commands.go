// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/pshuffle/bitpart"
	"github.com/vechain/pshuffle/log"
	"github.com/vechain/pshuffle/metrics"
	"github.com/vechain/pshuffle/seed"
	"github.com/vechain/pshuffle/shuffle"
	"github.com/vechain/pshuffle/vrfseed"
)

var commands = []cli.Command{
	{
		Name:      "shuffle",
		Usage:     "shuffle the given elements, or [0, n) when none are given",
		ArgsUsage: "[element...]",
		Flags:     append([]cli.Flag{sizeFlag}, modeFlags...),
		Action:    shuffleAction,
		Before:    rejectMetrics,
	},
	{
		Name:   "predict",
		Usage:  "predict final positions of peers in a shuffle of n elements",
		Flags:  append([]cli.Flag{sizeFlag, peersFlag}, modeFlags...),
		Action: predictAction,
		Before: rejectMetrics,
	},
	{
		Name:   "batch",
		Usage:  "predict positions with a reduced draw pool, positions are distinct but not uniform",
		Flags:  append([]cli.Flag{sizeFlag, peersFlag, batchFlag}, modeFlags...),
		Action: batchAction,
		Before: rejectMetrics,
	},
	{
		Name:   "position",
		Usage:  "locate peers under the recursive bit partition permutation",
		Flags:  []cli.Flag{sizeFlag, peersFlag, seedFlag, keyFlag},
		Action: positionAction,
		Before: rejectMetrics,
	},
	{
		Name:   "vrf-prove",
		Usage:  "evaluate the VRF over alpha and print the signature and seed key",
		Flags:  []cli.Flag{keyHexFlag, keyFileFlag, alphaFlag},
		Action: vrfProveAction,
		Before: rejectMetrics,
	},
	{
		Name:      "vrf-verify",
		Usage:     "verify VRF signatures over alpha and print the combined seed key",
		ArgsUsage: "<signature>...",
		Flags:     []cli.Flag{alphaFlag},
		Action:    vrfVerifyAction,
		Before:    rejectMetrics,
	},
	{
		Name:      "run",
		Usage:     "run the prediction jobs of a YAML file",
		ArgsUsage: "<job-file>",
		Flags:     []cli.Flag{workersFlag, cacheSizeFlag, noProgressFlag},
		Action:    runAction,
	},
}

// rejectMetrics refuses -enable-metrics for commands that exit before a
// scrape could happen.
func rejectMetrics(ctx *cli.Context) error {
	if ctx.GlobalBool(enableMetricsFlag.Name) {
		return errors.Errorf("-%s is only supported by the run command", enableMetricsFlag.Name)
	}
	return nil
}

func shuffleAction(ctx *cli.Context) error {
	mode, err := modeFromContext(ctx)
	if err != nil {
		return err
	}
	if args := ctx.Args(); len(args) > 0 {
		out, err := shuffle.ShuffleWith([]string(args), mode)
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, out)
	}
	perm, err := shuffle.Perm(ctx.Int(sizeFlag.Name), mode)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, perm)
}

func predictAction(ctx *cli.Context) error {
	return predict(ctx, 0)
}

func batchAction(ctx *cli.Context) error {
	return predict(ctx, ctx.Int(batchFlag.Name))
}

func predict(ctx *cli.Context, batch int) error {
	mode, err := modeFromContext(ctx)
	if err != nil {
		return err
	}
	peers, err := parsePeers(ctx.String(peersFlag.Name))
	if err != nil {
		return errors.Wrap(err, "-peers")
	}
	req := shuffle.Request{N: ctx.Int(sizeFlag.Name), Peers: peers, Batch: batch, Mode: mode}
	positions, err := req.Do()
	if err != nil {
		return err
	}
	log.Debug("predicted", "mode", mode, "n", req.N, "peers", len(peers))
	return printJSON(os.Stdout, positions)
}

func positionAction(ctx *cli.Context) error {
	// bit partition only reads the key, any kind does
	mode, err := parseMode("fast", ctx.String(seedFlag.Name), ctx.String(keyFlag.Name), ctx.IsSet(seedFlag.Name))
	if err != nil {
		return err
	}
	key, ok := mode.Key()
	if !ok {
		return errors.New("position requires -seed or -key")
	}
	peers, err := parsePeers(ctx.String(peersFlag.Name))
	if err != nil {
		return errors.Wrap(err, "-peers")
	}
	positions, err := bitpart.Predict(ctx.Int(sizeFlag.Name), peers, key)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, positions)
}

func vrfProveAction(ctx *cli.Context) error {
	sk, err := loadKey(ctx)
	if err != nil {
		return err
	}
	alpha, err := parseBytes(ctx.String(alphaFlag.Name))
	if err != nil {
		return errors.Wrap(err, "-alpha")
	}
	sig, key, err := vrfseed.Prove(sk, alpha)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, struct {
		Address   string `json:"address"`
		Signature string `json:"signature"`
		Key       string `json:"key"`
	}{
		Address:   crypto.PubkeyToAddress(sk.PublicKey).Hex(),
		Signature: sig.String(),
		Key:       key.String(),
	})
}

func vrfVerifyAction(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return errors.New("at least one signature is required")
	}
	alpha, err := parseBytes(ctx.String(alphaFlag.Name))
	if err != nil {
		return errors.Wrap(err, "-alpha")
	}
	sigs := make([]*vrfseed.Signature, 0, len(ctx.Args()))
	for i, arg := range ctx.Args() {
		sig, err := vrfseed.ParseSignatureHex(arg)
		if err != nil {
			return errors.WithMessagef(err, "signature %d", i)
		}
		sigs = append(sigs, sig)
	}

	var key seed.Key
	if len(sigs) == 1 {
		key, err = vrfseed.Verify(sigs[0], alpha)
	} else {
		key, err = vrfseed.Combine(alpha, sigs)
	}
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}

func runAction(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		return errors.New("exactly one job file is required")
	}
	jf, err := loadJobFile(ctx.Args().First())
	if err != nil {
		return err
	}

	workers := jf.Workers
	if ctx.IsSet(workersFlag.Name) {
		workers = ctx.Int(workersFlag.Name)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	cacheSize := jf.CacheSize
	if cacheSize <= 0 || ctx.IsSet(cacheSizeFlag.Name) {
		cacheSize = ctx.Int(cacheSizeFlag.Name)
	}
	memo, err := shuffle.NewMemo(cacheSize)
	if err != nil {
		return errors.Wrap(err, "create memo")
	}

	serveMetrics := ctx.GlobalBool(enableMetricsFlag.Name)
	if serveMetrics {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := startMetricsServer(ctx.GlobalString(metricsAddrFlag.Name))
		if err != nil {
			return fmt.Errorf("unable to start metrics server - %w", err)
		}
		log.Info("metrics server started", "url", url)
		defer closeFunc()
	}

	log.Info("running jobs", "jobs", len(jf.Jobs), "workers", workers, "cache", cacheSize)
	results := runJobs(jf, workers, memo, !ctx.Bool(noProgressFlag.Name))

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	log.Info("jobs finished", "failed", failed, "cache-hit-rate", memo.Stats().HitRate())
	if err := printJSON(os.Stdout, results); err != nil {
		return err
	}

	if serveMetrics {
		log.Info("serving metrics until interrupted")
		<-handleExitSignal().Done()
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}
	return nil
}
