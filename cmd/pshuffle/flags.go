// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/pshuffle/log"
)

func envVar(name string) string {
	return "PSHUFFLE_" + name
}

var (
	verbosityFlag = cli.Uint64Flag{
		Name:   "verbosity",
		Value:  log.LegacyLevelInfo,
		Usage:  "log verbosity (0-9)",
		EnvVar: envVar("VERBOSITY"),
	}
	logFormatFlag = cli.StringFlag{
		Name:   "log-format",
		Value:  log.FormatTerminal.String(),
		Usage:  "log output format (terminal|json|logfmt)",
		EnvVar: envVar("LOG_FORMAT"),
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:   "enable-metrics",
		Usage:  "serve metrics while the run command executes, until interrupted",
		EnvVar: envVar("ENABLE_METRICS"),
	}
	metricsAddrFlag = cli.StringFlag{
		Name:   "metrics-addr",
		Value:  "localhost:2112",
		Usage:  "metrics service listening address",
		EnvVar: envVar("METRICS_ADDR"),
	}

	sizeFlag = cli.IntFlag{
		Name:  "n",
		Usage: "sequence length",
	}
	peersFlag = cli.StringFlag{
		Name:  "peers",
		Usage: "comma separated original indices to locate",
	}
	batchFlag = cli.IntFlag{
		Name:  "batch",
		Value: 8,
		Usage: "batch divisor, the pool holds n/batch draws",
	}
	kindFlag = cli.StringFlag{
		Name:   "kind",
		Value:  "fast",
		Usage:  "random source (fast|secure)",
		EnvVar: envVar("KIND"),
	}
	seedFlag = cli.StringFlag{
		Name:   "seed",
		Usage:  "seed as text, or bytes when 0x prefixed; omit to use system entropy",
		EnvVar: envVar("SEED"),
	}
	keyFlag = cli.StringFlag{
		Name:   "key",
		Usage:  "already derived 32 bytes seed key in hex, e.g. from vrf-prove",
		EnvVar: envVar("KEY"),
	}

	keyFileFlag = cli.StringFlag{
		Name:   "keyfile",
		Usage:  "private key file path, generated when missing",
		EnvVar: envVar("KEYFILE"),
	}
	keyHexFlag = cli.StringFlag{
		Name:   "keyhex",
		Usage:  "private key as hex",
		EnvVar: envVar("KEYHEX"),
	}
	alphaFlag = cli.StringFlag{
		Name:  "alpha",
		Usage: "VRF input as text, or bytes when 0x prefixed",
	}

	cacheSizeFlag = cli.IntFlag{
		Name:   "cache-size",
		Value:  256,
		Usage:  "number of memoised results, overrides the job file when set",
		EnvVar: envVar("CACHE_SIZE"),
	}
	workersFlag = cli.IntFlag{
		Name:   "workers",
		Usage:  "worker count, overrides the job file when set (default: number of CPUs)",
		EnvVar: envVar("WORKERS"),
	}
	noProgressFlag = cli.BoolFlag{
		Name:  "no-progress",
		Usage: "disable the progress bar",
	}
)

var modeFlags = []cli.Flag{kindFlag, seedFlag, keyFlag}
