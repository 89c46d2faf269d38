// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// pshuffle shuffles sequences and predicts where elements land without
// materialising the shuffle.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	version       string
	gitCommit     string
	gitTag        string
	copyrightYear string
)

func before(ctx *cli.Context) error {
	lvl, err := readIntFromUInt64Flag(ctx.GlobalUint64(verbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse verbosity flag")
	}
	if _, err := initLogger(os.Stderr, lvl, ctx.GlobalString(logFormatFlag.Name)); err != nil {
		return errors.Wrap(err, "-log-format")
	}
	return nil
}

func main() {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
	app.Name = "pshuffle"
	app.Usage = "seed reproducible shuffles and position prediction"
	app.Copyright = fmt.Sprintf("2026-%s VeChain Foundation <https://vechain.org/>", copyrightYear)
	app.Flags = []cli.Flag{
		verbosityFlag,
		logFormatFlag,
		enableMetricsFlag,
		metricsAddrFlag,
	}
	app.Before = before
	app.Commands = commands

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
