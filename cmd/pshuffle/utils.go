// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/pshuffle/log"
	"github.com/vechain/pshuffle/rnd"
	"github.com/vechain/pshuffle/seed"
	"github.com/vechain/pshuffle/shuffle"
	"github.com/vechain/pshuffle/vrfseed"
)

func initLogger(w io.Writer, lvl int, format string) (*slog.LevelVar, error) {
	f, err := log.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	var level slog.LevelVar
	level.Set(log.FromLegacyLevel(lvl))

	useColor := false
	if file, ok := w.(*os.File); ok {
		useColor = (isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())) && os.Getenv("TERM") != "dumb"
	}
	log.SetDefault(log.NewLogger(log.NewHandler(w, f, &level, useColor)))
	return &level, nil
}

func readIntFromUInt64Flag(val uint64) (int, error) {
	if val > math.MaxInt {
		return 0, fmt.Errorf("flag value %d is too large", val)
	}
	return int(val), nil
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		log.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

// parseBytes reads text as-is, or decodes it when 0x prefixed.
func parseBytes(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hexutil.Decode("0x" + s[2:])
	}
	return []byte(s), nil
}

func parsePeers(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	peers := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "peer %q", p)
		}
		peers = append(peers, v)
	}
	return peers, nil
}

func parseMode(kind, seedText, keyHex string, seeded bool) (shuffle.Mode, error) {
	k, err := rnd.ParseKind(kind)
	if err != nil {
		return shuffle.Mode{}, err
	}
	if keyHex != "" {
		key, err := seed.ParseKey(keyHex)
		if err != nil {
			return shuffle.Mode{}, errors.Wrap(err, "key")
		}
		if key.IsZero() {
			return shuffle.Mode{}, errors.New("key: all zero key")
		}
		return shuffle.SeededWithKey(k, key), nil
	}
	if !seeded {
		return shuffle.Unseeded(k), nil
	}
	b, err := parseBytes(seedText)
	if err != nil {
		return shuffle.Mode{}, errors.Wrap(err, "seed")
	}
	return shuffle.SeededWith(k, b), nil
}

func modeFromContext(ctx *cli.Context) (shuffle.Mode, error) {
	return parseMode(
		ctx.String(kindFlag.Name),
		ctx.String(seedFlag.Name),
		ctx.String(keyFlag.Name),
		ctx.IsSet(seedFlag.Name),
	)
}

func loadOrGenerateKeyFile(keyFile string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.LoadECDSA(keyFile)
	if err == nil {
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	if key, err = vrfseed.GenerateKey(); err != nil {
		return nil, err
	}
	if err := crypto.SaveECDSA(keyFile, key); err != nil {
		return nil, err
	}
	log.Info("generated new private key", "file", keyFile)
	return key, nil
}

func loadKey(ctx *cli.Context) (*ecdsa.PrivateKey, error) {
	if keyHex := ctx.String(keyHexFlag.Name); keyHex != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "-keyhex")
		}
		return key, nil
	}
	if keyFile := ctx.String(keyFileFlag.Name); keyFile != "" {
		key, err := loadOrGenerateKeyFile(keyFile)
		if err != nil {
			return nil, errors.Wrap(err, "-keyfile")
		}
		return key, nil
	}
	return nil, errors.New("either -keyhex or -keyfile is required")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
