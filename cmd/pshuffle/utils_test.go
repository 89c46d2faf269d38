// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"flag"
	"math"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/pshuffle/log"
	"github.com/vechain/pshuffle/rnd"
	"github.com/vechain/pshuffle/seed"
	"github.com/vechain/pshuffle/shuffle"
)

func TestParseBytes(t *testing.T) {
	b, err := parseBytes("seed phrase")
	require.NoError(t, err)
	assert.Equal(t, []byte("seed phrase"), b)

	b, err = parseBytes("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0xff}, b)

	b, err = parseBytes("")
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = parseBytes("0x123")
	assert.Error(t, err)
}

func TestParsePeers(t *testing.T) {
	peers, err := parsePeers(" 1, 2,30 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 30}, peers)

	peers, err = parsePeers("")
	require.NoError(t, err)
	assert.Empty(t, peers)

	_, err = parsePeers("1,x")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	mode, err := parseMode("secure", "seed phrase", "", true)
	require.NoError(t, err)
	assert.Equal(t, shuffle.SeededWith(rnd.KindSecure, []byte("seed phrase")), mode)

	mode, err = parseMode("fast", "", "", true)
	require.NoError(t, err)
	assert.Equal(t, shuffle.SeededWith(rnd.KindFast, nil), mode)

	key := seed.Derive([]byte("x"))
	mode, err = parseMode("fast", "ignored", key.String(), true)
	require.NoError(t, err)
	assert.Equal(t, shuffle.SeededWithKey(rnd.KindFast, key), mode)

	mode, err = parseMode("fast", "", "", false)
	require.NoError(t, err)
	assert.False(t, mode.Seeded())

	_, err = parseMode("weak", "", "", false)
	assert.Error(t, err)
	_, err = parseMode("fast", "", "0x12", false)
	assert.Error(t, err)
	_, err = parseMode("secure", "", seed.Key{}.String(), false)
	assert.ErrorContains(t, err, "all zero key")
}

func TestReadIntFromUInt64Flag(t *testing.T) {
	v, err := readIntFromUInt64Flag(3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = readIntFromUInt64Flag(math.MaxUint64)
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	defer log.SetDefault(log.Root())

	var buf bytes.Buffer
	level, err := initLogger(&buf, log.LegacyLevelWarn, "json")
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, level.Level())

	log.Info("hidden")
	log.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	_, err = initLogger(&buf, log.LegacyLevelInfo, "logfmt")
	require.NoError(t, err)
	log.Info("job done", "name", "committee")
	assert.Contains(t, buf.String(), `msg="job done" name=committee`)

	_, err = initLogger(&buf, log.LegacyLevelInfo, "xml")
	assert.Error(t, err)
}

func TestRejectMetrics(t *testing.T) {
	app := cli.NewApp()
	newCtx := func(enabled bool) *cli.Context {
		global := flag.NewFlagSet("global", flag.ContinueOnError)
		global.Bool(enableMetricsFlag.Name, enabled, "")
		return cli.NewContext(app, flag.NewFlagSet("predict", flag.ContinueOnError), cli.NewContext(app, global, nil))
	}

	assert.NoError(t, rejectMetrics(newCtx(false)))
	assert.ErrorContains(t, rejectMetrics(newCtx(true)), "only supported by the run command")
}

func TestLoadOrGenerateKeyFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "key")

	key, err := loadOrGenerateKeyFile(file)
	require.NoError(t, err)

	again, err := loadOrGenerateKeyFile(file)
	require.NoError(t, err)
	assert.Equal(t, crypto.FromECDSA(key), crypto.FromECDSA(again))
}
