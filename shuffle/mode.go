// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import (
	"fmt"

	"github.com/vechain/pshuffle/rnd"
	"github.com/vechain/pshuffle/seed"
)

// Mode selects the random source a call draws from: a backend kind, and
// either a seed or system entropy.
type Mode struct {
	Kind   rnd.Kind
	key    seed.Key
	seeded bool
}

// Unseeded returns a mode drawing from system entropy. Results are not reproducible.
func Unseeded(kind rnd.Kind) Mode {
	return Mode{Kind: kind}
}

// SeededWith returns a mode keyed by the derived key of s. Any byte string,
// the empty one included, is a valid seed.
func SeededWith(kind rnd.Kind, s []byte) Mode {
	return SeededWithKey(kind, seed.Derive(s))
}

// SeededWithKey returns a mode keyed by an already derived key.
func SeededWithKey(kind rnd.Kind, key seed.Key) Mode {
	return Mode{Kind: kind, key: key, seeded: true}
}

// Seeded reports whether results are reproducible.
func (m Mode) Seeded() bool {
	return m.seeded
}

// Key returns the derived key of a seeded mode.
func (m Mode) Key() (seed.Key, bool) {
	return m.key, m.seeded
}

// Source creates a fresh source for one call.
func (m Mode) Source() (rnd.Source, error) {
	if !m.seeded {
		return rnd.New(m.Kind, nil)
	}
	if m.Kind == rnd.KindFast {
		k, err := seed.Truncate64(m.key[:])
		if err != nil {
			return nil, err
		}
		return rnd.NewFast(k), nil
	}
	return rnd.New(m.Kind, &m.key)
}

func (m Mode) String() string {
	if !m.seeded {
		return fmt.Sprintf("%v/entropy", m.Kind)
	}
	return fmt.Sprintf("%v/%s", m.Kind, m.key.AbbrevString())
}
