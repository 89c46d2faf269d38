// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import (
	"encoding/binary"
	"io"
	"maps"
	"slices"

	"github.com/vechain/pshuffle/cache"
	"github.com/vechain/pshuffle/seed"
)

// Memo caches results of seeded requests. Unseeded requests always run.
// Memo is safe for concurrent use.
type Memo struct {
	lru *cache.LRU[seed.Key, map[int]int]
}

// NewMemo creates a Memo holding at most size results.
func NewMemo(size int) (*Memo, error) {
	lru, err := cache.NewLRU[seed.Key, map[int]int](size)
	if err != nil {
		return nil, err
	}
	return &Memo{lru: lru}, nil
}

// Predict returns the result of req, from the cache when possible.
// The returned map is owned by the caller.
func (m *Memo) Predict(req Request) (map[int]int, error) {
	key, ok := req.cacheKey()
	if !ok {
		return req.Do()
	}
	res, err := m.lru.GetOrLoad(key, func(seed.Key) (map[int]int, error) {
		return req.Do()
	})
	if err != nil {
		return nil, err
	}
	if changed, hit, miss := m.lru.Stats().Stats(); changed {
		logger.Debug("memo hit rate changed", "hit", hit, "miss", miss, "rate", m.lru.Stats().HitRate())
	}
	return maps.Clone(res), nil
}

// Stats exposes the cache hit/miss counters.
func (m *Memo) Stats() *cache.Stats {
	return m.lru.Stats()
}

// cacheKey digests everything the result depends on. Peers are sorted and
// deduplicated since the result only depends on the peer set.
func (r Request) cacheKey() (seed.Key, bool) {
	key, ok := r.Mode.Key()
	if !ok {
		return seed.Key{}, false
	}
	peers := slices.Clone(r.Peers)
	slices.Sort(peers)
	peers = slices.Compact(peers)

	return seed.Blake2bFn(func(w io.Writer) {
		var b [8]byte
		put := func(v int) {
			binary.BigEndian.PutUint64(b[:], uint64(v))
			w.Write(b[:])
		}
		w.Write([]byte{byte(r.Mode.Kind)})
		w.Write(key[:])
		put(r.N)
		put(r.Batch)
		put(len(peers))
		for _, p := range peers {
			put(p)
		}
	}), true
}
