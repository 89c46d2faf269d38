// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rnd

import "math/rand/v2"

// Fast is a PCG generator seeded by a 64-bit key. It is reproducible and
// cheap, and must not be used where draws have to stay unpredictable.
type Fast struct {
	pcg *rand.PCG
	r   *rand.Rand
}

var _ Source = (*Fast)(nil)

// NewFast creates a Fast source seeded with key.
func NewFast(key uint64) *Fast {
	pcg := rand.NewPCG(key, key)
	return &Fast{pcg: pcg, r: rand.New(pcg)}
}

// NewFastFromEntropy creates a Fast source seeded from system entropy.
func NewFastFromEntropy() *Fast {
	return NewFast(entropyUint64())
}

// Seed resets the generator to the state NewFast(key) starts from.
func (f *Fast) Seed(key uint64) {
	f.pcg.Seed(key, key)
}

// SeedFromEntropy reseeds the generator from system entropy.
func (f *Fast) SeedFromEntropy() {
	f.Seed(entropyUint64())
}

// Intn returns int in [0, n).
// panic if n <= 0
func (f *Fast) Intn(n int) int {
	if n <= 0 {
		panic("n must > 0")
	}
	return f.r.IntN(n)
}
