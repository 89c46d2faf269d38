// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package rnd provides the uniform integer sources consumed by the shuffles.
// Every source owns its state; none is shared between instances.
package rnd

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/vechain/pshuffle/seed"
)

// Source draws uniform integers.
type Source interface {
	// Intn returns a uniform int in [0, n) without modulo bias.
	// It panics if n <= 0.
	Intn(n int) int
}

// Kind selects a Source implementation.
type Kind uint8

const (
	// KindFast is the reproducible, throughput oriented generator.
	KindFast Kind = iota
	// KindSecure is the ChaCha20 based generator whose future draws are unpredictable.
	KindSecure
)

func (k Kind) String() string {
	switch k {
	case KindFast:
		return "fast"
	case KindSecure:
		return "secure"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind parses the name returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "fast":
		return KindFast, nil
	case "secure":
		return KindSecure, nil
	}
	return 0, fmt.Errorf("unknown source kind %q", s)
}

// New creates a source of the given kind. A nil key seeds it from system entropy.
func New(kind Kind, key *seed.Key) (Source, error) {
	switch kind {
	case KindFast:
		if key == nil {
			return NewFastFromEntropy(), nil
		}
		return NewFast(key.Uint64()), nil
	case KindSecure:
		if key == nil {
			return NewSecureFromEntropy(), nil
		}
		return NewSecure(*key), nil
	}
	return nil, fmt.Errorf("unknown source kind %v", kind)
}

func entropy(b []byte) {
	if _, err := cryptorand.Read(b); err != nil {
		panic(err)
	}
}

func entropyUint64() uint64 {
	var b [8]byte
	entropy(b[:])
	return binary.BigEndian.Uint64(b[:])
}
