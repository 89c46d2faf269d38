// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package seed

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// KeyLen is the length in bytes of a derived key.
const KeyLen = 32

// Key is the fixed-width key expanded from arbitrary seed bytes.
type Key [KeyLen]byte

var (
	_ json.Marshaler   = (*Key)(nil)
	_ json.Unmarshaler = (*Key)(nil)
)

// String implements stringer
func (k Key) String() string {
	return "0x" + hex.EncodeToString(k[:])
}

// AbbrevString returns abbrev string presentation.
func (k Key) AbbrevString() string {
	return fmt.Sprintf("0x%x…%x", k[:4], k[28:])
}

// Bytes returns byte slice form of Key.
func (k Key) Bytes() []byte {
	return k[:]
}

// IsZero returns if Key has all zero bytes.
func (k Key) IsZero() bool {
	return k == Key{}
}

// Uint64 returns the big-endian integer formed by the first 8 bytes.
func (k Key) Uint64() uint64 {
	// a full key is always long enough
	v, _ := Truncate64(k[:])
	return v
}

// MarshalJSON implements json.Marshaler.
func (k *Key) MarshalJSON() ([]byte, error) {
	if k == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKey converts a hex string, with or without 0x prefix, into Key.
func ParseKey(s string) (Key, error) {
	switch len(s) {
	case KeyLen * 2:
	case KeyLen*2 + 2:
		if strings.ToLower(s[:2]) != "0x" {
			return Key{}, errors.New("invalid prefix")
		}
		s = s[2:]
	default:
		return Key{}, errors.New("invalid length")
	}

	var k Key
	if _, err := hex.Decode(k[:], []byte(s)); err != nil {
		return Key{}, err
	}
	return k, nil
}
