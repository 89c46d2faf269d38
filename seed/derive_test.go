// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package seed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"nil", nil, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"empty", []byte{}, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", []byte("abc"), "0xba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.in).String())
		})
	}

	assert.Equal(t, Derive([]byte("seed phrase")), Derive([]byte("seed phrase")))
	assert.NotEqual(t, Derive([]byte("seed phrase")), Derive([]byte("seed phrase ")))
}

func TestTruncate64(t *testing.T) {
	k := Derive(nil)

	v, err := Truncate64(k[:])
	require.NoError(t, err)
	assert.Equal(t, uint64(0xe3b0c44298fc1c14), v)
	assert.Equal(t, v, k.Uint64())

	v, err = Truncate64([]byte{0, 0, 0, 0, 0, 0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102), v)

	for _, short := range [][]byte{nil, {}, {1, 2, 3, 4, 5, 6, 7}} {
		_, err := Truncate64(short)
		var lenErr *KeyLengthError
		require.True(t, errors.As(err, &lenErr))
		assert.Equal(t, PrefixLen, lenErr.Want)
		assert.Equal(t, len(short), lenErr.Got)
	}
}

func TestBlake2b(t *testing.T) {
	assert.Equal(t,
		"0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		Blake2b([]byte{}).String())

	// multi-part hashing is plain concatenation
	assert.Equal(t, Blake2b([]byte("seed phrase")), Blake2b([]byte("seed"), []byte(" "), []byte("phrase")))
}

func TestParseKey(t *testing.T) {
	k := Derive([]byte("abc"))

	parsed, err := ParseKey(k.String())
	require.NoError(t, err)
	assert.Equal(t, k, parsed)

	parsed, err = ParseKey(k.String()[2:])
	require.NoError(t, err)
	assert.Equal(t, k, parsed)

	_, err = ParseKey("0x1234")
	assert.Error(t, err)
	_, err = ParseKey("zz" + k.String()[2:])
	assert.Error(t, err)
}

func TestKeyJSON(t *testing.T) {
	k := Derive([]byte("abc"))
	data, err := k.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"`+k.String()+`"`, string(data))

	var decoded Key
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, k, decoded)
	assert.False(t, decoded.IsZero())
	assert.True(t, Key{}.IsZero())
}

func BenchmarkDerive(b *testing.B) {
	in := []byte("seed phrase")
	b.ReportAllocs()
	for b.Loop() {
		Derive(in)
	}
}
