// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vrfseed

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/pshuffle/rnd"
	"github.com/vechain/pshuffle/seed"
	"github.com/vechain/pshuffle/shuffle"
)

func TestProveVerify(t *testing.T) {
	sk, err := GenerateKey()
	require.NoError(t, err)

	alpha := []byte("round 42")
	sig, key, err := Prove(sk, alpha)
	require.NoError(t, err)
	assert.Len(t, sig.Bytes(), SignatureLen)
	assert.False(t, key.IsZero())

	verified, err := Verify(sig, alpha)
	require.NoError(t, err)
	assert.Equal(t, key, verified)

	// the VRF is deterministic for a key and input
	sig2, key2, err := Prove(sk, alpha)
	require.NoError(t, err)
	assert.Equal(t, key, key2)
	assert.Equal(t, sig.Bytes(), sig2.Bytes())

	_, err = Verify(sig, []byte("round 43"))
	assert.Error(t, err)
}

func TestSignatureEncoding(t *testing.T) {
	sk, err := crypto.HexToECDSA("b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	require.NoError(t, err)

	sig, _, err := Prove(sk, []byte("alpha"))
	require.NoError(t, err)

	parsed, err := ParseSignatureHex(sig.String())
	require.NoError(t, err)
	assert.Equal(t, sig.Bytes(), parsed.Bytes())

	pub, err := parsed.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, crypto.CompressPubkey(&sk.PublicKey), crypto.CompressPubkey(pub))

	_, err = ParseSignature(sig.Bytes()[1:])
	assert.Error(t, err)
	_, err = ParseSignatureHex("0xzz")
	assert.Error(t, err)

	_, err = ParsePublicKey(crypto.FromECDSAPub(&sk.PublicKey))
	assert.NoError(t, err)
	_, err = ParsePublicKey([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestCombine(t *testing.T) {
	alpha := []byte("epoch 7")
	var sigs []*Signature
	for range 3 {
		sk, err := GenerateKey()
		require.NoError(t, err)
		sig, _, err := Prove(sk, alpha)
		require.NoError(t, err)
		sigs = append(sigs, sig)
	}

	key, err := Combine(alpha, sigs)
	require.NoError(t, err)

	again, err := Combine(alpha, sigs)
	require.NoError(t, err)
	assert.Equal(t, key, again)

	// order matters
	reordered, err := Combine(alpha, []*Signature{sigs[2], sigs[1], sigs[0]})
	require.NoError(t, err)
	assert.NotEqual(t, key, reordered)

	_, err = Combine(alpha, nil)
	assert.Error(t, err)

	tampered := sigs[1].Bytes()
	tampered[len(tampered)-1] ^= 1
	bad, err := ParseSignature(tampered)
	require.NoError(t, err)
	_, err = Combine(alpha, []*Signature{sigs[0], bad})
	assert.ErrorContains(t, err, "signature 1")
}

func TestVRFSeededPrediction(t *testing.T) {
	sk, err := GenerateKey()
	require.NoError(t, err)
	sig, key, err := Prove(sk, []byte("committee"))
	require.NoError(t, err)

	verified, err := Verify(sig, []byte("committee"))
	require.NoError(t, err)

	mode := shuffle.SeededWithKey(rnd.KindSecure, key)
	got, err := shuffle.Predict(1000, []int{3, 14, 159}, mode)
	require.NoError(t, err)

	check, err := shuffle.Predict(1000, []int{3, 14, 159}, shuffle.SeededWithKey(rnd.KindSecure, verified))
	require.NoError(t, err)
	assert.Equal(t, got, check)
	assert.NotEqual(t, seed.Key{}, key)
}
