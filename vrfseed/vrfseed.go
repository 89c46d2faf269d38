// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package vrfseed derives shuffle seeds from ECVRF outputs, so that anyone
// holding the public keys and proofs can check the seed was not chosen.
package vrfseed

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/vechain/go-ecvrf"

	"github.com/vechain/pshuffle/seed"
)

const (
	// PubKeyLen is the length of a compressed secp256k1 public key.
	PubKeyLen = 33
	// ProofLen is the length of a secp256k1-SHA256-TAI proof.
	ProofLen = 81
	// SignatureLen is the length of an encoded Signature.
	SignatureLen = PubKeyLen + ProofLen
)

// Signature is a VRF proof bound to its prover.
// Composed by [ Compressed Public Key(33bytes) + Proof(81bytes) ]
type Signature struct {
	body []byte
}

// NewSignature creates a new signature.
func NewSignature(pub, proof []byte) *Signature {
	var s Signature
	s.body = append(s.body, pub...)
	s.body = append(s.body, proof...)
	return &s
}

// ParseSignature decodes a signature from bytes.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureLen {
		return nil, errors.Errorf("invalid VRF signature length, %d bytes needed", SignatureLen)
	}
	return NewSignature(b[:PubKeyLen], b[PubKeyLen:]), nil
}

// ParseSignatureHex decodes a signature from a hex string, 0x prefix optional.
func ParseSignatureHex(s string) (*Signature, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "decode signature")
	}
	return ParseSignature(b)
}

// Bytes returns the content in byte slice.
func (s *Signature) Bytes() []byte {
	return append([]byte(nil), s.body...)
}

// String returns the 0x prefixed hex encoding.
func (s *Signature) String() string {
	return "0x" + hex.EncodeToString(s.body)
}

// PublicKey decodes the prover's public key.
func (s *Signature) PublicKey() (*ecdsa.PublicKey, error) {
	if len(s.body) != SignatureLen {
		return nil, errors.Errorf("invalid VRF signature length, %d bytes needed", SignatureLen)
	}
	return ParsePublicKey(s.body[:PubKeyLen])
}

// Validate verifies the proof over alpha and returns the VRF output.
func (s *Signature) Validate(alpha []byte) ([]byte, error) {
	pub, err := s.PublicKey()
	if err != nil {
		return nil, err
	}
	beta, err := ecvrf.NewSecp256k1Sha256Tai().Verify(pub, alpha, s.body[PubKeyLen:])
	if err != nil {
		return nil, errors.Wrap(err, "verify VRF proof")
	}
	return beta, nil
}

// ParsePublicKey decodes a compressed or uncompressed secp256k1 public key.
func ParsePublicKey(b []byte) (*ecdsa.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, errors.Wrap(err, "parse public key")
	}
	return pub.ToECDSA(), nil
}

// GenerateKey creates a new secp256k1 private key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return sk.ToECDSA(), nil
}

// Prove evaluates the VRF over alpha and returns the signature together
// with the seed key derived from its output.
func Prove(sk *ecdsa.PrivateKey, alpha []byte) (*Signature, seed.Key, error) {
	beta, proof, err := ecvrf.NewSecp256k1Sha256Tai().Prove(sk, alpha)
	if err != nil {
		return nil, seed.Key{}, errors.Wrap(err, "prove VRF")
	}
	return NewSignature(crypto.CompressPubkey(&sk.PublicKey), proof), seed.Blake2b(beta), nil
}

// Verify validates sig over alpha and returns the derived seed key.
func Verify(sig *Signature, alpha []byte) (seed.Key, error) {
	beta, err := sig.Validate(alpha)
	if err != nil {
		return seed.Key{}, err
	}
	return seed.Blake2b(beta), nil
}

// Combine validates every signature over alpha and hashes their outputs, in
// order, into one key. No single prover controls the result as long as one
// output stays unknown to the others until all are revealed.
func Combine(alpha []byte, sigs []*Signature) (seed.Key, error) {
	if len(sigs) == 0 {
		return seed.Key{}, errors.New("no VRF signatures to combine")
	}
	hasher := seed.NewBlake2b()
	for i, sig := range sigs {
		beta, err := sig.Validate(alpha)
		if err != nil {
			return seed.Key{}, errors.WithMessagef(err, "signature %d", i)
		}
		hasher.Write(beta)
	}
	var k seed.Key
	hasher.Sum(k[:0])
	return k, nil
}
