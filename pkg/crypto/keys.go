/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

const (
	scalarSize     = 32
	compressedSize = 33
)

// KeyPair is an ephemeral or long-term key pair. PrivateKey is the raw 32 byte scalar and
// PublicKey the 33 byte compressed point.
type KeyPair struct {
	Curve      Curve
	PrivateKey []byte
	PublicKey  []byte
}

// GenerateKeyPair generates a key pair on the given curve.
func GenerateKeyPair(curve Curve) (*KeyPair, error) {
	switch curve {
	case Secp256k1:
		priv, err := btcec.NewPrivateKey()
		if err != nil {
			return nil, resterr.New(resterr.CryptoKeyPairGenerationFailed, err)
		}

		return &KeyPair{
			Curve:      curve,
			PrivateKey: priv.Serialize(),
			PublicKey:  priv.PubKey().SerializeCompressed(),
		}, nil
	case Secp256r1:
		priv, err := ecdh.P256().GenerateKey(rand.Reader)
		if err != nil {
			return nil, resterr.New(resterr.CryptoKeyPairGenerationFailed, err)
		}

		return &KeyPair{
			Curve:      curve,
			PrivateKey: priv.Bytes(),
			PublicKey:  compressUncompressed(priv.PublicKey().Bytes()),
		}, nil
	default:
		return nil, resterr.Newf(resterr.CryptoKeyPairGenerationFailed, "unsupported curve %q", curve)
	}
}

// CompressPublicKey derives the compressed public key of a private scalar.
func CompressPublicKey(privateKey []byte, curve Curve) ([]byte, error) {
	switch curve {
	case Secp256k1:
		if len(privateKey) != scalarSize {
			return nil, resterr.Newf(resterr.PublicKeyCompressFailed, "invalid private key length %d", len(privateKey))
		}

		_, pub := btcec.PrivKeyFromBytes(privateKey)

		return pub.SerializeCompressed(), nil
	case Secp256r1:
		priv, err := ecdh.P256().NewPrivateKey(privateKey)
		if err != nil {
			return nil, resterr.New(resterr.PublicKeyCompressFailed, err)
		}

		return compressUncompressed(priv.PublicKey().Bytes()), nil
	default:
		return nil, resterr.Newf(resterr.InvalidECCCurveType, "unsupported curve %q", curve)
	}
}

// compressUncompressed converts a SEC1 uncompressed point (0x04||X||Y) to its compressed form.
func compressUncompressed(point []byte) []byte {
	out := make([]byte, compressedSize)
	out[0] = 2 + point[len(point)-1]&1
	copy(out[1:], point[1:1+scalarSize])

	return out
}

func p256PublicKey(compressed []byte) (*ecdsa.PublicKey, error) {
	if len(compressed) != compressedSize {
		return nil, fmt.Errorf("invalid compressed key length %d", len(compressed))
	}

	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), compressed)
	if x == nil {
		return nil, fmt.Errorf("invalid secp256r1 point")
	}

	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
}

func p256PrivateKey(scalar []byte) (*ecdsa.PrivateKey, error) {
	if len(scalar) != scalarSize {
		return nil, fmt.Errorf("invalid private key length %d", len(scalar))
	}

	curve := elliptic.P256()
	d := new(big.Int).SetBytes(scalar)

	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, fmt.Errorf("invalid secp256r1 scalar")
	}

	x, y := curve.ScalarBaseMult(scalar)

	return &ecdsa.PrivateKey{PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y}, D: d}, nil
}
