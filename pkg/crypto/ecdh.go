/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

// NonceSize is the length of protocol nonces.
const NonceSize = 16

// GenerateNonce returns size random bytes.
func GenerateNonce(size int) ([]byte, error) {
	if size <= 0 {
		return nil, resterr.Newf(resterr.GenerateNonceFailed, "invalid nonce size %d", size)
	}

	nonce := make([]byte, size)

	if _, err := rand.Read(nonce); err != nil {
		return nil, resterr.New(resterr.GenerateNonceFailed, err)
	}

	return nonce, nil
}

// DeriveSharedSecret computes the ECDH shared secret (the X coordinate) between the peer's compressed
// public key and the own private scalar.
func DeriveSharedSecret(peerPublicKey, privateKey []byte, curve Curve) ([]byte, error) {
	secret, err := deriveSharedSecret(peerPublicKey, privateKey, curve)
	if err != nil {
		return nil, resterr.New(resterr.CryptoSharedSecretFailed, err)
	}

	return secret, nil
}

func deriveSharedSecret(peerPublicKey, privateKey []byte, curve Curve) ([]byte, error) {
	switch curve {
	case Secp256k1:
		if len(privateKey) != scalarSize {
			return nil, fmt.Errorf("invalid private key length %d", len(privateKey))
		}

		pub, err := btcec.ParsePubKey(peerPublicKey)
		if err != nil {
			return nil, err
		}

		priv, _ := btcec.PrivKeyFromBytes(privateKey)

		return btcec.GenerateSharedSecret(priv, pub), nil
	case Secp256r1:
		peer, err := p256PublicKey(peerPublicKey)
		if err != nil {
			return nil, err
		}

		//nolint:staticcheck // ecdh needs the uncompressed encoding
		pub, err := ecdh.P256().NewPublicKey(elliptic.Marshal(elliptic.P256(), peer.X, peer.Y))
		if err != nil {
			return nil, err
		}

		priv, err := ecdh.P256().NewPrivateKey(privateKey)
		if err != nil {
			return nil, err
		}

		return priv.ECDH(pub)
	default:
		return nil, fmt.Errorf("unsupported curve %q", curve)
	}
}

// MixSecretAndNonce derives the symmetric key: SHA-256(secret||nonce) truncated to the cipher key size.
// Ciphers without a known key size are rejected rather than truncated.
func MixSecretAndNonce(secret, nonce []byte, cipher Cipher) ([]byte, error) {
	size, err := cipher.KeySize()
	if err != nil {
		return nil, err
	}

	h := sha256.New()
	h.Write(secret)
	h.Write(nonce)

	return h.Sum(nil)[:size], nil
}

// MergeNonces combines the initiator's and the responder's nonce, in that order.
func MergeNonces(clientNonce, serverNonce []byte) ([]byte, error) {
	if len(clientNonce) == 0 || len(serverNonce) == 0 {
		return nil, resterr.Newf(resterr.CryptoNonceMergeFailed, "empty nonce")
	}

	h := sha256.New()
	h.Write(clientNonce)
	h.Write(serverNonce)

	return h.Sum(nil), nil
}
