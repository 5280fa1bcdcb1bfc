/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

const (
	compactSigSize    = 65
	rawSigSize        = 64
	compactHeaderBase = 27
	compressedFlag    = 4
)

// Digest returns the SHA-256 digest of data.
func Digest(data []byte) []byte {
	sum := sha256.Sum256(data)

	return sum[:]
}

// SignCompact signs a 32 byte digest and returns the 65 byte compact signature
// (recovery header || r || s) with a low s value.
func SignCompact(privateKey, digest []byte, curve Curve) ([]byte, error) {
	switch curve {
	case Secp256k1:
		if len(privateKey) != scalarSize {
			return nil, resterr.Newf(resterr.WalletSignatureGenerationFailed,
				"invalid private key length %d", len(privateKey))
		}

		priv, _ := btcec.PrivKeyFromBytes(privateKey)

		sig, err := btcecdsa.SignCompact(priv, digest, true)
		if err != nil {
			return nil, resterr.New(resterr.WalletSignatureGenerationFailed, err)
		}

		return sig, nil
	case Secp256r1:
		sig, err := signCompactP256(privateKey, digest)
		if err != nil {
			return nil, resterr.New(resterr.WalletSignatureGenerationFailed, err)
		}

		return sig, nil
	default:
		return nil, resterr.Newf(resterr.InvalidECCCurveType, "unsupported curve %q", curve)
	}
}

// CompactFromRS builds a compact signature from r and s, recovering the header with the public key.
func CompactFromRS(r, s *big.Int, publicKey, digest []byte, curve Curve) ([]byte, error) {
	if curve != Secp256r1 {
		return nil, fmt.Errorf("compact conversion is supported for %s only", Secp256r1)
	}

	pub, err := p256PublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	return compactP256(pub, digest, r, s)
}

// VerifySignature verifies a compact (65 byte) or raw (64 byte) signature over a digest with a
// compressed public key.
func VerifySignature(publicKey, signature, digest []byte, curve Curve) error {
	if len(signature) == compactSigSize {
		signature = signature[1:]
	}

	if len(signature) != rawSigSize {
		return resterr.Newf(resterr.SignatureVerificationFailed, "invalid signature length %d", len(signature))
	}

	var ok bool

	switch curve {
	case Secp256k1:
		pub, err := btcec.ParsePubKey(publicKey)
		if err != nil {
			return resterr.New(resterr.SignatureVerificationFailed, err)
		}

		var r, s btcec.ModNScalar

		if r.SetByteSlice(signature[:scalarSize]) || s.SetByteSlice(signature[scalarSize:]) {
			return resterr.Newf(resterr.SignatureVerificationFailed, "signature scalar overflow")
		}

		ok = btcecdsa.NewSignature(&r, &s).Verify(digest, pub)
	case Secp256r1:
		pub, err := p256PublicKey(publicKey)
		if err != nil {
			return resterr.New(resterr.SignatureVerificationFailed, err)
		}

		r := new(big.Int).SetBytes(signature[:scalarSize])
		s := new(big.Int).SetBytes(signature[scalarSize:])

		ok = ecdsa.Verify(pub, digest, r, s)
	default:
		return resterr.Newf(resterr.InvalidECCCurveType, "unsupported curve %q", curve)
	}

	if !ok {
		return resterr.Newf(resterr.SignatureVerificationFailed, "signature does not match")
	}

	return nil
}

func signCompactP256(privateKey, digest []byte) ([]byte, error) {
	priv, err := p256PrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	r, s, err := ecdsa.Sign(rand.Reader, priv, digest)
	if err != nil {
		return nil, err
	}

	return compactP256(&priv.PublicKey, digest, r, s)
}

// compactP256 normalizes s and finds the recovery id that yields pub.
func compactP256(pub *ecdsa.PublicKey, digest []byte, r, s *big.Int) ([]byte, error) {
	curve := elliptic.P256()
	n := curve.Params().N

	if s.Cmp(new(big.Int).Rsh(n, 1)) > 0 {
		s = new(big.Int).Sub(n, s)
	}

	for recID := 0; recID < 2; recID++ {
		x, y, err := recoverP256(digest, r, s, recID)
		if err != nil {
			continue
		}

		if x.Cmp(pub.X) == 0 && y.Cmp(pub.Y) == 0 {
			sig := make([]byte, compactSigSize)
			sig[0] = byte(compactHeaderBase + compressedFlag + recID)
			r.FillBytes(sig[1 : 1+scalarSize])
			s.FillBytes(sig[1+scalarSize:])

			return sig, nil
		}
	}

	return nil, fmt.Errorf("no recovery id matches the public key")
}

// recoverP256 computes Q = r^-1 (sR - eG), R being the point with x = r and y parity recID.
func recoverP256(digest []byte, r, s *big.Int, recID int) (*big.Int, *big.Int, error) {
	curve := elliptic.P256()
	params := curve.Params()

	compressedR := make([]byte, compressedSize)
	compressedR[0] = byte(2 + recID)
	r.FillBytes(compressedR[1:])

	//nolint:staticcheck // point arithmetic on the generic curve API
	rx, ry := elliptic.UnmarshalCompressed(curve, compressedR)
	if rx == nil {
		return nil, nil, fmt.Errorf("r is not on the curve")
	}

	e := new(big.Int).SetBytes(digest)
	if excess := len(digest)*8 - params.N.BitLen(); excess > 0 {
		e.Rsh(e, uint(excess))
	}

	//nolint:staticcheck
	srx, sry := curve.ScalarMult(rx, ry, s.Bytes())

	//nolint:staticcheck
	ex, ey := curve.ScalarBaseMult(new(big.Int).Mod(e, params.N).Bytes())
	ey = new(big.Int).Sub(params.P, ey)

	//nolint:staticcheck
	qx, qy := curve.Add(srx, sry, ex, ey)

	rInv := new(big.Int).ModInverse(r, params.N)

	//nolint:staticcheck
	qx, qy = curve.ScalarMult(qx, qy, rInv.Bytes())

	return qx, qy, nil
}
