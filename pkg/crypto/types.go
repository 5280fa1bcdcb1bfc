/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"encoding/json"
	"strings"

	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

// Curve is an elliptic curve supported for key agreement and signatures.
type Curve string

// Supported curves.
const (
	Secp256k1 Curve = "Secp256k1"
	Secp256r1 Curve = "Secp256r1"
)

// ParseCurve parses a curve name, case-insensitively.
func ParseCurve(s string) (Curve, error) {
	for _, c := range []Curve{Secp256k1, Secp256r1} {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}

	return "", resterr.Newf(resterr.InvalidECCCurveType, "unsupported curve %q", s)
}

// Valid returns an error for curves other than the supported ones.
func (c Curve) Valid() error {
	_, err := ParseCurve(string(c))

	return err
}

// VerificationKeyType returns the DID document key type of the curve.
func (c Curve) VerificationKeyType() string {
	if c == Secp256k1 {
		return "Secp256k1VerificationKey2018"
	}

	return "Secp256r1VerificationKey2018"
}

// SignatureType returns the proof type of signatures made on the curve.
func (c Curve) SignatureType() string {
	if c == Secp256k1 {
		return "Secp256k1Signature2018"
	}

	return "Secp256r1Signature2018"
}

// CurveOfKeyType maps a DID document key type to its curve.
func CurveOfKeyType(keyType string) (Curve, error) {
	switch keyType {
	case "Secp256k1VerificationKey2018":
		return Secp256k1, nil
	case "Secp256r1VerificationKey2018":
		return Secp256r1, nil
	default:
		return "", resterr.Newf(resterr.InvalidECCCurveType, "unsupported key type %q", keyType)
	}
}

func (c *Curve) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseCurve(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// Cipher is a symmetric cipher with its key size and block mode.
type Cipher string

// Supported ciphers.
const (
	AES128CBC Cipher = "AES-128-CBC"
	AES128ECB Cipher = "AES-128-ECB"
	AES256CBC Cipher = "AES-256-CBC"
	AES256ECB Cipher = "AES-256-ECB"
)

// Ciphers lists every supported cipher, used as the candidate list in ECDH requests.
func Ciphers() []Cipher {
	return []Cipher{AES128CBC, AES128ECB, AES256CBC, AES256ECB}
}

// ParseCipher parses a cipher name. Names are matched exactly.
func ParseCipher(s string) (Cipher, error) {
	for _, c := range Ciphers() {
		if string(c) == s {
			return c, nil
		}
	}

	return "", resterr.Newf(resterr.InvalidSymmetricCipherType, "unsupported cipher %q", s)
}

// KeySize returns the key length in bytes.
func (c Cipher) KeySize() (int, error) {
	switch c {
	case AES128CBC, AES128ECB:
		return 16, nil //nolint:gomnd
	case AES256CBC, AES256ECB:
		return 32, nil //nolint:gomnd
	default:
		return 0, resterr.Newf(resterr.InvalidSymmetricCipherType, "unsupported cipher %q", c)
	}
}

func (c Cipher) cbc() bool {
	return c == AES128CBC || c == AES256CBC
}

func (c *Cipher) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseCipher(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// Padding is a block padding scheme.
type Padding string

// Supported paddings.
const (
	NoPad Padding = "NOPAD"
	PKCS5 Padding = "PKCS5"
)

// ParsePadding parses a padding name. Names are matched exactly.
func ParsePadding(s string) (Padding, error) {
	switch Padding(s) {
	case NoPad, PKCS5:
		return Padding(s), nil
	default:
		return "", resterr.Newf(resterr.InvalidSymmetricPaddingType, "unsupported padding %q", s)
	}
}

func (p *Padding) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParsePadding(s)
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

func (p Padding) String() string {
	return string(p)
}

func (c Cipher) String() string {
	return string(c)
}

func (c Curve) String() string {
	return string(c)
}
