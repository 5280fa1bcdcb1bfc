/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package multibase encodes the binary values carried on the wire. Nonces, session keys and
// most signatures use base64, public keys and profile proofs use base58btc.
package multibase

import (
	"fmt"

	mb "github.com/multiformats/go-multibase"

	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

// Encoding is a multibase encoding.
type Encoding = mb.Encoding

// Supported encodings.
const (
	Base64    Encoding = mb.Base64
	Base58BTC Encoding = mb.Base58BTC
)

// Encode encodes data in base64 multibase.
func Encode(data []byte) (string, error) {
	return EncodeWith(data, Base64)
}

// EncodeWith encodes data with the given multibase encoding.
func EncodeWith(data []byte, enc Encoding) (string, error) {
	s, err := mb.Encode(enc, data)
	if err != nil {
		return "", resterr.New(resterr.EncodingFailed, err)
	}

	return s, nil
}

// Decode decodes any multibase string.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, resterr.New(resterr.DecodingFailed, fmt.Errorf("empty multibase value"))
	}

	_, data, err := mb.Decode(s)
	if err != nil {
		return nil, resterr.New(resterr.DecodingFailed, err)
	}

	return data, nil
}

// MustEncode encodes data with a fixed encoding known to succeed.
func MustEncode(data []byte, enc Encoding) string {
	s, err := EncodeWith(data, enc)
	if err != nil {
		panic(err)
	}

	return s
}
