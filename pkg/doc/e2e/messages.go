/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package e2e holds the wire messages of the ECDH channel negotiation.
package e2e

import (
	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
)

// Candidate lists the ciphers the initiator accepts.
type Candidate struct {
	Ciphers []crypto.Cipher `json:"ciphers"`
}

// ReqEcdh is the initiator's half of the key agreement.
type ReqEcdh struct {
	Client      string       `json:"client"`
	ClientNonce string       `json:"clientNonce"`
	Curve       crypto.Curve `json:"curve"`
	PublicKey   string       `json:"publicKey"`
	Candidate   *Candidate   `json:"candidate,omitempty"`
	Proof       *vc.Proof    `json:"proof,omitempty"`
}

// AccEcdh is the responder's half of the key agreement.
type AccEcdh struct {
	Server      string         `json:"server"`
	ServerNonce string         `json:"serverNonce"`
	PublicKey   string         `json:"publicKey"`
	Cipher      crypto.Cipher  `json:"cipher"`
	Padding     crypto.Padding `json:"padding"`
	Proof       *vc.Proof      `json:"proof,omitempty"`
}

// AccE2e is the holder's answer to the E2E request of a verify profile.
type AccE2e struct {
	PublicKey string    `json:"publicKey"`
	IV        string    `json:"iv"`
	Proof     *vc.Proof `json:"proof,omitempty"`
}

// DIDAuth proves control of a DID by signing a nonce issued by the peer.
type DIDAuth struct {
	DID       string    `json:"did"`
	AuthNonce string    `json:"authNonce"`
	Proof     *vc.Proof `json:"proof,omitempty"`
}
