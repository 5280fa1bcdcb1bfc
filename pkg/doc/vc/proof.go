/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"time"

	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

// ProofCreatedLayout is the layout of Proof.Created: UTC with microseconds and a Z suffix.
const ProofCreatedLayout = "2006-01-02T15:04:05.000000Z"

// ProofPurpose names the verification relationship a proof is made under.
type ProofPurpose string

// Proof purposes.
const (
	AssertionMethod      ProofPurpose = "assertionMethod"
	Authentication       ProofPurpose = "authentication"
	KeyAgreement         ProofPurpose = "keyAgreement"
	CapabilityInvocation ProofPurpose = "capabilityInvocation"
	CapabilityDelegation ProofPurpose = "capabilityDelegation"
)

// Key ids of the verifier's own DID document.
const (
	KeyIDAssert   = "assert"
	KeyIDAuth     = "auth"
	KeyIDKeyAgree = "keyagree"
	KeyIDInvoke   = "invoke"
)

// KeyID returns the id of the verifier key used for the purpose.
func (p ProofPurpose) KeyID() (string, error) {
	switch p {
	case AssertionMethod:
		return KeyIDAssert, nil
	case Authentication:
		return KeyIDAuth, nil
	case KeyAgreement:
		return KeyIDKeyAgree, nil
	case CapabilityInvocation:
		return KeyIDInvoke, nil
	default:
		return "", resterr.Newf(resterr.InvalidProofPurpose, "no key for proof purpose %q", p)
	}
}

// Proof is a detached signature with its metadata.
type Proof struct {
	Type               string       `json:"type,omitempty"`
	Created            string       `json:"created,omitempty"`
	VerificationMethod string       `json:"verificationMethod,omitempty"`
	ProofPurpose       ProofPurpose `json:"proofPurpose,omitempty"`
	ProofValue         string       `json:"proofValue,omitempty"`
	ProofValueList     []string     `json:"proofValueList,omitempty"`
}

// NewProof returns an unsigned proof created now.
func NewProof(proofType string, purpose ProofPurpose, verificationMethod string, now time.Time) *Proof {
	return &Proof{
		Type:               proofType,
		Created:            FormatProofTime(now),
		VerificationMethod: verificationMethod,
		ProofPurpose:       purpose,
	}
}

// FormatProofTime formats t in ProofCreatedLayout.
func FormatProofTime(t time.Time) string {
	return t.UTC().Format(ProofCreatedLayout)
}
