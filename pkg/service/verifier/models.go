/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifier

import (
	"time"

	"github.com/trustbloc/did-verifier/pkg/doc/e2e"
	"github.com/trustbloc/did-verifier/pkg/doc/profile"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
	"github.com/trustbloc/did-verifier/pkg/policy"
	"github.com/trustbloc/did-verifier/pkg/storage"
)

// VPOffer is a published offer. OfferID is the only identifier a wallet knows before it
// requests the profile.
type VPOffer struct {
	TxID       string
	OfferID    string
	Device     string
	Service    string
	PolicyID   string
	Payload    string
	ValidUntil time.Time
	storage.Audit
}

// VPProfile is the signed verify profile sent for a transaction.
type VPProfile struct {
	TxID      string
	ProfileID string
	Profile   string
	storage.Audit
}

// VPSubmit is the decrypted and verified presentation of a transaction.
type VPSubmit struct {
	TxID   string
	Holder string
	VP     string
	storage.Audit
}

// OfferRequest asks for an offer matching a policy.
type OfferRequest struct {
	Mode    string `json:"mode"`
	Device  string `json:"device"`
	Service string `json:"service"`
}

// OfferResponse carries the new transaction and the offer for the wallet.
type OfferResponse struct {
	TxID    string               `json:"txId"`
	Payload *policy.OfferPayload `json:"payload"`
}

// ProfileRequest addresses a transaction by txId, or by offerId when txId is empty.
type ProfileRequest struct {
	ID      string `json:"id"`
	TxID    string `json:"txId,omitempty"`
	OfferID string `json:"offerId,omitempty"`
}

// ProfileResponse carries the signed verify profile.
type ProfileResponse struct {
	TxID    string          `json:"txId"`
	Profile *profile.Verify `json:"profile"`
}

// VerifyRequest submits the encrypted presentation.
type VerifyRequest struct {
	ID     string     `json:"id"`
	TxID   string     `json:"txId"`
	AccE2E e2e.AccE2e `json:"accE2e"`
	EncVP  string     `json:"encVp"`
}

// VerifyResponse acknowledges a verified presentation.
type VerifyResponse struct {
	TxID string `json:"txId"`
}

// ConfirmRequest asks for the outcome of an offer.
type ConfirmRequest struct {
	OfferID string `json:"offerId"`
}

// ConfirmResponse reports whether a presentation was verified for the offer and its claims.
type ConfirmResponse struct {
	VC     string     `json:"vc,omitempty"`
	Issuer string     `json:"issuer,omitempty"`
	Claims []vc.Claim `json:"claims"`
	Result bool       `json:"result"`
}
