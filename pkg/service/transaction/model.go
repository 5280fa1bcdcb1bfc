/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"time"

	"github.com/trustbloc/did-verifier/pkg/storage"
)

// Type is the protocol a transaction runs.
type Type string

const (
	// VPSubmit is a presentation run: offer, profile, verify and confirm.
	VPSubmit Type = "VP_SUBMIT"
)

// Status is the status of a transaction or one of its steps.
type Status string

const (
	Pending   Status = "PENDING"
	Completed Status = "COMPLETED"
	Expired   Status = "EXPIRED"
	Invalid   Status = "INVALID"
)

// SubType is the kind of a step.
type SubType string

const (
	RequestOffer   SubType = "REQUEST_OFFER"
	RequestProfile SubType = "REQUEST_PROFILE"
	RequestVerify  SubType = "REQUEST_VERIFY"
)

// Transaction is one protocol run, addressed by the txId exposed to the peer.
type Transaction struct {
	TxID      string
	Type      Type
	Status    Status
	ExpiresAt time.Time
	storage.Audit
}

// SubTransaction is one completed step of a transaction.
type SubTransaction struct {
	TxID   string
	Step   int
	Type   SubType
	Status Status
	storage.Audit
}
