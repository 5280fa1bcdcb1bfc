/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
	"github.com/trustbloc/did-verifier/pkg/multibase"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

// VerificationMethod is a public key listed in a DID document.
type VerificationMethod struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Controller         string `json:"controller"`
	PublicKeyMultibase string `json:"publicKeyMultibase"`
	AuthType           int    `json:"authType,omitempty"`
}

// Curve returns the curve of the key.
func (vm *VerificationMethod) Curve() (crypto.Curve, error) {
	return crypto.CurveOfKeyType(vm.Type)
}

// PublicKey returns the decoded compressed public key.
func (vm *VerificationMethod) PublicKey() ([]byte, error) {
	return multibase.Decode(vm.PublicKeyMultibase)
}

// Service is a service endpoint of a DID subject.
type Service struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	ServiceEndpoint []string `json:"serviceEndpoint"`
}

// Document is a resolved DID document.
type Document struct {
	Context              []string             `json:"@context,omitempty"`
	ID                   string               `json:"id"`
	Controller           string               `json:"controller,omitempty"`
	Created              string               `json:"created,omitempty"`
	Updated              string               `json:"updated,omitempty"`
	VersionID            string               `json:"versionId"`
	Deactivated          bool                 `json:"deactivated"`
	VerificationMethod   []VerificationMethod `json:"verificationMethod"`
	AssertionMethod      []string             `json:"assertionMethod,omitempty"`
	Authentication       []string             `json:"authentication,omitempty"`
	KeyAgreement         []string             `json:"keyAgreement,omitempty"`
	CapabilityInvocation []string             `json:"capabilityInvocation,omitempty"`
	CapabilityDelegation []string             `json:"capabilityDelegation,omitempty"`
	Service              []Service            `json:"service,omitempty"`
	Proofs               []*vc.Proof          `json:"proofs,omitempty"`
}

// ParseDocument parses a DID document.
func ParseDocument(raw []byte) (*Document, error) {
	doc := &Document{}

	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, resterr.New(resterr.JSONParseError, fmt.Errorf("parse did document: %w", err))
	}

	if doc.ID == "" {
		return nil, resterr.Newf(resterr.JSONParseError, "did document has no id")
	}

	return doc, nil
}

// VerificationMethodByID returns the key with the given id. The id may be a bare key id or a
// key URL.
func (d *Document) VerificationMethodByID(keyID string) (*VerificationMethod, error) {
	if strings.Contains(keyID, "#") {
		u, err := ParseKeyURL(keyID)
		if err != nil {
			return nil, err
		}

		keyID = u.KeyID
	}

	vm, ok := lo.Find(d.VerificationMethod, func(m VerificationMethod) bool {
		return m.ID == keyID
	})
	if !ok {
		return nil, resterr.Newf(resterr.FailedToFindDIDDoc, "key %q not found in %s", keyID, d.ID)
	}

	return &vm, nil
}

// KeyForPurpose returns the key the purpose maps to, provided the document lists it under the
// matching verification relationship.
func (d *Document) KeyForPurpose(purpose vc.ProofPurpose) (*VerificationMethod, error) {
	keyID, err := purpose.KeyID()
	if err != nil {
		return nil, err
	}

	if !lo.Contains(d.relationship(purpose), keyID) {
		return nil, resterr.Newf(resterr.InvalidProofPurpose, "key %q is not listed under %s in %s",
			keyID, purpose, d.ID)
	}

	return d.VerificationMethodByID(keyID)
}

// KeyURL returns the versioned URL of one of the document's keys.
func (d *Document) KeyURL(keyID string) string {
	return (&KeyURL{DID: d.ID, VersionID: d.VersionID, KeyID: keyID}).String()
}

func (d *Document) relationship(purpose vc.ProofPurpose) []string {
	switch purpose {
	case vc.AssertionMethod:
		return d.AssertionMethod
	case vc.Authentication:
		return d.Authentication
	case vc.KeyAgreement:
		return d.KeyAgreement
	case vc.CapabilityInvocation:
		return d.CapabilityInvocation
	case vc.CapabilityDelegation:
		return d.CapabilityDelegation
	default:
		return nil
	}
}

// KeyURL references a key of a specific DID document version: did?versionId=N#keyId.
type KeyURL struct {
	DID       string
	VersionID string
	KeyID     string
}

// ParseKeyURL parses a DID, a versioned DID or a key URL.
func ParseKeyURL(s string) (*KeyURL, error) {
	if !strings.HasPrefix(s, "did:") {
		return nil, resterr.Newf(resterr.FailedToFindDIDDoc, "not a did url: %q", s)
	}

	u := &KeyURL{}

	rest, keyID, _ := strings.Cut(s, "#")
	u.KeyID = keyID

	did, query, hasQuery := strings.Cut(rest, "?")
	u.DID = did

	if hasQuery {
		for _, param := range strings.Split(query, "&") {
			if k, v, _ := strings.Cut(param, "="); k == "versionId" {
				u.VersionID = v
			}
		}
	}

	if strings.Count(u.DID, ":") < 2 { //nolint:gomnd
		return nil, resterr.Newf(resterr.FailedToFindDIDDoc, "not a did url: %q", s)
	}

	return u, nil
}

func (u *KeyURL) String() string {
	var sb strings.Builder

	sb.WriteString(u.DID)

	if u.VersionID != "" {
		sb.WriteString("?versionId=")
		sb.WriteString(u.VersionID)
	}

	if u.KeyID != "" {
		sb.WriteString("#")
		sb.WriteString(u.KeyID)
	}

	return sb.String()
}
