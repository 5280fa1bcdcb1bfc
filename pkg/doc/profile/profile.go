/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

// Type is the profile document type.
type Type string

// Profile types.
const (
	IssueProfile  Type = "IssueProfile"
	VerifyProfile Type = "VerifyProfile"
)

// AuthType is the holder authentication a verify profile demands, as a bit set.
type AuthType int

// Authentication types.
const (
	NoRestrictions AuthType = 0x00000000
	NoAuth         AuthType = 0x00000001
	PIN            AuthType = 0x00000002
	BIO            AuthType = 0x00000004
	PINOrBIO       AuthType = 0x00000006
	PINAndBIO      AuthType = 0x00008006
)

var authTypeNames = map[AuthType]string{ //nolint:gochecknoglobals
	NoRestrictions: "NO_RESTRICTIONS_AUTHENTICATION",
	NoAuth:         "NO_AUTHENTICATION",
	PIN:            "PIN",
	BIO:            "BIO",
	PINOrBIO:       "PIN_OR_BIO",
	PINAndBIO:      "PIN_AND_BIO",
}

// Valid fails for values outside the known set.
func (a AuthType) Valid() error {
	if _, ok := authTypeNames[a]; !ok {
		return resterr.Newf(resterr.InvalidAuthType, "unknown auth type 0x%x", int(a))
	}

	return nil
}

func (a AuthType) String() string {
	if name, ok := authTypeNames[a]; ok {
		return name
	}

	return fmt.Sprintf("AuthType(0x%x)", int(a))
}

// ParseAuthTypeName resolves a name such as "pin" or "BIO", case-insensitively.
func ParseAuthTypeName(name string) (AuthType, error) {
	for a, n := range authTypeNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}

	return 0, resterr.Newf(resterr.InvalidAuthType, "unknown auth type %q", name)
}

// Logo is an image attached to a profile or provider.
type Logo struct {
	Format string `json:"format,omitempty"`
	Link   string `json:"link,omitempty"`
	Value  string `json:"value,omitempty"`
}

// ProviderDetail describes the verifier to the holder.
type ProviderDetail struct {
	DID         string `json:"did"`
	CertVCRef   string `json:"certVcRef"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Logo        *Logo  `json:"logo,omitempty"`
	Ref         string `json:"ref,omitempty"`
}

// CredentialSchema lists a schema the verifier accepts and what it needs from it.
type CredentialSchema struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	PresentAll     bool     `json:"presentAll"`
	DisplayClaims  []string `json:"displayClaims,omitempty"`
	RequiredClaims []string `json:"requiredClaims,omitempty"`
	AllowedIssuers []string `json:"allowedIssuers,omitempty"`
}

// Filter restricts which credentials a presentation may contain.
type Filter struct {
	CredentialSchemas []CredentialSchema `json:"credentialSchemas"`
}

// SchemaByID returns the accepted schema with the given id.
func (f *Filter) SchemaByID(id string) (*CredentialSchema, bool) {
	for i := range f.CredentialSchemas {
		if f.CredentialSchemas[i].ID == id {
			return &f.CredentialSchemas[i], true
		}
	}

	return nil, false
}

// ReqE2e carries the verifier's half of the end-to-end key agreement.
type ReqE2e struct {
	Nonce     string         `json:"nonce"`
	Curve     crypto.Curve   `json:"curve"`
	PublicKey string         `json:"publicKey"`
	Cipher    crypto.Cipher  `json:"cipher"`
	Padding   crypto.Padding `json:"padding"`
	Proof     *vc.Proof      `json:"proof,omitempty"`
}

// Process describes how the holder submits the presentation.
type Process struct {
	Endpoints     []string `json:"endpoints"`
	ReqE2e        ReqE2e   `json:"reqE2e"`
	VerifierNonce string   `json:"verifierNonce"`
	AuthType      AuthType `json:"authType"`
}

// Detail is the body of a verify profile.
type Detail struct {
	Verifier ProviderDetail `json:"verifier"`
	Filter   Filter         `json:"filter"`
	Process  Process        `json:"process"`
}

// Verify is the signed verification profile sent to a holder.
type Verify struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Logo        *Logo     `json:"logo,omitempty"`
	Encoding    string    `json:"encoding"`
	Language    string    `json:"language"`
	Profile     Detail    `json:"profile"`
	Proof       *vc.Proof `json:"proof,omitempty"`
}

// Parse parses a stored verify profile.
func Parse(raw []byte) (*Verify, error) {
	p := &Verify{}

	if err := json.Unmarshal(raw, p); err != nil {
		return nil, resterr.New(resterr.VPProfileParseError, err)
	}

	return p, nil
}
