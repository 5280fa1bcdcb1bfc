/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClaimI18N is a localized caption and value of a claim.
type ClaimI18N struct {
	Caption   string `json:"caption"`
	Value     string `json:"value,omitempty"`
	DigestSRI string `json:"digestSRI,omitempty"`
}

// Claim is one attribute of a credential subject.
type Claim struct {
	Code      string               `json:"code"`
	Caption   string               `json:"caption"`
	Value     string               `json:"value"`
	Type      string               `json:"type"`
	Format    string               `json:"format"`
	HideValue bool                 `json:"hideValue,omitempty"`
	Location  string               `json:"location,omitempty"`
	DigestSRI string               `json:"digestSRI,omitempty"`
	I18N      map[string]ClaimI18N `json:"i18n,omitempty"`
}

// Issuer identifies the credential issuer.
type Issuer struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// CredentialSchema references the schema a credential conforms to.
type CredentialSchema struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// CredentialSubject holds the subject and its claims.
type CredentialSubject struct {
	ID     string  `json:"id"`
	Claims []Claim `json:"claims"`
}

// Credential is a verifiable credential.
type Credential struct {
	Context           []string                 `json:"@context"`
	ID                string                   `json:"id"`
	Type              []string                 `json:"type"`
	Issuer            Issuer                   `json:"issuer"`
	IssuanceDate      string                   `json:"issuanceDate"`
	ValidFrom         string                   `json:"validFrom"`
	ValidUntil        string                   `json:"validUntil"`
	Encoding          string                   `json:"encoding,omitempty"`
	FormatVersion     string                   `json:"formatVersion,omitempty"`
	Language          string                   `json:"language,omitempty"`
	Evidence          []map[string]interface{} `json:"evidence,omitempty"`
	CredentialSchema  CredentialSchema         `json:"credentialSchema"`
	CredentialSubject CredentialSubject        `json:"credentialSubject"`
	Proof             *Proof                   `json:"proof,omitempty"`
}

// Presentation is a holder-signed bundle of credentials.
type Presentation struct {
	Context              []string      `json:"@context"`
	ID                   string        `json:"id"`
	Type                 []string      `json:"type"`
	Holder               string        `json:"holder"`
	ValidFrom            string        `json:"validFrom"`
	ValidUntil           string        `json:"validUntil"`
	VerifierNonce        string        `json:"verifierNonce"`
	VerifiableCredential []*Credential `json:"verifiableCredential"`
	Proof                *Proof        `json:"proof,omitempty"`
	Proofs               []*Proof      `json:"proofs,omitempty"`
}

// ParseCredential parses a credential document.
func ParseCredential(raw []byte) (*Credential, error) {
	c := &Credential{}

	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse credential: %w", err)
	}

	return c, nil
}

// ParsePresentation parses a presentation document.
func ParsePresentation(raw []byte) (*Presentation, error) {
	p := &Presentation{}

	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("parse presentation: %w", err)
	}

	return p, nil
}

// Claims returns the claims of all credentials, in credential order.
func (p *Presentation) Claims() []Claim {
	var claims []Claim

	for _, c := range p.VerifiableCredential {
		claims = append(claims, c.CredentialSubject.Claims...)
	}

	return claims
}

// ParseTime parses the RFC 3339 timestamps used in credentials. An empty value yields the zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}

	return t, nil
}

// CheckValidity fails when now is outside [validFrom, validUntil]. Empty bounds are open.
func CheckValidity(validFrom, validUntil string, now time.Time) error {
	from, err := ParseTime(validFrom)
	if err != nil {
		return err
	}

	until, err := ParseTime(validUntil)
	if err != nil {
		return err
	}

	if !from.IsZero() && now.Before(from) {
		return fmt.Errorf("not valid before %s", validFrom)
	}

	if !until.IsZero() && now.After(until) {
		return fmt.Errorf("expired at %s", validUntil)
	}

	return nil
}
