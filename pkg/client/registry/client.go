/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package registry is the HTTP client of the DID repository that resolves DID documents and
// credential metadata.
package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/doc/did"
	"github.com/trustbloc/did-verifier/pkg/multibase"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

const (
	apiPath    = "/repository/api/v1"
	didDocPath = apiPath + "/did-doc"
	vcMetaPath = apiPath + "/vc-meta"

	// VCStatusActive is the status of a credential that has been neither revoked nor suspended.
	VCStatusActive = "ACTIVE"
)

var logger = log.New("registry-client")

// VCMeta is the registry's view of an issued credential.
type VCMeta struct {
	ID           string `json:"id"`
	Issuer       string `json:"issuer"`
	Subject      string `json:"subject"`
	Status       string `json:"status"`
	SchemaID     string `json:"credentialSchema,omitempty"`
	IssuanceDate string `json:"issuanceDate,omitempty"`
	ValidFrom    string `json:"validFrom,omitempty"`
	ValidUntil   string `json:"validUntil,omitempty"`
}

// Client talks to the repository API of the registry.
type Client struct {
	httpClient  *http.Client
	registryURL string
}

// NewClient returns a registry client for the registry at registryURL.
func NewClient(httpClient *http.Client, registryURL string) *Client {
	return &Client{
		httpClient:  httpClient,
		registryURL: strings.TrimSuffix(registryURL, "/"),
	}
}

// GetDIDDocument resolves a DID document. didOrKeyURL may be a bare DID, a versioned DID or a
// key URL; only the DID part is sent to the registry.
func (c *Client) GetDIDDocument(ctx context.Context, didOrKeyURL string) (*did.Document, error) {
	u, err := did.ParseKeyURL(didOrKeyURL)
	if err != nil {
		return nil, err
	}

	encoded, err := c.get(ctx, didDocPath, url.Values{"did": {u.DID}}, "didDoc")
	if err != nil {
		return nil, resterr.New(resterr.FailedToFindDIDDoc, fmt.Errorf("get did document %s: %w", u.DID, err)).
			WithComponent(resterr.RegistryClientComponent)
	}

	raw, err := multibase.Decode(encoded)
	if err != nil {
		return nil, resterr.New(resterr.FailedToFindDIDDoc, fmt.Errorf("decode did document %s: %w", u.DID, err)).
			WithComponent(resterr.RegistryClientComponent)
	}

	doc, err := did.ParseDocument(raw)
	if err != nil {
		return nil, resterr.New(resterr.FailedToFindDIDDoc, err).WithComponent(resterr.RegistryClientComponent)
	}

	logger.Debug("Resolved did document", log.WithDID(doc.ID))

	return doc, nil
}

// GetVCMeta returns the registry metadata of the credential with the given id.
func (c *Client) GetVCMeta(ctx context.Context, vcID string) (*VCMeta, error) {
	encoded, err := c.get(ctx, vcMetaPath, url.Values{"vcId": {vcID}}, "vcMeta")
	if err != nil {
		return nil, fmt.Errorf("get vc meta %s: %w", vcID, err)
	}

	raw, err := multibase.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode vc meta %s: %w", vcID, err)
	}

	result := gjson.ParseBytes(raw)
	if !result.IsObject() {
		return nil, fmt.Errorf("vc meta %s is not an object", vcID)
	}

	issuer, _ := lo.Coalesce(result.Get("issuer.id").String(), result.Get("issuer").String())

	return &VCMeta{
		ID:           result.Get("id").String(),
		Issuer:       issuer,
		Subject:      result.Get("subject").String(),
		Status:       result.Get("status").String(),
		SchemaID:     result.Get("credentialSchema.id").String(),
		IssuanceDate: result.Get("issuanceDate").String(),
		ValidFrom:    result.Get("validFrom").String(),
		ValidUntil:   result.Get("validUntil").String(),
	}, nil
}

// CheckVCStatus fails unless the registry reports the credential as active.
func (c *Client) CheckVCStatus(ctx context.Context, vcID string) error {
	meta, err := c.GetVCMeta(ctx, vcID)
	if err != nil {
		return err
	}

	if !strings.EqualFold(meta.Status, VCStatusActive) {
		return fmt.Errorf("credential %s has status %q", vcID, meta.Status)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, field string) (string, error) {
	endpoint := c.registryURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body", log.WithError(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Debug("Registry request failed", log.WithURL(endpoint), log.WithHTTPStatus(resp.StatusCode))

		return "", fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	value := gjson.GetBytes(body, field)
	if value.String() == "" {
		return "", fmt.Errorf("response has no %s", field)
	}

	return value.String(), nil
}
