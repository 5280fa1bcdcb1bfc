/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package enrollment is the HTTP client of the trusted authority that enrolls the verifier as a
// trusted entity.
package enrollment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/doc/e2e"
)

const (
	apiPath     = "/api/v1"
	proposePath = apiPath + "/propose-enroll-entity"
	ecdhPath    = apiPath + "/request-ecdh"
	enrollPath  = apiPath + "/request-enroll-entity"
	confirmPath = apiPath + "/confirm-enroll-entity"

	messageIDLayout = "20060102150405"
)

var logger = log.New("enrollment-client")

type proposeRequest struct {
	ID string `json:"id"`
}

// ProposeResponse opens an enrollment transaction.
type ProposeResponse struct {
	TxID      string `json:"txId"`
	AuthNonce string `json:"authNonce"`
}

type ecdhRequest struct {
	ID      string       `json:"id"`
	TxID    string       `json:"txId"`
	ReqEcdh *e2e.ReqEcdh `json:"reqEcdh"`
}

type ecdhResponse struct {
	TxID    string       `json:"txId"`
	AccEcdh *e2e.AccEcdh `json:"accEcdh"`
}

type enrollRequest struct {
	ID      string       `json:"id"`
	TxID    string       `json:"txId"`
	DIDAuth *e2e.DIDAuth `json:"didAuth"`
}

// EnrollResponse carries the encrypted certificate credential.
type EnrollResponse struct {
	TxID  string `json:"txId"`
	EncVC string `json:"encVc"`
	IV    string `json:"iv"`
}

type confirmRequest struct {
	ID   string `json:"id"`
	TxID string `json:"txId"`
	VCID string `json:"vcId"`
}

type confirmResponse struct {
	TxID string `json:"txId"`
}

// Client talks to the enrollment API of the trusted authority.
type Client struct {
	httpClient *http.Client
	baseURL    string
	now        func() time.Time
}

// NewClient returns a client for the authority at baseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		now:        time.Now,
	}
}

// ProposeEnroll opens an enrollment transaction.
func (c *Client) ProposeEnroll(ctx context.Context) (*ProposeResponse, error) {
	resp := &ProposeResponse{}

	if err := c.post(ctx, proposePath, &proposeRequest{ID: c.messageID()}, resp); err != nil {
		return nil, err
	}

	if resp.TxID == "" || resp.AuthNonce == "" {
		return nil, fmt.Errorf("propose enroll: response has no txId or authNonce")
	}

	return resp, nil
}

// RequestEcdh sends the verifier's key agreement request and returns the authority's answer.
func (c *Client) RequestEcdh(ctx context.Context, txID string, req *e2e.ReqEcdh) (*e2e.AccEcdh, error) {
	resp := &ecdhResponse{}

	if err := c.post(ctx, ecdhPath, &ecdhRequest{ID: c.messageID(), TxID: txID, ReqEcdh: req}, resp); err != nil {
		return nil, err
	}

	if resp.AccEcdh == nil {
		return nil, fmt.Errorf("request ecdh: response has no accEcdh")
	}

	return resp.AccEcdh, nil
}

// RequestEnroll authenticates the verifier and returns the encrypted certificate credential.
func (c *Client) RequestEnroll(ctx context.Context, txID string, auth *e2e.DIDAuth) (*EnrollResponse, error) {
	resp := &EnrollResponse{}

	if err := c.post(ctx, enrollPath, &enrollRequest{ID: c.messageID(), TxID: txID, DIDAuth: auth}, resp); err != nil {
		return nil, err
	}

	if resp.EncVC == "" || resp.IV == "" {
		return nil, fmt.Errorf("request enroll: response has no encVc or iv")
	}

	return resp, nil
}

// ConfirmEnroll acknowledges receipt of the certificate credential.
func (c *Client) ConfirmEnroll(ctx context.Context, txID, vcID string) error {
	return c.post(ctx, confirmPath, &confirmRequest{ID: c.messageID(), TxID: txID, VCID: vcID},
		&confirmResponse{})
}

func (c *Client) messageID() string {
	return MessageID(c.now())
}

// MessageID returns a message id: the UTC timestamp to the second, six digits of microseconds
// and eight hex characters of a random UUID.
func MessageID(now time.Time) string {
	now = now.UTC()

	return fmt.Sprintf("%s%06d%s", now.Format(messageIDLayout), now.Nanosecond()/int(time.Microsecond),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (c *Client) post(ctx context.Context, path string, request, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send %s request: %w", path, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body", log.WithError(closeErr))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	logger.Debug("Enrollment authority response", log.WithPath(path), log.WithHTTPStatus(resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status code %d: %s", path, resp.StatusCode, string(respBody))
	}

	if err = json.Unmarshal(respBody, response); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", path, err)
	}

	return nil
}
