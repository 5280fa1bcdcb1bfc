/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package policy loads the VP policies that tie an offer request (device, service, mode) to
// the verify profile presented to the holder.
package policy

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/doc/profile"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

var logger = log.New("policy")

// OfferType is the type of the offer payload handed to wallets.
const OfferType = "VerifyOffer"

// OfferPayload is the offer a wallet receives, typically through a QR code.
type OfferPayload struct {
	OfferID    string   `json:"offerId,omitempty"`
	Type       string   `json:"type,omitempty"`
	Mode       string   `json:"mode"`
	Device     string   `json:"device"`
	Service    string   `json:"service"`
	Endpoints  []string `json:"endpoints"`
	ValidUntil string   `json:"validUntil,omitempty"`
	Locked     bool     `json:"locked"`
}

// Policy binds an offer template to a verify profile template.
type Policy struct {
	PolicyID string          `json:"policyId"`
	Payload  OfferPayload    `json:"payload"`
	Profile  *profile.Verify `json:"profile"`
}

// Config holds the verifier settings injected into every policy handed out.
type Config struct {
	DID       string
	CertVCRef string
	Ref       string
	Endpoints []string
}

// Store is an immutable, ordered set of policies.
type Store struct {
	policies []*Policy
	byID     map[string]*Policy
	config   Config
}

// Load reads every *.json file under dir, in lexical walk order.
func Load(dir string, config Config) (*Store, error) {
	validator := NewSchemaValidator()

	var policies []*Policy

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		p, err := loadFile(path, validator)
		if err != nil {
			return err
		}

		policies = append(policies, p)

		return nil
	})
	if err != nil {
		return nil, resterr.New(resterr.VPPolicyReadError, fmt.Errorf("load policies from %s: %w", dir, err)).
			WithComponent(resterr.PolicyComponent)
	}

	s, err := New(policies, config)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded VP policies", log.WithPath(dir), log.WithCount(len(policies)))

	return s, nil
}

func loadFile(path string, validator *SchemaValidator) (*Policy, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err = validator.Validate(raw, policySchema); err != nil {
		return nil, fmt.Errorf("policy %s (%s): %w", path, gjson.GetBytes(raw, "policyId").String(), err)
	}

	p := &Policy{}

	if err = json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return p, nil
}

// New returns a store over the given policies. Duplicate policy ids and policies that match
// the same (device, service, mode) tuple are rejected.
func New(policies []*Policy, config Config) (*Store, error) {
	s := &Store{
		policies: policies,
		byID:     make(map[string]*Policy, len(policies)),
		config:   config,
	}

	tuples := make(map[string]string, len(policies))

	for _, p := range policies {
		if _, ok := s.byID[p.PolicyID]; ok {
			return nil, resterr.Newf(resterr.VPPolicyReadError, "duplicate policy id %q", p.PolicyID).
				WithComponent(resterr.PolicyComponent)
		}

		s.byID[p.PolicyID] = p

		key := strings.ToLower(strings.Join([]string{p.Payload.Device, p.Payload.Service, p.Payload.Mode}, "|"))
		if other, ok := tuples[key]; ok {
			return nil, resterr.Newf(resterr.VPPolicyReadError,
				"policies %q and %q match the same device, service and mode", other, p.PolicyID).
				WithComponent(resterr.PolicyComponent)
		}

		tuples[key] = p.PolicyID
	}

	return s, nil
}

// GetByID returns a copy of the policy with the verifier details filled in.
func (s *Store) GetByID(policyID string) (*Policy, error) {
	p, ok := s.byID[policyID]
	if !ok || p.Profile == nil {
		return nil, resterr.Newf(resterr.VPPolicyNotFound, "policy %q not found", policyID).
			WithComponent(resterr.PolicyComponent)
	}

	cp := &Policy{}

	if err := copier.CopyWithOption(cp, p, copier.Option{DeepCopy: true}); err != nil {
		return nil, resterr.New(resterr.VPPolicyReadError, fmt.Errorf("copy policy %s: %w", policyID, err))
	}

	verifier := &cp.Profile.Profile.Verifier
	verifier.DID = s.config.DID
	verifier.CertVCRef = s.config.CertVCRef
	verifier.Ref = s.config.Ref

	cp.Profile.Profile.Process.Endpoints = append([]string(nil), s.config.Endpoints...)
	cp.Payload.Endpoints = append([]string(nil), s.config.Endpoints...)

	return cp, nil
}

// Match returns the id and offer payload of the first policy matching the request. Comparison
// is case-insensitive.
func (s *Store) Match(mode, device, service string) (string, *OfferPayload, error) {
	p, ok := lo.Find(s.policies, func(p *Policy) bool {
		return strings.EqualFold(p.Payload.Device, device) &&
			strings.EqualFold(p.Payload.Service, service) &&
			strings.EqualFold(p.Payload.Mode, mode)
	})
	if !ok {
		return "", nil, resterr.Newf(resterr.VPPolicyNotFound,
			"no policy for mode %q, device %q, service %q", mode, device, service).
			WithComponent(resterr.PolicyComponent)
	}

	payload := p.Payload
	payload.Endpoints = append([]string(nil), s.config.Endpoints...)

	return p.PolicyID, &payload, nil
}

// Policies returns the ids of all loaded policies in load order.
func (s *Store) Policies() []string {
	return lo.Map(s.policies, func(p *Policy, _ int) string { return p.PolicyID })
}
