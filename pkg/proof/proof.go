/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination proof_mocks_test.go -self_package mocks -package proof_test -source=proof.go -mock_names signer=MockSigner,didResolver=MockDIDResolver

// Package proof creates and checks the detached signatures carried by protocol messages. The
// signed bytes are the canonical JSON form of the whole message with the proof value removed.
package proof

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/doc/canonical"
	"github.com/trustbloc/did-verifier/pkg/doc/did"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
	"github.com/trustbloc/did-verifier/pkg/multibase"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

var logger = log.New("proof")

type signer interface {
	Sign(ctx context.Context, keyID string, message []byte) ([]byte, error)
}

type didResolver interface {
	Resolve(ctx context.Context, didOrKeyURL string) (*did.Document, error)
}

// Service signs with the verifier's custody keys and verifies signatures of peers.
type Service struct {
	signer   signer
	resolver didResolver
	now      func() time.Time
}

// NewService returns a proof service.
func NewService(signer signer, resolver didResolver) *Service {
	return &Service{
		signer:   signer,
		resolver: resolver,
		now:      time.Now,
	}
}

// PreProof returns the unsigned proof for a message signed by the owner of doc for purpose.
// The proof is attached to the message before signing so that its metadata is covered.
func (s *Service) PreProof(doc *did.Document, purpose vc.ProofPurpose) (*vc.Proof, error) {
	vm, err := doc.KeyForPurpose(purpose)
	if err != nil {
		return nil, err
	}

	curve, err := vm.Curve()
	if err != nil {
		return nil, err
	}

	return vc.NewProof(curve.SignatureType(), purpose, doc.KeyURL(vm.ID), s.now()), nil
}

// Sign signs message, which must carry p as its "proof" member, and sets p.ProofValue.
func (s *Service) Sign(ctx context.Context, message interface{}, p *vc.Proof, enc multibase.Encoding) error {
	keyID, err := p.ProofPurpose.KeyID()
	if err != nil {
		return err
	}

	p.ProofValue = ""
	p.ProofValueList = nil

	data, err := canonical.Marshal(message, canonical.WithoutProofValue())
	if err != nil {
		return resterr.New(resterr.JSONParseError, err).WithComponent(resterr.ProofSvcComponent)
	}

	sig, err := s.signer.Sign(ctx, keyID, data)
	if err != nil {
		return err
	}

	p.ProofValue, err = multibase.EncodeWith(sig, enc)
	if err != nil {
		return err
	}

	logger.Debug("Signed message", log.WithKeyID(keyID), log.WithStep(string(p.ProofPurpose)))

	return nil
}

// Verify checks the proof of the raw JSON message against the given public key.
func Verify(raw []byte, publicKey []byte, curve crypto.Curve) error {
	proofValue := gjson.GetBytes(raw, "proof.proofValue")
	if !proofValue.Exists() || proofValue.String() == "" {
		return resterr.Newf(resterr.SignatureVerificationFailed, "message has no proof value").
			WithComponent(resterr.ProofSvcComponent)
	}

	sig, err := multibase.Decode(proofValue.String())
	if err != nil {
		return err
	}

	data, err := canonical.Canonicalize(raw, canonical.WithoutProofValue())
	if err != nil {
		return resterr.New(resterr.JSONParseError, err).WithComponent(resterr.ProofSvcComponent)
	}

	return crypto.VerifySignature(publicKey, sig, crypto.Digest(data), curve)
}

// VerifyWithResolver resolves the key named by the proof's verificationMethod and verifies
// the proof of the raw JSON message. The resolved document is returned.
func (s *Service) VerifyWithResolver(ctx context.Context, raw []byte) (*did.Document, error) {
	keyURL := gjson.GetBytes(raw, "proof.verificationMethod").String()
	if keyURL == "" {
		return nil, resterr.Newf(resterr.SignatureVerificationFailed, "message has no verification method").
			WithComponent(resterr.ProofSvcComponent)
	}

	doc, err := s.resolver.Resolve(ctx, keyURL)
	if err != nil {
		return nil, err
	}

	vm, err := doc.VerificationMethodByID(keyURL)
	if err != nil {
		return nil, err
	}

	pub, err := vm.PublicKey()
	if err != nil {
		return nil, err
	}

	curve, err := vm.Curve()
	if err != nil {
		return nil, err
	}

	if err = Verify(raw, pub, curve); err != nil {
		return nil, fmt.Errorf("verify proof of %s: %w", keyURL, err)
	}

	return doc, nil
}
