/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination enrollment_service_mocks_test.go -self_package mocks -package enrollment_test -source=enrollment_service.go -mock_names authorityClient=MockAuthorityClient,handshakeEngine=MockHandshakeEngine,proofService=MockProofService,didResolver=MockDIDResolver,certificateStore=MockCertificateStore,eventPublisher=MockEventPublisher

// Package enrollment obtains the verifier's certificate VC from the enrollment authority.
package enrollment

import (
	"context"
	"fmt"
	"time"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	enrollmentclient "github.com/trustbloc/did-verifier/pkg/client/enrollment"
	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/doc/did"
	"github.com/trustbloc/did-verifier/pkg/doc/e2e"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
	"github.com/trustbloc/did-verifier/pkg/event/spi"
	"github.com/trustbloc/did-verifier/pkg/multibase"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics/noop"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
	"github.com/trustbloc/did-verifier/pkg/service/certificatevc"
	"github.com/trustbloc/did-verifier/pkg/service/handshake"
)

var logger = log.New("enrollment-service")

type authorityClient interface {
	ProposeEnroll(ctx context.Context) (*enrollmentclient.ProposeResponse, error)
	RequestEcdh(ctx context.Context, txID string, req *e2e.ReqEcdh) (*e2e.AccEcdh, error)
	RequestEnroll(ctx context.Context, txID string, auth *e2e.DIDAuth) (*enrollmentclient.EnrollResponse, error)
	ConfirmEnroll(ctx context.Context, txID, vcID string) error
}

type handshakeEngine interface {
	Initiate(ctx context.Context, curve crypto.Curve, self *did.Document) (*handshake.Initiation, error)
	CompleteAsInitiator(in *handshake.Initiation, acc *e2e.AccEcdh) (*handshake.Key, error)
}

type proofService interface {
	PreProof(doc *did.Document, purpose vc.ProofPurpose) (*vc.Proof, error)
	Sign(ctx context.Context, message interface{}, p *vc.Proof, enc multibase.Encoding) error
}

type didResolver interface {
	Resolve(ctx context.Context, didOrKeyURL string) (*did.Document, error)
}

type certificateStore interface {
	Save(ctx context.Context, vc *certificatevc.CertificateVC) error
}

type eventPublisher interface {
	Emit(ctx context.Context, eventType spi.EventType, payload *spi.EventPayload)
}

// Config holds the collaborators of the Service.
type Config struct {
	Authority    authorityClient
	Handshake    handshakeEngine
	Proofs       proofService
	DIDResolver  didResolver
	Certificates certificateStore
	Events       eventPublisher
	Metrics      metrics.Metrics
	VerifierDID  string
}

// Service runs the enrollment protocol: propose, ECDH, DID authentication, decrypt and confirm.
type Service struct {
	authority    authorityClient
	handshake    handshakeEngine
	proofs       proofService
	didResolver  didResolver
	certificates certificateStore
	events       eventPublisher
	metrics      metrics.Metrics
	verifierDID  string
}

// NewService returns an enrollment service.
func NewService(config *Config) *Service {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Service{
		authority:    config.Authority,
		handshake:    config.Handshake,
		proofs:       config.Proofs,
		didResolver:  config.DIDResolver,
		certificates: config.Certificates,
		events:       config.Events,
		metrics:      m,
		verifierDID:  config.VerifierDID,
	}
}

// EnrollEntity runs one complete enrollment and stores the issued certificate VC. A failed run
// leaves nothing to resume; callers start over.
func (s *Service) EnrollEntity(ctx context.Context) (*certificatevc.CertificateVC, error) {
	start := time.Now()
	defer func() { s.metrics.ServiceCallTime(metrics.APIEnrollEntity, time.Since(start)) }()

	cert, txID, err := s.enroll(ctx)
	if err != nil {
		logger.Error("Enrollment failed", log.WithTxID(txID), log.WithError(err))

		return nil, resterr.New(resterr.FailedToIssueCertificateVC, err).
			WithComponent(resterr.EnrollmentSvcComponent)
	}

	s.events.Emit(ctx, spi.VerifierEntityEnrolled, &spi.EventPayload{TxID: txID, VCID: cert.VCID})

	logger.Info("Entity enrolled", log.WithTxID(txID))

	return cert, nil
}

func (s *Service) enroll(ctx context.Context) (*certificatevc.CertificateVC, string, error) {
	self, err := s.didResolver.Resolve(ctx, s.verifierDID)
	if err != nil {
		return nil, "", fmt.Errorf("resolve own did: %w", err)
	}

	proposal, err := s.authority.ProposeEnroll(ctx)
	if err != nil {
		return nil, "", err
	}

	txID := proposal.TxID

	in, err := s.handshake.Initiate(ctx, crypto.Secp256r1, self)
	if err != nil {
		return nil, txID, err
	}

	acc, err := s.authority.RequestEcdh(ctx, txID, in.Request)
	if err != nil {
		return nil, txID, err
	}

	auth := &e2e.DIDAuth{DID: self.ID, AuthNonce: proposal.AuthNonce}

	auth.Proof, err = s.proofs.PreProof(self, vc.Authentication)
	if err != nil {
		return nil, txID, err
	}

	if err = s.proofs.Sign(ctx, auth, auth.Proof, multibase.Base64); err != nil {
		return nil, txID, err
	}

	enrolled, err := s.authority.RequestEnroll(ctx, txID, auth)
	if err != nil {
		return nil, txID, err
	}

	key, err := s.handshake.CompleteAsInitiator(in, acc)
	if err != nil {
		return nil, txID, err
	}

	raw, err := key.Decrypt(enrolled.EncVC, enrolled.IV)
	if err != nil {
		return nil, txID, err
	}

	cred, err := vc.ParseCredential(raw)
	if err != nil {
		return nil, txID, err
	}

	if err = s.authority.ConfirmEnroll(ctx, txID, cred.ID); err != nil {
		return nil, txID, err
	}

	cert := &certificatevc.CertificateVC{VCID: cred.ID, VC: string(raw)}

	if err = s.certificates.Save(ctx, cert); err != nil {
		return nil, txID, err
	}

	return cert, txID, nil
}
