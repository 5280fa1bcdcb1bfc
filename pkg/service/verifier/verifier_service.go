/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination verifier_service_mocks_test.go -self_package mocks -package verifier_test -source=verifier_service.go -mock_names vpStore=MockVPStore,e2eStore=MockE2EStore,transactionService=MockTransactionService,policyStore=MockPolicyStore,handshakeEngine=MockHandshakeEngine,proofService=MockProofService,presentationVerifier=MockPresentationVerifier,unitOfWork=MockUnitOfWork,eventPublisher=MockEventPublisher

// Package verifier runs the presentation protocol: offer, profile, verify and confirm.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/doc/did"
	"github.com/trustbloc/did-verifier/pkg/doc/e2e"
	"github.com/trustbloc/did-verifier/pkg/doc/profile"
	"github.com/trustbloc/did-verifier/pkg/doc/vc"
	"github.com/trustbloc/did-verifier/pkg/event/spi"
	"github.com/trustbloc/did-verifier/pkg/multibase"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics/noop"
	"github.com/trustbloc/did-verifier/pkg/policy"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
	"github.com/trustbloc/did-verifier/pkg/service/handshake"
	"github.com/trustbloc/did-verifier/pkg/service/transaction"
	"github.com/trustbloc/did-verifier/pkg/storage"
)

// DefaultOfferValidity is how long an offer stays valid.
const DefaultOfferValidity = 180 * time.Second

var logger = log.New("verifier-service")

type vpStore interface {
	SaveOffer(ctx context.Context, offer *VPOffer) error
	FindOfferByTxID(ctx context.Context, txID string) (*VPOffer, error)
	SaveProfile(ctx context.Context, p *VPProfile) error
	FindProfileByTxID(ctx context.Context, txID string) (*VPProfile, error)
	SaveSubmit(ctx context.Context, submit *VPSubmit) error
	FindSubmitByTxID(ctx context.Context, txID string) (*VPSubmit, error)
}

type e2eStore interface {
	SaveE2E(ctx context.Context, session *handshake.E2E) error
	FindE2EByTxID(ctx context.Context, txID string) (*handshake.E2E, error)
}

type transactionService interface {
	Create(ctx context.Context, typ transaction.Type) (*transaction.Transaction, error)
	FindByTxID(ctx context.Context, txID string) (*transaction.Transaction, error)
	FindByOfferID(ctx context.Context, offerID string) (*transaction.Transaction, error)
	LastSubTransaction(ctx context.Context, txID string) (*transaction.SubTransaction, error)
	AppendSubTransaction(ctx context.Context, txID string, typ transaction.SubType) (*transaction.SubTransaction, error)
	Complete(ctx context.Context, tx *transaction.Transaction) error
	AssertActive(tx *transaction.Transaction, last *transaction.SubTransaction, allowed ...transaction.SubType) error
}

type policyStore interface {
	Match(mode, device, service string) (string, *policy.OfferPayload, error)
	GetByID(policyID string) (*policy.Policy, error)
}

type handshakeEngine interface {
	Offer(txID string, req *profile.ReqE2e) (*handshake.E2E, error)
	CompleteAsResponder(session *handshake.E2E, peerPublicKey, verifierNonce string) (*handshake.Key, error)
}

type proofService interface {
	PreProof(doc *did.Document, purpose vc.ProofPurpose) (*vc.Proof, error)
	Sign(ctx context.Context, message interface{}, p *vc.Proof, enc multibase.Encoding) error
	VerifyWithResolver(ctx context.Context, raw []byte) (*did.Document, error)
}

type presentationVerifier interface {
	Verify(ctx context.Context, raw []byte, filter *profile.Filter) (*vc.Presentation, error)
}

type unitOfWork interface {
	Do(ctx context.Context, fn storage.TxFunc) error
}

type eventPublisher interface {
	Emit(ctx context.Context, eventType spi.EventType, payload *spi.EventPayload)
	EmitFailure(ctx context.Context, eventType spi.EventType, payload *spi.EventPayload, err error)
}

// Config holds the collaborators and settings of the Service.
type Config struct {
	Transactions  transactionService
	VPStore       vpStore
	E2EStore      e2eStore
	Policies      policyStore
	Handshake     handshakeEngine
	Proofs        proofService
	DIDResolver   didResolver
	VPVerifier    presentationVerifier
	UnitOfWork    unitOfWork
	Events        eventPublisher
	Metrics       metrics.Metrics
	VerifierDID   string
	OfferValidity time.Duration
	Clock         func() time.Time
}

// Service is the verification orchestrator.
type Service struct {
	transactions  transactionService
	vpStore       vpStore
	e2eStore      e2eStore
	policies      policyStore
	handshake     handshakeEngine
	proofs        proofService
	didResolver   didResolver
	vpVerifier    presentationVerifier
	uow           unitOfWork
	events        eventPublisher
	metrics       metrics.Metrics
	verifierDID   string
	offerValidity time.Duration
	now           func() time.Time
}

// NewService returns a verification orchestrator.
func NewService(config *Config) *Service {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	validity := config.OfferValidity
	if validity <= 0 {
		validity = DefaultOfferValidity
	}

	now := config.Clock
	if now == nil {
		now = time.Now
	}

	return &Service{
		transactions:  config.Transactions,
		vpStore:       config.VPStore,
		e2eStore:      config.E2EStore,
		policies:      config.Policies,
		handshake:     config.Handshake,
		proofs:        config.Proofs,
		didResolver:   config.DIDResolver,
		vpVerifier:    config.VPVerifier,
		uow:           config.UnitOfWork,
		events:        config.Events,
		metrics:       m,
		verifierDID:   config.VerifierDID,
		offerValidity: validity,
		now:           now,
	}
}

// RequestOffer starts a transaction for the policy matching the request and publishes an offer.
func (s *Service) RequestOffer(ctx context.Context, req *OfferRequest) (*OfferResponse, error) {
	defer s.observe(metrics.APIRequestOffer, s.now())

	resp, err := s.requestOffer(ctx, req)
	if err != nil {
		return nil, s.fail(metrics.APIRequestOffer, err, resterr.FailedToRequestOfferQR)
	}

	s.events.Emit(ctx, spi.VerifierOfferRequested, &spi.EventPayload{TxID: resp.TxID, OfferID: resp.Payload.OfferID})

	return resp, nil
}

func (s *Service) requestOffer(ctx context.Context, req *OfferRequest) (*OfferResponse, error) {
	policyID, payload, err := s.policies.Match(req.Mode, req.Device, req.Service)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	validUntil := now.Add(s.offerValidity)

	payload.OfferID = uuid.NewString()
	payload.Type = policy.OfferType
	payload.ValidUntil = validUntil.Format(time.RFC3339)

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, resterr.New(resterr.JSONParseError, err)
	}

	var txID string

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		tx, e := s.transactions.Create(ctx, transaction.VPSubmit)
		if e != nil {
			return e
		}

		if _, e = s.transactions.AppendSubTransaction(ctx, tx.TxID, transaction.RequestOffer); e != nil {
			return e
		}

		offer := &VPOffer{
			TxID:       tx.TxID,
			OfferID:    payload.OfferID,
			Device:     req.Device,
			Service:    req.Service,
			PolicyID:   policyID,
			Payload:    string(raw),
			ValidUntil: validUntil,
		}
		offer.Touch(now)

		txID = tx.TxID

		return s.vpStore.SaveOffer(ctx, offer)
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Offer published", log.WithTxID(txID), log.WithOfferID(payload.OfferID),
		log.WithPolicyID(policyID))

	return &OfferResponse{TxID: txID, Payload: payload}, nil
}

// RequestProfile answers an offer with the signed verify profile and opens the E2E session.
func (s *Service) RequestProfile(ctx context.Context, req *ProfileRequest) (*ProfileResponse, error) {
	defer s.observe(metrics.APIRequestProfile, s.now())

	resp, err := s.requestProfile(ctx, req)
	if err != nil {
		return nil, s.fail(metrics.APIRequestProfile, err, resterr.FailedToRequestProfile)
	}

	s.events.Emit(ctx, spi.VerifierProfileRequested, &spi.EventPayload{TxID: resp.TxID, OfferID: req.OfferID})

	return resp, nil
}

func (s *Service) requestProfile(ctx context.Context, req *ProfileRequest) (*ProfileResponse, error) {
	tx, err := s.findProfileTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	last, err := s.transactions.LastSubTransaction(ctx, tx.TxID)
	if err != nil {
		return nil, err
	}

	if err = s.transactions.AssertActive(tx, last, transaction.RequestOffer); err != nil {
		return nil, err
	}

	offer, err := s.vpStore.FindOfferByTxID(ctx, tx.TxID)
	if err != nil {
		return nil, notFound(err, resterr.VPOfferNotFound, "offer of transaction "+tx.TxID)
	}

	pol, err := s.policies.GetByID(offer.PolicyID)
	if err != nil {
		return nil, err
	}

	vp := pol.Profile
	vp.ID = uuid.NewString()
	process := &vp.Profile.Process

	session, err := s.handshake.Offer(tx.TxID, &process.ReqE2e)
	if err != nil {
		return nil, err
	}

	process.VerifierNonce = process.ReqE2e.Nonce

	if err = s.sign(ctx, vp); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(vp)
	if err != nil {
		return nil, resterr.New(resterr.VerifyProfileParseError, err)
	}

	now := s.now().UTC()

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		stored := &VPProfile{TxID: tx.TxID, ProfileID: vp.ID, Profile: string(raw)}
		stored.Touch(now)

		if e := s.vpStore.SaveProfile(ctx, stored); e != nil {
			if errors.Is(e, storage.ErrDataAlreadyExists) {
				return resterr.Newf(resterr.SubTransactionInvalid, "profile of transaction %s already sent",
					tx.TxID).WithComponent(resterr.TransactionStoreComponent)
			}

			return e
		}

		if _, e := s.transactions.AppendSubTransaction(ctx, tx.TxID, transaction.RequestProfile); e != nil {
			return e
		}

		session.Touch(now)

		return s.e2eStore.SaveE2E(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Profile sent", log.WithTxID(tx.TxID), log.WithPolicyID(offer.PolicyID))

	return &ProfileResponse{TxID: tx.TxID, Profile: vp}, nil
}

func (s *Service) findProfileTransaction(ctx context.Context, req *ProfileRequest) (*transaction.Transaction, error) {
	if req.TxID == "" {
		return s.transactions.FindByOfferID(ctx, req.OfferID)
	}

	return s.transactions.FindByTxID(ctx, req.TxID)
}

func (s *Service) sign(ctx context.Context, vp *profile.Verify) error {
	self, err := s.didResolver.Resolve(ctx, s.verifierDID)
	if err != nil {
		return err
	}

	vp.Proof, err = s.proofs.PreProof(self, vc.AssertionMethod)
	if err != nil {
		return err
	}

	return s.proofs.Sign(ctx, vp, vp.Proof, multibase.Base58BTC)
}

// RequestVerify decrypts, checks and stores the holder's presentation and completes the
// transaction.
func (s *Service) RequestVerify(ctx context.Context, req *VerifyRequest) (*VerifyResponse, error) {
	defer s.observe(metrics.APIRequestVerify, s.now())

	if err := s.requestVerify(ctx, req); err != nil {
		err = s.fail(metrics.APIRequestVerify, err, resterr.FailedToRequestVerify)

		s.events.EmitFailure(ctx, spi.VerifierVPVerifyFailed, &spi.EventPayload{TxID: req.TxID}, err)

		return nil, err
	}

	s.events.Emit(ctx, spi.VerifierVPVerified, &spi.EventPayload{TxID: req.TxID})

	return &VerifyResponse{TxID: req.TxID}, nil
}

func (s *Service) requestVerify(ctx context.Context, req *VerifyRequest) error {
	tx, err := s.transactions.FindByTxID(ctx, req.TxID)
	if err != nil {
		return err
	}

	last, err := s.transactions.LastSubTransaction(ctx, tx.TxID)
	if err != nil {
		return err
	}

	err = s.transactions.AssertActive(tx, last,
		transaction.RequestProfile, transaction.RequestOffer, transaction.RequestVerify)
	if err != nil {
		return err
	}

	vp, err := s.findProfile(ctx, tx.TxID)
	if err != nil {
		return err
	}

	if req.AccE2E.Proof != nil {
		if err = s.verifyAccE2E(ctx, &req.AccE2E); err != nil {
			return err
		}
	}

	verifierNonce := vp.Profile.Process.VerifierNonce

	plain, err := s.decrypt(ctx, tx.TxID, req, verifierNonce)
	if err != nil {
		return err
	}

	pres, err := vc.ParsePresentation(plain)
	if err != nil {
		return resterr.New(resterr.JSONParseError, err)
	}

	if err = checkAuthType(vp.Profile.Process.AuthType, pres); err != nil {
		return err
	}

	if err = checkNonce(pres.VerifierNonce, verifierNonce); err != nil {
		return err
	}

	if _, err = s.vpVerifier.Verify(ctx, plain, &vp.Profile.Filter); err != nil {
		return err
	}

	now := s.now().UTC()

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		submit := &VPSubmit{TxID: tx.TxID, Holder: pres.Holder, VP: string(plain)}
		submit.Touch(now)

		if e := s.vpStore.SaveSubmit(ctx, submit); e != nil {
			return e
		}

		if e := s.transactions.Complete(ctx, tx); e != nil {
			return e
		}

		_, e := s.transactions.AppendSubTransaction(ctx, tx.TxID, transaction.RequestVerify)

		return e
	})
	if err != nil {
		return err
	}

	logger.Debug("Presentation verified", log.WithTxID(tx.TxID), log.WithDID(pres.Holder))

	return nil
}

func (s *Service) findProfile(ctx context.Context, txID string) (*profile.Verify, error) {
	stored, err := s.vpStore.FindProfileByTxID(ctx, txID)
	if err != nil {
		return nil, notFound(err, resterr.VPProfileNotFound, "profile of transaction "+txID)
	}

	return profile.Parse([]byte(stored.Profile))
}

func (s *Service) verifyAccE2E(ctx context.Context, acc *e2e.AccE2e) error {
	raw, err := json.Marshal(acc)
	if err != nil {
		return resterr.New(resterr.JSONParseError, err)
	}

	if _, err = s.proofs.VerifyWithResolver(ctx, raw); err != nil {
		return resterr.New(resterr.AccE2EError, err)
	}

	return nil
}

func (s *Service) decrypt(ctx context.Context, txID string, req *VerifyRequest, verifierNonce string) ([]byte, error) {
	session, err := s.e2eStore.FindE2EByTxID(ctx, txID)
	if err != nil {
		return nil, notFound(err, resterr.E2ENotFound, "e2e session of transaction "+txID)
	}

	key, err := s.handshake.CompleteAsResponder(session, req.AccE2E.PublicKey, verifierNonce)
	if err != nil {
		return nil, err
	}

	return key.Decrypt(req.EncVP, req.AccE2E.IV)
}

// ConfirmVerify reports the outcome of the offer and, once verified, the presented claims.
func (s *Service) ConfirmVerify(ctx context.Context, req *ConfirmRequest) (*ConfirmResponse, error) {
	defer s.observe(metrics.APIConfirmVerify, s.now())

	resp, err := s.confirmVerify(ctx, req)
	if err != nil {
		return nil, s.fail(metrics.APIConfirmVerify, err, resterr.FailedToConfirmVerify)
	}

	return resp, nil
}

func (s *Service) confirmVerify(ctx context.Context, req *ConfirmRequest) (*ConfirmResponse, error) {
	tx, err := s.transactions.FindByOfferID(ctx, req.OfferID)
	if err != nil {
		return nil, err
	}

	submit, err := s.vpStore.FindSubmitByTxID(ctx, tx.TxID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return &ConfirmResponse{Result: false, Claims: []vc.Claim{}}, nil
		}

		return nil, err
	}

	pres, err := vc.ParsePresentation([]byte(submit.VP))
	if err != nil {
		return nil, resterr.New(resterr.JSONParseError, err)
	}

	resp := &ConfirmResponse{Result: true, Claims: pres.Claims()}
	if resp.Claims == nil {
		resp.Claims = []vc.Claim{}
	}

	if len(pres.VerifiableCredential) > 0 {
		first := pres.VerifiableCredential[0]
		resp.VC = first.ID
		resp.Issuer = first.Issuer.ID
	}

	return resp, nil
}

func (s *Service) observe(api string, start time.Time) {
	s.metrics.ServiceCallTime(api, s.now().Sub(start))
}

func (s *Service) fail(api string, err error, umbrella resterr.ErrorCode) error {
	err = resterr.Wrap(err, umbrella)

	code, _ := resterr.CodeOf(err)

	logger.Error("Verifier API failed", log.WithStep(api), log.WithCode(string(code)), log.WithError(err))

	return err
}

// checkAuthType enforces the profile's authentication policy against the factors named by the
// key ids of the presentation proofs.
func checkAuthType(authType profile.AuthType, pres *vc.Presentation) error {
	factors := lo.Uniq(lo.FilterMap(append([]*vc.Proof{pres.Proof}, pres.Proofs...),
		func(p *vc.Proof, _ int) (string, bool) {
			if p == nil {
				return "", false
			}

			_, keyID, ok := strings.Cut(p.VerificationMethod, "#")

			return strings.ToUpper(keyID), ok
		}))

	has := func(f profile.AuthType) bool { return lo.Contains(factors, f.String()) }

	var ok bool

	switch authType {
	case profile.NoRestrictions, profile.NoAuth:
		ok = true
	case profile.PIN:
		ok = has(profile.PIN)
	case profile.BIO:
		ok = has(profile.BIO)
	case profile.PINOrBIO:
		ok = has(profile.PIN) || has(profile.BIO)
	case profile.PINAndBIO:
		ok = has(profile.PIN) && has(profile.BIO)
	}

	if !ok {
		return resterr.Newf(resterr.InvalidAuthType, "presentation authenticated with %v, profile requires %s",
			factors, authType).WithComponent(resterr.VerifierSvcComponent)
	}

	return nil
}

func checkNonce(presented, expected string) error {
	got, err := multibase.Decode(presented)
	if err != nil {
		return resterr.New(resterr.InvalidNonce, err).WithComponent(resterr.VerifierSvcComponent)
	}

	want, err := multibase.Decode(expected)
	if err != nil {
		return err
	}

	if !bytes.Equal(got, want) {
		return resterr.Newf(resterr.InvalidNonce, "verifier nonce mismatch").
			WithComponent(resterr.VerifierSvcComponent)
	}

	return nil
}

func notFound(err error, code resterr.ErrorCode, what string) error {
	if errors.Is(err, storage.ErrDataNotFound) {
		return resterr.Newf(code, "%s not found", what).WithComponent(resterr.VerifierSvcComponent)
	}

	return fmt.Errorf("find %s: %w", what, err)
}
