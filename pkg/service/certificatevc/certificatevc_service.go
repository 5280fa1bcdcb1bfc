/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination certificatevc_service_mocks_test.go -self_package mocks -package certificatevc_test -source=certificatevc_service.go -mock_names store=MockStore

// Package certificatevc serves the verifier's own certificate credential obtained by enrollment.
package certificatevc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
	"github.com/trustbloc/did-verifier/pkg/storage"
)

// CertificateVC is a stored certificate credential. VC holds the credential JSON.
type CertificateVC struct {
	VCID string
	VC   string
	storage.Audit
}

type store interface {
	SaveCertificateVC(ctx context.Context, vc *CertificateVC) error
	LatestCertificateVC(ctx context.Context) (*CertificateVC, error)
}

// Service reads and records certificate credentials.
type Service struct {
	store store
}

// New returns a certificate credential service.
func New(store store) *Service {
	return &Service{store: store}
}

// Current returns the most recently stored certificate credential.
func (s *Service) Current(ctx context.Context) (*CertificateVC, error) {
	vc, err := s.store.LatestCertificateVC(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, resterr.New(resterr.CertificateDataNotFound, err).
				WithComponent(resterr.CertificateVCSvcComponent)
		}

		return nil, resterr.Wrap(fmt.Errorf("find certificate vc: %w", err), resterr.FailedToRequestCertificateVC)
	}

	return vc, nil
}

// Save records a new current certificate credential.
func (s *Service) Save(ctx context.Context, vc *CertificateVC) error {
	vc.Touch(time.Now().UTC())

	if err := s.store.SaveCertificateVC(ctx, vc); err != nil {
		return fmt.Errorf("save certificate vc %s: %w", vc.VCID, err)
	}

	return nil
}
