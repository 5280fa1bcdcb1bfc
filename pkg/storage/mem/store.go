/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mem keeps every repository in process memory. It backs tests and single-instance
// deployments started with the "mem" database type.
package mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/trustbloc/did-verifier/pkg/service/certificatevc"
	"github.com/trustbloc/did-verifier/pkg/service/handshake"
	"github.com/trustbloc/did-verifier/pkg/service/transaction"
	"github.com/trustbloc/did-verifier/pkg/service/verifier"
	"github.com/trustbloc/did-verifier/pkg/storage"
)

type state struct {
	transactions map[string]transaction.Transaction
	steps        map[string][]transaction.SubTransaction
	offers       map[string]verifier.VPOffer
	offerTx      map[string]string
	profiles     map[string]verifier.VPProfile
	submits      map[string]verifier.VPSubmit
	sessions     map[string]handshake.E2E
	certificates []certificatevc.CertificateVC
}

func (s *state) clone() *state {
	return &state{
		transactions: lo.Assign(s.transactions),
		steps: lo.MapValues(s.steps, func(v []transaction.SubTransaction, _ string) []transaction.SubTransaction {
			return append([]transaction.SubTransaction(nil), v...)
		}),
		offers:       lo.Assign(s.offers),
		offerTx:      lo.Assign(s.offerTx),
		profiles:     lo.Assign(s.profiles),
		submits:      lo.Assign(s.submits),
		sessions:     lo.Assign(s.sessions),
		certificates: append([]certificatevc.CertificateVC(nil), s.certificates...),
	}
}

// Store implements all verifier repositories. Rows are stored by value so callers never share
// memory with the store.
type Store struct {
	mutex sync.RWMutex
	uow   sync.Mutex
	data  *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: &state{
		transactions: map[string]transaction.Transaction{},
		steps:        map[string][]transaction.SubTransaction{},
		offers:       map[string]verifier.VPOffer{},
		offerTx:      map[string]string{},
		profiles:     map[string]verifier.VPProfile{},
		submits:      map[string]verifier.VPSubmit{},
		sessions:     map[string]handshake.E2E{},
	}}
}

// Do runs fn as one unit of work. Units of work are serialized, and the state before fn is
// restored when fn fails.
func (s *Store) Do(ctx context.Context, fn storage.TxFunc) error {
	s.uow.Lock()
	defer s.uow.Unlock()

	s.mutex.RLock()
	snapshot := s.data.clone()
	s.mutex.RUnlock()

	if err := fn(ctx); err != nil {
		s.mutex.Lock()
		s.data = snapshot
		s.mutex.Unlock()

		return err
	}

	return nil
}

func (s *Store) CreateTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.transactions[tx.TxID] = *tx

	return nil
}

func (s *Store) FindTransaction(_ context.Context, txID string) (*transaction.Transaction, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tx, ok := s.data.transactions[txID]
	if !ok {
		return nil, storage.ErrDataNotFound
	}

	return &tx, nil
}

func (s *Store) UpdateTransactionStatus(_ context.Context, txID string, status transaction.Status,
	now time.Time) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, ok := s.data.transactions[txID]
	if !ok {
		return storage.ErrDataNotFound
	}

	tx.Status = status
	tx.Touch(now)
	s.data.transactions[txID] = tx

	return nil
}

func (s *Store) CreateSubTransaction(_ context.Context, sub *transaction.SubTransaction) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.steps[sub.TxID] = append(s.data.steps[sub.TxID], *sub)

	return nil
}

func (s *Store) LastSubTransaction(_ context.Context, txID string) (*transaction.SubTransaction, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	steps := s.data.steps[txID]
	if len(steps) == 0 {
		return nil, storage.ErrDataNotFound
	}

	last := lo.MaxBy(steps, func(a, b transaction.SubTransaction) bool { return a.Step > b.Step })

	return &last, nil
}

func (s *Store) SaveOffer(_ context.Context, offer *verifier.VPOffer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.offers[offer.TxID] = *offer
	s.data.offerTx[offer.OfferID] = offer.TxID

	return nil
}

func (s *Store) FindOfferByTxID(_ context.Context, txID string) (*verifier.VPOffer, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	offer, ok := s.data.offers[txID]
	if !ok {
		return nil, storage.ErrDataNotFound
	}

	return &offer, nil
}

func (s *Store) TransactionIDByOfferID(_ context.Context, offerID string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	txID, ok := s.data.offerTx[offerID]
	if !ok {
		return "", storage.ErrDataNotFound
	}

	return txID, nil
}

func (s *Store) SaveProfile(_ context.Context, p *verifier.VPProfile) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.data.profiles[p.TxID]; ok {
		return storage.ErrDataAlreadyExists
	}

	s.data.profiles[p.TxID] = *p

	return nil
}

func (s *Store) FindProfileByTxID(_ context.Context, txID string) (*verifier.VPProfile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, ok := s.data.profiles[txID]
	if !ok {
		return nil, storage.ErrDataNotFound
	}

	return &p, nil
}

func (s *Store) SaveSubmit(_ context.Context, submit *verifier.VPSubmit) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.submits[submit.TxID] = *submit

	return nil
}

func (s *Store) FindSubmitByTxID(_ context.Context, txID string) (*verifier.VPSubmit, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	submit, ok := s.data.submits[txID]
	if !ok {
		return nil, storage.ErrDataNotFound
	}

	return &submit, nil
}

func (s *Store) SaveE2E(_ context.Context, session *handshake.E2E) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.sessions[session.TxID] = *session

	return nil
}

func (s *Store) FindE2EByTxID(_ context.Context, txID string) (*handshake.E2E, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	session, ok := s.data.sessions[txID]
	if !ok {
		return nil, storage.ErrDataNotFound
	}

	return &session, nil
}

func (s *Store) SaveCertificateVC(_ context.Context, vc *certificatevc.CertificateVC) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data.certificates = append(s.data.certificates, *vc)

	return nil
}

func (s *Store) LatestCertificateVC(_ context.Context) (*certificatevc.CertificateVC, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.data.certificates) == 0 {
		return nil, storage.ErrDataNotFound
	}

	certs := append([]certificatevc.CertificateVC(nil), s.data.certificates...)
	sort.SliceStable(certs, func(i, j int) bool { return certs[i].CreatedAt.Before(certs[j].CreatedAt) })

	latest := certs[len(certs)-1]

	return &latest, nil
}
