/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination transaction_service_mocks_test.go -self_package mocks -package transaction_test -source=transaction_service.go -mock_names transactionStore=MockTransactionStore,offerStore=MockOfferStore

// Package transaction tracks protocol runs and their ordered steps.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
	"github.com/trustbloc/did-verifier/pkg/storage"
)

// DefaultTTL is the lifetime of a transaction.
const DefaultTTL = 24 * time.Hour

var logger = log.New("transaction")

type transactionStore interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	FindTransaction(ctx context.Context, txID string) (*Transaction, error)
	UpdateTransactionStatus(ctx context.Context, txID string, status Status, now time.Time) error
	CreateSubTransaction(ctx context.Context, sub *SubTransaction) error
	LastSubTransaction(ctx context.Context, txID string) (*SubTransaction, error)
}

type offerStore interface {
	TransactionIDByOfferID(ctx context.Context, offerID string) (string, error)
}

// Config holds the collaborators of the Service.
type Config struct {
	Store  transactionStore
	Offers offerStore
	TTL    time.Duration
	Clock  func() time.Time
}

// Service creates transactions, finds them and appends their steps.
type Service struct {
	store  transactionStore
	offers offerStore
	ttl    time.Duration
	now    func() time.Time
}

// New returns a transaction service.
func New(config *Config) *Service {
	ttl := config.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := config.Clock
	if now == nil {
		now = time.Now
	}

	return &Service{
		store:  config.Store,
		offers: config.Offers,
		ttl:    ttl,
		now:    now,
	}
}

// Create starts a pending transaction of the given type that expires after the configured TTL.
func (s *Service) Create(ctx context.Context, typ Type) (*Transaction, error) {
	now := s.now().UTC()

	tx := &Transaction{
		TxID:      uuid.NewString(),
		Type:      typ,
		Status:    Pending,
		ExpiresAt: now.Add(s.ttl),
	}
	tx.Touch(now)

	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	logger.Debug("Transaction created", log.WithTxID(tx.TxID))

	return tx, nil
}

// FindByTxID returns the transaction with the given txId.
func (s *Service) FindByTxID(ctx context.Context, txID string) (*Transaction, error) {
	tx, err := s.store.FindTransaction(ctx, txID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, resterr.Newf(resterr.TransactionNotFound, "transaction %s not found", txID).
				WithComponent(resterr.TransactionStoreComponent)
		}

		return nil, fmt.Errorf("find transaction %s: %w", txID, err)
	}

	return tx, nil
}

// FindByOfferID returns the transaction that published the offer.
func (s *Service) FindByOfferID(ctx context.Context, offerID string) (*Transaction, error) {
	txID, err := s.offers.TransactionIDByOfferID(ctx, offerID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, resterr.Newf(resterr.VPOfferNotFound, "offer %s not found", offerID).
				WithComponent(resterr.TransactionStoreComponent)
		}

		return nil, fmt.Errorf("find offer %s: %w", offerID, err)
	}

	return s.FindByTxID(ctx, txID)
}

// LastSubTransaction returns the step with the highest step number.
func (s *Service) LastSubTransaction(ctx context.Context, txID string) (*SubTransaction, error) {
	sub, err := s.store.LastSubTransaction(ctx, txID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, resterr.Newf(resterr.SubTransactionNotFound, "transaction %s has no steps", txID).
				WithComponent(resterr.TransactionStoreComponent)
		}

		return nil, fmt.Errorf("find last step of %s: %w", txID, err)
	}

	return sub, nil
}

// AppendSubTransaction records a completed step after the current last one. The first step of
// a transaction is step 1.
func (s *Service) AppendSubTransaction(ctx context.Context, txID string, typ SubType) (*SubTransaction, error) {
	step := 1

	last, err := s.LastSubTransaction(ctx, txID)

	switch {
	case err == nil:
		step = last.Step + 1
	case !resterr.Is(err, resterr.SubTransactionNotFound):
		return nil, err
	}

	sub := &SubTransaction{
		TxID:   txID,
		Step:   step,
		Type:   typ,
		Status: Completed,
	}
	sub.Touch(s.now().UTC())

	if err = s.store.CreateSubTransaction(ctx, sub); err != nil {
		return nil, fmt.Errorf("append step %d to %s: %w", step, txID, err)
	}

	logger.Debug("Step appended", log.WithTxID(txID), log.WithStep(string(typ)))

	return sub, nil
}

// Complete moves a pending transaction to COMPLETED.
func (s *Service) Complete(ctx context.Context, tx *Transaction) error {
	if tx.Status != Pending {
		return resterr.Newf(resterr.TransactionInvalid, "transaction %s is %s", tx.TxID, tx.Status).
			WithComponent(resterr.TransactionStoreComponent)
	}

	now := s.now().UTC()

	if err := s.store.UpdateTransactionStatus(ctx, tx.TxID, Completed, now); err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return resterr.Newf(resterr.TransactionNotFound, "transaction %s not found", tx.TxID).
				WithComponent(resterr.TransactionStoreComponent)
		}

		return fmt.Errorf("complete transaction %s: %w", tx.TxID, err)
	}

	tx.Status = Completed
	tx.Touch(now)

	return nil
}

// AssertActive fails unless the transaction is pending and unexpired. When allowed is not empty
// the last step must also be of one of the allowed types.
func (s *Service) AssertActive(tx *Transaction, last *SubTransaction, allowed ...SubType) error {
	if tx.Status != Pending {
		return resterr.Newf(resterr.TransactionInvalid, "transaction %s is %s", tx.TxID, tx.Status).
			WithComponent(resterr.TransactionStoreComponent)
	}

	if s.now().After(tx.ExpiresAt) {
		return resterr.Newf(resterr.TransactionExpired, "transaction %s expired at %s", tx.TxID,
			tx.ExpiresAt.Format(time.RFC3339)).WithComponent(resterr.TransactionStoreComponent)
	}

	if len(allowed) == 0 {
		return nil
	}

	if last == nil || !lo.Contains(allowed, last.Type) {
		return resterr.Newf(resterr.SubTransactionInvalid, "transaction %s is not expecting this step",
			tx.TxID).WithComponent(resterr.TransactionStoreComponent)
	}

	return nil
}
