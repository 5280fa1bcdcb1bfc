/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package transactionstore keeps transactions and their steps in MongoDB.
package transactionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/did-verifier/pkg/service/transaction"
	"github.com/trustbloc/did-verifier/pkg/storage"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb"
)

const (
	transactionCollection    = "transaction"
	subTransactionCollection = "sub_transaction"
)

type transactionDocument struct {
	TxID      string    `bson:"txId"`
	Type      string    `bson:"type"`
	Status    string    `bson:"status"`
	ExpiresAt time.Time `bson:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type subTransactionDocument struct {
	TxID      string    `bson:"txId"`
	Step      int       `bson:"step"`
	Type      string    `bson:"type"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Store stores transactions in mongo.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store and its indexes.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	db := s.mongoClient.Database()

	if _, err := db.Collection(transactionCollection).Indexes().CreateOne(ctxWithTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: "txId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create transaction index: %w", err)
	}

	if _, err := db.Collection(subTransactionCollection).Indexes().CreateOne(ctxWithTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: "txId", Value: 1}, {Key: "step", Value: -1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create sub transaction index: %w", err)
	}

	return nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.mongoClient.Database().Collection(transactionCollection).InsertOne(ctxWithTimeout,
		&transactionDocument{
			TxID:      tx.TxID,
			Type:      string(tx.Type),
			Status:    string(tx.Status),
			ExpiresAt: tx.ExpiresAt,
			CreatedAt: tx.CreatedAt,
			UpdatedAt: tx.UpdatedAt,
		})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

func (s *Store) FindTransaction(ctx context.Context, txID string) (*transaction.Transaction, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &transactionDocument{}

	err := s.mongoClient.Database().Collection(transactionCollection).
		FindOne(ctxWithTimeout, bson.M{"txId": txID}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}

	return &transaction.Transaction{
		TxID:      doc.TxID,
		Type:      transaction.Type(doc.Type),
		Status:    transaction.Status(doc.Status),
		ExpiresAt: doc.ExpiresAt.UTC(),
		Audit:     storage.Audit{CreatedAt: doc.CreatedAt.UTC(), UpdatedAt: doc.UpdatedAt.UTC()},
	}, nil
}

func (s *Store) UpdateTransactionStatus(ctx context.Context, txID string, status transaction.Status,
	now time.Time) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	res, err := s.mongoClient.Database().Collection(transactionCollection).UpdateOne(ctxWithTimeout,
		bson.M{"txId": txID},
		bson.M{"$set": bson.M{"status": string(status), "updatedAt": now}})
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}

	if res.MatchedCount == 0 {
		return storage.ErrDataNotFound
	}

	return nil
}

func (s *Store) CreateSubTransaction(ctx context.Context, sub *transaction.SubTransaction) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.mongoClient.Database().Collection(subTransactionCollection).InsertOne(ctxWithTimeout,
		&subTransactionDocument{
			TxID:      sub.TxID,
			Step:      sub.Step,
			Type:      string(sub.Type),
			Status:    string(sub.Status),
			CreatedAt: sub.CreatedAt,
			UpdatedAt: sub.UpdatedAt,
		})
	if err != nil {
		return fmt.Errorf("insert sub transaction: %w", err)
	}

	return nil
}

func (s *Store) LastSubTransaction(ctx context.Context, txID string) (*transaction.SubTransaction, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &subTransactionDocument{}

	err := s.mongoClient.Database().Collection(subTransactionCollection).
		FindOne(ctxWithTimeout, bson.M{"txId": txID}, options.FindOne().SetSort(bson.D{{Key: "step", Value: -1}})).
		Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find sub transaction: %w", err)
	}

	return &transaction.SubTransaction{
		TxID:   doc.TxID,
		Step:   doc.Step,
		Type:   transaction.SubType(doc.Type),
		Status: transaction.Status(doc.Status),
		Audit:  storage.Audit{CreatedAt: doc.CreatedAt.UTC(), UpdatedAt: doc.UpdatedAt.UTC()},
	}, nil
}
