/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package e2estore keeps the session keys agreed during ECDH in MongoDB.
package e2estore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/service/handshake"
	"github.com/trustbloc/did-verifier/pkg/storage"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb"
)

const (
	e2eCollection = "e2e"
)

type e2eDocument struct {
	TxID       string    `bson:"txId"`
	SessionKey string    `bson:"sessionKey"`
	Nonce      string    `bson:"nonce"`
	Curve      string    `bson:"curve"`
	Cipher     string    `bson:"cipher"`
	Padding    string    `bson:"padding"`
	ExpireAt   time.Time `bson:"expireAt"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

// Store stores session keys in mongo. Keys are dropped by a ttl index once the transaction
// they belong to can no longer be used.
type Store struct {
	mongoClient *mongodb.Client
	ttl         time.Duration
}

// New creates Store and its indexes.
func New(ctx context.Context, mongoClient *mongodb.Client, ttl time.Duration) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
		ttl:         ttl,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	if _, err := s.mongoClient.Database().Collection(e2eCollection).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "txId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "expireAt", Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		}); err != nil {
		return fmt.Errorf("create e2e indexes: %w", err)
	}

	return nil
}

func (s *Store) SaveE2E(ctx context.Context, session *handshake.E2E) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &e2eDocument{
		TxID:       session.TxID,
		SessionKey: session.SessionKey,
		Nonce:      session.Nonce,
		Curve:      string(session.Curve),
		Cipher:     string(session.Cipher),
		Padding:    string(session.Padding),
		ExpireAt:   session.CreatedAt.Add(s.ttl),
		CreatedAt:  session.CreatedAt,
		UpdatedAt:  session.UpdatedAt,
	}

	_, err := s.mongoClient.Database().Collection(e2eCollection).ReplaceOne(ctxWithTimeout,
		bson.M{"txId": session.TxID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save e2e: %w", err)
	}

	return nil
}

func (s *Store) FindE2EByTxID(ctx context.Context, txID string) (*handshake.E2E, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &e2eDocument{}

	err := s.mongoClient.Database().Collection(e2eCollection).
		FindOne(ctxWithTimeout, bson.M{"txId": txID}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find e2e: %w", err)
	}

	return &handshake.E2E{
		TxID:       doc.TxID,
		SessionKey: doc.SessionKey,
		Nonce:      doc.Nonce,
		Curve:      crypto.Curve(doc.Curve),
		Cipher:     crypto.Cipher(doc.Cipher),
		Padding:    crypto.Padding(doc.Padding),
		Audit:      storage.Audit{CreatedAt: doc.CreatedAt.UTC(), UpdatedAt: doc.UpdatedAt.UTC()},
	}, nil
}
