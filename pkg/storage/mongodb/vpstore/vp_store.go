/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vpstore keeps offers, verify profiles and verified presentations in MongoDB.
package vpstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/did-verifier/pkg/service/verifier"
	"github.com/trustbloc/did-verifier/pkg/storage"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb"
)

const (
	offerCollection   = "vp_offer"
	profileCollection = "vp_profile"
	submitCollection  = "vp_submit"
)

type offerDocument struct {
	TxID       string    `bson:"txId"`
	OfferID    string    `bson:"offerId"`
	Device     string    `bson:"device"`
	Service    string    `bson:"service"`
	PolicyID   string    `bson:"policyId"`
	Payload    string    `bson:"payload"`
	ValidUntil time.Time `bson:"validUntil"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

type profileDocument struct {
	TxID      string    `bson:"txId"`
	ProfileID string    `bson:"profileId"`
	Profile   string    `bson:"profile"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type submitDocument struct {
	TxID      string    `bson:"txId"`
	Holder    string    `bson:"holder"`
	VP        string    `bson:"vp"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Store stores presentation data in mongo. Each transaction holds at most one row per collection.
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

	if _, err := db.Collection(offerCollection).Indexes().CreateMany(ctxWithTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "txId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "offerId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}); err != nil {
		return fmt.Errorf("create offer indexes: %w", err)
	}

	for _, collection := range []string{profileCollection, submitCollection} {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctxWithTimeout, mongo.IndexModel{
			Keys:    bson.D{{Key: "txId", Value: 1}},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return fmt.Errorf("create %s index: %w", collection, err)
		}
	}

	return nil
}

func (s *Store) SaveOffer(ctx context.Context, offer *verifier.VPOffer) error {
	return s.upsert(ctx, offerCollection, offer.TxID, &offerDocument{
		TxID:       offer.TxID,
		OfferID:    offer.OfferID,
		Device:     offer.Device,
		Service:    offer.Service,
		PolicyID:   offer.PolicyID,
		Payload:    offer.Payload,
		ValidUntil: offer.ValidUntil,
		CreatedAt:  offer.CreatedAt,
		UpdatedAt:  offer.UpdatedAt,
	})
}

func (s *Store) FindOfferByTxID(ctx context.Context, txID string) (*verifier.VPOffer, error) {
	doc := &offerDocument{}

	if err := s.findOne(ctx, offerCollection, bson.M{"txId": txID}, doc); err != nil {
		return nil, err
	}

	return &verifier.VPOffer{
		TxID:       doc.TxID,
		OfferID:    doc.OfferID,
		Device:     doc.Device,
		Service:    doc.Service,
		PolicyID:   doc.PolicyID,
		Payload:    doc.Payload,
		ValidUntil: doc.ValidUntil.UTC(),
		Audit:      audit(doc.CreatedAt, doc.UpdatedAt),
	}, nil
}

func (s *Store) TransactionIDByOfferID(ctx context.Context, offerID string) (string, error) {
	doc := &offerDocument{}

	if err := s.findOne(ctx, offerCollection, bson.M{"offerId": offerID}, doc); err != nil {
		return "", err
	}

	return doc.TxID, nil
}

// SaveProfile stores the verify profile of a transaction. A transaction holds one profile only.
func (s *Store) SaveProfile(ctx context.Context, p *verifier.VPProfile) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.mongoClient.Database().Collection(profileCollection).InsertOne(ctxWithTimeout, &profileDocument{
		TxID:      p.TxID,
		ProfileID: p.ProfileID,
		Profile:   p.Profile,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return storage.ErrDataAlreadyExists
	}

	if err != nil {
		return fmt.Errorf("save %s: %w", profileCollection, err)
	}

	return nil
}

func (s *Store) FindProfileByTxID(ctx context.Context, txID string) (*verifier.VPProfile, error) {
	doc := &profileDocument{}

	if err := s.findOne(ctx, profileCollection, bson.M{"txId": txID}, doc); err != nil {
		return nil, err
	}

	return &verifier.VPProfile{
		TxID:      doc.TxID,
		ProfileID: doc.ProfileID,
		Profile:   doc.Profile,
		Audit:     audit(doc.CreatedAt, doc.UpdatedAt),
	}, nil
}

func (s *Store) SaveSubmit(ctx context.Context, submit *verifier.VPSubmit) error {
	return s.upsert(ctx, submitCollection, submit.TxID, &submitDocument{
		TxID:      submit.TxID,
		Holder:    submit.Holder,
		VP:        submit.VP,
		CreatedAt: submit.CreatedAt,
		UpdatedAt: submit.UpdatedAt,
	})
}

func (s *Store) FindSubmitByTxID(ctx context.Context, txID string) (*verifier.VPSubmit, error) {
	doc := &submitDocument{}

	if err := s.findOne(ctx, submitCollection, bson.M{"txId": txID}, doc); err != nil {
		return nil, err
	}

	return &verifier.VPSubmit{
		TxID:   doc.TxID,
		Holder: doc.Holder,
		VP:     doc.VP,
		Audit:  audit(doc.CreatedAt, doc.UpdatedAt),
	}, nil
}

func (s *Store) upsert(ctx context.Context, collection, txID string, doc interface{}) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.mongoClient.Database().Collection(collection).ReplaceOne(ctxWithTimeout,
		bson.M{"txId": txID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	return nil
}

func (s *Store) findOne(ctx context.Context, collection string, filter bson.M, doc interface{}) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	err := s.mongoClient.Database().Collection(collection).FindOne(ctxWithTimeout, filter).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrDataNotFound
	}

	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}

	return nil
}

func audit(createdAt, updatedAt time.Time) storage.Audit {
	return storage.Audit{CreatedAt: createdAt.UTC(), UpdatedAt: updatedAt.UTC()}
}
