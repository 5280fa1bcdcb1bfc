/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package certificatevcstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/did-verifier/pkg/service/certificatevc"
	"github.com/trustbloc/did-verifier/pkg/storage"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb"
)

const (
	certificateVCCollection = "certificate_vc"
)

type certificateVCDocument struct {
	VCID      string    `bson:"vcId"`
	VC        string    `bson:"vc"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Store stores the certificate VCs issued to this verifier. Only the latest one is served.
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

	if _, err := s.mongoClient.Database().Collection(certificateVCCollection).Indexes().
		CreateOne(ctxWithTimeout, mongo.IndexModel{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		}); err != nil {
		return fmt.Errorf("create certificate vc index: %w", err)
	}

	return nil
}

func (s *Store) SaveCertificateVC(ctx context.Context, vc *certificatevc.CertificateVC) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.mongoClient.Database().Collection(certificateVCCollection).InsertOne(ctxWithTimeout,
		&certificateVCDocument{
			VCID:      vc.VCID,
			VC:        vc.VC,
			CreatedAt: vc.CreatedAt,
			UpdatedAt: vc.UpdatedAt,
		})
	if err != nil {
		return fmt.Errorf("insert certificate vc: %w", err)
	}

	return nil
}

func (s *Store) LatestCertificateVC(ctx context.Context) (*certificatevc.CertificateVC, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &certificateVCDocument{}

	err := s.mongoClient.Database().Collection(certificateVCCollection).
		FindOne(ctxWithTimeout, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})).
		Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find certificate vc: %w", err)
	}

	return &certificatevc.CertificateVC{
		VCID:  doc.VCID,
		VC:    doc.VC,
		Audit: storage.Audit{CreatedAt: doc.CreatedAt.UTC(), UpdatedAt: doc.UpdatedAt.UTC()},
	}, nil
}
