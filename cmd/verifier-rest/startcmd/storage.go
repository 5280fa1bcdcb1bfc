/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/alexliesenfeld/health"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/did-verifier/cmd/common"
	"github.com/trustbloc/did-verifier/internal/pkg/log"
	mongocheck "github.com/trustbloc/did-verifier/pkg/observability/health/mongo"
	"github.com/trustbloc/did-verifier/pkg/service/certificatevc"
	"github.com/trustbloc/did-verifier/pkg/service/handshake"
	"github.com/trustbloc/did-verifier/pkg/service/transaction"
	verifiersvc "github.com/trustbloc/did-verifier/pkg/service/verifier"
	"github.com/trustbloc/did-verifier/pkg/storage"
	"github.com/trustbloc/did-verifier/pkg/storage/mem"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb/certificatevcstore"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb/e2estore"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb/transactionstore"
	"github.com/trustbloc/did-verifier/pkg/storage/mongodb/vpstore"
)

const databaseName = "verifier"

type transactionStore interface {
	CreateTransaction(ctx context.Context, tx *transaction.Transaction) error
	FindTransaction(ctx context.Context, txID string) (*transaction.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, txID string, status transaction.Status, now time.Time) error
	CreateSubTransaction(ctx context.Context, sub *transaction.SubTransaction) error
	LastSubTransaction(ctx context.Context, txID string) (*transaction.SubTransaction, error)
}

type vpStore interface {
	SaveOffer(ctx context.Context, offer *verifiersvc.VPOffer) error
	FindOfferByTxID(ctx context.Context, txID string) (*verifiersvc.VPOffer, error)
	TransactionIDByOfferID(ctx context.Context, offerID string) (string, error)
	SaveProfile(ctx context.Context, p *verifiersvc.VPProfile) error
	FindProfileByTxID(ctx context.Context, txID string) (*verifiersvc.VPProfile, error)
	SaveSubmit(ctx context.Context, submit *verifiersvc.VPSubmit) error
	FindSubmitByTxID(ctx context.Context, txID string) (*verifiersvc.VPSubmit, error)
}

type e2eStore interface {
	SaveE2E(ctx context.Context, session *handshake.E2E) error
	FindE2EByTxID(ctx context.Context, txID string) (*handshake.E2E, error)
}

type certificateVCStore interface {
	SaveCertificateVC(ctx context.Context, vc *certificatevc.CertificateVC) error
	LatestCertificateVC(ctx context.Context) (*certificatevc.CertificateVC, error)
}

type unitOfWork interface {
	Do(ctx context.Context, fn storage.TxFunc) error
}

// stores groups the repositories backing the services.
type stores struct {
	transactions   transactionStore
	vp             vpStore
	e2e            e2eStore
	certificateVCs certificateVCStore
	uow            unitOfWork
	checks         []health.Check
	close          func()
}

func createStores(ctx context.Context, params *startupParameters, tp trace.TracerProvider) (*stores, error) {
	driver, connString, err := params.db.Driver()
	if err != nil {
		return nil, err
	}

	switch driver {
	case common.DriverMem:
		s := mem.NewStore()

		logger.Info("Using in-memory storage")

		return &stores{
			transactions:   s,
			vp:             s,
			e2e:            s,
			certificateVCs: s,
			uow:            s,
			close:          func() {},
		}, nil
	case common.DriverMongoDB:
		return createMongoStores(ctx, params, connString, tp)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}
}

func createMongoStores(ctx context.Context, params *startupParameters, connString string,
	tp trace.TracerProvider) (*stores, error) {
	var client *mongodb.Client

	err := common.Retry(func() error {
		var openErr error

		client, openErr = mongodb.New(connString, params.db.Prefix+databaseName,
			mongodb.WithTransactions(params.db.Transactions),
			mongodb.WithTraceProvider(tp),
		)
		if openErr != nil {
			return openErr
		}

		if openErr = client.Ping(ctx); openErr != nil {
			_ = client.Close()

			return openErr
		}

		return nil
	}, params.db.Timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	closeClient := func() {
		if closeErr := client.Close(); closeErr != nil {
			logger.Warn("Failed to close mongodb client", log.WithError(closeErr))
		}
	}

	txStore, err := transactionstore.New(ctx, client)
	if err != nil {
		closeClient()

		return nil, err
	}

	vps, err := vpstore.New(ctx, client)
	if err != nil {
		closeClient()

		return nil, err
	}

	sessions, err := e2estore.New(ctx, client, params.transactionTTL)
	if err != nil {
		closeClient()

		return nil, err
	}

	certStore, err := certificatevcstore.New(ctx, client)
	if err != nil {
		closeClient()

		return nil, err
	}

	logger.Info("Using MongoDB storage")

	return &stores{
		transactions:   txStore,
		vp:             vps,
		e2e:            sessions,
		certificateVCs: certStore,
		uow:            client,
		checks:         []health.Check{{Name: "mongodb", Check: mongocheck.New(client)}},
		close:          closeClient,
	}, nil
}
