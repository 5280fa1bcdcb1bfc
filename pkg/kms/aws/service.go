/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -package aws -source=service.go

package aws

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/crypto"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

var logger = log.New("kms-aws")

type awsClient interface {
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput,
		optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
}

type metricsProvider interface {
	SignTime(value time.Duration)
}

type ecdsaSignature struct {
	R, S *big.Int
}

// Service signs with secp256r1 keys held in AWS KMS.
type Service struct {
	client  awsClient
	metrics metricsProvider
	keys    map[string]string

	mutex      sync.RWMutex
	publicKeys map[string][]byte
}

// New returns an AWS KMS signer. keys maps verifier key ids to KMS key ids, ARNs or
// aws-kms:// URIs.
func New(awsConfig *aws.Config, metrics metricsProvider, keys map[string]string, opts ...Opts) *Service {
	options := newOpts()

	for _, opt := range opts {
		opt(options)
	}

	client := options.awsClient
	if client == nil {
		client = kms.NewFromConfig(*awsConfig)
	}

	return &Service{
		client:     client,
		metrics:    metrics,
		keys:       keys,
		publicKeys: make(map[string][]byte),
	}
}

// Sign hashes msg with SHA-256, signs the digest in KMS and returns the compact signature.
func (s *Service) Sign(ctx context.Context, keyID string, msg []byte) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.SignTime(time.Since(startTime))
		}
	}()

	kmsKeyID, err := s.kmsKeyID(keyID)
	if err != nil {
		return nil, resterr.New(resterr.WalletSignatureGenerationFailed, err).WithComponent(resterr.KMSComponent)
	}

	pub, err := s.publicKey(ctx, kmsKeyID)
	if err != nil {
		return nil, resterr.New(resterr.WalletConnectionFailed, err).WithComponent(resterr.KMSComponent)
	}

	digest := crypto.Digest(msg)

	result, err := s.client.Sign(ctx, &kms.SignInput{
		KeyId:            aws.String(kmsKeyID),
		Message:          digest,
		MessageType:      types.MessageTypeDigest,
		SigningAlgorithm: types.SigningAlgorithmSpecEcdsaSha256,
	})
	if err != nil {
		return nil, resterr.New(resterr.WalletSignatureGenerationFailed, err).WithComponent(resterr.KMSComponent)
	}

	signature := ecdsaSignature{}

	if _, err = asn1.Unmarshal(result.Signature, &signature); err != nil {
		return nil, resterr.New(resterr.WalletSignatureGenerationFailed,
			fmt.Errorf("parse der signature: %w", err)).WithComponent(resterr.KMSComponent)
	}

	sig, err := crypto.CompactFromRS(signature.R, signature.S, pub, digest, crypto.Secp256r1)
	if err != nil {
		return nil, resterr.New(resterr.WalletSignatureGenerationFailed, err).WithComponent(resterr.KMSComponent)
	}

	logger.Debug("Signed with KMS key", log.WithKeyID(keyID))

	return sig, nil
}

func (s *Service) publicKey(ctx context.Context, kmsKeyID string) ([]byte, error) {
	s.mutex.RLock()
	pub, ok := s.publicKeys[kmsKeyID]
	s.mutex.RUnlock()

	if ok {
		return pub, nil
	}

	result, err := s.client.GetPublicKey(ctx, &kms.GetPublicKeyInput{KeyId: aws.String(kmsKeyID)})
	if err != nil {
		return nil, fmt.Errorf("get public key: %w", err)
	}

	if result.KeySpec != types.KeySpecEccNistP256 {
		return nil, fmt.Errorf("key spec %s is not supported", result.KeySpec)
	}

	parsed, err := x509.ParsePKIXPublicKey(result.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	ecKey, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type %T", parsed)
	}

	pub = elliptic.MarshalCompressed(ecKey.Curve, ecKey.X, ecKey.Y)

	s.mutex.Lock()
	s.publicKeys[kmsKeyID] = pub
	s.mutex.Unlock()

	return pub, nil
}

func (s *Service) kmsKeyID(keyID string) (string, error) {
	keyURI, ok := s.keys[keyID]
	if !ok {
		return "", fmt.Errorf("no kms key configured for %q", keyID)
	}

	return getKeyID(keyURI)
}

func getKeyID(keyURI string) (string, error) {
	if !strings.Contains(keyURI, "aws-kms") {
		return keyURI, nil
	}

	// keyURI must have the following format: 'aws-kms://arn:<partition>:kms:<region>:[:path]'.
	// See http://docs.aws.amazon.com/general/latest/gr/aws-arns-and-namespaces.html.
	re1 := regexp.MustCompile(`aws-kms://arn:(aws[a-zA-Z0-9-_]*):kms:([a-z0-9-]+):([a-z0-9-]+):key/(.+)`)

	if strings.Contains(keyURI, "alias") {
		re1 = regexp.MustCompile(`aws-kms://arn:(aws[a-zA-Z0-9-_]*):kms:([a-z0-9-]+):([a-z0-9-]+):(.+)`)
	}

	r := re1.FindStringSubmatch(keyURI)

	const subStringCount = 5

	if len(r) != subStringCount {
		return "", fmt.Errorf("extracting key id from URI failed")
	}

	return r[4], nil
}
