/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	awssvc "github.com/trustbloc/did-verifier/pkg/kms/aws"
	"github.com/trustbloc/did-verifier/pkg/kms/local"
)

type Type string

const (
	AWS   Type = "aws"
	Local Type = "local"
)

// Config configures the custody of the verifier's signing keys.
type Config struct {
	KMSType    Type
	WalletPath string
	Endpoint   string
	Region     string
	// Keys maps verifier key ids (assert, auth, keyagree, invoke) to AWS KMS key ids or ARNs.
	Keys map[string]string
}

// Signer produces compact signatures with custody keys. The message is hashed with SHA-256
// before signing.
type Signer interface {
	Sign(ctx context.Context, keyID string, message []byte) ([]byte, error)
}

type metricsProvider interface {
	SignTime(value time.Duration)
}

// NewSigner returns the signer configured by cfg.
func NewSigner(ctx context.Context, cfg *Config, metrics metricsProvider) (Signer, error) {
	switch cfg.KMSType {
	case Local, "":
		w, err := local.Open(cfg.WalletPath, metrics)
		if err != nil {
			return nil, err
		}

		return w, nil
	case AWS:
		opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}

		if cfg.Endpoint != "" {
			opts = append(opts, awsconfig.WithEndpointResolverWithOptions(
				aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{URL: cfg.Endpoint, SigningRegion: region}, nil
				}),
			))
		}

		awsConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}

		return awssvc.New(&awsConfig, metrics, cfg.Keys), nil
	default:
		return nil, fmt.Errorf("unsupported kms type %q", cfg.KMSType)
	}
}
