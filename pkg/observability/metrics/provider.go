/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "verifier"

	// Crypto key custody operations.
	Crypto               = "crypto"
	CryptoSignTimeMetric = "crypto_sign_seconds"

	// DID document resolution.
	DID                     = "did"
	DIDResolveTimeMetric    = "did_resolve_seconds"
	DIDCacheRefreshedMetric = "did_cache_refreshed_total"

	// Service operations, labelled with the API name.
	Service           = "service"
	ServiceCallMetric = "service_call_seconds"
	ServiceAPILabel   = "api"
)

// API names used as the label of service call times.
const (
	APIRequestOffer   = "requestOffer"
	APIRequestProfile = "requestProfile"
	APIRequestVerify  = "requestVerify"
	APIConfirmVerify  = "confirmVerify"
	APIEnrollEntity   = "enrollEntity"
	APICertificateVC  = "certificateVc"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	SignTime(value time.Duration)
	DIDResolveTime(value time.Duration)
	DIDCacheRefreshed(count int)
	ServiceCallTime(api string, value time.Duration)
}
