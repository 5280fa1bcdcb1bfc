/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. The server, when not
// nil, exposes the metrics handler and is started by Create.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		logger.Info("Starting metrics server", log.WithHostURL(pp.httpServer.Addr))

		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics of the verifier.
type PromMetrics struct {
	signTime          prometheus.Histogram
	didResolveTime    prometheus.Histogram
	didCacheRefreshed prometheus.Counter
	serviceCallTime   *prometheus.HistogramVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signTime:          newSignTime(),
		didResolveTime:    newDIDResolveTime(),
		didCacheRefreshed: newDIDCacheRefreshed(),
		serviceCallTime:   newServiceCallTime(),
	}

	registerMetrics(pm)

	return pm
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("crypto sign time", log.WithDuration(value))
}

// DIDResolveTime records the time it takes to fetch a DID document from the registry.
func (pm *PromMetrics) DIDResolveTime(value time.Duration) {
	pm.didResolveTime.Observe(value.Seconds())

	logger.Debug("did resolve time", log.WithDuration(value))
}

// DIDCacheRefreshed counts DID documents re-fetched by the periodic refresh.
func (pm *PromMetrics) DIDCacheRefreshed(count int) {
	pm.didCacheRefreshed.Add(float64(count))
}

// ServiceCallTime records the time of one verifier API call.
func (pm *PromMetrics) ServiceCallTime(api string, value time.Duration) {
	pm.serviceCallTime.WithLabelValues(api).Observe(value.Seconds())

	logger.Debug(api+" service call time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.signTime, pm.didResolveTime, pm.didCacheRefreshed, pm.serviceCallTime,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newSignTime() prometheus.Histogram {
	return newHistogram(
		metrics.Crypto, metrics.CryptoSignTimeMetric,
		"The time (in seconds) it takes to run crypto sign.",
		nil,
	)
}

func newDIDResolveTime() prometheus.Histogram {
	return newHistogram(
		metrics.DID, metrics.DIDResolveTimeMetric,
		"The time (in seconds) it takes to fetch a DID document from the registry.",
		nil,
	)
}

func newDIDCacheRefreshed() prometheus.Counter {
	return newCounter(
		metrics.DID, metrics.DIDCacheRefreshedMetric,
		"The number of DID documents re-fetched by the periodic cache refresh.",
		nil,
	)
}

func newServiceCallTime() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.Service,
		Name:      metrics.ServiceCallMetric,
		Help:      "The time (in seconds) it takes to execute a verifier API call.",
	}, []string{metrics.ServiceAPILabel})
}
