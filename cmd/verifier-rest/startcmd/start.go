/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/did-verifier/cmd/common"
	"github.com/trustbloc/did-verifier/internal/pkg/log"
	tlsutils "github.com/trustbloc/did-verifier/internal/pkg/utils/tls"
	enrollmentclient "github.com/trustbloc/did-verifier/pkg/client/enrollment"
	"github.com/trustbloc/did-verifier/pkg/client/registry"
	"github.com/trustbloc/did-verifier/pkg/diddoc"
	"github.com/trustbloc/did-verifier/pkg/event"
	"github.com/trustbloc/did-verifier/pkg/event/kafka"
	"github.com/trustbloc/did-verifier/pkg/event/spi"
	"github.com/trustbloc/did-verifier/pkg/kms"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics/noop"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics/prometheus"
	redischeck "github.com/trustbloc/did-verifier/pkg/observability/health/redis"
	"github.com/trustbloc/did-verifier/pkg/observability/tracing"
	enrollmentwrapper "github.com/trustbloc/did-verifier/pkg/observability/tracing/wrappers/enrollment"
	verifierwrapper "github.com/trustbloc/did-verifier/pkg/observability/tracing/wrappers/verifier"
	"github.com/trustbloc/did-verifier/pkg/policy"
	"github.com/trustbloc/did-verifier/pkg/proof"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
	"github.com/trustbloc/did-verifier/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/did-verifier/pkg/restapi/v1/logapi"
	"github.com/trustbloc/did-verifier/pkg/restapi/v1/mw"
	versionapi "github.com/trustbloc/did-verifier/pkg/restapi/v1/version"
	"github.com/trustbloc/did-verifier/pkg/restapi/v1/verifier"
	"github.com/trustbloc/did-verifier/pkg/service/certificatevc"
	"github.com/trustbloc/did-verifier/pkg/service/enrollment"
	"github.com/trustbloc/did-verifier/pkg/service/handshake"
	"github.com/trustbloc/did-verifier/pkg/service/transaction"
	verifiersvc "github.com/trustbloc/did-verifier/pkg/service/verifier"
	"github.com/trustbloc/did-verifier/pkg/storage/redis"
	"github.com/trustbloc/did-verifier/pkg/storage/redis/diddocstore"
)

const (
	serviceName         = "verifier-rest"
	healthCheckEndpoint = "/healthcheck"
	adminBasePath       = "/admin"
	httpClientTimeout   = 20 * time.Second
	readHeaderTimeout   = 10 * time.Second
)

// version is set at build time with -ldflags "-X ...startcmd.version=<version>".
var version = "dev"

var logger = log.New(serviceName)

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

type startOpts struct {
	server httpServer
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets the server the REST API is served with.
func WithHTTPServer(server httpServer) StartOpts {
	return func(opts *startOpts) {
		opts.server = server
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start verifier-rest",
		Long:  "Start the DID verifier REST service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			common.SetDefaultLogLevel(logger, params.logLevel)

			return startServer(params, opts...)
		},
	}
}

type eventTransport interface {
	Publish(ctx context.Context, topic string, events ...*spi.Event) error
}

//nolint:funlen,gocyclo
func startServer(params *startupParameters, opts ...StartOpts) error {
	o := &startOpts{}

	for _, opt := range opts {
		opt(o)
	}

	ctx := context.Background()

	shutdownTracing, tracer, err := tracing.Initialize(params.tracingProvider, serviceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracing()

	var tracerProvider trace.TracerProvider

	if params.tracingProvider != tracing.None {
		tracerProvider = otel.GetTracerProvider()
	}

	m, destroyMetrics, err := createMetrics(params)
	if err != nil {
		return err
	}

	defer destroyMetrics()

	httpClient, err := newHTTPClient(params.tls)
	if err != nil {
		return err
	}

	st, err := createStores(ctx, params, tracerProvider)
	if err != nil {
		return err
	}

	defer st.close()

	checks := st.checks

	registryClient := registry.NewClient(httpClient, params.registryURL)

	cacheOpts := []diddoc.Opt{
		diddoc.WithRefreshInterval(params.didCacheRefresh),
		diddoc.WithMetrics(m),
	}

	if len(params.redis.addrs) > 0 {
		redisClient, redisErr := redis.New(params.redis.addrs,
			redis.WithPassword(params.redis.password),
			redis.WithMasterName(params.redis.masterName),
			redis.WithKeyPrefix(params.db.Prefix+databaseName),
			redis.WithTraceProvider(tracerProvider),
		)
		if redisErr != nil {
			return fmt.Errorf("connect to redis: %w", redisErr)
		}

		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				logger.Warn("Failed to close redis client", log.WithError(closeErr))
			}
		}()

		cacheOpts = append(cacheOpts, diddoc.WithStore(diddocstore.New(redisClient)))
		checks = append(checks, health.Check{Name: "redis", Check: redischeck.New(redisClient)})

		logger.Info("DID document cache is shared through redis")
	}

	didCache := diddoc.New(registryClient, cacheOpts...)

	didCache.Start()
	defer didCache.Stop()

	transport, closeEvents, eventChecks, err := createEventTransport(params.events)
	if err != nil {
		return err
	}

	defer closeEvents()

	checks = append(checks, eventChecks...)

	publisher := event.NewEventPublisher(transport, serviceName, params.events.topic)

	signer, err := kms.NewSigner(ctx, params.kms, m)
	if err != nil {
		return fmt.Errorf("create signer: %w", err)
	}

	proofService := proof.NewService(signer, didCache)
	handshakeEngine := handshake.New(proofService)

	policies, err := policy.Load(params.policyPath, policy.Config{
		DID:       params.verifierDID,
		CertVCRef: params.certVCRef,
		Ref:       params.verifierRef,
		Endpoints: params.endpoints,
	})
	if err != nil {
		return fmt.Errorf("load policies: %w", err)
	}

	transactionService := transaction.New(&transaction.Config{
		Store:  st.transactions,
		Offers: st.vp,
		TTL:    params.transactionTTL,
	})

	vpVerifier := verifiersvc.NewVPVerifier(didCache, nil)
	if params.vcStatusCheck {
		vpVerifier = verifiersvc.NewVPVerifier(didCache, registryClient)
	}

	verifierService := verifiersvc.NewService(&verifiersvc.Config{
		Transactions:  transactionService,
		VPStore:       st.vp,
		E2EStore:      st.e2e,
		Policies:      policies,
		Handshake:     handshakeEngine,
		Proofs:        proofService,
		DIDResolver:   didCache,
		VPVerifier:    vpVerifier,
		UnitOfWork:    st.uow,
		Events:        publisher,
		Metrics:       m,
		VerifierDID:   params.verifierDID,
		OfferValidity: params.offerValidity,
	})

	certificateService := certificatevc.New(st.certificateVCs)

	var enrollmentService enrollmentwrapper.Service = &noEnrollment{}

	if params.tasURL != "" {
		enrollmentService = enrollment.NewService(&enrollment.Config{
			Authority:    enrollmentclient.NewClient(httpClient, params.tasURL),
			Handshake:    handshakeEngine,
			Proofs:       proofService,
			DIDResolver:  didCache,
			Certificates: certificateService,
			Events:       publisher,
			Metrics:      m,
			VerifierDID:  params.verifierDID,
		})
	}

	enrollmentService = enrollmentwrapper.Wrap(enrollmentService, tracer)

	if params.enrollOnStartup {
		if cert, enrollErr := enrollmentService.EnrollEntity(ctx); enrollErr != nil {
			logger.Error("Enrollment on startup failed", log.WithError(enrollErr))
		} else {
			logger.Info("Enrolled on startup", log.WithVCID(cert.VCID))
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	e.Use(echomw.Recover())

	verifier.RegisterHandlers(e.Group(verifier.BasePath), verifier.NewController(&verifier.Config{
		VerifierSvc:    verifierwrapper.Wrap(verifierService, tracer),
		EnrollmentSvc:  enrollmentService,
		CertificateSvc: certificateService,
		Metrics:        m,
	}))

	e.GET(healthCheckEndpoint, healthcheck.NewController(checks...).GetHealthcheck)

	admin := e.Group(adminBasePath, mw.APIKeyAuth(params.apiToken))
	logapi.NewController(admin)
	versionapi.NewController(admin, versionapi.Config{Service: serviceName, Version: version})

	ready := newReadinessController(e)

	srv := o.server
	if srv == nil {
		srv = &http.Server{
			Addr:              params.hostURL,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	ready.Ready(true)

	logger.Info("Starting verifier-rest", log.WithHostURL(params.hostURL))

	if params.tls.certificate != "" {
		err = srv.ListenAndServeTLS(params.tls.certificate, params.tls.key)
	} else {
		err = srv.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}

func createMetrics(params *startupParameters) (metrics.Metrics, func(), error) {
	if params.metricsProvider != metricsProviderPrometheus {
		return noop.GetMetrics(), func() {}, nil
	}

	var server *http.Server

	if params.promHTTPURL != "" {
		server = prometheus.NewServer(params.promHTTPURL)
	}

	provider := prometheus.NewPrometheusProvider(server)

	if err := provider.Create(); err != nil {
		return nil, nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider.Metrics(), func() {
		if err := provider.Destroy(); err != nil {
			logger.Warn("Failed to stop metrics provider", log.WithError(err))
		}
	}, nil
}

func createEventTransport(params *eventParameters) (eventTransport, func(), []health.Check, error) {
	if params.eventType == eventTypeKafka {
		pub, err := kafka.New(params.kafkaBrokers)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create kafka publisher: %w", err)
		}

		closeFn := func() {
			if closeErr := pub.Close(); closeErr != nil {
				logger.Warn("Failed to close kafka publisher", log.WithError(closeErr))
			}
		}

		return pub, closeFn, []health.Check{{Name: "kafka", Check: pub.Ping}}, nil
	}

	bus := event.NewEventBus()

	sub, err := event.NewEventSubscriber(bus, params.topic, event.LogHandler)
	if err != nil {
		_ = bus.Close()

		return nil, nil, nil, err
	}

	sub.Start()

	return bus, func() {
		if closeErr := bus.Close(); closeErr != nil {
			logger.Warn("Failed to close event bus", log.WithError(closeErr))
		}
	}, nil, nil
}

func newHTTPClient(params *tlsParameters) (*http.Client, error) {
	rootCAs, err := tlsutils.GetCertPool(params.systemCertPool, params.caCerts)
	if err != nil {
		return nil, err
	}

	return &http.Client{
		Timeout: httpClientTimeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				RootCAs:    rootCAs,
				MinVersion: tls.VersionTLS12,
			},
		},
	}, nil
}

// noEnrollment serves the certificate routes when no enrollment authority is configured.
type noEnrollment struct{}

func (noEnrollment) EnrollEntity(context.Context) (*certificatevc.CertificateVC, error) {
	return nil, resterr.Newf(resterr.FailedToIssueCertificateVC, "enrollment authority is not configured").
		WithComponent(resterr.EnrollmentSvcComponent)
}
