/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/trustbloc/did-verifier/cmd/common"
	cmdutils "github.com/trustbloc/did-verifier/internal/pkg/utils/cmd"
	"github.com/trustbloc/did-verifier/pkg/diddoc"
	"github.com/trustbloc/did-verifier/pkg/event/spi"
	"github.com/trustbloc/did-verifier/pkg/kms"
	"github.com/trustbloc/did-verifier/pkg/observability/tracing"
	"github.com/trustbloc/did-verifier/pkg/service/transaction"
	verifiersvc "github.com/trustbloc/did-verifier/pkg/service/verifier"
)

const (
	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the verifier-rest instance on. Format: HostName:Port." +
		" Alternatively, this can be set with the following environment variable: " + hostURLEnvKey
	hostURLEnvKey = "VERIFIER_HOST_URL"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for the verifier-rest server." +
		" Alternatively, this can be set with the following environment variable: " + tlsCertificateEnvKey
	tlsCertificateEnvKey = "VERIFIER_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for the verifier-rest server." +
		" Alternatively, this can be set with the following environment variable: " + tlsKeyEnvKey
	tlsKeyEnvKey = "VERIFIER_TLS_KEY"

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool for outbound connections." +
		" Possible values [true] [false]. Defaults to false if not set." +
		" Alternatively, this can be set with the following environment variable: " + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "VERIFIER_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." +
		" Alternatively, this can be set with the following environment variable: " + tlsCACertsEnvKey
	tlsCACertsEnvKey = "VERIFIER_TLS_CACERTS"

	redisURLFlagName  = "redis-url"
	redisURLFlagUsage = "Comma-separated list of redis addresses. When set, the DID document cache is kept" +
		" in redis and shared between instances." +
		" Alternatively, this can be set with the following environment variable: " + redisURLEnvKey
	redisURLEnvKey = "VERIFIER_REDIS_URL"

	redisPasswordFlagName  = "redis-password"
	redisPasswordFlagUsage = "Redis password." +
		" Alternatively, this can be set with the following environment variable: " + redisPasswordEnvKey
	redisPasswordEnvKey = "VERIFIER_REDIS_PASSWORD"

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameFlagUsage = "Redis sentinel master name." +
		" Alternatively, this can be set with the following environment variable: " + redisMasterNameEnvKey
	redisMasterNameEnvKey = "VERIFIER_REDIS_MASTER_NAME"

	verifierDIDFlagName  = "verifier-did"
	verifierDIDFlagUsage = "DID of this verifier." +
		" Alternatively, this can be set with the following environment variable: " + verifierDIDEnvKey
	verifierDIDEnvKey = "VERIFIER_DID"

	verifierCertVCRefFlagName  = "verifier-cert-vc-ref"
	verifierCertVCRefFlagUsage = "URL of the certificate VC of this verifier, advertised in verify profiles." +
		" Alternatively, this can be set with the following environment variable: " + verifierCertVCRefEnvKey
	verifierCertVCRefEnvKey = "VERIFIER_CERT_VC_REF"

	verifierRefFlagName  = "verifier-ref"
	verifierRefFlagUsage = "Reference URL of this verifier." +
		" Alternatively, this can be set with the following environment variable: " + verifierRefEnvKey
	verifierRefEnvKey = "VERIFIER_REF"

	verifierEndpointsFlagName  = "verifier-endpoints"
	verifierEndpointsFlagUsage = "Comma-separated list of endpoints advertised in offers and verify profiles." +
		" Alternatively, this can be set with the following environment variable: " + verifierEndpointsEnvKey
	verifierEndpointsEnvKey = "VERIFIER_ENDPOINTS"

	offerValidSecondsFlagName  = "offer-valid-seconds"
	offerValidSecondsFlagUsage = "Number of seconds an offer stays valid. Default: 180." +
		" Alternatively, this can be set with the following environment variable: " + offerValidSecondsEnvKey
	offerValidSecondsEnvKey = "VERIFIER_OFFER_VALID_SECONDS"

	transactionTTLFlagName  = "transaction-ttl"
	transactionTTLFlagUsage = "Lifetime of a transaction, for example 24h. Default: 24h." +
		" Alternatively, this can be set with the following environment variable: " + transactionTTLEnvKey
	transactionTTLEnvKey = "VERIFIER_TRANSACTION_TTL"

	policyPathFlagName  = "policy-path"
	policyPathFlagUsage = "Directory holding the VP policy files." +
		" Alternatively, this can be set with the following environment variable: " + policyPathEnvKey
	policyPathEnvKey = "VERIFIER_POLICY_PATH"

	registryURLFlagName  = "registry-url"
	registryURLFlagUsage = "Base URL of the registry serving DID documents and VC metadata." +
		" Alternatively, this can be set with the following environment variable: " + registryURLEnvKey
	registryURLEnvKey = "VERIFIER_REGISTRY_URL"

	vcStatusCheckFlagName  = "vc-status-check"
	vcStatusCheckFlagUsage = "Check the status of presented credentials in the registry. Default: false." +
		" Alternatively, this can be set with the following environment variable: " + vcStatusCheckEnvKey
	vcStatusCheckEnvKey = "VERIFIER_VC_STATUS_CHECK"

	tasURLFlagName  = "tas-url"
	tasURLFlagUsage = "Base URL of the enrollment authority issuing the certificate VC." +
		" Alternatively, this can be set with the following environment variable: " + tasURLEnvKey
	tasURLEnvKey = "VERIFIER_TAS_URL"

	enrollOnStartupFlagName  = "enroll-on-startup"
	enrollOnStartupFlagUsage = "Enroll with the enrollment authority once at startup. Default: false." +
		" Alternatively, this can be set with the following environment variable: " + enrollOnStartupEnvKey
	enrollOnStartupEnvKey = "VERIFIER_ENROLL_ON_STARTUP"

	kmsTypeFlagName  = "kms-type"
	kmsTypeFlagUsage = "Key custody type. Supported: local, aws. Default: local." +
		" Alternatively, this can be set with the following environment variable: " + kmsTypeEnvKey
	kmsTypeEnvKey = "VERIFIER_KMS_TYPE"

	walletPathFlagName  = "wallet-path"
	walletPathFlagUsage = "Path of the local wallet file." +
		" Alternatively, this can be set with the following environment variable: " + walletPathEnvKey
	walletPathEnvKey = "VERIFIER_WALLET_PATH"

	kmsRegionFlagName  = "kms-region"
	kmsRegionFlagUsage = "AWS KMS region." +
		" Alternatively, this can be set with the following environment variable: " + kmsRegionEnvKey
	kmsRegionEnvKey = "VERIFIER_KMS_REGION"

	kmsEndpointFlagName  = "kms-endpoint"
	kmsEndpointFlagUsage = "AWS KMS endpoint override." +
		" Alternatively, this can be set with the following environment variable: " + kmsEndpointEnvKey
	kmsEndpointEnvKey = "VERIFIER_KMS_ENDPOINT"

	kmsKeysFlagName  = "kms-keys"
	kmsKeysFlagUsage = "Comma-separated list of keyId=arn pairs mapping verifier keys to AWS KMS keys." +
		" Alternatively, this can be set with the following environment variable: " + kmsKeysEnvKey
	kmsKeysEnvKey = "VERIFIER_KMS_KEYS"

	didCacheRefreshFlagName  = "did-cache-refresh-interval"
	didCacheRefreshFlagUsage = "Refresh period of the DID document cache, for example 1h. Default: 1h." +
		" Alternatively, this can be set with the following environment variable: " + didCacheRefreshEnvKey
	didCacheRefreshEnvKey = "VERIFIER_DID_CACHE_REFRESH"

	eventTypeFlagName  = "event-type"
	eventTypeFlagUsage = "Event transport. Supported: mem, kafka. Default: mem." +
		" Alternatively, this can be set with the following environment variable: " + eventTypeEnvKey
	eventTypeEnvKey = "VERIFIER_EVENT_TYPE"

	kafkaBrokersFlagName  = "kafka-brokers"
	kafkaBrokersFlagUsage = "Comma-separated list of Kafka brokers." +
		" Alternatively, this can be set with the following environment variable: " + kafkaBrokersEnvKey
	kafkaBrokersEnvKey = "VERIFIER_KAFKA_BROKERS"

	kafkaTopicFlagName  = "kafka-topic"
	kafkaTopicFlagUsage = "Kafka topic protocol events are published to. Default: verifier." +
		" Alternatively, this can be set with the following environment variable: " + kafkaTopicEnvKey
	kafkaTopicEnvKey = "VERIFIER_KAFKA_TOPIC"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderFlagUsage = "Tracing exporter. Supported: JAEGER, STDOUT. Tracing is off when not set." +
		" Alternatively, this can be set with the following environment variable: " + tracingProviderEnvKey
	tracingProviderEnvKey = "VERIFIER_TRACING_PROVIDER"

	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderFlagUsage = "Metrics provider. Supported: prometheus. Metrics are off when not set." +
		" Alternatively, this can be set with the following environment variable: " + metricsProviderEnvKey
	metricsProviderEnvKey = "VERIFIER_METRICS_PROVIDER_NAME"

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLFlagUsage = "Address the prometheus metrics endpoint listens on, for example :48127." +
		" Alternatively, this can be set with the following environment variable: " + promHTTPURLEnvKey
	promHTTPURLEnvKey = "VERIFIER_PROM_HTTP_URL"

	apiTokenFlagName  = "api-token"
	apiTokenFlagUsage = "API key required in the X-API-Key header of admin endpoints. Admin endpoints are open" +
		" when not set. Alternatively, this can be set with the following environment variable: " + apiTokenEnvKey
	apiTokenEnvKey = "VERIFIER_API_TOKEN"
)

const (
	eventTypeMem   = "mem"
	eventTypeKafka = "kafka"

	metricsProviderPrometheus = "prometheus"
)

type tlsParameters struct {
	certificate    string
	key            string
	systemCertPool bool
	caCerts        []string
}

type redisParameters struct {
	addrs      []string
	password   string
	masterName string
}

type eventParameters struct {
	eventType    string
	kafkaBrokers []string
	topic        string
}

type startupParameters struct {
	hostURL         string
	tls             *tlsParameters
	db              *common.DBParameters
	redis           *redisParameters
	verifierDID     string
	certVCRef       string
	verifierRef     string
	endpoints       []string
	offerValidity   time.Duration
	transactionTTL  time.Duration
	policyPath      string
	registryURL     string
	vcStatusCheck   bool
	tasURL          string
	enrollOnStartup bool
	kms             *kms.Config
	didCacheRefresh time.Duration
	events          *eventParameters
	logLevel        string
	tracingProvider tracing.SpanExporterType
	metricsProvider string
	promHTTPURL     string
	apiToken        string
}

//nolint:funlen,gocyclo
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	verifierDID, err := cmdutils.GetUserSetVarFromString(cmd, verifierDIDFlagName, verifierDIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	offerValidSeconds, err := cmdutils.GetUserSetOptionalInt(cmd, offerValidSecondsFlagName,
		offerValidSecondsEnvKey, int(verifiersvc.DefaultOfferValidity/time.Second))
	if err != nil {
		return nil, err
	}

	if offerValidSeconds <= 0 {
		return nil, fmt.Errorf("%s must be positive", offerValidSecondsFlagName)
	}

	transactionTTL, err := cmdutils.GetUserSetOptionalDuration(cmd, transactionTTLFlagName,
		transactionTTLEnvKey, transaction.DefaultTTL)
	if err != nil {
		return nil, err
	}

	policyPath, err := cmdutils.GetUserSetVarFromString(cmd, policyPathFlagName, policyPathEnvKey, false)
	if err != nil {
		return nil, err
	}

	registryURL, err := cmdutils.GetUserSetVarFromString(cmd, registryURLFlagName, registryURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	vcStatusCheck, err := cmdutils.GetUserSetOptionalBool(cmd, vcStatusCheckFlagName, vcStatusCheckEnvKey, false)
	if err != nil {
		return nil, err
	}

	enrollOnStartup, err := cmdutils.GetUserSetOptionalBool(cmd, enrollOnStartupFlagName,
		enrollOnStartupEnvKey, false)
	if err != nil {
		return nil, err
	}

	tasURL := cmdutils.GetUserSetOptionalVarFromString(cmd, tasURLFlagName, tasURLEnvKey)
	if enrollOnStartup && tasURL == "" {
		return nil, fmt.Errorf("%s requires %s", enrollOnStartupFlagName, tasURLFlagName)
	}

	kmsConfig, err := getKMS(cmd)
	if err != nil {
		return nil, err
	}

	didCacheRefresh, err := cmdutils.GetUserSetOptionalDuration(cmd, didCacheRefreshFlagName,
		didCacheRefreshEnvKey, diddoc.DefaultRefreshInterval)
	if err != nil {
		return nil, err
	}

	events, err := getEvents(cmd)
	if err != nil {
		return nil, err
	}

	tracingProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)
	if !tracing.IsExportedSupported(tracingProvider) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", tracingProvider)
	}

	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)
	if metricsProvider != "" && metricsProvider != metricsProviderPrometheus {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	return &startupParameters{
		hostURL: hostURL,
		tls:     tlsParams,
		db:      dbParams,
		redis: &redisParameters{
			addrs:      cmdutils.GetUserSetOptionalCSVVar(cmd, redisURLFlagName, redisURLEnvKey),
			password:   cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
			masterName: cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey),
		},
		verifierDID:     verifierDID,
		certVCRef:       cmdutils.GetUserSetOptionalVarFromString(cmd, verifierCertVCRefFlagName, verifierCertVCRefEnvKey),
		verifierRef:     cmdutils.GetUserSetOptionalVarFromString(cmd, verifierRefFlagName, verifierRefEnvKey),
		endpoints:       cmdutils.GetUserSetOptionalCSVVar(cmd, verifierEndpointsFlagName, verifierEndpointsEnvKey),
		offerValidity:   time.Duration(offerValidSeconds) * time.Second,
		transactionTTL:  transactionTTL,
		policyPath:      policyPath,
		registryURL:     registryURL,
		vcStatusCheck:   vcStatusCheck,
		tasURL:          tasURL,
		enrollOnStartup: enrollOnStartup,
		kms:             kmsConfig,
		didCacheRefresh: didCacheRefresh,
		events:          events,
		logLevel:        cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		tracingProvider: tracingProvider,
		metricsProvider: metricsProvider,
		promHTTPURL:     cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey),
		apiToken:        cmdutils.GetUserSetOptionalVarFromString(cmd, apiTokenFlagName, apiTokenEnvKey),
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	systemCertPool, err := cmdutils.GetUserSetOptionalBool(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey, false)
	if err != nil {
		return nil, err
	}

	params := &tlsParameters{
		certificate:    cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
		key:            cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
		systemCertPool: systemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalCSVVar(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
	}

	if (params.certificate == "") != (params.key == "") {
		return nil, fmt.Errorf("%s and %s must be set together", tlsCertificateFlagName, tlsKeyFlagName)
	}

	return params, nil
}

func getKMS(cmd *cobra.Command) (*kms.Config, error) {
	kmsType := kms.Type(cmdutils.GetUserSetOptionalVarFromString(cmd, kmsTypeFlagName, kmsTypeEnvKey))
	if kmsType == "" {
		kmsType = kms.Local
	}

	cfg := &kms.Config{
		KMSType:    kmsType,
		WalletPath: cmdutils.GetUserSetOptionalVarFromString(cmd, walletPathFlagName, walletPathEnvKey),
		Region:     cmdutils.GetUserSetOptionalVarFromString(cmd, kmsRegionFlagName, kmsRegionEnvKey),
		Endpoint:   cmdutils.GetUserSetOptionalVarFromString(cmd, kmsEndpointFlagName, kmsEndpointEnvKey),
	}

	switch kmsType {
	case kms.Local:
		if cfg.WalletPath == "" {
			return nil, fmt.Errorf("%s is required for kms type %s", walletPathFlagName, kmsType)
		}
	case kms.AWS:
		keys, err := parseKeyMap(cmdutils.GetUserSetOptionalCSVVar(cmd, kmsKeysFlagName, kmsKeysEnvKey))
		if err != nil {
			return nil, err
		}

		cfg.Keys = keys
	default:
		return nil, fmt.Errorf("unsupported kms type: %s", kmsType)
	}

	return cfg, nil
}

func parseKeyMap(pairs []string) (map[string]string, error) {
	const pairParts = 2

	keys := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", pairParts)
		if len(parts) != pairParts || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid %s entry %q: expected keyId=arn", kmsKeysFlagName, pair)
		}

		keys[parts[0]] = parts[1]
	}

	return keys, nil
}

func getEvents(cmd *cobra.Command) (*eventParameters, error) {
	params := &eventParameters{
		eventType:    cmdutils.GetUserSetOptionalVarFromString(cmd, eventTypeFlagName, eventTypeEnvKey),
		kafkaBrokers: cmdutils.GetUserSetOptionalCSVVar(cmd, kafkaBrokersFlagName, kafkaBrokersEnvKey),
		topic:        cmdutils.GetUserSetOptionalVarFromString(cmd, kafkaTopicFlagName, kafkaTopicEnvKey),
	}

	if params.eventType == "" {
		params.eventType = eventTypeMem
	}

	if params.topic == "" {
		params.topic = spi.VerifierEventTopic
	}

	switch params.eventType {
	case eventTypeMem:
	case eventTypeKafka:
		if len(params.kafkaBrokers) == 0 {
			return nil, fmt.Errorf("%s is required for event type %s", kafkaBrokersFlagName, eventTypeKafka)
		}
	default:
		return nil, fmt.Errorf("unsupported event type: %s", params.eventType)
	}

	return params, nil
}

func createFlags(startCmd *cobra.Command) {
	common.Flags(startCmd)

	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "",
		common.LogLevelPrefixFlagUsage)
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSliceP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringSliceP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(redisMasterNameFlagName, "", "", redisMasterNameFlagUsage)
	startCmd.Flags().StringP(verifierDIDFlagName, "", "", verifierDIDFlagUsage)
	startCmd.Flags().StringP(verifierCertVCRefFlagName, "", "", verifierCertVCRefFlagUsage)
	startCmd.Flags().StringP(verifierRefFlagName, "", "", verifierRefFlagUsage)
	startCmd.Flags().StringSliceP(verifierEndpointsFlagName, "", []string{}, verifierEndpointsFlagUsage)
	startCmd.Flags().StringP(offerValidSecondsFlagName, "", "", offerValidSecondsFlagUsage)
	startCmd.Flags().StringP(transactionTTLFlagName, "", "", transactionTTLFlagUsage)
	startCmd.Flags().StringP(policyPathFlagName, "", "", policyPathFlagUsage)
	startCmd.Flags().StringP(registryURLFlagName, "", "", registryURLFlagUsage)
	startCmd.Flags().StringP(vcStatusCheckFlagName, "", "", vcStatusCheckFlagUsage)
	startCmd.Flags().StringP(tasURLFlagName, "", "", tasURLFlagUsage)
	startCmd.Flags().StringP(enrollOnStartupFlagName, "", "", enrollOnStartupFlagUsage)
	startCmd.Flags().StringP(kmsTypeFlagName, "", "", kmsTypeFlagUsage)
	startCmd.Flags().StringP(walletPathFlagName, "", "", walletPathFlagUsage)
	startCmd.Flags().StringP(kmsRegionFlagName, "", "", kmsRegionFlagUsage)
	startCmd.Flags().StringP(kmsEndpointFlagName, "", "", kmsEndpointFlagUsage)
	startCmd.Flags().StringSliceP(kmsKeysFlagName, "", []string{}, kmsKeysFlagUsage)
	startCmd.Flags().StringP(didCacheRefreshFlagName, "", "", didCacheRefreshFlagUsage)
	startCmd.Flags().StringP(eventTypeFlagName, "", "", eventTypeFlagUsage)
	startCmd.Flags().StringSliceP(kafkaBrokersFlagName, "", []string{}, kafkaBrokersFlagUsage)
	startCmd.Flags().StringP(kafkaTopicFlagName, "", "", kafkaTopicFlagUsage)
	startCmd.Flags().StringP(tracingProviderFlagName, "", "", tracingProviderFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", metricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", promHTTPURLFlagUsage)
	startCmd.Flags().StringP(apiTokenFlagName, "", "", apiTokenFlagUsage)
}
