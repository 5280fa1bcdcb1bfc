/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	cmdutils "github.com/trustbloc/did-verifier/internal/pkg/utils/cmd"
)

const (
	// DatabaseURLFlagName is the database url.
	DatabaseURLFlagName = "database-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "Database URL with credentials if required." +
		" Format must be <driver>:[//]<driver-specific-dsn>." +
		" Examples: 'mem://verifier', 'mongodb://mongodb.example.com:27017'." +
		" Supported drivers are [mem, mongodb]." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the database url.
	DatabaseURLEnvKey = "DATABASE_URL"

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Total time in seconds to wait until the datasource is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "DATABASE_TIMEOUT"

	// DatabasePrefixFlagName is the storage prefix.
	DatabasePrefixFlagName = "database-prefix"
	// DatabasePrefixEnvKey is the storage prefix.
	DatabasePrefixEnvKey = "DATABASE_PREFIX"
	// DatabasePrefixFlagUsage describes the usage.
	DatabasePrefixFlagUsage = "An optional prefix of the database name. " +
		"Alternatively, this can be set with the following environment variable: " + DatabasePrefixEnvKey

	// DatabaseTransactionsFlagName enables multi-document transactions.
	DatabaseTransactionsFlagName = "database-transactions"
	// DatabaseTransactionsEnvKey enables multi-document transactions.
	DatabaseTransactionsEnvKey = "DATABASE_TRANSACTIONS"
	// DatabaseTransactionsFlagUsage describes the usage.
	DatabaseTransactionsFlagUsage = "Run the store writes of one protocol step in a MongoDB transaction" +
		" (requires a replica set). Default: false. When false, the writes of one step are applied one by one" +
		" and a failure part way through is not rolled back." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTransactionsEnvKey

	// DatabaseTimeoutDefault is the default storage timeout.
	DatabaseTimeoutDefault = 30
)

// Supported database drivers.
const (
	DriverMem     = "mem"
	DriverMongoDB = "mongodb"
)

// DBParameters holds database configuration.
type DBParameters struct {
	URL          string
	Prefix       string
	Timeout      uint64
	Transactions bool
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabasePrefixFlagName, "", "", DatabasePrefixFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
	cmd.Flags().StringP(DatabaseTransactionsFlagName, "", "", DatabaseTransactionsFlagUsage)
}

// DBParams fetches the DB parameters configured for this command.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	var err error

	params := &DBParameters{}

	params.URL, err = cmdutils.GetUserSetVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey, false)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbURL: %w", err)
	}

	params.Prefix = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabasePrefixFlagName, DatabasePrefixEnvKey)

	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey)
	if timeout == "" {
		timeout = strconv.Itoa(DatabaseTimeoutDefault)
	}

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dbTimeout %s: %w", timeout, err)
	}

	params.Transactions, err = cmdutils.GetUserSetOptionalBool(cmd,
		DatabaseTransactionsFlagName, DatabaseTransactionsEnvKey, false)
	if err != nil {
		return nil, err
	}

	return params, nil
}

// Driver returns the database driver of the URL and the connection string to hand to it.
func (p *DBParameters) Driver() (string, string, error) {
	const urlParts = 2

	parsed := strings.SplitN(p.URL, ":", urlParts)
	if len(parsed) != urlParts {
		return "", "", fmt.Errorf("invalid dbURL %s", p.URL)
	}

	switch driver := parsed[0]; driver {
	case DriverMongoDB:
		// the mongo driver wants the scheme as part of the connection string
		return driver, p.URL, nil
	case DriverMem:
		return driver, strings.TrimPrefix(parsed[1], "//"), nil
	default:
		return "", "", fmt.Errorf("unsupported storage driver: %s", driver)
	}
}

// Retry runs task until it succeeds or numRetries one second pauses have elapsed.
func Retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to storage, will sleep before trying again.",
				log.WithDuration(t), log.WithError(retryErr))
		},
	)
}
