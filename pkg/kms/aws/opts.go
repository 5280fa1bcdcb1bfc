/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aws

type opts struct {
	awsClient awsClient
}

func newOpts() *opts {
	return &opts{}
}

// Opts a Functional Options.
type Opts func(opts *opts)

// WithAWSClient sets custom AWS client.
func WithAWSClient(client awsClient) Opts {
	return func(opts *opts) { opts.awsClient = client }
}
