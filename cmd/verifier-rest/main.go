/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the DID verifier REST service.
package main

import (
	"github.com/spf13/cobra"

	"github.com/trustbloc/did-verifier/cmd/verifier-rest/startcmd"
	"github.com/trustbloc/did-verifier/internal/pkg/log"
)

var logger = log.New("verifier-rest")

func main() {
	rootCmd := &cobra.Command{
		Use: "verifier-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run verifier-rest", log.WithError(err))
	}
}
