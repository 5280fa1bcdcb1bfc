/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// GetUserSetOptionalVarFromString returns the flag value, or the environment value when the flag was not set.
func GetUserSetOptionalVarFromString(cmd *cobra.Command, flagName, envKey string) string {
	//nolint // the error will not happen for optional var
	v, _ := GetUserSetVarFromString(cmd, flagName, envKey, true)

	return v
}

// GetUserSetVarFromString returns values either command line flag or environment variable.
// The command line flag takes precedence.
func GetUserSetVarFromString(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf("%s flag not found: %w", flagName, err)
		}

		if value == "" {
			return "", fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	switch {
	case isSet && value == "" && !isOptional:
		return "", fmt.Errorf("%s value is empty", envKey)
	case isSet || isOptional:
		return value, nil
	default:
		return "", fmt.Errorf("neither %s (command line flag) nor %s (environment variable) have been set",
			flagName, envKey)
	}
}

// GetUserSetOptionalCSVVar returns the CSV variable set via flag or environment, or nil.
// The command line flag must be set as a StringSlice.
func GetUserSetOptionalCSVVar(cmd *cobra.Command, flagName, envKey string) []string {
	//nolint // For an optional variable, no error will happen
	v, _ := GetUserSetCSVVar(cmd, flagName, envKey, true)

	return v
}

// GetUserSetCSVVar returns the variables set via either command line flag or environment variable,
// parsed as comma-separated values.
func GetUserSetCSVVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) ([]string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetStringSlice(flagName)
		if err != nil {
			return nil, fmt.Errorf("%s flag not found: %w", flagName, err)
		}

		if len(value) == 0 {
			return nil, fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, err := GetUserSetVarFromString(cmd, flagName, envKey, isOptional)
	if err != nil {
		return nil, err
	}

	if value == "" {
		return nil, nil
	}

	return strings.Split(value, ","), nil
}

// GetUserSetOptionalBool parses an optional boolean parameter.
func GetUserSetOptionalBool(cmd *cobra.Command, flagName, envKey string, defaultValue bool) (bool, error) {
	value := GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s [%s]: %w", flagName, value, err)
	}

	return b, nil
}

// GetUserSetOptionalInt parses an optional integer parameter.
func GetUserSetOptionalInt(cmd *cobra.Command, flagName, envKey string, defaultValue int) (int, error) {
	value := GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s [%s]: %w", flagName, value, err)
	}

	return i, nil
}

// GetUserSetOptionalDuration parses an optional duration parameter ("90s", "24h").
func GetUserSetOptionalDuration(cmd *cobra.Command, flagName, envKey string,
	defaultValue time.Duration) (time.Duration, error) {
	value := GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s [%s]: %w", flagName, value, err)
	}

	return d, nil
}
