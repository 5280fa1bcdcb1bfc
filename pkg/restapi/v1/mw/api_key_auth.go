/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader carries the admin API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth returns a middleware that rejects requests whose X-API-Key header does not match apiKey.
// An empty apiKey disables the check.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if apiKey == "" {
			return next
		}

		return func(c echo.Context) error {
			key := c.Request().Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			return next(c)
		}
	}
}
