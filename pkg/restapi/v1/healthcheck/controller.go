/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/did-verifier/pkg/observability/health/healthutil"
)

const (
	cacheDuration = 5 * time.Second
	checkTimeout  = 10 * time.Second
)

// Controller for health check API.
type Controller struct {
	handler http.Handler
}

// NewController returns a controller that reports the aggregated status of checks. Without
// checks the service reports itself up.
func NewController(checks ...health.Check) *Controller {
	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithCacheDuration(cacheDuration),
		health.WithTimeout(checkTimeout),
		health.WithInterceptors(responseTimes.Interceptor()),
	}

	for _, check := range checks {
		opts = append(opts, health.WithCheck(check))
	}

	checker := health.NewChecker(opts...)

	return &Controller{
		handler: health.NewHandler(checker,
			health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)),
		),
	}
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	c.handler.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}
