/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

var logger = log.New("logapi")

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Controller reads and changes module log levels at runtime.
type Controller struct{}

func NewController(router router) *Controller {
	c := &Controller{}

	router.GET("/loglevels", c.GetLogLevels)
	router.POST("/loglevels", c.PostLogLevels)

	return c
}

// GetLogLevels returns the current log spec.
// (GET /loglevels).
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.String(http.StatusOK, log.GetSpec())
}

// PostLogLevels updates log levels from a spec like "module=DEBUG:INFO".
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return resterr.New(resterr.RequestBodyUnreadable, fmt.Errorf("failed to read body: %w", err))
	}

	spec := string(body)

	if err = log.SetSpec(spec); err != nil {
		return resterr.New(resterr.RequestBodyUnreadable, fmt.Errorf("failed to set log spec: %w", err))
	}

	logger.Info("Log levels modified", log.WithUserLogLevel(spec))

	return ctx.NoContent(http.StatusOK)
}
