/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Service string
	Version string
}

type Controller struct {
	service string
	version string
}

type versionResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		service: cfg.Service,
		version: cfg.Version,
	}

	router.GET("/version", c.Version)

	return c
}

// Version returns the build version of the service.
// (GET /version).
func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Service: c.service, Version: c.version})
}
