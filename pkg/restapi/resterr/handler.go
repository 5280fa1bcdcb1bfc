/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
)

var logger = log.New("rest-err")

// HTTPErrorHandler answers errors returned by controllers.
func HTTPErrorHandler(err error, c echo.Context) {
	status, body := processError(err)

	fields := []zap.Field{log.WithHTTPStatus(status), log.WithError(err)}
	if code, ok := CodeOf(err); ok {
		fields = append(fields, log.WithCode(string(code)))
	}

	logger.Error(fmt.Sprintf("%s -> [%d]", c.Request().RequestURI, status), fields...)

	sendResponse(c, status, body)
}

func sendResponse(c echo.Context, status int, body interface{}) {
	if c.Response().Committed {
		return
	}

	var err error

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}

	if err != nil {
		logger.Error("write http response", log.WithError(err))
	}
}

func processError(err error) (int, interface{}) {
	var (
		restErr *Error
		echoErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &restErr):
		return restErr.HTTPStatus(), restErr
	case errors.As(err, &echoErr):
		message := echoErr.Message
		if echoErr.Internal != nil {
			message = echoErr.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return echoErr.Code, message
	default:
		return http.StatusInternalServerError, map[string]interface{}{
			"code":    "generic-error",
			"message": err.Error(),
		}
	}
}
