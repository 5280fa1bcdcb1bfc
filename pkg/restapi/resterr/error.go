/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is the single error kind of the verifier. It carries the wire code, the component and
// operation that raised it, and the underlying cause.
type Error struct {
	Code      ErrorCode
	Component Component
	Operation string
	Err       error
}

// ErrorJSON is the wire form of Error.
type ErrorJSON struct {
	Code        ErrorCode `json:"code"`
	Description string    `json:"description"`
}

// New returns an Error with the given code and cause. A nil cause is allowed.
func New(code ErrorCode, err error) *Error {
	return &Error{Code: code, Err: err}
}

// Newf returns an Error with the given code and a formatted cause.
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// WithComponent sets the component that raised the error.
func (e *Error) WithComponent(component Component) *Error {
	e.Component = component

	return e
}

// WithOperation sets the operation that failed.
func (e *Error) WithOperation(operation string) *Error {
	e.Operation = operation

	return e
}

// HTTPStatus returns the HTTP status of the error code.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// Message returns the fixed message of the error code.
func (e *Error) Message() string {
	return e.Code.Message()
}

func (e *Error) Error() string {
	var details []string

	if e.Component != "" {
		details = append(details, fmt.Sprintf("component: %s", e.Component))
	}

	if e.Operation != "" {
		details = append(details, fmt.Sprintf("operation: %s", e.Operation))
	}

	msg := fmt.Sprintf("%s %s", e.Code, e.Code.Message())

	if len(details) > 0 {
		msg += "[" + strings.Join(details, "; ") + "]"
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MarshalJSON writes the public wire form. Causes never leave the process.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(&ErrorJSON{Code: e.Code, Description: e.Code.Message()})
}

// CodeOf returns the code of the first Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}

	return "", false
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)

	return ok && c == code
}

// Wrap leaves classified errors untouched and turns anything else into the umbrella code.
func Wrap(err error, umbrella ErrorCode) error {
	if err == nil {
		return nil
	}

	if _, ok := CodeOf(err); ok {
		return err
	}

	return New(umbrella, err)
}
