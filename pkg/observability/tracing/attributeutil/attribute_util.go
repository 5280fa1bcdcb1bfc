/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package attributeutil builds span attributes from protocol messages.
package attributeutil

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redacted = "[REDACTED]"

// JSON returns an attribute holding value as JSON. Paths given with WithRedacted are replaced
// with [REDACTED]; see https://github.com/tidwall/gjson/blob/master/SYNTAX.md for the path syntax.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	for _, path := range op.redacted {
		if !gjson.GetBytes(b, path).Exists() {
			continue
		}

		if b, err = sjson.SetBytes(b, path, redacted); err != nil {
			return attribute.String(key, redacted)
		}
	}

	return attribute.String(key, string(b))
}

type options struct {
	redacted []string
}

type Opt func(*options)

// WithRedacted hides the value at path.
func WithRedacted(path string) Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, path)
	}
}
