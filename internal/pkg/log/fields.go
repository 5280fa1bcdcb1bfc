/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"time"

	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldUserLogLevel = "userLogLevel"
	FieldHostURL      = "hostURL"
	FieldURL          = "url"
	FieldHTTPStatus   = "httpStatus"
	FieldTxID         = "txID"
	FieldOfferID      = "offerID"
	FieldVCID         = "vcID"
	FieldPolicyID     = "policyID"
	FieldDID          = "did"
	FieldKeyID        = "keyID"
	FieldStep         = "step"
	FieldCode         = "code"
	FieldPath         = "path"
	FieldTopic        = "topic"
	FieldEvent        = "event"
	FieldDuration     = "duration"
	FieldCount        = "count"
)

// WithError sets the error field.
func WithError(err error) zap.Field {
	return zap.Error(err)
}

// WithUserLogLevel sets the user log level field.
func WithUserLogLevel(userLogLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, userLogLevel)
}

// WithHostURL sets the hostURL field.
func WithHostURL(hostURL string) zap.Field {
	return zap.String(FieldHostURL, hostURL)
}

// WithURL sets the url field.
func WithURL(url string) zap.Field {
	return zap.String(FieldURL, url)
}

// WithHTTPStatus sets the http-status field.
func WithHTTPStatus(value int) zap.Field {
	return zap.Int(FieldHTTPStatus, value)
}

// WithTxID sets the transaction id field.
func WithTxID(txID string) zap.Field {
	return zap.String(FieldTxID, txID)
}

// WithOfferID sets the offer id field.
func WithOfferID(offerID string) zap.Field {
	return zap.String(FieldOfferID, offerID)
}

// WithVCID sets the credential id field.
func WithVCID(vcID string) zap.Field {
	return zap.String(FieldVCID, vcID)
}

// WithPolicyID sets the policy id field.
func WithPolicyID(policyID string) zap.Field {
	return zap.String(FieldPolicyID, policyID)
}

// WithDID sets the did field.
func WithDID(did string) zap.Field {
	return zap.String(FieldDID, did)
}

// WithKeyID sets the key id field.
func WithKeyID(keyID string) zap.Field {
	return zap.String(FieldKeyID, keyID)
}

// WithStep sets the protocol step field.
func WithStep(step string) zap.Field {
	return zap.String(FieldStep, step)
}

// WithCode sets the error code field.
func WithCode(code string) zap.Field {
	return zap.String(FieldCode, code)
}

// WithPath sets the path field.
func WithPath(path string) zap.Field {
	return zap.String(FieldPath, path)
}

// WithTopic sets the topic field.
func WithTopic(value string) zap.Field {
	return zap.String(FieldTopic, value)
}

// WithEventType sets the event field.
func WithEventType(value string) zap.Field {
	return zap.String(FieldEvent, value)
}

// WithDuration sets the duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithCount sets the count field.
func WithCount(value int) zap.Field {
	return zap.Int(FieldCount, value)
}
