/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"time"
)

// VerifierEventTopic is the topic protocol events are published to.
const VerifierEventTopic = "verifier"

// EventType event type.
type EventType string

const (
	VerifierOfferRequested   = EventType("verifier.offer_requested")
	VerifierProfileRequested = EventType("verifier.profile_requested")
	VerifierVPVerified       = EventType("verifier.vp_verified")
	VerifierVPVerifyFailed   = EventType("verifier.vp_verify_failed")
	VerifierEntityEnrolled   = EventType("verifier.entity_enrolled")
)

type Payload []byte

// EventPayload is the data of protocol events.
type EventPayload struct {
	TxID      string `json:"txId,omitempty"`
	OfferID   string `json:"offerId,omitempty"`
	PolicyID  string `json:"policyId,omitempty"`
	VCID      string `json:"vcId,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data []byte `json:"data,omitempty"`

	// TransactionID defines transaction ID(optional).
	TransactionID string `json:"txnId,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		TransactionID:   m.TransactionID,
	}
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)

	event.Data = payload

	// payloads are always json
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        time.Now().UTC(),
	}
}
