/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/event/spi"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

type eventPublisher interface {
	Publish(ctx context.Context, topic string, events ...*spi.Event) error
}

// Publisher emits protocol events. Publishing never fails the protocol step: errors are logged.
type Publisher struct {
	publisher eventPublisher
	source    string
	topic     string
}

// NewEventPublisher returns a publisher that sends events from source to topic.
func NewEventPublisher(pub eventPublisher, source, topic string) *Publisher {
	return &Publisher{
		publisher: pub,
		source:    source,
		topic:     topic,
	}
}

// Emit publishes an event of the given type for the payload.
func (p *Publisher) Emit(ctx context.Context, eventType spi.EventType, payload *spi.EventPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event payload", log.WithEventType(string(eventType)), log.WithError(err))

		return
	}

	e := spi.NewEventWithPayload(uuid.NewString(), p.source, eventType, data)
	e.TransactionID = payload.TxID

	if err = p.publisher.Publish(ctx, p.topic, e); err != nil {
		logger.Warn("Failed to publish event", log.WithEventType(string(eventType)), log.WithTopic(p.topic),
			log.WithTxID(payload.TxID), log.WithError(err))
	}
}

// EmitFailure publishes an event describing err.
func (p *Publisher) EmitFailure(ctx context.Context, eventType spi.EventType, payload *spi.EventPayload, err error) {
	payload.Error = err.Error()

	if code, ok := resterr.CodeOf(err); ok {
		payload.ErrorCode = string(code)
	}

	p.Emit(ctx, eventType, payload)
}
