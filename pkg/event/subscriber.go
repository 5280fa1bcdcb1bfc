/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/event/spi"
	"github.com/trustbloc/did-verifier/pkg/lifecycle"
)

type (
	eventHandler func(event *spi.Event) error
)

type eventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *spi.Event, error)
}

// Subscriber hands every event of one topic to a handler.
type Subscriber struct {
	*lifecycle.Lifecycle

	handler   eventHandler
	eventChan <-chan *spi.Event
	done      chan struct{}
}

// NewEventSubscriber subscribes to topic. Start begins delivering events to handler.
func NewEventSubscriber(sub eventSubscriber, topic string, handler eventHandler) (*Subscriber, error) {
	h := &Subscriber{
		handler: handler,
		done:    make(chan struct{}),
	}

	h.Lifecycle = lifecycle.New("event-subscriber",
		lifecycle.WithStart(h.start),
	)

	ch, err := sub.Subscribe(context.Background(), topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic [%s]: %w", topic, err)
	}

	h.eventChan = ch

	return h, nil
}

// Done is closed once the subscription channel has been closed and drained.
func (h *Subscriber) Done() <-chan struct{} {
	return h.done
}

func (h *Subscriber) start() {
	go h.listen()
}

func (h *Subscriber) listen() {
	defer close(h.done)

	for e := range h.eventChan {
		if err := h.handler(e); err != nil {
			logger.Error("Failed to handle event", zap.String("id", e.ID), log.WithError(err))
		}
	}

	logger.Debug("Event channel closed")
}

// LogHandler writes every event to the log.
func LogHandler(e *spi.Event) error {
	logger.Info("Protocol event", log.WithEventType(string(e.Type)), zap.String("txnId", e.TransactionID),
		zap.ByteString("data", e.Data))

	return nil
}
