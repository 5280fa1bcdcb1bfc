/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"sync"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/event/spi"
	"github.com/trustbloc/did-verifier/pkg/lifecycle"
)

var logger = log.New("event-bus")

const (
	defaultBufferSize = 250
)

// Bus implements a publisher/subscriber using Go channels. Handlers run on the publishing node
// only; use the Kafka publisher to fan events out to other services.
type Bus struct {
	*lifecycle.Lifecycle

	subscribers map[string][]chan *spi.Event
	mutex       sync.RWMutex

	publishChan chan *entry
	doneChan    chan struct{}
}

type entry struct {
	topic    string
	messages []*spi.Event
}

// NewEventBus returns a started in-memory event bus.
func NewEventBus() *Bus {
	m := &Bus{
		subscribers: make(map[string][]chan *spi.Event),
		publishChan: make(chan *entry, defaultBufferSize),
		doneChan:    make(chan struct{}),
	}

	m.Lifecycle = lifecycle.New("event-bus", lifecycle.WithStop(m.stop))

	go m.processMessages()

	m.Start()

	return m
}

// Close stops the bus and closes all subscriber channels.
func (b *Bus) Close() error {
	b.Stop()

	return nil
}

func (b *Bus) stop() {
	logger.Info("Stopping event bus")

	b.doneChan <- struct{}{}

	<-b.doneChan

	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, msgChans := range b.subscribers {
		for _, msgChan := range msgChans {
			close(msgChan)
		}
	}

	b.subscribers = nil

	logger.Info("Event bus stopped")
}

// Subscribe subscribes to a topic and returns the channel over which events are delivered.
// The channel is closed when the bus is closed.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan *spi.Event, error) {
	if err := b.Running(); err != nil {
		return nil, err
	}

	logger.Debug("Subscribing to topic", log.WithTopic(topic))

	b.mutex.Lock()
	defer b.mutex.Unlock()

	msgChan := make(chan *spi.Event, defaultBufferSize)

	b.subscribers[topic] = append(b.subscribers[topic], msgChan)

	return msgChan, nil
}

// Publish queues the events for delivery to the topic's subscribers. It blocks only when the
// queue is full.
func (b *Bus) Publish(_ context.Context, topic string, messages ...*spi.Event) error {
	if err := b.Running(); err != nil {
		return err
	}

	b.publishChan <- &entry{
		topic:    topic,
		messages: messages,
	}

	return nil
}

func (b *Bus) processMessages() {
	for {
		select {
		case entry := <-b.publishChan:
			b.publish(entry)

		case <-b.doneChan:
			b.doneChan <- struct{}{}

			return
		}
	}
}

func (b *Bus) publish(entry *entry) {
	b.mutex.RLock()
	subscribers := b.subscribers[entry.topic]
	b.mutex.RUnlock()

	if len(subscribers) == 0 {
		logger.Debug("No subscribers for topic", log.WithTopic(entry.topic))

		return
	}

	for _, subscriber := range subscribers {
		for _, m := range entry.messages {
			subscriber <- m.Copy()
		}
	}
}
