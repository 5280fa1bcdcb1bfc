/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package kafka publishes protocol events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/event/spi"
)

var logger = log.New("kafka-publisher")

type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Ping(ctx context.Context) error
	Close()
}

// Publisher writes events as JSON records keyed by transaction id, so that all events of one
// transaction land on the same partition.
type Publisher struct {
	client producer
}

// New connects to the given brokers.
func New(brokers []string, opts ...kgo.Opt) (*Publisher, error) {
	client, err := kgo.NewClient(append([]kgo.Opt{kgo.SeedBrokers(brokers...)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	logger.Info("Kafka publisher created", log.WithURL(fmt.Sprint(brokers)))

	return &Publisher{client: client}, nil
}

// NewWithProducer returns a publisher over an existing producer.
func NewWithProducer(client producer) *Publisher {
	return &Publisher{client: client}
}

// Publish writes the events to topic and waits for the brokers to acknowledge them.
func (p *Publisher) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	records := make([]*kgo.Record, 0, len(events))

	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.ID, err)
		}

		records = append(records, &kgo.Record{
			Topic: topic,
			Key:   []byte(e.TransactionID),
			Value: value,
			Headers: []kgo.RecordHeader{
				{Key: "type", Value: []byte(e.Type)},
			},
		})
	}

	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}

	logger.Debug("Events published", log.WithTopic(topic), log.WithCount(len(records)))

	return nil
}

// Ping checks that a broker is reachable.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close flushes and closes the client.
func (p *Publisher) Close() error {
	p.client.Close()

	return nil
}
