/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout = 15 * time.Second
	keySeparator   = ":"
)

type options struct {
	masterName    string
	password      string
	keyPrefix     string
	timeout       time.Duration
	traceProvider trace.TracerProvider
}

// Opt configures the client.
type Opt func(opts *options)

func WithTraceProvider(traceProvider trace.TracerProvider) Opt {
	return func(opts *options) {
		opts.traceProvider = traceProvider
	}
}

// WithMasterName switches the client to sentinel mode.
func WithMasterName(masterName string) Opt {
	return func(opts *options) {
		opts.masterName = masterName
	}
}

func WithPassword(password string) Opt {
	return func(opts *options) {
		opts.password = password
	}
}

// WithKeyPrefix namespaces every key built by Client.Key.
func WithKeyPrefix(prefix string) Opt {
	return func(opts *options) {
		opts.keyPrefix = prefix
	}
}

func WithTimeout(timeout time.Duration) Opt {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

// Client wraps a universal redis client with a per-call timeout and key namespace.
type Client struct {
	client    redis.UniversalClient
	keyPrefix string
	timeout   time.Duration
}

// New connects to redis. A sentinel-backed client is used when a master name is set, a cluster
// client for two or more addresses, and a single-node client otherwise.
func New(addrs []string, opts ...Opt) (*Client, error) {
	o := &options{timeout: defaultTimeout}

	for _, f := range opts {
		f(o)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		ContextTimeoutEnabled: true,
		MasterName:            o.masterName,
		Password:              o.password,
	})

	if o.traceProvider != nil {
		if err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(o.traceProvider)); err != nil {
			return nil, fmt.Errorf("instrument redis tracing: %w", err)
		}
	}

	c := &Client{
		client:    client,
		keyPrefix: o.keyPrefix,
		timeout:   o.timeout,
	}

	if err := c.Ping(context.Background()); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return c, nil
}

// Key joins parts into a namespaced key such as "prefix:diddoc:did:omn:123".
func (c *Client) Key(parts ...string) string {
	if c.keyPrefix != "" {
		parts = append([]string{c.keyPrefix}, parts...)
	}

	return strings.Join(parts, keySeparator)
}

// ContextWithTimeout bounds ctx by the client timeout.
func (c *Client) ContextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) API() redis.UniversalClient {
	return c.client
}

// Ping checks that the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.ContextWithTimeout(ctx)
	defer cancel()

	return c.client.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.client.Close()
}
