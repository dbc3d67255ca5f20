/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const defaultTimeout = 15 * time.Second

type options struct {
	password      string
	timeout       time.Duration
	traceProvider trace.TracerProvider
}

// Opt customizes the redis client.
type Opt func(*options)

// WithPassword authenticates every connection with the given password.
func WithPassword(password string) Opt {
	return func(o *options) {
		o.password = password
	}
}

// WithTimeout overrides the default per-operation timeout.
func WithTimeout(timeout time.Duration) Opt {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithTraceProvider instruments every redis command with a tracing hook.
func WithTraceProvider(traceProvider trace.TracerProvider) Opt {
	return func(o *options) {
		o.traceProvider = traceProvider
	}
}

// Client wraps a universal redis client with a default operation timeout.
// One address connects to a single node, several addresses to a cluster.
type Client struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// New connects to redis and verifies the connection with a ping.
func New(addrs []string, opts ...Opt) (*Client, error) {
	o := &options{timeout: defaultTimeout}

	for _, f := range opts {
		f(o)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		Password:              o.password,
		ContextTimeoutEnabled: true,
	})

	if o.traceProvider != nil {
		if err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(o.traceProvider)); err != nil {
			return nil, fmt.Errorf("instrument redis tracing: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Client{client: client, timeout: o.timeout}, nil
}

// API exposes the underlying universal client.
func (c *Client) API() redis.UniversalClient {
	return c.client
}

// ContextWithTimeout returns a context bounded by the client timeout.
func (c *Client) ContextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.client.Close()
}
