/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"fmt"

	"github.com/alexliesenfeld/health"
	redisapi "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds the connection targets probed by the health endpoint.
type Config struct {
	MongoDBURL string
	RedisAddrs []string
	RedisPass  string
}

// Get returns the checks for the agent's backing stores.
func Get(config *Config) []health.Check {
	checks := []health.Check{
		{
			Name:               "mongodb",
			Check:              MongoDB(config.MongoDBURL),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		},
	}

	if len(config.RedisAddrs) > 0 {
		checks = append(checks, health.Check{
			Name:               "redis",
			Check:              Redis(config.RedisAddrs, config.RedisPass),
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	return checks
}

// MongoDB returns a check that dials and pings the mongo deployment.
func MongoDB(uri string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}

		if err = client.Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("failed to ping mongodb: %w", err)
		}

		return client.Disconnect(ctx)
	}
}

// Redis returns a check that pings the redis deployment holding exchange
// nonces.
func Redis(addrs []string, password string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		client := redisapi.NewUniversalClient(&redisapi.UniversalOptions{
			Addrs:    addrs,
			Password: password,
		})

		defer client.Close() //nolint: errcheck

		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}

		return nil
	}
}
