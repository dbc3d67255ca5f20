/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noncestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/velocitynetwork/credential-agent/pkg/storage/redis"
)

const (
	keyPrefix = "exchangenonce"
)

// Store keeps one-time exchange nonces in redis. A nonce maps to exactly one
// exchange id and expires with the submission window.
type Store struct {
	redisClient *redis.Client
}

// New creates nonce Store.
func New(redisClient *redis.Client) *Store {
	return &Store{redisClient: redisClient}
}

// SetIfNotExist reserves the nonce for the exchange. Returns false when the
// nonce is already taken.
func (s *Store) SetIfNotExist(ctx context.Context, nonce, exchangeID string, ttl time.Duration) (bool, error) {
	ok, err := s.redisClient.API().SetNX(ctx, resolveRedisKey(nonce), exchangeID, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("nonce set: %w", err)
	}

	return ok, nil
}

// GetAndDelete resolves a nonce to its exchange id and burns it in a single
// GETDEL call, so two concurrent submissions cannot both resolve the nonce.
// Returns false when the nonce is unknown or already used.
func (s *Store) GetAndDelete(ctx context.Context, nonce string) (string, bool, error) {
	exchangeID, err := s.redisClient.API().GetDel(ctx, resolveRedisKey(nonce)).Result()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("nonce find failed: %w", err)
	}

	return exchangeID, true, nil
}

func resolveRedisKey(nonce string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, nonce)
}
