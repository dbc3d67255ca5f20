/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package disclosurestore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velocitynetwork/credential-agent/pkg/service/exchange"
	"github.com/velocitynetwork/credential-agent/pkg/storage/mongodb"
	"github.com/velocitynetwork/credential-agent/pkg/tenant"
)

const (
	disclosureCollection = "disclosures"
)

// Store manages tenant disclosures in mongodb. Disclosures carry their own
// ids; the operator API chooses them.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates disclosure Store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Put creates or replaces a disclosure.
func (s *Store) Put(ctx context.Context, disc *tenant.Disclosure) error {
	collection := s.mongoClient.Database().Collection(disclosureCollection)

	_, err := collection.ReplaceOne(ctx,
		bson.M{"_id": disc.ID, "tenantId": disc.TenantID},
		disc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("disclosure put failed: %w", err)
	}

	return nil
}

// Get returns a tenant's disclosure by id.
func (s *Store) Get(ctx context.Context, tenantID, id string) (*tenant.Disclosure, error) {
	collection := s.mongoClient.Database().Collection(disclosureCollection)

	disc := &tenant.Disclosure{}

	err := collection.FindOne(ctx, bson.M{"_id": id, "tenantId": tenantID}).Decode(disc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exchange.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("disclosure find failed: %w", err)
	}

	return disc, nil
}

// List returns all disclosures of a tenant.
func (s *Store) List(ctx context.Context, tenantID string) ([]*tenant.Disclosure, error) {
	collection := s.mongoClient.Database().Collection(disclosureCollection)

	cursor, err := collection.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("disclosure list failed: %w", err)
	}

	defer cursor.Close(ctx) //nolint: errcheck

	var discs []*tenant.Disclosure
	if err = cursor.All(ctx, &discs); err != nil {
		return nil, fmt.Errorf("disclosure list decode failed: %w", err)
	}

	return discs, nil
}
