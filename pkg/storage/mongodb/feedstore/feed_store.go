/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package feedstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velocitynetwork/credential-agent/pkg/service/exchange"
	"github.com/velocitynetwork/credential-agent/pkg/storage/mongodb"
)

const (
	feedCollection = "feeds"
)

// Feed is one credential feed registration of an identified user.
type Feed struct {
	ID               string     `bson:"-" json:"id"`
	TenantID         string     `bson:"tenantId" json:"tenantId"`
	VendorUserID     string     `bson:"vendorUserId" json:"vendorUserId"`
	DisclosureID     string     `bson:"disclosureId" json:"disclosureId"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	LatestActivityAt *time.Time `bson:"latestActivityAt,omitempty" json:"latestActivityAt,omitempty"`
}

type feedDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	TenantID         string             `bson:"tenantId"`
	VendorUserID     string             `bson:"vendorUserId"`
	DisclosureID     string             `bson:"disclosureId"`
	CreatedAt        time.Time          `bson:"createdAt"`
	LatestActivityAt *time.Time         `bson:"latestActivityAt,omitempty"`
}

// Store manages credential feeds in mongodb.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates feed Store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Create registers a feed for an identified vendor user.
func (s *Store) Create(ctx context.Context, feed *Feed) (string, error) {
	collection := s.mongoClient.Database().Collection(feedCollection)

	if feed.CreatedAt.IsZero() {
		feed.CreatedAt = time.Now()
	}

	result, err := collection.InsertOne(ctx, feed)
	if err != nil {
		return "", fmt.Errorf("feed insert failed: %w", err)
	}

	id := result.InsertedID.(primitive.ObjectID) //nolint: errcheck

	return id.Hex(), nil
}

// TouchLatest stamps the activity timestamp on the user's most recent feed.
func (s *Store) TouchLatest(ctx context.Context, tenantID, vendorUserID string, at time.Time) error {
	collection := s.mongoClient.Database().Collection(feedCollection)

	err := collection.FindOneAndUpdate(ctx,
		bson.M{"tenantId": tenantID, "vendorUserId": vendorUserID},
		bson.M{"$set": bson.M{"latestActivityAt": at}},
		options.FindOneAndUpdate().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return exchange.ErrDataNotFound
	}

	if err != nil {
		return fmt.Errorf("feed touch failed: %w", err)
	}

	return nil
}

// ListByUser returns all feeds of a vendor user, newest first.
func (s *Store) ListByUser(ctx context.Context, tenantID, vendorUserID string) ([]*Feed, error) {
	collection := s.mongoClient.Database().Collection(feedCollection)

	cursor, err := collection.Find(ctx,
		bson.M{"tenantId": tenantID, "vendorUserId": vendorUserID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("feed list failed: %w", err)
	}

	defer cursor.Close(ctx) //nolint: errcheck

	var docs []*feedDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("feed list decode failed: %w", err)
	}

	feeds := make([]*Feed, len(docs))
	for i, doc := range docs {
		feeds[i] = &Feed{
			ID:               doc.ID.Hex(),
			TenantID:         doc.TenantID,
			VendorUserID:     doc.VendorUserID,
			DisclosureID:     doc.DisclosureID,
			CreatedAt:        doc.CreatedAt,
			LatestActivityAt: doc.LatestActivityAt,
		}
	}

	return feeds, nil
}
