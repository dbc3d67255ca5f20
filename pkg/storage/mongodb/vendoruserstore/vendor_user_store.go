/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vendoruserstore

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
	mappingCollection = "vendor_user_mappings"
)

type mappingDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	TenantID     string             `bson:"tenantId"`
	VendorUserID string             `bson:"vendorUserId"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// Store manages vendor user mappings in mongodb. One document per
// (tenantId, vendorUserId); the anonymous mapping id never changes once
// created.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates vendor user mapping Store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// EnsureIndexes creates the unique index the upsert relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	collection := s.mongoClient.Database().Collection(mappingCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "vendorUserId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mapping index create failed: %w", err)
	}

	return nil
}

// Upsert returns the mapping for (tenantID, vendorUserID), creating it on
// first identification. The $setOnInsert update keeps repeat identifications
// from touching the original document.
func (s *Store) Upsert(ctx context.Context, tenantID, vendorUserID string) (*exchange.VendorUserMapping, error) {
	collection := s.mongoClient.Database().Collection(mappingCollection)

	doc := &mappingDocument{}

	err := collection.FindOneAndUpdate(ctx,
		bson.M{"tenantId": tenantID, "vendorUserId": vendorUserID},
		bson.M{"$setOnInsert": bson.M{
			"tenantId":     tenantID,
			"vendorUserId": vendorUserID,
			"createdAt":    time.Now(),
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("mapping upsert failed: %w", err)
	}

	return fromDocument(doc), nil
}

// GetByID returns a tenant's mapping by its anonymous id.
func (s *Store) GetByID(ctx context.Context, tenantID, strID string) (*exchange.VendorUserMapping, error) {
	collection := s.mongoClient.Database().Collection(mappingCollection)

	id, err := primitive.ObjectIDFromHex(strID)
	if err != nil {
		return nil, exchange.ErrDataNotFound
	}

	doc := &mappingDocument{}

	err = collection.FindOne(ctx, bson.M{"_id": id, "tenantId": tenantID}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exchange.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("mapping find failed: %w", err)
	}

	return fromDocument(doc), nil
}

func fromDocument(doc *mappingDocument) *exchange.VendorUserMapping {
	return &exchange.VendorUserMapping{
		ID:           doc.ID.Hex(),
		TenantID:     doc.TenantID,
		VendorUserID: doc.VendorUserID,
		CreatedAt:    doc.CreatedAt,
	}
}
