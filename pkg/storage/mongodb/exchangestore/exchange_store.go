/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchangestore

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
	exchangeCollection = "exchanges"
)

type exchangeDocument struct {
	ID                    primitive.ObjectID        `bson:"_id,omitempty"`
	TenantID              string                    `bson:"tenantId"`
	DisclosureID          string                    `bson:"disclosureId"`
	Type                  exchange.Type             `bson:"type"`
	ProtocolMetadata      exchange.ProtocolMetadata `bson:"protocolMetadata"`
	IdentityMatcherValues []string                  `bson:"identityMatcherValues,omitempty"`
	PresentationID        string                    `bson:"presentationId,omitempty"`
	DisclosureConsentedAt *time.Time                `bson:"disclosureConsentedAt,omitempty"`
	OfferHashes           []string                  `bson:"offerHashes,omitempty"`
	CredentialTypes       []string                  `bson:"credentialTypes,omitempty"`
	PushDelegate          *exchange.PushDelegate    `bson:"pushDelegate,omitempty"`
	Err                   string                    `bson:"err,omitempty"`
	Events                []exchange.StateEvent     `bson:"events"`
	CreatedAt             time.Time                 `bson:"createdAt"`
}

// Store manages exchanges in mongodb.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates exchange Store.
func New(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Create inserts a new exchange document and returns its generated id.
func (s *Store) Create(ctx context.Context, ex *exchange.Exchange) (string, error) {
	collection := s.mongoClient.Database().Collection(exchangeCollection)

	doc := toDocument(ex)
	if doc.Events == nil {
		doc.Events = []exchange.StateEvent{}
	}

	result, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("exchange insert failed: %w", err)
	}

	id := result.InsertedID.(primitive.ObjectID) //nolint: errcheck

	return id.Hex(), nil
}

// Get returns the exchange by id.
func (s *Store) Get(ctx context.Context, strID string) (*exchange.Exchange, error) {
	collection := s.mongoClient.Database().Collection(exchangeCollection)

	id, err := idFromString(strID)
	if err != nil {
		return nil, exchange.ErrDataNotFound
	}

	doc := &exchangeDocument{}

	err = collection.FindOne(ctx, bson.M{"_id": id}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exchange.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("exchange find failed: %w", err)
	}

	return fromDocument(doc), nil
}

// ClaimPresentation atomically stamps the presentation id on the exchange and
// appends the DISCLOSURE_RECEIVED event. The conditional filter makes exactly
// one concurrent submission per presentation id win: the write matches only
// when the exchange does not already carry this presentation id and has not
// reached a terminal success state.
func (s *Store) ClaimPresentation(
	ctx context.Context,
	strID, presentationID string,
	at time.Time,
) (*exchange.Exchange, error) {
	collection := s.mongoClient.Database().Collection(exchangeCollection)

	id, err := idFromString(strID)
	if err != nil {
		return nil, exchange.ErrDataNotFound
	}

	filter := bson.M{
		"_id":            id,
		"presentationId": bson.M{"$ne": presentationID},
		"events.state": bson.M{
			"$nin": []exchange.State{exchange.StateComplete, exchange.StateIdentified},
		},
	}

	update := bson.M{
		"$set": bson.M{"presentationId": presentationID},
		"$push": bson.M{"events": exchange.StateEvent{
			State:     exchange.StateDisclosureReceived,
			Timestamp: at,
		}},
	}

	doc := &exchangeDocument{}

	err = collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the exchange is missing or the claim lost; look once more to
		// tell the two apart.
		if _, getErr := s.Get(ctx, strID); getErr != nil {
			return nil, getErr
		}

		return nil, exchange.ErrPresentationClaimed
	}

	if err != nil {
		return nil, fmt.Errorf("exchange claim failed: %w", err)
	}

	return fromDocument(doc), nil
}

// AppendEvent appends one state event to the exchange history.
func (s *Store) AppendEvent(ctx context.Context, strID string, state exchange.State, at time.Time) error {
	collection := s.mongoClient.Database().Collection(exchangeCollection)

	id, err := idFromString(strID)
	if err != nil {
		return exchange.ErrDataNotFound
	}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"events": exchange.StateEvent{State: state, Timestamp: at}},
	})
	if err != nil {
		return fmt.Errorf("exchange event append failed: %w", err)
	}

	if result.MatchedCount == 0 {
		return exchange.ErrDataNotFound
	}

	return nil
}

// SetConsentedAt stamps the disclosure consent timestamp once; later calls
// leave the original value in place.
func (s *Store) SetConsentedAt(ctx context.Context, strID string, at time.Time) error {
	collection := s.mongoClient.Database().Collection(exchangeCollection)

	id, err := idFromString(strID)
	if err != nil {
		return exchange.ErrDataNotFound
	}

	_, err = collection.UpdateOne(ctx, bson.M{
		"_id":                   id,
		"disclosureConsentedAt": bson.M{"$exists": false},
	}, bson.M{
		"$set": bson.M{"disclosureConsentedAt": at},
	})
	if err != nil {
		return fmt.Errorf("exchange consent stamp failed: %w", err)
	}

	return nil
}

// SetError overwrites the exchange error message and releases the presentation
// claim, letting the holder resubmit the same presentation after a transient
// downstream failure.
func (s *Store) SetError(ctx context.Context, strID, errMsg string) error {
	collection := s.mongoClient.Database().Collection(exchangeCollection)

	id, err := idFromString(strID)
	if err != nil {
		return exchange.ErrDataNotFound
	}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":   bson.M{"err": errMsg},
		"$unset": bson.M{"presentationId": ""},
	})
	if err != nil {
		return fmt.Errorf("exchange error update failed: %w", err)
	}

	if result.MatchedCount == 0 {
		return exchange.ErrDataNotFound
	}

	return nil
}

// ListByDisclosure returns all exchanges of a tenant under one disclosure.
func (s *Store) ListByDisclosure(ctx context.Context, tenantID, disclosureID string) ([]*exchange.Exchange, error) {
	collection := s.mongoClient.Database().Collection(exchangeCollection)

	cursor, err := collection.Find(ctx, bson.M{
		"tenantId":     tenantID,
		"disclosureId": disclosureID,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange list failed: %w", err)
	}

	defer cursor.Close(ctx) //nolint: errcheck

	var docs []*exchangeDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("exchange list decode failed: %w", err)
	}

	exchanges := make([]*exchange.Exchange, len(docs))
	for i, doc := range docs {
		exchanges[i] = fromDocument(doc)
	}

	return exchanges, nil
}

func idFromString(strID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("exchange invalid id(%s): %w", strID, err)
	}

	return id, nil
}

func toDocument(ex *exchange.Exchange) *exchangeDocument {
	return &exchangeDocument{
		TenantID:              ex.TenantID,
		DisclosureID:          ex.DisclosureID,
		Type:                  ex.Type,
		ProtocolMetadata:      ex.ProtocolMetadata,
		IdentityMatcherValues: ex.IdentityMatcherValues,
		PresentationID:        ex.PresentationID,
		DisclosureConsentedAt: ex.DisclosureConsentedAt,
		OfferHashes:           ex.OfferHashes,
		CredentialTypes:       ex.CredentialTypes,
		PushDelegate:          ex.PushDelegate,
		Err:                   ex.Err,
		Events:                ex.Events,
		CreatedAt:             ex.CreatedAt,
	}
}

func fromDocument(doc *exchangeDocument) *exchange.Exchange {
	return &exchange.Exchange{
		ID:                    doc.ID.Hex(),
		TenantID:              doc.TenantID,
		DisclosureID:          doc.DisclosureID,
		Type:                  doc.Type,
		ProtocolMetadata:      doc.ProtocolMetadata,
		IdentityMatcherValues: doc.IdentityMatcherValues,
		PresentationID:        doc.PresentationID,
		DisclosureConsentedAt: doc.DisclosureConsentedAt,
		OfferHashes:           doc.OfferHashes,
		CredentialTypes:       doc.CredentialTypes,
		PushDelegate:          doc.PushDelegate,
		Err:                   doc.Err,
		Events:                doc.Events,
		CreatedAt:             doc.CreatedAt,
	}
}
