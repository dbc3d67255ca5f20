/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldExchangeID     = "exchangeID"
	FieldDisclosureID   = "disclosureID"
	FieldTenantID       = "tenantID"
	FieldTenantDID      = "tenantDID"
	FieldPresentationID = "presentationID"
	FieldVendorEndpoint = "vendorEndpoint"
	FieldVendorUserID   = "vendorUserID"
	FieldState          = "state"
	FieldWebhookURL     = "webhookURL"
	FieldCredentialType = "credentialType"
	FieldEvent          = "event"
	FieldUserLogLevel   = "userLogLevel"
	FieldAddress        = "address"
)

// WithExchangeID sets the ExchangeID field.
func WithExchangeID(exchangeID string) zap.Field {
	return zap.String(FieldExchangeID, exchangeID)
}

// WithDisclosureID sets the DisclosureID field.
func WithDisclosureID(disclosureID string) zap.Field {
	return zap.String(FieldDisclosureID, disclosureID)
}

// WithTenantID sets the TenantID field.
func WithTenantID(tenantID string) zap.Field {
	return zap.String(FieldTenantID, tenantID)
}

// WithTenantDID sets the TenantDID field.
func WithTenantDID(tenantDID string) zap.Field {
	return zap.String(FieldTenantDID, tenantDID)
}

// WithPresentationID sets the PresentationID field.
func WithPresentationID(presentationID string) zap.Field {
	return zap.String(FieldPresentationID, presentationID)
}

// WithVendorEndpoint sets the VendorEndpoint field.
func WithVendorEndpoint(vendorEndpoint string) zap.Field {
	return zap.String(FieldVendorEndpoint, vendorEndpoint)
}

// WithVendorUserID sets the VendorUserID field. The value is logged as-is,
// callers pass the lower-cased form stored in the mapping.
func WithVendorUserID(vendorUserID string) zap.Field {
	return zap.String(FieldVendorUserID, vendorUserID)
}

// WithState sets the exchange State field.
func WithState(state string) zap.Field {
	return zap.String(FieldState, state)
}

// WithWebhookURL sets the WebhookURL field.
func WithWebhookURL(webhookURL string) zap.Field {
	return zap.String(FieldWebhookURL, webhookURL)
}

// WithCredentialType sets the CredentialType field.
func WithCredentialType(credentialType string) zap.Field {
	return zap.String(FieldCredentialType, credentialType)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithAddress sets the Address field.
func WithAddress(address string) zap.Field {
	return zap.String(FieldAddress, address)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
