/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchange

import (
	"errors"
	"time"
)

var (
	// ErrDataNotFound is returned by stores when no document matches.
	ErrDataNotFound = errors.New("data not found")

	// ErrPresentationClaimed is returned by the exchange store when the
	// conditional claim write loses: the exchange already bears this
	// presentation id or already reached a terminal success state.
	ErrPresentationClaimed = errors.New("presentation already claimed for exchange")
)

// Type separates inspection exchanges from issuing (identification) ones.
type Type string

const (
	TypeDisclosure Type = "DISCLOSURE"
	TypeIssuing    Type = "ISSUING"
)

// Protocol is the submission protocol variant an exchange is bound to.
type Protocol string

const (
	// ProtocolDirect is a plain submit-presentation POST carrying the
	// exchange id in the body.
	ProtocolDirect Protocol = "DIRECT"
	// ProtocolSIOP is an OIDC-SIOP response; correlation runs through the
	// state claim and the submission definition_id.
	ProtocolSIOP Protocol = "OIDC_SIOP"
)

// ProtocolMetadata carries the protocol variant plus its correlation data.
type ProtocolMetadata struct {
	Protocol    Protocol `bson:"protocol" json:"protocol"`
	Nonce       string   `bson:"nonce,omitempty" json:"nonce,omitempty"`
	RedirectURI string   `bson:"redirectUri,omitempty" json:"redirectUri,omitempty"`
	// HolderDID, when set, pins the expected signer of the presentation.
	HolderDID string `bson:"holderDid,omitempty" json:"holderDid,omitempty"`
}

// PushDelegate is the holder-app push target attached to an exchange.
type PushDelegate struct {
	PushToken string `bson:"pushToken" json:"pushToken"`
	PushURL   string `bson:"pushUrl" json:"pushUrl"`
}

// StateEvent is one entry of the append-only exchange history.
type StateEvent struct {
	State     State     `bson:"state" json:"state"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Exchange is the unit of protocol state: one presentation/identification
// attempt against a disclosure. Events are append-only and never truncated;
// the current state is the last event.
type Exchange struct {
	ID                    string            `bson:"_id,omitempty" json:"id"`
	TenantID              string            `bson:"tenantId" json:"tenantId"`
	DisclosureID          string            `bson:"disclosureId" json:"disclosureId"`
	Type                  Type              `bson:"type" json:"type"`
	ProtocolMetadata      ProtocolMetadata  `bson:"protocolMetadata" json:"protocolMetadata"`
	IdentityMatcherValues []string          `bson:"identityMatcherValues,omitempty" json:"identityMatcherValues,omitempty"`
	PresentationID        string            `bson:"presentationId,omitempty" json:"presentationId,omitempty"`
	DisclosureConsentedAt *time.Time        `bson:"disclosureConsentedAt,omitempty" json:"disclosureConsentedAt,omitempty"`
	OfferHashes           []string          `bson:"offerHashes,omitempty" json:"offerHashes,omitempty"`
	CredentialTypes       []string          `bson:"credentialTypes,omitempty" json:"credentialTypes,omitempty"`
	PushDelegate          *PushDelegate     `bson:"pushDelegate,omitempty" json:"pushDelegate,omitempty"`
	Err                   string            `bson:"err,omitempty" json:"err,omitempty"`
	Events                []StateEvent      `bson:"events" json:"events"`
	CreatedAt             time.Time         `bson:"createdAt" json:"createdAt"`
}

// CurrentState returns the last event's state, or StateNew for a fresh record.
func (e *Exchange) CurrentState() State {
	if len(e.Events) == 0 {
		return StateNew
	}

	return e.Events[len(e.Events)-1].State
}

// DisclosureComplete reports whether a presentation made it through checks.
func (e *Exchange) DisclosureComplete() bool {
	for _, ev := range e.Events {
		if ev.State == StateDisclosureChecked {
			return true
		}
	}

	return false
}

// Complete reports whether the exchange reached a terminal success state.
func (e *Exchange) Complete() bool {
	s := e.CurrentState()

	return s == StateComplete || s == StateIdentified
}

// VendorUserMapping binds an internal anonymous subject id to a vendor user
// id within a tenant. Exactly one row per (tenantId, vendorUserId); the
// internal id is reused on every re-identification.
type VendorUserMapping struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	TenantID     string    `bson:"tenantId" json:"tenantId"`
	VendorUserID string    `bson:"vendorUserId" json:"vendorUserId"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
