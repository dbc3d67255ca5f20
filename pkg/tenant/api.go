/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tenant

import (
	"fmt"
	"time"
)

// ID defines type for tenant ID.
type ID = string

// VendorEndpoint selects which vendor-facing webhook a disclosure drives.
type VendorEndpoint string

const (
	VendorEndpointReceiveCheckedCredentials       VendorEndpoint = "RECEIVE_CHECKED_CREDENTIALS"
	VendorEndpointReceiveUncheckedCredentials     VendorEndpoint = "RECEIVE_UNCHECKED_CREDENTIALS"
	VendorEndpointIssuingIdentification           VendorEndpoint = "ISSUING_IDENTIFICATION"
	VendorEndpointIntegratedIssuingIdentification VendorEndpoint = "INTEGRATED_ISSUING_IDENTIFICATION"
)

// IsIdentification reports whether the endpoint belongs to an issuing flow.
func (e VendorEndpoint) IsIdentification() bool {
	return e == VendorEndpointIssuingIdentification || e == VendorEndpointIntegratedIssuingIdentification
}

// MatcherRule is the comparison strategy of one identity matcher rule.
type MatcherRule string

const (
	// MatcherRulePick compares a single resolved scalar to the candidate value.
	MatcherRulePick MatcherRule = "pick"
	// MatcherRuleAll matches when any element of a resolved array equals the
	// candidate value.
	MatcherRuleAll MatcherRule = "all"
	// MatcherRuleEqual is strict single-value equality, symmetric with pick.
	MatcherRuleEqual MatcherRule = "equal"
)

// Validate rejects unknown rule strings at configuration load time.
func (r MatcherRule) Validate() error {
	switch r {
	case MatcherRulePick, MatcherRuleAll, MatcherRuleEqual:
		return nil
	default:
		return fmt.Errorf(`Credential Agent only supports "pick" or "all" for "identityMatchers.rule"`)
	}
}

// IdentityMatcherRule binds one JSONPath lookup to a candidate value slot.
type IdentityMatcherRule struct {
	ValueIndex int         `json:"valueIndex" bson:"valueIndex"`
	Path       []string    `json:"path" bson:"path"`
	Rule       MatcherRule `json:"rule" bson:"rule"`
}

// IdentityMatchers is the vendor-configured identification rule set.
type IdentityMatchers struct {
	Rules             []IdentityMatcherRule `json:"rules" bson:"rules"`
	VendorUserIDIndex int                   `json:"vendorUserIdIndex" bson:"vendorUserIdIndex"`
}

// IdentificationMethodPreauth marks disclosures whose holders are expected to
// present a vendor origin context obtained out of band.
const IdentificationMethodPreauth = "preauth"

// Disclosure is a tenant policy describing what a presentation exchange must
// satisfy. Immutable once an exchange references it, except for
// ConfigurationType which the engine stamps.
type Disclosure struct {
	ID                     string            `json:"id" bson:"_id"`
	TenantID               string            `json:"tenantId" bson:"tenantId"`
	VendorEndpoint         VendorEndpoint    `json:"vendorEndpoint" bson:"vendorEndpoint"`
	VendorDisclosureID     string            `json:"vendorDisclosureId,omitempty" bson:"vendorDisclosureId,omitempty"`
	Types                  []string          `json:"types" bson:"types"`
	IdentityMatchers       *IdentityMatchers `json:"identityMatchers,omitempty" bson:"identityMatchers,omitempty"`
	IdentificationMethods  []string          `json:"identificationMethods,omitempty" bson:"identificationMethods,omitempty"`
	SendPushOnVerification bool              `json:"sendPushOnVerification" bson:"sendPushOnVerification"`
	AuthTokensExpireIn     time.Duration     `json:"authTokensExpireIn,omitempty" bson:"authTokensExpireIn,omitempty"`
	DeactivationDate       *time.Time        `json:"deactivationDate,omitempty" bson:"deactivationDate,omitempty"`
	Feed                   bool              `json:"feed" bson:"feed"`
	ConfigurationType      string            `json:"configurationType,omitempty" bson:"configurationType,omitempty"`
}

// Validate checks the parts of a disclosure that are configuration errors
// rather than holder input errors.
func (d *Disclosure) Validate() error {
	switch d.VendorEndpoint {
	case VendorEndpointReceiveCheckedCredentials, VendorEndpointReceiveUncheckedCredentials,
		VendorEndpointIssuingIdentification, VendorEndpointIntegratedIssuingIdentification:
	default:
		return fmt.Errorf("unsupported vendorEndpoint %q", d.VendorEndpoint)
	}

	if d.IdentityMatchers != nil {
		for _, rule := range d.IdentityMatchers.Rules {
			if err := rule.Rule.Validate(); err != nil {
				return err
			}
		}
	}

	return nil
}

// RequiresPreauth reports whether preauth is among the identification methods.
func (d *Disclosure) RequiresPreauth() bool {
	for _, m := range d.IdentificationMethods {
		if m == IdentificationMethodPreauth {
			return true
		}
	}

	return false
}

// Deactivated reports whether the disclosure is past its deactivation date.
func (d *Disclosure) Deactivated(now time.Time) bool {
	return d.DeactivationDate != nil && d.DeactivationDate.Before(now)
}

// WebhookAuthType selects the auth scheme applied to vendor webhook calls.
type WebhookAuthType string

const (
	WebhookAuthTypeBearer WebhookAuthType = "bearer"
	WebhookAuthTypeOAuth2 WebhookAuthType = "oauth2"
	WebhookAuthTypeMTLS   WebhookAuthType = "mtls"
)

// WebhookAuth holds the credentials for exactly one auth scheme.
type WebhookAuth struct {
	Type WebhookAuthType `json:"type"`

	BearerToken string `json:"bearerToken,omitempty"`

	OAuth2TokenURL     string   `json:"oauth2TokenUrl,omitempty"`
	OAuth2ClientID     string   `json:"oauth2ClientId,omitempty"`
	OAuth2ClientSecret string   `json:"oauth2ClientSecret,omitempty"`
	OAuth2Scopes       []string `json:"oauth2Scopes,omitempty"`

	MTLSCertPEM string `json:"mtlsCertPem,omitempty"`
	MTLSKeyPEM  string `json:"mtlsKeyPem,omitempty"`
}

// KeyPurpose restricts what a tenant key may sign.
type KeyPurpose string

const (
	KeyPurposeExchanges KeyPurpose = "EXCHANGES"
	KeyPurposeIssuing   KeyPurpose = "ISSUING"
)

// Key is a tenant secp256k1 key pair held by the agent.
type Key struct {
	ID         string       `json:"id"`
	Purposes   []KeyPurpose `json:"purposes"`
	PrivateKey []byte       `json:"privateKey"`
}

// HasPurpose reports whether the key is approved for the given purpose.
func (k *Key) HasPurpose(p KeyPurpose) bool {
	for _, kp := range k.Purposes {
		if kp == p {
			return true
		}
	}

	return false
}

// Tenant is one organization operating the agent as issuer/inspector.
type Tenant struct {
	ID             string       `json:"id"`
	DID            string       `json:"did"`
	VendorOrgID    string       `json:"vendorOrganizationId,omitempty"`
	Keys           []*Key       `json:"keys"`
	WebhookURL     string       `json:"webhookUrl,omitempty"`
	WebhookAuth    *WebhookAuth `json:"webhookAuth,omitempty"`
	WebhookVersion int          `json:"webhookVersion,omitempty"`
}

// KeyFor returns the first tenant key approved for the purpose.
func (t *Tenant) KeyFor(p KeyPurpose) (*Key, error) {
	for _, k := range t.Keys {
		if k.HasPurpose(p) {
			return k, nil
		}
	}

	return nil, fmt.Errorf("tenant %s has no key with purpose %s", t.ID, p)
}
