/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vendorwebhook

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/velocitynetwork/credential-agent/internal/logfields"
	"github.com/velocitynetwork/credential-agent/pkg/doc/vc"
	"github.com/velocitynetwork/credential-agent/pkg/service/credentialcheck"
	"github.com/velocitynetwork/credential-agent/pkg/tenant"
)

var logger = log.New("vendorwebhook-service")

const (
	pathReceiveCheckedCredentials   = "/inspection/receive-checked-credentials"
	pathReceiveUncheckedCredentials = "/inspection/receive-unchecked-credentials"
	pathIdentify                    = "/issuing/identify"
)

const (
	typeEmail      = "EmailV1.0"
	typePhone      = "PhoneV1.0"
	typeIDDocument = "IdDocumentV1.0"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the dispatcher dependencies.
type Config struct {
	HTTPClient httpClient

	// DefaultVendorBaseURL serves tenants that did not configure their own
	// webhook URL.
	DefaultVendorBaseURL string

	// RequestTimeout bounds clients the dispatcher builds itself (oauth2,
	// mTLS). The injected HTTPClient carries its own timeout.
	RequestTimeout time.Duration
}

// Service delivers exchange outcomes to vendor webhooks. One call per
// exchange transition, no internal retries.
type Service struct {
	httpClient           httpClient
	defaultVendorBaseURL string
	requestTimeout       time.Duration
}

// New creates the webhook dispatcher.
func New(cfg *Config) *Service {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Service{
		httpClient:           cfg.HTTPClient,
		defaultVendorBaseURL: cfg.DefaultVendorBaseURL,
		requestTimeout:       timeout,
	}
}

// SendDisclosure pushes a completed (checked or unchecked) presentation to
// the vendor. The response body is not interpreted beyond its status class.
func (s *Service) SendDisclosure(
	ctx context.Context,
	tn *tenant.Tenant,
	disc *tenant.Disclosure,
	event *DisclosureEvent,
) error {
	path := pathReceiveCheckedCredentials
	includeChecks := true

	if disc.VendorEndpoint == tenant.VendorEndpointReceiveUncheckedCredentials {
		path = pathReceiveUncheckedCredentials
		includeChecks = false
	}

	payload := map[string]interface{}{
		"exchangeId":             event.ExchangeID,
		"presentationId":         event.PresentationID,
		"tenantDID":              tn.DID,
		"tenantId":               tn.ID,
		"sendPushOnVerification": event.SendPushOnVerification,
		"paymentRequired":        event.PaymentRequired,
		"rawCredentials":         rawCredentialEntries(event.Credentials, event.RawCredentials),
		"credentials":            credentialEntries(event.Credentials, event.Checks, includeChecks),
	}

	if event.VendorDisclosureID != "" {
		payload["vendorDisclosureId"] = event.VendorDisclosureID
	}

	if tn.VendorOrgID != "" {
		payload["vendorOrganizationId"] = tn.VendorOrgID
	}

	if event.VendorOriginContext != "" {
		payload["vendorOriginContext"] = event.VendorOriginContext
	}

	_, err := s.post(ctx, tn, path, payload)

	return err
}

// Identify asks the vendor to resolve the presented identity credentials to
// one of its user accounts. Credentials are grouped into the bucket layout
// vendors consume; the entry shape depends on the tenant's webhook version.
func (s *Service) Identify(
	ctx context.Context,
	tn *tenant.Tenant,
	event *IdentifyEvent,
) (*IdentifyResult, error) {
	payload := identifyBuckets(event.Credentials, event.Checks, tn.WebhookVersion)

	payload["exchangeId"] = event.ExchangeID
	payload["tenantDID"] = tn.DID
	payload["tenantId"] = tn.ID

	if event.VendorOriginContext != "" {
		payload["vendorOriginContext"] = event.VendorOriginContext
	}

	respBytes, err := s.post(ctx, tn, pathIdentify, payload)
	if err != nil {
		return nil, err
	}

	var result IdentifyResult
	if err = json.Unmarshal(respBytes, &result); err != nil {
		return nil, fmt.Errorf("unmarshal identify response: %w", err)
	}

	return &result, nil
}

func (s *Service) post(
	ctx context.Context,
	tn *tenant.Tenant,
	path string,
	payload interface{},
) ([]byte, error) {
	endpoint, err := s.resolveURL(tn, path)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	client, err := s.clientFor(ctx, tn, req)
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "calling vendor webhook", logfields.WithWebhookURL(endpoint))

	resp, err := client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warnc(ctx, "failed to close webhook response body", log.WithError(closeErr))
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return respBytes, nil
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		return nil, &RejectionError{StatusCode: resp.StatusCode, Message: string(respBytes)}
	default:
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}
}

func (s *Service) resolveURL(tn *tenant.Tenant, path string) (string, error) {
	base := tn.WebhookURL
	if base == "" {
		base = s.defaultVendorBaseURL
	}

	if base == "" {
		return "", fmt.Errorf("tenant %s has no webhook url and no default is configured", tn.ID)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse webhook url for tenant %s: %w", tn.ID, err)
	}

	return u.JoinPath(path).String(), nil
}

// clientFor applies exactly one auth scheme per call. Bearer rides on the
// shared client; oauth2 and mTLS need clients of their own.
func (s *Service) clientFor(ctx context.Context, tn *tenant.Tenant, req *http.Request) (httpClient, error) {
	auth := tn.WebhookAuth
	if auth == nil {
		return s.httpClient, nil
	}

	switch auth.Type {
	case tenant.WebhookAuthTypeBearer:
		req.Header.Set("Authorization", "Bearer "+auth.BearerToken)

		return s.httpClient, nil
	case tenant.WebhookAuthTypeOAuth2:
		cc := clientcredentials.Config{
			TokenURL:     auth.OAuth2TokenURL,
			ClientID:     auth.OAuth2ClientID,
			ClientSecret: auth.OAuth2ClientSecret,
			Scopes:       auth.OAuth2Scopes,
		}

		return cc.Client(ctx), nil
	case tenant.WebhookAuthTypeMTLS:
		cert, err := tls.X509KeyPair([]byte(auth.MTLSCertPEM), []byte(auth.MTLSKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("load mtls key pair for tenant %s: %w", tn.ID, err)
		}

		return &http.Client{
			Timeout: s.requestTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					Certificates: []tls.Certificate{cert},
					MinVersion:   tls.VersionTLS12,
				},
			},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported webhook auth type %q for tenant %s", auth.Type, tn.ID)
	}
}

func rawCredentialEntries(credentials []*vc.Credential, rawCredentials []string) []interface{} {
	entries := make([]interface{}, 0, len(rawCredentials))

	for i, raw := range rawCredentials {
		id := ""
		if i < len(credentials) {
			id = credentials[i].ID
		}

		entries = append(entries, map[string]interface{}{
			"id":            id,
			"rawCredential": raw,
		})
	}

	return entries
}

// credentialEntries renders full credential documents, attaching the check
// verdicts when the endpoint expects checked credentials.
func credentialEntries(
	credentials []*vc.Credential,
	checks []*credentialcheck.Checks,
	includeChecks bool,
) []interface{} {
	entries := make([]interface{}, 0, len(credentials))

	for i, cred := range credentials {
		entry := credentialDoc(cred)

		if includeChecks && i < len(checks) && checks[i] != nil {
			entry["credentialChecks"] = checks[i]
		}

		entries = append(entries, entry)
	}

	return entries
}

// identifyBuckets groups identity credentials the way vendors address them.
// Version 2 entries keep the credential envelope plus checks; version 1
// flattens credentialSubject fields onto the entry and drops id, type, and
// credentialChecks.
func identifyBuckets(
	credentials []*vc.Credential,
	checks []*credentialcheck.Checks,
	webhookVersion int,
) map[string]interface{} {
	buckets := map[string]interface{}{
		"emails":                []interface{}{},
		"phones":                []interface{}{},
		"emailCredentials":      []interface{}{},
		"phoneCredentials":      []interface{}{},
		"idDocumentCredentials": []interface{}{},
	}

	appendTo := func(key string, v interface{}) {
		buckets[key] = append(buckets[key].([]interface{}), v)
	}

	for i, cred := range credentials {
		var entry map[string]interface{}

		if webhookVersion >= 2 { //nolint:gomnd
			entry = map[string]interface{}{
				"id":                cred.ID,
				"type":              cred.Type,
				"credentialType":    firstConcreteType(cred),
				"credentialSubject": cred.CredentialSubject,
				"issuer":            cred.Issuer,
				"issuanceDate":      cred.IssuanceDate,
			}

			if i < len(checks) && checks[i] != nil {
				entry["credentialChecks"] = checks[i]
			}
		} else {
			entry = map[string]interface{}{
				"credentialType": firstConcreteType(cred),
				"issuer":         cred.Issuer,
				"issuanceDate":   cred.IssuanceDate,
			}

			for k, v := range cred.CredentialSubject {
				entry[k] = v
			}
		}

		switch {
		case cred.HasType(typeEmail):
			appendTo("emailCredentials", entry)

			if email, ok := cred.CredentialSubject["email"].(string); ok {
				appendTo("emails", email)
			}
		case cred.HasType(typePhone):
			appendTo("phoneCredentials", entry)

			if phone, ok := cred.CredentialSubject["phone"].(string); ok {
				appendTo("phones", phone)
			}
		case cred.HasType(typeIDDocument):
			appendTo("idDocumentCredentials", entry)
		}
	}

	return buckets
}

func credentialDoc(cred *vc.Credential) map[string]interface{} {
	doc := map[string]interface{}{}

	credBytes, err := json.Marshal(cred)
	if err == nil {
		_ = json.Unmarshal(credBytes, &doc) //nolint:errcheck
	}

	return doc
}

func firstConcreteType(cred *vc.Credential) string {
	for _, t := range cred.Type {
		if t != "VerifiableCredential" {
			return t
		}
	}

	return "VerifiableCredential"
}
