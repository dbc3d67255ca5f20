/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination exchange_service_mocks_test.go -package exchange_test -source=exchange_service.go

package exchange

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitynetwork/credential-agent/internal/logfields"
	"github.com/velocitynetwork/credential-agent/pkg/doc/jwt"
	"github.com/velocitynetwork/credential-agent/pkg/doc/vc"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/resterr"
	"github.com/velocitynetwork/credential-agent/pkg/service/credentialcheck"
	"github.com/velocitynetwork/credential-agent/pkg/service/identitymatcher"
	"github.com/velocitynetwork/credential-agent/pkg/service/presentation"
	"github.com/velocitynetwork/credential-agent/pkg/service/vendorwebhook"
	"github.com/velocitynetwork/credential-agent/pkg/tenant"
)

var logger = log.New("exchange-service")

const (
	defaultAuthTokenTTL = 7 * 24 * time.Hour
	defaultNonceTTL     = time.Hour
	nonceCreateAttempts = 3

	errMsgUserNotFound = "User Not Found"
)

type exchangeStore interface {
	Create(ctx context.Context, ex *Exchange) (string, error)
	Get(ctx context.Context, id string) (*Exchange, error)
	// ClaimPresentation atomically stamps the presentation id and appends
	// DISCLOSURE_RECEIVED, failing with ErrPresentationClaimed when the
	// exchange already bears this presentation id or reached a terminal
	// success state.
	ClaimPresentation(ctx context.Context, id, presentationID string, at time.Time) (*Exchange, error)
	AppendEvent(ctx context.Context, id string, state State, at time.Time) error
	SetConsentedAt(ctx context.Context, id string, at time.Time) error
	// SetError overwrites the error message and releases the presentation
	// claim so a client-driven resubmission of the same presentation can win
	// a fresh claim.
	SetError(ctx context.Context, id, errMsg string) error
	ListByDisclosure(ctx context.Context, tenantID, disclosureID string) ([]*Exchange, error)
}

type disclosureStore interface {
	Get(ctx context.Context, tenantID, id string) (*tenant.Disclosure, error)
}

type vendorUserStore interface {
	Upsert(ctx context.Context, tenantID, vendorUserID string) (*VendorUserMapping, error)
	GetByID(ctx context.Context, tenantID, id string) (*VendorUserMapping, error)
}

type feedStore interface {
	TouchLatest(ctx context.Context, tenantID, vendorUserID string, at time.Time) error
}

type nonceStore interface {
	SetIfNotExist(ctx context.Context, nonce, exchangeID string, ttl time.Duration) (bool, error)
}

type tenantRegistry interface {
	GetTenant(id tenant.ID) (*tenant.Tenant, error)
}

type presentationValidator interface {
	ValidateSubmission(rawVP string, binding *presentation.Binding,
		disc *tenant.Disclosure, now time.Time) (*presentation.Result, error)
}

type credentialChecker interface {
	Check(ctx context.Context, rawCredentials []string, credentials []*vc.Credential,
		holderDID string) ([]*credentialcheck.Checks, error)
	DeriveVerdict(results []*credentialcheck.Checks) *credentialcheck.Verdict
	GateIdentification(results []*credentialcheck.Checks) error
}

type identityMatcher interface {
	Match(matchers *tenant.IdentityMatchers, candidates []string,
		credentials []*vc.Credential) (string, error)
}

type webhook interface {
	SendDisclosure(ctx context.Context, tn *tenant.Tenant, disc *tenant.Disclosure,
		event *vendorwebhook.DisclosureEvent) error
	Identify(ctx context.Context, tn *tenant.Tenant,
		event *vendorwebhook.IdentifyEvent) (*vendorwebhook.IdentifyResult, error)
}

type pushSender interface {
	SendVerificationDone(ctx context.Context, issuerDID string, ex *Exchange) error
}

type metricsProvider interface {
	IncrementSubmission(exchangeType string)
	IncrementWebhookFailure()
}

// Config holds the orchestrator dependencies.
type Config struct {
	ExchangeStore   exchangeStore
	DisclosureStore disclosureStore
	VendorUserStore vendorUserStore
	FeedStore       feedStore
	NonceStore      nonceStore
	TenantRegistry  tenantRegistry

	PresentationValidator presentationValidator
	CredentialChecker     credentialChecker
	IdentityMatcher       identityMatcher
	Webhook               webhook
	Push                  pushSender
	Metrics               metricsProvider

	NonceTTL time.Duration
}

// Service is the exchange state machine: it owns the exchange lifecycle,
// guards concurrent submissions, sequences validation, checking, and
// identification, and dispatches the vendor webhook.
type Service struct {
	store           exchangeStore
	disclosureStore disclosureStore
	vendorUserStore vendorUserStore
	feedStore       feedStore
	nonceStore      nonceStore
	tenantRegistry  tenantRegistry

	validator presentationValidator
	checker   credentialChecker
	matcher   identityMatcher
	webhook   webhook
	push      pushSender
	metrics   metricsProvider

	nonceTTL time.Duration
}

// New creates the exchange state machine.
func New(cfg *Config) *Service {
	nonceTTL := cfg.NonceTTL
	if nonceTTL == 0 {
		nonceTTL = defaultNonceTTL
	}

	return &Service{
		store:           cfg.ExchangeStore,
		disclosureStore: cfg.DisclosureStore,
		vendorUserStore: cfg.VendorUserStore,
		feedStore:       cfg.FeedStore,
		nonceStore:      cfg.NonceStore,
		tenantRegistry:  cfg.TenantRegistry,
		validator:       cfg.PresentationValidator,
		checker:         cfg.CredentialChecker,
		matcher:         cfg.IdentityMatcher,
		webhook:         cfg.Webhook,
		push:            cfg.Push,
		metrics:         cfg.Metrics,
		nonceTTL:        nonceTTL,
	}
}

// SubmitRequest is one holder submission against an exchange.
type SubmitRequest struct {
	TenantID   string
	ExchangeID string
	RawVP      string

	// BearerToken is the inbound authorization token; required only for
	// feed-gated disclosures.
	BearerToken string
}

// SubmitResult is the success response of a submission.
type SubmitResult struct {
	Exchange *Exchange
	Token    string
}

// SubmitPresentation processes a disclosure (inspection) submission.
func (s *Service) SubmitPresentation(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	return s.submit(ctx, req, false)
}

// SubmitIdentification processes an identification (issuing) submission.
func (s *Service) SubmitIdentification(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	return s.submit(ctx, req, true)
}

//nolint:funlen,gocognit
func (s *Service) submit(ctx context.Context, req *SubmitRequest, identification bool) (*SubmitResult, error) {
	now := time.Now()

	ex, err := s.store.Get(ctx, req.ExchangeID)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.CodeExchangeNotFound,
				fmt.Errorf("exchange %s not found", req.ExchangeID)).
				WithComponent(resterr.ExchangeSvcComponent)
		}

		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "Get", err)
	}

	tn, err := s.tenantRegistry.GetTenant(ex.TenantID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.TenantRegistryComponent, "GetTenant", err)
	}

	disc, err := s.disclosureStore.Get(ctx, ex.TenantID, ex.DisclosureID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.DisclosureStoreComponent, "Get", err)
	}

	if disc.VendorEndpoint.IsIdentification() != identification {
		return nil, resterr.NewCustomError(resterr.CodePresentationInvalid,
			fmt.Errorf("disclosure %s does not support this operation", disc.ID)).
			WithComponent(resterr.ExchangeSvcComponent)
	}

	// Feed-gated disclosures authenticate the caller before any mutation.
	var feedMapping *VendorUserMapping

	if disc.Feed {
		feedMapping, err = s.verifyFeedAccess(ctx, tn, req.BearerToken, now)
		if err != nil {
			return nil, err
		}
	}

	result, err := s.validator.ValidateSubmission(req.RawVP, &presentation.Binding{
		ExchangeID: ex.ID,
		Nonce:      ex.ProtocolMetadata.Nonce,
		HolderDID:  ex.ProtocolMetadata.HolderDID,
	}, disc, now)
	if err != nil {
		s.recordFailure(ctx, ex, StateUnexpectedError, err)

		return nil, err
	}

	// Preauth disclosures fail closed before any webhook call.
	if disc.RequiresPreauth() && result.VendorOriginContext == "" {
		failErr := resterr.NewCustomError(resterr.CodePresentationRequestInvalid,
			fmt.Errorf("disclosure %s requires a vendor origin context", disc.ID)).
			WithComponent(resterr.ExchangeSvcComponent)

		s.recordFailure(ctx, ex, StateNotIdentified, failErr)

		return nil, failErr
	}

	// Idempotency guard: exactly one submission per presentation id wins.
	ex, err = s.store.ClaimPresentation(ctx, ex.ID, result.PresentationID, now)
	if err != nil {
		if errors.Is(err, ErrPresentationClaimed) {
			return nil, resterr.NewCustomError(resterr.CodePresentationDuplicate,
				fmt.Errorf("presentation %s already processed for exchange %s",
					result.PresentationID, req.ExchangeID)).
				WithComponent(resterr.ExchangeSvcComponent)
		}

		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "ClaimPresentation", err)
	}

	checks, err := s.checker.Check(ctx, result.RawCredentials, result.Credentials, result.HolderDID)
	if err != nil {
		s.recordFailure(ctx, ex, StateUnexpectedError, err)

		return nil, err
	}

	if err = s.advance(ctx, ex, StateDisclosureChecked, now); err != nil {
		return nil, err
	}

	// Consent is stamped exactly once, on first checked progression.
	if ex.DisclosureConsentedAt == nil {
		if err = s.store.SetConsentedAt(ctx, ex.ID, now); err != nil {
			return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "SetConsentedAt", err)
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementSubmission(string(ex.Type))
	}

	if identification {
		return s.completeIdentification(ctx, tn, disc, ex, result, checks, now)
	}

	return s.completeDisclosure(ctx, tn, disc, ex, result, checks, feedMapping, now)
}

//nolint:funlen
func (s *Service) completeDisclosure(
	ctx context.Context,
	tn *tenant.Tenant,
	disc *tenant.Disclosure,
	ex *Exchange,
	result *presentation.Result,
	checks []*credentialcheck.Checks,
	feedMapping *VendorUserMapping,
	now time.Time,
) (*SubmitResult, error) {
	verdict := s.checker.DeriveVerdict(checks)

	err := s.webhook.SendDisclosure(ctx, tn, disc, &vendorwebhook.DisclosureEvent{
		ExchangeID:             ex.ID,
		PresentationID:         result.PresentationID,
		VendorDisclosureID:     disc.VendorDisclosureID,
		SendPushOnVerification: disc.SendPushOnVerification,
		Credentials:            result.Credentials,
		RawCredentials:         result.RawCredentials,
		Checks:                 checks,
		PaymentRequired:        verdict.PaymentRequired,
		VendorOriginContext:    result.VendorOriginContext,
	})
	if err != nil {
		return nil, s.failFromWebhook(ctx, ex, err)
	}

	if err = s.advance(ctx, ex, StateComplete, now); err != nil {
		return nil, err
	}

	if disc.Feed && feedMapping != nil {
		if feedErr := s.feedStore.TouchLatest(ctx, tn.ID, feedMapping.VendorUserID, now); feedErr != nil {
			logger.Warnc(ctx, "feed touch failed", logfields.WithExchangeID(ex.ID), log.WithError(feedErr))
		}
	}

	// Past this point the exchange succeeded; push delivery failures are
	// logged by the sender and never change the response.
	if disc.SendPushOnVerification && ex.PushDelegate != nil {
		_ = s.push.SendVerificationDone(ctx, tn.DID, ex) //nolint:errcheck
	}

	subject := uuid.NewString()
	if feedMapping != nil {
		subject = feedMapping.ID
	}

	token, err := s.mintAccessToken(tn, disc, ex, subject, now)
	if err != nil {
		return nil, err
	}

	logger.Infoc(ctx, "disclosure exchange complete",
		logfields.WithExchangeID(ex.ID),
		logfields.WithTenantID(tn.ID),
		logfields.WithPresentationID(result.PresentationID))

	return &SubmitResult{Exchange: ex, Token: token}, nil
}

//nolint:funlen,gocognit
func (s *Service) completeIdentification(
	ctx context.Context,
	tn *tenant.Tenant,
	disc *tenant.Disclosure,
	ex *Exchange,
	result *presentation.Result,
	checks []*credentialcheck.Checks,
	now time.Time,
) (*SubmitResult, error) {
	if err := s.checker.GateIdentification(checks); err != nil {
		s.recordFailure(ctx, ex, StateNotIdentified, err)

		return nil, err
	}

	var vendorUserID string

	if disc.VendorEndpoint == tenant.VendorEndpointIntegratedIssuingIdentification {
		matched, err := s.matchIdentity(ctx, disc, ex, result.Credentials)
		if err != nil {
			if errors.Is(err, identitymatcher.ErrNoMatch) {
				failErr := resterr.NewCustomError(resterr.CodeIntegratedUserNotFound,
					errors.New(errMsgUserNotFound)).
					WithComponent(resterr.ExchangeSvcComponent)

				s.recordFailure(ctx, ex, StateNotIdentified, failErr)

				return nil, failErr
			}

			s.recordFailure(ctx, ex, StateUnexpectedError, err)

			return nil, err
		}

		vendorUserID = matched
	} else {
		identifyResult, err := s.webhook.Identify(ctx, tn, &vendorwebhook.IdentifyEvent{
			ExchangeID:          ex.ID,
			Credentials:         result.Credentials,
			RawCredentials:      result.RawCredentials,
			Checks:              checks,
			VendorOriginContext: result.VendorOriginContext,
		})
		if err != nil {
			var rejection *vendorwebhook.RejectionError
			if errors.As(err, &rejection) {
				failErr := resterr.NewCustomError(resterr.CodeUserNotFound,
					errors.New(errMsgUserNotFound)).
					WithComponent(resterr.ExchangeSvcComponent)

				s.recordFailure(ctx, ex, StateNotIdentified, failErr)

				return nil, failErr
			}

			return nil, s.failFromWebhook(ctx, ex, err)
		}

		if identifyResult.VendorUserID == "" {
			failErr := resterr.NewCustomError(resterr.CodeUserNotFound,
				errors.New(errMsgUserNotFound)).
				WithComponent(resterr.ExchangeSvcComponent)

			s.recordFailure(ctx, ex, StateNotIdentified, failErr)

			return nil, failErr
		}

		vendorUserID = strings.ToLower(identifyResult.VendorUserID)
	}

	mapping, err := s.vendorUserStore.Upsert(ctx, tn.ID, vendorUserID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.VendorUserStoreComponent, "Upsert", err)
	}

	if err = s.advance(ctx, ex, StateIdentified, now); err != nil {
		return nil, err
	}

	if disc.Feed {
		if feedErr := s.feedStore.TouchLatest(ctx, tn.ID, mapping.VendorUserID, now); feedErr != nil {
			logger.Warnc(ctx, "feed touch failed", logfields.WithExchangeID(ex.ID), log.WithError(feedErr))
		}
	}

	token, err := s.mintAccessToken(tn, disc, ex, mapping.ID, now)
	if err != nil {
		return nil, err
	}

	logger.Infoc(ctx, "identification exchange complete",
		logfields.WithExchangeID(ex.ID),
		logfields.WithTenantID(tn.ID),
		logfields.WithVendorUserID(mapping.VendorUserID))

	return &SubmitResult{Exchange: ex, Token: token}, nil
}

// matchIdentity runs the matcher against the exchange's own candidate values,
// falling back to sibling exchanges under the same disclosure when the
// triggering exchange carries none.
func (s *Service) matchIdentity(
	ctx context.Context,
	disc *tenant.Disclosure,
	ex *Exchange,
	credentials []*vc.Credential,
) (string, error) {
	if disc.IdentityMatchers == nil {
		return "", identitymatcher.ErrNoMatch
	}

	candidateSets := [][]string{}
	if len(ex.IdentityMatcherValues) > 0 {
		candidateSets = append(candidateSets, ex.IdentityMatcherValues)
	} else {
		siblings, err := s.store.ListByDisclosure(ctx, ex.TenantID, ex.DisclosureID)
		if err != nil {
			return "", resterr.NewSystemError(resterr.ExchangeStoreComponent, "ListByDisclosure", err)
		}

		for _, sibling := range siblings {
			if sibling.ID != ex.ID && len(sibling.IdentityMatcherValues) > 0 {
				candidateSets = append(candidateSets, sibling.IdentityMatcherValues)
			}
		}
	}

	var lastErr error = identitymatcher.ErrNoMatch

	for _, candidates := range candidateSets {
		vendorUserID, err := s.matcher.Match(disc.IdentityMatchers, candidates, credentials)
		if err == nil {
			return vendorUserID, nil
		}

		if !errors.Is(err, identitymatcher.ErrNoMatch) {
			return "", err
		}

		lastErr = err
	}

	return "", lastErr
}

// verifyFeedAccess authenticates the caller of a feed-gated disclosure: a
// bearer JWT signed by a tenant EXCHANGES key, issuer and audience equal to
// the tenant DID, unexpired, subject bound to an existing mapping.
func (s *Service) verifyFeedAccess(
	ctx context.Context,
	tn *tenant.Tenant,
	bearerToken string,
	now time.Time,
) (*VendorUserMapping, error) {
	unauthorized := func(reason string) error {
		return resterr.NewCustomError(resterr.CodeUnauthorized, errors.New(reason)).
			WithComponent(resterr.ExchangeSvcComponent)
	}

	if bearerToken == "" {
		return nil, unauthorized("missing bearer token")
	}

	token, err := jwt.Decode(bearerToken)
	if err != nil {
		return nil, unauthorized("malformed bearer token")
	}

	key, err := tn.KeyFor(tenant.KeyPurposeExchanges)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.TenantRegistryComponent, "KeyFor", err)
	}

	signer, err := jwt.NewES256KSigner(key.PrivateKey, key.ID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.TokenSignerComponent, "NewES256KSigner", err)
	}

	if err = jwt.VerifyES256K(token, signer.PublicKey()); err != nil {
		return nil, unauthorized("bearer token signature invalid")
	}

	var claims struct {
		Issuer   string `json:"iss"`
		Audience string `json:"aud"`
		Subject  string `json:"sub"`
		Expiry   int64  `json:"exp"`
	}
	if err = token.Claims(&claims); err != nil {
		return nil, unauthorized("bearer token claims invalid")
	}

	if claims.Issuer != tn.DID || claims.Audience != tn.DID {
		return nil, unauthorized("bearer token not issued for this tenant")
	}

	if claims.Expiry == 0 || now.After(time.Unix(claims.Expiry, 0)) {
		return nil, unauthorized("bearer token expired")
	}

	mapping, err := s.vendorUserStore.GetByID(ctx, tn.ID, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, unauthorized("bearer token subject unknown")
		}

		return nil, resterr.NewSystemError(resterr.VendorUserStoreComponent, "GetByID", err)
	}

	return mapping, nil
}

// mintAccessToken signs the protocol-bound JWT returned with a successful
// submission. jti is the exchange id; sub is the mapping id for identified
// callers and a fresh anonymous id otherwise.
func (s *Service) mintAccessToken(
	tn *tenant.Tenant,
	disc *tenant.Disclosure,
	ex *Exchange,
	subject string,
	now time.Time,
) (string, error) {
	key, err := tn.KeyFor(tenant.KeyPurposeExchanges)
	if err != nil {
		return "", resterr.NewSystemError(resterr.TokenSignerComponent, "KeyFor", err)
	}

	signer, err := jwt.NewES256KSigner(key.PrivateKey, key.ID)
	if err != nil {
		return "", resterr.NewSystemError(resterr.TokenSignerComponent, "NewES256KSigner", err)
	}

	ttl := disc.AuthTokensExpireIn
	if ttl == 0 {
		ttl = defaultAuthTokenTTL
	}

	token, err := signer.SignClaims(map[string]interface{}{
		"iss": tn.DID,
		"aud": tn.DID,
		"sub": subject,
		"jti": ex.ID,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	if err != nil {
		return "", resterr.NewSystemError(resterr.TokenSignerComponent, "SignClaims", err)
	}

	return token, nil
}

// advance appends a state event after checking the transition table.
func (s *Service) advance(ctx context.Context, ex *Exchange, to State, at time.Time) error {
	if err := ValidateTransition(ex.CurrentState(), to); err != nil {
		return resterr.NewSystemError(resterr.ExchangeSvcComponent, "advance", err)
	}

	if err := s.store.AppendEvent(ctx, ex.ID, to, at); err != nil {
		return resterr.NewSystemError(resterr.ExchangeStoreComponent, "AppendEvent", err)
	}

	ex.Events = append(ex.Events, StateEvent{State: to, Timestamp: at})

	return nil
}

// recordFailure appends a failure state and overwrites the exchange error
// message. History keeps growing; err holds only the latest reason.
func (s *Service) recordFailure(ctx context.Context, ex *Exchange, state State, cause error) {
	now := time.Now()

	// Failures observed before the claim enter through DISCLOSURE_RECEIVED
	// so the event log stays consistent with the transition table.
	if ex.CurrentState() == StateNew ||
		ex.CurrentState() == StateNotIdentified || ex.CurrentState() == StateUnexpectedError {
		if err := s.advance(ctx, ex, StateDisclosureReceived, now); err != nil {
			logger.Errorc(ctx, "failed to append received event", logfields.WithExchangeID(ex.ID), log.WithError(err))

			return
		}
	}

	if err := s.advance(ctx, ex, state, now); err != nil {
		logger.Errorc(ctx, "failed to append failure event", logfields.WithExchangeID(ex.ID), log.WithError(err))

		return
	}

	// The stored err holds the protocol message, not the wire code prefix.
	msg := cause.Error()

	var customErr *resterr.CustomError
	if errors.As(cause, &customErr) {
		msg = customErr.Err.Error()
	}

	if err := s.store.SetError(ctx, ex.ID, msg); err != nil {
		logger.Errorc(ctx, "failed to record exchange error", logfields.WithExchangeID(ex.ID), log.WithError(err))
	}
}

// failFromWebhook classifies a webhook failure into the exchange outcome.
func (s *Service) failFromWebhook(ctx context.Context, ex *Exchange, err error) error {
	if s.metrics != nil {
		s.metrics.IncrementWebhookFailure()
	}

	var upstream *vendorwebhook.UpstreamError
	if errors.As(err, &upstream) {
		failErr := resterr.NewCustomError(resterr.CodeUpstreamWebhookError, err).
			WithComponent(resterr.VendorWebhookSvcComponent)

		s.recordFailure(ctx, ex, StateUnexpectedError, failErr)

		return failErr
	}

	var rejection *vendorwebhook.RejectionError
	if errors.As(err, &rejection) {
		failErr := resterr.NewCustomError(resterr.CodeUserNotFound, err).
			WithComponent(resterr.VendorWebhookSvcComponent)

		s.recordFailure(ctx, ex, StateNotIdentified, failErr)

		return failErr
	}

	s.recordFailure(ctx, ex, StateUnexpectedError, err)

	return resterr.NewSystemError(resterr.VendorWebhookSvcComponent, "SendDisclosure", err)
}

// CreateRequest describes a new exchange.
type CreateRequest struct {
	TenantID              string
	DisclosureID          string
	Type                  Type
	Protocol              Protocol
	HolderDID             string
	IdentityMatcherValues []string
	PushDelegate          *PushDelegate
}

// CreateExchange creates an exchange in its initial state and binds a
// one-time nonce for protocol-bound submissions.
func (s *Service) CreateExchange(ctx context.Context, req *CreateRequest) (*Exchange, error) {
	if _, err := s.tenantRegistry.GetTenant(req.TenantID); err != nil {
		return nil, resterr.NewSystemError(resterr.TenantRegistryComponent, "GetTenant", err)
	}

	disc, err := s.disclosureStore.Get(ctx, req.TenantID, req.DisclosureID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.DisclosureStoreComponent, "Get", err)
	}

	if err = disc.Validate(); err != nil {
		return nil, resterr.NewSystemError(resterr.ExchangeSvcComponent, "CreateExchange", err)
	}

	now := time.Now()

	ex := &Exchange{
		TenantID:     req.TenantID,
		DisclosureID: req.DisclosureID,
		Type:         req.Type,
		ProtocolMetadata: ProtocolMetadata{
			Protocol:  req.Protocol,
			HolderDID: req.HolderDID,
		},
		IdentityMatcherValues: req.IdentityMatcherValues,
		PushDelegate:          req.PushDelegate,
		CredentialTypes:       disc.Types,
		CreatedAt:             now,
	}

	id, err := s.store.Create(ctx, ex)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "Create", err)
	}

	ex.ID = id

	if req.Protocol == ProtocolSIOP {
		nonce, nonceErr := s.bindNonce(ctx, id)
		if nonceErr != nil {
			return nil, nonceErr
		}

		ex.ProtocolMetadata.Nonce = nonce
	}

	logger.Debugc(ctx, "created exchange",
		logfields.WithExchangeID(id),
		logfields.WithDisclosureID(req.DisclosureID),
		logfields.WithTenantID(req.TenantID))

	return ex, nil
}

// bindNonce reserves a fresh one-time nonce for the exchange, retrying on
// the unlikely collision.
func (s *Service) bindNonce(ctx context.Context, exchangeID string) (string, error) {
	for i := 0; i < nonceCreateAttempts; i++ {
		nonce := uuid.NewString()

		ok, err := s.nonceStore.SetIfNotExist(ctx, nonce, exchangeID, s.nonceTTL)
		if err != nil {
			return "", resterr.NewSystemError(resterr.NonceStoreComponent, "SetIfNotExist", err)
		}

		if ok {
			return nonce, nil
		}
	}

	return "", resterr.NewSystemError(resterr.NonceStoreComponent, "SetIfNotExist",
		fmt.Errorf("failed to reserve a unique nonce after %d attempts", nonceCreateAttempts))
}

// GetExchange returns the exchange for status reporting.
func (s *Service) GetExchange(ctx context.Context, tenantID, id string) (*Exchange, error) {
	ex, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.CodeExchangeNotFound,
				fmt.Errorf("exchange %s not found", id)).
				WithComponent(resterr.ExchangeSvcComponent)
		}

		return nil, resterr.NewSystemError(resterr.ExchangeStoreComponent, "Get", err)
	}

	if ex.TenantID != tenantID {
		return nil, resterr.NewCustomError(resterr.CodeExchangeNotFound,
			fmt.Errorf("exchange %s not found", id)).
			WithComponent(resterr.ExchangeSvcComponent)
	}

	return ex, nil
}
