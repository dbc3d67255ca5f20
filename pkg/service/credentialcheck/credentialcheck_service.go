/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination credentialcheck_service_mocks_test.go -package credentialcheck_test -source=credentialcheck_service.go

package credentialcheck

import (
	"context"
	"fmt"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitynetwork/credential-agent/internal/logfields"
	"github.com/velocitynetwork/credential-agent/pkg/doc/vc"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/resterr"
)

var logger = log.New("credentialcheck-service")

type verifier interface {
	VerifyCredential(ctx context.Context, rawCredential string, cred *vc.Credential, holderDID string) (*Checks, error)
}

// Config holds the aggregator dependencies.
type Config struct {
	Verifier verifier

	// AutoIdentityCheck gates identification flows on check outcomes. When
	// disabled, failed checks are still reported to the vendor but do not
	// block identification.
	AutoIdentityCheck bool
}

// Service runs network verification for every submitted credential and folds
// the outcomes into an exchange-level verdict.
type Service struct {
	verifier          verifier
	autoIdentityCheck bool
}

// New creates the credential check aggregator.
func New(cfg *Config) *Service {
	return &Service{
		verifier:          cfg.Verifier,
		autoIdentityCheck: cfg.AutoIdentityCheck,
	}
}

// Check verifies each credential in submission order. Results are
// index-aligned with the input.
func (s *Service) Check(
	ctx context.Context,
	rawCredentials []string,
	credentials []*vc.Credential,
	holderDID string,
) ([]*Checks, error) {
	if len(rawCredentials) != len(credentials) {
		return nil, resterr.NewSystemError(resterr.CredentialCheckSvcComponent, "Check",
			fmt.Errorf("raw and decoded credential counts differ: %d vs %d",
				len(rawCredentials), len(credentials)))
	}

	results := make([]*Checks, 0, len(credentials))

	for i, cred := range credentials {
		checks, err := s.verifier.VerifyCredential(ctx, rawCredentials[i], cred, holderDID)
		if err != nil {
			return nil, resterr.NewSystemError(resterr.CredentialCheckSvcComponent, "VerifyCredential", err)
		}

		logger.Debugc(ctx, "credential checked",
			logfields.WithCredentialType(firstConcreteType(cred)))

		results = append(results, checks)
	}

	return results, nil
}

// DeriveVerdict folds per-credential checks into the exchange verdict.
func (s *Service) DeriveVerdict(results []*Checks) *Verdict {
	verdict := &Verdict{}

	for _, checks := range results {
		for _, v := range checkValues(checks) {
			if v == ValueVoucherReserveExhausted {
				verdict.PaymentRequired = true
			}
		}
	}

	return verdict
}

// GateIdentification rejects an identification attempt whose credentials
// failed verification. NOT_CHECKED and NOT_APPLICABLE never block; a vendor
// that opted out of automatic gating sees every outcome pass through.
func (s *Service) GateIdentification(results []*Checks) error {
	if !s.autoIdentityCheck {
		return nil
	}

	for _, checks := range results {
		if checks.Untampered == ValueFail {
			return resterr.NewCustomError(resterr.CodeCredentialTampered,
				fmt.Errorf("presented credential is tampered")).
				WithComponent(resterr.CredentialCheckSvcComponent)
		}

		if checks.TrustedIssuer == ValueFail {
			return resterr.NewCustomError(resterr.CodeCredentialBadIssuer,
				fmt.Errorf("presented credential has an untrusted issuer")).
				WithComponent(resterr.CredentialCheckSvcComponent)
		}

		if checks.TrustedHolder == ValueFail {
			return resterr.NewCustomError(resterr.CodeCredentialBadHolder,
				fmt.Errorf("presented credential is not bound to the holder")).
				WithComponent(resterr.CredentialCheckSvcComponent)
		}

		if checks.Unrevoked == ValueFail {
			return resterr.NewCustomError(resterr.CodeCredentialRevoked,
				fmt.Errorf("presented credential is revoked")).
				WithComponent(resterr.CredentialCheckSvcComponent)
		}

		if checks.Unexpired == ValueFail {
			return resterr.NewCustomError(resterr.CodeCredentialExpired,
				fmt.Errorf("presented credential is expired")).
				WithComponent(resterr.CredentialCheckSvcComponent)
		}
	}

	return nil
}

func checkValues(c *Checks) []Value {
	return []Value{c.Untampered, c.TrustedIssuer, c.TrustedHolder, c.Unrevoked, c.Unexpired}
}

func firstConcreteType(cred *vc.Credential) string {
	for _, t := range cred.Type {
		if t != "VerifiableCredential" {
			return t
		}
	}

	return "VerifiableCredential"
}
