/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identitymatcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitynetwork/credential-agent/internal/logfields"
	"github.com/velocitynetwork/credential-agent/pkg/doc/vc"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/resterr"
	"github.com/velocitynetwork/credential-agent/pkg/tenant"
)

var logger = log.New("identitymatcher-service")

// ErrNoMatch is returned when every rule evaluated cleanly but none matched.
var ErrNoMatch = errors.New("no identity matcher rule matched")

const (
	typeEmail      = "EmailV1.0"
	typePhone      = "PhoneV1.0"
	typeIDDocument = "IdDocumentV1.0"
)

// Service resolves a vendor user id from presented credentials using the
// tenant-configured matcher rules.
type Service struct{}

// New creates the identity matcher.
func New() *Service {
	return &Service{}
}

// Match evaluates the matcher rules in order against the presented
// credentials. The first rule that matches wins; its reward is the
// lower-cased candidate value at vendorUserIdIndex.
func (s *Service) Match(
	matchers *tenant.IdentityMatchers,
	candidates []string,
	credentials []*vc.Credential,
) (string, error) {
	if matchers == nil || len(matchers.Rules) == 0 {
		return "", ErrNoMatch
	}

	doc := buildMatchDocument(credentials)

	for _, rule := range matchers.Rules {
		if rule.ValueIndex < 0 || rule.ValueIndex >= len(candidates) {
			return "", resterr.NewSystemError(resterr.IdentityMatcherSvcComponent, "Match",
				fmt.Errorf("identity matcher valueIndex %d out of range for %d values",
					rule.ValueIndex, len(candidates)))
		}

		matched, err := evalRule(&rule, doc, candidates[rule.ValueIndex])
		if err != nil {
			return "", err
		}

		if matched {
			if matchers.VendorUserIDIndex < 0 || matchers.VendorUserIDIndex >= len(candidates) {
				return "", resterr.NewSystemError(resterr.IdentityMatcherSvcComponent, "Match",
					fmt.Errorf("vendorUserIdIndex %d out of range for %d values",
						matchers.VendorUserIDIndex, len(candidates)))
			}

			vendorUserID := strings.ToLower(candidates[matchers.VendorUserIDIndex])

			logger.Debug("identity matcher rule matched", logfields.WithVendorUserID(vendorUserID))

			return vendorUserID, nil
		}
	}

	return "", ErrNoMatch
}

// evalRule resolves the rule's paths against the match document and compares
// the first resolving path's value to the candidate.
func evalRule(rule *tenant.IdentityMatcherRule, doc map[string]interface{}, candidate string) (bool, error) {
	var resolved interface{}

	found := false

	for _, path := range rule.Path {
		value, err := jsonpath.Get(path, doc)
		if err != nil || isEmptyValue(value) {
			continue
		}

		resolved = value
		found = true

		break
	}

	if !found {
		return false, resterr.NewCustomError(resterr.CodeJSONPathEmpty,
			fmt.Errorf("identity matcher path %s resolved to nothing", strings.Join(rule.Path, ", "))).
			WithComponent(resterr.IdentityMatcherSvcComponent)
	}

	switch rule.Rule {
	case tenant.MatcherRulePick, tenant.MatcherRuleEqual:
		scalar, ok := resolved.(string)
		if !ok {
			return false, nil
		}

		return strings.EqualFold(scalar, candidate), nil
	case tenant.MatcherRuleAll:
		values, ok := resolved.([]interface{})
		if !ok {
			return false, nil
		}

		return lo.ContainsBy(values, func(v interface{}) bool {
			scalar, isString := v.(string)

			return isString && strings.EqualFold(scalar, candidate)
		}), nil
	default:
		return false, resterr.NewSystemError(resterr.IdentityMatcherSvcComponent, "evalRule",
			fmt.Errorf("unsupported identity matcher rule %q", rule.Rule))
	}
}

// buildMatchDocument projects the presented credentials into the fixed bucket
// layout the matcher paths address.
func buildMatchDocument(credentials []*vc.Credential) map[string]interface{} {
	doc := map[string]interface{}{
		"emails":                []interface{}{},
		"phones":                []interface{}{},
		"emailCredentials":      []interface{}{},
		"phoneCredentials":      []interface{}{},
		"idDocumentCredentials": []interface{}{},
	}

	appendTo := func(key string, v interface{}) {
		doc[key] = append(doc[key].([]interface{}), v)
	}

	for _, cred := range credentials {
		subject := map[string]interface{}(cred.CredentialSubject)

		switch {
		case cred.HasType(typeEmail):
			appendTo("emailCredentials", subject)

			if email, ok := subject["email"].(string); ok {
				appendTo("emails", email)
			}
		case cred.HasType(typePhone):
			appendTo("phoneCredentials", subject)

			if phone, ok := subject["phone"].(string); ok {
				appendTo("phones", phone)
			}
		case cred.HasType(typeIDDocument):
			appendTo("idDocumentCredentials", subject)
		}
	}

	return doc
}

func isEmptyValue(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []interface{}:
		return len(value) == 0
	default:
		return false
	}
}
