/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/valyala/fastjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/velocitynetwork/credential-agent/internal/logfields"
	"github.com/velocitynetwork/credential-agent/pkg/doc/jwt"
	"github.com/velocitynetwork/credential-agent/pkg/doc/vc"
	"github.com/velocitynetwork/credential-agent/pkg/restapi/resterr"
	"github.com/velocitynetwork/credential-agent/pkg/tenant"
)

var logger = log.New("presentation-service")

const credentialsContextV1 = "https://www.w3.org/2018/credentials/v1"

const formatJWTVC = "jwt_vc"

// submissionSchema validates the shape of presentation_submission before any
// descriptor path is dereferenced.
const submissionSchema = `{
  "type": "object",
  "required": ["id", "definition_id", "descriptor_map"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "definition_id": {"type": "string", "minLength": 1},
    "descriptor_map": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "format", "path"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "format": {"type": "string", "minLength": 1},
          "path": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// Config holds the validator dependencies.
type Config struct {
	// EnablePresentationContextValidation turns on the @context check of the
	// presentation document.
	EnablePresentationContextValidation bool

	// EnableDeactivatedDisclosure rejects submissions against disclosures
	// whose deactivation date has passed.
	EnableDeactivatedDisclosure bool
}

// Service validates holder-submitted verifiable presentations: envelope,
// submission shape, binding to the exchange, and disclosure activation.
type Service struct {
	schema *gojsonschema.Schema

	enableContextValidation     bool
	enableDeactivatedDisclosure bool
}

// New creates the presentation validator.
func New(cfg *Config) (*Service, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(submissionSchema))
	if err != nil {
		return nil, fmt.Errorf("compile submission schema: %w", err)
	}

	if cfg == nil {
		cfg = &Config{}
	}

	return &Service{
		schema:                      schema,
		enableContextValidation:     cfg.EnablePresentationContextValidation,
		enableDeactivatedDisclosure: cfg.EnableDeactivatedDisclosure,
	}, nil
}

type vpClaims struct {
	Issuer string          `json:"iss"`
	Nonce  string          `json:"nonce"`
	VP     json.RawMessage `json:"vp"`
}

type vpDocument struct {
	Context              vc.StringList   `json:"@context"`
	ID                   string          `json:"id"`
	Type                 vc.StringList   `json:"type"`
	Holder               string          `json:"holder"`
	Submission           *Submission     `json:"presentation_submission"`
	VerifiableCredential json.RawMessage `json:"verifiableCredential"`
	VendorOriginContext  string          `json:"vendorOriginContext"`
}

// ValidateSubmission decodes and validates a compact JWS presentation against
// the exchange it targets. Credentials come back in descriptor_map order.
func (s *Service) ValidateSubmission(
	rawVP string,
	binding *Binding,
	disc *tenant.Disclosure,
	now time.Time,
) (*Result, error) {
	if s.enableDeactivatedDisclosure && disc.Deactivated(now) {
		return nil, resterr.NewCustomError(resterr.CodeDisclosureNotActive,
			fmt.Errorf("disclosure %s is deactivated", disc.ID)).
			WithComponent(resterr.PresentationSvcComponent)
	}

	token, err := jwt.Decode(rawVP)
	if err != nil {
		return nil, resterr.NewCustomError(resterr.CodePresentationMalformed, err).
			WithComponent(resterr.PresentationSvcComponent)
	}

	var claims vpClaims
	if err = token.Claims(&claims); err != nil {
		return nil, resterr.NewCustomError(resterr.CodePresentationMalformed, err).
			WithComponent(resterr.PresentationSvcComponent)
	}

	// The vp claim is the canonical envelope; a bare payload that already is
	// the presentation document is accepted for the direct protocol.
	vpBytes := []byte(claims.VP)
	if len(vpBytes) == 0 {
		vpBytes = token.Payload
	}

	var doc vpDocument
	if err = json.Unmarshal(vpBytes, &doc); err != nil {
		return nil, resterr.NewCustomError(resterr.CodePresentationMalformed,
			fmt.Errorf("unmarshal presentation document: %w", err)).
			WithComponent(resterr.PresentationSvcComponent)
	}

	if s.enableContextValidation {
		if err = validateContext(vpBytes); err != nil {
			return nil, resterr.NewCustomError(resterr.CodePresentationInvalid, err).
				WithComponent(resterr.PresentationSvcComponent)
		}
	}

	if err = s.validateSubmissionShape(doc.Submission); err != nil {
		return nil, err
	}

	if err = validateBinding(&claims, &doc, binding, disc); err != nil {
		return nil, err
	}

	credentials, rawCredentials, err := s.dereferenceCredentials(vpBytes, doc.Submission)
	if err != nil {
		return nil, err
	}

	holderDID := doc.Holder
	if holderDID == "" {
		holderDID = claims.Issuer
	}

	result := &Result{
		PresentationID:      presentationID(doc.ID, rawVP),
		HolderDID:           holderDID,
		Credentials:         credentials,
		RawCredentials:      rawCredentials,
		VendorOriginContext: doc.VendorOriginContext,
	}

	logger.Debug("validated presentation submission",
		logfields.WithExchangeID(binding.ExchangeID),
		logfields.WithPresentationID(result.PresentationID))

	return result, nil
}

// validateContext enforces the W3C credentials context on the raw document so
// that a wrong scalar type fails the same way a wrong value does.
func validateContext(vpBytes []byte) error {
	contextErr := fmt.Errorf("presentation @context is not set correctly")

	v, err := fastjson.ParseBytes(vpBytes)
	if err != nil {
		return fmt.Errorf("parse presentation document: %w", err)
	}

	ctxValue := v.Get("@context")
	if ctxValue == nil {
		return contextErr
	}

	switch ctxValue.Type() {
	case fastjson.TypeString:
		if string(ctxValue.GetStringBytes()) != credentialsContextV1 {
			return contextErr
		}
	case fastjson.TypeArray:
		if !containsContext(ctxValue.GetArray(), credentialsContextV1) {
			return contextErr
		}
	default:
		return contextErr
	}

	return nil
}

func containsContext(items []*fastjson.Value, want string) bool {
	for _, item := range items {
		if string(item.GetStringBytes()) == want {
			return true
		}
	}

	return false
}

func (s *Service) validateSubmissionShape(sub *Submission) error {
	if sub == nil {
		return resterr.NewCustomError(resterr.CodePresentationInvalid,
			fmt.Errorf("presentation_submission is missing")).
			WithComponent(resterr.PresentationSvcComponent)
	}

	subBytes, err := json.Marshal(sub)
	if err != nil {
		return resterr.NewSystemError(resterr.PresentationSvcComponent, "marshalSubmission", err)
	}

	verified, err := s.schema.Validate(gojsonschema.NewBytesLoader(subBytes))
	if err != nil {
		return resterr.NewSystemError(resterr.PresentationSvcComponent, "validateSubmission", err)
	}

	if !verified.Valid() {
		return resterr.NewCustomError(resterr.CodePresentationInvalid,
			fmt.Errorf("presentation_submission is not valid: %v", verified.Errors())).
			WithComponent(resterr.PresentationSvcComponent)
	}

	return nil
}

func validateBinding(claims *vpClaims, doc *vpDocument, binding *Binding, disc *tenant.Disclosure) error {
	if defID := doc.Submission.DefinitionID; defID != disc.ID && defID != binding.ExchangeID {
		return resterr.NewCustomError(resterr.CodePresentationInvalid,
			fmt.Errorf("presentation definition %s does not match disclosure %s", defID, disc.ID)).
			WithComponent(resterr.PresentationSvcComponent)
	}

	if binding.Nonce != "" && claims.Nonce != binding.Nonce {
		return resterr.NewCustomError(resterr.CodePresentationInvalid,
			fmt.Errorf("presentation nonce does not match exchange")).
			WithComponent(resterr.PresentationSvcComponent)
	}

	if expected := binding.HolderDID; expected != "" {
		holder := doc.Holder
		if holder == "" {
			holder = claims.Issuer
		}

		if holder != expected {
			return resterr.NewCustomError(resterr.CodePresentationInvalid,
				fmt.Errorf("presentation holder %s does not match exchange holder", holder)).
				WithComponent(resterr.PresentationSvcComponent)
		}
	}

	return nil
}

// dereferenceCredentials resolves every descriptor_map path against the
// presentation document, in map order, and decodes each credential JWS.
func (s *Service) dereferenceCredentials(
	vpBytes []byte,
	sub *Submission,
) ([]*vc.Credential, []string, error) {
	var docValue interface{}
	if err := json.Unmarshal(vpBytes, &docValue); err != nil {
		return nil, nil, resterr.NewSystemError(resterr.PresentationSvcComponent, "unmarshalDocument", err)
	}

	credentials := make([]*vc.Credential, 0, len(sub.DescriptorMap))
	rawCredentials := make([]string, 0, len(sub.DescriptorMap))

	for _, item := range sub.DescriptorMap {
		if item.Format != formatJWTVC {
			return nil, nil, resterr.NewCustomError(resterr.CodePresentationInvalid,
				fmt.Errorf("descriptor %s has unsupported format %q", item.ID, item.Format)).
				WithComponent(resterr.PresentationSvcComponent)
		}

		resolved, err := jsonpath.Get(item.Path, docValue)
		if err != nil {
			return nil, nil, resterr.NewCustomError(resterr.CodePresentationInvalid,
				fmt.Errorf("descriptor %s path %s did not resolve: %w", item.ID, item.Path, err)).
				WithComponent(resterr.PresentationSvcComponent)
		}

		rawCred, ok := resolved.(string)
		if !ok {
			return nil, nil, resterr.NewCustomError(resterr.CodePresentationInvalid,
				fmt.Errorf("descriptor %s path %s resolved to a non-string credential", item.ID, item.Path)).
				WithComponent(resterr.PresentationSvcComponent)
		}

		cred, err := decodeCredential(rawCred)
		if err != nil {
			return nil, nil, resterr.NewCustomError(resterr.CodePresentationInvalid,
				fmt.Errorf("descriptor %s: %w", item.ID, err)).
				WithComponent(resterr.PresentationSvcComponent)
		}

		credentials = append(credentials, cred)
		rawCredentials = append(rawCredentials, rawCred)
	}

	return credentials, rawCredentials, nil
}

func decodeCredential(rawCred string) (*vc.Credential, error) {
	token, err := jwt.Decode(rawCred)
	if err != nil {
		return nil, fmt.Errorf("decode credential jws: %w", err)
	}

	var claims struct {
		VC json.RawMessage `json:"vc"`
	}
	if err = token.Claims(&claims); err != nil {
		return nil, err
	}

	vcBytes := []byte(claims.VC)
	if len(vcBytes) == 0 {
		vcBytes = token.Payload
	}

	var cred vc.Credential
	if err = json.Unmarshal(vcBytes, &cred); err != nil {
		return nil, fmt.Errorf("unmarshal credential: %w", err)
	}

	return &cred, nil
}

// presentationID prefers the holder-assigned vp id; an anonymous presentation
// is identified by its JWS digest so duplicates still collide.
func presentationID(vpID, rawVP string) string {
	if vpID != "" {
		return vpID
	}

	sum := sha256.Sum256([]byte(rawVP))

	return hex.EncodeToString(sum[:])
}
