/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwt

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3"
)

// Header carries the protected header fields the agent cares about.
type Header struct {
	Algorithm string
	Type      string
	KeyID     string
}

// Token is a decoded, not yet verified, compact JWS.
type Token struct {
	Header    Header
	Payload   []byte
	Signature []byte

	signingInput string
}

// Decode parses a compact JWS without verifying its signature. Structural
// validation is delegated to go-jose; the raw segments are kept so a caller
// can verify the signature over the exact signing input.
func Decode(raw string) (*Token, error) {
	jws, err := jose.ParseSigned(raw)
	if err != nil {
		return nil, fmt.Errorf("parse compact jws: %w", err)
	}

	if len(jws.Signatures) == 0 {
		return nil, fmt.Errorf("jws carries no signature")
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected 3 jws segments, got %d", len(parts))
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("decode jws signature: %w", err)
	}

	header := jws.Signatures[0].Header

	typ := ""
	if v, ok := header.ExtraHeaders[jose.HeaderType]; ok {
		typ, _ = v.(string) //nolint:errcheck
	}

	return &Token{
		Header: Header{
			Algorithm: header.Algorithm,
			Type:      typ,
			KeyID:     header.KeyID,
		},
		Payload:      jws.UnsafePayloadWithoutVerification(),
		Signature:    signature,
		signingInput: parts[0] + "." + parts[1],
	}, nil
}

// Claims unmarshals the token payload into v.
func (t *Token) Claims(v interface{}) error {
	if err := json.Unmarshal(t.Payload, v); err != nil {
		return fmt.Errorf("unmarshal jwt claims: %w", err)
	}

	return nil
}

// SigningInput returns the bytes the signature was produced over.
func (t *Token) SigningInput() []byte {
	return []byte(t.signingInput)
}
