/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"encoding/json"
	"fmt"
)

// Issuer accepts both the string form ("did:ion:...") and the object form
// ({"id": "did:ion:..."}). The original shape is kept so webhook payloads can
// forward it verbatim.
type Issuer struct {
	ID string

	raw json.RawMessage
}

func (i *Issuer) UnmarshalJSON(b []byte) error {
	i.raw = append(json.RawMessage{}, b...)

	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		i.ID = id
		return nil
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("unmarshal credential issuer: %w", err)
	}

	i.ID = obj.ID

	return nil
}

func (i Issuer) MarshalJSON() ([]byte, error) {
	if len(i.raw) > 0 {
		return i.raw, nil
	}

	return json.Marshal(map[string]string{"id": i.ID})
}

// StringList accepts both the string form and the array form used across
// W3C credential documents (@context, type).
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("unmarshal string list: %w", err)
	}

	*l = many

	return nil
}

// Credential is the body of a decoded verifiable credential.
type Credential struct {
	Context           StringList             `json:"@context,omitempty"`
	ID                string                 `json:"id,omitempty"`
	Type              StringList             `json:"type"`
	Issuer            Issuer                 `json:"issuer"`
	IssuanceDate      string                 `json:"issuanceDate,omitempty"`
	ExpirationDate    string                 `json:"expirationDate,omitempty"`
	CredentialSubject map[string]interface{} `json:"credentialSubject"`
	CredentialStatus  json.RawMessage        `json:"credentialStatus,omitempty"`
}

// HasType reports whether the credential carries the given type.
func (c *Credential) HasType(t string) bool {
	for _, ct := range c.Type {
		if ct == t {
			return true
		}
	}

	return false
}
