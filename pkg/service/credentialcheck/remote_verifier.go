/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/velocitynetwork/credential-agent/pkg/doc/vc"
)

const defaultVerifyTimeout = 30 * time.Second

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RemoteVerifierConfig holds the remote check service settings.
type RemoteVerifierConfig struct {
	HTTPClient httpClient

	// VerifyURL is the check service endpoint the agent posts credentials to.
	VerifyURL string
}

// RemoteVerifier calls the external credential check service. The agent
// never re-implements verification; it forwards the raw signed credential
// and trusts the returned check values.
type RemoteVerifier struct {
	httpClient httpClient
	verifyURL  string
}

// NewRemoteVerifier creates the check service client.
func NewRemoteVerifier(cfg *RemoteVerifierConfig) *RemoteVerifier {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultVerifyTimeout}
	}

	return &RemoteVerifier{httpClient: client, verifyURL: cfg.VerifyURL}
}

type verifyRequest struct {
	RawCredential string `json:"rawCredential"`
	HolderDID     string `json:"holderDid"`
}

type verifyResponse struct {
	CredentialChecks *Checks `json:"credentialChecks"`
}

// VerifyCredential posts one credential to the check service and returns its
// check values.
func (v *RemoteVerifier) VerifyCredential(
	ctx context.Context,
	rawCredential string,
	_ *vc.Credential,
	holderDID string,
) (*Checks, error) {
	body, err := json.Marshal(&verifyRequest{RawCredential: rawCredential, HolderDID: holderDID})
	if err != nil {
		return nil, fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call check service: %w", err)
	}

	defer resp.Body.Close() //nolint: errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("check service returned status %d", resp.StatusCode)
	}

	var parsed verifyResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode check service response: %w", err)
	}

	if parsed.CredentialChecks == nil {
		return nil, fmt.Errorf("check service response has no credentialChecks")
	}

	return parsed.CredentialChecks, nil
}
