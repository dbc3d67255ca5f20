/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialcheck_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velocitynetwork/credential-agent/pkg/service/credentialcheck"
)

func TestRemoteVerifier_VerifyCredential(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "ey.raw.jwt", req["rawCredential"])
			require.Equal(t, "did:jwk:holder", req["holderDid"])

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{
				"credentialChecks": {
					"UNTAMPERED": "PASS",
					"TRUSTED_ISSUER": "PASS",
					"TRUSTED_HOLDER": "PASS",
					"UNREVOKED": "PASS",
					"UNEXPIRED": "NOT_APPLICABLE"
				}
			}`))
			require.NoError(t, err)
		}))
		defer srv.Close()

		v := credentialcheck.NewRemoteVerifier(&credentialcheck.RemoteVerifierConfig{
			HTTPClient: http.DefaultClient,
			VerifyURL:  srv.URL,
		})

		checks, err := v.VerifyCredential(context.Background(), "ey.raw.jwt", nil, "did:jwk:holder")
		require.NoError(t, err)
		require.Equal(t, credentialcheck.ValuePass, checks.Untampered)
		require.Equal(t, credentialcheck.ValueNotApplicable, checks.Unexpired)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		v := credentialcheck.NewRemoteVerifier(&credentialcheck.RemoteVerifierConfig{
			VerifyURL: srv.URL,
		})

		_, err := v.VerifyCredential(context.Background(), "ey.raw.jwt", nil, "did:jwk:holder")
		require.ErrorContains(t, err, "status 502")
	})

	t.Run("missing checks in response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		v := credentialcheck.NewRemoteVerifier(&credentialcheck.RemoteVerifierConfig{
			VerifyURL: srv.URL,
		})

		_, err := v.VerifyCredential(context.Background(), "ey.raw.jwt", nil, "did:jwk:holder")
		require.ErrorContains(t, err, "no credentialChecks")
	})

	t.Run("connection refused", func(t *testing.T) {
		v := credentialcheck.NewRemoteVerifier(&credentialcheck.RemoteVerifierConfig{
			VerifyURL: "http://127.0.0.1:1/verify",
		})

		_, err := v.VerifyCredential(context.Background(), "ey.raw.jwt", nil, "did:jwk:holder")
		require.ErrorContains(t, err, "call check service")
	})
}
