/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package push_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/velocitynetwork/credential-agent/pkg/service/exchange"
	"github.com/velocitynetwork/credential-agent/pkg/service/push"
)

func newService() *push.Service {
	return push.New(&push.Config{
		HTTPClient:           http.DefaultClient,
		MaxRetries:           2,
		RetryInitialInterval: time.Millisecond,
	})
}

func TestService_SendVerificationDone(t *testing.T) {
	t.Run("delivers with push token auth", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]interface{}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")

			body, _ := io.ReadAll(r.Body) //nolint:errcheck
			require.NoError(t, json.Unmarshal(body, &gotBody))

			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		ex := &exchange.Exchange{
			ID: "ex-1",
			PushDelegate: &exchange.PushDelegate{
				PushToken: "push-token",
				PushURL:   srv.URL,
			},
		}

		require.NoError(t, newService().SendVerificationDone(context.Background(), "did:ion:tenant", ex))

		require.Equal(t, "Bearer push-token", gotAuth)
		require.Equal(t, "ex-1", gotBody["exchangeId"])
		require.Equal(t, "did:ion:tenant", gotBody["issuer"])
		require.NotEmpty(t, gotBody["id"])
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls int32

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}

			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		ex := &exchange.Exchange{
			ID:           "ex-1",
			PushDelegate: &exchange.PushDelegate{PushToken: "t", PushURL: srv.URL},
		}

		require.NoError(t, newService().SendVerificationDone(context.Background(), "did:ion:tenant", ex))
		require.EqualValues(t, 2, atomic.LoadInt32(&calls))
	})

	t.Run("gives up after bounded retries", func(t *testing.T) {
		var calls int32

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		ex := &exchange.Exchange{
			ID:           "ex-1",
			PushDelegate: &exchange.PushDelegate{PushToken: "t", PushURL: srv.URL},
		}

		require.Error(t, newService().SendVerificationDone(context.Background(), "did:ion:tenant", ex))
		require.EqualValues(t, 3, atomic.LoadInt32(&calls))
	})

	t.Run("no delegate is a no-op", func(t *testing.T) {
		ex := &exchange.Exchange{ID: "ex-1"}

		require.NoError(t, newService().SendVerificationDone(context.Background(), "did:ion:tenant", ex))
	})
}
