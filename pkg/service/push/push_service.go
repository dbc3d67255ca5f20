/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitynetwork/credential-agent/internal/logfields"
	"github.com/velocitynetwork/credential-agent/pkg/service/exchange"
)

var logger = log.New("push-service")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the push sender dependencies.
type Config struct {
	HTTPClient httpClient

	// MaxRetries bounds delivery attempts per notification.
	MaxRetries uint64

	// RetryInitialInterval seeds the exponential backoff between attempts.
	RetryInitialInterval time.Duration
}

// Service notifies the holder's wallet app through its push delegate.
// Delivery is best effort: callers fire and forget.
type Service struct {
	httpClient           httpClient
	maxRetries           uint64
	retryInitialInterval time.Duration
}

// New creates the push sender.
func New(cfg *Config) *Service {
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	interval := cfg.RetryInitialInterval
	if interval == 0 {
		interval = time.Second
	}

	return &Service{
		httpClient:           cfg.HTTPClient,
		maxRetries:           maxRetries,
		retryInitialInterval: interval,
	}
}

type notification struct {
	ID          string `json:"id"`
	IssuerDID   string `json:"issuer"`
	ExchangeID  string `json:"exchangeId"`
	MessageType string `json:"messageType"`
}

// SendVerificationDone tells the wallet its presentation was checked.
func (s *Service) SendVerificationDone(ctx context.Context, issuerDID string, ex *exchange.Exchange) error {
	if ex.PushDelegate == nil || ex.PushDelegate.PushURL == "" {
		return nil
	}

	body, err := json.Marshal(&notification{
		ID:          uuid.NewString(),
		IssuerDID:   issuerDID,
		ExchangeID:  ex.ID,
		MessageType: "presentation-verified",
	})
	if err != nil {
		return fmt.Errorf("marshal push notification: %w", err)
	}

	op := func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost,
			ex.PushDelegate.PushURL, bytes.NewReader(body))
		if reqErr != nil {
			return backoff.Permanent(reqErr)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+ex.PushDelegate.PushToken)

		resp, doErr := s.httpClient.Do(req)
		if doErr != nil {
			return doErr
		}

		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck
			_ = resp.Body.Close()                 //nolint:errcheck
		}()

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("push gateway returned status %d", resp.StatusCode)
		}

		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = s.retryInitialInterval

	b := backoff.WithMaxRetries(expBackoff, s.maxRetries)

	if err = backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		logger.Warnc(ctx, "push notification delivery failed",
			logfields.WithExchangeID(ex.ID), log.WithError(err))

		return err
	}

	logger.Debugc(ctx, "push notification delivered", logfields.WithExchangeID(ex.ID))

	return nil
}
