/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/velocitynetwork/credential-agent/pkg/observability/metrics"
)

type noopProvider struct{}

// NewMetricsProvider creates an instance of a no-op metrics provider.
func NewMetricsProvider() metrics.Provider {
	return &noopProvider{}
}

func (p *noopProvider) Create() error {
	return nil
}

func (p *noopProvider) Destroy() error {
	return nil
}

func (p *noopProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &noopMetrics{}
}

type noopMetrics struct{}

func (m *noopMetrics) IncrementSubmission(string) {}

func (m *noopMetrics) IncrementWebhookFailure() {}

func (m *noopMetrics) SubmissionTime(time.Duration) {}
