/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "credential_agent"

	// Service operations.
	Service                    = "service"
	SubmissionCountMetric      = "service_submission_total"
	SubmissionTimeMetric       = "service_submission_seconds"
	WebhookFailureCountMetric  = "service_vendor_webhook_failure_total"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	IncrementSubmission(exchangeType string)
	IncrementWebhookFailure()
	SubmissionTime(value time.Duration)
}
