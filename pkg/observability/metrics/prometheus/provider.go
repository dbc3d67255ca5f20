/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitynetwork/credential-agent/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("start metrics HTTP server: %w", err)
	}

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the credential agent.
type PromMetrics struct {
	submissionCount     *prometheus.CounterVec
	submissionTime      prometheus.Histogram
	webhookFailureCount prometheus.Counter
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		submissionCount:     newSubmissionCount(),
		submissionTime:      newSubmissionTime(),
		webhookFailureCount: newWebhookFailureCount(),
	}

	registerMetrics(pm)

	return pm
}

// IncrementSubmission counts one processed submission per exchange type.
func (pm *PromMetrics) IncrementSubmission(exchangeType string) {
	pm.submissionCount.WithLabelValues(exchangeType).Inc()
}

// IncrementWebhookFailure counts one failed vendor webhook dispatch.
func (pm *PromMetrics) IncrementWebhookFailure() {
	pm.webhookFailureCount.Inc()
}

// SubmissionTime records the time spent processing one submission.
func (pm *PromMetrics) SubmissionTime(value time.Duration) {
	pm.submissionTime.Observe(value.Seconds())

	logger.Debug("submission time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.submissionCount, pm.submissionTime, pm.webhookFailureCount,
	)
}

func newSubmissionCount() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.Service,
		Name:      metrics.SubmissionCountMetric,
		Help:      "The number of processed submissions, partitioned by exchange type.",
	}, []string{"type"})
}

func newSubmissionTime() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.Service,
		Name:      metrics.SubmissionTimeMetric,
		Help:      "The time (in seconds) it takes to process one submission.",
	})
}

func newWebhookFailureCount() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.Service,
		Name:      metrics.WebhookFailureCountMetric,
		Help:      "The number of vendor webhook dispatches that failed.",
	})
}
