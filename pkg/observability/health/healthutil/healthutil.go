/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// ResponseTimes tracks how long each health check component takes and
// renders the timings into the /health response body.
type ResponseTimes struct {
	mu    sync.RWMutex
	stats map[string]componentTiming
}

type componentTiming struct {
	last    time.Duration
	total   time.Duration
	samples int64
}

// NewResponseTimes creates an empty recorder.
func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{stats: map[string]componentTiming{}}
}

// Interceptor records the duration of every check run, keyed by component.
func (r *ResponseTimes) Interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			started := time.Now()
			result := next(ctx, name, state)
			r.record(name, time.Since(started))

			return result
		}
	}
}

func (r *ResponseTimes) record(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timing := r.stats[name]
	timing.last = elapsed
	timing.total += elapsed
	timing.samples++

	r.stats[name] = timing
}

func (r *ResponseTimes) lookup(name string) (last, avg time.Duration, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	timing, ok := r.stats[name]
	if !ok || timing.samples == 0 {
		return 0, 0, false
	}

	return timing.last, timing.total / time.Duration(timing.samples), true
}

// ResultWriter renders the checker result as JSON, annotating each component
// with its recorded response times.
func (r *ResponseTimes) ResultWriter() health.ResultWriter {
	return &resultWriter{times: r}
}

type resultWriter struct {
	times *ResponseTimes
}

type healthStatus struct {
	Status     health.AvailabilityStatus `json:"status"`
	Components map[string]checkResult    `json:"components,omitempty"`
}

type checkResult struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

func (rw *resultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error { //nolint:lll
	body := &healthStatus{Status: result.Status}

	if result.Details != nil {
		body.Components = map[string]checkResult{}

		for name, cr := range *result.Details {
			component := checkResult{CheckResult: cr}

			if last, avg, ok := rw.times.lookup(name); ok {
				component.LastResponseTime = last.String()
				component.AverageResponseTime = avg.String()
			}

			body.Components[name] = component
		}
	}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal health response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
