/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type healthStatus struct {
	Status     health.AvailabilityStatus `json:"status"`
	Components map[string]component      `json:"components,omitempty"`
}

type component struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter writes the checker result with per-component latencies.
type JSONResultWriter struct {
	times *ResponseTimes
}

func NewJSONResultWriter(times *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{times: times}
}

func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter,
	_ *http.Request) error {
	out := &healthStatus{Status: result.Status}

	if result.Details != nil && len(*result.Details) > 0 {
		out.Components = make(map[string]component, len(*result.Details))

		for name, cr := range *result.Details {
			c := component{CheckResult: cr}

			if t, ok := rw.times.Get(name); ok {
				c.LastResponseTime = t.LastResponseTime.String()
				c.AverageResponseTime = t.AverageResponseTime.String()
			}

			out.Components[name] = c
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal health status: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
