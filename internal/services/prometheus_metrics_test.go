package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatheredValue returns the counter value or histogram sample count of the
// series named name whose labels include all of labels
func gatheredValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := 0
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] == pair.GetValue() {
					matched++
				}
			}
			if matched != len(labels) {
				continue
			}
			if metric.GetHistogram() != nil {
				return float64(metric.GetHistogram().GetSampleCount())
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.IncrementCounter("company_search_request", map[string]string{"status": "succeeded"})
	metrics.IncrementCounter("company_search_request", map[string]string{"status": "succeeded"})
	metrics.IncrementCounter("company_stored", map[string]string{"action": "created"})
	metrics.IncrementCounter("logo_upload", map[string]string{"status": "failed"})
	metrics.IncrementCounter("instruction_added", nil)
	metrics.IncrementCounter("customer_info_upserted", nil)
	metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_succeeded"})

	assert.Equal(t, 2.0, gatheredValue(t, reg, "company_search_requests_total", map[string]string{"status": "succeeded"}))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "companies_stored_total", map[string]string{"action": "created"}))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "logo_uploads_total", map[string]string{"status": "failed"}))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "instructions_added_total", nil))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "customer_info_upserts_total", nil))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "authentication_events_total", map[string]string{"event_type": "login_succeeded"}))
}

func TestPrometheusMetrics_IgnoresMissingLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.IncrementCounter("company_search_request", nil)
	metrics.IncrementCounter("unknown_metric", map[string]string{"status": "x"})

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		assert.NotEqual(t, "company_search_requests_total", family.GetName())
	}
}

func TestPrometheusMetrics_RecordProcessingTime(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordProcessingTime("company_search", 25*time.Millisecond)
	metrics.RecordProcessingTime("unknown", time.Second)

	assert.Equal(t, 1.0, gatheredValue(t, reg, "company_search_duration_seconds", nil))
}

func TestNewPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
