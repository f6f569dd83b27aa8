package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	companySearchRequests     *prometheus.CounterVec
	companySearchDuration     prometheus.Histogram
	companiesStoredTotal      *prometheus.CounterVec
	logoUploadsTotal          *prometheus.CounterVec
	instructionsAddedTotal    prometheus.Counter
	customerInfoUpsertsTotal  prometheus.Counter
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		companySearchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "company_search_requests_total",
				Help: "Total number of restaurant search requests",
			},
			[]string{"status"},
		),
		companySearchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "company_search_duration_seconds",
				Help:    "Restaurant search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		companiesStoredTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "companies_stored_total",
				Help: "Total number of restaurants created or updated",
			},
			[]string{"action"},
		),
		logoUploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logo_uploads_total",
				Help: "Total number of logo uploads by outcome",
			},
			[]string{"status"},
		),
		instructionsAddedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "instructions_added_total",
				Help: "Total number of instructions added",
			},
		),
		customerInfoUpsertsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_info_upserts_total",
				Help: "Total number of customer info upserts",
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "company_search_request":
		if status != "" {
			m.companySearchRequests.WithLabelValues(status).Inc()
		}
	case "company_stored":
		if action := tags["action"]; action != "" {
			m.companiesStoredTotal.WithLabelValues(action).Inc()
		}
	case "logo_upload":
		if status != "" {
			m.logoUploadsTotal.WithLabelValues(status).Inc()
		}
	case "instruction_added":
		m.instructionsAddedTotal.Inc()
	case "customer_info_upserted":
		m.customerInfoUpsertsTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "company_search":
		m.companySearchDuration.Observe(duration.Seconds())
	}
}
