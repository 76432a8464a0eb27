package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	ValidationsRun       *prometheus.CounterVec
	ValidationsFailed    *prometheus.CounterVec
	SubmissionsAccepted  prometheus.Counter
	SubmissionsRefused   *prometheus.CounterVec
	RecapLatency         prometheus.Histogram
	EndpointLatency      *prometheus.HistogramVec
	AuthFailures         prometheus.Counter
	StoredApplications   prometheus.Gauge
	PermitNoticesRaised  prometheus.Counter
	DeferredDocsRecorded prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		ValidationsRun: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "llm_intake_validations_total",
			Help: "Total number of step validations run, labeled by step",
		}, []string{"step"}),
		ValidationsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "llm_intake_validations_failed_total",
			Help: "Total number of step validations with blocking findings, labeled by step",
		}, []string{"step"}),
		SubmissionsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "llm_intake_submissions_accepted_total",
			Help: "Total number of accepted submissions",
		}),
		SubmissionsRefused: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "llm_intake_submissions_refused_total",
			Help: "Total number of refused submissions, labeled by refusal code",
		}, []string{"code"}),
		RecapLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "llm_intake_recap_latency_seconds",
			Help:    "Latency of full recap computation in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "llm_intake_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "llm_intake_auth_failures_total",
			Help: "Total number of authentication failures on staff endpoints",
		}),
		StoredApplications: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "llm_intake_stored_applications",
			Help: "Current number of stored applications",
		}),
		PermitNoticesRaised: promauto.NewCounter(prometheus.CounterOpts{
			Name: "llm_intake_permit_notices_total",
			Help: "Total number of recaps carrying a permit expiry notice",
		}),
		DeferredDocsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "llm_intake_deferred_docs_total",
			Help: "Total number of deferred documents recorded at submission",
		}),
	}
}
