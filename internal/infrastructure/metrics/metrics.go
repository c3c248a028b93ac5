package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Profile bootstrap
	ProfileProvisioningAttempts *prometheus.CounterVec
	ProfilesProvisioned         *prometheus.CounterVec

	// Appointment list enrichment
	DoctorEnrichmentMisses prometheus.Counter
}

// New registers the collectors on reg, using prefix for every metric name.
func New(prefix string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ProfileProvisioningAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_profile_provisioning_attempts_total",
				Help: "User profile creation attempts by result",
			},
			[]string{"result"},
		),
		ProfilesProvisioned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_profiles_provisioned_total",
				Help: "User profiles created by role",
			},
			[]string{"role"},
		),
		DoctorEnrichmentMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_doctor_enrichment_misses_total",
				Help: "Appointments listed without their doctor because the lookup failed",
			},
		),
	}
}

func (m *Metrics) ObserveProvisioningAttempt(ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.ProfileProvisioningAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveProfileProvisioned(role string) {
	if m == nil {
		return
	}
	m.ProfilesProvisioned.WithLabelValues(role).Inc()
}

func (m *Metrics) ObserveEnrichmentMiss() {
	if m == nil {
		return
	}
	m.DoctorEnrichmentMisses.Inc()
}

func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HttpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
