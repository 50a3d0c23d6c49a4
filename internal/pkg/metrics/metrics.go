package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	OutcomeAccepted  = "accepted"
	OutcomeInvalid   = "invalid"
	OutcomeThrottled = "throttled"
	OutcomeFailed    = "failed"
)

// Intake records booking intake activity. A nil *Intake is a no-op.
type Intake struct {
	gatherer    prometheus.Gatherer
	submissions *prometheus.CounterVec
	throttle    *prometheus.CounterVec
	dispatch    *prometheus.CounterVec
	requests    *prometheus.HistogramVec
}

// NewIntake builds its own registry with the Go and process collectors.
func NewIntake() *Intake {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewIntakeWith(reg, reg)
}

func NewIntakeWith(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Intake {
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_submissions_total",
		Help: "Booking submissions by outcome.",
	}, []string{"channel", "outcome"})
	throttle := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_throttle_checks_total",
		Help: "Throttle decisions by result.",
	}, []string{"allowed"})
	dispatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_email_dispatch_total",
		Help: "Email dispatch attempts by template and result.",
	}, []string{"template", "result"})
	requests := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	reg.MustRegister(submissions, throttle, dispatch, requests)

	return &Intake{
		gatherer:    gatherer,
		submissions: submissions,
		throttle:    throttle,
		dispatch:    dispatch,
		requests:    requests,
	}
}

func (m *Intake) IncSubmission(channel, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(channel, outcome).Inc()
}

func (m *Intake) IncThrottle(allowed bool) {
	if m == nil {
		return
	}
	m.throttle.WithLabelValues(strconv.FormatBool(allowed)).Inc()
}

func (m *Intake) IncDispatch(template string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dispatch.WithLabelValues(template, result).Inc()
}

func (m *Intake) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Intake) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
