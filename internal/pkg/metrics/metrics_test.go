//go:build unit

package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-intake/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewIntakeWith(reg, reg)

	m.IncSubmission("email", metrics.OutcomeAccepted)
	m.IncSubmission("email", metrics.OutcomeAccepted)
	m.IncSubmission("email", metrics.OutcomeThrottled)
	m.IncThrottle(true)
	m.IncDispatch("owner", nil)
	m.IncDispatch("client", errors.New("boom"))
	m.ObserveRequest(http.MethodPost, "/api/bookings", http.StatusCreated, 10*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "booking_submissions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "booking_email_dispatch_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `booking_submissions_total{channel="email",outcome="accepted"} 2`)
	assert.Contains(t, rec.Body.String(), `booking_throttle_checks_total{allowed="true"} 1`)
}

func TestNilIntakeIsNoop(t *testing.T) {
	var m *metrics.Intake
	assert.NotPanics(t, func() {
		m.IncSubmission("email", metrics.OutcomeFailed)
		m.IncThrottle(false)
		m.IncDispatch("owner", nil)
		m.ObserveRequest(http.MethodGet, "", http.StatusOK, time.Millisecond)
	})
}
