//go:build unit

package handler_test

import (
	"context"
	"net/http"
	"testing"

	"booking-intake/internal/domain/throttle"
	"booking-intake/internal/handler"
	"booking-intake/internal/handler/api"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/metrics"
	"booking-intake/tests/common/httptest"
	commandsmock "booking-intake/tests/mock/commands"
	queriesmock "booking-intake/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerDeps struct {
	engine   *gin.Engine
	commands *commandsmock.MockBookingCommands
	queries  *queriesmock.MockBookingQueries
}

func newRouter(t *testing.T, mode string) routerDeps {
	t.Helper()
	gin.SetMode(mode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	ctrl := gomock.NewController(t)
	deps := routerDeps{
		engine:   gin.New(),
		commands: commandsmock.NewMockBookingCommands(ctrl),
		queries:  queriesmock.NewMockBookingQueries(ctrl),
	}
	reg := prometheus.NewRegistry()
	handler.NewRouter(
		deps.engine,
		config.NewTestConfig(),
		metrics.NewIntakeWith(reg, reg),
		api.NewBookingHandler(deps.commands, deps.queries),
		api.NewVehicleHandler(queriesmock.NewMockVehicleQueries(ctrl)),
	)
	return deps
}

func TestRouterHealthAndMetrics(t *testing.T) {
	deps := newRouter(t, gin.TestMode)

	rec := httptest.PerformRequest(t, deps.engine, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Service is healthy"}`, rec.Body.String())

	deps.queries.EXPECT().ThrottleStatus(gomock.Any(), gomock.Any()).
		Return(throttle.Decision{Allowed: true, AttemptsLeft: 2}).Times(1)
	rec = httptest.PerformRequest(t, deps.engine, http.MethodGet, "/api/bookings/throttle", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(t, deps.engine, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_request_duration_seconds_count{method="GET",route="/api/bookings/throttle",status="200"} 1`)
}

func TestRouterThrottleResetOnlyInDebugMode(t *testing.T) {
	t.Run("release mode does not register reset", func(t *testing.T) {
		deps := newRouter(t, gin.ReleaseMode)
		rec := httptest.PerformRequest(t, deps.engine, http.MethodDelete, "/api/bookings/throttle", nil, nil)
		assert.NotEqual(t, http.StatusNoContent, rec.Code)
	})

	t.Run("debug mode registers reset", func(t *testing.T) {
		deps := newRouter(t, gin.DebugMode)
		deps.commands.EXPECT().ResetThrottle(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		rec := httptest.PerformRequest(t, deps.engine, http.MethodDelete, "/api/bookings/throttle", nil, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRouterRecoversFromPanics(t *testing.T) {
	deps := newRouter(t, gin.TestMode)
	deps.queries.EXPECT().ThrottleStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, throttle.Signals) throttle.Decision { panic("boom") }).Times(1)

	rec := httptest.PerformRequest(t, deps.engine, http.MethodGet, "/api/bookings/throttle", nil, nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
