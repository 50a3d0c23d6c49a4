//go:build unit

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(buf *bytes.Buffer) *Logger {
	return &Logger{
		logger:   slog.New(slog.NewTextHandler(buf, nil)),
		timezone: time.UTC,
	}
}

func TestLoggingMiddleware_ClientPlatform(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(headers map[string]string) string {
		var buf bytes.Buffer
		engine := gin.New()
		engine.Use(newBufferedLogger(&buf).LoggingMiddleware())
		engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		engine.ServeHTTP(httptest.NewRecorder(), req)
		return buf.String()
	}

	t.Run("signal header is logged", func(t *testing.T) {
		out := run(map[string]string{HeaderClientPlatform: "MacIntel"})
		assert.Contains(t, out, "client_platform=MacIntel")
		assert.Contains(t, out, "request_id=")
	})

	t.Run("absent header adds no attribute", func(t *testing.T) {
		out := run(nil)
		assert.NotContains(t, out, "client_platform")
	})
}
