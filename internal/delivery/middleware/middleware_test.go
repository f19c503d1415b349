package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"counterhub/config"
	deliverycontext "counterhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var seen string
	handler := NewRequestIDMiddleware(newBufferLogger(&buf)).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestID(c)
		deliverycontext.GetLogger(c.Request().Context()).Info("inside")
		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id="+seen)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-req-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, "client-req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	long := strings.Repeat("x", maxRequestIDLength+1)
	req.Header.Set(deliverycontext.HeaderXRequestID, long)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEqual(t, long, got)
	assert.NotEmpty(t, got)
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		path      string
		handler   echo.HandlerFunc
		wantLog   bool
		wantLevel string
	}{
		{
			name:      "success logs at info",
			path:      "/api/users/profile",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "level=INFO",
		},
		{
			name:      "handler error logs at warn",
			path:      "/api/users/profile",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			wantLog:   true,
			wantLevel: "level=WARN",
		},
		{
			name:    "health is quiet outside debug",
			path:    "/api/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: false,
		},
		{
			name:      "health is logged in debug",
			debug:     true,
			path:      "/api/health",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "level=INFO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), rec)
			c.SetPath(tt.path)

			handler := NewLoggerMiddleware(newBufferLogger(&buf), cfg).Handle(tt.handler)

			require.NoError(t, handler(c))
			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), "route="+tt.path)
		})
	}
}
