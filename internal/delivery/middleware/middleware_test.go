package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type middlewareTestFixtures struct {
	echo *echo.Echo
	logs *bytes.Buffer
}

func createTestMiddleware(t *testing.T, debug bool) *middlewareTestFixtures {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/devices/:deviceId", func(c echo.Context) error {
		c.Set("organizationID", "org-1")
		scoped := deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.String(http.StatusOK, scoped)
	})

	return &middlewareTestFixtures{echo: e, logs: logs}
}

func TestRequestIDMiddleware_ReusesInboundID(t *testing.T) {
	fx := createTestMiddleware(t, false)

	req := httptest.NewRequest(http.MethodGet, "/devices/abc", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", rec.Body.String())
}

func TestRequestIDMiddleware_ReplacesUnusableID(t *testing.T) {
	fx := createTestMiddleware(t, false)

	req := httptest.NewRequest(http.MethodGet, "/devices/abc", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxInboundRequestIDLen+1))
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	_, err := uuid.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, got, rec.Body.String())
}

func TestLoggerMiddleware_LogsRouteWithRequestID(t *testing.T) {
	fx := createTestMiddleware(t, true)

	req := httptest.NewRequest(http.MethodGet, "/devices/abc?limit=5", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
	fx.echo.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(fx.logs.Bytes(), &entry))
	assert.Equal(t, "[HTTP] Request served", entry["msg"])
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "/devices/:deviceId", entry["route"])
	assert.Equal(t, "limit=5", entry["query"])
	assert.Equal(t, "org-1", entry["organization_id"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}

func TestLoggerMiddleware_SkipsHealthAndQuietMode(t *testing.T) {
	fx := createTestMiddleware(t, true)
	fx.echo.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, fx.logs.String())

	quiet := createTestMiddleware(t, false)
	quiet.echo.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/devices/abc", nil))
	assert.Empty(t, quiet.logs.String())
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, accessLevel(http.StatusNoContent))
	assert.Equal(t, slog.LevelWarn, accessLevel(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, accessLevel(http.StatusBadGateway))
}
