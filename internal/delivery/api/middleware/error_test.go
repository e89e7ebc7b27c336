package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "upkeep/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func serveError(t *testing.T, handlerErr error) (*httptest.ResponseRecorder, errorBody, *bytes.Buffer) {
	t.Helper()

	logs := &bytes.Buffer{}
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewJSONHandler(logs, nil))).HandleHTTPError
	e.GET("/fail", func(echo.Context) error { return handlerErr })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, logs
}

func TestHandleHTTPError_ClientAppErrorKeepsDetails(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrMaintenanceTaskNotFound.WithDetails("task 42"), "get task")

	rec, body, logs := serveError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrMaintenanceTaskNotFound.ErrorCode(), body.Error.Code)
	assert.Equal(t, "task 42", body.Error.Details)
	assert.NotEmpty(t, body.Meta.RequestID)
	assert.Empty(t, logs.String())
}

func TestHandleHTTPError_ServerAppErrorHidesDetails(t *testing.T) {
	rec, body, logs := serveError(t, domainerrors.ErrTransactionFailed.WithDetails("deadlock on maintenance_tasks"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, body.Error.Details)
	assert.Contains(t, logs.String(), "Request failed")
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	rec, body, _ := serveError(t, echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, http.StatusText(http.StatusMethodNotAllowed), body.Error.Message)
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	rec, body, logs := serveError(t, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Contains(t, logs.String(), "connection refused")
}
