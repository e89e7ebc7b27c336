package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/validator"
	"upkeep/internal/domain/service"
	mocksvc "upkeep/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// envelope mirrors response.SuccessResponse / response.ErrorResponse for decoding
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
	} `json:"meta"`
}

// newTestEcho returns an echo instance whose auth middleware accepts testToken as claims.
func newTestEcho(t *testing.T, claims *service.Claims) (*echo.Echo, *apimiddleware.AuthMiddleware) {
	t.Helper()

	verifier := mocksvc.NewMockTokenVerifier(t)
	verifier.EXPECT().VerifyAccessToken(testToken).Return(claims, nil).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger).HandleHTTPError

	return e, apimiddleware.NewAuthMiddleware(verifier)
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
