package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/service"
	mocksvc "upkeep/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mocksvc.MockTokenVerifier, uuid.UUID) {
	verifier := mocksvc.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(verifier)
	userID := uuid.New()

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		id, ok := GetUserID(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.String(http.StatusOK, id.String()+"|"+GetOrganizationID(c))
	}, m.Authenticate)
	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, m.Authenticate, m.RequireRole(constants.RoleAdmin))

	return e, verifier, userID
}

func serve(e *echo.Echo, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	e, verifier, userID := newAuthTestEcho(t)

	verifier.EXPECT().VerifyAccessToken("good").
		Return(&service.Claims{UserID: userID, OrganizationID: "org-1"}, nil)
	verifier.EXPECT().VerifyAccessToken("expired").
		Return(nil, errors.New("token is expired"))

	rec := serve(e, "/me", "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String()+"|org-1", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(e, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "/me", "Token good").Code)

	rec = serve(e, "/me", "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	e, verifier, userID := newAuthTestEcho(t)

	verifier.EXPECT().VerifyAccessToken("admin").
		Return(&service.Claims{UserID: userID, Roles: []string{constants.RoleAdmin}}, nil)
	verifier.EXPECT().VerifyAccessToken("tech").
		Return(&service.Claims{UserID: userID, Roles: []string{constants.RoleTechnician}}, nil)

	assert.Equal(t, http.StatusNoContent, serve(e, "/admin", "Bearer admin").Code)

	rec := serve(e, "/admin", "Bearer tech")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "require 'admin' role")
}
