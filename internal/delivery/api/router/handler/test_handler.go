package handler

import (
	"net/http"

	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler echoes the caller identity so token setups can be checked end to end
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// WhoAmI returns the identity the auth middleware extracted from the token.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":         userID,
		"organization_id": middleware.GetOrganizationID(c),
		"roles":           roles,
	})
}

// Ping is a public endpoint (no authentication required)
func (h *TestHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "public"})
}
