package service

import (
	"slices"

	"github.com/google/uuid"
)

// Claims is the identity extracted from a verified access token.
type Claims struct {
	UserID         uuid.UUID
	OrganizationID string
	Roles          []string
}

// HasRole reports whether the caller carries role.
func (c *Claims) HasRole(role string) bool {
	return c != nil && slices.Contains(c.Roles, role)
}

// TokenVerifier validates access tokens issued by the platform's auth service.
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (*Claims, error)
}
