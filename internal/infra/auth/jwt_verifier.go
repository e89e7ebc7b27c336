// Package auth verifies access tokens issued by the platform auth service.
package auth

import (
	"upkeep/config"
	"upkeep/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// accessClaims is the payload of a platform access token.
type accessClaims struct {
	jwt.RegisteredClaims

	OrganizationID string   `json:"org_id"`
	Roles          []string `json:"roles,omitempty"`
	Type           string   `json:"type"`
}

// jwtVerifier is a concrete implementation of the TokenVerifier interface using HS256 JWTs.
type jwtVerifier struct {
	accessSecret []byte
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{
		accessSecret: []byte(cfg.SecretKey.Access),
	}, nil
}

// VerifyAccessToken checks signature, expiry and token type and returns the caller identity.
func (v *jwtVerifier) VerifyAccessToken(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}

	if !token.Valid || claims.Type != accessTokenType {
		return nil, errors.New("token is not an access token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	return &service.Claims{
		UserID:         userID,
		OrganizationID: claims.OrganizationID,
		Roles:          claims.Roles,
	}, nil
}
