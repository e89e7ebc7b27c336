package auth

import (
	"testing"
	"time"

	"upkeep/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func newTestVerifier(t *testing.T) *jwtVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	verifier, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	return verifier.(*jwtVerifier)
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)
}

func TestJWTVerifier_VerifyAccessToken(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":    userID.String(),
		"org_id": "org-1",
		"roles":  []string{"technician"},
		"type":   "access",
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifier.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "org-1", claims.OrganizationID)
	assert.True(t, claims.HasRole("technician"))
	assert.False(t, claims.HasRole("admin"))
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New().String()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "wrong secret",
			token: signToken(t, "another-secret", jwt.MapClaims{"sub": userID, "type": "access", "exp": exp}),
		},
		{
			name:  "expired",
			token: signToken(t, testSecret, jwt.MapClaims{"sub": userID, "type": "access", "exp": time.Now().Add(-time.Minute).Unix()}),
		},
		{
			name:  "missing expiry",
			token: signToken(t, testSecret, jwt.MapClaims{"sub": userID, "type": "access"}),
		},
		{
			name:  "refresh token",
			token: signToken(t, testSecret, jwt.MapClaims{"sub": userID, "type": "refresh", "exp": exp}),
		},
		{
			name:  "subject is not a uuid",
			token: signToken(t, testSecret, jwt.MapClaims{"sub": "alice", "type": "access", "exp": exp}),
		},
		{
			name:  "garbage",
			token: "not-a-jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.VerifyAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
