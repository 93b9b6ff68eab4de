package auth

import (
	"testing"
	"time"

	"hallcms/config"
	"hallcms/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		SecretKey: "test_secret_key_very_long_for_testing",
		Auth:      &config.AuthConfig{TokenTTL: ttl},
	}
	return cfg
}

func TestJWTService_IssueAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.IssueToken("chairperson", userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "chairperson", claims.Subject)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "bearer", claims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(-time.Minute))
	assert.NoError(t, err)

	token, err := jwtService.IssueToken("chairperson", uuid.New())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	// Sign with a different secret; verification must fail.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     "chairperson",
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
		"type":    "bearer",
	})
	forgedString, err := forged.SignedString([]byte("some_other_secret"))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(forgedString)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_MissingUserIDClaim(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	// Correctly signed, but the user_id claim is absent; the token must be
	// rejected outright rather than validating with a zero account ID.
	stripped := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "chairperson",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "bearer",
	})
	strippedString, err := stripped.SignedString([]byte("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(strippedString)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{SecretKey: ""}

	// Should fail to create service
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{SecretKey: "test_secret_key_very_long_for_testing"}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.IssueToken("chairperson", uuid.New())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)

	// Default lifetime is 24 hours.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}
