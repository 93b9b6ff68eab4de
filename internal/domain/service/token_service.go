package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation sentinels. Implementations collapse library-specific
// failures into these two so callers never depend on the JWT library.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims defines the custom claims for the access tokens. The subject carries
// the username; UserID is a separate claim so handlers can load the account by
// ID without a username lookup.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed bearer token for the given account.
	IssueToken(username string, userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims. Expired tokens return ErrTokenExpired, anything else that fails
	// verification returns ErrTokenInvalid.
	ValidateToken(tokenString string) (*Claims, error)
}
