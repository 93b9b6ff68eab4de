// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hallcms/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterAccountInput defines the data required to register a new admin account.
type RegisterAccountInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput defines the data required to change an account password.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.AdminAccount
}

// LoginOutput returns the generated bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// AccountUsecase defines the interface for admin-account business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new admin account after checking username and email
	// availability.
	Register(ctx context.Context, input RegisterAccountInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a bearer token. Unknown usernames
	// and wrong passwords fail identically.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GetAccount loads an account by ID for the authenticated-identity endpoint.
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.AdminAccount, error)

	// ChangePassword verifies the current password and replaces it with a new one.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
