// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hallcms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is a domain-specific error returned when an admin account is not found.
var ErrAdminNotFound = errors.New("admin account not found")

// AdminRepository defines the standard operations for admin account persistence.
type AdminRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminAccount, error)

	// FindByUsername retrieves a single account by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error)

	// FindByEmail retrieves a single account by its unique email.
	FindByEmail(ctx context.Context, email string) (*entity.AdminAccount, error)

	// Create persists a new account. The storage layer enforces username and
	// email uniqueness as defense in depth behind the service-level checks.
	Create(ctx context.Context, account *entity.AdminAccount) error

	// UpdatePassword replaces the stored password hash for the given account.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
