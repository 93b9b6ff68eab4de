// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminAccount is the identity record for a privileged user of the admin panel.
// PasswordHash is never serialized; handlers return accounts through a DTO that
// strips it.
type AdminAccount struct {
	ID           uuid.UUID // Immutable identifier, assigned at registration.
	Username     string    // Unique login name.
	Email        string    // Unique contact email.
	PasswordHash string    // bcrypt digest of the password, never the plaintext.
	FullName     string    // Optional display name.
	IsActive     bool      // Inactive accounts can register credentials but cannot log in.
	IsSuperuser  bool      // Single-tier elevation flag; no role hierarchy beyond it.
	CreatedAt    time.Time
}
